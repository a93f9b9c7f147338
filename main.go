package main

import "github.com/AlexSSD7/qargs/cmd"

func main() {
	cmd.Execute()
}
