//go:build !(darwin && arm64)

package host

func performanceCores() (int, int) {
	return 0, 0
}
