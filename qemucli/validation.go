package qemucli

import (
	"fmt"
	"strings"
)

func validateArgKey(key string, t ArgAcceptedValue) error {
	allowedValue, ok := knownArgs[key]
	if !ok {
		return fmt.Errorf("unknown arg '%v'", key)
	}

	if want, have := allowedValue, t; want != have {
		return fmt.Errorf("bad arg value type: want '%v', have '%v'", allowedValue, t)
	}

	return nil
}

func validateOptionKey(key string) error {
	if _, ok := knownArgs[key]; !ok {
		return fmt.Errorf("unknown arg '%v'", key)
	}

	return nil
}

// validateArgStrValue rejects lone commas. Doubled commas are QEMU's escape
// for a literal comma and are allowed.
func validateArgStrValue(s string) error {
	if strings.Contains(strings.ReplaceAll(s, ",,", ""), ",") {
		return fmt.Errorf("unescaped commas are not allowed")
	}

	return nil
}

// EscapePath doubles every comma so that a path survives QEMU option parsing.
func EscapePath(p string) string {
	return strings.ReplaceAll(p, ",", ",,")
}
