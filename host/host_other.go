//go:build !darwin && !linux

package host

import "github.com/spf13/afero"

func osVersion() (string, error) {
	return "", nil
}

// Hyper-V availability cannot be probed without elevated privileges, so
// acceleration on other systems is left to the accelerator preference.
func hasHypervisor(_ afero.Fs) (bool, error) {
	return IsWindows(), nil
}
