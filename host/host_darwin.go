//go:build darwin

package host

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

func osVersion() (string, error) {
	v, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return "", errors.Wrap(err, "sysctl kern.osproductversion")
	}

	return v, nil
}

func hasHypervisor(_ afero.Fs) (bool, error) {
	v, err := unix.SysctlUint32("kern.hv_support")
	if err != nil {
		return false, errors.Wrap(err, "sysctl kern.hv_support")
	}

	return v == 1, nil
}
