//go:build linux

package host

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

const kvmDevicePath = "/dev/kvm"

func osVersion() (string, error) {
	var uts unix.Utsname

	err := unix.Uname(&uts)
	if err != nil {
		return "", errors.Wrap(err, "uname")
	}

	return unix.ByteSliceToString(uts.Release[:]), nil
}

func hasHypervisor(fs afero.Fs) (bool, error) {
	ok, err := afero.Exists(fs, kvmDevicePath)
	if err != nil {
		return false, errors.Wrap(err, "check kvm device")
	}

	return ok, nil
}
