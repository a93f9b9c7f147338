package storage

import (
	"path/filepath"
	"runtime"

	"github.com/AlexSSD7/qargs/catalog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Paths are the file system locations a single invocation refers to.
type Paths struct {
	// CommDir holds the SPICE and TPM sockets.
	CommDir string
	// ResourceDir is QEMU's data directory, passed with -L.
	ResourceDir string
	// CacheDir holds machine specific blobs such as placeholder images.
	CacheDir string
}

func (p Paths) SpiceSocket(id uuid.UUID) string {
	return filepath.Join(p.CommDir, id.String()+".spice")
}

func (p Paths) TPMSocket(id uuid.UUID) string {
	return filepath.Join(p.CommDir, id.String()+".tpm")
}

// UEFIFirmware is the bundled EDK2 code image for arch.
func (p Paths) UEFIFirmware(arch catalog.Architecture) string {
	return filepath.Join(p.ResourceDir, "edk2-"+string(arch)+"-code.fd")
}

// DefaultTPMState is the swtpm state file used when the description does
// not name one.
func (p Paths) DefaultTPMState() string {
	return filepath.Join(p.CacheDir, "tpm2.data")
}

func (p Paths) DefaultEFIVars() string {
	return filepath.Join(p.CacheDir, "efi_vars.fd")
}

func (p Paths) Placeholder(driveID string) string {
	return filepath.Join(p.CacheDir, driveID+".img")
}

func DefaultResourceDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/opt/homebrew/share/qemu", "/usr/local/share/qemu", "/opt/local/share/qemu"}
	case "windows":
		return []string{`C:\Program Files\qemu\share`}
	default:
		return []string{"/usr/share/qemu", "/usr/local/share/qemu"}
	}
}

// FindResourceDir returns the first existing directory of candidates.
func FindResourceDir(fs afero.Fs, candidates []string) (string, error) {
	for _, c := range candidates {
		ok, err := afero.DirExists(fs, c)
		if err != nil {
			return "", errors.Wrapf(err, "check dir exists '%v'", c)
		}

		if ok {
			return c, nil
		}
	}

	return "", errors.Errorf("no QEMU resource directory found (tried %v)", candidates)
}
