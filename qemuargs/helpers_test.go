package qemuargs_test

import (
	"path/filepath"
	"testing"

	"github.com/AlexSSD7/qargs/catalog"
	"github.com/AlexSSD7/qargs/config"
	"github.com/AlexSSD7/qargs/host"
	"github.com/AlexSSD7/qargs/qemuargs"
	"github.com/AlexSSD7/qargs/storage"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

var testUUID = uuid.MustParse("8a6e2b1c-4d0f-4b5e-9a3c-7f1e2d3c4b5a")

func testConfig() *config.Config {
	return &config.Config{
		Information: config.Information{Name: "Test VM", UUID: testUUID},
		System: config.System{
			Architecture: catalog.ArchX86_64,
			Target:       "q35",
			CPU:          catalog.CPUDefault,
			CPUCount:     2,
			MemorySize:   2048,
		},
		Input:   config.Input{USBBusSupport: config.USBBus2_0},
		Sharing: config.Sharing{DirectoryShareMode: config.ShareModeNone},
	}
}

func testContext() qemuargs.BuildContext {
	return qemuargs.BuildContext{
		Host: host.Info{
			OS:                "linux",
			Arch:              catalog.ArchX86_64,
			PhysicalCores:     4,
			LogicalCores:      8,
			PageSize:          4096,
			HasJITEntitlement: true,
			SupportsPTY:       true,
		},
		Paths: storage.Paths{
			CommDir:     "/run/qargs",
			ResourceDir: "/usr/share/qemu",
			CacheDir:    "/cache",
		},
		FS: afero.NewMemMapFs(),
	}
}

// values returns the argument following every occurrence of option.
func values(args []string, option string) []string {
	var out []string
	for i := 0; i+1 < len(args); i++ {
		if args[i] == option {
			out = append(out, args[i+1])
		}
	}

	return out
}

func indexOf(args []string, s string) int {
	for i, a := range args {
		if a == s {
			return i
		}
	}

	return -1
}

func touch(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, nil, 0644))
}
