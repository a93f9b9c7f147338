package storage_test

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/AlexSSD7/qargs/catalog"
	"github.com/AlexSSD7/qargs/storage"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testID = uuid.MustParse("9f1c6a8e-0b7d-4e2a-8c3f-5d6e7f8a9b0c")

func TestPaths(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/share/qemu", 0755))

	store, err := storage.NewStorage(slog.Default(), fs, "/data")
	require.NoError(t, err)

	p, err := store.Paths(testID, "/share/qemu")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/data", "run"), p.CommDir)
	assert.Equal(t, filepath.Join("/data", "cache", testID.String()), p.CacheDir)
	assert.Equal(t, filepath.Clean("/share/qemu"), p.ResourceDir)

	for _, dir := range []string{p.CommDir, p.CacheDir} {
		ok, err := afero.DirExists(fs, dir)
		require.NoError(t, err)
		assert.True(t, ok, dir)
	}

	assert.Equal(t, filepath.Join(p.CommDir, testID.String()+".spice"), p.SpiceSocket(testID))
	assert.Equal(t, filepath.Join(p.CommDir, testID.String()+".tpm"), p.TPMSocket(testID))
	assert.Equal(t, filepath.Join(p.CacheDir, "tpm2.data"), p.DefaultTPMState())
	assert.Equal(t, filepath.Join(p.ResourceDir, "edk2-aarch64-code.fd"), p.UEFIFirmware(catalog.ArchAarch64))
}

func TestFindResourceDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/b", 0755))

	dir, err := storage.FindResourceDir(fs, []string{"/a", "/b"})
	require.NoError(t, err)
	assert.Equal(t, "/b", dir)

	_, err = storage.FindResourceDir(fs, []string{"/c"})
	assert.Error(t, err)
}

func TestTouchPlaceholder(t *testing.T) {
	fs := afero.NewMemMapFs()

	store, err := storage.NewStorage(slog.Default(), fs, "/data")
	require.NoError(t, err)

	created, err := store.TouchPlaceholder("/data/x.img")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.TouchPlaceholder("/data/x.img")
	require.NoError(t, err)
	assert.False(t, created)

	info, err := fs.Stat("/data/x.img")
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}
