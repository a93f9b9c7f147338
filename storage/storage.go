// Qargs - A compiler from virtual machine descriptions to QEMU invocations.
// Copyright (c) 2023 The Qargs Authors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

package storage

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Storage owns the data directory that holds per-run communication
// sockets and per-machine cache files.
type Storage struct {
	logger *slog.Logger
	fs     afero.Fs

	path string
}

func NewStorage(logger *slog.Logger, fs afero.Fs, dataDir string) (*Storage, error) {
	dataDir = filepath.Clean(dataDir)

	err := fs.MkdirAll(dataDir, 0700)
	if err != nil {
		return nil, errors.Wrap(err, "mkdir all data dir")
	}

	return &Storage{
		logger: logger,
		fs:     fs,

		path: dataDir,
	}, nil
}

func (s *Storage) DataDirPath() string {
	return s.path
}

// Paths prepares the directories of one run of machine id. resourceDir may
// be empty, in which case the well-known QEMU install locations are
// searched.
func (s *Storage) Paths(id uuid.UUID, resourceDir string) (Paths, error) {
	p := Paths{
		CommDir:  filepath.Join(s.path, "run"),
		CacheDir: filepath.Join(s.path, "cache", id.String()),
	}

	for _, dir := range []string{p.CommDir, p.CacheDir} {
		err := s.fs.MkdirAll(dir, 0700)
		if err != nil {
			return Paths{}, errors.Wrapf(err, "mkdir all '%v'", dir)
		}
	}

	if resourceDir != "" {
		p.ResourceDir = filepath.Clean(resourceDir)
	} else {
		found, err := FindResourceDir(s.fs, DefaultResourceDirs())
		if err != nil {
			return Paths{}, errors.Wrap(err, "find resource dir")
		}

		p.ResourceDir = found
	}

	used, err := dirSize(s.fs, p.CacheDir)
	if err != nil {
		s.logger.Warn("Failed to compute cache usage", "path", p.CacheDir, "error", err.Error())
	} else {
		s.logger.Debug("Run directories ready", "comm", p.CommDir, "cache", p.CacheDir, "cache-used", humanize.Bytes(used), "resources", p.ResourceDir)
	}

	return p, nil
}

// TouchPlaceholder creates the empty file that stands in for a disk without
// an image or for fresh TPM state. Existing files are left alone.
func (s *Storage) TouchPlaceholder(path string) (bool, error) {
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return false, errors.Wrap(err, "check placeholder exists")
	}

	if exists {
		return false, nil
	}

	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return false, errors.Wrap(err, "create placeholder")
	}

	err = f.Close()
	if err != nil {
		return false, errors.Wrap(err, "close placeholder")
	}

	s.logger.Info("Created empty placeholder file", "path", path)

	return true, nil
}

func dirSize(fs afero.Fs, dir string) (uint64, error) {
	var size uint64

	err := afero.Walk(fs, dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			size += uint64(info.Size())
		}

		return nil
	})

	return size, err
}
