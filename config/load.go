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

package config

import (
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// EnvPrefix scopes environment overrides, e.g. QARGS_SYSTEM_MEMORY_SIZE.
const EnvPrefix = "QARGS"

func newViper(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("information.name", "Virtual Machine")
	v.SetDefault("system.architecture", "x86_64")
	v.SetDefault("system.cpu", "default")
	v.SetDefault("system.memory_size", 512)
	v.SetDefault("input.usb_bus_support", string(USBBus2_0))
	v.SetDefault("input.maximum_usb_share", 3)
	v.SetDefault("sharing.directory_share_mode", string(ShareModeNone))

	return v
}

// Load reads a machine description from path. The format is picked from the
// file extension (yaml, json, toml and the rest of what viper supports).
func Load(fs afero.Fs, path string) (*Config, error) {
	v := newViper(fs)
	v.SetConfigFile(path)

	err := v.ReadInConfig()
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	var cfg Config

	err = v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc()))
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	cfg.ApplyDefaults()

	return &cfg, nil
}
