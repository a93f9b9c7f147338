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

package catalog

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	CPU           string
	CPUFlag       string
	Machine       string
	DisplayDevice string
	NetworkDevice string
	SoundDevice   string
	SerialDevice  string
)

// CPUDefault is the sentinel model that leaves the choice to the compiler.
const CPUDefault CPU = "default"

// Set is a closed, ordered collection of values of one kind.
type Set[T ~string] struct {
	values []T
	def    T
	pretty map[T]string
}

func newSet[T ~string](def T, values []T, pretty map[T]string) Set[T] {
	return Set[T]{
		values: values,
		def:    def,
		pretty: pretty,
	}
}

func (s Set[T]) All() []T {
	return slices.Clone(s.values)
}

func (s Set[T]) Contains(v T) bool {
	return slices.Contains(s.values, v)
}

func (s Set[T]) Default() T {
	return s.def
}

func (s Set[T]) Len() int {
	return len(s.values)
}

// Pretty returns the human readable name of v, or v itself.
func (s Set[T]) Pretty(v T) string {
	if p, ok := s.pretty[v]; ok {
		return p
	}

	return string(v)
}

// Catalog is the capability catalog of a single architecture.
type Catalog struct {
	Architecture Architecture

	CPUs           Set[CPU]
	CPUFlags       Set[CPUFlag]
	Machines       Set[Machine]
	DisplayDevices Set[DisplayDevice]
	NetworkDevices Set[NetworkDevice]
	SoundDevices   Set[SoundDevice]
	SerialDevices  Set[SerialDevice]
}

// For returns the catalog of arch. Unknown architectures get an empty
// catalog.
func For(arch Architecture) *Catalog {
	if c, ok := registry[arch]; ok {
		return c
	}

	return &Catalog{Architecture: arch}
}

// Architectures lists every architecture with a catalog, sorted.
func Architectures() []Architecture {
	archs := maps.Keys(registry)
	slices.Sort(archs)

	return archs
}
