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

package qemucli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// KeyValueArgItem is one comma-separated property. An item with an empty
// Value renders as the bare Key, which is how a device or backend type name
// leads the property list.
type KeyValueArgItem struct {
	Key   string
	Value string
}

type KeyValueArg struct {
	key   string
	items []KeyValueArgItem
}

func MustNewKeyValueArg(key string, items []KeyValueArgItem) *KeyValueArg {
	a, err := NewKeyValueArg(key, items)
	if err != nil {
		panic(err)
	}

	return a
}

func NewKeyValueArg(key string, items []KeyValueArgItem) (*KeyValueArg, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no items")
	}

	a := &KeyValueArg{
		key:   key,
		items: make([]KeyValueArgItem, len(items)),
	}

	err := validateArgKey(key, a.ValueType())
	if err != nil {
		return nil, errors.Wrap(err, "validate arg key")
	}

	for i, item := range items {
		if len(item.Key) == 0 {
			return nil, fmt.Errorf("empty key not allowed (item #%v)", i)
		}

		if strings.ContainsAny(item.Key, ",=") {
			return nil, fmt.Errorf("bad item key '%v'", item.Key)
		}

		err = validateArgStrValue(item.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "validate value of '%v'", item.Key)
		}

		a.items[i] = item
	}

	return a, nil
}

func (a *KeyValueArg) StringKey() string {
	return a.key
}

func (a *KeyValueArg) StringValue() string {
	sb := new(strings.Builder)
	for i, item := range a.items {
		if i != 0 {
			sb.WriteString(",")
		}

		sb.WriteString(item.Key)
		if len(item.Value) > 0 {
			sb.WriteString("=" + item.Value)
		}
	}

	return sb.String()
}

func (a *KeyValueArg) ValueType() ArgAcceptedValue {
	return ArgAcceptedValueKeyValue
}
