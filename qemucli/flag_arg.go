package qemucli

import (
	"github.com/pkg/errors"
)

// FlagArg is a bare option such as -S or -nographic.
type FlagArg struct {
	key string
}

func MustNewFlagArg(key string) *FlagArg {
	a, err := NewFlagArg(key)
	if err != nil {
		panic(err)
	}

	return a
}

func NewFlagArg(key string) (*FlagArg, error) {
	a := &FlagArg{
		key: key,
	}

	err := validateArgKey(a.key, a.ValueType())
	if err != nil {
		return nil, errors.Wrap(err, "validate arg key")
	}

	return a, nil
}

func (a *FlagArg) StringKey() string {
	return a.key
}

func (a *FlagArg) StringValue() string {
	return ""
}

func (a *FlagArg) ValueType() ArgAcceptedValue {
	return ArgAcceptedValueNone
}
