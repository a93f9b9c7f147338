package qemucli

import (
	"fmt"
	"reflect"

	"github.com/alessio/shellescape"
	"github.com/pkg/errors"
)

type ArgAcceptedValue string

const (
	ArgAcceptedValueUint     ArgAcceptedValue = "uint"
	ArgAcceptedValueString   ArgAcceptedValue = "string"
	ArgAcceptedValueKeyValue ArgAcceptedValue = "kv"
	ArgAcceptedValueNone     ArgAcceptedValue = "none"
)

// knownArgs lists every option the compiler is allowed to emit together with
// the shape of its value.
var knownArgs = map[string]ArgAcceptedValue{
	"L":          ArgAcceptedValueString,
	"S":          ArgAcceptedValueNone,
	"accel":      ArgAcceptedValueKeyValue,
	"audiodev":   ArgAcceptedValueKeyValue,
	"bios":       ArgAcceptedValueString,
	"chardev":    ArgAcceptedValueKeyValue,
	"cpu":        ArgAcceptedValueKeyValue,
	"device":     ArgAcceptedValueKeyValue,
	"drive":      ArgAcceptedValueKeyValue,
	"dtb":        ArgAcceptedValueString,
	"fsdev":      ArgAcceptedValueKeyValue,
	"gdb":        ArgAcceptedValueString,
	"global":     ArgAcceptedValueKeyValue,
	"initrd":     ArgAcceptedValueString,
	"kernel":     ArgAcceptedValueString,
	"loadvm":     ArgAcceptedValueString,
	"m":          ArgAcceptedValueUint,
	"machine":    ArgAcceptedValueKeyValue,
	"mon":        ArgAcceptedValueKeyValue,
	"name":       ArgAcceptedValueString,
	"net":        ArgAcceptedValueKeyValue,
	"netdev":     ArgAcceptedValueKeyValue,
	"nic":        ArgAcceptedValueString,
	"nodefaults": ArgAcceptedValueNone,
	"nographic":  ArgAcceptedValueNone,
	"rtc":        ArgAcceptedValueKeyValue,
	"serial":     ArgAcceptedValueString,
	"smp":        ArgAcceptedValueKeyValue,
	"snapshot":   ArgAcceptedValueNone,
	"spice":      ArgAcceptedValueKeyValue,
	"tpmdev":     ArgAcceptedValueKeyValue,
	"usb":        ArgAcceptedValueNone,
	"uuid":       ArgAcceptedValueString,
	"vga":        ArgAcceptedValueString,
}

type Arg interface {
	StringKey() string
	StringValue() string
	ValueType() ArgAcceptedValue
}

// EncodeArgs renders typed args into argv entries.
func EncodeArgs(args []Arg) ([]string, error) {
	var cmdArgs []string

	for i, arg := range args {
		flag, value, err := EncodeArg(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "encode flag #%v", i)
		}

		cmdArgs = append(cmdArgs, flag)
		if value != nil {
			cmdArgs = append(cmdArgs, *value)
		}
	}

	return cmdArgs, nil
}

func EncodeArg(a Arg) (string, *string, error) {
	// Copies are made because Arg is not trusted to
	// return the same value twice.
	argKey := a.StringKey()
	argValueType := a.ValueType()

	err := validateArgKey(argKey, argValueType)
	if err != nil {
		return "", nil, errors.Wrap(err, "validate arg key")
	}

	if argValueType == ArgAcceptedValueNone {
		if a.StringValue() != "" {
			return "", nil, fmt.Errorf("arg returned a value while declaring no value (type %v)", reflect.TypeOf(a))
		}

		return "-" + argKey, nil, nil
	}

	argValueStr := a.StringValue()
	if argValueStr == "" {
		return "", nil, fmt.Errorf("empty string value while declaring non-empty value (type %v)", reflect.TypeOf(a))
	}

	return "-" + argKey, &argValueStr, nil
}

// CommandLine renders the invocation as a single shell-quoted line.
func CommandLine(binary string, args []string) string {
	return shellescape.QuoteCommand(append([]string{binary}, args...))
}
