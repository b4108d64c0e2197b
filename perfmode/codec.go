package main

import "fmt"

// encode returns the byte a control file expects for a state change.
// Fan and thermal share a code space: 0 is the stock profile, 1 the
// performance profile and 2 the quiet one.
func encode(o Operator, op Operation) (byte, error) {
	switch o {
	case OpBacklight:
		switch op {
		case Off:
			return '0', nil
		case Min:
			return '1', nil
		case Med:
			return '2', nil
		case Max:
			return '3', nil
		}
	case OpFan, OpThermal:
		switch {
		case op == Silent:
			return '2', nil
		case o == OpFan && op == Balanced, o == OpThermal && op == Default:
			return '0', nil
		case o == OpFan && op == Turbo, o == OpThermal && op == Overboost:
			return '1', nil
		}
	}
	return 0, errInvalidArgFunc
}

var decodeTables = map[Operator]map[string]Operation{
	OpBacklight: {"0": Off, "1": Min, "2": Med, "3": Max},
	OpFan:       {"0": Balanced, "1": Turbo, "2": Silent},
	OpThermal:   {"0": Default, "1": Overboost, "2": Silent},
}

// decode maps trimmed control file contents back to an operation name.
func decode(o Operator, content string) (string, error) {
	table, ok := decodeTables[o]
	if !ok {
		return "", errInvalidArgFunc
	}
	op, ok := table[content]
	if !ok {
		return "", fmt.Errorf("%w %q", errUnknownValue, content)
	}
	return op.String(), nil
}
