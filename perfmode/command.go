package main

import (
	"golang.org/x/exp/slices"
)

// Operator selects the hardware subsystem a command targets.
type Operator int

const (
	OpHelp Operator = iota
	OpBacklight
	OpFan
	OpThermal
)

func (o Operator) String() string {
	switch o {
	case OpHelp:
		return "help"
	case OpBacklight:
		return "led"
	case OpFan:
		return "fan"
	case OpThermal:
		return "thermal"
	}
	return "unknown"
}

// Operation is the requested state within a subsystem, or Get to query it.
// Not every Operation is meaningful for every Operator; the codec decides.
type Operation int

const (
	Get Operation = iota
	Off
	Min
	Med
	Max
	Silent
	Balanced
	Turbo
	Overboost
	Default
)

var operationNames = [...]string{
	Get:       "get",
	Off:       "off",
	Min:       "min",
	Med:       "med",
	Max:       "max",
	Silent:    "silent",
	Balanced:  "balanced",
	Turbo:     "turbo",
	Overboost: "overboost",
	Default:   "default",
}

func (op Operation) String() string {
	if op < 0 || int(op) >= len(operationNames) {
		return "unknown"
	}
	return operationNames[op]
}

// A token is one accepted spelling pair for an operation.
// An empty short form means the operation has no abbreviation.
type token struct {
	long  string
	short string
	op    Operation
	desc  string
}

func (t token) matches(s string) bool {
	return s == t.long || (t.short != "" && s == t.short)
}

// operatorFlag ties a first-position flag to its subsystem and the
// vocabulary accepted in second position. The order of vocab is the
// order used in the usage text.
type operatorFlag struct {
	long     string
	short    string
	operator Operator
	vocab    []token
}

var operatorFlags = []operatorFlag{
	{
		long:     "-fan",
		short:    "-f",
		operator: OpFan,
		vocab: []token{
			{"turbo", "t", Turbo, "Turbo Mode"},
			{"balanced", "b", Balanced, "Balanced Mode"},
			{"silent", "s", Silent, "Silent Mode"},
			{"get", "g", Get, ""},
		},
	},
	{
		long:     "-thermal",
		short:    "-t",
		operator: OpThermal,
		vocab: []token{
			{"overboost", "ob", Overboost, "Overboost Mode"},
			{"default", "df", Default, "Default Mode"},
			{"silent", "s", Silent, "Silent Mode"},
			{"get", "g", Get, ""},
		},
	},
	{
		long:     "-led",
		short:    "-l",
		operator: OpBacklight,
		vocab: []token{
			{"off", "", Off, "Turn off Backlight"},
			{"min", "", Min, "Minimum Backlight"},
			{"med", "", Med, "Medium Backlight"},
			{"max", "", Max, "Maximum Backlight"},
			{"get", "g", Get, ""},
		},
	},
}

// parseArgs turns argv (program name first) into an operator/operation
// pair. Missing arguments are an implicit help request.
func parseArgs(args []string) (Operator, Operation, error) {
	if len(args) < 2 {
		return OpHelp, Get, nil
	}
	first := args[1]
	if first == "-help" || first == "-h" {
		return OpHelp, Get, nil
	}
	i := slices.IndexFunc(operatorFlags, func(f operatorFlag) bool {
		return first == f.long || first == f.short
	})
	if i < 0 {
		return OpHelp, Get, errInvalidArguments
	}
	flag := operatorFlags[i]
	if len(args) < 3 {
		return OpHelp, Get, errInvalidArguments
	}
	second := args[2]
	j := slices.IndexFunc(flag.vocab, func(t token) bool { return t.matches(second) })
	if j < 0 {
		return OpHelp, Get, errInvalidArguments
	}
	return flag.operator, flag.vocab[j].op, nil
}
