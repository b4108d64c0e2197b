package main

import "errors"

// Messages are shown to the user verbatim, prefixed with the tool name.
var (
	errInvalidArguments = errors.New("Invalid arguments\nView help with: perfmode -help")
	errBadFilePointer   = errors.New("Bad file pointer")
	errNoPermission     = errors.New("No permission")
	errInvalidArgFunc   = errors.New("Invalid Argument to function")
	errFileWrite        = errors.New("Unable to write to file")
	errUnknownValue     = errors.New("Unknown value")
)
