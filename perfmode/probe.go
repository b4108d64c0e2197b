package main

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// A prober answers the two questions the resolver asks about a path.
type prober interface {
	Exists(path string) bool
	// ReadOnly reports whether the current process lacks write access to
	// path. A non-nil error means the answer could not be determined.
	ReadOnly(path string) (bool, error)
}

type osProber struct{}

func (osProber) Exists(path string) bool {
	return unix.Access(path, unix.F_OK) == nil
}

func (osProber) ReadOnly(path string) (bool, error) {
	err := unix.Access(path, unix.W_OK)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EROFS), errors.Is(err, unix.EPERM):
		return true, nil
	}
	return false, &os.PathError{Op: "access", Path: path, Err: err}
}
