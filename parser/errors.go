package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapability is returned when registering a nil capability or no extension.
	ErrInvalidCapability = errors.New("invalid capability")
	// ErrUnregisteredExtension is returned when enabling or disabling an unknown extension.
	ErrUnregisteredExtension = errors.New("unregistered extension")
	// ErrExtensionRequired is returned for a file path without extension.
	ErrExtensionRequired = errors.New("extension required")
	// ErrUnsupportedExtension is returned when no enabled parser handles an extension.
	ErrUnsupportedExtension = errors.New("unsupported extension")
	// ErrIO is returned when a file cannot be read.
	ErrIO = errors.New("read failed")
	// ErrParse is returned when a capability rejects its input.
	ErrParse = errors.New("parse failed")
	// ErrPanic is wrapped into the error of a capability that panicked.
	ErrPanic = errors.New("parser panicked")
)

// FileError annotates a failure with the file that caused it.
// Err always wraps one of ErrExtensionRequired, ErrUnsupportedExtension, ErrIO or ErrParse.
type FileError struct {
	Path string
	Ext  string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("invalid file %q: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
