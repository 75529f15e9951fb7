package bitfield

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAttr  = errors.New("invalid bitfield attribute")
	ErrUnknownAttr  = errors.New("unknown bitfield attribute")
	ErrValidation   = errors.New("bitfield validation failed")
	ErrEnumNotFound = errors.New("enum not found")
	ErrEnumExists   = errors.New("enum already exists")
	ErrInvalidEnum  = errors.New("invalid enum")
)

// AttrError is returned when a value of the wrong kind is assigned to an attribute.
type AttrError struct {
	Attr  string
	Want  string
	Value any
}

func (e *AttrError) Error() string {
	return fmt.Sprintf("'%s' attribute has to be '%s', but '%T' provided for the bitfield", e.Attr, e.Want, e.Value)
}

func (e *AttrError) Unwrap() error {
	return ErrInvalidAttr
}

// ValidationError describes the first invariant a field violates.
type ValidationError struct {
	Field  string
	Attr   string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Field) == 0 {
		return fmt.Sprintf("bitfield %s %v: %s", e.Attr, e.Value, e.Reason)
	}
	return fmt.Sprintf("bitfield %q: %s %v: %s", e.Field, e.Attr, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
