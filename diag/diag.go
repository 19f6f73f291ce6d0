// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package diag implements a small set of named failure kinds, some fatal
// and some recoverable with a defined fallback, plus a one-shot warning
// sink for the recoverable ones.
package diag

import "fmt"

// Kind identifies one of the recognized failure kinds.
type Kind string

// Error kinds, and the fallback behavior of each.
const (
	BadInputFormat                 Kind = "bad-input-format"
	UnknownLithology               Kind = "unknown-lithology"
	LocationOutOfGrid              Kind = "location-out-of-grid"
	BasementShallowerThanDrillSite Kind = "basement-shallower-than-drill-site"
	RiftParametersMissing          Kind = "rift-parameters-missing"
	InfeasibleStretching           Kind = "infeasible-stretching"
	DynamicTopographyOutOfRange    Kind = "dynamic-topography-out-of-range"
)

// Fatal reports whether a kind is always fatal. BasementShallowerThanDrillSite,
// InfeasibleStretching, and DynamicTopographyOutOfRange are recoverable
// (warn and fall back); the rest surface to the caller.
func (k Kind) Fatal() bool {
	switch k {
	case BasementShallowerThanDrillSite, InfeasibleStretching, DynamicTopographyOutOfRange:
		return false
	default:
		return true
	}
}

// Error is a Kind-tagged error wrapping an underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a fatal or recoverable *Error of the given kind.
func New(k Kind, msg string) *Error {
	return &Error{Kind: k, Msg: msg}
}

// Wrap builds an *Error of the given kind around an existing error.
func Wrap(k Kind, msg string, err error) *Error {
	return &Error{Kind: k, Msg: msg, Err: err}
}

// Warning is a recoverable condition recorded on a Diagnostics sink.
type Warning struct {
	Kind Kind
	Key  string
	Msg  string
}

// Diagnostics collects recoverable warnings, emitting each distinct
// (Kind, Key) pair only once: this is the mechanism behind the one-shot
// dynamic-topography warning and similarly single-shot warnings elsewhere.
type Diagnostics struct {
	seen     map[Kind]map[string]bool
	warnings []Warning
}

// NewDiagnostics returns an empty sink.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{seen: make(map[Kind]map[string]bool)}
}

// Warn records a warning, returning true if it was newly recorded (false
// if an identical (kind, key) warning was already emitted).
func (d *Diagnostics) Warn(k Kind, key, format string, args ...any) bool {
	if d == nil {
		return false
	}
	if d.seen[k] == nil {
		d.seen[k] = make(map[string]bool)
	}
	if d.seen[k][key] {
		return false
	}
	d.seen[k][key] = true
	d.warnings = append(d.warnings, Warning{Kind: k, Key: key, Msg: fmt.Sprintf(format, args...)})
	return true
}

// Warnings returns all recorded warnings, in emission order.
func (d *Diagnostics) Warnings() []Warning {
	if d == nil {
		return nil
	}
	return d.warnings
}
