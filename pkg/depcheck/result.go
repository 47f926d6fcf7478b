package depcheck

import (
	"errors"
	"fmt"
)

// Status represents the outcome of resolving one dependency.
type Status string

const (
	StatusPresent Status = "present"
	StatusMissing Status = "missing"
)

// Result holds the outcome of a single resolution attempt.
type Result struct {
	Name       string // dependency name as listed, e.g. "math"
	Status     Status // present or missing
	ResolvedAs string // alias that resolved, if the name itself did not
	Err        error  // *MissingError for missing dependencies
}

// Present returns true if the dependency resolved.
func (r Result) Present() bool {
	return r.Status == StatusPresent
}

// Reason returns the failure text for a missing dependency, or "".
func (r Result) Reason() string {
	if r.Err == nil {
		return ""
	}
	var me *MissingError
	if errors.As(r.Err, &me) {
		return me.Reason
	}
	return r.Err.Error()
}

// Miss marks the result missing and records why.
func (r *Result) Miss(err error) Result {
	r.Status = StatusMissing
	r.ResolvedAs = ""
	r.Err = &MissingError{Name: r.Name, Reason: err.Error(), Err: err}
	return *r
}

// Hit marks the result present. via is the alias that resolved, or "".
func (r *Result) Hit(via string) Result {
	r.Status = StatusPresent
	r.ResolvedAs = via
	r.Err = nil
	return *r
}

// MissingError reports a dependency that could not be resolved.
// The underlying cause is kept but not classified.
type MissingError struct {
	Name   string
	Reason string
	Err    error
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("dependency %s missing: %s", e.Name, e.Reason)
}

func (e *MissingError) Unwrap() error {
	return e.Err
}
