package game

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPowerUp is returned for a power-up kind outside the catalog.
	ErrUnknownPowerUp = errors.New("unknown power-up kind")
	// ErrNoTarget is returned when an effect has nothing to act on.
	ErrNoTarget = errors.New("effect target is missing")
)

// FaultKind tells the Director how to recover from a Fault.
type FaultKind int

const (
	// FaultEffect is a power-up apply or revert that failed. Logged only.
	FaultEffect FaultKind = iota
	// FaultRender is one render group of a match that failed. Logged only.
	FaultRender
	// FaultUpdate is a failed subsystem update inside a tick. Logged only.
	FaultUpdate
	// FaultModeUpdate escaped a screen's update. The Director returns to Intro.
	FaultModeUpdate
	// FaultModeRender escaped a screen's render. The error screen is drawn.
	FaultModeRender
	// FaultLoop escaped the Director itself. The frame loop recovers.
	FaultLoop
)

var faultKindNames = map[FaultKind]string{
	FaultEffect:     "effect",
	FaultRender:     "render",
	FaultUpdate:     "update",
	FaultModeUpdate: "mode update",
	FaultModeRender: "mode render",
	FaultLoop:       "loop",
}

func (k FaultKind) String() string {
	if name, ok := faultKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Fault is an error raised inside a guarded boundary.
type Fault struct {
	Kind FaultKind
	Op   string
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s fault in %s: %v", f.Kind, f.Op, f.Err)
}

func (f *Fault) Unwrap() error { return f.Err }

// Recoverable reports whether the tick can simply continue after f.
func (f *Fault) Recoverable() bool {
	return f.Kind == FaultEffect || f.Kind == FaultRender || f.Kind == FaultUpdate
}

// FaultOf returns the first Fault in err's tree.
func FaultOf(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// HasFault reports whether err carries a Fault of the given kind. Joined
// errors are searched completely, unlike errors.As which stops at the first.
func HasFault(err error, kind FaultKind) bool {
	if err == nil {
		return false
	}
	if f, ok := err.(*Fault); ok && f.Kind == kind {
		return true
	}
	switch x := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			if HasFault(e, kind) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return HasFault(x.Unwrap(), kind)
	}
	return false
}

// guard runs fn and converts a panic into a Fault of the given kind. Errors
// returned by fn pass through unchanged.
func guard(kind FaultKind, op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Fault{Kind: kind, Op: op, Err: panicError(r)}
		}
	}()
	return fn()
}

// fault wraps err as a Fault unless it is nil.
func fault(kind FaultKind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Fault{Kind: kind, Op: op, Err: err}
}

func panicError(r interface{}) error {
	switch v := r.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		return fmt.Errorf("%v", v)
	}
}
