package game

import (
	"errors"
	"testing"
)

// TestGuard_ConvertsPanic tests that a panic becomes a Fault of the given kind
func TestGuard_ConvertsPanic(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
	}{
		{"String", "boom"},
		{"Error", errors.New("boom")},
		{"Other", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard(FaultRender, "player", func() error { panic(tt.value) })
			f, ok := FaultOf(err)
			if !ok || f.Kind != FaultRender || f.Op != "player" {
				t.Fatalf("Expected render fault in player, got %v", err)
			}
			if !f.Recoverable() {
				t.Errorf("Expected a render fault to be recoverable")
			}
		})
	}
}

// TestGuard_PassesErrorsThrough tests that returned errors are not wrapped
func TestGuard_PassesErrorsThrough(t *testing.T) {
	if err := guard(FaultLoop, "tick", func() error { return nil }); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
	want := errors.New("plain")
	if err := guard(FaultLoop, "tick", func() error { return want }); err != want {
		t.Errorf("Expected the error unchanged, got %v", err)
	}
}

// TestHasFault_SearchesJoinedErrors tests that every joined error is checked
func TestHasFault_SearchesJoinedErrors(t *testing.T) {
	err := errors.Join(
		fault(FaultEffect, "revert", ErrNoTarget),
		nil,
		fault(FaultRender, "bullets", errors.New("bad")),
	)
	if !HasFault(err, FaultEffect) || !HasFault(err, FaultRender) {
		t.Errorf("Expected both faults found in %v", err)
	}
	if HasFault(err, FaultModeUpdate) {
		t.Errorf("Expected no mode update fault")
	}
	if !errors.Is(err, ErrNoTarget) {
		t.Errorf("Expected the wrapped cause to stay visible")
	}
	if HasFault(nil, FaultEffect) {
		t.Errorf("Expected nil to carry no fault")
	}
	if fault(FaultEffect, "apply", nil) != nil {
		t.Errorf("Expected fault(nil) to be nil")
	}
}

func TestFault_Recoverable(t *testing.T) {
	for _, k := range []FaultKind{FaultModeUpdate, FaultModeRender, FaultLoop} {
		if (&Fault{Kind: k}).Recoverable() {
			t.Errorf("Expected %s fault to need recovery", k)
		}
	}
}
