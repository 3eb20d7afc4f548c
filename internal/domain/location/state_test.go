package location

import (
	"errors"
	"testing"
)

func TestParseState_RoundTrip(t *testing.T) {
	for _, st := range States() {
		got, err := ParseState(st.String())
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", st, err)
		}
		if got != st {
			t.Fatalf("expected %v, got %v", st, got)
		}
	}
}

func TestParseState_Unknown(t *testing.T) {
	st, err := ParseState("ZZ")
	if !errors.Is(err, ErrUnknownState) {
		t.Fatalf("expected ErrUnknownState, got %v", err)
	}
	if st != StateUnspecified {
		t.Fatalf("expected unspecified state, got %v", st)
	}
}

func TestStateUnspecified_HasNoName(t *testing.T) {
	if StateUnspecified.String() != "" {
		t.Fatalf("expected empty name, got %q", StateUnspecified.String())
	}
}
