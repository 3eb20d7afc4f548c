package professional

import (
	"errors"
	"testing"
)

func TestParseCategory_KnownNames(t *testing.T) {
	for _, cat := range Categories() {
		got, err := ParseCategory(cat.String())
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", cat, err)
		}
		if got != cat {
			t.Fatalf("expected %v, got %v", cat, got)
		}
	}
}

func TestParseCategory_UnknownName(t *testing.T) {
	_, err := ParseCategory("Plumber")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestParseCategory_EmptyName(t *testing.T) {
	_, err := ParseCategory("")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}
