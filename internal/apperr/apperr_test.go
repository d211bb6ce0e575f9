package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"validation", Validationf("bad month %d", 13), "bad month 13"},
		{"schema", Schema("repository.Tree", "rebuild required"), "repository.Tree: rebuild required"},
		{"store", Store("repository.Years", errors.New("disk I/O error")), "repository.Years: query failed: disk I/O error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestStore_NilError(t *testing.T) {
	if err := Store("op", nil); err != nil {
		t.Errorf("Store(nil) = %v, expected nil", err)
	}
}

func TestKindOf_WrappedChain(t *testing.T) {
	base := Validationf("missing --to")
	wrapped := fmt.Errorf("resolving chart range: %w", base)

	if got := KindOf(wrapped); got != KindValidation {
		t.Errorf("KindOf() = %v, expected %v", got, KindValidation)
	}
	if !IsKind(wrapped, KindValidation) {
		t.Error("IsKind(wrapped, KindValidation) = false, expected true")
	}
	if IsKind(nil, KindValidation) {
		t.Error("IsKind(nil) = true, expected false")
	}
	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, expected %v", got, KindUnknown)
	}
}

func TestStore_Unwrap(t *testing.T) {
	cause := errors.New("database is locked")
	err := Store("repository.Days", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, expected true")
	}
}

func TestKind_String(t *testing.T) {
	kinds := map[Kind]string{
		KindValidation: "validation",
		KindSchema:     "schema",
		KindStore:      "store",
		KindUnknown:    "unknown",
	}
	for k, expected := range kinds {
		if got := k.String(); got != expected {
			t.Errorf("Kind(%d).String() = %q, expected %q", k, got, expected)
		}
	}
}
