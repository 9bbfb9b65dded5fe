package errors

import (
	stderrors "errors"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(stderrors.New("boom")); got != "Error: boom" {
		t.Errorf("Format = %q", got)
	}
	if got := Formatf("bad value %d", 7); got != "Error: bad value 7" {
		t.Errorf("Formatf = %q", got)
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound("member", "alice")
	if err.Error() != "member not found: alice" {
		t.Errorf("NotFound = %q", err.Error())
	}
	if !stderrors.Is(err, ErrNotFound) {
		t.Error("NotFound should match ErrNotFound")
	}
}
