package command

import (
	"bytes"
	"errors"
	"testing"
)

var errTestError = errors.New("test error")

func TestExitWithError(t *testing.T) {
	var buf bytes.Buffer
	code := exitWithError(&buf, errTestError)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	want := "✗ test error\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestHandleParseErrorGenericError(t *testing.T) {
	var buf bytes.Buffer
	code := handleParseError(errors.New("some other error"), &buf)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if got := buf.String(); got != "✗ some other error\n" {
		t.Errorf("expected error to be printed: %q", got)
	}
}
