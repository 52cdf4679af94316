package interaction

import (
	"errors"
	"testing"
)

func TestHuhPrompterInputUsesRunner(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })

	var gotTitle, gotPlaceholder string
	var gotValidate func(string) error
	runInputPrompt = func(title, placeholder string, validate func(string) error, input *string) error {
		gotTitle = title
		gotPlaceholder = placeholder
		gotValidate = validate
		*input = "DemoApp"
		return nil
	}

	validate := func(string) error { return nil }
	got, err := (HuhPrompter{}).Input("What is the name of your new app?", "MyApp", validate)
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if got != "DemoApp" {
		t.Fatalf("Input() = %q, want %q", got, "DemoApp")
	}
	if gotTitle != "What is the name of your new app?" {
		t.Fatalf("title = %q", gotTitle)
	}
	if gotPlaceholder != "MyApp" {
		t.Fatalf("placeholder = %q", gotPlaceholder)
	}
	if gotValidate == nil {
		t.Fatal("validator must be forwarded")
	}
}

func TestHuhPrompterInputWrapsError(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })
	runInputPrompt = func(string, string, func(string) error, *string) error {
		return errors.New("tty unavailable")
	}

	_, err := (HuhPrompter{}).Input("name", "", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "prompt input: tty unavailable" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHuhPrompterConfirmStartsFromInitial(t *testing.T) {
	orig := runConfirmPrompt
	t.Cleanup(func() { runConfirmPrompt = orig })

	var seen bool
	runConfirmPrompt = func(_ string, value *bool) error {
		seen = *value
		return nil
	}

	got, err := (HuhPrompter{}).Confirm("Set up Firebase?", true)
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if !seen || !got {
		t.Fatalf("confirm initial = %v, result = %v, want true/true", seen, got)
	}
}

func TestHuhPrompterConfirmWrapsError(t *testing.T) {
	orig := runConfirmPrompt
	t.Cleanup(func() { runConfirmPrompt = orig })
	runConfirmPrompt = func(string, *bool) error { return errors.New("aborted") }

	if _, err := (HuhPrompter{}).Confirm("x", false); err == nil || err.Error() != "prompt confirm: aborted" {
		t.Fatalf("unexpected error: %v", err)
	}
}
