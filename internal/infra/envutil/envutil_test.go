package envutil

import (
	"errors"
	"testing"
)

func TestKeyRequiresPrefix(t *testing.T) {
	if _, err := Key(" ", "REPO_URL"); !errors.Is(err, errEnvPrefixRequired) {
		t.Fatalf("expected errEnvPrefixRequired, got %v", err)
	}
	key, err := Key("CREATE_ETHORA_APP", "REPO_URL")
	if err != nil {
		t.Fatalf("Key() error = %v", err)
	}
	if key != "CREATE_ETHORA_APP_REPO_URL" {
		t.Fatalf("Key() = %q", key)
	}
}

func TestLookupTreatsBlankAsUnset(t *testing.T) {
	t.Setenv("SCAFFOLD_TEST_BRANCH", "   ")
	if _, ok, err := Lookup("SCAFFOLD_TEST", "BRANCH"); err != nil || ok {
		t.Fatalf("Lookup() ok = %v err = %v, want unset", ok, err)
	}
	if err := Set("SCAFFOLD_TEST", "BRANCH", " develop "); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	value, ok, err := Lookup("SCAFFOLD_TEST", "BRANCH")
	if err != nil || !ok || value != "develop" {
		t.Fatalf("Lookup() = %q, %v, %v", value, ok, err)
	}
}
