package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindAndCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
		code string
	}{
		{"not found", NotFound("QUOTE_NOT_FOUND", "quote not found"), KindNotFound, "QUOTE_NOT_FOUND"},
		{"wrapped conflict", fmt.Errorf("submit: %w", Conflict("DUPLICATE_QUOTE", "dup")), KindConflict, "DUPLICATE_QUOTE"},
		{"foreign error", errors.New("boom"), KindInternal, "INTERNAL_ERROR"},
		{"internal", Internal(errors.New("db down")), KindInternal, "INTERNAL_ERROR"},
		{"dependency", Dependency("WALLET_DEBIT_FAILED", errors.New("timeout")), KindDependency, "WALLET_DEBIT_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.kind {
				t.Fatalf("KindOf = %s, want %s", got, tt.kind)
			}
			if got := CodeOf(tt.err); got != tt.code {
				t.Fatalf("CodeOf = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := Internal(cause)

	if err.Error() != "internal error" {
		t.Fatalf("expected generic message, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to stay reachable through Unwrap")
	}
}

func TestIsMatchesKindAndCode(t *testing.T) {
	err := fmt.Errorf("wrap: %w", BusinessRule("PRICE_CALCULATION_MISMATCH", "mismatch"))

	if !errors.Is(err, &Error{Kind: KindBusinessRule}) {
		t.Fatal("expected kind-only match")
	}
	if !errors.Is(err, &Error{Kind: KindBusinessRule, Code: "PRICE_CALCULATION_MISMATCH"}) {
		t.Fatal("expected kind+code match")
	}
	if errors.Is(err, &Error{Kind: KindBusinessRule, Code: "SYSTEM_SIZE_TOO_LARGE"}) {
		t.Fatal("unexpected match on different code")
	}
}

func TestEnsure(t *testing.T) {
	if Ensure(nil) != nil {
		t.Fatal("expected nil")
	}
	conflict := Conflict("X", "x")
	if Ensure(conflict) != error(conflict) {
		t.Fatal("expected app error to pass through")
	}
	if KindOf(Ensure(errors.New("raw"))) != KindInternal {
		t.Fatal("expected raw error to become internal")
	}
}

func TestDependencyKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Dependency("IDENTITY_SERVICE_UNAVAILABLE", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected cause to stay reachable through Unwrap")
	}
	if err.Error() != "external dependency failed: dial tcp: connection refused" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
