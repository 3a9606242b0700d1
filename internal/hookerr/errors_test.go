package hookerr

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeHook, Message: "network name mismatch"},
			expected: "[HOOK_ERROR] network name mismatch",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeResolver, "resolvectl failed", errors.New("exit status 1")),
			expected: "[RESOLVER_ERROR] resolvectl failed: exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeHook, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeResolver, Message: "test error"}
	err2 := &Error{Code: ErrCodeResolver, Message: "another error"}
	err3 := &Error{Code: ErrCodeHook, Message: "hook error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestErrorsIsThroughWrapping(t *testing.T) {
	inner := NewResolverError("command timed out", nil)
	outer := Wrap(ErrCodeResolver, "dns setting", inner)

	if !errors.Is(outer, &Error{Code: ErrCodeResolver}) {
		t.Errorf("Expected wrapped resolver error to match ErrCodeResolver")
	}

	if errors.Is(outer, &Error{Code: ErrCodeHook}) {
		t.Errorf("Expected resolver error to not match ErrCodeHook")
	}
}

func TestNewHookError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NewHookError("failed to parse network XML", cause)

	if err.Code != ErrCodeHook {
		t.Errorf("Expected code %v, got %v", ErrCodeHook, err.Code)
	}
	if err.Message != "failed to parse network XML" {
		t.Errorf("Expected message 'failed to parse network XML', got %v", err.Message)
	}
	if err.Cause != cause {
		t.Errorf("Expected cause to be preserved")
	}
}
