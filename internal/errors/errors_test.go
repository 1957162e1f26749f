package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestCrossrefError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *CrossrefError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestCrossrefError_WithContext(t *testing.T) {
	err := New(CategoryRegistry, SeverityWarning, "scan failed").
		WithContext("dir", "./docs").
		WithContext("document", "guide/start")

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}
	if err.Context["dir"] != "./docs" {
		t.Errorf("Context[dir] = %v, want ./docs", err.Context["dir"])
	}
	if err.Context["document"] != "guide/start" {
		t.Errorf("Context[document] = %v, want guide/start", err.Context["document"])
	}
}

func TestCrossrefError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrap(cause, CategoryStore, SeverityError, "operation failed")

	if !stdErrors.Is(err, cause) {
		t.Error("wrapped error should match errors.Is on its cause")
	}
}

func TestIsCategory(t *testing.T) {
	err := New(CategoryParse, SeverityError, "bad document")
	if !IsCategory(err, CategoryParse) {
		t.Error("IsCategory should match the error's category")
	}
	if IsCategory(err, CategoryConfig) {
		t.Error("IsCategory should not match a different category")
	}
	if IsCategory(fmt.Errorf("plain"), CategoryParse) {
		t.Error("IsCategory should not match plain errors")
	}
}

func TestGetCategory(t *testing.T) {
	if got := GetCategory(New(CategoryStore, SeverityError, "x")); got != CategoryStore {
		t.Errorf("GetCategory = %v, want %v", got, CategoryStore)
	}
	if got := GetCategory(fmt.Errorf("plain")); got != CategoryInternal {
		t.Errorf("GetCategory for plain error = %v, want %v", got, CategoryInternal)
	}
}
