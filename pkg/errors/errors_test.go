package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidGraph, "edge weight %d out of range", 2000)

	if GetCode(err) != ErrCodeInvalidGraph {
		t.Errorf("GetCode = %v, want %v", GetCode(err), ErrCodeInvalidGraph)
	}
	if !strings.Contains(err.Error(), "INVALID_GRAPH") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
	if !strings.Contains(err.Error(), "2000") {
		t.Errorf("Error() = %q, want formatted argument", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeStore, cause, "failed to persist result %s", "abc")

	if !Is(err, ErrCodeStore) {
		t.Error("Is should match the wrapping code")
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause should survive errors.Is")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, want cause message", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeNotFound, "no such result")

	if !Is(err, ErrCodeNotFound) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInvalidInput) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNotFound) {
		t.Error("Is should not match plain errors")
	}
	if Is(nil, ErrCodeNotFound) {
		t.Error("Is should not match nil")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "instance name cannot be empty")
	if got := UserMessage(err); got != "instance name cannot be empty" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestValidateInstanceName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid", "large-instance.in", false},
		{"Empty", "", true},
		{"Traversal", "../etc/passwd", true},
		{"DoubleSlash", "a//b", true},
		{"Backslash", "a\\b", true},
		{"Control", "a\x01b", true},
		{"TooLong", strings.Repeat("a", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInstanceName(tt.input)
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateInstanceName: %v", err)
			}
		})
	}
}
