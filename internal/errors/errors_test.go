package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"config error", CodeConfigParse, "Invalid config syntax", CategoryConfig},
		{"cli error", CodeUnknownLayer, "Unknown provider layer", CategoryCLI},
		{"server error", CodeServerListen, "Server failed to listen", CategoryServer},
		{"unknown error code", "C999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	if got := New(CodeConfigRead).Error(); got != "C001: Cannot read config file" {
		t.Errorf("Error() = %q", got)
	}
	if got := Newf(CategoryCLI, "bad %s", "flag").Error(); got != "bad flag" {
		t.Errorf("Error() = %q", got)
	}
	wrapped := New(CodeConfigRead).Wrap(fmt.Errorf("permission denied"))
	if got := wrapped.Error(); got != "C001: Cannot read config file: permission denied" {
		t.Errorf("Error() = %q", got)
	}
	detailed := New(CodeUnknownLayer).WithDetail(`No layer named "x".`)
	if got := detailed.Error(); got != `C020: Unknown provider layer: No layer named "x".` {
		t.Errorf("Error() with detail = %q", got)
	}
	stock := New(CodeConfigFormat)
	if got := stock.Error(); got != "C004: Unsupported config format" {
		t.Errorf("Error() with stock detail = %q", got)
	}
}

func TestError_IsAndUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := fmt.Errorf("loading: %w", New(CodeConfigParse).Wrap(cause))

	if !stderrors.Is(err, New(CodeConfigParse)) {
		t.Error("errors.Is should match on code")
	}
	if stderrors.Is(err, New(CodeConfigRead)) {
		t.Error("errors.Is should not match a different code")
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if stderrors.Is(Newf(CategoryCLI, "x"), Newf(CategoryCLI, "x")) {
		t.Error("uncoded errors should not match each other")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, CodeRenderFailed) != nil {
		t.Error("FromError(nil) should be nil")
	}

	plain := stderrors.New("disk full")
	got := FromError(plain, CodeRenderFailed)
	if got.Code != CodeRenderFailed || got.Wrapped != plain {
		t.Errorf("FromError(plain) = %+v", got)
	}

	coded := New(CodeConfigInvalid)
	if FromError(fmt.Errorf("ctx: %w", coded), CodeRenderFailed) != coded {
		t.Error("FromError should return an existing *Error unchanged")
	}
}

func TestFormat(t *testing.T) {
	err := New(CodeConfigParse).
		Wrap(stderrors.New("line 3: unexpected tab")).
		WithSuggestion("Use spaces for indentation")

	out := err.Format(false)
	for _, want := range []string{
		"ERROR C002: Invalid config syntax",
		"line 3: unexpected tab",
		"Hint: Use spaces for indentation",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format(false) should not emit ANSI codes")
	}
	if !strings.Contains(err.Format(true), colorReset) {
		t.Error("Format(true) should emit ANSI codes")
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, stderrors.New("plain"), false)
	if buf.String() != "Error: plain\n" {
		t.Errorf("Print(plain) = %q", buf.String())
	}

	buf.Reset()
	Print(&buf, fmt.Errorf("wrapped: %w", New(CodeUnknownLayer)), false)
	if !strings.HasPrefix(buf.String(), "ERROR C020: Unknown provider layer") {
		t.Errorf("Print(coded) = %q", buf.String())
	}
}

func TestCodesAndLookup(t *testing.T) {
	codes := Codes()
	if len(codes) != len(registry) {
		t.Fatalf("Codes() len = %d, want %d", len(codes), len(registry))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("Codes() not sorted: %v", codes)
		}
	}
	if _, ok := Lookup(CodeServerShutdown); !ok {
		t.Error("Lookup should find registered code")
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup should miss unknown code")
	}
}
