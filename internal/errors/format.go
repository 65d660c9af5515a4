package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorBold  = "\033[1m"
)

// Format returns the error formatted for terminal display. Colors are
// emitted only when color is true.
func (e *Error) Format(color bool) string {
	paint := func(code, text string) string {
		if !color {
			return text
		}
		return code + text + colorReset
	}

	var b strings.Builder
	if e.Code != "" {
		b.WriteString(paint(colorRed+colorBold, "ERROR "+e.Code+": "))
	} else {
		b.WriteString(paint(colorRed+colorBold, "ERROR: "))
	}
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Wrapped != nil {
		fmt.Fprintf(&b, "\n  %s\n", e.Wrapped)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, "\n  %s\n", e.Detail)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  %s%s\n", paint(colorCyan, "Hint: "), e.Suggestion)
	}
	return b.String()
}

// Print writes err to w, using Format for *Error values.
func Print(w io.Writer, err error, color bool) {
	var e *Error
	if stderrors.As(err, &e) {
		io.WriteString(w, e.Format(color))
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err)
}
