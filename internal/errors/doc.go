// Package errors provides structured, actionable errors for the collate
// CLI and demo server.
//
// Each error carries a code (e.g., "C001") that maps to a registered
// template with a category and message:
//
//	err := errors.New(errors.CodeConfigParse).
//	    Wrap(cause).
//	    WithSuggestion("Check collate.yaml for tab indentation")
//
//	errors.Print(os.Stderr, err, true)
//
// Error values with the same code match under errors.Is.
package errors
