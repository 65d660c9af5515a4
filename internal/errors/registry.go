package errors

import "sort"

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

// Error codes.
const (
	CodeConfigRead     = "C001"
	CodeConfigParse    = "C002"
	CodeConfigInvalid  = "C003"
	CodeConfigFormat   = "C004"
	CodeUnknownLayer   = "C020"
	CodeInvalidArg     = "C021"
	CodeRenderFailed   = "C040"
	CodeServerListen   = "C060"
	CodeServerShutdown = "C061"
)

var registry = map[string]Template{
	// Config (C001-C019)
	CodeConfigRead: {
		Category: CategoryConfig,
		Message:  "Cannot read config file",
		Detail:   "The config file exists but could not be read.",
	},
	CodeConfigParse: {
		Category: CategoryConfig,
		Message:  "Invalid config syntax",
		Detail:   "The config file could not be decoded. JSON files must be valid JSON and YAML files valid YAML.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid config value",
	},
	CodeConfigFormat: {
		Category: CategoryConfig,
		Message:  "Unsupported config format",
		Detail:   "Config files must end in .json, .yaml or .yml.",
	},

	// CLI (C020-C039)
	CodeUnknownLayer: {
		Category: CategoryCLI,
		Message:  "Unknown provider layer",
	},
	CodeInvalidArg: {
		Category: CategoryCLI,
		Message:  "Invalid argument",
	},

	// Render (C040-C059)
	CodeRenderFailed: {
		Category: CategoryRender,
		Message:  "Render failed",
	},

	// Server (C060-C079)
	CodeServerListen: {
		Category: CategoryServer,
		Message:  "Server failed to listen",
	},
	CodeServerShutdown: {
		Category: CategoryServer,
		Message:  "Server shutdown failed",
	},
}

// Codes returns all registered codes in order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
