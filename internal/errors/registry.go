package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Conversion errors (M001-M099)

	"M001": {
		Category: CategoryConversion,
		Message:  "Value could not be converted to a node",
		Detail:   "No rule in the registry accepted the value. The default registries accept every value, so the registry in use was probably emptied or had its fallback rule replaced.",
	},
	"M002": {
		Category: CategoryConversion,
		Message:  "Value is nested too deeply",
		Detail:   "Conversion stopped after 1024 levels of nesting. The value most likely contains itself.",
	},

	// Configuration errors (M101-M199)

	"M101": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "The file given with --config does not exist or cannot be read.",
	},
	"M102": {
		Category: CategoryConfig,
		Message:  "Configuration file is invalid",
		Detail:   "The configuration file could not be parsed. mirror.yaml must be YAML and mirror.json must be JSON.",
	},
	"M103": {
		Category: CategoryConfig,
		Message:  "Configuration value is invalid",
		Detail:   "A configuration value is outside its allowed set.",
	},

	// CLI errors (M201-M299)

	"M201": {
		Category: CategoryCLI,
		Message:  "Invalid command input",
		Detail:   "A flag or argument does not name anything mirror knows about.",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
