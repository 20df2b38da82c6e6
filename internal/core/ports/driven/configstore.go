package driven

// ConfigStore reads and writes launcher settings by flattened
// dot-notation key ("index.url", "search.sizing_tiers"). Typed getters
// return the zero value for absent or mistyped keys; callers that need
// to distinguish "absent" from "zero" use Get.
type ConfigStore interface {
	// Get returns the raw value and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns the string under key, or "".
	GetString(key string) string

	// GetInt returns the integer under key, or 0.
	GetInt(key string) int

	// GetBool returns the boolean under key, or false.
	GetBool(key string) bool

	// GetStringSlice returns the string slice under key, or nil.
	GetStringSlice(key string) []string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Path returns the backing file path, for display.
	Path() string
}
