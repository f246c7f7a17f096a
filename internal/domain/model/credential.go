package model

// APIKey is a Canvas API key typed in by the user. It is held only for the
// duration of a single login submission and never stored.
type APIKey string

// CollectAPIKey converts the raw result of an input prompt into an APIKey.
// ok is false when the prompt was cancelled or the input is empty; no other
// validation is applied, so whitespace-only input is a present key.
func CollectAPIKey(raw string, answered bool) (APIKey, bool) {
	if !answered || raw == "" {
		return "", false
	}
	return APIKey(raw), true
}

// String redacts the key so it never ends up in logs by accident.
func (k APIKey) String() string {
	if k == "" {
		return ""
	}
	return "[redacted]"
}
