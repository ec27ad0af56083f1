//go:build unit || e2e

package testutil

// Field overrides one key of a DtoMap payload. A nil value removes the
// key entirely, which is how validation tests simulate a missing field.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
