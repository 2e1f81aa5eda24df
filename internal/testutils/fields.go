package testutils

// TestingT is the subset of testing.T used by the helpers in this package
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// FieldsToMap converts alternating key/value log fields to a map, reporting
// malformed entries through t.
func FieldsToMap(t TestingT, fields []any) map[string]any {
	t.Helper()
	m := make(map[string]any, len(fields)/2)

	for i := 0; i < len(fields); i += 2 {
		if i+1 >= len(fields) {
			t.Errorf("log field %d has no value", i)
			break
		}
		key, ok := fields[i].(string)
		if !ok {
			t.Errorf("log field key at %d is %T, want string", i, fields[i])
			continue
		}
		m[key] = fields[i+1]
	}

	return m
}
