package model

// Sections holds the top-level entries discovered in a single run, keyed by section name.
// Values are either []string (resource lists) or string (e.g. the bundle name).
type Sections map[string]any

// IsEmptySection reports whether a section value carries no data and should therefore be removed from the index
func IsEmptySection(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		return s == ""
	case []string:
		return len(s) == 0
	case []any:
		return len(s) == 0
	case map[string]any:
		return len(s) == 0
	default:
		return false
	}
}

// Index is the in-memory form of a bundle index: a JSON object mapping section names to values.
type Index map[string]any

// Name returns the bundle name stored in the index, or "" if there is none
func (idx Index) Name() string {
	s, _ := idx[SectionName].(string)
	return s
}

// Resources returns the resource list of the given category. Returns nil if the category is absent
// or not a list of strings.
func (idx Index) Resources(category string) []string {
	switch v := idx[category].(type) {
	case []string:
		return v
	case []any:
		res := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil
			}
			res = append(res, s)
		}
		return res
	default:
		return nil
	}
}
