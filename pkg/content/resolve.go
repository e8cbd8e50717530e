package content

// resolveWithFallback is the single resolution rule shared by every section:
// a failed fetch or an empty live set yields the fallback unmodified,
// otherwise the live set is used as-is. Live and fallback data are never
// blended.
func resolveWithFallback[T any](live []T, err error, fallback []T) []T {
	if err != nil || len(live) == 0 {
		return fallback
	}
	return live
}

// resolveRecord is the whole-record variant for single-row sections
// (education): the live record wins only when the fetch succeeded and
// returned one; fields are never merged.
func resolveRecord[T any](live *T, err error, fallback T) T {
	if err != nil || live == nil {
		return fallback
	}
	return *live
}

// orString picks the first non-empty string; used by the contact section,
// which merges field-by-field rather than whole-record.
func orString(live, fallback string) string {
	if live != "" {
		return live
	}
	return fallback
}
