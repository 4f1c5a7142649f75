// Package chain implements the ordered-fallback pattern used throughout the
// scraper: try candidates in a fixed priority order, first success wins.
package chain

// First walks candidates in order and returns the result of the first try
// that reports ok. Order is the only tie-break; later candidates are never
// evaluated once one succeeds.
func First[C, T any](candidates []C, try func(C) (T, bool)) (T, bool) {
	for _, c := range candidates {
		if v, ok := try(c); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
