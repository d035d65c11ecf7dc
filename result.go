package directdb

// AffectedColumn is the synthetic column name carrying the affected-row count
// returned for insert, update, and delete operations.
const AffectedColumn = "affected"

// Record is one normalized row: column name to scalar value.
type Record map[string]any

// Result is an ordered sequence of records. An empty Result is a valid
// outcome and distinct from an error.
type Result []Record

// Affected returns the affected-row count from a write result. It returns
// false when the result does not carry one, such as the result of a select.
func (r Result) Affected() (int64, bool) {
	if len(r) != 1 {
		return 0, false
	}
	n, ok := r[0][AffectedColumn].(int64)
	return n, ok
}
