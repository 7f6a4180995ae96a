package dhi

import "context"

// Result aggregates one batch: Results is index-aligned with the input and
// ValidCount always equals the number of true entries, maintained by
// construction rather than recomputed.
type Result struct {
	Results    []bool
	ValidCount int
}

func (r *Result) append(ok bool) {
	r.Results = append(r.Results, ok)
	if ok {
		r.ValidCount++
	}
}

// Total returns the number of records the batch covered.
func (r Result) Total() int { return len(r.Results) }

// InvalidCount returns how many records failed.
func (r Result) InvalidCount() int { return len(r.Results) - r.ValidCount }

// AllValid reports whether every record passed.
func (r Result) AllValid() bool { return r.ValidCount == len(r.Results) }

// ValidIndices returns the indices of passing records, in input order.
func (r Result) ValidIndices() []int {
	out := make([]int, 0, r.ValidCount)
	for i, ok := range r.Results {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// InvalidIndices returns the indices of failing records, in input order.
func (r Result) InvalidIndices() []int {
	out := make([]int, 0, len(r.Results)-r.ValidCount)
	for i, ok := range r.Results {
		if !ok {
			out = append(out, i)
		}
	}
	return out
}

// ValidateBatch validates an in-memory batch against a compiled schema. Every
// input record yields exactly one entry in the result, malformed ones as
// false; a record's shape never aborts the batch. The schema is read-only
// here, so concurrent batches may share it freely.
func ValidateBatch(ctx context.Context, s *Schema, records []map[string]any) Result {
	res := Result{Results: make([]bool, 0, len(records))}
	for _, rec := range records {
		res.append(s.ValidateRecord(MapRecord(rec)).Valid)
	}
	return res
}

// ValidateRecords is ValidateBatch for callers carrying their own Record
// implementation, e.g. views over foreign data structures. Nil records fail.
func ValidateRecords(ctx context.Context, s *Schema, records []Record) Result {
	res := Result{Results: make([]bool, 0, len(records))}
	for _, rec := range records {
		if rec == nil {
			res.append(false)
			continue
		}
		res.append(s.ValidateRecord(rec).Valid)
	}
	return res
}
