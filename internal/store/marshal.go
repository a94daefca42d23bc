package store

import (
	"fmt"
	"reflect"

	"github.com/roach88/sure/internal/engine"
	"github.com/roach88/sure/internal/literal"
)

// Counts summarises a run.
type Counts struct {
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Skipped  int `json:"skipped"`
	Warnings int `json:"warnings"`
	Total    int `json:"total"`
}

// CountsOf tallies res.
func CountsOf(res *engine.Result) Counts {
	return Counts{
		Passed:   len(res.Passes),
		Failed:   len(res.Failures),
		Skipped:  len(res.Skips),
		Warnings: len(res.Warnings),
		Total:    res.Total(),
	}
}

// marshalCounts converts counts to canonical JSON TEXT for storage.
func marshalCounts(c Counts) (string, error) {
	v, err := literal.FromGo(c)
	if err != nil {
		return "", fmt.Errorf("marshal counts: %w", err)
	}
	data, err := literal.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal counts: %w", err)
	}
	return string(data), nil
}

// unmarshalCounts parses the TEXT written by marshalCounts.
func unmarshalCounts(data string) (Counts, error) {
	v, err := literal.Parse(data)
	if err != nil {
		return Counts{}, fmt.Errorf("unmarshal counts: %w", err)
	}
	rv, err := literal.To(v, reflect.TypeFor[Counts]())
	if err != nil {
		return Counts{}, fmt.Errorf("unmarshal counts: %w", err)
	}
	return rv.Interface().(Counts), nil
}
