package stan

import (
	"github.com/sourcegraph/conc/iter"
)

// Result is the outcome of parsing one input of a batch.
type Result struct {
	Input  string
	Column Column
	Err    error
}

// ParseAll parses every input concurrently and returns one result per
// input, in input order.
func (r *Reader) ParseAll(inputs []string) []Result {
	return iter.Map(inputs, func(in *string) Result {
		c, err := r.parser.Parse(*in)
		return Result{Input: *in, Column: c, Err: err}
	})
}

// Failed returns the results whose parse failed.
func Failed(results []Result) []Result {
	var out []Result
	for _, res := range results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}
