package detect

import (
	"github.com/structhealth/modal-tracking/go-analyzer/internal/mode"
)

// #region runner
// RunAll evaluates every method against the same read-only group, one
// goroutine per method. Results come back in method order regardless of
// completion order; methods that fail are reported separately so the
// caller can record the skip and let the rest vote.
func RunAll(methods []Method, group []mode.Observation) ([]Result, []Failure) {
	type indexed struct {
		idx    int
		result Result
		err    error
	}

	ch := make(chan indexed, len(methods))
	for i, m := range methods {
		go func(idx int, m Method) {
			res, err := m.Evaluate(group)
			ch <- indexed{idx: idx, result: res, err: err}
		}(i, m)
	}

	results := make([]Result, len(methods))
	errs := make([]error, len(methods))
	for range methods {
		r := <-ch
		results[r.idx] = r.result
		errs[r.idx] = r.err
	}

	var ran []Result
	var failures []Failure
	for i, m := range methods {
		if errs[i] != nil {
			failures = append(failures, Failure{Method: m.Name(), Err: errs[i]})
			continue
		}
		ran = append(ran, results[i])
	}
	return ran, failures
}

// #endregion runner
