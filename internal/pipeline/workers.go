package pipeline

import (
	"sort"
	"sync"
)

// #region run-modes
// RunModes executes whole-mode runs on a bounded worker pool. Each job
// writes only its own slot, and results come back ordered by mode number
// whatever the completion order was. A failed mode carries its error in the
// result instead of stopping the others.
func RunModes(jobs []ModeJob, workers int) []ModeResult {
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]ModeResult, len(jobs))
	work := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				job := jobs[idx]
				table, summary, err := Run(job.ModeNumber, job.Candidates, job.Config)
				results[idx] = ModeResult{
					ModeNumber: job.ModeNumber,
					Table:      table,
					Summary:    summary,
					Err:        err,
				}
			}
		}()
	}

	for idx := range jobs {
		work <- idx
	}
	close(work)
	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ModeNumber < results[j].ModeNumber
	})
	return results
}

// #endregion run-modes
