package prover

import (
	"golang.org/x/sync/errgroup"

	"github.com/anthem-go/anthem/internal/theory"
)

// Result pairs one problem's prover Report with any ProverError encountered
// running it (prover/mod.rs's `prove_all` yielding `Result<Report, Error>`
// per problem).
type Result struct {
	Report Report
	Err    error
}

// ProveAll runs p against every problem and returns the results on a
// channel, closed once every problem has finished (spec §4.8
// "prove_all"). With instances = 1 problems run one at a time and results
// arrive in submission order; otherwise up to instances problems run
// concurrently and results arrive in completion order, grounded in
// prover/mod.rs's sequential-map / ThreadPool+mpsc-channel split.
func (p Prover) ProveAll(problems []theory.Problem) <-chan Result {
	out := make(chan Result, len(problems))

	if p.instances() == 1 {
		go func() {
			defer close(out)
			for _, problem := range problems {
				report, err := p.Prove(problem)
				out <- Result{Report: report, Err: err}
			}
		}()
		return out
	}

	go func() {
		defer close(out)
		group := new(errgroup.Group)
		group.SetLimit(p.instances())
		for _, problem := range problems {
			problem := problem
			group.Go(func() error {
				report, err := p.Prove(problem)
				out <- Result{Report: report, Err: err}
				return nil
			})
		}
		group.Wait()
	}()
	return out
}
