// SPDX-License-Identifier: MIT
//
// File: emit.go
// Role: the entry point, EmitAll: takes the caller's shared-signal resolution, runs
// stratification and quantifier planning, then emits every safety obligation and, when the
// witness or model declares justice properties, every liveness obligation
// per justice index.
package obligation

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/aigcert/certifaiger/aiger"
	"github.com/aigcert/certifaiger/quant"
	"github.com/aigcert/certifaiger/shared"
	"github.com/aigcert/certifaiger/stratify"
)

// EmitAll runs the full core pipeline over an already-parsed model and
// witness: resolves shared signals if not already done by the caller is NOT this
// function's job (res is taken as input so cmd/certifaiger can report resolution
// diagnostics before committing to emission). It returns every obligation
// check plus the exit-code bitmask for the safety family.
func EmitAll(model, witness *aiger.AIG, res shared.Result, caps quant.Levels, log hclog.Logger) ([]Check, int, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	if !model.Reencoded() || !witness.Reencoded() {
		return nil, 0, aiger.ErrNotReencoded
	}

	stratified := stratify.Analyze(witness)
	levels, err := quant.Plan(witness, stratified, res.Extended, caps)
	if err != nil {
		return nil, 0, fmt.Errorf("obligation: %w", err)
	}
	log.Debug("quantifier levels planned", "reset", levels.Reset, "transition", levels.Transition,
		"property", levels.Property, "base", levels.Base, "step", levels.Step)

	// Each obligation below reads only model/witness/res (immutable views
	// set up by the caller) and writes exclusively into its own fresh
	// *aiger.Builder; no package-level or shared mutable state is touched,
	// so the independent obligations can be emitted concurrently. jobs is
	// built in final output order and each job writes only its own
	// results[i] slot, so the order is preserved regardless of which
	// goroutine finishes first.
	type job struct {
		name string
		run  func() ([]Check, error)
	}
	jobs := []job{
		{"reset", func() ([]Check, error) {
			c, err := Reset(model, witness, res, levels.Reset)
			return []Check{c}, err
		}},
		{"transition", func() ([]Check, error) {
			c, err := Transition(model, witness, res, levels.Transition)
			return []Check{c}, err
		}},
		{"property", func() ([]Check, error) {
			c, err := Property(model, witness, res, levels.Property)
			return []Check{c}, err
		}},
		{"base", func() ([]Check, error) {
			c, err := Base(witness)
			return []Check{c}, err
		}},
		{"step", func() ([]Check, error) {
			c, err := Step(witness, res, levels.Step)
			return []Check{c}, err
		}},
	}

	if n := JusticeCount(model, witness); n > 0 {
		log.Debug("emitting liveness obligations", "justice_count", n)
		for j := 0; j < n; j++ {
			j := j
			jobs = append(jobs, job{
				name: fmt.Sprintf("liveness[%d]", j),
				run:  func() ([]Check, error) { return emitLivenessFamily(model, witness, res, j) },
			})
		}
	}

	results := make([][]Check, len(jobs))
	errs := make([]error, len(jobs))
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, j job) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i], errs[i] = j.run()
		}(i, j)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, 0, fmt.Errorf("obligation: %s: %w", jobs[i].name, err)
		}
	}

	var checks []Check
	for _, r := range results {
		checks = append(checks, r...)
	}
	for _, c := range checks {
		log.Debug("emitted obligation", "name", c.Name, "quantified", c.Quantified)
	}

	return checks, ExitBits(levels), nil
}

func emitLivenessFamily(model, witness *aiger.AIG, res shared.Result, j int) ([]Check, error) {
	decrease, err := Decrease(model, witness, res, j)
	if err != nil {
		return nil, err
	}
	closure, err := Closure(model, witness, res, j)
	if err != nil {
		return nil, err
	}
	cover, err := Cover(model, witness, res, j)
	if err != nil {
		return nil, err
	}
	consistent, err := Consistent(model, witness, res, j)
	if err != nil {
		return nil, err
	}
	live, err := Live(model, witness, res, j)
	if err != nil {
		return nil, err
	}
	return []Check{decrease, closure, cover, consistent, live}, nil
}
