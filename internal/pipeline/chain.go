package pipeline

import "context"

// Outcome is the tagged result of a step.
type Outcome int

const (
	// Continue means the step ran (or had nothing to do) and the
	// chain should proceed.
	Continue Outcome = iota
	// Skip means a required input was absent; the step recorded why
	// on the request and the chain still proceeds.
	Skip
)

// Step is a single stage of a chain. A returned error is a hard
// business-rule violation: the chain stops immediately and the error
// propagates to the caller.
type Step interface {
	Name() string
	Run(ctx context.Context, req *Request) (Outcome, error)
}

// Chain is an ordered list of steps. Ordering is fixed at construction
// and significant: callers must not reorder steps.
type Chain struct {
	steps []Step
}

func NewChain(steps ...Step) *Chain {
	return &Chain{steps: steps}
}

// Run executes every step in order against req. It returns the first
// hard failure, or nil once the last step has run. Skips never stop
// the chain; they accumulate on the request.
func (c *Chain) Run(ctx context.Context, req *Request) error {
	for _, step := range c.steps {
		if _, err := step.Run(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
