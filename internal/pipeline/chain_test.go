package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStep struct {
	name    string
	outcome Outcome
	err     error
	calls   *[]string
}

func (s recordingStep) Name() string { return s.name }

func (s recordingStep) Run(ctx context.Context, req *Request) (Outcome, error) {
	*s.calls = append(*s.calls, s.name)
	if s.outcome == Skip {
		return req.Skipped(s.name + " skipped")
	}
	return s.outcome, s.err
}

func TestChain_RunsStepsInOrder(t *testing.T) {
	var calls []string
	chain := NewChain(
		recordingStep{name: "first", calls: &calls},
		recordingStep{name: "second", calls: &calls},
		recordingStep{name: "third", calls: &calls},
	)

	err := chain.Run(context.Background(), NewRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestChain_SkipDoesNotStopChain(t *testing.T) {
	var calls []string
	req := NewRequest()
	chain := NewChain(
		recordingStep{name: "first", outcome: Skip, calls: &calls},
		recordingStep{name: "second", calls: &calls},
	)

	err := chain.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, []string{"first skipped"}, req.Skips)
}

func TestChain_ErrorStopsChain(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	chain := NewChain(
		recordingStep{name: "first", calls: &calls},
		recordingStep{name: "second", err: boom, calls: &calls},
		recordingStep{name: "third", calls: &calls},
	)

	err := chain.Run(context.Background(), NewRequest())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestChain_EmptyChainIsNoop(t *testing.T) {
	err := NewChain().Run(context.Background(), NewRequest())
	assert.NoError(t, err)
}
