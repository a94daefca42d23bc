package store

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sure/internal/engine"
)

func sampleResult() *engine.Result {
	return &engine.Result{
		Passes: []engine.Outcome{
			{Seq: 1, Status: engine.StatusPass, Identifier: "Calculator.Add - add5 - value check passed"},
			{Seq: 4, Status: engine.StatusPass, Identifier: "Calculator.Label - scenario for Label - type check passed"},
		},
		Failures: []engine.Outcome{
			{Seq: 2, Status: engine.StatusFail, Identifier: "Calculator.Add - wrong", Message: "Expected 999, got 15"},
		},
		Skips: []engine.Outcome{
			{Seq: 3, Status: engine.StatusSkip, Identifier: "Parser.Parse - scenario for Parse", Message: "WIP"},
		},
	}
}

func TestWriteRun_RoundTrip(t *testing.T) {
	s := createTestStore(t).WithIDs(NewFixedGenerator("run-1"))
	ctx := context.Background()

	id, err := s.WriteRun(ctx, "./internal/examples", sampleResult())
	require.NoError(t, err)
	assert.Equal(t, "run-1", id)

	run, err := s.ReadRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, Run{
		ID:     "run-1",
		Root:   "./internal/examples",
		Counts: Counts{Passed: 2, Failed: 1, Skipped: 1, Total: 4},
	}, run)

	outcomes, err := s.ReadOutcomes(ctx, id, "")
	require.NoError(t, err)
	require.Len(t, outcomes, 4)
	for i, o := range outcomes {
		assert.Equal(t, int64(i+1), o.Seq)
	}
	assert.Equal(t, engine.StatusFail, outcomes[1].Status)
	assert.Equal(t, "Expected 999, got 15", outcomes[1].Message)
}

func TestReadOutcomes_StatusFilter(t *testing.T) {
	s := createTestStore(t).WithIDs(NewFixedGenerator("run-1"))
	ctx := context.Background()

	id, err := s.WriteRun(ctx, ".", sampleResult())
	require.NoError(t, err)

	passes, err := s.ReadOutcomes(ctx, id, engine.StatusPass)
	require.NoError(t, err)
	assert.Len(t, passes, 2)

	warns, err := s.ReadOutcomes(ctx, id, engine.StatusWarn)
	require.NoError(t, err)
	assert.NotNil(t, warns)
	assert.Empty(t, warns)
}

func TestReadRuns_Ordered(t *testing.T) {
	s := createTestStore(t).WithIDs(NewFixedGenerator("run-a", "run-b"))
	ctx := context.Background()

	runs, err := s.ReadRuns(ctx)
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)

	_, err = s.WriteRun(ctx, "first", sampleResult())
	require.NoError(t, err)
	_, err = s.WriteRun(ctx, "second", &engine.Result{})
	require.NoError(t, err)

	runs, err = s.ReadRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "first", runs[0].Root)
	assert.Equal(t, Counts{}, runs[1].Counts)
}

func TestReadRun_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadRun(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestWriteRun_DuplicateIDRollsBack(t *testing.T) {
	s := createTestStore(t).WithIDs(NewFixedGenerator("same", "same"))
	ctx := context.Background()

	_, err := s.WriteRun(ctx, ".", sampleResult())
	require.NoError(t, err)
	_, err = s.WriteRun(ctx, ".", sampleResult())
	require.Error(t, err)

	outcomes, err := s.ReadOutcomes(ctx, "same", "")
	require.NoError(t, err)
	assert.Len(t, outcomes, 4)
}

func TestCounts_Canonical(t *testing.T) {
	data, err := marshalCounts(Counts{Passed: 3, Failed: 1, Total: 4})
	require.NoError(t, err)
	assert.Equal(t, `{"failed":1,"passed":3,"skipped":0,"total":4,"warnings":0}`, data)

	c, err := unmarshalCounts(data)
	require.NoError(t, err)
	assert.Equal(t, Counts{Passed: 3, Failed: 1, Total: 4}, c)
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	const iterations = 1000

	seen := make(map[string]bool, iterations)
	prev := ""
	for i := 0; i < iterations; i++ {
		id := gen.Generate()
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		require.Equal(t, uuid.Version(7), parsed.Version())
		require.False(t, seen[id], "id %s generated twice", id)
		require.GreaterOrEqual(t, id, prev)
		seen[id] = true
		prev = id
	}
}

func TestFixedGenerator(t *testing.T) {
	gen := NewFixedGenerator("a", "b")
	assert.Equal(t, "a", gen.Generate())
	assert.Equal(t, "b", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}

func TestFixedGenerator_ThreadSafe(t *testing.T) {
	ids := make([]string, 100)
	for i := range ids {
		ids[i] = uuid.NewString()
	}
	gen := NewFixedGenerator(ids...)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]bool)
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				id := gen.Generate()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 100)
}
