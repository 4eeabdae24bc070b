package run

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunnerAggregatesErrors(t *testing.T) {
	boom := errors.New("boom")
	err := NewRunner().Go(
		RunFunc(func(context.Context) error { return nil }),
		NamedRun("failing", RunFunc(func(context.Context) error { return boom })),
	).Wait()
	require.Error(t, err)
	agg, ok := err.(*AggregatedError)
	require.True(t, ok)
	require.Len(t, agg.Errors, 1)
	require.Equal(t, boom, agg.Errors[0])
}

func TestRunnerIgnoresCancellation(t *testing.T) {
	err := NewRunner().Go(
		RunFunc(func(context.Context) error { return context.Canceled }),
	).Wait()
	require.NoError(t, err)
}

func TestRunWithContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	unblock := make(chan struct{})
	canceled := false
	go cancel()
	err := RunWithContextCancel(ctx, func() { canceled = true; close(unblock) }, func() error {
		<-unblock
		return nil
	})
	require.Equal(t, context.Canceled, err)
	require.True(t, canceled)
}

func TestAggregatedErrorEmpty(t *testing.T) {
	var errs AggregatedError
	errs.Add(nil, nil)
	require.NoError(t, errs.Aggregate())
}
