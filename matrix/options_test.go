// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"log/slog"
	"runtime"
	"testing"

	"github.com/katalvlaran/parmul/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies NewOptions() matches the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultWorkers, o.Workers())
}

// TestOptions_LastWriterWins ensures later setters override earlier ones.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithWorkers(2), matrix.WithWorkers(7))
	require.Equal(t, 7, o.Workers())

	o = matrix.NewOptions(matrix.WithWorkers(3), matrix.WithAutoWorkers())
	require.Equal(t, runtime.GOMAXPROCS(0), o.Workers())
}

// TestWithLogger_NilKeepsDefault: a nil logger neither clears the default nor
// an earlier logger, and a pool built with it can still log.
func TestWithLogger_NilKeepsDefault(t *testing.T) {
	o := matrix.NewOptions(matrix.WithLogger(nil))
	require.NotNil(t, o.Logger())
	require.NotPanics(t, func() { o.Logger().Error("discarded") })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, nil))
	o = matrix.NewOptions(matrix.WithLogger(custom), matrix.WithLogger(nil))
	require.Same(t, custom, o.Logger())

	// A failing cell makes the worker log on its own goroutine; a nil logger
	// there would crash the test binary before the reply arrives.
	p := matrix.NewPool[int](matrix.WithWorkers(1), matrix.WithLogger(nil))
	f, err := p.Submit(matrix.TaskInput[int]{Row: matrix.Vector[int]{1, 2}, Col: matrix.Vector[int]{1}})
	require.NoError(t, err)
	_, err = f.Wait()
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)
	require.NotPanics(t, func() { require.NoError(t, p.Close()) })
}

// TestOptions_PanicOnInvalid checks that constructors reject programmer errors.
func TestOptions_PanicOnInvalid(t *testing.T) {
	require.Panics(t, func() { matrix.WithWorkers(0) })
	require.Panics(t, func() { matrix.WithWorkers(-3) })
	require.Panics(t, func() { matrix.WithQueueSize(-1) })
	require.Panics(t, func() { matrix.WithRouter(nil) })
	require.NotPanics(t, func() { matrix.WithQueueSize(0) })
}

func TestRoundRobin(t *testing.T) {
	for idx := 0; idx < 20; idx++ {
		require.Equal(t, idx%4, matrix.RoundRobin(idx, 4))
	}
}
