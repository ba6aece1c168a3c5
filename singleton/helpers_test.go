package singleton_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// widget is a throwaway type for exercising the generic cells.
type widget struct{ id int32 }

// fanOut starts n goroutines that block on a shared gate, releases them
// together, and returns what each call to get produced.
func fanOut[T any](t *testing.T, n int, get func() T) []T {
	t.Helper()

	gate := make(chan struct{})
	out := make([]T, n)

	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			<-gate
			out[i] = get()
			return nil
		})
	}
	close(gate)
	require.NoError(t, g.Wait())

	return out
}

// distinct counts the distinct pointers in ps.
func distinct[T any](ps []*T) int {
	return len(lo.Uniq(ps))
}
