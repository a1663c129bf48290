package id

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonotonicNonZeroID(t *testing.T) {
	gen, err := MonotonicNonZeroID()
	require.NoError(t, err)

	prev := uint64(0)
	for i := 0; i < 1000; i++ {
		n := gen.Number()
		require.Greater(t, n, prev)
		prev = n
	}
	require.NotEmpty(t, gen.Str())
}

func TestMonotonicNonZeroID_DataRace(t *testing.T) {
	gen, err := MonotonicNonZeroID()
	require.NoError(t, err)

	wg := sync.WaitGroup{}
	wg.Add(8)
	seen := sync.Map{}
	for g := 0; g < 8; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				n := gen.Number()
				require.NotZero(t, n)
				_, loaded := seen.LoadOrStore(n, struct{}{})
				require.False(t, loaded)
			}
		}()
	}
	wg.Wait()
}
