package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitValidatorConcurrent(t *testing.T) {
	t.Parallel()

	const workers = 16
	got := make([]any, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			InitValidator()
			got[i] = Validate
		}(i)
	}
	wg.Wait()

	require.NotNil(t, Validate)
	for _, v := range got {
		assert.Same(t, Validate, v)
	}
}
