package dedupe

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrail/fintrail/internal/model"
)

func TestMemoryRegistry_CheckAndRegister(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()

	first, err := r.CheckAndRegister(ctx, model.Fingerprint("abc123"))
	require.NoError(t, err)
	assert.Equal(t, ResultNew, first)

	second, err := r.CheckAndRegister(ctx, model.Fingerprint("abc123"))
	require.NoError(t, err)
	assert.Equal(t, ResultDuplicate, second)

	other, err := r.CheckAndRegister(ctx, model.Fingerprint("def456"))
	require.NoError(t, err)
	assert.Equal(t, ResultNew, other)

	assert.Equal(t, 2, r.Len())
}

func TestMemoryRegistry_ConcurrentExactlyOneNew(t *testing.T) {
	r := NewMemoryRegistry()
	fp := model.Fingerprint("contested")

	const workers = 50
	results := make(chan RegisterResult, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := r.CheckAndRegister(context.Background(), fp)
			assert.NoError(t, err)
			results <- result
		}()
	}
	wg.Wait()
	close(results)

	var news, duplicates int
	for result := range results {
		switch result {
		case ResultNew:
			news++
		case ResultDuplicate:
			duplicates++
		}
	}

	assert.Equal(t, 1, news)
	assert.Equal(t, workers-1, duplicates)
	assert.Equal(t, 1, r.Len())
}
