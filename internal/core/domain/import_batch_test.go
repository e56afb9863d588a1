package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBatchStatusTransitions(t *testing.T) {
	all := []BatchStatus{BatchPending, BatchProcessing, BatchCompleted, BatchFailed}
	allowed := map[BatchStatus][]BatchStatus{
		BatchPending:    {BatchProcessing, BatchFailed},
		BatchProcessing: {BatchCompleted, BatchFailed},
	}
	for _, from := range all {
		for _, to := range all {
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestBatchStatusTerminal(t *testing.T) {
	assert.False(t, BatchPending.Terminal())
	assert.False(t, BatchProcessing.Terminal())
	assert.True(t, BatchCompleted.Terminal())
	assert.True(t, BatchFailed.Terminal())
	assert.False(t, BatchStatus("Archived").Valid())
}

func TestBatchUpdateStamps(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	started, completed := BatchUpdate{Status: BatchProcessing, At: at}.Stamps()
	if assert.NotNil(t, started) {
		assert.Equal(t, at, *started)
	}
	assert.Nil(t, completed)

	started, completed = BatchUpdate{Status: BatchFailed, At: at}.Stamps()
	assert.Nil(t, started)
	if assert.NotNil(t, completed) {
		assert.Equal(t, at, *completed)
	}
}
