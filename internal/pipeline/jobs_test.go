package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/simcheck/internal/compare"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	assert.Equal(t, ContentHashHex(data), ContentHashHex(data))
	// SHA-256 of "hello world" is well-known.
	assert.Equal(t,
		"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		ContentHashHex(data))
}

func TestContentHashHex_DifferentInputs(t *testing.T) {
	assert.NotEqual(t, ContentHashHex([]byte("aaa")), ContentHashHex([]byte("bbb")))
}

func TestJob_StateTransitions(t *testing.T) {
	job := &Job{
		ID:        "test-1",
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusParsing, "parsing"},
		{StatusComparing, "comparing"},
		{StatusCompleted, "done"},
	}

	for _, tr := range transitions {
		before := job.UpdatedAt
		time.Sleep(time.Millisecond)
		job.SetStatus(tr.status, tr.phase)

		assert.Equal(t, tr.status, job.Status)
		assert.Equal(t, tr.phase, job.Phase)
		assert.True(t, job.UpdatedAt.After(before))
	}
}

func TestJob_SnapshotCarriesResultAndErrors(t *testing.T) {
	job := &Job{ID: "snap", Status: StatusQueued, Phase: "queued"}
	snap := job.Snapshot()
	assert.NotNil(t, snap.Errors)
	assert.Nil(t, snap.Result)

	job.AddError("boom")
	job.SetResult(&compare.Result{CombinedScore: 42})
	snap = job.Snapshot()
	require.NotNil(t, snap.Result)
	assert.Equal(t, 42.0, snap.Result.CombinedScore)
	assert.Equal(t, []string{"boom"}, snap.Errors)
}

func TestJobStore_PutGetCleanup(t *testing.T) {
	store := NewJobStore(10 * time.Millisecond)

	job := &Job{ID: "a", UpdatedAt: time.Now()}
	store.Put(job)
	require.Same(t, job, store.Get("a"))
	assert.Nil(t, store.Get("missing"))

	time.Sleep(20 * time.Millisecond)
	store.Cleanup()
	assert.Nil(t, store.Get("a"))
}
