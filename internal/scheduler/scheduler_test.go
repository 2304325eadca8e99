package scheduler

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testJob struct {
	name string
	runs int
	err  error
}

func (j *testJob) Run() error   { j.runs++; return j.err }
func (j *testJob) Name() string { return j.name }

func TestAddJob_ValidSchedule(t *testing.T) {
	s := New(zerolog.Nop())
	err := s.AddJob("0 0 4 * * *", &testJob{name: "cleanup"})
	assert.NoError(t, err)
}

func TestAddJob_InvalidSchedule(t *testing.T) {
	s := New(zerolog.Nop())
	err := s.AddJob("not a schedule", &testJob{name: "cleanup"})
	assert.Error(t, err)
}

func TestRunNow(t *testing.T) {
	s := New(zerolog.Nop())
	job := &testJob{name: "cleanup"}

	require.NoError(t, s.RunNow(job))
	assert.Equal(t, 1, job.runs)
}

func TestRunNow_PropagatesError(t *testing.T) {
	s := New(zerolog.Nop())
	job := &testJob{name: "cleanup", err: errors.New("boom")}

	assert.Error(t, s.RunNow(job))
}

func TestStartStop(t *testing.T) {
	s := New(zerolog.Nop())
	require.NoError(t, s.AddJob("@every 1h", &testJob{name: "noop"}))

	s.Start()
	s.Stop()
}
