package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	for _, p := range Policies {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
		assert.NotEmpty(t, p.Title())
	}

	got, err := ParsePolicy("  SRTF ")
	require.NoError(t, err)
	assert.Equal(t, SRTF, got)

	_, err = ParsePolicy("lottery")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestPolicy_Kind(t *testing.T) {
	tests := []struct {
		policy   Policy
		kind     Kind
		priority bool
	}{
		{FCFS, Batch, false},
		{SJF, Batch, false},
		{HRRN, Batch, false},
		{PriorityNP, Batch, true},
		{LJF, Batch, false},
		{SRTF, Tick, false},
		{PriorityPreemptive, Tick, true},
		{LRTF, Tick, false},
		{RoundRobin, Quantum, false},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.policy.Kind())
			assert.Equal(t, tt.priority, tt.policy.RequiresPriority())
		})
	}
}

func TestResponseRatio(t *testing.T) {
	p := NewProcess(0, 2, 4, NoPriority())
	assert.InDelta(t, 1.0, responseRatio(&p, 2), 1e-9)
	assert.InDelta(t, 2.5, responseRatio(&p, 8), 1e-9)
}
