package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpusched/internal/config"
	"cpusched/internal/loader"
	"cpusched/internal/log"
	"cpusched/internal/sched"
)

func TestParseArgs(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte(`{"input":"from-config.txt","policies":["sjf"],"quantum":5,"log_level":"warn"}`), 0o600))

	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr error
	}{
		{
			name: "file only",
			args: []string{"input.txt"},
			want: options{Config: config.Config{Input: "input.txt", Quantum: 2, LogLevel: "info"}},
		},
		{
			name: "flags",
			args: []string{"-policy", "fcfs,rr", "-quantum", "3", "-log-level", "debug", "input.txt"},
			want: options{Config: config.Config{
				Input: "input.txt", Policies: []string{"fcfs", "rr"}, Quantum: 3, LogLevel: "debug",
			}},
		},
		{
			name: "config file",
			args: []string{"-config", cfgPath},
			want: options{Config: config.Config{
				Input: "from-config.txt", Policies: []string{"sjf"}, Quantum: 5, LogLevel: "warn",
			}},
		},
		{
			name: "flags override config file",
			args: []string{"-config", cfgPath, "-quantum", "1", "other.txt"},
			want: options{Config: config.Config{
				Input: "other.txt", Policies: []string{"sjf"}, Quantum: 1, LogLevel: "warn",
			}},
		},
		{
			name: "interactive needs no file",
			args: []string{"-interactive", "-priority"},
			want: options{
				Config:      config.Config{Quantum: 2, LogLevel: "info"},
				Interactive: true,
				Priority:    true,
				AskQuantum:  true,
			},
		},
		{
			name:    "no file",
			args:    nil,
			wantErr: ErrInvalidArgs,
		},
		{
			name:    "two files",
			args:    []string{"a.txt", "b.txt"},
			wantErr: ErrInvalidArgs,
		},
		{
			name:    "unknown flag",
			args:    []string{"-speed", "9", "a.txt"},
			wantErr: ErrInvalidArgs,
		},
		{
			name:    "missing config file",
			args:    []string{"-config", filepath.Join(dir, "missing.json"), "a.txt"},
			wantErr: config.ErrInvalidConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args, io.Discard)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimulate(t *testing.T) {
	processes := []sched.Process{
		sched.NewProcess(0, 0, 4, sched.NoPriority()),
		sched.NewProcess(1, 1, 3, sched.NoPriority()),
	}
	opts := options{Config: config.Config{Quantum: 2}}

	var out, logs bytes.Buffer
	err := simulate(&out, log.NewLogger(&logs, "debug"), opts, processes)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Round-robin")
	assert.Contains(t, out.String(), "Longest-remaining-time-first")
	assert.NotContains(t, out.String(), "Priority (preemptive)")
	assert.Equal(t, 2, strings.Count(logs.String(), "Skipping policy"))
	assert.Equal(t, len(sched.Policies)-2, strings.Count(logs.String(), "Simulation finished"))
}

func TestSimulate_Errors(t *testing.T) {
	processes := []sched.Process{sched.NewProcess(0, 0, 4, sched.NoPriority())}

	err := simulate(io.Discard, log.NewLogger(io.Discard, "info"),
		options{Config: config.Config{Policies: []string{"rr"}}}, processes)
	assert.ErrorIs(t, err, sched.ErrInvalidQuantum)

	err = simulate(io.Discard, log.NewLogger(io.Discard, "info"),
		options{Config: config.Config{Policies: []string{"mlfq"}}}, processes)
	assert.ErrorIs(t, err, sched.ErrUnknownPolicy)
}

func TestLoadProcesses_Interactive(t *testing.T) {
	var out bytes.Buffer
	got, err := loadProcesses(&options{Interactive: true}, strings.NewReader("1 0 3"), &out)
	require.NoError(t, err)
	assert.Equal(t, []sched.Process{sched.NewProcess(0, 0, 3, sched.NoPriority())}, got)
}

func TestParseArgs_InteractiveQuantum(t *testing.T) {
	got, err := parseArgs([]string{"-interactive", "-quantum", "4"}, io.Discard)
	require.NoError(t, err)
	assert.False(t, got.AskQuantum)
	assert.Equal(t, int64(4), got.Quantum)
}

func TestLoadProcesses_AsksQuantum(t *testing.T) {
	tests := []struct {
		name        string
		opts        options
		input       string
		wantQuantum int64
		wantErr     error
	}{
		{
			name:        "round-robin selected",
			opts:        options{Config: config.Config{Quantum: 2}, Interactive: true, AskQuantum: true},
			input:       "1 0 3 0 5",
			wantQuantum: 5,
		},
		{
			name: "round-robin not selected",
			opts: options{
				Config:      config.Config{Policies: []string{"fcfs"}, Quantum: 2},
				Interactive: true,
				AskQuantum:  true,
			},
			input:       "1 0 3",
			wantQuantum: 2,
		},
		{
			name:    "time slice never given",
			opts:    options{Config: config.Config{Quantum: 2}, Interactive: true, AskQuantum: true},
			input:   "1 0 3 -1",
			wantErr: loader.ErrSourceUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			got, err := loadProcesses(&opts, strings.NewReader(tt.input), io.Discard)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []sched.Process{sched.NewProcess(0, 0, 3, sched.NoPriority())}, got)
			assert.Equal(t, tt.wantQuantum, opts.Quantum)
		})
	}
}

func TestSimulate_InvalidInputWritesNothing(t *testing.T) {
	tests := []struct {
		name      string
		opts      options
		processes []sched.Process
		wantErr   error
	}{
		{
			name:      "zero quantum with every policy",
			opts:      options{Config: config.Config{Quantum: 0}},
			processes: []sched.Process{sched.NewProcess(0, 0, 4, sched.NoPriority())},
			wantErr:   sched.ErrInvalidQuantum,
		},
		{
			name:      "negative quantum after other policies",
			opts:      options{Config: config.Config{Policies: []string{"fcfs", "sjf", "rr"}, Quantum: -1}},
			processes: []sched.Process{sched.NewProcess(0, 0, 4, sched.NoPriority())},
			wantErr:   sched.ErrInvalidQuantum,
		},
		{
			name:      "unknown policy after valid ones",
			opts:      options{Config: config.Config{Policies: []string{"fcfs", "mlfq"}, Quantum: 2}},
			processes: []sched.Process{sched.NewProcess(0, 0, 4, sched.NoPriority())},
			wantErr:   sched.ErrUnknownPolicy,
		},
		{
			name:      "no processes",
			opts:      options{Config: config.Config{Quantum: 2}},
			processes: nil,
			wantErr:   sched.ErrInvalidProcessCount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := simulate(&out, log.NewLogger(io.Discard, "info"), tt.opts, tt.processes)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out.String())
		})
	}
}
