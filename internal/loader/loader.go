// Package loader reads process descriptors for the simulator.
//
// Two file layouts are understood. The text layout starts with the number of
// processes followed by one "arrival burst [priority]" line per process. The
// CSV layout has one "arrival,burst[,priority]" row per process. Process ids
// are assigned in load order, starting at 0.
package loader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cpusched/internal/sched"
)

var (
	ErrMalformedRecord   = errors.New("malformed record")
	ErrSourceUnavailable = errors.New("process source unavailable")
)

// LoadFile opens path and loads it as CSV when it has a .csv extension and as
// the count-prefixed text layout otherwise.
func LoadFile(path string) ([]sched.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return LoadCSV(f)
	}
	return Load(f)
}

// Load reads the count-prefixed text layout. Blank lines are ignored.
func Load(r io.Reader) ([]sched.Process, error) {
	lines, err := nonBlankLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: missing process count", sched.ErrInvalidProcessCount)
	}

	count, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: process count %q", ErrMalformedRecord, lines[0])
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", sched.ErrInvalidProcessCount, count)
	}

	records := lines[1:]
	if len(records) < count {
		return nil, fmt.Errorf("%w: incomplete data at process %d", ErrMalformedRecord, len(records))
	}

	processes := make([]sched.Process, count)
	for i := 0; i < count; i++ {
		if processes[i], err = parseRecord(int64(i), strings.Fields(records[i])); err != nil {
			return nil, err
		}
	}

	return processes, nil
}

// LoadCSV reads one "arrival,burst[,priority]" row per process.
func LoadCSV(r io.Reader) ([]sched.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrMalformedRecord, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("%w: no rows", sched.ErrInvalidProcessCount)
	}

	processes := make([]sched.Process, len(rows))
	for i := range rows {
		if processes[i], err = parseRecord(int64(i), rows[i]); err != nil {
			return nil, err
		}
	}

	return processes, nil
}

func parseRecord(id int64, fields []string) (sched.Process, error) {
	if len(fields) != 2 && len(fields) != 3 {
		return sched.Process{}, fmt.Errorf("%w: process %d has %d fields, want 2 or 3",
			ErrMalformedRecord, id, len(fields))
	}

	values := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return sched.Process{}, fmt.Errorf("%w: process %d: %q is not an integer", ErrMalformedRecord, id, f)
		}
		if v < 0 {
			return sched.Process{}, fmt.Errorf("%w: process %d: %d", sched.ErrNegativeValue, id, v)
		}
		values[i] = v
	}

	priority := sched.NoPriority()
	if len(values) == 3 {
		priority = sched.WithPriority(values[2])
	}

	return sched.NewProcess(id, values[0], values[1], priority), nil
}

func nonBlankLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return lines, nil
}
