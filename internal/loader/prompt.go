package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"cpusched/internal/sched"
)

// Prompt asks for the processes interactively on w, reading answers from r.
// Negative or unparseable answers are asked again. Running out of input is
// reported as ErrSourceUnavailable.
func Prompt(r io.Reader, w io.Writer, withPriority bool) ([]sched.Process, error) {
	return NewPrompter(r, w).Processes(withPriority)
}

// Prompter asks questions on one writer and reads the answers, one word at a
// time, from one reader. Reuse the same Prompter for every question asked over
// a reader so no buffered answer is lost.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewScanner(r), out: w}
	p.in.Split(bufio.ScanWords)
	return p
}

func (p *Prompter) Processes(withPriority bool) ([]sched.Process, error) {
	count, err := p.ask("Enter number of processes: ", 1)
	if err != nil {
		return nil, err
	}

	processes := make([]sched.Process, count)
	for i := range processes {
		_, _ = fmt.Fprintf(p.out, "\nProcess %d:-\n", i)

		arrival, err := p.ask("\tArrival time: ", 0)
		if err != nil {
			return nil, err
		}
		burst, err := p.ask("\tBurst time: ", 0)
		if err != nil {
			return nil, err
		}

		priority := sched.NoPriority()
		if withPriority {
			v, err := p.ask("\tPriority: ", 0)
			if err != nil {
				return nil, err
			}
			priority = sched.WithPriority(v)
		}

		processes[i] = sched.NewProcess(int64(i), arrival, burst, priority)
	}

	return processes, nil
}

// Quantum asks for the Round-robin time slice until a positive one is given.
func (p *Prompter) Quantum() (int64, error) {
	return p.ask("\nEnter time slice: ", 1)
}

// ask repeats question until an integer of at least lowest is answered.
func (p *Prompter) ask(question string, lowest int64) (int64, error) {
	for {
		_, _ = fmt.Fprint(p.out, question)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
			}
			return 0, fmt.Errorf("%w: input ended", ErrSourceUnavailable)
		}

		v, err := strconv.ParseInt(p.in.Text(), 10, 64)
		if err == nil && v >= lowest {
			return v, nil
		}
		_, _ = fmt.Fprintln(p.out, "\nInvalid value! Enter again!")
	}
}
