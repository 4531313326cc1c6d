package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/ytget/list-manager/internal/store"
)

var (
	// ErrUnknownCommand is returned for a script line that names no command
	ErrUnknownCommand = errors.New("unknown command")
	// ErrBadIndex is returned when remove is not given a number
	ErrBadIndex = errors.New("bad index")
	// ErrCommandsFailed is returned after a ContinueOnError run that had failures
	ErrCommandsFailed = errors.New("commands failed")
)

const helpText = `Commands:
  add <text>      add an item
  remove <index>  remove the item shown at index
  clear           remove every item
  list            print the list
  help            show this help
  quit            stop reading`

// Runner reads commands line by line and applies them to a list store
type Runner struct {
	// ContinueOnError prints failing commands and keeps reading
	ContinueOnError bool

	out      io.Writer
	colored  bool
	table    *TableRenderer
	store    *store.ListStore
	failures int
}

// NewRunner creates a runner whose table and notices go to out
func NewRunner(out io.Writer, colored bool) (*Runner, error) {
	table := NewTableRenderer(out, colored)
	s, err := store.New(table, NewColorNotifier(out, colored))
	if err != nil {
		return nil, fmt.Errorf("create console runner: %w", err)
	}

	return &Runner{
		out:     out,
		colored: colored,
		table:   table,
		store:   s,
	}, nil
}

// Store returns the list store driven by the runner
func (r *Runner) Store() *store.ListStore {
	return r.store
}

// Table returns the renderer the runner prints
func (r *Runner) Table() *TableRenderer {
	return r.table
}

// Failures returns how many commands failed during ContinueOnError runs
func (r *Runner) Failures() int {
	return r.failures
}

// Run executes every line of in until EOF, quit or ctx is done
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	r.failures = 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		quit, err := r.exec(line)
		if err != nil {
			err = fmt.Errorf("line %d: %w", lineNo, err)
			if !r.ContinueOnError {
				return err
			}
			r.failures++
			_, _ = newColor(r.colored, color.FgRed).Fprintf(r.out, "error: %v\n", err)
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}

	if r.failures > 0 {
		return fmt.Errorf("%d %s: %w", r.failures, plural(r.failures, "command", "commands"), ErrCommandsFailed)
	}
	return nil
}

// exec runs one command line and reports whether reading should stop
func (r *Runner) exec(line string) (bool, error) {
	name, arg, _ := strings.Cut(line, " ")

	switch strings.ToLower(name) {
	case "add":
		r.store.AddItem(arg, nil)
	case "remove", "rm":
		index, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return false, fmt.Errorf("remove %q: %w", arg, ErrBadIndex)
		}
		return false, r.table.Press(index)
	case "clear":
		r.store.Clear()
	case "list", "ls":
		r.table.Print()
	case "help":
		_, _ = fmt.Fprintln(r.out, helpText)
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}
	return false, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
