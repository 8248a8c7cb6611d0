// Package console is the headless front end: one command per input line,
// one JSON reply per output line.
package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/queuecommander/arena/internal/dispatcher"
	"github.com/queuecommander/arena/internal/util"
)

// CmdTimestamp is answered by the console itself
const CmdTimestamp = ":TIMESTAMP:"

// Commander runs a dispatched command
type Commander interface {
	Dispatch(e dispatcher.Event) (any, error)
}

// Dependencies holds the collaborators of a Console. Nil fields other
// than Dispatcher get defaults.
type Dependencies struct {
	Dispatcher Commander
	In         io.Reader
	Out        io.Writer
	Logger     *slog.Logger
	Now        func() time.Time
}

// Console reads commands of the form COMMAND|arg|arg
type Console struct {
	deps Dependencies
}

// New creates a Console
func New(deps Dependencies) (*Console, error) {
	if deps.Dispatcher == nil {
		return nil, errors.New("console: dispatcher is required")
	}
	if deps.In == nil {
		deps.In = strings.NewReader("")
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Console{deps: deps}, nil
}

// Run answers lines until the input ends or ctx is done. It returns the
// read error, if any; EOF is a normal stop.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.deps.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("reading console input: %w", err)
					}
				default:
				}
				return nil
			}
			reply := c.Handle(line)
			if reply == "" {
				continue
			}
			if _, err := fmt.Fprintln(c.deps.Out, reply); err != nil {
				return fmt.Errorf("writing console reply: %w", err)
			}
		}
	}
}

// Handle answers a single input line. Blank lines and # comments yield "".
func (c *Console) Handle(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ""
	}

	parts := strings.Split(line, "|")
	command := strings.TrimSpace(parts[0])
	args := util.CleanArgs(parts[1:])

	if command == CmdTimestamp {
		return formatResponse(command, getTimestamp(c.deps.Now()), nil)
	}

	result, err := c.deps.Dispatcher.Dispatch(dispatcher.Event{
		Command:   command,
		Args:      args,
		Timestamp: c.deps.Now(),
	})
	if err != nil {
		c.deps.Logger.Debug("Console command failed", "command", command, "error", err)
	}
	return formatResponse(command, result, err)
}

// formatResponse renders a dispatch outcome as a JSON array
func formatResponse(command string, result any, err error) string {
	reply := []any{"ok", command}
	switch {
	case err != nil:
		reply = []any{"error", command, err.Error()}
	case result != nil:
		reply = append(reply, result)
	}

	b, mErr := json.Marshal(reply)
	if mErr != nil {
		b, _ = json.Marshal([]any{"error", command, mErr.Error()})
	}
	return string(b)
}

func getTimestamp(now time.Time) string {
	return fmt.Sprintf("%d", now.UTC().UnixNano())
}
