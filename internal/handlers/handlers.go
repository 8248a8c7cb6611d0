// Package handlers exposes arena actions as dispatcher commands.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/queuecommander/arena/internal/arena"
	"github.com/queuecommander/arena/internal/dispatcher"
	"github.com/queuecommander/arena/internal/util"
)

// Command names understood by the dispatcher
const (
	CmdEnqueue          = ":ENQUEUE:"
	CmdDeploy           = ":DEPLOY:"
	CmdClearQueue       = ":CLEAR:QUEUE:"
	CmdClearBattlefield = ":CLEAR:BATTLEFIELD:"
	CmdReset            = ":RESET:"
	CmdLeave            = ":LEAVE:"
	CmdStatus           = ":STATUS:"
	CmdSnapshot         = ":SNAPSHOT:"
	CmdCatalog          = ":CATALOG:"
	CmdHelp             = ":HELP:"
)

// ErrMissingArgument is returned when a command needs an argument it did not get
var ErrMissingArgument = errors.New("missing argument")

// StatusSource produces the lines reported by :STATUS:
type StatusSource interface {
	Status() []string
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Arena  *arena.Arena
	Status StatusSource
	Logger *slog.Logger
}

// Service provides handler methods for the arena commands
type Service struct {
	deps Dependencies
	help func() []dispatcher.CommandInfo
}

// NewService creates a new handler service
func NewService(deps Dependencies) *Service {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	return &Service{deps: deps}
}

// RegisterHandlers registers every arena command on d
func (s *Service) RegisterHandlers(d *dispatcher.Dispatcher) {
	s.help = d.Commands

	d.Register(CmdEnqueue, s.handleEnqueue, dispatcher.Logged(),
		dispatcher.Described("add a unit (ID or name) to the back of the queue"))
	d.Register(CmdDeploy, s.handleDeploy, dispatcher.Logged(),
		dispatcher.Described("deploy the unit at the front of the queue"))
	d.Register(CmdClearQueue, s.handleClearQueue, dispatcher.Logged(),
		dispatcher.Described("remove every waiting unit"))
	d.Register(CmdClearBattlefield, s.handleClearBattlefield, dispatcher.Logged(),
		dispatcher.Described("remove deployed units and attack markers"))
	d.Register(CmdReset, s.handleReset, dispatcher.Logged(),
		dispatcher.Described("restore the initial arena state"))
	d.Register(CmdLeave, s.handleLeave, dispatcher.Logged(),
		dispatcher.Described("leave the arena, resetting it without a notification"))
	d.Register(CmdStatus, s.handleStatus,
		dispatcher.Described("show queue and battlefield status"))
	d.Register(CmdSnapshot, s.handleSnapshot,
		dispatcher.Described("dump the full arena state as JSON"))
	d.Register(CmdCatalog, s.handleCatalog,
		dispatcher.Described("list the units that can be enqueued"))
	d.Register(CmdHelp, s.handleHelp,
		dispatcher.Described("list the available commands"))

	s.deps.Logger.Debug("Registered arena handlers", "count", len(d.Commands()))
}

func (s *Service) handleEnqueue(e dispatcher.Event) (any, error) {
	key := util.CleanArg(e.Arg(0))
	if key == "" {
		return nil, fmt.Errorf("%s: %w: unit key", CmdEnqueue, ErrMissingArgument)
	}
	entry, err := s.deps.Arena.EnqueueByKey(key)
	if err != nil {
		return nil, err
	}
	return entry.InstanceID, nil
}

func (s *Service) handleDeploy(e dispatcher.Event) (any, error) {
	d, err := s.deps.Arena.Deploy()
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("%s@%d", d.Name, d.Position), nil
}

func (s *Service) handleClearQueue(e dispatcher.Event) (any, error) {
	s.deps.Arena.ClearQueue()
	return nil, nil
}

func (s *Service) handleClearBattlefield(e dispatcher.Event) (any, error) {
	s.deps.Arena.ClearBattlefield()
	return nil, nil
}

func (s *Service) handleReset(e dispatcher.Event) (any, error) {
	s.deps.Arena.ResetAll()
	return nil, nil
}

func (s *Service) handleLeave(e dispatcher.Event) (any, error) {
	s.deps.Arena.Leave()
	return nil, nil
}

func (s *Service) handleStatus(e dispatcher.Event) (any, error) {
	if s.deps.Status == nil {
		st := s.deps.Arena.Stats()
		return fmt.Sprintf("queue: %d waiting | battlefield: %d deployed", st.Waiting, st.Deployed), nil
	}
	return strings.Join(s.deps.Status.Status(), " | "), nil
}

func (s *Service) handleSnapshot(e dispatcher.Event) (any, error) {
	data, err := json.Marshal(s.deps.Arena.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return string(data), nil
}

func (s *Service) handleCatalog(e dispatcher.Event) (any, error) {
	units := s.deps.Arena.Catalog().Units()
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = fmt.Sprintf("%s:%s (%s)", u.ID, u.Label(), u.Faction)
	}
	return strings.Join(parts, ", "), nil
}

func (s *Service) handleHelp(e dispatcher.Event) (any, error) {
	if s.help == nil {
		return "", nil
	}
	cmds := s.help()
	parts := make([]string, 0, len(cmds))
	for _, c := range cmds {
		if c.Description == "" {
			parts = append(parts, c.Command)
			continue
		}
		parts = append(parts, c.Command+" "+c.Description)
	}
	return strings.Join(parts, "; "), nil
}
