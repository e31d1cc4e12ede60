package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/domain/models"
)

// ErrInvalidArguments indicates the command payload could not be parsed.
var ErrInvalidArguments = errors.New("invalid command arguments")

// ErrUnsupportedCommand indicates we do not support the requested command.
var ErrUnsupportedCommand = errors.New("unsupported command")

// maxCheckupDays bounds the look-ahead a chat command may ask for.
const maxCheckupDays = 90

// HelpText lists the commands the coordinator can send.
const HelpText = "Commands:\n" +
	"/occupancy - occupancy of every home\n" +
	"/checkups [days] - upcoming and overdue checkups\n" +
	"/home <name> - details of one home\n" +
	"/help - this list"

// ReportingAdapter defines the reporting functions required by the dispatcher.
type ReportingAdapter interface {
	OccupancySummary(ctx context.Context) (string, error)
	CheckupDigestWithin(ctx context.Context, now time.Time, days int) (string, error)
	WindowDays() int
}

// RosterReader looks up homes and their residents.
type RosterReader interface {
	Homes() []models.Home
	ResidentsOfHome(homeID string) ([]models.Resident, error)
}

// Dispatcher answers parsed coordinator commands.
type Dispatcher interface {
	HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error)
}

// Service implements the Dispatcher interface. It only reads.
type Service struct {
	reporting ReportingAdapter
	roster    RosterReader
	logger    *zap.Logger
	now       func() time.Time
}

// NewService constructs a command dispatcher.
func NewService(reporting ReportingAdapter, roster RosterReader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		reporting: reporting,
		roster:    roster,
		logger:    logger,
		now:       time.Now,
	}
}

// HandleCommand runs the command and returns the reply text.
func (s *Service) HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error) {
	s.logger.Debug("dispatching command", zap.String("command", string(cmd.Type)), zap.String("sender", sender), zap.Strings("args", cmd.Args))

	switch cmd.Type {
	case models.CommandOccupancy:
		return s.reporting.OccupancySummary(ctx)
	case models.CommandCheckups:
		days, err := s.parseDays(cmd.Args)
		if err != nil {
			return "", err
		}
		return s.reporting.CheckupDigestWithin(ctx, s.now(), days)
	case models.CommandHome:
		return s.describeHome(strings.Join(cmd.Args, " "))
	case models.CommandHelp:
		return HelpText, nil
	default:
		return "", ErrUnsupportedCommand
	}
}

func (s *Service) parseDays(args []string) (int, error) {
	if len(args) == 0 {
		return s.reporting.WindowDays(), nil
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days < 0 || days > maxCheckupDays {
		return 0, fmt.Errorf("%w: days must be between 0 and %d", ErrInvalidArguments, maxCheckupDays)
	}
	return days, nil
}

// describeHome matches the first home whose name contains query, ignoring case.
func (s *Service) describeHome(query string) (string, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "", fmt.Errorf("%w: home name is required", ErrInvalidArguments)
	}

	for _, h := range s.roster.Homes() {
		if !strings.Contains(strings.ToLower(h.Name), query) {
			continue
		}
		residents, err := s.roster.ResidentsOfHome(h.ID)
		if err != nil {
			return "", fmt.Errorf("describe home %s: %w", h.ID, err)
		}

		msg := fmt.Sprintf("%s (%s, %s): %d/%d, %d tracked residents. Contact: %s %s",
			h.Name, h.Type, h.Location, h.CurrentOccupancy, h.Capacity, len(residents), h.ContactPerson, h.ContactNumber)
		if h.OverCapacity() {
			msg += "\nWarning: over capacity."
		}
		return msg, nil
	}
	return fmt.Sprintf("No home matches %q.", query), nil
}
