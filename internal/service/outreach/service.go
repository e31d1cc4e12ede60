package outreach

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/domain/models"
	"github.com/lovelyhome/carehome/internal/service/notify"
	"github.com/lovelyhome/carehome/internal/store/memory"
)

var (
	// ErrInvalidAmount indicates a donation amount that is neither a preset nor a positive whole number.
	ErrInvalidAmount = errors.New("invalid donation amount")
	// ErrUnsupportedCurrency indicates a currency code outside the offered set.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrUnsupportedCategory indicates a donation category outside the offered set.
	ErrUnsupportedCategory = errors.New("unsupported donation category")
	// ErrInvalidDate indicates a session date that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrUnsupportedRole indicates a speaker role outside the offered set.
	ErrUnsupportedRole = errors.New("unsupported speaker role")
	// ErrUnsupportedDuration indicates a session duration outside the offered set.
	ErrUnsupportedDuration = errors.New("unsupported session duration")
)

// Service backs the public site: donations, the contact form, the session
// schedule and the talent showcase.
type Service struct {
	sessions *memory.Collection[models.SpeakerSession]
	talents  *memory.Collection[models.Talent]
	inbox    *memory.Collection[models.ContactMessage]
	receipts memory.IDGenerator
	notifier notify.Notifier
	now      func() time.Time
	logger   *zap.Logger
}

// NewService wires the outreach service. Content records draw their ids from
// gen; a nil notifier disables coordinator alerts.
func NewService(gen memory.IDGenerator, notifier notify.Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if gen == nil {
		gen = memory.UUIDGenerator{}
	}
	return &Service{
		sessions: memory.NewCollection(gen, func(s *models.SpeakerSession, id string) { s.ID = id }),
		talents:  memory.NewCollection(gen, func(t *models.Talent, id string) { t.ID = id }),
		inbox:    memory.NewCollection(gen, func(m *models.ContactMessage, id string) { m.ID = id }),
		receipts: memory.UUIDGenerator{},
		notifier: notifier,
		now:      time.Now,
		logger:   logger,
	}
}

// notify forwards message to the coordinator. Delivery failures are logged and
// never fail the visitor's request.
func (s *Service) notify(ctx context.Context, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, message); err != nil {
		s.logger.Warn("coordinator notification failed", zap.Error(err))
	}
}
