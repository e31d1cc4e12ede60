package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/export/roster"
	"github.com/lovelyhome/carehome/internal/store/memory"
)

const (
	homesRange     = roster.HomesSheet + "!A:H"
	residentsRange = roster.ResidentsSheet + "!A:J"
)

// RosterSync mirrors the current roster into the spreadsheet.
type RosterSync struct {
	repo   Repository
	logger *zap.Logger
}

// NewRosterSync wires a roster mirror on top of repo.
func NewRosterSync(repo Repository, logger *zap.Logger) *RosterSync {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterSync{repo: repo, logger: logger}
}

// Sync overwrites the Homes and Residents tabs with snap.
func (s *RosterSync) Sync(ctx context.Context, snap memory.Snapshot) error {
	if err := s.repo.ReplaceRange(ctx, homesRange, roster.HomeRows(snap.Homes)); err != nil {
		return fmt.Errorf("sync homes: %w", err)
	}
	if err := s.repo.ReplaceRange(ctx, residentsRange, roster.ResidentRows(snap.Residents, snap.Homes)); err != nil {
		return fmt.Errorf("sync residents: %w", err)
	}
	s.logger.Info("roster synced",
		zap.Int("homes", len(snap.Homes)),
		zap.Int("residents", len(snap.Residents)))
	return nil
}
