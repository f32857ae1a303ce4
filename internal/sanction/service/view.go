package service

import (
	"context"

	"warden/internal/sanction/models"
	id "warden/pkg/domain"
)

// Get returns one sanction record as currently persisted.
func (s *Service) Get(ctx context.Context, sanctionID id.SanctionID) (*models.SanctionRecord, error) {
	return s.lookup(ctx, sanctionID)
}
