package dal

import (
	"context"

	"github.com/masjidsuite/donations-service/settings/domain"
)

//go:generate mockery --name Settings --output ./mocks
type Settings interface {
	GetSettings(ctx context.Context) (*domain.MosqueSettings, error)
}
