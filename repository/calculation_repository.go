package repository

import (
	"context"

	"prepay-engine/domain"
)

type CalculationRepository interface {
	Save(ctx context.Context, record domain.CalculationRecord) error
}
