package repository

import (
	"context"
	"sync"

	"prepay-engine/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository.
type CalculationRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.CalculationRecord
}

// NewCalculationRepositoryMemory creates a new in-memory calculation repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []domain.CalculationRecord{},
	}
}

// Save stores the calculation record in memory.
func (r *CalculationRepositoryMemory) Save(
	_ context.Context,
	record domain.CalculationRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, record)
	return nil
}

// All returns a copy of the stored records.
func (r *CalculationRepositoryMemory) All() []domain.CalculationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.CalculationRecord, len(r.data))
	copy(out, r.data)
	return out
}
