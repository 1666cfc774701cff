package evidencerepo

import (
	"context"

	"serviceops/internal/core/domain/model/evidence"
	"serviceops/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormEvidenceRepository implements EvidenceRepository using GORM.
type GormEvidenceRepository struct {
	db *gorm.DB
}

// NewGormEvidenceRepository creates a new GORM evidence repository.
func NewGormEvidenceRepository(db *gorm.DB) *GormEvidenceRepository {
	return &GormEvidenceRepository{db: db}
}

// Add saves a new evidence record to the database.
func (r *GormEvidenceRepository) Add(ctx context.Context, record *evidence.Evidence) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByOrder retrieves all evidence records attached to an order, oldest
// first. Returns an empty slice when the order has none.
func (r *GormEvidenceRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*evidence.Evidence, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EvidenceDTO
	if err := r.db.WithContext(ctx).
		Order("uploaded_at ASC").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	records := make([]*evidence.Evidence, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
