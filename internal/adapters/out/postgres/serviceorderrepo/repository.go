package serviceorderrepo

import (
	"context"
	"errors"
	"fmt"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/core/domain/model/serviceorder"
	"serviceops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceOrderRepository implements ServiceOrderRepository using GORM.
type GormServiceOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormServiceOrderRepository creates a new GORM service order repository.
func NewGormServiceOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceOrderRepository {
	return &GormServiceOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new service order to the database.
func (r *GormServiceOrderRepository) Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing service order using optimistic concurrency.
//
// The write carries the version the aggregate was loaded with and only matches
// a row still on that version; the stored version is bumped in the same
// statement. Zero rows affected means either the row is gone or somebody else
// committed in between, distinguished by a follow-up existence check.
func (r *GormServiceOrderRepository) Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ServiceOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"company":               dto.Company,
			"service_type":          dto.ServiceType,
			"priority":              dto.Priority,
			"description":           dto.Description,
			"technician":            dto.Technician,
			"physical_order_number": dto.PhysicalOrderNumber,
			"quotation_id":          dto.QuotationID,
			"status":                dto.Status,
			"version":               dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&ServiceOrderDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			return errs.NewObjectNotFoundError("service order", aggregate.ID().String())
		}

		return errs.NewVersionIsInvalidErrorWithCause(
			"service order",
			fmt.Errorf("order %s was modified concurrently, reload and retry", aggregate.ID()),
		)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a service order by ID.
func (r *GormServiceOrderRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// NextSequence reserves the next order-number value from the database
// sequence. Values are never reused, so a rolled-back creation leaves a gap.
func (r *GormServiceOrderRepository) NextSequence(ctx context.Context) (int64, error) {
	var sequence int64
	if err := r.db.WithContext(ctx).
		Raw("SELECT nextval('service_order_sequence')").
		Scan(&sequence).Error; err != nil {
		return 0, err
	}

	return sequence, nil
}
