package surveyrepo

import (
	"context"
	"time"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/core/domain/model/survey"
	"serviceops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSurveyRepository implements SurveyRepository using GORM.
type GormSurveyRepository struct {
	db *gorm.DB
}

// NewGormSurveyRepository creates a new GORM survey repository.
func NewGormSurveyRepository(db *gorm.DB) *GormSurveyRepository {
	return &GormSurveyRepository{db: db}
}

// GetOrCreate returns the survey for an order, creating it when none exists.
//
// Creation uses an insert with conflict-do-nothing on order_id followed by a
// read, so two concurrent dispatches of the survey side effect converge on the
// same row instead of failing on the unique index.
func (r *GormSurveyRepository) GetOrCreate(ctx context.Context, orderID kernel.UUID) (*survey.Survey, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	record, err := survey.NewSurvey(kernel.NewUUID(), orderID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoNothing: true,
		}).
		Create(&dto).Error; err != nil {
		return nil, err
	}

	var stored SurveyDTO
	if err := r.db.WithContext(ctx).First(&stored, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(stored)
}

// ListAwaitingCompletion retrieves surveys not yet answered, oldest first.
func (r *GormSurveyRepository) ListAwaitingCompletion(ctx context.Context) ([]*survey.Survey, error) {
	var dtos []SurveyDTO
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&dtos, "completed_at IS NULL").Error; err != nil {
		return nil, err
	}

	records := make([]*survey.Survey, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Update persists reminder and completion stamps on an existing survey.
func (r *GormSurveyRepository) Update(ctx context.Context, record *survey.Survey) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Model(&SurveyDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"reminded_at":  dto.RemindedAt,
			"completed_at": dto.CompletedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&SurveyDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("survey", record.ID().String())
		}
	}

	return nil
}
