// Package surveyrepo provides data transfer objects and mapping functions
// for satisfaction survey persistence. At most one survey row exists per
// order, enforced by a unique index on order_id.
package surveyrepo

import (
	"time"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/core/domain/model/survey"

	"github.com/google/uuid"
)

// SurveyDTO represents the database structure for persisting surveys.
type SurveyDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt   time.Time  `gorm:"not null"`
	RemindedAt  *time.Time
	CompletedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for surveys.
func (SurveyDTO) TableName() string {
	return "surveys"
}

// fromDomain converts a survey to its database representation.
func fromDomain(record *survey.Survey) SurveyDTO {
	return SurveyDTO{
		ID:          record.ID().Bytes(),
		OrderID:     record.OrderID().Bytes(),
		CreatedAt:   record.CreatedAt(),
		RemindedAt:  record.RemindedAt(),
		CompletedAt: record.CompletedAt(),
	}
}

// toDomain converts a database DTO to a survey.
func toDomain(dto SurveyDTO) (*survey.Survey, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return survey.RestoreSurvey(id, orderID, dto.CreatedAt, dto.RemindedAt, dto.CompletedAt)
}
