// Package evidencerepo provides data transfer objects and mapping functions
// for evidence persistence. Evidence rows are append-only: records are never
// updated or deleted once stored.
package evidencerepo

import (
	"time"

	"serviceops/internal/core/domain/model/evidence"
	"serviceops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EvidenceDTO represents the database structure for persisting evidence
// records. The order_id column is indexed because guards always load the full
// evidence set of one order.
type EvidenceDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Kind       int       `gorm:"not null"`
	FileName   string    `gorm:"not null"`
	UploadedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for evidence records.
func (EvidenceDTO) TableName() string {
	return "evidence"
}

// fromDomain converts an evidence record to its database representation.
func fromDomain(record *evidence.Evidence) EvidenceDTO {
	return EvidenceDTO{
		ID:         record.ID().Bytes(),
		OrderID:    record.OrderID().Bytes(),
		Kind:       int(record.Kind()),
		FileName:   record.FileName(),
		UploadedAt: record.UploadedAt(),
	}
}

// toDomain converts a database DTO to an evidence record.
func toDomain(dto EvidenceDTO) (*evidence.Evidence, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return evidence.RestoreEvidence(id, orderID, evidence.Kind(dto.Kind), dto.FileName, dto.UploadedAt)
}
