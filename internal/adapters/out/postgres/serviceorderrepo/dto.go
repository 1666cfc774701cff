// Package serviceorderrepo provides data transfer objects and mapping
// functions for service order persistence. It implements the repository
// pattern for the service order aggregate, handling the conversion between
// domain entities and database representations.
package serviceorderrepo

import (
	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
)

// ServiceOrderDTO represents the database structure for persisting service
// order aggregates. The status column is indexed for the active-orders board
// query; version carries the optimistic-concurrency token.
type ServiceOrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Sequence            int64      `gorm:"uniqueIndex"`
	Company             string     `gorm:"not null"`
	ServiceType         string     `gorm:"not null"`
	Priority            string
	Description         string
	Technician          string
	PhysicalOrderNumber string
	QuotationID         *uuid.UUID `gorm:"type:uuid"`
	Status              int        `gorm:"index"`
	Version             int        `gorm:"not null"`
}

// TableName specifies the database table name for service order entities.
// Overrides GORM's default naming convention to use "service_orders".
func (ServiceOrderDTO) TableName() string {
	return "service_orders"
}

// fromDomain converts a service order aggregate to its database representation.
func fromDomain(aggregate *serviceorder.ServiceOrder) ServiceOrderDTO {
	var quotationID *uuid.UUID
	if id := aggregate.QuotationID(); id != nil {
		raw := id.Bytes()
		quotationID = &raw
	}

	return ServiceOrderDTO{
		ID:                  aggregate.ID().Bytes(),
		Sequence:            aggregate.Number().Sequence(),
		Company:             aggregate.Company(),
		ServiceType:         aggregate.ServiceType(),
		Priority:            aggregate.Priority(),
		Description:         aggregate.Description(),
		Technician:          aggregate.Technician(),
		PhysicalOrderNumber: aggregate.PhysicalOrderNumber(),
		QuotationID:         quotationID,
		Status:              int(aggregate.Status()),
		Version:             aggregate.Version(),
	}
}

// toDomain converts a database DTO to a service order aggregate.
// Reconstructs the complete aggregate using RestoreServiceOrder so all
// invariants are re-checked on load.
func toDomain(dto ServiceOrderDTO) (*serviceorder.ServiceOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.NewOrderNumber(dto.Sequence)
	if err != nil {
		return nil, err
	}

	var quotationID *kernel.UUID
	if dto.QuotationID != nil {
		qID, quotationErr := kernel.UUIDFromBytes((*dto.QuotationID)[:])
		if quotationErr != nil {
			return nil, quotationErr
		}

		quotationID = &qID
	}

	return serviceorder.RestoreServiceOrder(
		id,
		number,
		dto.Company,
		dto.ServiceType,
		dto.Priority,
		dto.Description,
		dto.Technician,
		dto.PhysicalOrderNumber,
		quotationID,
		serviceorder.Status(dto.Status),
		dto.Version,
	)
}
