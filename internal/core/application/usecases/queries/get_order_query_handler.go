package queries

import (
	"context"
	"database/sql"
	"errors"

	"serviceops/internal/core/domain/model/evidence"
	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/core/domain/model/serviceorder"
	"serviceops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order's detail view, joining in the
// evidence tally the guards work from.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no order
// carries the requested identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sequence,
			company,
			service_type,
			priority,
			description,
			technician,
			physical_order_number,
			quotation_id,
			status,
			version
		FROM service_orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var id uuid.UUID
	var sequence int64
	var company, serviceType, priority, description, technician, physicalOrderNumber string
	var quotationID *uuid.UUID
	var status serviceorder.Status
	var version int

	err := row.Scan(
		&id, &sequence, &company, &serviceType, &priority, &description,
		&technician, &physicalOrderNumber, &quotationID, &status, &version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("service order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	number, err := kernel.NewOrderNumber(sequence)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = status.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		ID:                  orderID,
		Number:              number,
		Company:             company,
		ServiceType:         serviceType,
		Priority:            priority,
		Description:         description,
		Technician:          technician,
		PhysicalOrderNumber: physicalOrderNumber,
		Status:              status,
		Phase:               status.Phase(),
		Version:             version,
		EvidenceCounts:      make(map[evidence.Kind]int),
	}

	if quotationID != nil {
		qID, qErr := kernel.UUIDFromBytes(quotationID[:])
		if qErr != nil {
			return GetOrderQueryResponse{}, qErr
		}
		response.QuotationID = &qID
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT kind, COUNT(*)
		FROM evidence
		WHERE order_id = ?
		GROUP BY kind
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var kind evidence.Kind
		var count int

		if err = rows.Scan(&kind, &count); err != nil {
			return GetOrderQueryResponse{}, err
		}

		response.EvidenceCounts[kind] = count
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}
