package queries

import (
	"context"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the active-orders board straight from the
// database, bypassing the aggregate. Paid orders are done and drop off the
// board.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order sequence so the
// board reads oldest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sequence,
			company,
			technician,
			status
		FROM service_orders
		WHERE status != ?
		ORDER BY sequence
	`, serviceorder.Paid).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var sequence int64
		var company, technician string
		var status serviceorder.Status

		if err = rows.Scan(&id, &sequence, &company, &technician, &status); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		number, numErr := kernel.NewOrderNumber(sequence)
		if numErr != nil {
			return nil, numErr
		}

		if err = status.Validate(); err != nil {
			return nil, err
		}

		orders = append(orders, GetActiveOrdersQueryResponse{
			ID:         orderID,
			Number:     number,
			Company:    company,
			Technician: technician,
			Status:     status,
			Phase:      status.Phase(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
