package inventory

import (
	"context"
	"errors"
	"fmt"

	"serviceops/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ErrInsufficientStock is returned when a part line cannot be reserved because
// the free stock (stock minus existing reservations) does not cover it.
var ErrInsufficientStock = errors.New("insufficient stock to reserve parts for order")

// GormInventoryService implements the InventoryService port against the
// inventory_parts and order_parts tables.
//
// Both operations are idempotent per order: lines already in the requested
// state are skipped, so replaying a side effect does not double-book stock.
type GormInventoryService struct {
	db *gorm.DB
}

// NewGormInventoryService creates a new GORM inventory service.
func NewGormInventoryService(db *gorm.DB) *GormInventoryService {
	return &GormInventoryService{db: db}
}

// Reserve earmarks the parts an order needs. Pending lines move to reserved
// and the part's reserved counter grows; lines already reserved or deducted
// are left alone.
func (s *GormInventoryService) Reserve(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	lines, err := s.linesInState(ctx, orderID, lineStatePending)
	if err != nil {
		return err
	}

	for _, line := range lines {
		result := s.db.WithContext(ctx).
			Model(&PartDTO{}).
			Where("id = ? AND stock - reserved >= ?", line.PartID, line.Quantity).
			Update("reserved", gorm.Expr("reserved + ?", line.Quantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("part %s for order %s: %w", line.PartID, orderID, ErrInsufficientStock)
		}

		if err := s.db.WithContext(ctx).
			Model(&OrderPartDTO{}).
			Where("id = ?", line.ID).
			Update("state", lineStateReserved).Error; err != nil {
			return err
		}
	}

	return nil
}

// Deduct converts an order's reservation into a stock deduction. Reserved
// lines move to deducted, dropping both the stock and reserved counters;
// lines already deducted are left alone.
func (s *GormInventoryService) Deduct(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	lines, err := s.linesInState(ctx, orderID, lineStateReserved)
	if err != nil {
		return err
	}

	for _, line := range lines {
		if err := s.db.WithContext(ctx).
			Model(&PartDTO{}).
			Where("id = ?", line.PartID).
			Updates(map[string]any{
				"stock":    gorm.Expr("stock - ?", line.Quantity),
				"reserved": gorm.Expr("reserved - ?", line.Quantity),
			}).Error; err != nil {
			return err
		}

		if err := s.db.WithContext(ctx).
			Model(&OrderPartDTO{}).
			Where("id = ?", line.ID).
			Update("state", lineStateDeducted).Error; err != nil {
			return err
		}
	}

	return nil
}

// linesInState loads the order's part lines currently in the given state.
func (s *GormInventoryService) linesInState(ctx context.Context, orderID kernel.UUID, state string) ([]OrderPartDTO, error) {
	var lines []OrderPartDTO
	if err := s.db.WithContext(ctx).
		Find(&lines, "order_id = ? AND state = ?", orderID.Bytes(), state).Error; err != nil {
		return nil, err
	}
	return lines, nil
}
