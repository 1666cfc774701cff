// Package inventory implements the parts-inventory collaborator on top of the
// same Postgres database as the rest of the system. Part lines attached to an
// order move through reservation states; stock counters on the parts table are
// adjusted in the same transaction as the order's status change, so a failed
// transition never leaves parts booked.
package inventory

import (
	"github.com/google/uuid"
)

// Part line reservation states.
const (
	lineStatePending  = "pending"
	lineStateReserved = "reserved"
	lineStateDeducted = "deducted"
)

// PartDTO represents a stocked part. Stock is the on-hand quantity; Reserved
// is the portion of stock earmarked for in-progress orders.
type PartDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU      string    `gorm:"uniqueIndex;not null"`
	Name     string    `gorm:"not null"`
	Stock    int       `gorm:"not null"`
	Reserved int       `gorm:"not null"`
}

// TableName specifies the database table name for stocked parts.
func (PartDTO) TableName() string {
	return "inventory_parts"
}

// OrderPartDTO is one part line of a service order: the part and quantity the
// job needs, plus the line's reservation state.
type OrderPartDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index;not null"`
	PartID   uuid.UUID `gorm:"type:uuid;not null"`
	Quantity int       `gorm:"not null"`
	State    string    `gorm:"not null;default:pending"`
}

// TableName specifies the database table name for order part lines.
func (OrderPartDTO) TableName() string {
	return "order_parts"
}
