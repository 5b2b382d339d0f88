// Package orderstore provides the GORM/PostgreSQL implementation of the
// OrderStore port, handling the conversion between the Order aggregate and
// its relational representation.
package orderstore

import (
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
//
// The primary key is an internal storage UUID; the business identifier lives
// in its own uniquely indexed column, so external clients never see or
// depend on storage keys. Seq is a monotonically assigned sequence used to
// list orders in insertion order.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq          int64     `gorm:"autoIncrement;uniqueIndex"`
	OrderID      string    `gorm:"uniqueIndex;not null"`
	ContainerID  string    `gorm:"not null"`
	CustomerName string    `gorm:"not null"`
	Destination  string    `gorm:"not null"`
	Status       int       `gorm:"not null"`
	Version      int64     `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
// A fresh storage key is assigned; it is relevant on insert only.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           uuid.New(),
		OrderID:      aggregate.ID().String(),
		ContainerID:  aggregate.ContainerID(),
		CustomerName: aggregate.CustomerName(),
		Destination:  aggregate.Destination(),
		Status:       int(aggregate.Status()),
		Version:      aggregate.Version(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row to an order aggregate via RestoreOrder,
// so corrupt rows fail validation instead of leaking into the domain.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.ContainerID,
		dto.CustomerName,
		dto.Destination,
		order.Status(dto.Status),
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
