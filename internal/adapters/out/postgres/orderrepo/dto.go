// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique index: numbering collisions must fail the
// insert instead of silently renumbering. Timestamps come from the domain, so
// GORM's automatic time tracking is disabled.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber   string    `gorm:"uniqueIndex;not null"`
	CustomerName  string    `gorm:"not null"`
	Mobile        string    `gorm:"index;not null"`
	Address       string    `gorm:"not null"`
	SKU           string    `gorm:"index;not null"`
	ProductName   string    `gorm:"not null"`
	Size          string
	Qty           int
	UnitPrice     decimal.Decimal `gorm:"type:numeric"`
	Total         decimal.Decimal `gorm:"type:numeric"`
	PaymentMethod string
	Note          string
	Status        int `gorm:"index"`
	Read          bool
	Version       int64
	CreatedAt     time.Time    `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime:false"`
	History       []HistoryDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryDTO represents one append-only status history row.
// Rows are immutable once written; re-saving an order only appends.
type HistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Status    int
	Note      string
	ChangedAt time.Time `gorm:"index;autoCreateTime:false"`
}

// TableName specifies the database table name for history entries.
func (HistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	history := make([]HistoryDTO, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		history = append(history, HistoryDTO{
			ID:        entry.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			Status:    int(entry.Status()),
			Note:      entry.Note(),
			ChangedAt: entry.ChangedAt(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderNumber:   aggregate.OrderNumber(),
		CustomerName:  aggregate.CustomerName(),
		Mobile:        aggregate.Mobile(),
		Address:       aggregate.Address(),
		SKU:           aggregate.SKU(),
		ProductName:   aggregate.ProductName(),
		Size:          aggregate.Size(),
		Qty:           aggregate.Qty(),
		UnitPrice:     aggregate.UnitPrice(),
		Total:         aggregate.Total(),
		PaymentMethod: aggregate.PaymentMethod(),
		Note:          aggregate.Note(),
		Status:        int(aggregate.Status()),
		Read:          aggregate.Read(),
		Version:       aggregate.Version(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		History:       history,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the status history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, row := range dto.History {
		entryID, entryErr := kernel.UUIDFromBytes(row.ID[:])
		if entryErr != nil {
			return nil, entryErr
		}

		entry, entryErr := order.RestoreHistoryEntry(
			entryID, order.Status(row.Status), row.Note, row.ChangedAt)
		if entryErr != nil {
			return nil, entryErr
		}

		history = append(history, entry)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.CustomerName,
		dto.Mobile,
		dto.Address,
		dto.SKU,
		dto.ProductName,
		dto.Size,
		dto.Qty,
		dto.UnitPrice,
		dto.Total,
		dto.PaymentMethod,
		dto.Note,
		order.Status(dto.Status),
		history,
		dto.Read,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
