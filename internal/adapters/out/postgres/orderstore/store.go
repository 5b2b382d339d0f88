package orderstore

import (
	"context"
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderStore implements the OrderStore port using GORM over PostgreSQL.
//
// Atomicity of the two write operations rests on the database: Insert relies
// on the unique index over the business identifier, and CompareAndSwap is a
// single version-guarded UPDATE, so no application-level locking is needed.
type GormOrderStore struct {
	db *gorm.DB
}

var _ ports.OrderStore = (*GormOrderStore)(nil)

// NewGormOrderStore creates a new GORM order store.
// The db must be opened with TranslateError enabled so duplicate-key
// violations surface as gorm.ErrDuplicatedKey.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// Get retrieves an order by its business identifier.
func (s *GormOrderStore) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := s.db.WithContext(ctx).First(&dto, "order_id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order_id", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns orders matching the filter, ordered by insertion sequence.
func (s *GormOrderStore) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := s.db.WithContext(ctx).Order("seq")
	if filter.OrderID != nil {
		query = query.Where("order_id = ?", filter.OrderID.String())
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// Insert persists a new order, failing without side effects when the
// business identifier is already taken.
func (s *GormOrderStore) Insert(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order_id", aggregate.ID().String(), err)
		}
		return err
	}

	return nil
}

// CompareAndSwap replaces the stored record only if its version still equals
// expectedVersion. The swap is a single guarded UPDATE; when no row matches,
// a follow-up read classifies the failure as not-found or version conflict.
func (s *GormOrderStore) CompareAndSwap(
	ctx context.Context,
	id kernel.OrderID,
	expectedVersion int64,
	updated *order.Order,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	result := s.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_id = ? AND version = ?", id.String(), expectedVersion).
		Updates(map[string]any{
			"container_id":  updated.ContainerID(),
			"customer_name": updated.CustomerName(),
			"destination":   updated.Destination(),
			"status":        int(updated.Status()),
			"version":       expectedVersion + 1,
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		var current OrderDTO
		err := s.db.WithContext(ctx).First(&current, "order_id = ?", id.String()).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order_id", id.String())
		}
		if err != nil {
			return nil, err
		}
		return nil, errs.NewVersionConflictError(id.String(), expectedVersion, current.Version)
	}

	var stored OrderDTO
	if err := s.db.WithContext(ctx).First(&stored, "order_id = ?", id.String()).Error; err != nil {
		return nil, err
	}

	return toDomain(stored)
}
