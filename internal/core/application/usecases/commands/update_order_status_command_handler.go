package commands

import (
	"context"
	"errors"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/metrics"
)

// UpdateOrderStatusCommandHandler orchestrates a status update: it reads the
// current order, checks the caller's expected version, routes the requested
// status through the lifecycle state machine, and writes back through the
// store's compare-and-swap.
//
// The handler never retries: a version conflict is surfaced to the caller,
// who re-reads and retries with fresh state. This is the classic optimistic
// concurrency loop with the retry half living on the client.
type UpdateOrderStatusCommandHandler struct {
	store ports.OrderStore
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(store ports.OrderStore) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		store: store,
	}
}

// Handle processes the status update command and returns the stored order.
//
// Re-submitting the order's current status with no container change is an
// idempotent confirmation: the current record is returned without a store
// write and the version does not move.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.store.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	readVersion := current.Version()
	if expected := cmd.ExpectedVersion(); expected != nil && *expected != readVersion {
		metrics.VersionConflicts.Inc()
		return nil, errs.NewVersionConflictError(cmd.OrderID().String(), *expected, readVersion)
	}

	containerChanged := cmd.ContainerID() != nil && *cmd.ContainerID() != current.ContainerID()
	if cmd.Status() == current.Status() && !containerChanged {
		return current, nil
	}

	from := current.Status()
	if err = current.ChangeStatus(cmd.Status()); err != nil {
		metrics.InvalidTransitions.Inc()
		return nil, err
	}

	if containerChanged {
		if err = current.ReassignContainer(*cmd.ContainerID()); err != nil {
			return nil, err
		}
	}

	stored, err := h.store.CompareAndSwap(ctx, cmd.OrderID(), readVersion, current)
	if err != nil {
		// A concurrent writer winning between the read and the swap is the
		// primary race this handler defends against; it must be surfaced,
		// never silently resolved.
		if errors.Is(err, errs.ErrVersionConflict) {
			metrics.VersionConflicts.Inc()
		}
		return nil, err
	}

	if from != stored.Status() {
		metrics.StatusTransitions.WithLabelValues(from.String(), stored.Status().String()).Inc()
	}

	return stored, nil
}
