package services

import (
	"errors"

	"github.com/MarcoT95/static/entity"
	"gorm.io/gorm"
)

var (
	ErrBadStatus         = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Orders walk pending → processing → shipped → delivered; cancellation
// is open from any non-terminal state. Delivered and cancelled are
// final.
var allowedTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderStatusPending:    {entity.OrderStatusProcessing, entity.OrderStatusCancelled},
	entity.OrderStatusProcessing: {entity.OrderStatusShipped, entity.OrderStatusCancelled},
	entity.OrderStatusShipped:    {entity.OrderStatusDelivered, entity.OrderStatusCancelled},
}

func CanTransition(from, to entity.OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus applies one transition. The guarded update re-checks the
// current status inside the transaction, so a concurrent transition on
// the same order loses cleanly instead of double-applying.
func (s *OrderService) UpdateStatus(orderID uint, to entity.OrderStatus) (*entity.Order, error) {
	if !to.Valid() {
		return nil, ErrBadStatus
	}

	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if !CanTransition(o.Status, to) {
		return nil, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrder(orderID)
}
