package services

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/entity"
	"github.com/Azimiwizard/App-1/events"
	"github.com/Azimiwizard/App-1/pkg/apperr"
	"github.com/Azimiwizard/App-1/repository"
)

// StatusBroadcaster pushes a status change to the order's subscribers.
// Delivery is best-effort; SetStatus never fails on a broadcast error.
type StatusBroadcaster interface {
	PublishStatus(ctx context.Context, orderID uint, status entity.OrderStatus, at time.Time) error
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	Broadcaster StatusBroadcaster
	Events      *events.Publisher
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, b StatusBroadcaster, ev *events.Publisher) *OrderService {
	return &OrderService{DB: db, Repo: repo, Broadcaster: b, Events: ev}
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	orders, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "list orders")
	}
	return orders, nil
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	orders, err := s.Repo.ListAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "list orders")
	}
	return orders, nil
}

// Detail loads an order with its items; non-admins may only read their own.
func (s *OrderService) Detail(orderID, requesterID uint, isAdmin bool) (*entity.Order, error) {
	order, err := s.Repo.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "order not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "load order")
	}
	if order.UserID != requesterID && !isAdmin {
		return nil, apperr.New(apperr.Forbidden, "not your order")
	}

	items, err := s.Repo.Items(orderID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "load order items")
	}
	order.Items = items
	return order, nil
}

// SetStatus validates enum membership only; any valid status may follow
// any other. Re-setting the current status still emits, so subscribers
// can treat every event as the latest truth.
func (s *OrderService) SetStatus(ctx context.Context, orderID uint, status entity.OrderStatus) error {
	if !entity.ValidStatus(status) {
		return apperr.Newf(apperr.Validation, "invalid status %q", status)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatus(tx, orderID, status)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.New(apperr.NotFound, "order not found")
		}
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) != apperr.Unknown {
			return err
		}
		return apperr.Wrap(apperr.Unavailable, err, "update status")
	}

	if s.Broadcaster != nil {
		if err := s.Broadcaster.PublishStatus(ctx, orderID, status, time.Now()); err != nil {
			log.Printf("status broadcast for order %d: %v", orderID, err)
		}
	}
	if err := s.Events.StatusChanged(ctx, orderID, status); err != nil {
		log.Printf("publish status_changed for order %d: %v", orderID, err)
	}

	return nil
}
