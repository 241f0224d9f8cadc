package services

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/entity"
	"github.com/Azimiwizard/App-1/events"
	"github.com/Azimiwizard/App-1/pkg/apperr"
	"github.com/Azimiwizard/App-1/repository"
)

type CheckoutService struct {
	DB         *gorm.DB
	CartRepo   *repository.CartRepository
	OrderRepo  *repository.OrderRepository
	UserRepo   *repository.UserRepository
	Redemption *RedemptionStore
	Events     *events.Publisher
}

func NewCheckoutService(db *gorm.DB, cr *repository.CartRepository, or *repository.OrderRepository, ur *repository.UserRepository, rs *RedemptionStore, ev *events.Publisher) *CheckoutService {
	return &CheckoutService{DB: db, CartRepo: cr, OrderRepo: or, UserRepo: ur, Redemption: rs, Events: ev}
}

// Checkout converts the user's cart into an order in one transaction:
// one order item per cart line with the price snapshotted, redemption
// recomputed against the live total, points settled (earned minus
// redeemed), and the cart lines consumed. If a concurrent checkout has
// already consumed any of the snapshotted lines, the whole transaction
// rolls back with a conflict.
func (s *CheckoutService) Checkout(ctx context.Context, userID uint) (*entity.Order, error) {
	items, err := s.CartRepo.ItemsWithDish(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "load cart")
	}
	if len(items) == 0 {
		return nil, apperr.New(apperr.Validation, "your cart is empty")
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "load user")
	}

	var subtotal int64
	itemIDs := make([]uint, 0, len(items))
	for _, it := range items {
		subtotal += it.Dish.PriceCents * int64(it.Quantity)
		itemIDs = append(itemIDs, it.ID)
	}

	// The marker is a hint; the cap is authoritative here.
	flagged, err := s.Redemption.Get(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "load redemption marker")
	}
	redeemed := flagged
	if limit := maxRedeemablePoints(user.Points, subtotal); redeemed > limit {
		redeemed = limit
	}
	discount := redeemed * 10
	finalTotal := subtotal - discount
	pointsEarned := finalTotal / 100 // one point per whole currency unit

	order := &entity.Order{
		UserID:        userID,
		TotalCents:    finalTotal,
		DiscountCents: discount,
		Status:        entity.StatusPending,
		PointsEarned:  pointsEarned,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.OrderRepo.Create(tx, order); err != nil {
			return err
		}
		for _, it := range items {
			oi := &entity.OrderItem{
				OrderID:        order.ID,
				DishID:         it.DishID,
				Quantity:       it.Quantity,
				UnitPriceCents: it.Dish.PriceCents,
			}
			if err := s.OrderRepo.CreateItem(tx, oi); err != nil {
				return err
			}
		}

		if delta := pointsEarned - redeemed; delta != 0 {
			if err := s.UserRepo.AddPoints(tx, userID, delta); err != nil {
				return err
			}
		}

		affected, err := s.CartRepo.RemoveExact(tx, userID, itemIDs)
		if err != nil {
			return err
		}
		if affected != int64(len(itemIDs)) {
			// Another checkout raced us and already consumed the cart.
			return apperr.New(apperr.Conflict, "cart changed during checkout, please retry")
		}
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) != apperr.Unknown {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.Unavailable, err, "checkout failed")
	}

	// Marker consumed; a failed delete only risks a stale hint, which the
	// next checkout re-caps anyway.
	if redeemed > 0 || flagged > 0 {
		if err := s.Redemption.Clear(ctx, userID); err != nil {
			log.Printf("clear redemption marker for user %d: %v", userID, err)
		}
	}

	if err := s.Events.OrderCreated(ctx, order.ID, userID, order.TotalCents); err != nil {
		log.Printf("publish order_created for order %d: %v", order.ID, err)
	}

	return order, nil
}
