package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/entity"
	"github.com/Azimiwizard/App-1/pkg/apperr"
	"github.com/Azimiwizard/App-1/repository"
)

type CartService struct {
	DB         *gorm.DB
	CartRepo   *repository.CartRepository
	DishRepo   *repository.DishRepository
	UserRepo   *repository.UserRepository
	Redemption *RedemptionStore
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, dr *repository.DishRepository, ur *repository.UserRepository, rs *RedemptionStore) *CartService {
	return &CartService{DB: db, CartRepo: cr, DishRepo: dr, UserRepo: ur, Redemption: rs}
}

type CartLine struct {
	ItemID        uint        `json:"itemId"`
	Dish          entity.Dish `json:"dish"`
	Quantity      int         `json:"quantity"`
	SubtotalCents int64       `json:"subtotalCents"`
}

type CartView struct {
	Lines          []CartLine `json:"lines"`
	TotalCents     int64      `json:"totalCents"`
	RedeemPoints   int64      `json:"redeemPoints"`
	DiscountCents  int64      `json:"discountCents"`
	PayableCents   int64      `json:"payableCents"`
}

// maxRedeemablePoints caps redemption at the user's balance and at the
// cart total converted to points (10 points cover $1, one point per 10¢).
func maxRedeemablePoints(balance, totalCents int64) int64 {
	limit := totalCents / 10
	if balance < limit {
		return balance
	}
	return limit
}

// Get assembles the cart view, re-capping any flagged redemption against
// the current total rather than trusting the stored amount.
func (s *CartService) Get(ctx context.Context, userID uint) (*CartView, error) {
	items, err := s.CartRepo.ItemsWithDish(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "load cart")
	}

	view := &CartView{Lines: make([]CartLine, 0, len(items))}
	for _, it := range items {
		sub := it.Dish.PriceCents * int64(it.Quantity)
		view.TotalCents += sub
		view.Lines = append(view.Lines, CartLine{
			ItemID: it.ID, Dish: it.Dish, Quantity: it.Quantity, SubtotalCents: sub,
		})
	}

	flagged, err := s.Redemption.Get(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "load redemption marker")
	}
	if flagged > 0 {
		user, err := s.UserRepo.FindByID(userID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Unavailable, err, "load user")
		}
		points := flagged
		if limit := maxRedeemablePoints(user.Points, view.TotalCents); points > limit {
			points = limit
		}
		view.RedeemPoints = points
		view.DiscountCents = points * 10
	}
	view.PayableCents = view.TotalCents - view.DiscountCents

	return view, nil
}

func (s *CartService) Add(userID, dishID uint, qty int) error {
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return apperr.New(apperr.Validation, "quantity must be at least 1")
	}

	if _, err := s.DishRepo.FindByID(dishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "dish not found")
		}
		return apperr.Wrap(apperr.Unavailable, err, "load dish")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Upsert(tx, userID, dishID, qty)
	})
	if err != nil {
		return apperr.Wrap(apperr.Unavailable, err, "add to cart")
	}
	return nil
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	var affected int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		affected, err = s.CartRepo.UpdateQty(tx, userID, itemID, qty)
		return err
	})
	if err != nil {
		return apperr.Wrap(apperr.Unavailable, err, "update cart")
	}
	if affected == 0 {
		return apperr.New(apperr.NotFound, "cart item not found")
	}
	return nil
}

func (s *CartService) Remove(userID, itemID uint) error {
	var affected int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		affected, err = s.CartRepo.Remove(tx, userID, itemID)
		return err
	})
	if err != nil {
		return apperr.Wrap(apperr.Unavailable, err, "remove cart item")
	}
	if affected == 0 {
		return apperr.New(apperr.NotFound, "cart item not found")
	}
	return nil
}

func (s *CartService) Clear(userID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		return apperr.Wrap(apperr.Unavailable, err, "clear cart")
	}
	return nil
}

// FlagRedemption records the intent to pay with points at checkout and
// returns the capped preview.
func (s *CartService) FlagRedemption(ctx context.Context, userID uint) (*CartView, error) {
	view, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if view.TotalCents == 0 {
		return nil, apperr.New(apperr.Validation, "cart is empty")
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "load user")
	}
	points := maxRedeemablePoints(user.Points, view.TotalCents)
	if points == 0 {
		return nil, apperr.New(apperr.Validation, "no redeemable points")
	}
	if err := s.Redemption.Set(ctx, userID, points); err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "store redemption marker")
	}

	view.RedeemPoints = points
	view.DiscountCents = points * 10
	view.PayableCents = view.TotalCents - view.DiscountCents
	return view, nil
}

func (s *CartService) CancelRedemption(ctx context.Context, userID uint) error {
	if err := s.Redemption.Clear(ctx, userID); err != nil {
		return apperr.Wrap(apperr.Unavailable, err, "clear redemption marker")
	}
	return nil
}
