package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ItemsWithDish(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).
		Preload("Dish").
		Order("id").
		Find(&items).Error
	return items, err
}

// Upsert merges a repeated add into the existing (user, dish) row.
func (r *CartRepository) Upsert(tx *gorm.DB, userID, dishID uint, qty int) error {
	var exist entity.CartItem
	err := tx.Where("user_id = ? AND dish_id = ?", userID, dishID).First(&exist).Error
	if err == nil {
		exist.Quantity += qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&entity.CartItem{UserID: userID, DishID: dishID, Quantity: qty}).Error
}

// UpdateQty sets a line's quantity; qty <= 0 deletes the line. Scoped by
// user_id so a caller can only touch their own cart.
func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) (int64, error) {
	if qty <= 0 {
		return r.Remove(tx, userID, itemID)
	}
	res := tx.Model(&entity.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", qty)
	return res.RowsAffected, res.Error
}

func (r *CartRepository) Remove(tx *gorm.DB, userID, itemID uint) (int64, error) {
	res := tx.Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}

// RemoveExact deletes exactly the given lines and reports how many rows
// went away. Checkout compares the count against its snapshot to detect
// a concurrent checkout consuming the same cart.
func (r *CartRepository) RemoveExact(tx *gorm.DB, userID uint, itemIDs []uint) (int64, error) {
	res := tx.Where("user_id = ? AND id IN ?", userID, itemIDs).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}
