package repository

import (
	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Items(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).
		Preload("Dish").
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, id uint, status entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// DishRevenue is one row of the per-dish revenue report.
type DishRevenue struct {
	DishID       uint   `json:"dishId"`
	Name         string `json:"name"`
	Units        int64  `json:"units"`
	RevenueCents int64  `json:"revenueCents"`
}

func (r *OrderRepository) RevenueByDish() ([]DishRevenue, error) {
	var rows []DishRevenue
	err := r.DB.Model(&entity.OrderItem{}).
		Select("order_items.dish_id AS dish_id, dishes.name AS name, "+
			"SUM(order_items.quantity) AS units, "+
			"SUM(order_items.unit_price_cents * order_items.quantity) AS revenue_cents").
		Joins("JOIN dishes ON dishes.id = order_items.dish_id").
		Group("order_items.dish_id, dishes.name").
		Order("revenue_cents DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *OrderRepository) TotalRevenue() (int64, error) {
	var total *int64
	err := r.DB.Model(&entity.Order{}).
		Select("SUM(total_cents)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}
