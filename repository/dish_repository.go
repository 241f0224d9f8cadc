package repository

import (
	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/entity"
)

type DishRepository struct{ DB *gorm.DB }

func NewDishRepository(db *gorm.DB) *DishRepository { return &DishRepository{DB: db} }

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

func (r *DishRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Dish{}).Where("id = ?", id).Updates(updates).Error
}

func (r *DishRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Dish{}, id)
	return res.RowsAffected, res.Error
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) ListAll() ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Order("section, name").Find(&dishes).Error
	return dishes, err
}

// CountByNameCI enforces the case-insensitive name-uniqueness rule:
// "Burger" and "burger" are the same dish.
func (r *DishRepository) CountByNameCI(name string, exceptID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Dish{}).
		Where("LOWER(name) = LOWER(?) AND id <> ?", name, exceptID).
		Count(&count).Error
	return count, err
}
