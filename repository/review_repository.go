package repository

import (
	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/entity"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) Create(rv *entity.Review) error {
	return r.DB.Create(rv).Error
}

func (r *ReviewRepository) ListByDish(dishID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("dish_id = ?", dishID).
		Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// DishStats carries a dish's rating aggregate. AVG skips NULL ratings
// while COUNT(*) counts every row, which matches the accounting rule:
// unrated reviews raise the count but never move the average.
type DishStats struct {
	DishID      uint    `json:"dishId"`
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int64   `json:"reviewCount"`
}

func (r *ReviewRepository) StatsByDish() (map[uint]DishStats, error) {
	var rows []DishStats
	err := r.DB.Model(&entity.Review{}).
		Select("dish_id, COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count").
		Group("dish_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	stats := make(map[uint]DishStats, len(rows))
	for _, row := range rows {
		stats[row.DishID] = row
	}
	return stats, nil
}

func (r *ReviewRepository) StatsFor(dishID uint) (DishStats, error) {
	var row DishStats
	err := r.DB.Model(&entity.Review{}).
		Select("dish_id, COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count").
		Where("dish_id = ?", dishID).
		Group("dish_id").
		Scan(&row).Error
	if err != nil {
		return DishStats{}, err
	}
	row.DishID = dishID
	return row, nil
}
