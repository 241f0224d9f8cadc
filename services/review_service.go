package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/entity"
	"github.com/Azimiwizard/App-1/pkg/apperr"
	"github.com/Azimiwizard/App-1/repository"
)

type ReviewService struct {
	ReviewRepo *repository.ReviewRepository
	DishRepo   *repository.DishRepository
}

func NewReviewService(rr *repository.ReviewRepository, dr *repository.DishRepository) *ReviewService {
	return &ReviewService{ReviewRepo: rr, DishRepo: dr}
}

type ReviewIn struct {
	Rating *int   `json:"rating"` // 1..5, or null for text-only
	Body   string `json:"body"`
}

func (s *ReviewService) Create(userID, dishID uint, in *ReviewIn) (*entity.Review, error) {
	if _, err := s.DishRepo.FindByID(dishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "dish not found")
		}
		return nil, apperr.Wrap(apperr.Unavailable, err, "load dish")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return nil, apperr.New(apperr.Validation, "rating must be between 1 and 5")
	}
	body := strings.TrimSpace(sanitizeHTML(in.Body))
	if in.Rating == nil && body == "" {
		return nil, apperr.New(apperr.Validation, "review needs a rating or some text")
	}

	review := &entity.Review{UserID: userID, DishID: dishID, Rating: in.Rating, Body: body}
	if err := s.ReviewRepo.Create(review); err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "create review")
	}
	return review, nil
}

func (s *ReviewService) ListForDish(dishID uint) ([]entity.Review, error) {
	reviews, err := s.ReviewRepo.ListByDish(dishID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "list reviews")
	}
	return reviews, nil
}
