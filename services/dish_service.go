package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/entity"
	"github.com/Azimiwizard/App-1/pkg/apperr"
	"github.com/Azimiwizard/App-1/repository"
)

type DishService struct {
	DishRepo   *repository.DishRepository
	ReviewRepo *repository.ReviewRepository
}

func NewDishService(dr *repository.DishRepository, rr *repository.ReviewRepository) *DishService {
	return &DishService{DishRepo: dr, ReviewRepo: rr}
}

type DishIn struct {
	Name        string `json:"name" binding:"required"`
	PriceCents  int64  `json:"priceCents" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Section     string `json:"section" binding:"required"`
}

func (s *DishService) validate(in *DishIn, exceptID uint) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.New(apperr.Validation, "dish name is required")
	}
	if in.PriceCents <= 0 {
		return apperr.New(apperr.Validation, "price must be greater than 0")
	}
	if !entity.ValidSection(in.Section) {
		return apperr.New(apperr.Validation, "invalid menu section")
	}
	count, err := s.DishRepo.CountByNameCI(strings.TrimSpace(in.Name), exceptID)
	if err != nil {
		return apperr.Wrap(apperr.Unavailable, err, "check dish name")
	}
	if count > 0 {
		return apperr.New(apperr.Conflict, "dish name must be unique")
	}
	return nil
}

func (s *DishService) Create(in *DishIn) (*entity.Dish, error) {
	if err := s.validate(in, 0); err != nil {
		return nil, err
	}
	dish := &entity.Dish{
		Name:        strings.TrimSpace(in.Name),
		PriceCents:  in.PriceCents,
		Description: sanitizeHTML(in.Description),
		ImageURL:    in.ImageURL,
		Section:     in.Section,
	}
	if err := s.DishRepo.Create(dish); err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "create dish")
	}
	return dish, nil
}

func (s *DishService) Update(id uint, in *DishIn) (*entity.Dish, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if err := s.validate(in, id); err != nil {
		return nil, err
	}
	updates := map[string]any{
		"name":        strings.TrimSpace(in.Name),
		"price_cents": in.PriceCents,
		"description": sanitizeHTML(in.Description),
		"section":     in.Section,
	}
	if in.ImageURL != "" {
		updates["image_url"] = in.ImageURL
	}
	if err := s.DishRepo.Update(id, updates); err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "update dish")
	}
	return s.Get(id)
}

func (s *DishService) Delete(id uint) error {
	affected, err := s.DishRepo.Delete(id)
	if err != nil {
		return apperr.Wrap(apperr.Unavailable, err, "delete dish")
	}
	if affected == 0 {
		return apperr.New(apperr.NotFound, "dish not found")
	}
	return nil
}

func (s *DishService) Get(id uint) (*entity.Dish, error) {
	dish, err := s.DishRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "dish not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "load dish")
	}
	return dish, nil
}

func (s *DishService) List() ([]entity.Dish, error) {
	dishes, err := s.DishRepo.ListAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "list dishes")
	}
	return dishes, nil
}

// MenuDish is a dish decorated with its review aggregate for the menu.
type MenuDish struct {
	entity.Dish
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int64   `json:"reviewCount"`
}

type MenuSection struct {
	Section string     `json:"section"`
	Dishes  []MenuDish `json:"dishes"`
}

// Menu groups the catalog by section in the fixed display order.
func (s *DishService) Menu() ([]MenuSection, error) {
	dishes, err := s.List()
	if err != nil {
		return nil, err
	}
	stats, err := s.ReviewRepo.StatsByDish()
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "load review stats")
	}

	bySection := map[string][]MenuDish{}
	for _, d := range dishes {
		md := MenuDish{Dish: d}
		if st, ok := stats[d.ID]; ok {
			md.AvgRating = st.AvgRating
			md.ReviewCount = st.ReviewCount
		}
		bySection[d.Section] = append(bySection[d.Section], md)
	}

	var sections []MenuSection
	for _, name := range entity.SectionOrder {
		if ds, ok := bySection[name]; ok {
			sections = append(sections, MenuSection{Section: name, Dishes: ds})
		}
	}
	return sections, nil
}

// Detail returns a dish with its reviews and aggregate.
func (s *DishService) Detail(id uint) (*MenuDish, []entity.Review, error) {
	dish, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}
	reviews, err := s.ReviewRepo.ListByDish(id)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.Unavailable, err, "load reviews")
	}
	stats, err := s.ReviewRepo.StatsFor(id)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.Unavailable, err, "load review stats")
	}
	return &MenuDish{Dish: *dish, AvgRating: stats.AvgRating, ReviewCount: stats.ReviewCount}, reviews, nil
}
