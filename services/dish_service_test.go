package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azimiwizard/App-1/entity"
	"github.com/Azimiwizard/App-1/pkg/apperr"
	"github.com/Azimiwizard/App-1/repository"
)

func newDishService(t *testing.T) (*DishService, *ReviewService, *checkoutFixture) {
	t.Helper()
	f := newCheckoutFixture(t)
	dr := repository.NewDishRepository(f.db)
	rr := repository.NewReviewRepository(f.db)
	return NewDishService(dr, rr), NewReviewService(rr, dr), f
}

func TestDishCreateValidation(t *testing.T) {
	svc, _, _ := newDishService(t)

	cases := []struct {
		name string
		in   DishIn
	}{
		{"blank name", DishIn{Name: "   ", PriceCents: 100, Section: entity.SectionLunch}},
		{"zero price", DishIn{Name: "Free Lunch", PriceCents: 0, Section: entity.SectionLunch}},
		{"negative price", DishIn{Name: "Refund", PriceCents: -50, Section: entity.SectionLunch}},
		{"bad section", DishIn{Name: "Mystery", PriceCents: 100, Section: "Midnight"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(&tc.in)
			require.Error(t, err)
			assert.Equal(t, apperr.Validation, apperr.KindOf(err))
		})
	}
}

func TestDishNameUniqueCaseInsensitive(t *testing.T) {
	svc, _, _ := newDishService(t)

	_, err := svc.Create(&DishIn{Name: "Pad Thai", PriceCents: 1250, Section: entity.SectionDinner})
	require.NoError(t, err)

	_, err = svc.Create(&DishIn{Name: "pad thai", PriceCents: 1300, Section: entity.SectionDinner})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	// updating a dish to its own name stays legal
	other, err := svc.Create(&DishIn{Name: "Spring Rolls", PriceCents: 600, Section: entity.SectionDinner})
	require.NoError(t, err)
	_, err = svc.Update(other.ID, &DishIn{Name: "Spring Rolls", PriceCents: 650, Section: entity.SectionDinner})
	require.NoError(t, err)

	_, err = svc.Update(other.ID, &DishIn{Name: "PAD THAI", PriceCents: 650, Section: entity.SectionDinner})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestDishDescriptionSanitized(t *testing.T) {
	svc, _, _ := newDishService(t)

	dish, err := svc.Create(&DishIn{
		Name:        "Salmon Bowl",
		PriceCents:  1800,
		Section:     entity.SectionDinner,
		Description: `Fresh <script>alert("x")</script>salmon`,
	})
	require.NoError(t, err)
	assert.NotContains(t, dish.Description, "<script>")
	assert.Contains(t, dish.Description, "salmon")
}

func TestDishDeleteNotFound(t *testing.T) {
	svc, _, _ := newDishService(t)

	err := svc.Delete(42)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestMenuGroupedInSectionOrder(t *testing.T) {
	svc, reviews, f := newDishService(t)

	_, err := svc.Create(&DishIn{Name: "Steak", PriceCents: 2900, Section: entity.SectionDinner})
	require.NoError(t, err)
	pancakes, err := svc.Create(&DishIn{Name: "Pancakes", PriceCents: 900, Section: entity.SectionBreakfast})
	require.NoError(t, err)

	user := createUser(t, f.db, "reviewer", 0)
	five := 5
	_, err = reviews.Create(user.ID, pancakes.ID, &ReviewIn{Rating: &five, Body: "great"})
	require.NoError(t, err)

	menu, err := svc.Menu()
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, entity.SectionBreakfast, menu[0].Section)
	assert.Equal(t, entity.SectionDinner, menu[1].Section)

	require.Len(t, menu[0].Dishes, 1)
	assert.Equal(t, 5.0, menu[0].Dishes[0].AvgRating)
	assert.Equal(t, int64(1), menu[0].Dishes[0].ReviewCount)
}
