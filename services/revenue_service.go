package services

import (
	"sort"
	"time"

	"github.com/Azimiwizard/App-1/pkg/apperr"
	"github.com/Azimiwizard/App-1/repository"
)

type RevenueService struct {
	OrderRepo *repository.OrderRepository
}

func NewRevenueService(or *repository.OrderRepository) *RevenueService {
	return &RevenueService{OrderRepo: or}
}

type RevenueBucket struct {
	Period     string `json:"period"` // "2026-08-28" or "2026-08"
	TotalCents int64  `json:"totalCents"`
	Orders     int64  `json:"orders"`
}

type RevenueReport struct {
	TotalCents int64                    `json:"totalCents"`
	ByDish     []repository.DishRevenue `json:"byDish"`
	Daily      []RevenueBucket          `json:"daily"`
	Monthly    []RevenueBucket          `json:"monthly"`
}

// Report aggregates all-time, per-dish, daily (last 30 days) and monthly
// (last 12 months) revenue. Time bucketing happens here rather than in
// SQL so the sqlite and postgres backends share one code path.
func (s *RevenueService) Report() (*RevenueReport, error) {
	total, err := s.OrderRepo.TotalRevenue()
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "total revenue")
	}
	byDish, err := s.OrderRepo.RevenueByDish()
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "revenue by dish")
	}
	orders, err := s.OrderRepo.ListAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "list orders")
	}

	now := time.Now()
	dayCut := now.AddDate(0, 0, -30)
	monthCut := now.AddDate(0, -12, 0)

	daily := map[string]*RevenueBucket{}
	monthly := map[string]*RevenueBucket{}
	for _, o := range orders {
		if o.CreatedAt.After(dayCut) {
			key := o.CreatedAt.Format("2006-01-02")
			bucket(daily, key).add(o.TotalCents)
		}
		if o.CreatedAt.After(monthCut) {
			key := o.CreatedAt.Format("2006-01")
			bucket(monthly, key).add(o.TotalCents)
		}
	}

	return &RevenueReport{
		TotalCents: total,
		ByDish:     byDish,
		Daily:      sortBuckets(daily),
		Monthly:    sortBuckets(monthly),
	}, nil
}

func bucket(m map[string]*RevenueBucket, key string) *RevenueBucket {
	b, ok := m[key]
	if !ok {
		b = &RevenueBucket{Period: key}
		m[key] = b
	}
	return b
}

func (b *RevenueBucket) add(cents int64) {
	b.TotalCents += cents
	b.Orders++
}

func sortBuckets(m map[string]*RevenueBucket) []RevenueBucket {
	out := make([]RevenueBucket, 0, len(m))
	for _, b := range m {
		out = append(out, *b)
	}
	// Periods are zero-padded dates, so string order is time order.
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}
