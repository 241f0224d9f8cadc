package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/configs"
	"github.com/Azimiwizard/App-1/entity"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh shared in-memory sqlite database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := configs.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestRedemption(t *testing.T) *RedemptionStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedemptionStore(client, time.Minute)
}

func createUser(t *testing.T, db *gorm.DB, username string, points int64) *entity.User {
	t.Helper()
	u := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Points:   points,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createDish(t *testing.T, db *gorm.DB, name string, priceCents int64) *entity.Dish {
	t.Helper()
	d := &entity.Dish{
		Name:       name,
		PriceCents: priceCents,
		Section:    entity.SectionLunch,
	}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("create dish: %v", err)
	}
	return d
}
