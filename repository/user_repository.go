package repository

import (
	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/entity"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByAuthID(authID string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("auth_id = ?", authID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// CountByUsernameExcept supports profile edits: uniqueness ignoring the
// user's own row. Pass exceptID 0 at registration.
func (r *UserRepository) CountByUsernameExcept(username string, exceptID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).
		Where("username = ? AND id <> ?", username, exceptID).
		Count(&count).Error
	return count, err
}

func (r *UserRepository) CountByEmailExcept(email string, exceptID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).
		Where("email = ? AND id <> ?", email, exceptID).
		Count(&count).Error
	return count, err
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

// AddPoints applies a signed delta to the loyalty balance inside the
// caller's transaction.
func (r *UserRepository) AddPoints(tx *gorm.DB, id uint, delta int64) error {
	return tx.Model(&entity.User{}).Where("id = ?", id).
		Update("points", gorm.Expr("points + ?", delta)).Error
}

func (r *UserRepository) ListAll() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) PromoteAll() error {
	return r.DB.Model(&entity.User{}).Where("is_admin = ?", false).
		Update("is_admin", true).Error
}
