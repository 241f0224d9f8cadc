package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/entity"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: "admin",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		IsAdmin:  true,
	}
	return db.Create(&admin).Error
}

// SeedRoles seeds the RBAC lookup tables. Route guards run off the admin
// flag; these rows back future per-permission policies.
func SeedRoles(db *gorm.DB) error {
	perms := map[string]*entity.Permission{}
	for _, name := range []string{
		"dish:manage", "order:manage", "order:view", "review:write", "cart:use",
	} {
		p := &entity.Permission{Name: name}
		if err := db.FirstOrCreate(p, entity.Permission{Name: name}).Error; err != nil {
			return err
		}
		perms[name] = p
	}

	grants := map[string][]string{
		"admin":    {"dish:manage", "order:manage", "order:view", "review:write", "cart:use"},
		"staff":    {"order:manage", "order:view"},
		"customer": {"order:view", "review:write", "cart:use"},
	}
	for name, grant := range grants {
		r := &entity.Role{Name: name}
		if err := db.FirstOrCreate(r, entity.Role{Name: name}).Error; err != nil {
			return err
		}
		var ps []entity.Permission
		for _, g := range grant {
			ps = append(ps, *perms[g])
		}
		if err := db.Model(r).Association("Permissions").Replace(ps); err != nil {
			return err
		}
	}

	log.Println("roles seeded")
	return nil
}

// SeedDishes loads the starter menu if the catalog is empty.
func SeedDishes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Dish{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("dishes already exist, skipping seed")
		return nil
	}

	dishes := []entity.Dish{
		{Section: entity.SectionBreakfast, Name: "Classic Breakfast", PriceCents: 999, Description: "Eggs, toast, and more."},
		{Section: entity.SectionBreakfast, Name: "Pancake Stack", PriceCents: 799, Description: "Fluffy pancakes with syrup."},
		{Section: entity.SectionBreakfast, Name: "Avocado Toast", PriceCents: 850, Description: "Sourdough with smashed avocado."},
		{Section: entity.SectionBreakfast, Name: "Oatmeal Bowl", PriceCents: 650, Description: "Healthy oatmeal with fruit."},
		{Section: entity.SectionLunch, Name: "Chicken Sandwich", PriceCents: 1250, Description: "Grilled chicken sandwich."},
		{Section: entity.SectionLunch, Name: "Burger Deluxe", PriceCents: 1475, Description: "Juicy beef burger."},
		{Section: entity.SectionLunch, Name: "Caesar Salad", PriceCents: 1000, Description: "Classic Caesar salad."},
		{Section: entity.SectionLunch, Name: "Veggie Wrap", PriceCents: 1150, Description: "Fresh veggie wrap."},
		{Section: entity.SectionDinner, Name: "Spaghetti & Meatballs", PriceCents: 1699, Description: "Classic spaghetti with meatballs."},
		{Section: entity.SectionDinner, Name: "Grilled Salmon", PriceCents: 1850, Description: "Grilled salmon fillet."},
		{Section: entity.SectionDinner, Name: "Ribeye Steak", PriceCents: 2500, Description: "Juicy ribeye steak."},
		{Section: entity.SectionDinner, Name: "Chicken Parmesan", PriceCents: 1750, Description: "Breaded chicken with cheese."},
	}
	if err := db.Create(&dishes).Error; err != nil {
		return err
	}
	log.Println("seeded dishes")
	return nil
}
