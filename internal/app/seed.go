package app

import (
	"encoding/json"
	"fmt"

	"swiftconnect_backend/internal/config"
	"swiftconnect_backend/internal/logger"
	"swiftconnect_backend/internal/models"
	"swiftconnect_backend/internal/services"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// seedInitialData создает первого администратора и стартовый каталог пакетов
func seedInitialData(sc *services.ServiceContainer, db *gorm.DB, cfg *config.Config) error {
	if cfg.Seed.AdminPassword == "" {
		logger.Warn("Seed admin password is not set. Skipping admin seeding.")
	} else {
		if err := sc.AuthService.EnsureAdmin(cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
			return fmt.Errorf("failed to seed admin: %w", err)
		}
	}

	return seedDefaultPackages(db)
}

// seedDefaultPackages наполняет пустой каталог стартовыми тарифами
func seedDefaultPackages(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Package{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count packages: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		name        string
		speed       string
		monthly     float64
		threeMonths float64
		yearly      float64
		features    []string
		popular     bool
	}{
		{
			name: "Basic", speed: "10 Mbps",
			monthly: 15, threeMonths: 42, yearly: 150,
			features: []string{"Unlimited data", "Email support"},
		},
		{
			name: "Standard", speed: "30 Mbps",
			monthly: 25, threeMonths: 70, yearly: 250,
			features: []string{"Unlimited data", "Priority support", "Free router"},
			popular:  true,
		},
		{
			name: "Premium", speed: "100 Mbps",
			monthly: 45, threeMonths: 126, yearly: 450,
			features: []string{"Unlimited data", "24/7 support", "Free router", "Static IP"},
		},
	}

	for _, d := range defaults {
		raw, err := json.Marshal(d.features)
		if err != nil {
			return err
		}

		pkg := models.Package{
			Name:             d.name,
			Speed:            d.speed,
			MonthlyPrice:     d.monthly,
			ThreeMonthsPrice: d.threeMonths,
			YearlyPrice:      d.yearly,
			Features:         datatypes.JSON(raw),
			IsPopular:        d.popular,
		}
		if err := db.Create(&pkg).Error; err != nil {
			return fmt.Errorf("failed to seed package %s: %w", d.name, err)
		}
	}

	logger.Info("Seeded default package catalog", "count", len(defaults))
	return nil
}
