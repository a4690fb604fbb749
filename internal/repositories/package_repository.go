package repositories

import (
	"errors"

	"swiftconnect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrPackageInUse    = errors.New("package has active subscriptions")
)

type PackageRepository interface {
	FindByID(id string) (*models.Package, error)
	FindAll() ([]models.Package, error)
	Create(pkg *models.Package) error
	Update(pkg *models.Package) error
	Delete(id string) error
	CountSubscriptions(packageID string) (int64, error)
}

type PackageRepositoryImpl struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &PackageRepositoryImpl{db: db}
}

func (r *PackageRepositoryImpl) FindByID(id string) (*models.Package, error) {
	var pkg models.Package
	err := r.db.First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepositoryImpl) FindAll() ([]models.Package, error) {
	var pkgs []models.Package
	err := r.db.Order("monthly_price ASC").Find(&pkgs).Error
	return pkgs, err
}

func (r *PackageRepositoryImpl) Create(pkg *models.Package) error {
	return r.db.Create(pkg).Error
}

// Update пишет все поля, включая нулевые (false, 0, пустые строки)
func (r *PackageRepositoryImpl) Update(pkg *models.Package) error {
	result := r.db.Model(pkg).Select("*").Omit("id", "created_at").Updates(pkg)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPackageNotFound
	}
	return nil
}

func (r *PackageRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Package{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPackageNotFound
	}
	return nil
}

func (r *PackageRepositoryImpl) CountSubscriptions(packageID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("package_id = ? AND status = ?", packageID, models.SubscriptionStatusActive).
		Count(&count).Error
	return count, err
}
