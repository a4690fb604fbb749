package services

import (
	"encoding/json"
	"errors"

	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/models"
	"swiftconnect_backend/internal/repositories"
	"swiftconnect_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type PackageService interface {
	ListPackages() ([]models.Package, error)
	GetPackage(id string) (*models.Package, error)
	CreatePackage(req *dto.CreatePackageRequest) (*models.Package, error)
	UpdatePackage(id string, req *dto.UpdatePackageRequest) (*models.Package, error)
	DeletePackage(id string) error
}

type packageService struct {
	packageRepo repositories.PackageRepository
}

func NewPackageService(packageRepo repositories.PackageRepository) PackageService {
	return &packageService{packageRepo: packageRepo}
}

func (s *packageService) ListPackages() ([]models.Package, error) {
	return s.packageRepo.FindAll()
}

func (s *packageService) GetPackage(id string) (*models.Package, error) {
	pkg, err := s.packageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPackageNotFound) {
			return nil, apperrors.ErrNotFound(err, "package")
		}
		return nil, err
	}
	return pkg, nil
}

func (s *packageService) CreatePackage(req *dto.CreatePackageRequest) (*models.Package, error) {
	features, err := featuresJSON(req.Features)
	if err != nil {
		return nil, err
	}

	pkg := &models.Package{
		Name:             req.Name,
		Speed:            req.Speed,
		MonthlyPrice:     req.MonthlyPrice,
		ThreeMonthsPrice: req.ThreeMonthsPrice,
		YearlyPrice:      req.YearlyPrice,
		Features:         features,
		IsPopular:        req.IsPopular,
	}

	if err := s.packageRepo.Create(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *packageService) UpdatePackage(id string, req *dto.UpdatePackageRequest) (*models.Package, error) {
	pkg, err := s.packageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPackageNotFound) {
			return nil, apperrors.ErrNotFound(err, "package")
		}
		return nil, err
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Speed != nil {
		pkg.Speed = *req.Speed
	}
	if req.MonthlyPrice != nil {
		pkg.MonthlyPrice = *req.MonthlyPrice
	}
	if req.ThreeMonthsPrice != nil {
		pkg.ThreeMonthsPrice = *req.ThreeMonthsPrice
	}
	if req.YearlyPrice != nil {
		pkg.YearlyPrice = *req.YearlyPrice
	}
	if req.Features != nil {
		features, err := featuresJSON(*req.Features)
		if err != nil {
			return nil, err
		}
		pkg.Features = features
	}
	if req.IsPopular != nil {
		pkg.IsPopular = *req.IsPopular
	}

	if err := s.packageRepo.Update(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// DeletePackage отклоняет удаление пакета с активными подписками
func (s *packageService) DeletePackage(id string) error {
	count, err := s.packageRepo.CountSubscriptions(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrInvalidOperation("package", "Package has active subscriptions and cannot be deleted")
	}

	if err := s.packageRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrPackageNotFound) {
			return apperrors.ErrNotFound(err, "package")
		}
		return err
	}
	return nil
}

func featuresJSON(features []string) (datatypes.JSON, error) {
	if features == nil {
		features = []string{}
	}
	raw, err := json.Marshal(features)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
