package console

import (
	"context"

	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/models"
)

// PackageAPI - часть клиента API для экрана управления пакетами
type PackageAPI interface {
	ListPackages(ctx context.Context) ([]models.Package, error)
	CreatePackage(ctx context.Context, req *dto.CreatePackageRequest) (*models.Package, error)
	UpdatePackage(ctx context.Context, id string, req *dto.UpdatePackageRequest) (*models.Package, error)
	DeletePackage(ctx context.Context, id string) error
}

// PackageScreen - состояние экрана каталога пакетов.
// После каждой мутации каталог перечитывается с сервера.
type PackageScreen struct {
	api      PackageAPI
	packages []models.Package
}

func NewPackageScreen(api PackageAPI) *PackageScreen {
	return &PackageScreen{api: api}
}

func (s *PackageScreen) Load(ctx context.Context) error {
	packages, err := s.api.ListPackages(ctx)
	if err != nil {
		return err
	}
	s.packages = packages
	return nil
}

func (s *PackageScreen) Packages() []models.Package { return s.packages }

// Find возвращает пакет из загруженного каталога
func (s *PackageScreen) Find(id string) (models.Package, bool) {
	for _, pkg := range s.packages {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return models.Package{}, false
}

func (s *PackageScreen) Create(ctx context.Context, req *dto.CreatePackageRequest) (*models.Package, error) {
	pkg, err := s.api.CreatePackage(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *PackageScreen) Update(ctx context.Context, id string, req *dto.UpdatePackageRequest) (*models.Package, error) {
	pkg, err := s.api.UpdatePackage(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *PackageScreen) Delete(ctx context.Context, id string) error {
	if err := s.api.DeletePackage(ctx, id); err != nil {
		return err
	}
	return s.Load(ctx)
}
