package repositories

import (
	"errors"

	"swiftconnect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrStaffUserNotFound      = errors.New("staff user not found")
	ErrStaffUserAlreadyExists = errors.New("staff user already exists")
)

type StaffUserRepository interface {
	FindByID(id string) (*models.StaffUser, error)
	FindByEmail(email string) (*models.StaffUser, error)
	Create(staff *models.StaffUser) error
	Update(staff *models.StaffUser) error
	CountAll() (int64, error)
}

type StaffUserRepositoryImpl struct {
	db *gorm.DB
}

func NewStaffUserRepository(db *gorm.DB) StaffUserRepository {
	return &StaffUserRepositoryImpl{db: db}
}

func (r *StaffUserRepositoryImpl) FindByID(id string) (*models.StaffUser, error) {
	var staff models.StaffUser
	err := r.db.First(&staff, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffUserNotFound
		}
		return nil, err
	}
	return &staff, nil
}

func (r *StaffUserRepositoryImpl) FindByEmail(email string) (*models.StaffUser, error) {
	var staff models.StaffUser
	err := r.db.First(&staff, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffUserNotFound
		}
		return nil, err
	}
	return &staff, nil
}

func (r *StaffUserRepositoryImpl) Create(staff *models.StaffUser) error {
	var existing models.StaffUser
	if err := r.db.Where("email = ?", staff.Email).First(&existing).Error; err == nil {
		return ErrStaffUserAlreadyExists
	}
	return r.db.Create(staff).Error
}

func (r *StaffUserRepositoryImpl) Update(staff *models.StaffUser) error {
	return r.db.Save(staff).Error
}

func (r *StaffUserRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.StaffUser{}).Count(&count).Error
	return count, err
}
