package repositories

import (
	"errors"
	"strings"

	"swiftconnect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerAlreadyExists = errors.New("customer already exists")
)

type CustomerRepository interface {
	FindByID(id string) (*models.Customer, error)
	FindAll() ([]models.Customer, error)
	Search(query string) ([]models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	Delete(id string) error
	CountAll() (int64, error)
}

type CustomerRepositoryImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

func (r *CustomerRepositoryImpl) FindByID(id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.
		Preload("Subscriptions").
		Preload("Subscriptions.Package").
		Preload("Subscriptions.Payments").
		First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepositoryImpl) FindAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.
		Preload("Subscriptions").
		Preload("Subscriptions.Package").
		Preload("Subscriptions.Payments").
		Order("created_at DESC").
		Find(&customers).Error
	return customers, err
}

// Search ищет по имени, email и номеру телефона без учета регистра
func (r *CustomerRepositoryImpl) Search(query string) ([]models.Customer, error) {
	var customers []models.Customer
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.
		Preload("Subscriptions").
		Preload("Subscriptions.Package").
		Preload("Subscriptions.Payments").
		Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(mobile_number) LIKE ?",
			pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&customers).Error
	return customers, err
}

func (r *CustomerRepositoryImpl) Create(customer *models.Customer) error {
	var existing models.Customer
	if err := r.db.Where("cnic_passport = ?", customer.CnicPassport).First(&existing).Error; err == nil {
		return ErrCustomerAlreadyExists
	}
	return r.db.Create(customer).Error
}

// Update пишет все поля, включая нулевые (isActive=false тоже сохраняется)
func (r *CustomerRepositoryImpl) Update(customer *models.Customer) error {
	result := r.db.Model(customer).Select("*").Omit("id", "created_at").Updates(customer)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// Delete удаляет клиента; подписки и платежи уходят каскадом
func (r *CustomerRepositoryImpl) Delete(id string) error {
	result := r.db.Select("Subscriptions").Delete(&models.Customer{BaseModel: models.BaseModel{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Count(&count).Error
	return count, err
}
