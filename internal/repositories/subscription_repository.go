package repositories

import (
	"errors"

	"swiftconnect_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

type SubscriptionRepository interface {
	FindByID(id string) (*models.Subscription, error)
	FindByCustomer(customerID string) ([]models.Subscription, error)
	FindActive() ([]models.Subscription, error)
	Create(sub *models.Subscription) error
	Update(sub *models.Subscription) error
	Delete(id string) error
}

type SubscriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db}
}

func (r *SubscriptionRepositoryImpl) FindByID(id string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.
		Preload("Package").
		Preload("Payments").
		First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) FindByCustomer(customerID string) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.
		Preload("Package").
		Preload("Payments").
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&subs).Error
	return subs, err
}

// FindActive возвращает активные подписки для фонового биллинга
func (r *SubscriptionRepositoryImpl) FindActive() ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.
		Preload("Package").
		Preload("Payments").
		Where("status = ?", models.SubscriptionStatusActive).
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) Create(sub *models.Subscription) error {
	return r.db.Create(sub).Error
}

// Update пишет все поля, включая нулевые (цена 0 тоже сохраняется)
func (r *SubscriptionRepositoryImpl) Update(sub *models.Subscription) error {
	result := r.db.Model(sub).Select("*").Omit("id", "created_at").Updates(sub)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

// Delete удаляет подписку вместе с ее платежами
func (r *SubscriptionRepositoryImpl) Delete(id string) error {
	result := r.db.Select("Payments").Delete(&models.Subscription{BaseModel: models.BaseModel{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}
