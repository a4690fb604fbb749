package repositories

import (
	"errors"
	"time"

	"swiftconnect_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentRepository interface {
	FindByID(id string) (*models.Payment, error)
	FindBySubscription(subscriptionID string) ([]models.Payment, error)
	FindOpenPastDue(before time.Time) ([]models.Payment, error)
	HasOpenPayment(subscriptionID string) (bool, error)
	Create(payment *models.Payment) error
	Update(payment *models.Payment) error
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) FindByID(id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindBySubscription(subscriptionID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.
		Where("subscription_id = ?", subscriptionID).
		Order("due_date ASC").
		Find(&payments).Error
	return payments, err
}

// FindOpenPastDue возвращает неоплаченные платежи с dueDate раньше before
func (r *PaymentRepositoryImpl) FindOpenPastDue(before time.Time) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.
		Where("status IN ? AND due_date < ?",
			[]models.PaymentStatus{models.PaymentStatusPending, models.PaymentStatusPartiallyPaid},
			before).
		Find(&payments).Error
	return payments, err
}

// HasOpenPayment проверяет, есть ли у подписки незакрытый платеж
func (r *PaymentRepositoryImpl) HasOpenPayment(subscriptionID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Payment{}).
		Where("subscription_id = ? AND status <> ?", subscriptionID, models.PaymentStatusPaid).
		Count(&count).Error
	return count > 0, err
}

func (r *PaymentRepositoryImpl) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}
