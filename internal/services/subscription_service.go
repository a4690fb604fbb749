package services

import (
	"errors"
	"time"

	"swiftconnect_backend/internal/billing"
	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/models"
	"swiftconnect_backend/internal/repositories"
	"swiftconnect_backend/pkg/apperrors"
)

type SubscriptionService interface {
	GetSubscription(id string) (*models.Subscription, error)
	CreateSubscription(req *dto.CreateSubscriptionRequest) (*models.Subscription, error)
	UpdateSubscription(id string, req *dto.UpdateSubscriptionRequest) (*models.Subscription, error)
	DeleteSubscription(id string) error
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	customerRepo     repositories.CustomerRepository
	packageRepo      repositories.PackageRepository
	paymentRepo      repositories.PaymentRepository
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	customerRepo repositories.CustomerRepository,
	packageRepo repositories.PackageRepository,
	paymentRepo repositories.PaymentRepository,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		customerRepo:     customerRepo,
		packageRepo:      packageRepo,
		paymentRepo:      paymentRepo,
	}
}

func (s *subscriptionService) GetSubscription(id string) (*models.Subscription, error) {
	sub, err := s.subscriptionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrNotFound(err, "subscription")
		}
		return nil, err
	}
	return sub, nil
}

// CreateSubscription фиксирует цену по текущему прайсу пакета и сразу
// открывает первый pending платеж на эту сумму.
func (s *subscriptionService) CreateSubscription(req *dto.CreateSubscriptionRequest) (*models.Subscription, error) {
	cycle := models.PaymentCycle(req.PaymentCycle)
	if !cycle.Valid() {
		return nil, apperrors.ErrUnknownPaymentCycle
	}

	if _, err := s.customerRepo.FindByID(req.CustomerID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, apperrors.ErrNotFound(err, "customer")
		}
		return nil, err
	}

	pkg, err := s.packageRepo.FindByID(req.PackageID)
	if err != nil {
		if errors.Is(err, repositories.ErrPackageNotFound) {
			return nil, apperrors.ErrNotFound(err, "package")
		}
		return nil, err
	}

	now := time.Now()
	sub := &models.Subscription{
		CustomerID:   req.CustomerID,
		PackageID:    req.PackageID,
		PaymentCycle: cycle,
		Status:       models.SubscriptionStatusActive,
		Price:        billing.PriceFor(*pkg, cycle),
		StartDate:    now,
		NextDueDate:  billing.NextDueDate(now, cycle),
	}

	if err := s.subscriptionRepo.Create(sub); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		SubscriptionID: sub.ID,
		TotalAmount:    sub.Price,
		PendingAmount:  sub.Price,
		Status:         models.PaymentStatusPending,
		DueDate:        sub.NextDueDate,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	sub.Package = pkg
	sub.Payments = []models.Payment{*payment}
	return sub, nil
}

// UpdateSubscription применяет частичное обновление. Смена пакета или цикла
// перефиксирует цену по текущему прайсу.
func (s *subscriptionService) UpdateSubscription(id string, req *dto.UpdateSubscriptionRequest) (*models.Subscription, error) {
	sub, err := s.subscriptionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrNotFound(err, "subscription")
		}
		return nil, err
	}

	repriceNeeded := false

	if req.PackageID != nil && *req.PackageID != sub.PackageID {
		if _, err := s.packageRepo.FindByID(*req.PackageID); err != nil {
			if errors.Is(err, repositories.ErrPackageNotFound) {
				return nil, apperrors.ErrNotFound(err, "package")
			}
			return nil, err
		}
		sub.PackageID = *req.PackageID
		repriceNeeded = true
	}

	if req.PaymentCycle != nil {
		cycle := models.PaymentCycle(*req.PaymentCycle)
		if !cycle.Valid() {
			return nil, apperrors.ErrUnknownPaymentCycle
		}
		if cycle != sub.PaymentCycle {
			sub.PaymentCycle = cycle
			repriceNeeded = true
		}
	}

	if req.Status != nil {
		status := models.SubscriptionStatus(*req.Status)
		switch status {
		case models.SubscriptionStatusActive, models.SubscriptionStatusSuspended, models.SubscriptionStatusCancelled:
			sub.Status = status
		default:
			return nil, apperrors.ErrInvalidStatus("subscription", "Unknown subscription status")
		}
	}

	if repriceNeeded {
		pkg, err := s.packageRepo.FindByID(sub.PackageID)
		if err != nil {
			return nil, err
		}
		sub.Price = billing.PriceFor(*pkg, sub.PaymentCycle)
	}

	if err := s.subscriptionRepo.Update(sub); err != nil {
		return nil, err
	}

	return s.subscriptionRepo.FindByID(id)
}

// DeleteSubscription удаляет подписку вместе с историей платежей
func (s *subscriptionService) DeleteSubscription(id string) error {
	if err := s.subscriptionRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return apperrors.ErrNotFound(err, "subscription")
		}
		return err
	}
	return nil
}
