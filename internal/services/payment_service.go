package services

import (
	"errors"
	"fmt"
	"time"

	"swiftconnect_backend/internal/billing"
	"swiftconnect_backend/internal/email"
	"swiftconnect_backend/internal/logger"
	"swiftconnect_backend/internal/models"
	"swiftconnect_backend/internal/repositories"
	"swiftconnect_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type PaymentService interface {
	GetPayment(id string) (*models.Payment, error)
	// RecordPayment проводит оплату (возможно частичную) по платежу
	RecordPayment(id string, amount float64) (*models.Payment, error)
	// MarkPaid закрывает платеж на полную сумму остатка (устаревший маршрут)
	MarkPaid(id string) (*models.Payment, error)
}

type paymentService struct {
	paymentRepo      repositories.PaymentRepository
	subscriptionRepo repositories.SubscriptionRepository
	customerRepo     repositories.CustomerRepository
	emailProvider    email.Provider
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	customerRepo repositories.CustomerRepository,
	emailProvider email.Provider,
) PaymentService {
	return &paymentService{
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
		customerRepo:     customerRepo,
		emailProvider:    emailProvider,
	}
}

func (s *paymentService) GetPayment(id string) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrNotFound(err, "payment")
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) RecordPayment(id string, amount float64) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrNotFound(err, "payment")
		}
		return nil, err
	}

	if payment.Status == models.PaymentStatusPaid {
		return nil, apperrors.ErrPaymentAlreadyPaid
	}
	if amount <= 0 {
		return nil, apperrors.ErrInvalidOperation("payment", "Payment amount must be positive")
	}

	now := time.Now()
	billing.Apply(payment, amount, now)

	txID := uuid.NewString()
	payment.TransactionID = &txID

	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, err
	}

	if payment.Status == models.PaymentStatusPaid {
		go s.sendReceipt(payment)
	}

	return payment, nil
}

func (s *paymentService) MarkPaid(id string) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrNotFound(err, "payment")
		}
		return nil, err
	}

	if payment.Status == models.PaymentStatusPaid {
		return nil, apperrors.ErrPaymentAlreadyPaid
	}

	return s.RecordPayment(id, billing.Pending(*payment))
}

// sendReceipt отправляет квитанцию клиенту; ошибки только логируются
func (s *paymentService) sendReceipt(payment *models.Payment) {
	sub, err := s.subscriptionRepo.FindByID(payment.SubscriptionID)
	if err != nil {
		logger.WithError(err).Warn("receipt: subscription lookup failed", "payment_id", payment.ID)
		return
	}

	customer, err := s.customerRepo.FindByID(sub.CustomerID)
	if err != nil {
		logger.WithError(err).Warn("receipt: customer lookup failed", "payment_id", payment.ID)
		return
	}

	packageName := ""
	if sub.Package != nil {
		packageName = sub.Package.Name
	}

	txID := ""
	if payment.TransactionID != nil {
		txID = *payment.TransactionID
	}

	data := email.PaymentReceiptData{
		TemplateData:  email.TemplateData{CustomerName: customer.FullName},
		PackageName:   packageName,
		PaidAmount:    payment.PaidAmount,
		TransactionID: txID,
	}

	if err := s.emailProvider.SendPaymentReceipt(customer.Email, data); err != nil {
		logger.WithError(err).Warn("receipt: send failed",
			"payment_id", payment.ID,
			"customer", fmt.Sprintf("%s <%s>", customer.FullName, customer.Email))
	}
}
