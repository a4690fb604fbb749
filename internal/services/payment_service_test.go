package services

import (
	"testing"
	"time"

	"swiftconnect_backend/internal/email"
	"swiftconnect_backend/internal/models"
	"swiftconnect_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentFixture(total, penalty, paid float64, status models.PaymentStatus) *fakePaymentRepo {
	p := &models.Payment{
		SubscriptionID: "sub-1",
		TotalAmount:    total,
		PaidAmount:     paid,
		PenaltyAmount:  penalty,
		PendingAmount:  total + penalty - paid,
		Status:         status,
		DueDate:        time.Now().AddDate(0, 1, 0),
	}
	p.ID = "pay-1"
	return &fakePaymentRepo{payments: map[string]*models.Payment{"pay-1": p}}
}

func newPaymentService(payRepo *fakePaymentRepo) PaymentService {
	subRepo := &fakeSubscriptionRepo{subs: map[string]*models.Subscription{}}
	custRepo := &fakeCustomerRepo{customers: map[string]*models.Customer{}}
	return NewPaymentService(payRepo, subRepo, custRepo, email.NewNoopProvider())
}

func TestRecordPayment_PartialAmount(t *testing.T) {
	payRepo := paymentFixture(100, 10, 0, models.PaymentStatusPending)
	svc := newPaymentService(payRepo)

	payment, err := svc.RecordPayment("pay-1", 30)
	require.NoError(t, err)

	assert.InDelta(t, 30.0, payment.PaidAmount, 1e-9)
	assert.InDelta(t, 80.0, payment.PendingAmount, 1e-9)
	assert.Equal(t, models.PaymentStatusPartiallyPaid, payment.Status)
	assert.Nil(t, payment.PaidAt)
	require.NotNil(t, payment.TransactionID)
}

func TestRecordPayment_FullAmountClosesPayment(t *testing.T) {
	payRepo := paymentFixture(100, 0, 0, models.PaymentStatusPending)
	svc := newPaymentService(payRepo)

	payment, err := svc.RecordPayment("pay-1", 100)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
	assert.InDelta(t, 0.0, payment.PendingAmount, 1e-9)
	require.NotNil(t, payment.PaidAt)
}

func TestRecordPayment_PartialOnOverdueKeepsOverdue(t *testing.T) {
	payRepo := paymentFixture(100, 5, 0, models.PaymentStatusOverdue)
	svc := newPaymentService(payRepo)

	payment, err := svc.RecordPayment("pay-1", 40)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusOverdue, payment.Status)
	assert.InDelta(t, 65.0, payment.PendingAmount, 1e-9)
}

func TestRecordPayment_AlreadyPaidRejected(t *testing.T) {
	payRepo := paymentFixture(100, 0, 100, models.PaymentStatusPaid)
	svc := newPaymentService(payRepo)

	_, err := svc.RecordPayment("pay-1", 10)
	assert.ErrorIs(t, err, apperrors.ErrPaymentAlreadyPaid)
}

func TestRecordPayment_NonPositiveAmountRejected(t *testing.T) {
	payRepo := paymentFixture(100, 0, 0, models.PaymentStatusPending)
	svc := newPaymentService(payRepo)

	_, err := svc.RecordPayment("pay-1", 0)
	require.Error(t, err)

	_, err = svc.RecordPayment("pay-1", -5)
	require.Error(t, err)
}

func TestMarkPaid_PaysFullPendingIncludingPenalty(t *testing.T) {
	payRepo := paymentFixture(100, 10, 30, models.PaymentStatusPartiallyPaid)
	svc := newPaymentService(payRepo)

	payment, err := svc.MarkPaid("pay-1")
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
	assert.InDelta(t, 0.0, payment.PendingAmount, 1e-9)
	assert.InDelta(t, 110.0, payment.PaidAmount, 1e-9)
}

func TestMarkPaid_AlreadyPaidRejected(t *testing.T) {
	payRepo := paymentFixture(100, 0, 100, models.PaymentStatusPaid)
	svc := newPaymentService(payRepo)

	_, err := svc.MarkPaid("pay-1")
	assert.ErrorIs(t, err, apperrors.ErrPaymentAlreadyPaid)
}

func TestGetPayment_NotFound(t *testing.T) {
	payRepo := &fakePaymentRepo{payments: map[string]*models.Payment{}}
	svc := newPaymentService(payRepo)

	_, err := svc.GetPayment("ghost")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
