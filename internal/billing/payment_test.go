package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"swiftconnect_backend/internal/models"
)

func TestPending_ClampedAtZero(t *testing.T) {
	p := models.Payment{TotalAmount: 100, PenaltyAmount: 10, PaidAmount: 30}
	assert.InDelta(t, 80.0, Pending(p), 1e-9)

	p.PaidAmount = 200
	assert.Equal(t, 0.0, Pending(p))
}

func TestApply_PartialPayment(t *testing.T) {
	now := time.Now()
	p := models.Payment{
		TotalAmount:   100,
		PenaltyAmount: 10,
		PendingAmount: 110,
		Status:        models.PaymentStatusPending,
	}

	Apply(&p, 30, now)

	assert.InDelta(t, 30.0, p.PaidAmount, 1e-9)
	assert.InDelta(t, 80.0, p.PendingAmount, 1e-9)
	assert.Equal(t, models.PaymentStatusPartiallyPaid, p.Status)
	assert.Nil(t, p.PaidAt)
}

func TestApply_FullPayment(t *testing.T) {
	now := time.Now()
	p := models.Payment{
		TotalAmount:   50,
		PendingAmount: 50,
		Status:        models.PaymentStatusPending,
	}

	Apply(&p, 50, now)

	assert.Equal(t, models.PaymentStatusPaid, p.Status)
	assert.Equal(t, 0.0, p.PendingAmount)
	if assert.NotNil(t, p.PaidAt) {
		assert.Equal(t, now, *p.PaidAt)
	}
}

func TestApply_PartialOnOverdueKeepsOverdue(t *testing.T) {
	p := models.Payment{
		TotalAmount:   100,
		PenaltyAmount: 20,
		PaidAmount:    0,
		PendingAmount: 120,
		Status:        models.PaymentStatusOverdue,
	}

	Apply(&p, 40, time.Now())

	assert.Equal(t, models.PaymentStatusOverdue, p.Status)
	assert.InDelta(t, 80.0, p.PendingAmount, 1e-9)
}

func TestAccruePenalty(t *testing.T) {
	p := models.Payment{TotalAmount: 100, PendingAmount: 100, Status: models.PaymentStatusOverdue}

	AccruePenalty(&p, 10)

	assert.InDelta(t, 10.0, p.PenaltyAmount, 1e-9)
	assert.InDelta(t, 110.0, p.PendingAmount, 1e-9)
}

func TestNextDueDate(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), NextDueDate(start, models.CycleMonthly))
	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), NextDueDate(start, models.CycleThreeMonths))
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), NextDueDate(start, models.CycleYearly))
}
