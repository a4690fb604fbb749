package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"swiftconnect_backend/internal/models"
)

func subWithPayments(payments ...models.Payment) models.Subscription {
	return models.Subscription{
		PaymentCycle: models.CycleMonthly,
		Status:       models.SubscriptionStatusActive,
		Payments:     payments,
	}
}

func TestDeriveStatus_NoSubscriptions(t *testing.T) {
	c := models.Customer{FullName: "Али Хан"}

	assert.Equal(t, CustomerStatusNoSubscription, DeriveStatus(c))
	assert.Equal(t, 0.0, TotalDue(c))
}

func TestDeriveStatus_OverdueBeatsPending(t *testing.T) {
	// Просрочка в одной подписке важнее ожидающего платежа в другой.
	c := models.Customer{
		Subscriptions: []models.Subscription{
			subWithPayments(models.Payment{Status: models.PaymentStatusPending, PendingAmount: 30}),
			subWithPayments(models.Payment{Status: models.PaymentStatusOverdue, PendingAmount: 50}),
		},
	}

	assert.Equal(t, CustomerStatusOverdue, DeriveStatus(c))
}

func TestDeriveStatus_Pending(t *testing.T) {
	c := models.Customer{
		Subscriptions: []models.Subscription{
			subWithPayments(
				models.Payment{Status: models.PaymentStatusPaid},
				models.Payment{Status: models.PaymentStatusPending, PendingAmount: 30},
			),
		},
	}

	assert.Equal(t, CustomerStatusPending, DeriveStatus(c))
}

func TestDeriveStatus_AllPaid(t *testing.T) {
	c := models.Customer{
		Subscriptions: []models.Subscription{
			subWithPayments(models.Payment{Status: models.PaymentStatusPaid}),
		},
	}

	assert.Equal(t, CustomerStatusActive, DeriveStatus(c))
}

func TestTotalDue_SumsServerPendingAmounts(t *testing.T) {
	// Клиент доверяет серверному pendingAmount и не пересчитывает его.
	c := models.Customer{
		Subscriptions: []models.Subscription{
			subWithPayments(
				models.Payment{Status: models.PaymentStatusOverdue, PendingAmount: 80},
				models.Payment{Status: models.PaymentStatusPaid, PendingAmount: 0},
			),
			subWithPayments(
				models.Payment{Status: models.PaymentStatusPartiallyPaid, PendingAmount: 12.5},
			),
		},
	}

	assert.InDelta(t, 92.5, TotalDue(c), 1e-9)
}
