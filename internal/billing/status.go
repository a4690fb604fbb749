package billing

import (
	"swiftconnect_backend/internal/models"
)

type CustomerStatus string

const (
	CustomerStatusNoSubscription CustomerStatus = "No Subscription"
	CustomerStatusOverdue        CustomerStatus = "Overdue"
	CustomerStatusPending        CustomerStatus = "Pending"
	CustomerStatusActive         CustomerStatus = "Active"
)

// DeriveStatus сводит вложенные подписки и платежи клиента к одному статусу.
// Приоритет: overdue > pending > active. Без подписок — "No Subscription".
func DeriveStatus(c models.Customer) CustomerStatus {
	if len(c.Subscriptions) == 0 {
		return CustomerStatusNoSubscription
	}

	hasPending := false
	for _, sub := range c.Subscriptions {
		for _, p := range sub.Payments {
			if p.Status == models.PaymentStatusOverdue {
				return CustomerStatusOverdue
			}
			if p.Status == models.PaymentStatusPending {
				hasPending = true
			}
		}
	}

	if hasPending {
		return CustomerStatusPending
	}
	return CustomerStatusActive
}

// TotalDue — сумма к оплате по всем не полностью оплаченным платежам клиента.
// Берется серверное значение pendingAmount как есть, без пересчета.
func TotalDue(c models.Customer) float64 {
	var sum float64
	for _, sub := range c.Subscriptions {
		for _, p := range sub.Payments {
			if p.Status != models.PaymentStatusPaid {
				sum += p.PendingAmount
			}
		}
	}
	return sum
}
