package models

type PaymentCycle string
type SubscriptionStatus string
type PaymentStatus string
type StaffRole string

const (
	CycleMonthly     PaymentCycle = "monthly"
	CycleThreeMonths PaymentCycle = "three_months"
	CycleYearly      PaymentCycle = "yearly"

	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusSuspended SubscriptionStatus = "suspended"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"

	PaymentStatusPending       PaymentStatus = "pending"
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusOverdue       PaymentStatus = "overdue"
	PaymentStatusFailed        PaymentStatus = "failed"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"

	StaffRoleAdmin    StaffRole = "admin"
	StaffRoleOperator StaffRole = "operator"
)

// Months возвращает длину платежного цикла в месяцах.
// Неизвестный цикл трактуется как 0 (см. billing.PriceFor).
func (c PaymentCycle) Months() int {
	switch c {
	case CycleMonthly:
		return 1
	case CycleThreeMonths:
		return 3
	case CycleYearly:
		return 12
	default:
		return 0
	}
}

func (c PaymentCycle) Valid() bool {
	return c.Months() > 0
}
