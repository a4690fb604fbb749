package dto

type CreateSubscriptionRequest struct {
	CustomerID   string `json:"customerId" validate:"required"`
	PackageID    string `json:"packageId" validate:"required"`
	PaymentCycle string `json:"paymentCycle" validate:"required,is-payment-cycle"`
}

// UpdateSubscriptionRequest — частичное обновление. Смена пакета или цикла
// перефиксирует цену подписки по текущему прайсу пакета.
type UpdateSubscriptionRequest struct {
	PackageID    *string `json:"packageId,omitempty"`
	PaymentCycle *string `json:"paymentCycle,omitempty" validate:"omitempty,is-payment-cycle"`
	Status       *string `json:"status,omitempty" validate:"omitempty,is-subscription-status"`
}
