package models

import (
	"time"
)

// Payment — один расчетный период подписки.
// Инвариант (поддерживается сервисом): PendingAmount = TotalAmount + PenaltyAmount - PaidAmount, не ниже 0.
type Payment struct {
	BaseModel
	SubscriptionID string        `gorm:"not null;index" json:"subscriptionId"`
	TotalAmount    float64       `gorm:"not null" json:"totalAmount"`
	PaidAmount     float64       `gorm:"default:0" json:"paidAmount"`
	PendingAmount  float64       `gorm:"not null" json:"pendingAmount"`
	PenaltyAmount  float64       `gorm:"default:0" json:"penaltyAmount"`
	Status         PaymentStatus `gorm:"default:'pending'" json:"status"`
	DueDate        time.Time     `gorm:"not null;index" json:"dueDate"`
	PaidAt         *time.Time    `json:"paidAt"`
	TransactionID  *string       `json:"transactionId"`
}
