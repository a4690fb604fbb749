package models

import (
	"time"
)

type Subscription struct {
	BaseModel
	CustomerID   string             `gorm:"not null;index" json:"customerId"`
	PackageID    string             `gorm:"not null;index" json:"packageId"`
	PaymentCycle PaymentCycle       `gorm:"not null" json:"paymentCycle"`
	Status       SubscriptionStatus `gorm:"default:'active'" json:"status"`
	Price        float64            `gorm:"not null" json:"price"` // цена зафиксирована на момент создания
	StartDate    time.Time          `gorm:"not null" json:"startDate"`
	NextDueDate  time.Time          `gorm:"not null" json:"nextDueDate"`

	// Relations
	Package  *Package  `gorm:"foreignKey:PackageID" json:"package,omitempty"`
	Payments []Payment `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}
