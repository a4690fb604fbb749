package models

type Customer struct {
	BaseModel
	FullName     string `gorm:"not null" json:"fullName"`
	CnicPassport string `gorm:"not null" json:"cnicPassport"`
	MobileNumber string `gorm:"not null;index" json:"mobileNumber"`
	Email        string `gorm:"not null;index" json:"email"`
	Address      string `gorm:"not null" json:"address"`
	HomeAddress  string `gorm:"not null" json:"homeAddress"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`

	// Relations
	Subscriptions []Subscription `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"subscriptions,omitempty"`
}
