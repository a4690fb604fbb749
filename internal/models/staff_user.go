package models

// StaffUser — сотрудник реселлера, работающий с системой.
type StaffUser struct {
	BaseModel
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         StaffRole `gorm:"default:'operator'" json:"role"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
}
