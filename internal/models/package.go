package models

import (
	"gorm.io/datatypes"
)

type Package struct {
	BaseModel
	Name             string         `gorm:"not null" json:"name"`
	Speed            string         `gorm:"not null" json:"speed"`
	MonthlyPrice     float64        `gorm:"not null" json:"monthlyPrice"`
	ThreeMonthsPrice float64        `gorm:"not null" json:"threeMonthsPrice"`
	YearlyPrice      float64        `gorm:"not null" json:"yearlyPrice"`
	Features         datatypes.JSON `json:"features"` // ["24/7 support", ...], порядок важен для отображения
	IsPopular        bool           `gorm:"default:false" json:"isPopular"`
}
