package dto

type CreatePackageRequest struct {
	Name             string   `json:"name" validate:"required"`
	Speed            string   `json:"speed" validate:"required"`
	MonthlyPrice     float64  `json:"monthlyPrice" validate:"gte=0"`
	ThreeMonthsPrice float64  `json:"threeMonthsPrice" validate:"gte=0"`
	YearlyPrice      float64  `json:"yearlyPrice" validate:"gte=0"`
	Features         []string `json:"features"`
	IsPopular        bool     `json:"isPopular"`
}

// UpdatePackageRequest — частичное обновление: только переданные поля.
type UpdatePackageRequest struct {
	Name             *string   `json:"name,omitempty"`
	Speed            *string   `json:"speed,omitempty"`
	MonthlyPrice     *float64  `json:"monthlyPrice,omitempty" validate:"omitempty,gte=0"`
	ThreeMonthsPrice *float64  `json:"threeMonthsPrice,omitempty" validate:"omitempty,gte=0"`
	YearlyPrice      *float64  `json:"yearlyPrice,omitempty" validate:"omitempty,gte=0"`
	Features         *[]string `json:"features,omitempty"`
	IsPopular        *bool     `json:"isPopular,omitempty"`
}
