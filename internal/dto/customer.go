package dto

// CreateCustomerRequest — анкета клиента, шаг 1 мастера подписки.
// Неизвестные поля в теле запроса отклоняются (strict decoder, см. app.go).
type CreateCustomerRequest struct {
	FullName     string `json:"fullName" validate:"required"`
	CnicPassport string `json:"cnicPassport" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"required"`
	Email        string `json:"email" validate:"required,simple-email"`
	Address      string `json:"address" validate:"required"`
	HomeAddress  string `json:"homeAddress" validate:"required"`
	IsActive     *bool  `json:"isActive"`
}
