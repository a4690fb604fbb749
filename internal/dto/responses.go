package dto

import "swiftconnect_backend/internal/models"

// CustomerResponse - клиент с производными биллинговыми полями.
// status и totalDue считаются сервером и являются источником истины для UI.
type CustomerResponse struct {
	models.Customer
	Status   string  `json:"status"`
	TotalDue float64 `json:"totalDue"`
}

// CartSummary - итоги корзины мастера подписки для выбранного цикла
type CartSummary struct {
	PaymentCycle string  `json:"paymentCycle"`
	Total        float64 `json:"total"`
	Savings      float64 `json:"savings"`
}

// MessageResponse - простой ответ с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}
