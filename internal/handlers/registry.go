package handlers

import "swiftconnect_backend/internal/services"

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	CustomerHandler     *CustomerHandler
	PackageHandler      *PackageHandler
	SubscriptionHandler *SubscriptionHandler
	PaymentHandler      *PaymentHandler
	HealthHandler       *HealthHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов.
func NewAppHandlers(base *BaseHandler, sc *services.ServiceContainer) *AppHandlers {
	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, sc.AuthService),
		CustomerHandler:     NewCustomerHandler(base, sc.CustomerService),
		PackageHandler:      NewPackageHandler(base, sc.PackageService),
		SubscriptionHandler: NewSubscriptionHandler(base, sc.SubscriptionService),
		PaymentHandler:      NewPaymentHandler(base, sc.PaymentService),
		HealthHandler:       NewHealthHandler(base),
	}
}
