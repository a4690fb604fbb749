package services

import (
	"swiftconnect_backend/internal/email"
	"swiftconnect_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	CustomerService     CustomerService
	PackageService      PackageService
	SubscriptionService SubscriptionService
	PaymentService      PaymentService
	EmailService        email.Provider
}

// NewServiceContainer собирает репозитории и сервисы поверх общего пула БД.
func NewServiceContainer(db *gorm.DB, emailProvider email.Provider) *ServiceContainer {
	customerRepo := repositories.NewCustomerRepository(db)
	packageRepo := repositories.NewPackageRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	staffRepo := repositories.NewStaffUserRepository(db)

	return &ServiceContainer{
		AuthService:         NewAuthService(staffRepo),
		CustomerService:     NewCustomerService(customerRepo),
		PackageService:      NewPackageService(packageRepo),
		SubscriptionService: NewSubscriptionService(subscriptionRepo, customerRepo, packageRepo, paymentRepo),
		PaymentService:      NewPaymentService(paymentRepo, subscriptionRepo, customerRepo, emailProvider),
		EmailService:        emailProvider,
	}
}
