package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"

	"swiftconnect_backend/internal/models"
)

// Простой паттерн local@domain.tld — тот же, что проверяет форма клиента.
var simpleEmailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// registerCustomRules регистрирует все кастомные функции валидации.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Без правил валидации приложение запускать нельзя.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("simple-email", validateSimpleEmail)
	mustRegister("is-payment-cycle", validatePaymentCycle)
	mustRegister("is-subscription-status", validateSubscriptionStatus)
	mustRegister("is-payment-status", validatePaymentStatus)
}

// --- Функции валидации ---

func validateSimpleEmail(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}
	return simpleEmailRe.MatchString(value)
}

func validatePaymentCycle(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.PaymentCycle(value).Valid()
}

func validateSubscriptionStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.SubscriptionStatus(value) {
	case models.SubscriptionStatusActive, models.SubscriptionStatusSuspended, models.SubscriptionStatusCancelled:
		return true
	default:
		return false
	}
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.PaymentStatus(value) {
	case models.PaymentStatusPending, models.PaymentStatusPaid, models.PaymentStatusOverdue,
		models.PaymentStatusFailed, models.PaymentStatusPartiallyPaid:
		return true
	default:
		return false
	}
}
