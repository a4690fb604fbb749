package apperrors

import (
	"net/http"
)

// Фабрики и предопределенные ошибки доменов биллинга.

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error, domain string) *AppError {
	return Wrap(err, CodeNotFound, domain, domain+" not found", http.StatusNotFound)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInvalidCredentials - неверная пара email/пароль при входе сотрудника.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrPaymentAlreadyPaid - попытка провести оплату по закрытому платежу.
var ErrPaymentAlreadyPaid = New(
	CodeInvalidOperation,
	"payment",
	"Payment is already fully paid",
	http.StatusBadRequest,
)

// ErrUnknownPaymentCycle - цикл вне списка monthly/three_months/yearly.
var ErrUnknownPaymentCycle = New(
	CodeInvalidOperation,
	"subscription",
	"Unknown payment cycle",
	http.StatusBadRequest,
)
