package dto

// RecordPaymentRequest — тело PATCH /payments/:paymentId/pay.
// Сумма может быть частичной; сервер сам пересчитает остаток.
type RecordPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
