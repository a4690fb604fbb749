package billing

import (
	"time"

	"swiftconnect_backend/internal/models"
)

// NextDueDate сдвигает дату на длину платежного цикла.
func NextDueDate(from time.Time, cycle models.PaymentCycle) time.Time {
	return from.AddDate(0, cycle.Months(), 0)
}

// Pending пересчитывает остаток по платежу: total + penalty - paid, не ниже нуля.
func Pending(p models.Payment) float64 {
	pending := p.TotalAmount + p.PenaltyAmount - p.PaidAmount
	if pending < 0 {
		return 0
	}
	return pending
}

// Apply применяет (возможно частичную) оплату к платежу и обновляет статус.
// Переплата сверх остатка обрезается нулевым pending, paidAmount при этом
// отражает фактически внесенную сумму.
func Apply(p *models.Payment, amount float64, now time.Time) {
	p.PaidAmount += amount
	p.PendingAmount = Pending(*p)

	if p.PendingAmount == 0 {
		p.Status = models.PaymentStatusPaid
		p.PaidAt = &now
		return
	}
	// Частичная оплата просроченного платежа не снимает просрочку.
	if p.Status != models.PaymentStatusOverdue {
		p.Status = models.PaymentStatusPartiallyPaid
	}
}

// AccruePenalty добавляет штраф к платежу и пересчитывает остаток.
func AccruePenalty(p *models.Payment, penalty float64) {
	p.PenaltyAmount += penalty
	p.PendingAmount = Pending(*p)
}
