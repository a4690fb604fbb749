package billing

import (
	"swiftconnect_backend/internal/models"
)

// Чистые функции расчета стоимости подписок.
// Вся арифметика работает на уже загруженных данных и не ходит в БД.

// PriceFor возвращает цену пакета для выбранного платежного цикла.
// Неизвестный цикл дает 0.
func PriceFor(pkg models.Package, cycle models.PaymentCycle) float64 {
	switch cycle {
	case models.CycleMonthly:
		return pkg.MonthlyPrice
	case models.CycleThreeMonths:
		return pkg.ThreeMonthsPrice
	case models.CycleYearly:
		return pkg.YearlyPrice
	default:
		return 0
	}
}

// Total суммирует цены набора пакетов для цикла.
func Total(pkgs []models.Package, cycle models.PaymentCycle) float64 {
	var sum float64
	for _, pkg := range pkgs {
		sum += PriceFor(pkg, cycle)
	}
	return sum
}

// Savings — экономия против помесячной оплаты за тот же срок.
// Никогда не возвращает отрицательное значение.
func Savings(pkgs []models.Package, cycle models.PaymentCycle) float64 {
	months := cycle.Months()
	if months <= 1 {
		return 0
	}
	savings := Total(pkgs, models.CycleMonthly)*float64(months) - Total(pkgs, cycle)
	if savings < 0 {
		return 0
	}
	return savings
}
