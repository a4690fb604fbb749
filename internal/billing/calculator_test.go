package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"swiftconnect_backend/internal/models"
)

func pkgWithPrices(monthly, threeMonths, yearly float64) models.Package {
	return models.Package{
		Name:             "Test Package",
		Speed:            "20 Mbps",
		MonthlyPrice:     monthly,
		ThreeMonthsPrice: threeMonths,
		YearlyPrice:      yearly,
	}
}

func TestPriceFor_CycleMapping(t *testing.T) {
	pkg := pkgWithPrices(10, 25, 100)

	assert.Equal(t, 10.0, PriceFor(pkg, models.CycleMonthly))
	assert.Equal(t, 25.0, PriceFor(pkg, models.CycleThreeMonths))
	assert.Equal(t, 100.0, PriceFor(pkg, models.CycleYearly))
	assert.Equal(t, 0.0, PriceFor(pkg, models.PaymentCycle("weekly")), "неизвестный цикл должен давать 0")
}

func TestTotal_MonthlyIsSumOfMonthlyPrices(t *testing.T) {
	pkgs := []models.Package{
		pkgWithPrices(10, 25, 100),
		pkgWithPrices(15.5, 40, 150),
		pkgWithPrices(7.25, 20, 80),
	}

	assert.InDelta(t, 32.75, Total(pkgs, models.CycleMonthly), 1e-9)
}

func TestTotal_EmptySet(t *testing.T) {
	assert.Equal(t, 0.0, Total(nil, models.CycleYearly))
}

func TestSavings_MonthlyAlwaysZero(t *testing.T) {
	pkgs := []models.Package{
		pkgWithPrices(10, 25, 100),
		pkgWithPrices(99, 5, 5),
	}

	assert.Equal(t, 0.0, Savings(pkgs, models.CycleMonthly))
}

func TestSavings_NeverNegative(t *testing.T) {
	// Трехмесячная цена дороже трех месячных — экономия не должна уходить в минус.
	pkgs := []models.Package{pkgWithPrices(10, 35, 200)}

	assert.Equal(t, 0.0, Savings(pkgs, models.CycleThreeMonths))
	assert.Equal(t, 0.0, Savings(pkgs, models.CycleYearly))
}

func TestSavings_ThreeMonthsExample(t *testing.T) {
	// Пакет A: monthly=10, threeMonths=25 -> total 25.00, экономия 10*3-25 = 5.00
	pkgs := []models.Package{pkgWithPrices(10, 25, 100)}

	assert.InDelta(t, 25.0, Total(pkgs, models.CycleThreeMonths), 1e-9)
	assert.InDelta(t, 5.0, Savings(pkgs, models.CycleThreeMonths), 1e-9)
}

func TestSavings_Yearly(t *testing.T) {
	pkgs := []models.Package{
		pkgWithPrices(10, 25, 100),
		pkgWithPrices(20, 55, 220),
	}

	// (10+20)*12 - (100+220) = 360 - 320 = 40
	assert.InDelta(t, 40.0, Savings(pkgs, models.CycleYearly), 1e-9)
}
