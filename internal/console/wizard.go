// Package console - экранная логика терминального фронтенда оператора.
// Состояние экранов отделено от ввода/вывода, чтобы его можно было тестировать.
package console

import (
	"context"
	"errors"

	"swiftconnect_backend/internal/billing"
	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/models"
)

// WizardStep - шаг мастера оформления подписки
type WizardStep int

const (
	StepCustomerInfo WizardStep = iota + 1
	StepPackageSelection
	StepPaymentPlan
	StepSummary
)

var (
	ErrNoPackagesSelected = errors.New("at least one package must be selected")
	ErrCustomerNotSaved   = errors.New("customer must be saved before proceeding")
	ErrWrongStep          = errors.New("operation not allowed on this step")
)

// WizardAPI - часть клиента API, нужная мастеру
type WizardAPI interface {
	CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	ListPackages(ctx context.Context) ([]models.Package, error)
	CreateSubscription(ctx context.Context, req *dto.CreateSubscriptionRequest) (*models.Subscription, error)
}

// PackageFailure - пакет, для которого не удалось оформить подписку
type PackageFailure struct {
	Package models.Package
	Err     error
}

// ConfirmResult - итог подтверждения мастера. Частичный успех возможен:
// уже созданные подписки не откатываются, ошибки показываются оператору.
type ConfirmResult struct {
	Customer      *dto.CustomerResponse
	Subscriptions []models.Subscription
	Failures      []PackageFailure
}

// Wizard - линейный мастер из четырех шагов. Клиент сохраняется сразу на
// первом шаге; дальнейшие шаги работают с уже существующей записью.
type Wizard struct {
	api WizardAPI

	step     WizardStep
	customer *dto.CustomerResponse
	catalog  []models.Package
	selected map[string]models.Package
	cycle    models.PaymentCycle
}

func NewWizard(api WizardAPI) *Wizard {
	return &Wizard{
		api:      api,
		step:     StepCustomerInfo,
		selected: make(map[string]models.Package),
		cycle:    models.CycleMonthly,
	}
}

func (w *Wizard) Step() WizardStep { return w.step }

func (w *Wizard) Customer() *dto.CustomerResponse { return w.customer }

// Reset возвращает мастер к первому шагу и очищает состояние.
// Вызывается при переключении вкладки.
func (w *Wizard) Reset() {
	w.step = StepCustomerInfo
	w.customer = nil
	w.catalog = nil
	w.selected = make(map[string]models.Package)
	w.cycle = models.CycleMonthly
}

// SubmitCustomer сохраняет анкету клиента и переводит мастер на выбор пакетов
func (w *Wizard) SubmitCustomer(ctx context.Context, req *dto.CreateCustomerRequest) error {
	if w.step != StepCustomerInfo {
		return ErrWrongStep
	}

	customer, err := w.api.CreateCustomer(ctx, req)
	if err != nil {
		return err
	}

	w.customer = customer
	w.step = StepPackageSelection
	return nil
}

// LoadCatalog подтягивает каталог пакетов для шага выбора
func (w *Wizard) LoadCatalog(ctx context.Context) ([]models.Package, error) {
	packages, err := w.api.ListPackages(ctx)
	if err != nil {
		return nil, err
	}
	w.catalog = packages
	return packages, nil
}

func (w *Wizard) Catalog() []models.Package { return w.catalog }

// TogglePackage добавляет или убирает пакет из корзины
func (w *Wizard) TogglePackage(pkg models.Package) {
	if _, ok := w.selected[pkg.ID]; ok {
		delete(w.selected, pkg.ID)
		return
	}
	w.selected[pkg.ID] = pkg
}

func (w *Wizard) IsSelected(packageID string) bool {
	_, ok := w.selected[packageID]
	return ok
}

// SelectedPackages возвращает корзину в порядке каталога
func (w *Wizard) SelectedPackages() []models.Package {
	packages := make([]models.Package, 0, len(w.selected))
	for _, pkg := range w.catalog {
		if _, ok := w.selected[pkg.ID]; ok {
			packages = append(packages, pkg)
		}
	}
	// Пакеты, выбранные до перезагрузки каталога
	if len(packages) < len(w.selected) {
		seen := make(map[string]bool, len(packages))
		for _, pkg := range packages {
			seen[pkg.ID] = true
		}
		for _, pkg := range w.selected {
			if !seen[pkg.ID] {
				packages = append(packages, pkg)
			}
		}
	}
	return packages
}

// NextFromPackages требует хотя бы один пакет в корзине
func (w *Wizard) NextFromPackages() error {
	if w.step != StepPackageSelection {
		return ErrWrongStep
	}
	if len(w.selected) == 0 {
		return ErrNoPackagesSelected
	}
	w.step = StepPaymentPlan
	return nil
}

// SetCycle выбирает платежный цикл на шаге плана оплаты
func (w *Wizard) SetCycle(cycle models.PaymentCycle) error {
	if !cycle.Valid() {
		return errors.New("unknown payment cycle")
	}
	w.cycle = cycle
	return nil
}

func (w *Wizard) Cycle() models.PaymentCycle { return w.cycle }

// Totals считает итог корзины и экономию для текущего цикла
func (w *Wizard) Totals() dto.CartSummary {
	packages := w.SelectedPackages()
	return dto.CartSummary{
		PaymentCycle: string(w.cycle),
		Total:        billing.Total(packages, w.cycle),
		Savings:      billing.Savings(packages, w.cycle),
	}
}

// NextFromPlan переводит мастер на итоговый шаг
func (w *Wizard) NextFromPlan() error {
	if w.step != StepPaymentPlan {
		return ErrWrongStep
	}
	w.step = StepSummary
	return nil
}

// Back возвращает на предыдущий шаг; с первого шага вернуться нельзя
func (w *Wizard) Back() {
	if w.step > StepCustomerInfo {
		w.step--
	}
}

// Confirm последовательно оформляет подписку на каждый выбранный пакет.
// Созданные подписки не откатываются при частичной неудаче: оператор видит,
// какие пакеты не прошли, и может повторить только их.
func (w *Wizard) Confirm(ctx context.Context) (*ConfirmResult, error) {
	if w.step != StepSummary {
		return nil, ErrWrongStep
	}
	if w.customer == nil {
		return nil, ErrCustomerNotSaved
	}
	if len(w.selected) == 0 {
		return nil, ErrNoPackagesSelected
	}

	result := &ConfirmResult{Customer: w.customer}

	for _, pkg := range w.SelectedPackages() {
		sub, err := w.api.CreateSubscription(ctx, &dto.CreateSubscriptionRequest{
			CustomerID:   w.customer.ID,
			PackageID:    pkg.ID,
			PaymentCycle: string(w.cycle),
		})
		if err != nil {
			result.Failures = append(result.Failures, PackageFailure{Package: pkg, Err: err})
			continue
		}
		result.Subscriptions = append(result.Subscriptions, *sub)
	}

	return result, nil
}
