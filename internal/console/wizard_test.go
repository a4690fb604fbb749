package console

import (
	"context"
	"errors"
	"testing"

	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWizardAPI struct {
	packages       []models.Package
	createCalls    []dto.CreateSubscriptionRequest
	failPackageIDs map[string]bool
	customerErr    error
}

func (f *fakeWizardAPI) CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if f.customerErr != nil {
		return nil, f.customerErr
	}
	resp := &dto.CustomerResponse{}
	resp.ID = "cust-1"
	resp.FullName = req.FullName
	resp.Email = req.Email
	return resp, nil
}

func (f *fakeWizardAPI) ListPackages(ctx context.Context) ([]models.Package, error) {
	return f.packages, nil
}

func (f *fakeWizardAPI) CreateSubscription(ctx context.Context, req *dto.CreateSubscriptionRequest) (*models.Subscription, error) {
	f.createCalls = append(f.createCalls, *req)
	if f.failPackageIDs[req.PackageID] {
		return nil, errors.New("boom")
	}
	sub := &models.Subscription{
		CustomerID:   req.CustomerID,
		PackageID:    req.PackageID,
		PaymentCycle: models.PaymentCycle(req.PaymentCycle),
	}
	sub.ID = "sub-" + req.PackageID
	return sub, nil
}

func testPackage(id, name string) models.Package {
	pkg := models.Package{Name: name, Speed: "10 Mbps"}
	pkg.ID = id
	return pkg
}

func advanceToSummary(t *testing.T, w *Wizard, api *fakeWizardAPI, cycle models.PaymentCycle, select_ ...string) {
	t.Helper()

	require.NoError(t, w.SubmitCustomer(context.Background(), &dto.CreateCustomerRequest{FullName: "Ali"}))

	_, err := w.LoadCatalog(context.Background())
	require.NoError(t, err)

	for _, id := range select_ {
		pkg, ok := findPackage(api.packages, id)
		require.True(t, ok)
		w.TogglePackage(pkg)
	}

	require.NoError(t, w.NextFromPackages())
	require.NoError(t, w.SetCycle(cycle))
	require.NoError(t, w.NextFromPlan())
}

func findPackage(packages []models.Package, id string) (models.Package, bool) {
	for _, pkg := range packages {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return models.Package{}, false
}

func TestWizard_StartsAtCustomerStep(t *testing.T) {
	w := NewWizard(&fakeWizardAPI{})
	assert.Equal(t, StepCustomerInfo, w.Step())
	assert.Nil(t, w.Customer())
}

func TestWizard_SubmitCustomerPersistsImmediately(t *testing.T) {
	api := &fakeWizardAPI{}
	w := NewWizard(api)

	err := w.SubmitCustomer(context.Background(), &dto.CreateCustomerRequest{FullName: "Ali", Email: "ali@example.com"})
	require.NoError(t, err)

	assert.Equal(t, StepPackageSelection, w.Step())
	require.NotNil(t, w.Customer())
	assert.Equal(t, "cust-1", w.Customer().ID)
}

func TestWizard_SubmitCustomerErrorKeepsStep(t *testing.T) {
	api := &fakeWizardAPI{customerErr: errors.New("validation failed")}
	w := NewWizard(api)

	err := w.SubmitCustomer(context.Background(), &dto.CreateCustomerRequest{})
	require.Error(t, err)
	assert.Equal(t, StepCustomerInfo, w.Step())
}

func TestWizard_NextFromPackagesRequiresSelection(t *testing.T) {
	api := &fakeWizardAPI{packages: []models.Package{testPackage("p1", "Basic")}}
	w := NewWizard(api)

	require.NoError(t, w.SubmitCustomer(context.Background(), &dto.CreateCustomerRequest{FullName: "Ali"}))

	err := w.NextFromPackages()
	assert.ErrorIs(t, err, ErrNoPackagesSelected)

	_, err = w.LoadCatalog(context.Background())
	require.NoError(t, err)
	w.TogglePackage(api.packages[0])
	assert.NoError(t, w.NextFromPackages())
}

func TestWizard_ToggleTwiceDeselects(t *testing.T) {
	api := &fakeWizardAPI{packages: []models.Package{testPackage("p1", "Basic")}}
	w := NewWizard(api)

	w.TogglePackage(api.packages[0])
	assert.True(t, w.IsSelected("p1"))
	w.TogglePackage(api.packages[0])
	assert.False(t, w.IsSelected("p1"))
}

func TestWizard_ConfirmCreatesOneSubscriptionPerPackage(t *testing.T) {
	api := &fakeWizardAPI{packages: []models.Package{
		testPackage("p1", "Basic"),
		testPackage("p2", "Premium"),
	}}
	w := NewWizard(api)

	advanceToSummary(t, w, api, models.CycleYearly, "p1", "p2")

	result, err := w.Confirm(context.Background())
	require.NoError(t, err)

	// Ровно один запрос на пакет
	require.Len(t, api.createCalls, 2)
	assert.Len(t, result.Subscriptions, 2)
	assert.Empty(t, result.Failures)
	for _, call := range api.createCalls {
		assert.Equal(t, "cust-1", call.CustomerID)
		assert.Equal(t, "yearly", call.PaymentCycle)
	}
}

func TestWizard_ConfirmPartialFailureIsSurfaced(t *testing.T) {
	api := &fakeWizardAPI{
		packages: []models.Package{
			testPackage("p1", "Basic"),
			testPackage("p2", "Premium"),
		},
		failPackageIDs: map[string]bool{"p2": true},
	}
	w := NewWizard(api)

	advanceToSummary(t, w, api, models.CycleMonthly, "p1", "p2")

	result, err := w.Confirm(context.Background())
	require.NoError(t, err)

	// Успешная подписка не откатывается, неудача видна оператору
	assert.Len(t, result.Subscriptions, 1)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "p2", result.Failures[0].Package.ID)
}

func TestWizard_ConfirmOnlyOnSummaryStep(t *testing.T) {
	w := NewWizard(&fakeWizardAPI{})
	_, err := w.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestWizard_ResetClearsEverything(t *testing.T) {
	api := &fakeWizardAPI{packages: []models.Package{testPackage("p1", "Basic")}}
	w := NewWizard(api)

	advanceToSummary(t, w, api, models.CycleThreeMonths, "p1")
	w.Reset()

	assert.Equal(t, StepCustomerInfo, w.Step())
	assert.Nil(t, w.Customer())
	assert.Empty(t, w.SelectedPackages())
	assert.Equal(t, models.CycleMonthly, w.Cycle())
}

func TestWizard_TotalsUseSelectedCycle(t *testing.T) {
	basic := testPackage("p1", "Basic")
	basic.MonthlyPrice = 10
	basic.ThreeMonthsPrice = 25

	api := &fakeWizardAPI{packages: []models.Package{basic}}
	w := NewWizard(api)

	require.NoError(t, w.SubmitCustomer(context.Background(), &dto.CreateCustomerRequest{FullName: "Ali"}))
	_, err := w.LoadCatalog(context.Background())
	require.NoError(t, err)
	w.TogglePackage(basic)
	require.NoError(t, w.NextFromPackages())
	require.NoError(t, w.SetCycle(models.CycleThreeMonths))

	totals := w.Totals()
	assert.Equal(t, "three_months", totals.PaymentCycle)
	assert.InDelta(t, 25.0, totals.Total, 1e-9)
	assert.InDelta(t, 5.0, totals.Savings, 1e-9)
}

func TestWizard_BackDoesNotLeaveFirstStep(t *testing.T) {
	w := NewWizard(&fakeWizardAPI{})
	w.Back()
	assert.Equal(t, StepCustomerInfo, w.Step())
}
