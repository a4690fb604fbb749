package services

import (
	"testing"
	"time"

	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/models"
	"swiftconnect_backend/internal/repositories"
	"swiftconnect_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Фейковые репозитории ---

type fakeCustomerRepo struct {
	customers map[string]*models.Customer
}

func (f *fakeCustomerRepo) FindByID(id string) (*models.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, repositories.ErrCustomerNotFound
}
func (f *fakeCustomerRepo) FindAll() ([]models.Customer, error) { return nil, nil }

func (f *fakeCustomerRepo) Search(query string) ([]models.Customer, error) { return nil, nil }

func (f *fakeCustomerRepo) Create(c *models.Customer) error { return nil }

func (f *fakeCustomerRepo) Update(c *models.Customer) error { return nil }

func (f *fakeCustomerRepo) Delete(id string) error { return nil }

func (f *fakeCustomerRepo) CountAll() (int64, error) { return 0, nil }

type fakePackageRepo struct {
	packages map[string]*models.Package
}

func (f *fakePackageRepo) FindByID(id string) (*models.Package, error) {
	if p, ok := f.packages[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrPackageNotFound
}
func (f *fakePackageRepo) FindAll() ([]models.Package, error) { return nil, nil }

func (f *fakePackageRepo) Create(p *models.Package) error { return nil }

func (f *fakePackageRepo) Update(p *models.Package) error { return nil }

func (f *fakePackageRepo) Delete(id string) error { return nil }

func (f *fakePackageRepo) CountSubscriptions(id string) (int64, error) { return 0, nil }

type fakeSubscriptionRepo struct {
	subs    map[string]*models.Subscription
	created []*models.Subscription
}

func (f *fakeSubscriptionRepo) FindByID(id string) (*models.Subscription, error) {
	if s, ok := f.subs[id]; ok {
		return s, nil
	}
	return nil, repositories.ErrSubscriptionNotFound
}
func (f *fakeSubscriptionRepo) FindByCustomer(customerID string) ([]models.Subscription, error) {
	return nil, nil
}
func (f *fakeSubscriptionRepo) FindActive() ([]models.Subscription, error) { return nil, nil }
func (f *fakeSubscriptionRepo) Create(s *models.Subscription) error {
	s.ID = "sub-1"
	f.created = append(f.created, s)
	if f.subs == nil {
		f.subs = make(map[string]*models.Subscription)
	}
	f.subs[s.ID] = s
	return nil
}
func (f *fakeSubscriptionRepo) Update(s *models.Subscription) error {
	f.subs[s.ID] = s
	return nil
}
func (f *fakeSubscriptionRepo) Delete(id string) error {
	if _, ok := f.subs[id]; !ok {
		return repositories.ErrSubscriptionNotFound
	}
	delete(f.subs, id)
	return nil
}

type fakePaymentRepo struct {
	payments map[string]*models.Payment
	created  []*models.Payment
}

func (f *fakePaymentRepo) FindByID(id string) (*models.Payment, error) {
	if p, ok := f.payments[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrPaymentNotFound
}
func (f *fakePaymentRepo) FindBySubscription(id string) ([]models.Payment, error) { return nil, nil }
func (f *fakePaymentRepo) FindOpenPastDue(before time.Time) ([]models.Payment, error) {
	return nil, nil
}
func (f *fakePaymentRepo) HasOpenPayment(id string) (bool, error) { return false, nil }
func (f *fakePaymentRepo) Create(p *models.Payment) error {
	p.ID = "pay-1"
	f.created = append(f.created, p)
	if f.payments == nil {
		f.payments = make(map[string]*models.Payment)
	}
	f.payments[p.ID] = p
	return nil
}
func (f *fakePaymentRepo) Update(p *models.Payment) error {
	f.payments[p.ID] = p
	return nil
}

func fixtures() (*fakeSubscriptionRepo, *fakeCustomerRepo, *fakePackageRepo, *fakePaymentRepo) {
	customer := &models.Customer{FullName: "Ali Khan"}
	customer.ID = "cust-1"

	pkg := &models.Package{
		Name:             "Standard",
		MonthlyPrice:     10,
		ThreeMonthsPrice: 25,
		YearlyPrice:      100,
	}
	pkg.ID = "pkg-1"

	return &fakeSubscriptionRepo{subs: map[string]*models.Subscription{}},
		&fakeCustomerRepo{customers: map[string]*models.Customer{"cust-1": customer}},
		&fakePackageRepo{packages: map[string]*models.Package{"pkg-1": pkg}},
		&fakePaymentRepo{payments: map[string]*models.Payment{}}
}

func TestCreateSubscription_LocksPriceForCycle(t *testing.T) {
	subRepo, custRepo, pkgRepo, payRepo := fixtures()
	svc := NewSubscriptionService(subRepo, custRepo, pkgRepo, payRepo)

	sub, err := svc.CreateSubscription(&dto.CreateSubscriptionRequest{
		CustomerID:   "cust-1",
		PackageID:    "pkg-1",
		PaymentCycle: "three_months",
	})
	require.NoError(t, err)

	assert.InDelta(t, 25.0, sub.Price, 1e-9)
	assert.Equal(t, models.SubscriptionStatusActive, sub.Status)
	assert.Equal(t, models.CycleThreeMonths, sub.PaymentCycle)
}

func TestCreateSubscription_OpensFirstPendingPayment(t *testing.T) {
	subRepo, custRepo, pkgRepo, payRepo := fixtures()
	svc := NewSubscriptionService(subRepo, custRepo, pkgRepo, payRepo)

	sub, err := svc.CreateSubscription(&dto.CreateSubscriptionRequest{
		CustomerID:   "cust-1",
		PackageID:    "pkg-1",
		PaymentCycle: "monthly",
	})
	require.NoError(t, err)

	require.Len(t, payRepo.created, 1)
	payment := payRepo.created[0]
	assert.Equal(t, sub.ID, payment.SubscriptionID)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.InDelta(t, 10.0, payment.TotalAmount, 1e-9)
	assert.InDelta(t, 10.0, payment.PendingAmount, 1e-9)
	assert.Equal(t, sub.NextDueDate, payment.DueDate)
}

func TestCreateSubscription_NextDueDateMatchesCycle(t *testing.T) {
	subRepo, custRepo, pkgRepo, payRepo := fixtures()
	svc := NewSubscriptionService(subRepo, custRepo, pkgRepo, payRepo)

	sub, err := svc.CreateSubscription(&dto.CreateSubscriptionRequest{
		CustomerID:   "cust-1",
		PackageID:    "pkg-1",
		PaymentCycle: "yearly",
	})
	require.NoError(t, err)

	expected := sub.StartDate.AddDate(0, 12, 0)
	assert.Equal(t, expected, sub.NextDueDate)
}

func TestCreateSubscription_UnknownCycleRejected(t *testing.T) {
	subRepo, custRepo, pkgRepo, payRepo := fixtures()
	svc := NewSubscriptionService(subRepo, custRepo, pkgRepo, payRepo)

	_, err := svc.CreateSubscription(&dto.CreateSubscriptionRequest{
		CustomerID:   "cust-1",
		PackageID:    "pkg-1",
		PaymentCycle: "weekly",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnknownPaymentCycle)
}

func TestCreateSubscription_MissingCustomerIs404(t *testing.T) {
	subRepo, custRepo, pkgRepo, payRepo := fixtures()
	svc := NewSubscriptionService(subRepo, custRepo, pkgRepo, payRepo)

	_, err := svc.CreateSubscription(&dto.CreateSubscriptionRequest{
		CustomerID:   "ghost",
		PackageID:    "pkg-1",
		PaymentCycle: "monthly",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestUpdateSubscription_CycleChangeReprices(t *testing.T) {
	subRepo, custRepo, pkgRepo, payRepo := fixtures()
	svc := NewSubscriptionService(subRepo, custRepo, pkgRepo, payRepo)

	sub, err := svc.CreateSubscription(&dto.CreateSubscriptionRequest{
		CustomerID:   "cust-1",
		PackageID:    "pkg-1",
		PaymentCycle: "monthly",
	})
	require.NoError(t, err)
	require.InDelta(t, 10.0, sub.Price, 1e-9)

	cycle := "yearly"
	updated, err := svc.UpdateSubscription(sub.ID, &dto.UpdateSubscriptionRequest{PaymentCycle: &cycle})
	require.NoError(t, err)

	assert.Equal(t, models.CycleYearly, updated.PaymentCycle)
	assert.InDelta(t, 100.0, updated.Price, 1e-9)
}

func TestUpdateSubscription_InvalidStatusRejected(t *testing.T) {
	subRepo, custRepo, pkgRepo, payRepo := fixtures()
	svc := NewSubscriptionService(subRepo, custRepo, pkgRepo, payRepo)

	sub, err := svc.CreateSubscription(&dto.CreateSubscriptionRequest{
		CustomerID:   "cust-1",
		PackageID:    "pkg-1",
		PaymentCycle: "monthly",
	})
	require.NoError(t, err)

	status := "frozen"
	_, err = svc.UpdateSubscription(sub.ID, &dto.UpdateSubscriptionRequest{Status: &status})
	require.Error(t, err)
}

func TestDeleteSubscription_NotFound(t *testing.T) {
	subRepo, custRepo, pkgRepo, payRepo := fixtures()
	svc := NewSubscriptionService(subRepo, custRepo, pkgRepo, payRepo)

	err := svc.DeleteSubscription("ghost")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
