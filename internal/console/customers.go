package console

import (
	"context"
	"strings"

	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/models"
)

// CustomerAPI - часть клиента API для экрана управления клиентами
type CustomerAPI interface {
	ListCustomers(ctx context.Context, search string) ([]dto.CustomerResponse, error)
	GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, id string) error
	DeleteSubscription(ctx context.Context, id string) error
	RecordPayment(ctx context.Context, id string, amount float64) (*models.Payment, error)
}

// CustomerScreen - состояние экрана клиентов: список, локальный фильтр и
// открытая карточка. После каждой мутации список перечитывается целиком,
// а открытая карточка повторно выбирается по ID.
type CustomerScreen struct {
	api CustomerAPI

	customers []dto.CustomerResponse
	filter    string
	selected  *dto.CustomerResponse
}

func NewCustomerScreen(api CustomerAPI) *CustomerScreen {
	return &CustomerScreen{api: api}
}

// Load перечитывает список клиентов с сервера
func (s *CustomerScreen) Load(ctx context.Context) error {
	customers, err := s.api.ListCustomers(ctx, "")
	if err != nil {
		return err
	}
	s.customers = customers

	// Переоткрываем карточку, если клиент еще существует
	if s.selected != nil {
		s.reselect(s.selected.ID)
	}
	return nil
}

// SetFilter задает локальную поисковую строку
func (s *CustomerScreen) SetFilter(query string) {
	s.filter = query
}

// Visible возвращает клиентов, попадающих под фильтр.
// Поиск по имени, email и телефону без учета регистра.
func (s *CustomerScreen) Visible() []dto.CustomerResponse {
	if s.filter == "" {
		return s.customers
	}

	query := strings.ToLower(s.filter)
	var visible []dto.CustomerResponse
	for _, c := range s.customers {
		if strings.Contains(strings.ToLower(c.FullName), query) ||
			strings.Contains(strings.ToLower(c.Email), query) ||
			strings.Contains(strings.ToLower(c.MobileNumber), query) {
			visible = append(visible, c)
		}
	}
	return visible
}

// Select открывает карточку клиента
func (s *CustomerScreen) Select(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := s.api.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	s.selected = customer
	return customer, nil
}

func (s *CustomerScreen) Selected() *dto.CustomerResponse { return s.selected }

// Deselect закрывает карточку
func (s *CustomerScreen) Deselect() { s.selected = nil }

// Delete удаляет клиента и перечитывает список
func (s *CustomerScreen) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
	return s.Load(ctx)
}

// DeleteSubscription удаляет подписку из открытой карточки
func (s *CustomerScreen) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	if err := s.api.DeleteSubscription(ctx, subscriptionID); err != nil {
		return err
	}
	return s.Load(ctx)
}

// RecordPayment проводит оплату и обновляет список с карточкой
func (s *CustomerScreen) RecordPayment(ctx context.Context, paymentID string, amount float64) (*models.Payment, error) {
	payment, err := s.api.RecordPayment(ctx, paymentID, amount)
	if err != nil {
		return nil, err
	}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return payment, nil
}

// reselect подменяет открытую карточку свежей записью из списка
func (s *CustomerScreen) reselect(id string) {
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.selected = &s.customers[i]
			return
		}
	}
	s.selected = nil
}
