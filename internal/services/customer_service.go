package services

import (
	"errors"

	"swiftconnect_backend/internal/billing"
	"swiftconnect_backend/internal/dto"
	"swiftconnect_backend/internal/models"
	"swiftconnect_backend/internal/repositories"
	"swiftconnect_backend/pkg/apperrors"
)

type CustomerService interface {
	ListCustomers(search string) ([]dto.CustomerResponse, error)
	GetCustomer(id string) (*dto.CustomerResponse, error)
	CreateCustomer(req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	DeleteCustomer(id string) error
}

type customerService struct {
	customerRepo repositories.CustomerRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) ListCustomers(search string) ([]dto.CustomerResponse, error) {
	var (
		customers []models.Customer
		err       error
	)

	if search != "" {
		customers, err = s.customerRepo.Search(search)
	} else {
		customers, err = s.customerRepo.FindAll()
	}
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, buildCustomerResponse(c))
	}
	return responses, nil
}

func (s *customerService) GetCustomer(id string) (*dto.CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, apperrors.ErrNotFound(err, "customer")
		}
		return nil, err
	}

	resp := buildCustomerResponse(*customer)
	return &resp, nil
}

func (s *customerService) CreateCustomer(req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	customer := &models.Customer{
		FullName:     req.FullName,
		CnicPassport: req.CnicPassport,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Address:      req.Address,
		HomeAddress:  req.HomeAddress,
		IsActive:     isActive,
	}

	if err := s.customerRepo.Create(customer); err != nil {
		if errors.Is(err, repositories.ErrCustomerAlreadyExists) {
			return nil, apperrors.ErrInvalidOperation("customer", "Customer with this CNIC/passport already exists")
		}
		return nil, err
	}

	resp := buildCustomerResponse(*customer)
	return &resp, nil
}

func (s *customerService) DeleteCustomer(id string) error {
	if err := s.customerRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return apperrors.ErrNotFound(err, "customer")
		}
		return err
	}
	return nil
}

// buildCustomerResponse дополняет клиента производными биллинговыми полями
func buildCustomerResponse(c models.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		Customer: c,
		Status:   string(billing.DeriveStatus(c)),
		TotalDue: billing.TotalDue(c),
	}
}
