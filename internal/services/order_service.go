package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danfath312/cv-karya-perikanan/internal/models"
	"github.com/danfath312/cv-karya-perikanan/internal/repository"

	"gorm.io/gorm"
)

// OrderInput carries the public order-form fields. The product is free
// text from the form, not a foreign key.
type OrderInput struct {
	CustomerName *string `json:"customer_name"`
	Whatsapp     *string `json:"whatsapp"`
	Email        *string `json:"email"`
	Product      *string `json:"product"`
	Quantity     *int    `json:"quantity"`
	Address      *string `json:"address"`
	Note         *string `json:"note"`
}

type OrderService interface {
	CreatePublic(input *OrderInput) (*models.Order, error)
	GetByID(id uint) (*models.Order, error)
	GetAll() ([]models.Order, error)
	Update(id uint, input *OrderInput) (*models.Order, error)
	UpdateStatus(id uint, status string) (*models.Order, error)
	Delete(id uint) error
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// CreatePublic records an order submitted from the public website form.
// Status always starts at pending; admins move it afterwards.
func (s *orderService) CreatePublic(input *OrderInput) (*models.Order, error) {
	if input.CustomerName == nil || strings.TrimSpace(*input.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if input.Whatsapp == nil || strings.TrimSpace(*input.Whatsapp) == "" {
		return nil, fmt.Errorf("%w: whatsapp number is required", ErrValidation)
	}
	if input.Product == nil || strings.TrimSpace(*input.Product) == "" {
		return nil, fmt.Errorf("%w: product is required", ErrValidation)
	}
	if input.Address == nil || strings.TrimSpace(*input.Address) == "" {
		return nil, fmt.Errorf("%w: delivery address is required", ErrValidation)
	}

	order := &models.Order{
		CustomerName: strings.TrimSpace(*input.CustomerName),
		Whatsapp:     strings.TrimSpace(*input.Whatsapp),
		Product:      strings.TrimSpace(*input.Product),
		Address:      strings.TrimSpace(*input.Address),
		Quantity:     1,
		Status:       string(models.OrderPending),
	}
	if input.Email != nil {
		order.Email = strings.TrimSpace(*input.Email)
	}
	if input.Note != nil {
		order.Note = *input.Note
	}
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
		order.Quantity = *input.Quantity
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

func (s *orderService) GetByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetAll() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) Update(id uint, input *OrderInput) (*models.Order, error) {
	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.CustomerName != nil {
		if strings.TrimSpace(*input.CustomerName) == "" {
			return nil, fmt.Errorf("%w: customer name must not be empty", ErrValidation)
		}
		order.CustomerName = strings.TrimSpace(*input.CustomerName)
	}
	if input.Whatsapp != nil {
		if strings.TrimSpace(*input.Whatsapp) == "" {
			return nil, fmt.Errorf("%w: whatsapp number must not be empty", ErrValidation)
		}
		order.Whatsapp = strings.TrimSpace(*input.Whatsapp)
	}
	if input.Email != nil {
		order.Email = strings.TrimSpace(*input.Email)
	}
	if input.Product != nil {
		if strings.TrimSpace(*input.Product) == "" {
			return nil, fmt.Errorf("%w: product must not be empty", ErrValidation)
		}
		order.Product = strings.TrimSpace(*input.Product)
	}
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
		order.Quantity = *input.Quantity
	}
	if input.Address != nil {
		if strings.TrimSpace(*input.Address) == "" {
			return nil, fmt.Errorf("%w: delivery address must not be empty", ErrValidation)
		}
		order.Address = strings.TrimSpace(*input.Address)
	}
	if input.Note != nil {
		order.Note = *input.Note
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}

// UpdateStatus accepts any member of the status enumeration; the stored
// value is untouched when the candidate is not a member.
func (s *orderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q, must be one of: %s",
			ErrValidation, status, joinStatuses())
	}

	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return order, nil
}

func (s *orderService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.orderRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func joinStatuses() string {
	parts := make([]string, len(models.OrderStatuses))
	for i, s := range models.OrderStatuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
