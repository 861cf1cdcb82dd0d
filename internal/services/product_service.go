package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danfath312/cv-karya-perikanan/internal/models"
	"github.com/danfath312/cv-karya-perikanan/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductInput carries client-supplied product fields. Pointers distinguish
// "absent" from "zero" so updates only touch fields the client sent.
type ProductInput struct {
	Name             *string   `json:"name"`
	NameEn           *string   `json:"name_en"`
	Description      *string   `json:"description"`
	DescriptionEn    *string   `json:"description_en"`
	Specifications   *[]string `json:"specifications"`
	SpecificationsEn *[]string `json:"specifications_en"`
	Uses             *[]string `json:"uses"`
	UsesEn           *[]string `json:"uses_en"`
	Stock            *int      `json:"stock"`
	Price            *float64  `json:"price"`
	Available        *bool     `json:"available"`
	ImageURL         *string   `json:"image_url"`
}

type ProductService interface {
	Create(input *ProductInput) (*models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetAll() ([]models.Product, error)
	GetAvailable() ([]models.Product, error)
	Update(id uint, input *ProductInput) (*models.Product, error)
	Delete(id uint) error
	ToggleAvailability(id uint) (*models.Product, error)
	SetStock(id uint, stock int) (*models.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) Create(input *ProductInput) (*models.Product, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	product := &models.Product{
		Name:      strings.TrimSpace(*input.Name),
		Available: true,
	}
	applyProductInput(product, input)

	if err := s.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *productService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetAll() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *productService) GetAvailable() ([]models.Product, error) {
	return s.productRepo.GetAvailable()
}

// Update mutates only fields present in the input. ID and CreatedAt are
// immutable; UpdatedAt is refreshed by the store on save.
func (s *productService) Update(id uint, input *ProductInput) (*models.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: product name must not be empty", ErrValidation)
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	applyProductInput(product, input)
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *productService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *productService) ToggleAvailability(id uint) (*models.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Available = !product.Available
	if err := s.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to toggle availability: %w", err)
	}
	return product, nil
}

func (s *productService) SetStock(id uint, stock int) (*models.Product, error) {
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}

	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Stock = stock
	if err := s.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}
	return product, nil
}

func applyProductInput(product *models.Product, input *ProductInput) {
	if input.NameEn != nil {
		product.NameEn = *input.NameEn
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.DescriptionEn != nil {
		product.DescriptionEn = *input.DescriptionEn
	}
	if input.Specifications != nil {
		product.Specifications = datatypes.NewJSONSlice(*input.Specifications)
	}
	if input.SpecificationsEn != nil {
		product.SpecificationsEn = datatypes.NewJSONSlice(*input.SpecificationsEn)
	}
	if input.Uses != nil {
		product.Uses = datatypes.NewJSONSlice(*input.Uses)
	}
	if input.UsesEn != nil {
		product.UsesEn = datatypes.NewJSONSlice(*input.UsesEn)
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Available != nil {
		product.Available = *input.Available
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
}
