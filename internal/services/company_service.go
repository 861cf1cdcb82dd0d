package services

import (
	"errors"
	"fmt"

	"github.com/danfath312/cv-karya-perikanan/internal/models"
	"github.com/danfath312/cv-karya-perikanan/internal/repository"

	"gorm.io/gorm"
)

// CompanyInput mirrors the admin company form. Absent fields become empty
// strings on save, matching the form's replace-everything semantics.
type CompanyInput struct {
	Name              string `json:"name"`
	NameEn            string `json:"name_en"`
	Tagline           string `json:"tagline"`
	TaglineEn         string `json:"tagline_en"`
	Description       string `json:"description"`
	DescriptionEn     string `json:"description_en"`
	Address           string `json:"address"`
	AddressEn         string `json:"address_en"`
	Phone             string `json:"phone"`
	WhatsappNumber    string `json:"whatsapp_number"`
	WhatsappMessage   string `json:"whatsapp_message"`
	WhatsappMessageEn string `json:"whatsapp_message_en"`
	Email             string `json:"email"`
	GoogleMapsURL     string `json:"google_maps_url"`
	LogoURL           string `json:"logo_url"`
	SocialInstagram   string `json:"social_instagram"`
	SocialFacebook    string `json:"social_facebook"`
	SocialLinkedin    string `json:"social_linkedin"`
	OperatingHours    string `json:"operating_hours"`
}

type CompanyService interface {
	GetActive() (*models.Company, error)
	SaveActive(input *CompanyInput) (*models.Company, bool, error)
}

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

// GetActive returns nil without error when no profile exists; handlers
// render that as an empty object.
func (s *companyService) GetActive() (*models.Company, error) {
	company, err := s.companyRepo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return company, nil
}

func (s *companyService) SaveActive(input *CompanyInput) (*models.Company, bool, error) {
	company := &models.Company{
		Name:              input.Name,
		NameEn:            input.NameEn,
		Tagline:           input.Tagline,
		TaglineEn:         input.TaglineEn,
		Description:       input.Description,
		DescriptionEn:     input.DescriptionEn,
		Address:           input.Address,
		AddressEn:         input.AddressEn,
		Phone:             input.Phone,
		WhatsappNumber:    input.WhatsappNumber,
		WhatsappMessage:   input.WhatsappMessage,
		WhatsappMessageEn: input.WhatsappMessageEn,
		Email:             input.Email,
		GoogleMapsURL:     input.GoogleMapsURL,
		LogoURL:           input.LogoURL,
		SocialInstagram:   input.SocialInstagram,
		SocialFacebook:    input.SocialFacebook,
		SocialLinkedin:    input.SocialLinkedin,
		OperatingHours:    input.OperatingHours,
		IsActive:          true,
	}

	created, err := s.companyRepo.SaveActive(company)
	if err != nil {
		return nil, false, fmt.Errorf("failed to save company info: %w", err)
	}
	return company, created, nil
}
