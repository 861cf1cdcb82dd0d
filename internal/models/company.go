package models

import "time"

// Company holds the profile shown on the public site. Only one row is
// active at a time; updates go through CompanyRepository.SaveActive which
// enforces that inside a transaction.
type Company struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name"`
	NameEn            string    `json:"name_en"`
	Tagline           string    `json:"tagline"`
	TaglineEn         string    `json:"tagline_en"`
	Description       string    `json:"description"`
	DescriptionEn     string    `json:"description_en"`
	Address           string    `json:"address"`
	AddressEn         string    `json:"address_en"`
	Phone             string    `json:"phone"`
	WhatsappNumber    string    `json:"whatsapp_number"`
	WhatsappMessage   string    `json:"whatsapp_message"`
	WhatsappMessageEn string    `json:"whatsapp_message_en"`
	Email             string    `json:"email"`
	GoogleMapsURL     string    `json:"google_maps_url"`
	LogoURL           string    `json:"logo_url"`
	SocialInstagram   string    `json:"social_instagram"`
	SocialFacebook    string    `json:"social_facebook"`
	SocialLinkedin    string    `json:"social_linkedin"`
	OperatingHours    string    `json:"operating_hours"`
	IsActive          bool      `json:"is_active" gorm:"index"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
