package models

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	ID               uint                        `json:"id" gorm:"primaryKey"`
	Name             string                      `json:"name" gorm:"not null"`
	NameEn           string                      `json:"name_en"`
	Description      string                      `json:"description"`
	DescriptionEn    string                      `json:"description_en"`
	Specifications   datatypes.JSONSlice[string] `json:"specifications"`
	SpecificationsEn datatypes.JSONSlice[string] `json:"specifications_en"`
	Uses             datatypes.JSONSlice[string] `json:"uses"`
	UsesEn           datatypes.JSONSlice[string] `json:"uses_en"`
	Stock            int                         `json:"stock" gorm:"default:0"`
	Price            float64                     `json:"price" gorm:"default:0"`
	Available        bool                        `json:"available"`
	ImageURL         string                      `json:"image_url"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}
