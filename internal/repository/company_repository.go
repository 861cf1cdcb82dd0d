package repository

import (
	"errors"

	"github.com/danfath312/cv-karya-perikanan/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	GetActive() (*models.Company, error)
	SaveActive(company *models.Company) (created bool, err error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) GetActive() (*models.Company, error) {
	var company models.Company
	err := r.db.Where("is_active = ?", true).First(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// SaveActive updates the active profile row or creates it if absent,
// deactivating every other row in the same transaction so at most one row
// is active regardless of concurrent writers.
func (r *companyRepository) SaveActive(company *models.Company) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var current models.Company
		err := tx.Where("is_active = ?", true).First(&current).Error
		switch {
		case err == nil:
			company.ID = current.ID
			company.CreatedAt = current.CreatedAt
		case errors.Is(err, gorm.ErrRecordNotFound):
			company.ID = 0
			created = true
		default:
			return err
		}

		company.IsActive = true
		if err := tx.Save(company).Error; err != nil {
			return err
		}

		return tx.Model(&models.Company{}).
			Where("id <> ? AND is_active = ?", company.ID, true).
			Update("is_active", false).Error
	})
	return created, err
}
