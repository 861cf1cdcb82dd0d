package repository

import (
	"github.com/danfath312/cv-karya-perikanan/internal/models"

	"gorm.io/gorm"
)

// AdminRepository only serves setup-time seeding; admin credentials are
// never created or deleted through the API.
type AdminRepository interface {
	GetByUsername(username string) (*models.Admin, error)
	Count() (int64, error)
	Create(admin *models.Admin) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("username = ?", username).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Admin{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}
