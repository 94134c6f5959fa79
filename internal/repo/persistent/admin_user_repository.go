package persistent

import (
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"

	"gorm.io/gorm"
)

type AdminUserRepository interface {
	Create(user *models.AdminUser) error
	GetByUsername(username string) (*models.AdminUser, error)
}

type adminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) Create(user *models.AdminUser) error {
	return r.db.Create(user).Error
}

func (r *adminUserRepository) GetByUsername(username string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
