package models

import "gorm.io/gorm"

// AutoMigrate creates the full schema. Production deployments run the goose
// migrations instead; this is used by tests and the seed command.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&SiteSettings{},
		&Profile{},
		&SocialLink{},
		&Category{},
		&Work{},
		&WorkImage{},
		&Comment{},
		&Like{},
		&AdminUser{},
	)
}
