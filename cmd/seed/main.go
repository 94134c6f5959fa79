package main

import (
	"fmt"
	"time"

	"github.com/aszxazs-a11y/aboutleesanbang/pkg/config"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/database"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/logger"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, cfg, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	if err := seedAdminUser(db, cfg, log); err != nil {
		return err
	}

	var settingsCount int64
	db.Model(&models.SiteSettings{}).Count(&settingsCount)
	if settingsCount == 0 {
		settings := &models.SiteSettings{
			HeroTitle:       "Lee Sanbang",
			HeroDescription: "Woodwork and lacquerware from a small studio.",
			ShortIntro:      "Selected works, process notes and commissions.",
		}
		if err := db.Create(settings).Error; err != nil {
			return fmt.Errorf("failed to create site settings: %w", err)
		}
		log.Info("Created site settings")
	}

	var profileCount int64
	db.Model(&models.Profile{}).Count(&profileCount)
	if profileCount == 0 {
		profile := &models.Profile{
			Name:  "Lee Sanbang",
			Bio:   "Craftsman working with wood and ottchil lacquer.",
			Email: "studio@example.com",
		}
		if err := db.Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		log.Info("Created profile")
	}

	links := []models.SocialLink{
		{Platform: "instagram", URL: "https://instagram.com/example", Order: 0},
		{Platform: "youtube", URL: "https://youtube.com/@example", Order: 1},
	}
	for i := range links {
		var existing models.SocialLink
		if db.Where("platform = ?", links[i].Platform).First(&existing).Error == nil {
			continue
		}
		if err := db.Create(&links[i]).Error; err != nil {
			log.Error("Failed to create social link %s: %v", links[i].Platform, err)
		}
	}

	categories := []models.Category{
		{Name: "Furniture", Order: 0},
		{Name: "Tableware", Order: 1},
		{Name: "Objects", Order: 2},
	}
	categoryIDs := make([]string, 0, len(categories))
	for i := range categories {
		var existing models.Category
		if db.Where("name = ?", categories[i].Name).First(&existing).Error == nil {
			categoryIDs = append(categoryIDs, existing.ID)
			continue
		}
		if err := db.Create(&categories[i]).Error; err != nil {
			log.Error("Failed to create category %s: %v", categories[i].Name, err)
			continue
		}
		log.Info("Created category: %s", categories[i].Name)
		categoryIDs = append(categoryIDs, categories[i].ID)
	}

	titles := []string{"Low table", "Lacquer bowl set", "Wall shelf", "Tea tray", "Incense holder"}
	for i, title := range titles {
		var existing models.Work
		if db.Where("title = ?", title).First(&existing).Error == nil {
			continue
		}

		work := &models.Work{
			Title:       title,
			Description: fmt.Sprintf("Sample work: %s.", title),
		}
		if len(categoryIDs) > 0 {
			id := categoryIDs[i%len(categoryIDs)]
			work.CategoryID = &id
		}
		// Stagger creation times so neighbor navigation has an order to walk.
		work.CreatedAt = time.Now().Add(time.Duration(i-len(titles)) * time.Hour)

		if err := db.Create(work).Error; err != nil {
			log.Error("Failed to create work %s: %v", title, err)
			continue
		}
		log.Info("Created work: %s", title)

		for j := 0; j < 2; j++ {
			image := &models.WorkImage{
				WorkID:   work.ID,
				ImageURL: fmt.Sprintf("/static/samples/%d-%d.jpg", i, j),
				Order:    j,
			}
			if err := db.Create(image).Error; err != nil {
				log.Error("Failed to create image for %s: %v", title, err)
			}
		}

		comment := &models.Comment{
			WorkID:     work.ID,
			AuthorName: "visitor",
			Password:   "seed",
			Content:    "Lovely piece.",
		}
		if err := db.Create(comment).Error; err != nil {
			log.Error("Failed to create comment for %s: %v", title, err)
		}

		for j := 0; j <= i; j++ {
			if err := db.Create(&models.Like{WorkID: work.ID}).Error; err != nil {
				log.Error("Failed to create like for %s: %v", title, err)
			}
		}
	}

	return nil
}

func seedAdminUser(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	var existing models.AdminUser
	if db.Where("username = ?", cfg.AdminUsername).First(&existing).Error == nil {
		log.Info("Admin user %s already exists, skipping", cfg.AdminUsername)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.AdminUser{
		Username: cfg.AdminUsername,
		Password: string(hashed),
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Info("Created admin user: %s", cfg.AdminUsername)
	return nil
}
