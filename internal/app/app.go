package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	siteHTTP "github.com/aszxazs-a11y/aboutleesanbang/internal/controller/http"
	"github.com/aszxazs-a11y/aboutleesanbang/internal/repo/persistent"
	"github.com/aszxazs-a11y/aboutleesanbang/internal/usecase"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/config"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/flash"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/jwt"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/logger"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/middleware"
	"github.com/aszxazs-a11y/aboutleesanbang/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/aszxazs-a11y/aboutleesanbang/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	settingsRepo := persistent.NewSettingsRepository(db)
	socialLinkRepo := persistent.NewSocialLinkRepository(db)
	categoryRepo := persistent.NewCategoryRepository(db)
	workRepo := persistent.NewWorkRepository(db)
	imageRepo := persistent.NewWorkImageRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	adminRepo := persistent.NewAdminUserRepository(db)

	// Initialize use cases
	siteUseCase := usecase.NewSiteUseCase(settingsRepo, socialLinkRepo)
	workUseCase := usecase.NewWorkUseCase(workRepo, categoryRepo, commentRepo, likeRepo)
	commentUseCase := usecase.NewCommentUseCase(workRepo, commentRepo, log)
	likeUseCase := usecase.NewLikeUseCase(workRepo, likeRepo)
	adminUseCase := usecase.NewAdminUseCase(adminRepo, settingsRepo, socialLinkRepo, categoryRepo, workRepo, imageRepo, commentRepo, likeRepo, s3Client, jwtService, log)

	// Initialize HTTP handlers
	flashStore := flash.NewStore(redisClient, log)
	siteHandler := siteHTTP.NewSiteHandler(siteUseCase, flashStore, log)
	workHandler := siteHTTP.NewWorkHandler(workUseCase, flashStore, log)
	commentHandler := siteHTTP.NewCommentHandler(commentUseCase, flashStore, log)
	likeHandler := siteHTTP.NewLikeHandler(likeUseCase, log)
	adminHandler := siteHTTP.NewAdminHandler(adminUseCase, log)

	// Setup router
	gin.SetMode(cfg.GinMode)
	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public pages
	r.GET("/", siteHandler.Home)
	r.GET("/about/", siteHandler.About)
	r.GET("/works/", workHandler.List)
	r.GET("/works/:id/", workHandler.Detail)

	// Comment endpoints redirect back to the work page; a GET just lands on
	// the detail page.
	r.POST("/works/:id/comments/", commentHandler.Add)
	r.GET("/works/:id/comments/", commentHandler.RedirectToDetail)
	r.POST("/works/:id/comments/:commentID/delete/", commentHandler.Delete)
	r.GET("/works/:id/comments/:commentID/delete/", commentHandler.RedirectToDetail)

	// Likes are POST-only JSON
	r.POST("/works/:id/like/", likeHandler.Add)
	r.GET("/works/:id/like/", likeHandler.MethodNotAllowed)

	// Admin surface
	r.GET("/admin/login", adminHandler.LoginPage)
	r.POST("/admin/api/login", middleware.RateLimitMiddleware(redisClient, 10, time.Minute), adminHandler.Login)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(jwtService))
	{
		admin.GET("/", adminHandler.Dashboard)

		api := admin.Group("/api")
		{
			api.POST("/logout", adminHandler.Logout)

			api.GET("/settings", adminHandler.GetSettings)
			api.PUT("/settings", adminHandler.SaveSettings)

			api.GET("/profile", adminHandler.GetProfile)
			api.PUT("/profile", adminHandler.SaveProfile)

			api.GET("/social-links", adminHandler.ListSocialLinks)
			api.POST("/social-links", adminHandler.CreateSocialLink)
			api.PUT("/social-links/:id", adminHandler.UpdateSocialLink)
			api.DELETE("/social-links/:id", adminHandler.DeleteSocialLink)

			api.GET("/categories", adminHandler.ListCategories)
			api.POST("/categories", adminHandler.CreateCategory)
			api.PUT("/categories/:id", adminHandler.UpdateCategory)
			api.DELETE("/categories/:id", adminHandler.DeleteCategory)

			api.GET("/works", adminHandler.ListWorks)
			api.POST("/works", adminHandler.CreateWork)
			api.PUT("/works/:id", adminHandler.UpdateWork)
			api.DELETE("/works/:id", adminHandler.DeleteWork)
			api.GET("/works/:id/stats", adminHandler.WorkStats)

			api.POST("/works/:id/images", adminHandler.AddWorkImage)
			api.PUT("/works/:id/images/order", adminHandler.ReorderWorkImages)
			api.DELETE("/works/:id/images/:imageID", adminHandler.DeleteWorkImage)

			api.GET("/comments", adminHandler.ListComments)
			api.DELETE("/comments/:id", adminHandler.RemoveComment)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Portfolio service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down portfolio service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Portfolio service exited")
}
