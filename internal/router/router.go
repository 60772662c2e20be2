package router

import (
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/engagement"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/feed"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/handlers"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/middleware"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/models"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/notify"
	"github.com/iscanabdulhalik/swappy-backend-sub001/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes migrates the schema, wires dependencies and registers all routes
func SetupRoutes(e *echo.Echo, db *gorm.DB, dispatcher *notify.Dispatcher, authenticator middleware.Authenticator, logger *zap.Logger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.UserStats{},
		&models.Language{},
		&models.Post{},
		&models.PostMedia{},
		&models.Comment{},
		&models.PostLike{},
		&models.CommentLike{},
		&models.Follow{},
	)
	if err != nil {
		return err
	}
	logger.Info("schema migration completed")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Relationship store ---
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	userRepo := repositories.NewPostgresUserRepository(db)

	// --- Engagement engine and feed assembler ---
	engine := engagement.NewService(postRepo, commentRepo, likeRepo, followRepo, userRepo, dispatcher, logger)
	assembler := feed.NewAssembler(db)

	// --- Protected routes ---
	api := e.Group("/api/v1")
	api.Use(middleware.Auth(authenticator))

	postHandler := handlers.NewPostHandler(engine, assembler)
	postHandler.RegisterPostRoutes(api)

	feedHandler := handlers.NewFeedHandler(assembler)
	feedHandler.RegisterFeedRoutes(api)

	commentHandler := handlers.NewCommentHandler(engine, assembler)
	commentHandler.RegisterCommentRoutes(api)

	likeHandler := handlers.NewLikeHandler(engine)
	likeHandler.RegisterLikeRoutes(api)

	followHandler := handlers.NewFollowHandler(engine)
	followHandler.RegisterFollowRoutes(api)

	logger.Info("all routes configured")
	return nil
}
