package router

import (
	"context"
	"fmt"
	"time"

	"gamebuddy-user/internal/api/handlers"
	"gamebuddy-user/internal/api/middleware"
	"gamebuddy-user/internal/config"
	"gamebuddy-user/internal/domain/user"
	"gamebuddy-user/internal/infrastructure/cache"
	"gamebuddy-user/internal/infrastructure/database"
	"gamebuddy-user/internal/infrastructure/repository"
	"gamebuddy-user/internal/service"
	"gamebuddy-user/pkg/password"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New builds the API router with all routes and their backing services wired in.
func New(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(gin.Recovery())

	cfg := config.Get()

	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)

	checks := map[string]handlers.HealthChecker{
		"database": func() error { return database.HealthCheck(db) },
	}

	var userCache user.Cache
	if cfg.Cache.Type == "memory" {
		userCache = cache.NewMemoryUserCache()
		fmt.Println("Using in-memory user cache")
	} else {
		redisCache := cache.NewRedisUserCache(
			fmt.Sprintf("%s:%d", cfg.Cache.Host, cfg.Cache.Port),
			cfg.Cache.Password,
			cfg.Cache.DB,
		)
		checks["cache"] = func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisCache.Health(ctx)
		}
		userCache = redisCache
		fmt.Println("Using Redis user cache")
	}

	hasher := password.NewHasher()
	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	aggregator := service.NewRatingAggregator(userRepo, reviewRepo, userCache)
	userService := service.NewUserService(userRepo, userCache, hasher, cacheTTL)
	reviewService := service.NewReviewService(reviewRepo, userRepo, aggregator)
	friendshipService := service.NewFriendshipService(friendshipRepo, userRepo)

	userHandler := handlers.NewUserHandler(userService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	friendshipHandler := handlers.NewFriendshipHandler(friendshipService)
	languageHandler := handlers.NewLanguageHandler()
	healthHandler := handlers.NewHealthHandler(checks)

	r.GET("/health", healthHandler.HealthCheck)
	r.GET("/ready", healthHandler.ReadinessCheck)
	r.GET("/live", healthHandler.LivenessCheck)

	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.GET("", userHandler.ListUsers)
			users.GET("/findUser", userHandler.FindUser)
			users.GET("/by-criteria", userHandler.GetUsersByCriteria)
			users.POST("/match-password", userHandler.MatchPassword)
			users.GET("/:userId", userHandler.GetUser)
			users.PUT("/:userId", userHandler.UpdateUser)
			users.DELETE("/:userId", userHandler.DeleteUser)
			users.PUT("/:userId/make-premium", userHandler.MakePremium)
			users.POST("/:userId/add-friend", friendshipHandler.AddFriend)
			users.GET("/:userId/friends", friendshipHandler.GetFriends)
		}

		reviews := v1.Group("/reviews")
		{
			reviews.POST("", reviewHandler.CreateReview)
			reviews.GET("/user/:userId", reviewHandler.ListReviewsForUser)
			reviews.GET("/:reviewId", reviewHandler.GetReview)
			reviews.DELETE("/:reviewId", reviewHandler.DeleteReview)
		}

		friendships := v1.Group("/friendships")
		{
			friendships.GET("", friendshipHandler.ListFriendships)
		}

		v1.GET("/languages", languageHandler.ListLanguages)
	}

	return r
}
