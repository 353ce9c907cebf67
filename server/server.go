package server

import (
	"recipe-api/cache"
	"recipe-api/confs"
	"recipe-api/db"
	httpHandler "recipe-api/handlers/http"
	"recipe-api/middleware"
	"recipe-api/repositories"
	"recipe-api/storage"
	"recipe-api/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app   *gin.Engine
	cfg   *confs.Config
	db    db.Database
	cache *cache.TokenCache
}

func NewServer(cfg *confs.Config, database db.Database, tokenCache *cache.TokenCache) *Server {
	s := &Server{
		app:   gin.Default(),
		cfg:   cfg,
		db:    database,
		cache: tokenCache,
	}
	s.setupRoutes()
	return s
}

// App exposes the configured engine, mainly for tests.
func (s *Server) App() *gin.Engine { return s.app }

func (s *Server) setupRoutes() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	tokenRepo := repositories.NewTokenPgRepository(s.db)
	tagRepo := repositories.NewTagPgRepository(s.db)
	ingredientRepo := repositories.NewIngredientPgRepository(s.db)
	recipeRepo := repositories.NewRecipePgRepository(s.db)

	// Initialize the image store
	images := storage.NewImageStore(s.cfg.MediaRoot, s.cfg.MediaURL, s.cfg.MaxUploadBytes)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, s.cache, s.cfg.BcryptCost)
	authUseCase := usecases.NewAuthUseCase(userRepo, tokenRepo, s.cache, s.cfg.TokenTTL)
	tagUseCase := usecases.NewTagUseCase(tagRepo)
	ingredientUseCase := usecases.NewIngredientUseCase(ingredientRepo)
	recipeUseCase := usecases.NewRecipeUseCase(recipeRepo, tagRepo, ingredientRepo, images)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase)
	tokenHandler := httpHandler.NewTokenHandler(authUseCase)
	tagHandler := httpHandler.NewTagHandler(tagUseCase)
	ingredientHandler := httpHandler.NewIngredientHandler(ingredientUseCase)
	recipeHandler := httpHandler.NewRecipeHandler(recipeUseCase, images)

	authRequired := middleware.TokenAuth(authUseCase)

	// Uploaded images are served straight from the media root
	s.app.Static("/media", s.cfg.MediaRoot)

	// Setup API routes
	api := s.app.Group("/api")
	{
		// User routes
		user := api.Group("/user")
		{
			user.POST("/create/", userHandler.Create)
			user.POST("/token/", tokenHandler.Issue)
			user.GET("/me/", authRequired, userHandler.Me)
			user.PUT("/me/", authRequired, userHandler.UpdateMe)
			user.PATCH("/me/", authRequired, userHandler.UpdateMe)
		}

		// Recipe routes, all behind the auth gate
		recipe := api.Group("/recipe", authRequired)
		{
			recipe.GET("/tags/", tagHandler.List)
			recipe.POST("/tags/", tagHandler.Create)

			recipe.GET("/ingredients/", ingredientHandler.List)
			recipe.POST("/ingredients/", ingredientHandler.Create)

			recipe.GET("/recipes/", recipeHandler.List)
			recipe.POST("/recipes/", recipeHandler.Create)
			recipe.GET("/recipes/:id/", recipeHandler.Get)
			recipe.PUT("/recipes/:id/", recipeHandler.Update)
			recipe.PATCH("/recipes/:id/", recipeHandler.Update)
			recipe.DELETE("/recipes/:id/", recipeHandler.Delete)
			recipe.POST("/recipes/:id/upload-image/", recipeHandler.UploadImage)
		}
	}
}

func (s *Server) Start() {
	if err := s.app.Run(s.cfg.HTTPAddr); err != nil {
		panic(err)
	}
}
