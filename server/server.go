package server

import (
	"recipe-server/db"
	httpHandler "recipe-server/handlers/http"
	"recipe-server/repositories"
	"recipe-server/sessions"
	"recipe-server/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app      *gin.Engine
	db       db.Database
	sessions *sessions.Store
	addr     string
}

func NewServer(database db.Database, store *sessions.Store, addr string) *Server {
	return &Server{
		app:      gin.Default(),
		db:       database,
		sessions: store,
		addr:     addr,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware. Credentials must be allowed because the session
	// rides on a cookie, so origins are echoed instead of wildcarded.
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	config.AllowOriginFunc = func(origin string) bool { return true }
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	recipeRepo := repositories.NewRecipePgRepository(s.db)

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(userRepo)
	recipeUseCase := usecases.NewRecipeUseCase(recipeRepo)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase, s.sessions)
	recipeHandler := httpHandler.NewRecipeHandler(recipeUseCase)

	// Every request gets the session resolved once, before any handler runs.
	s.app.Use(httpHandler.ResolveSession(s.sessions))

	// Setup API routes
	s.app.POST("/signup", authHandler.Signup)
	s.app.GET("/check_session", authHandler.CheckSession)
	s.app.POST("/login", authHandler.Login)
	s.app.DELETE("/logout", authHandler.Logout)
	s.app.GET("/recipes", recipeHandler.GetRecipes)
	s.app.POST("/recipes", recipeHandler.CreateRecipe)

	if err := s.app.Run(s.addr); err != nil {
		panic(err)
	}
}
