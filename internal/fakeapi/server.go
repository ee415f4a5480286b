// Package fakeapi is an in-memory implementation of the FridgeChef backend
// REST contract, for local development and client tests.
package fakeapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/fridgechef/internal/logging"
)

// Options configures the stub backend
type Options struct {
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
	Logger         *zap.Logger
	Now            func() time.Time

	// RecipeLimiter, when set, limits recipe creation per user
	RecipeLimiter *RateLimiter
}

// Server holds the stub backend state and its router
type Server struct {
	store    *store
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
	limiter  *RateLimiter
	router   *gin.Engine
}

// New creates a stub backend with empty state
func New(opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TokenTTL == 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.JWTSecret == "" {
		opts.JWTSecret = "fridgechef-dev-secret"
	}

	s := &Server{
		store:    newStore(opts.Now),
		secret:   []byte(opts.JWTSecret),
		tokenTTL: opts.TokenTTL,
		logger:   logging.OrNop(opts.Logger),
		now:      opts.Now,
		limiter:  opts.RecipeLimiter,
	}
	s.router = s.setupRouter(opts.AllowedOrigins)
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRouter(origins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	if len(origins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
			AllowCredentials: true,
			MaxAge:           24 * time.Hour,
		}))
	}

	auth := router.Group("/auth")
	{
		auth.POST("/login", s.login)
		auth.POST("/signup", s.signup)
	}

	recipes := router.Group("/recipes")
	{
		recipes.GET("", s.listRecipes)
		recipes.GET("/search", s.searchRecipes)
		recipes.POST("/by-ingredients", s.recipesByIngredients)
		recipes.GET("/:id", s.getRecipe)
		recipes.POST("", s.createHandlers()...)
		recipes.PUT("/:id", s.requireAuth(), s.updateRecipe)
		recipes.DELETE("/:id", s.requireAuth(), s.deleteRecipe)
		recipes.POST("/:id/rate", s.requireAuth(), s.rateRecipe)
	}

	users := router.Group("/users")
	{
		users.GET("", s.listUsers)
		users.GET("/:id", s.getUser)
		users.PUT("/:id", s.requireAuth(), s.updateUser)
		users.POST("/:id/follow", s.requireAuth(), s.followUser)
		users.POST("/:id/unfollow", s.requireAuth(), s.unfollowUser)
	}

	router.POST("/upload", s.requireAuth(), s.uploadImage)

	return router
}

func (s *Server) createHandlers() []gin.HandlerFunc {
	handlers := []gin.HandlerFunc{s.requireAuth()}
	if s.limiter != nil {
		handlers = append(handlers, s.limiter.middleware(s.logger))
	}
	return append(handlers, s.createRecipe)
}

// abortWithError maps store errors onto status codes
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errUserExists):
		status = http.StatusConflict
	case errors.Is(err, errInvalidCreds):
		status = http.StatusUnauthorized
	case errors.Is(err, errSelfFollow), errors.Is(err, errRatingInRange):
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// maxPageSize caps the limit query parameter
const maxPageSize = 100

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, min(limit, maxPageSize)
}
