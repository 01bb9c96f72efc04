package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/imovelhub/imoveis-api/docs"
	"github.com/imovelhub/imoveis-api/internal/api/handler"
	"github.com/imovelhub/imoveis-api/internal/api/middleware"
	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
	"github.com/imovelhub/imoveis-api/internal/infrastructure/http/handlers"
)

// Services groups the use-case implementations injected into the router.
// Handlers receive explicit dependencies; nothing routes through package
// globals.
type Services struct {
	Users       ports.UserService
	RealEstates ports.RealEstateService
	Favorites   ports.FavoriteService
	Visits      ports.VisitService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, userRepo ports.UserRepository, svcs Services, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("imoveis"))

	auth := middleware.Auth(jwtSecret, userRepo)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Users ---
	userHandler := handler.NewUserHandler(svcs.Users)
	users := e.Group("/users")
	users.POST("/cadastro", userHandler.Cadastro)
	users.POST("/login", userHandler.Login)
	users.POST("/administradores", userHandler.CreateAdmin, auth, adminOnly)
	users.PUT("/usuarios/:id", userHandler.Update, auth)
	users.DELETE("/usuarios/:id", userHandler.Delete, auth, adminOnly)

	// --- Real estate: reads are public, writes are admin-only ---
	realEstateHandler := handler.NewRealEstateHandler(svcs.RealEstates)
	realEstates := e.Group("/realEstate")
	realEstates.GET("", realEstateHandler.List)
	realEstates.GET("/search", realEstateHandler.Search)
	realEstates.POST("", realEstateHandler.Create, auth, adminOnly)
	realEstates.PUT("/:id", realEstateHandler.Update, auth, adminOnly)
	realEstates.DELETE("/:id", realEstateHandler.Delete, auth, adminOnly)

	// --- Favorites: any authenticated caller ---
	favoriteHandler := handler.NewFavoriteHandler(svcs.Favorites)
	favorites := e.Group("/favorites", auth)
	favorites.GET("", favoriteHandler.List)
	favorites.POST("", favoriteHandler.Create)
	favorites.PUT("/:id", favoriteHandler.Update)
	favorites.DELETE("/:id", favoriteHandler.Delete)

	// --- Visits: any authenticated caller ---
	visitHandler := handler.NewVisitHandler(svcs.Visits)
	visits := e.Group("/visits", auth)
	visits.GET("", visitHandler.List)
	visits.POST("", visitHandler.Create)
	visits.PUT("/:id", visitHandler.Update)
	visits.DELETE("/:id", visitHandler.Delete)

	// --- Operational surface ---
	healthHandler := handlers.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
