package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"wolfstreet/internal/handler"
	"wolfstreet/internal/middleware"
	"wolfstreet/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	meHandler *handler.MeHandler,
	analysisHandler *handler.AnalysisHandler,
	watchlistHandler *handler.WatchlistHandler,
	chatHandler *handler.ChatHandler,
	statusHandler *handler.StatusHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", statusHandler.Root)
	e.GET("/test", statusHandler.Storage)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// Secured routes (require a bearer session token)
	secured := e.Group("", middleware.RequireAuth(authService))
	secured.GET("/me", meHandler.Me)
	secured.POST("/analysis", analysisHandler.Analyze)
	secured.GET("/watchlist", watchlistHandler.List)
	secured.POST("/watchlist", watchlistHandler.Add)
	secured.DELETE("/watchlist/:id", watchlistHandler.Remove)
	secured.POST("/chat", chatHandler.Send)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
