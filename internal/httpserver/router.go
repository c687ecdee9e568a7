package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akiram/casting-agency/internal/auth"
	middleware "github.com/akiram/casting-agency/internal/middleware/auth"
)

type Deps struct {
	MovieHandler *MovieHTTP
	ActorHandler *ActorHTTP
	Validator    *auth.Validator
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"success": true,
			"message": "Hi there, the app is running",
		})
	})

	authMW := middleware.NewPermissionMiddleware(d.Validator)

	e.GET("/movies", d.MovieHandler.GetMovies, authMW.RequirePermission("get:movies"))
	e.POST("/movies", d.MovieHandler.CreateMovie, authMW.RequirePermission("post:movies"))
	e.PATCH("/movies/:id", d.MovieHandler.PatchMovie, authMW.RequirePermission("patch:movies"))
	e.DELETE("/movies/:id", d.MovieHandler.DeleteMovie, authMW.RequirePermission("delete:movies"))

	e.GET("/actors", d.ActorHandler.GetActors, authMW.RequirePermission("get:actors"))
	e.POST("/actors", d.ActorHandler.CreateActor, authMW.RequirePermission("post:actors"))
	e.PATCH("/actors/:id", d.ActorHandler.PatchActor, authMW.RequirePermission("patch:actors"))
	e.DELETE("/actors/:id", d.ActorHandler.DeleteActor, authMW.RequirePermission("delete:actors"))
}
