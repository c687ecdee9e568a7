package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/akiram/casting-agency/internal/events"
	"github.com/akiram/casting-agency/internal/service"
	"github.com/akiram/casting-agency/internal/transport"
	"github.com/akiram/casting-agency/pkg/logging"
)

type MovieHTTP struct {
	Svc      *service.MovieService
	Producer *events.Producer
}

func (h *MovieHTTP) publish(c echo.Context, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.Publish(ctx, "movies", event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *MovieHTTP) GetMovies(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "movie.get_movies")

	movies, err := h.Svc.ListMovies(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_movies_failed", "status", 404, "reason", "no movies found")
			return echo.NewHTTPError(http.StatusNotFound, "resource not found")
		}
		l.Error("get_movies_failed", "status", 422, "reason", "cannot list movies", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unprocessable")
	}

	l.Info("get_movies_success", "count", len(movies))
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"movies":  movies,
	})
}

func (h *MovieHTTP) CreateMovie(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "movie.create_movie")

	var req transport.CreateMovieRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("movie_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	movie, err := h.Svc.CreateMovie(ctx, req)
	if err != nil {
		l.Warn("movie_create_error", "status", 422, "reason", "validation failed", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unprocessable")
	}

	h.publish(c, map[string]any{
		"type":    "movie_created",
		"movieID": movie.ID,
		"title":   movie.Title,
	})
	l.Info("create_movie_success", "movie_id", movie.ID)
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"movies":  []any{movie},
	})
}

func (h *MovieHTTP) PatchMovie(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "movie.patch_movie")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("movie_patch_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.PatchMovieRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("movie_patch_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	movie, err := h.Svc.PatchMovie(ctx, req, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("movie_patch_error", "status", 404, "reason", "movie not found")
			return echo.NewHTTPError(http.StatusNotFound, "resource not found")
		}
		l.Error("movie_patch_error", "status", 422, "reason", "cannot update movie", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unprocessable")
	}

	h.publish(c, map[string]any{
		"type":    "movie_updated",
		"movieID": movie.ID,
		"title":   movie.Title,
	})
	l.Info("patch_movie_success", "movie_id", movie.ID)
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"movies":  []any{movie},
	})
}

func (h *MovieHTTP) DeleteMovie(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "movie.delete_movie")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("movie_delete_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	deleted, err := h.Svc.DeleteMovie(ctx, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("movie_delete_error", "status", 404, "reason", "movie not found")
			return echo.NewHTTPError(http.StatusNotFound, "resource not found")
		}
		l.Error("movie_delete_error", "status", 422, "reason", "cannot delete movie", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unprocessable")
	}

	h.publish(c, map[string]any{
		"type":    "movie_deleted",
		"movieID": deleted,
	})
	l.Info("delete_movie_success", "movie_id", deleted)
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"deleted": deleted,
	})
}
