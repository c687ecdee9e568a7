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

type ActorHTTP struct {
	Svc      *service.ActorService
	Producer *events.Producer
}

func (h *ActorHTTP) publish(c echo.Context, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.Publish(ctx, "actors", event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *ActorHTTP) GetActors(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "actor.get_actors")

	actors, err := h.Svc.ListActors(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_actors_failed", "status", 404, "reason", "no actors found")
			return echo.NewHTTPError(http.StatusNotFound, "resource not found")
		}
		l.Error("get_actors_failed", "status", 422, "reason", "cannot list actors", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unprocessable")
	}

	l.Info("get_actors_success", "count", len(actors))
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"actors":  actors,
	})
}

func (h *ActorHTTP) CreateActor(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "actor.create_actor")

	var req transport.CreateActorRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("actor_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	actor, err := h.Svc.CreateActor(ctx, req)
	if err != nil {
		l.Warn("actor_create_error", "status", 422, "reason", "validation failed", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unprocessable")
	}

	h.publish(c, map[string]any{
		"type":    "actor_created",
		"actorID": actor.ID,
		"name":    actor.Name,
	})
	l.Info("create_actor_success", "actor_id", actor.ID)
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"actors":  []any{actor},
	})
}

func (h *ActorHTTP) PatchActor(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "actor.patch_actor")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("actor_patch_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.PatchActorRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("actor_patch_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	actor, err := h.Svc.PatchActor(ctx, req, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("actor_patch_error", "status", 404, "reason", "actor not found")
			return echo.NewHTTPError(http.StatusNotFound, "resource not found")
		}
		l.Error("actor_patch_error", "status", 422, "reason", "cannot update actor", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unprocessable")
	}

	h.publish(c, map[string]any{
		"type":    "actor_updated",
		"actorID": actor.ID,
		"name":    actor.Name,
	})
	l.Info("patch_actor_success", "actor_id", actor.ID)
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"actors":  []any{actor},
	})
}

func (h *ActorHTTP) DeleteActor(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "actor.delete_actor")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("actor_delete_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	deleted, err := h.Svc.DeleteActor(ctx, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("actor_delete_error", "status", 404, "reason", "actor not found")
			return echo.NewHTTPError(http.StatusNotFound, "resource not found")
		}
		l.Error("actor_delete_error", "status", 422, "reason", "cannot delete actor", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unprocessable")
	}

	h.publish(c, map[string]any{
		"type":    "actor_deleted",
		"actorID": deleted,
	})
	l.Info("delete_actor_success", "actor_id", deleted)
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"deleted": deleted,
	})
}
