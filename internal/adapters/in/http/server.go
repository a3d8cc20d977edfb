// Package http exposes the catalog commands and queries over a JSON API
// served by echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/core/domain/model/kernel"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type (
	CreateCourseHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCourseCommand) error
	}
	AddModuleHandler interface {
		Handle(ctx context.Context, cmd commands.AddModuleCommand) error
	}
	UpdateModuleHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateModuleCommand) error
	}
	AddContentHandler interface {
		Handle(ctx context.Context, cmd commands.AddContentCommand) error
	}
	GetCourseModulesHandler interface {
		Handle(ctx context.Context, query queries.GetCourseModulesQuery) ([]queries.GetCourseModulesQueryResponse, error)
	}
	GetModuleContentsHandler interface {
		Handle(ctx context.Context, query queries.GetModuleContentsQuery) ([]queries.GetModuleContentsQueryResponse, error)
	}
)

// Handlers bundles the use cases the server dispatches to.
type Handlers struct {
	CreateCourse      CreateCourseHandler
	AddModule         AddModuleHandler
	UpdateModule      UpdateModuleHandler
	AddContent        AddContentHandler
	GetCourseModules  GetCourseModulesHandler
	GetModuleContents GetModuleContentsHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	validate *validator.Validate
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		handlers: handlers,
		validate: validator.New(),
		logger:   logger.With("component", "http"),
	}
}

// Register mounts health, metrics and the v1 API on e.
func (s *Server) Register(e *echo.Echo) {
	e.Use(MetricsMiddleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.POST("/courses", s.CreateCourse)
	v1.POST("/courses/:id/modules", s.AddModule)
	v1.GET("/courses/:id/modules", s.GetCourseModules)
	v1.PATCH("/modules/:id", s.UpdateModule)
	v1.POST("/modules/:id/contents", s.AddContent)
	v1.GET("/modules/:id/contents", s.GetModuleContents)
}

// CreateCourse handles POST /api/v1/courses.
func (s *Server) CreateCourse(ctx echo.Context) error {
	var req CreateCourseRequest
	if ok, err := s.bindAndValidate(ctx, &req); !ok {
		return err
	}

	cmd, err := commands.NewCreateCourseCommand(kernel.NewUUID(), req.Title, req.Overview)
	if err != nil {
		return s.badRequest(ctx, "Invalid course data", err.Error())
	}

	if err = s.handlers.CreateCourse.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to create course")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.CourseID().String()})
}

// AddModule handles POST /api/v1/courses/:id/modules.
func (s *Server) AddModule(ctx echo.Context) error {
	courseID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid course id", err.Error())
	}

	var req AddModuleRequest
	if ok, bindErr := s.bindAndValidate(ctx, &req); !ok {
		return bindErr
	}

	cmd, err := commands.NewAddModuleCommand(kernel.NewUUID(), courseID, req.Title, req.Description, req.Position)
	if err != nil {
		return s.badRequest(ctx, "Invalid module data", err.Error())
	}

	if err = s.handlers.AddModule.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to add module")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.ModuleID().String()})
}

// GetCourseModules handles GET /api/v1/courses/:id/modules.
func (s *Server) GetCourseModules(ctx echo.Context) error {
	courseID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid course id", err.Error())
	}

	query, err := queries.NewGetCourseModulesQuery(courseID)
	if err != nil {
		return s.badRequest(ctx, "Invalid course id", err.Error())
	}

	modules, err := s.handlers.GetCourseModules.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve modules")
	}

	response := make([]ModuleResponse, len(modules))
	for i, m := range modules {
		response[i] = ModuleResponse{
			ID:          m.ID.String(),
			CourseID:    m.CourseID.String(),
			Title:       m.Title,
			Description: m.Description,
			Position:    m.Position,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateModule handles PATCH /api/v1/modules/:id.
func (s *Server) UpdateModule(ctx echo.Context) error {
	moduleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid module id", err.Error())
	}

	var req UpdateModuleRequest
	if ok, bindErr := s.bindAndValidate(ctx, &req); !ok {
		return bindErr
	}

	cmd, err := commands.NewUpdateModuleCommand(moduleID, req.Title, req.Description)
	if err != nil {
		return s.badRequest(ctx, "Invalid module data", err.Error())
	}

	if err = s.handlers.UpdateModule.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to update module")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddContent handles POST /api/v1/modules/:id/contents.
func (s *Server) AddContent(ctx echo.Context) error {
	moduleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid module id", err.Error())
	}

	var req AddContentRequest
	if ok, bindErr := s.bindAndValidate(ctx, &req); !ok {
		return bindErr
	}

	cmd, err := commands.NewAddContentCommand(kernel.NewUUID(), moduleID, req.Kind, req.Title, req.Body, req.Position)
	if err != nil {
		return s.badRequest(ctx, "Invalid content data", err.Error())
	}

	if err = s.handlers.AddContent.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to add content")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.ContentID().String()})
}

// GetModuleContents handles GET /api/v1/modules/:id/contents.
func (s *Server) GetModuleContents(ctx echo.Context) error {
	moduleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid module id", err.Error())
	}

	query, err := queries.NewGetModuleContentsQuery(moduleID)
	if err != nil {
		return s.badRequest(ctx, "Invalid module id", err.Error())
	}

	contents, err := s.handlers.GetModuleContents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve contents")
	}

	response := make([]ContentResponse, len(contents))
	for i, c := range contents {
		response[i] = ContentResponse{
			ID:       c.ID.String(),
			ModuleID: c.ModuleID.String(),
			Kind:     c.Kind,
			Title:    c.Title,
			Body:     c.Body,
			Position: c.Position,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
