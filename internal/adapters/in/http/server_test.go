package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	catalog_http "catalog/internal/adapters/in/http"
	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCreateCourse struct{ mock.Mock }

func (m *mockCreateCourse) Handle(ctx context.Context, cmd commands.CreateCourseCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockAddModule struct{ mock.Mock }

func (m *mockAddModule) Handle(ctx context.Context, cmd commands.AddModuleCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockUpdateModule struct{ mock.Mock }

func (m *mockUpdateModule) Handle(ctx context.Context, cmd commands.UpdateModuleCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockAddContent struct{ mock.Mock }

func (m *mockAddContent) Handle(ctx context.Context, cmd commands.AddContentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockGetCourseModules struct{ mock.Mock }

func (m *mockGetCourseModules) Handle(
	ctx context.Context,
	query queries.GetCourseModulesQuery,
) ([]queries.GetCourseModulesQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetCourseModulesQueryResponse), args.Error(1)
}

type mockGetModuleContents struct{ mock.Mock }

func (m *mockGetModuleContents) Handle(
	ctx context.Context,
	query queries.GetModuleContentsQuery,
) ([]queries.GetModuleContentsQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetModuleContentsQueryResponse), args.Error(1)
}

type fixture struct {
	e                 *echo.Echo
	createCourse      *mockCreateCourse
	addModule         *mockAddModule
	updateModule      *mockUpdateModule
	addContent        *mockAddContent
	getCourseModules  *mockGetCourseModules
	getModuleContents *mockGetModuleContents
}

func newFixture() *fixture {
	f := &fixture{
		e:                 echo.New(),
		createCourse:      new(mockCreateCourse),
		addModule:         new(mockAddModule),
		updateModule:      new(mockUpdateModule),
		addContent:        new(mockAddContent),
		getCourseModules:  new(mockGetCourseModules),
		getModuleContents: new(mockGetModuleContents),
	}
	server := catalog_http.NewServer(catalog_http.Handlers{
		CreateCourse:      f.createCourse,
		AddModule:         f.addModule,
		UpdateModule:      f.updateModule,
		AddContent:        f.addContent,
		GetCourseModules:  f.getCourseModules,
		GetModuleContents: f.getModuleContents,
	}, nil)
	server.Register(f.e)
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := newFixture().do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture()
	f.do(http.MethodGet, "/health", "")

	rec := f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalog_http_requests_total")
}

func TestCreateCourse(t *testing.T) {
	f := newFixture()
	f.createCourse.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateCourseCommand) bool {
		return cmd.Title() == "Go" && cmd.Overview() == "All about Go"
	})).Return(nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/courses", `{"title":"Go","overview":"All about Go"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp catalog_http.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, err := kernel.UUIDFromString(resp.ID)
	require.NoError(t, err)
	f.createCourse.AssertExpectations(t)
}

func TestCreateCourse_ValidationFailed(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPost, "/api/v1/courses", `{"overview":"no title"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
	f.createCourse.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestAddModule_PositionIsOptional(t *testing.T) {
	f := newFixture()
	courseID := kernel.NewUUID()
	f.addModule.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AddModuleCommand) bool {
		return cmd.CourseID() == courseID && !cmd.Position().IsSet()
	})).Return(nil).Once()
	f.addModule.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AddModuleCommand) bool {
		return cmd.CourseID() == courseID && cmd.Position().IsSet() && cmd.Position().Int() == 0
	})).Return(nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/courses/"+courseID.String()+"/modules", `{"title":"Basics"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/courses/"+courseID.String()+"/modules", `{"title":"Intro","position":0}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	f.addModule.AssertExpectations(t)
}

func TestAddModule_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown course", errs.NewObjectNotFoundError("course", "x"), http.StatusNotFound},
		{"taken position", errs.NewConflictError("position"), http.StatusConflict},
		{"domain validation", errs.NewValueIsRequiredError("title"), http.StatusBadRequest},
		{"database down", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.addModule.On("Handle", mock.Anything, mock.Anything).Return(tt.err).Once()

			rec := f.do(http.MethodPost, "/api/v1/courses/"+kernel.NewUUID().String()+"/modules", `{"title":"Basics"}`)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
			}
		})
	}
}

func TestAddModule_RejectsNegativePositionAndBadID(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPost, "/api/v1/courses/"+kernel.NewUUID().String()+"/modules", `{"title":"Basics","position":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/courses/not-a-uuid/modules", `{"title":"Basics"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.addModule.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestGetCourseModules(t *testing.T) {
	f := newFixture()
	courseID := kernel.NewUUID()
	rows := []queries.GetCourseModulesQueryResponse{
		{ID: kernel.NewUUID(), CourseID: courseID, Title: "First", Position: 0},
		{ID: kernel.NewUUID(), CourseID: courseID, Title: "Second", Position: 1},
	}
	f.getCourseModules.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetCourseModulesQuery) bool {
		return q.CourseID() == courseID
	})).Return(rows, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/courses/"+courseID.String()+"/modules", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []catalog_http.ModuleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "First", resp[0].Title)
	assert.Equal(t, 1, resp[1].Position)
	assert.Equal(t, courseID.String(), resp[1].CourseID)
}

func TestUpdateModule(t *testing.T) {
	f := newFixture()
	moduleID := kernel.NewUUID()
	f.updateModule.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateModuleCommand) bool {
		return cmd.ModuleID() == moduleID && cmd.Title() == "Renamed"
	})).Return(nil).Once()

	rec := f.do(http.MethodPatch, "/api/v1/modules/"+moduleID.String(), `{"title":"Renamed"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	f.updateModule.AssertExpectations(t)
}

func TestAddContent(t *testing.T) {
	f := newFixture()
	moduleID := kernel.NewUUID()
	f.addContent.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/modules/"+moduleID.String()+"/contents",
		`{"kind":"video","title":"Intro","body":"https://cdn.example.com/intro.mp4"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/modules/"+moduleID.String()+"/contents",
		`{"kind":"podcast","title":"Intro","body":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.addContent.AssertExpectations(t)
}

func TestGetModuleContents_NotFound(t *testing.T) {
	f := newFixture()
	f.getModuleContents.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("module", "x")).Once()

	rec := f.do(http.MethodGet, "/api/v1/modules/"+kernel.NewUUID().String()+"/contents", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
