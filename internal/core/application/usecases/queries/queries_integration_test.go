package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "catalog/internal/adapters/out/postgres"
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/core/domain/model/content"
	"catalog/internal/core/domain/model/course"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/module"
	"catalog/internal/core/ports"
	"catalog/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, nil, nil)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// SetupTest recreates the schema since some tests drop the unique indexes.
func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("DROP TABLE IF EXISTS courses, modules, contents").Error)
	suite.Require().NoError(postgres_adapter.Migrate(suite.db))
}

func (suite *QueriesIntegrationTestSuite) TestGetCourseModules_OrderedByPosition() {
	ctx := context.Background()
	c := suite.addCourse()

	third := suite.addModule(c.ID(), intPtr(2), "Third")
	first := suite.addModule(c.ID(), intPtr(0), "First")
	second := suite.addModule(c.ID(), intPtr(1), "Second")
	suite.addModule(suite.addCourse().ID(), nil, "Other course")

	query, err := queries.NewGetCourseModulesQuery(c.ID())
	suite.Require().NoError(err)

	result, err := queries.NewGetCourseModulesQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal(first.ID(), result[0].ID)
	suite.Equal(second.ID(), result[1].ID)
	suite.Equal(third.ID(), result[2].ID)
	suite.Equal([]int{0, 1, 2}, []int{result[0].Position, result[1].Position, result[2].Position})
	suite.Equal("Second", result[1].Title)
}

func (suite *QueriesIntegrationTestSuite) TestGetCourseModules_EmptyCourse() {
	c := suite.addCourse()
	query, _ := queries.NewGetCourseModulesQuery(c.ID())

	result, err := queries.NewGetCourseModulesQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueriesIntegrationTestSuite) TestGetCourseModules_UnknownCourse() {
	query, _ := queries.NewGetCourseModulesQuery(kernel.NewUUID())

	_, err := queries.NewGetCourseModulesQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetCourseModules_InvalidQuery() {
	result, err := queries.NewGetCourseModulesQueryHandler(suite.db).Handle(context.Background(), queries.GetCourseModulesQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetCourseModulesQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *QueriesIntegrationTestSuite) TestGetModuleContents_OrderedByPosition() {
	ctx := context.Background()
	m := suite.addModule(suite.addCourse().ID(), nil, "Module")

	video, err := content.NewContent(kernel.NewUUID(), m.ID(), content.Video, "Intro", "https://cdn.example.com/a.mp4", kernel.Position{})
	suite.Require().NoError(err)
	text, err := content.NewContent(kernel.NewUUID(), m.ID(), content.Text, "Notes", "Read this", kernel.Position{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().ContentRepository().Add(ctx, video))
	suite.Require().NoError(suite.factory.Create().ContentRepository().Add(ctx, text))

	query, _ := queries.NewGetModuleContentsQuery(m.ID())
	result, err := queries.NewGetModuleContentsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(video.ID(), result[0].ID)
	suite.Equal("video", result[0].Kind)
	suite.Equal(0, result[0].Position)
	suite.Equal("text", result[1].Kind)
	suite.Equal(1, result[1].Position)
}

func (suite *QueriesIntegrationTestSuite) TestGetModuleContents_UnknownModule() {
	query, _ := queries.NewGetModuleContentsQuery(kernel.NewUUID())

	_, err := queries.NewGetModuleContentsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestFindPositionConflicts_CleanData() {
	c := suite.addCourse()
	suite.addModule(c.ID(), nil, "A")
	suite.addModule(c.ID(), nil, "B")

	result, err := queries.NewFindPositionConflictsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewFindPositionConflictsQuery())
	suite.Require().NoError(err)
	suite.Empty(result.Duplicates)
	suite.Empty(result.Gaps)
}

func (suite *QueriesIntegrationTestSuite) TestFindPositionConflicts_ReportsGaps() {
	c := suite.addCourse()
	suite.addModule(c.ID(), nil, "A")
	suite.addModule(c.ID(), intPtr(4), "B")

	result, err := queries.NewFindPositionConflictsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewFindPositionConflictsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result.Gaps, 1)

	gap := result.Gaps[0]
	suite.Equal(module.Model, gap.Model)
	suite.Equal(c.ID().String(), gap.Scope)
	suite.Equal(4, gap.MaxPosition)
	suite.Equal(3, gap.Missing)
	suite.Equal(3, result.GapCount(module.Model))
	suite.Equal(0, result.GapCount(content.Model))
}

func (suite *QueriesIntegrationTestSuite) TestFindPositionConflicts_ReportsDuplicates() {
	c := suite.addCourse()
	suite.Require().NoError(suite.db.Exec("DROP INDEX idx_modules_course_position").Error)

	suite.addModule(c.ID(), intPtr(0), "A")
	suite.addModule(c.ID(), intPtr(0), "B")
	suite.addModule(c.ID(), intPtr(0), "C")
	suite.addModule(c.ID(), intPtr(1), "D")

	result, err := queries.NewFindPositionConflictsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewFindPositionConflictsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result.Duplicates, 1)

	dup := result.Duplicates[0]
	suite.Equal(module.Model, dup.Model)
	suite.Equal(c.ID().String(), dup.Scope)
	suite.Equal(0, dup.Position)
	suite.Equal(3, dup.Count)
	suite.Equal(2, result.DuplicateCount(module.Model))
	suite.Empty(result.Gaps)
}

func (suite *QueriesIntegrationTestSuite) addCourse() *course.Course {
	c, err := course.NewCourse(kernel.NewUUID(), "Course", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().CourseRepository().Add(context.Background(), c))
	return c
}

func (suite *QueriesIntegrationTestSuite) addModule(courseID kernel.UUID, position *int, title string) *module.Module {
	p, err := kernel.PositionFromPtr(position)
	suite.Require().NoError(err)
	m, err := module.NewModule(kernel.NewUUID(), courseID, title, "", p)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().ModuleRepository().Add(context.Background(), m))
	return m
}

func intPtr(v int) *int { return &v }

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
