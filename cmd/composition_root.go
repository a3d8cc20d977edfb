package cmd

import (
	"errors"
	"log/slog"

	catalog_http "catalog/internal/adapters/in/http"
	"catalog/internal/adapters/out/postgres"
	"catalog/internal/adapters/out/postgres/positionrepo"
	"catalog/internal/adapters/out/redislock"
	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var ErrRedisClientIsRequired = errors.New("redis client is required for the redis scope lock")

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	config     Config
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. rc may be nil unless
// cfg.OrderingLock is LockRedis.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, rc redis.UniversalClient, logger *slog.Logger) (CompositionRoot, error) {
	locker, err := newScopeLocker(cfg, rc)
	if err != nil {
		return CompositionRoot{}, err
	}

	logger.Info("Scope lock configured", "mode", cfg.OrderingLock)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, locker, logger),
		config:     cfg,
		logger:     logger,
	}, nil
}

func newScopeLocker(cfg Config, rc redis.UniversalClient) (positionrepo.ScopeLocker, error) {
	switch cfg.OrderingLock {
	case LockRedis:
		if rc == nil {
			return nil, ErrRedisClientIsRequired
		}
		return redislock.NewLocker(rc,
			redislock.WithTTL(cfg.RedisLockTTL),
			redislock.WithMaxWait(cfg.RedisLockTTL),
		), nil
	case LockNone:
		return positionrepo.NoopLocker{}, nil
	default:
		return positionrepo.NewAdvisoryLocker(), nil
	}
}

func (c *CompositionRoot) CreateCreateCourseCommandHandler() *commands.CreateCourseCommandHandler {
	var f commands.CourseUoWFactory = FuncCourseUoWFactory(func() commands.CourseUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateCourseCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateAddModuleCommandHandler() *commands.AddModuleCommandHandler {
	h := commands.NewAddModuleCommandHandler(c.moduleUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateModuleCommandHandler() *commands.UpdateModuleCommandHandler {
	h := commands.NewUpdateModuleCommandHandler(c.moduleUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAddContentCommandHandler() *commands.AddContentCommandHandler {
	var f commands.ContentUoWFactory = FuncContentUoWFactory(func() commands.ContentUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewAddContentCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateGetCourseModulesQueryHandler() queries.GetCourseModulesQueryHandler {
	return queries.NewGetCourseModulesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetModuleContentsQueryHandler() queries.GetModuleContentsQueryHandler {
	return queries.NewGetModuleContentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindPositionConflictsQueryHandler() queries.FindPositionConflictsQueryHandler {
	return queries.NewFindPositionConflictsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *catalog_http.Server {
	return catalog_http.NewServer(catalog_http.Handlers{
		CreateCourse:      c.CreateCreateCourseCommandHandler(),
		AddModule:         c.CreateAddModuleCommandHandler(),
		UpdateModule:      c.CreateUpdateModuleCommandHandler(),
		AddContent:        c.CreateAddContentCommandHandler(),
		GetCourseModules:  c.CreateGetCourseModulesQueryHandler(),
		GetModuleContents: c.CreateGetModuleContentsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateFindPositionConflictsQueryHandler(),
		c.config.PositionAuditCron,
		postgres.OrderedModels,
		c.logger,
	)
}

func (c *CompositionRoot) moduleUoWFactory() commands.ModuleUoWFactory {
	return FuncModuleUoWFactory(func() commands.ModuleUoW {
		return c.uowFactory.Create()
	})
}

type FuncCourseUoWFactory func() commands.CourseUoW

func (f FuncCourseUoWFactory) Create() commands.CourseUoW {
	return f()
}

type FuncModuleUoWFactory func() commands.ModuleUoW

func (f FuncModuleUoWFactory) Create() commands.ModuleUoW {
	return f()
}

type FuncContentUoWFactory func() commands.ContentUoW

func (f FuncContentUoWFactory) Create() commands.ContentUoW {
	return f()
}
