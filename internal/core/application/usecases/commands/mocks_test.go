package commands_test

import (
	"context"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/domain/model/content"
	"catalog/internal/core/domain/model/course"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/module"
	"catalog/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCourseRepository struct{ mock.Mock }

func (m *MockCourseRepository) Add(ctx context.Context, c *course.Course) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourseRepository) Get(ctx context.Context, id kernel.UUID) (*course.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*course.Course), args.Error(1)
}

type MockModuleRepository struct{ mock.Mock }

func (m *MockModuleRepository) Add(ctx context.Context, md *module.Module) error {
	args := m.Called(ctx, md)
	return args.Error(0)
}

func (m *MockModuleRepository) Update(ctx context.Context, md *module.Module) error {
	args := m.Called(ctx, md)
	return args.Error(0)
}

func (m *MockModuleRepository) Get(ctx context.Context, id kernel.UUID) (*module.Module, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*module.Module), args.Error(1)
}

type MockContentRepository struct{ mock.Mock }

func (m *MockContentRepository) Add(ctx context.Context, c *content.Content) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContentRepository) Get(ctx context.Context, id kernel.UUID) (*content.Content, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Content), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CourseRepository() ports.CourseRepository {
	args := m.Called()
	return args.Get(0).(ports.CourseRepository)
}

func (m *MockUoW) ModuleRepository() ports.ModuleRepository {
	args := m.Called()
	return args.Get(0).(ports.ModuleRepository)
}

func (m *MockUoW) ContentRepository() ports.ContentRepository {
	args := m.Called()
	return args.Get(0).(ports.ContentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) create() *MockUoW {
	args := m.Called()
	return args.Get(0).(*MockUoW)
}

type courseFactory struct{ *MockUoWFactory }

func (f courseFactory) Create() commands.CourseUoW { return f.create() }

type moduleFactory struct{ *MockUoWFactory }

func (f moduleFactory) Create() commands.ModuleUoW { return f.create() }

type contentFactory struct{ *MockUoWFactory }

func (f contentFactory) Create() commands.ContentUoW { return f.create() }
