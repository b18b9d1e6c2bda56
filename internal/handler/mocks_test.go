package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/cmsadmin/internal/database"
	"github.com/osse101/cmsadmin/internal/domain"
)

type MockSitemapService struct {
	mock.Mock
}

func (m *MockSitemapService) GetSitemapEntry(ctx context.Context, root string) (*domain.SitemapEntry, error) {
	args := m.Called(ctx, root)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SitemapEntry), args.Error(1)
}

func (m *MockSitemapService) GetSitemapChildren(ctx context.Context, root string) ([]domain.SitemapEntry, error) {
	args := m.Called(ctx, root)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SitemapEntry), args.Error(1)
}

func (m *MockSitemapService) SaveEntry(ctx context.Context, entry domain.SitemapEntry) (*domain.SitemapEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SitemapEntry), args.Error(1)
}

type MockDatatypeService struct {
	mock.Mock
}

func (m *MockDatatypeService) Add(ctx context.Context, resourceType, extension string) (*domain.ExtensionMapping, error) {
	args := m.Called(ctx, resourceType, extension)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtensionMapping), args.Error(1)
}

func (m *MockDatatypeService) Remove(ctx context.Context, extension string) (bool, error) {
	args := m.Called(ctx, extension)
	return args.Bool(0), args.Error(1)
}

func (m *MockDatatypeService) List(ctx context.Context) ([]domain.ResourceTypeExtensions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResourceTypeExtensions), args.Error(1)
}

func (m *MockDatatypeService) ResourceTypeFor(ctx context.Context, filename string) (string, error) {
	args := m.Called(ctx, filename)
	return args.String(0), args.Error(1)
}

func (m *MockDatatypeService) ResourceTypes() []string {
	return m.Called().Get(0).([]string)
}

type MockPoolRegistry struct {
	mock.Mock
}

func (m *MockPoolRegistry) Names() []string {
	return m.Called().Get(0).([]string)
}

func (m *MockPoolRegistry) Connection(ctx context.Context, poolName string) (database.Conn, error) {
	args := m.Called(ctx, poolName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(database.Conn), args.Error(1)
}
