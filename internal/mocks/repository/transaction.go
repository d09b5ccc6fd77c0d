// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// FakeTransactionManager runs the callback against Factory without a database.
// The callback's error is returned as is, mirroring a rolled back transaction.
type FakeTransactionManager struct {
	Factory repository.RepositoryFactory
	Calls   int
}

func NewFakeTransactionManager(factory repository.RepositoryFactory) *FakeTransactionManager {
	return &FakeTransactionManager{Factory: factory}
}

func (m *FakeTransactionManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	m.Calls++

	return fn(m.Factory)
}

// StubRepositoryFactory hands out the repositories it was built with.
type StubRepositoryFactory struct {
	Users         repository.UserRepository
	Addresses     repository.AddressRepository
	RefreshTokens repository.RefreshTokenRepository
	Products      repository.ProductRepository
	Categories    repository.CategoryRepository
	Carts         repository.CartRepository
	Orders        repository.OrderRepository
}

func (f *StubRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.Users
}

func (f *StubRepositoryFactory) NewAddressRepository() repository.AddressRepository {
	return f.Addresses
}

func (f *StubRepositoryFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return f.RefreshTokens
}

func (f *StubRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return f.Products
}

func (f *StubRepositoryFactory) NewCategoryRepository() repository.CategoryRepository {
	return f.Categories
}

func (f *StubRepositoryFactory) NewCartRepository() repository.CartRepository {
	return f.Carts
}

func (f *StubRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.Orders
}

// MockTransactionManager records Execute calls. Tests decide through Run whether the callback runs.
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}
