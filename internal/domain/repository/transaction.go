// Package repository declares the persistence contracts the usecases depend on.
// Implementations live in infra/persistence and translate driver errors into the sentinels declared here.
package repository

import "context"

// TransactionManager runs a unit of work atomically. Checkout, registration and order status
// updates each go through a single Execute call.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Repositories obtained
	// from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewAddressRepository() AddressRepository
	NewRefreshTokenRepository() RefreshTokenRepository
	NewProductRepository() ProductRepository
	NewCategoryRepository() CategoryRepository
	NewCartRepository() CartRepository
	NewOrderRepository() OrderRepository
}
