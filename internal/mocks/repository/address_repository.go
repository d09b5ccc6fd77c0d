package repository

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAddressRepository struct {
	mock.Mock
}

func NewMockAddressRepository(t *testing.T) *MockAddressRepository {
	m := &MockAddressRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAddressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockAddressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	args := m.Called(ctx, id)
	address, _ := args.Get(0).(*entity.Address)

	return address, args.Error(1)
}

func (m *MockAddressRepository) FindAddressesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	args := m.Called(ctx, userID)
	addresses, _ := args.Get(0).([]*entity.Address)

	return addresses, args.Error(1)
}
