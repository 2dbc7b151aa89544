package usecases

import (
	"context"

	"phtrs/internal/domain/crew"

	"github.com/stretchr/testify/mock"
)

type mockCrewRepo struct {
	mock.Mock
}

func (m *mockCrewRepo) Save(ctx context.Context, c *crew.RepairCrew) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCrewRepo) FindByID(ctx context.Context, id uint) (*crew.RepairCrew, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crew.RepairCrew), args.Error(1)
}

func (m *mockCrewRepo) FindByName(ctx context.Context, name string) (*crew.RepairCrew, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crew.RepairCrew), args.Error(1)
}

func (m *mockCrewRepo) ListWorkloads(ctx context.Context) ([]crew.Workload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crew.Workload), args.Error(1)
}
