package usecases

import (
	"context"

	"phtrs/internal/domain/crew"
	"phtrs/internal/domain/pothole"
	"phtrs/internal/domain/workorder"

	"github.com/stretchr/testify/mock"
)

type mockPotholeRepo struct {
	mock.Mock
}

func (m *mockPotholeRepo) Save(ctx context.Context, p *pothole.Pothole) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPotholeRepo) FindByID(ctx context.Context, id uint) (*pothole.Pothole, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pothole.Pothole), args.Error(1)
}

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

type mockWorkOrderRepo struct {
	mock.Mock
}

func (m *mockWorkOrderRepo) Upsert(ctx context.Context, w *workorder.WorkOrder) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *mockWorkOrderRepo) FindByPotholeID(ctx context.Context, potholeID uint) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, potholeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}
