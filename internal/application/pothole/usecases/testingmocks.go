package usecases

import (
	"context"

	"phtrs/internal/domain/pothole"
	"phtrs/internal/domain/stats"

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

type mockDamageRepo struct {
	mock.Mock
}

func (m *mockDamageRepo) Save(ctx context.Context, d *pothole.Damage) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDamageRepo) FindByPotholeID(ctx context.Context, potholeID uint) ([]*pothole.Damage, error) {
	args := m.Called(ctx, potholeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pothole.Damage), args.Error(1)
}

type mockQueryRepo struct {
	mock.Mock
}

func (m *mockQueryRepo) List(ctx context.Context, filter pothole.ListFilter) ([]pothole.Summary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pothole.Summary), args.Error(1)
}

func (m *mockQueryRepo) Detail(ctx context.Context, id uint) (*pothole.Detail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pothole.Detail), args.Error(1)
}

type mockStatsRepo struct {
	mock.Mock
}

func (m *mockStatsRepo) Totals(ctx context.Context) (*stats.Totals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.Totals), args.Error(1)
}

func (m *mockStatsRepo) ByDistrict(ctx context.Context) ([]stats.DistrictRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stats.DistrictRow), args.Error(1)
}

func (m *mockStatsRepo) WorkOrders(ctx context.Context) ([]stats.WorkOrderRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stats.WorkOrderRow), args.Error(1)
}

func (m *mockStatsRepo) Damages(ctx context.Context, potholeID *uint) ([]stats.DamageRow, error) {
	args := m.Called(ctx, potholeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stats.DamageRow), args.Error(1)
}

func (m *mockStatsRepo) Crews(ctx context.Context) ([]stats.CrewRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stats.CrewRow), args.Error(1)
}
