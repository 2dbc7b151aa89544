package usecases

import (
	"context"

	"phtrs/internal/domain/stats"

	"github.com/stretchr/testify/mock"
)

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
