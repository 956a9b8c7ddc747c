package services

import (
	"context"
	"testing"
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReportSeniorReader struct {
	mock.Mock
}

func (m *MockReportSeniorReader) List(ctx context.Context, f model.SeniorFilter) ([]*model.Senior, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Senior), args.Error(1)
}

func (m *MockReportSeniorReader) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportSeniorReader) CountReleased(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockApplicationCounter struct {
	mock.Mock
}

func (m *MockApplicationCounter) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockFundReader struct {
	mock.Mock
}

func (m *MockFundReader) GetFund(ctx context.Context) (*model.GovernmentFund, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GovernmentFund), args.Error(1)
}

type MockTransactionSummer struct {
	mock.Mock
}

func (m *MockTransactionSummer) SumByStatus(ctx context.Context, status model.TransactionStatus) (float64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(float64), args.Error(1)
}

func reportSeniors() []*model.Senior {
	return []*model.Senior{
		{ID: 1, Age: "65", Gender: "female", Barangay: "Poblacion", CreatedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Age: "82", Gender: "male", Barangay: "Poblacion", CreatedAt: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Age: "91", Gender: "female", Barangay: "San Roque", CreatedAt: time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)},
		{ID: 4, Age: "101", Gender: "male", Barangay: "San Roque", CreatedAt: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 5, Age: "not-a-number", Gender: "female", Barangay: "San Roque", CreatedAt: time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC)},
	}
}

func TestReportService_CategoryCounts(t *testing.T) {
	ctx := context.Background()
	seniors := new(MockReportSeniorReader)
	svc := NewReportService(seniors, new(MockApplicationCounter), new(MockFundReader), new(MockTransactionSummer))

	seniors.On("List", ctx, model.SeniorFilter{}).Return(reportSeniors(), nil)

	counts, err := svc.CategoryCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 4)

	byCategory := make(map[model.Category]int)
	for _, c := range counts {
		byCategory[c.Category] = c.Count
	}
	// the unparseable age is skipped, not counted anywhere
	assert.Equal(t, 1, byCategory[model.CategoryRegular])
	assert.Equal(t, 1, byCategory[model.CategoryOctogenarian])
	assert.Equal(t, 1, byCategory[model.CategoryNonagenarian])
	assert.Equal(t, 1, byCategory[model.CategoryCentenarian])
}

func TestReportService_BarangayDistribution(t *testing.T) {
	ctx := context.Background()
	seniors := new(MockReportSeniorReader)
	svc := NewReportService(seniors, new(MockApplicationCounter), new(MockFundReader), new(MockTransactionSummer))

	seniors.On("List", ctx, model.SeniorFilter{}).Return(reportSeniors(), nil)

	dist, err := svc.BarangayDistribution(ctx)
	require.NoError(t, err)
	require.Len(t, dist, 2)

	// sorted by barangay name
	assert.Equal(t, "Poblacion", dist[0].Barangay)
	assert.Equal(t, 2, dist[0].Total)
	assert.Equal(t, "San Roque", dist[1].Barangay)
	assert.Equal(t, 2, dist[1].Total) // bad-age senior excluded
	assert.Equal(t, 1, dist[1].Counts[string(model.CategoryNonagenarian)])
}

func TestReportService_AgeDistribution(t *testing.T) {
	ctx := context.Background()
	seniors := new(MockReportSeniorReader)
	svc := NewReportService(seniors, new(MockApplicationCounter), new(MockFundReader), new(MockTransactionSummer))

	seniors.On("List", ctx, model.SeniorFilter{}).Return(reportSeniors(), nil)

	bins, err := svc.AgeDistribution(ctx)
	require.NoError(t, err)
	require.Len(t, bins, 6)

	assert.Equal(t, "65-69", bins[1].Label)
	assert.Equal(t, 1, bins[1].Female)
	assert.Equal(t, "80-84", bins[4].Label)
	assert.Equal(t, 1, bins[4].Male)
	assert.Equal(t, "85+", bins[5].Label)
	assert.Equal(t, 1, bins[5].Female)
	assert.Equal(t, 1, bins[5].Male)
}

func TestReportService_RegistrationTrend(t *testing.T) {
	ctx := context.Background()
	seniors := new(MockReportSeniorReader)
	svc := NewReportService(seniors, new(MockApplicationCounter), new(MockFundReader), new(MockTransactionSummer))

	seniors.On("List", ctx, model.SeniorFilter{}).Return(reportSeniors(), nil)

	t.Run("monthly", func(t *testing.T) {
		points, err := svc.RegistrationTrend(ctx, false)
		require.NoError(t, err)
		require.Len(t, points, 3)
		assert.Equal(t, "2025-12", points[0].Period)
		assert.Equal(t, "2026-01", points[1].Period)
		assert.Equal(t, 2, points[1].Count)
		assert.Equal(t, "2026-02", points[2].Period)
	})

	t.Run("yearly", func(t *testing.T) {
		points, err := svc.RegistrationTrend(ctx, true)
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, "2025", points[0].Period)
		assert.Equal(t, 1, points[0].Count)
		assert.Equal(t, "2026", points[1].Period)
		assert.Equal(t, 4, points[1].Count)
	})
}

func TestReportService_Stats(t *testing.T) {
	ctx := context.Background()
	seniors := new(MockReportSeniorReader)
	applications := new(MockApplicationCounter)
	fund := new(MockFundReader)
	txns := new(MockTransactionSummer)
	svc := NewReportService(seniors, applications, fund, txns)

	seniors.On("CountActive", ctx).Return(int64(120), nil)
	seniors.On("CountReleased", ctx).Return(int64(30), nil)
	applications.On("CountByStatus", ctx, model.StatusPending).Return(int64(12), nil)
	applications.On("CountByStatus", ctx, model.StatusApproved).Return(int64(40), nil)
	applications.On("CountByStatus", ctx, model.StatusReject).Return(int64(3), nil)
	fund.On("GetFund", ctx).Return(&model.GovernmentFund{CurrentBalance: 250000}, nil)
	txns.On("SumByStatus", ctx, model.TransactionReleased).Return(float64(42000), nil)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalSeniors)
	assert.Equal(t, int64(12), stats.PendingApplications)
	assert.Equal(t, int64(40), stats.ApprovedApplications)
	assert.Equal(t, int64(3), stats.RejectedApplications)
	assert.Equal(t, int64(30), stats.ReleasedSeniors)
	assert.Equal(t, float64(250000), stats.FundBalance)
	assert.Equal(t, float64(42000), stats.ReleasedFundTotal)
}
