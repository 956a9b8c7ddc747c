package services

import (
	"context"
	"testing"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) CreateBatch(ctx context.Context, benefitID int64, seniorIDs []int64) ([]*model.Application, error) {
	args := m.Called(ctx, benefitID, seniorIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id int64, status model.Status, rejectionReason *string) (*model.Application, error) {
	args := m.Called(ctx, id, status, rejectionReason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateCategory(ctx context.Context, id int64, category model.Category) (*model.Application, error) {
	args := m.Called(ctx, id, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id int64) (*model.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockApplicationRepository) List(ctx context.Context, f model.ApplicationFilter) ([]*model.ApplicationDetail, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ApplicationDetail), args.Error(1)
}

type MockBenefitReader struct {
	mock.Mock
}

func (m *MockBenefitReader) GetByID(ctx context.Context, id int64) (*model.Benefit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Benefit), args.Error(1)
}

func TestApplicationService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates one pending application per senior", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		benefits := new(MockBenefitReader)
		svc := NewApplicationService(repo, benefits)

		benefits.On("GetByID", ctx, int64(10)).Return(&model.Benefit{ID: 10, Name: "Social Pension"}, nil)
		repo.On("CreateBatch", ctx, int64(10), []int64{1, 2, 3}).Return([]*model.Application{
			{ID: 1, SeniorID: 1, BenefitID: 10, Status: model.StatusPending},
			{ID: 2, SeniorID: 2, BenefitID: 10, Status: model.StatusPending},
			{ID: 3, SeniorID: 3, BenefitID: 10, Status: model.StatusPending},
		}, nil)

		created, err := svc.Submit(ctx, model.ApplicationSubmitRequest{
			BenefitID: 10,
			SeniorIDs: []int64{1, 2, 3},
		})
		require.NoError(t, err)
		assert.Len(t, created, 3)
		repo.AssertExpectations(t)
	})

	t.Run("unknown benefit stops the batch", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		benefits := new(MockBenefitReader)
		svc := NewApplicationService(repo, benefits)

		benefits.On("GetByID", ctx, int64(10)).Return(nil, repository.ErrBenefitNotFound)

		_, err := svc.Submit(ctx, model.ApplicationSubmitRequest{
			BenefitID: 10,
			SeniorIDs: []int64{1},
		})
		assert.ErrorIs(t, err, ErrBenefitNotFound)
		repo.AssertNotCalled(t, "CreateBatch")
	})

	t.Run("empty senior list is rejected up front", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		benefits := new(MockBenefitReader)
		svc := NewApplicationService(repo, benefits)

		_, err := svc.Submit(ctx, model.ApplicationSubmitRequest{BenefitID: 10})
		assert.Error(t, err)
		benefits.AssertNotCalled(t, "GetByID")
	})
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("maps repository not found", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewApplicationService(repo, new(MockBenefitReader))

		repo.On("UpdateStatus", ctx, int64(5), model.StatusApproved, (*string)(nil)).
			Return(nil, repository.ErrApplicationNotFound)

		_, err := svc.UpdateStatus(ctx, model.ApplicationStatusUpdateRequest{
			ApplicationID: 5,
			Status:        model.StatusApproved,
		})
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})

	t.Run("invalid status never reaches the repository", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewApplicationService(repo, new(MockBenefitReader))

		_, err := svc.UpdateStatus(ctx, model.ApplicationStatusUpdateRequest{
			ApplicationID: 5,
			Status:        model.Status("MAYBE"),
		})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "UpdateStatus")
	})
}

func TestApplicationService_UpdateCategory(t *testing.T) {
	ctx := context.Background()
	repo := new(MockApplicationRepository)
	svc := NewApplicationService(repo, new(MockBenefitReader))

	category := model.CategoryNonagenarian
	repo.On("UpdateCategory", ctx, int64(7), category).
		Return(&model.Application{ID: 7, Category: &category}, nil)

	app, err := svc.UpdateCategory(ctx, model.ApplicationCategoryUpdateRequest{
		ApplicationID: 7,
		Category:      category,
	})
	require.NoError(t, err)
	require.NotNil(t, app.Category)
	assert.Equal(t, category, *app.Category)
}
