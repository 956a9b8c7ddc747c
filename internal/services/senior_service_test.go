package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSeniorRepository struct {
	mock.Mock
}

func (m *MockSeniorRepository) Create(ctx context.Context, s *model.Senior) (*model.Senior, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Senior), args.Error(1)
}

func (m *MockSeniorRepository) Update(ctx context.Context, s *model.Senior) (*model.Senior, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Senior), args.Error(1)
}

func (m *MockSeniorRepository) GetByID(ctx context.Context, id int64) (*model.Senior, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Senior), args.Error(1)
}

func (m *MockSeniorRepository) List(ctx context.Context, f model.SeniorFilter) ([]*model.Senior, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Senior), args.Error(1)
}

func (m *MockSeniorRepository) ListReleased(ctx context.Context) ([]*model.Senior, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Senior), args.Error(1)
}

func (m *MockSeniorRepository) ListArchived(ctx context.Context) ([]*model.Senior, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Senior), args.Error(1)
}

func (m *MockSeniorRepository) Archive(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSeniorRepository) Restore(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSeniorRepository) Release(ctx context.Context, id int64, effectiveAt time.Time) (*model.Senior, error) {
	args := m.Called(ctx, id, effectiveAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Senior), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func validCreateRequest() model.SeniorCreateRequest {
	return model.SeniorCreateRequest{
		FirstName: "Maria",
		LastName:  "Reyes",
		Contact:   "maria@example.com",
		Barangay:  "Poblacion",
		Age:       "72",
		Gender:    "female",
	}
}

func TestSeniorService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with pending remark and mails confirmation", func(t *testing.T) {
		repo := new(MockSeniorRepository)
		mailer := new(MockMailer)
		svc := NewSeniorService(repo, mailer, 0)

		repo.On("Create", ctx, mock.MatchedBy(func(s *model.Senior) bool {
			return s.Remarks == model.RemarkPending
		})).Return(&model.Senior{ID: 1, FirstName: "Maria", LastName: "Reyes", Contact: "maria@example.com"}, nil)
		mailer.On("Send", ctx, "maria@example.com", mock.Anything, mock.Anything).Return(nil)

		created, err := svc.Register(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)

		repo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("mail failure does not fail the registration", func(t *testing.T) {
		repo := new(MockSeniorRepository)
		mailer := new(MockMailer)
		svc := NewSeniorService(repo, mailer, 0)

		repo.On("Create", ctx, mock.Anything).
			Return(&model.Senior{ID: 2, Contact: "x@example.com"}, nil)
		mailer.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("provider down"))

		created, err := svc.Register(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(2), created.ID)
	})

	t.Run("validation rejects missing fields", func(t *testing.T) {
		repo := new(MockSeniorRepository)
		svc := NewSeniorService(repo, nil, 0)

		p := validCreateRequest()
		p.FirstName = ""
		_, err := svc.Register(ctx, p)
		assert.ErrorIs(t, err, ErrInvalidRequest)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("validation rejects non-numeric age", func(t *testing.T) {
		repo := new(MockSeniorRepository)
		svc := NewSeniorService(repo, nil, 0)

		p := validCreateRequest()
		p.Age = "seventy"
		_, err := svc.Register(ctx, p)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestSeniorService_Release(t *testing.T) {
	ctx := context.Background()

	t.Run("effective date lands the offset in the future", func(t *testing.T) {
		repo := new(MockSeniorRepository)
		svc := NewSeniorService(repo, nil, 72*time.Hour)

		want := time.Now().Add(72 * time.Hour)
		repo.On("Release", ctx, int64(1), mock.MatchedBy(func(at time.Time) bool {
			return at.Sub(want).Abs() < time.Minute
		})).Return(&model.Senior{ID: 1, ReleasedAt: &want}, nil)

		released, err := svc.Release(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, released.ReleasedAt)
		repo.AssertExpectations(t)
	})

	t.Run("repository conflict surfaces as already released", func(t *testing.T) {
		repo := new(MockSeniorRepository)
		svc := NewSeniorService(repo, nil, 0)

		repo.On("Release", ctx, int64(1), mock.Anything).
			Return(nil, repository.ErrAlreadyReleased)

		_, err := svc.Release(ctx, 1)
		assert.ErrorIs(t, err, ErrAlreadyReleased)
	})

	t.Run("missing senior", func(t *testing.T) {
		repo := new(MockSeniorRepository)
		svc := NewSeniorService(repo, nil, 0)

		repo.On("Release", ctx, int64(9), mock.Anything).
			Return(nil, repository.ErrSeniorNotFound)

		_, err := svc.Release(ctx, 9)
		assert.ErrorIs(t, err, ErrSeniorNotFound)
	})
}

func TestSeniorService_Restore(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSeniorRepository)
	svc := NewSeniorService(repo, nil, 0)

	repo.On("Restore", ctx, int64(3)).Return(repository.ErrSeniorNotArchived)

	err := svc.Restore(ctx, 3)
	assert.ErrorIs(t, err, ErrNotArchived)
}
