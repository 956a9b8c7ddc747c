package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/internal/services"
	xhttp "github.com/oscahub/benefits-gateway/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

type MockSeniorService struct {
	mock.Mock
}

func (m *MockSeniorService) Register(ctx context.Context, p model.SeniorCreateRequest) (*model.Senior, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Senior), args.Error(1)
}

func (m *MockSeniorService) Update(ctx context.Context, p model.SeniorUpdateRequest) (*model.Senior, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Senior), args.Error(1)
}

func (m *MockSeniorService) Get(ctx context.Context, id int64) (*model.Senior, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Senior), args.Error(1)
}

func (m *MockSeniorService) List(ctx context.Context, f model.SeniorFilter) ([]*model.Senior, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Senior), args.Error(1)
}

func (m *MockSeniorService) ListArchived(ctx context.Context) ([]*model.Senior, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Senior), args.Error(1)
}

func (m *MockSeniorService) ListReleased(ctx context.Context) ([]*model.Senior, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Senior), args.Error(1)
}

func (m *MockSeniorService) Archive(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSeniorService) Restore(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSeniorService) Release(ctx context.Context, id int64) (*model.Senior, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Senior), args.Error(1)
}

func setupTestContext(method, path string, body []byte) *xhttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != nil {
		ctx.Request.SetBody(body)
	}
	return ctx
}

func TestSeniorHandler_CreateSenior(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		svc := new(MockSeniorService)
		handler := NewSeniorHandler(svc)

		bodyBytes, _ := json.Marshal(seniorPayload{
			FirstName: "Maria",
			LastName:  "Reyes",
			Barangay:  "Poblacion",
			Age:       "72",
			Gender:    "female",
		})

		svc.On("Register", mock.Anything, mock.MatchedBy(func(p model.SeniorCreateRequest) bool {
			return p.FirstName == "Maria" && p.Age == "72"
		})).Return(&model.Senior{ID: 7, FirstName: "Maria", Remarks: model.RemarkPending}, nil)

		ctx := setupTestContext("POST", "/seniors", bodyBytes)
		handler.CreateSenior(ctx)

		assert.Equal(t, 201, ctx.Response.StatusCode())

		var envelope struct {
			Success bool         `json:"success"`
			Data    model.Senior `json:"data"`
		}
		err := json.Unmarshal(ctx.Response.Body(), &envelope)
		require.NoError(t, err)
		assert.True(t, envelope.Success)
		assert.Equal(t, int64(7), envelope.Data.ID)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(MockSeniorService)
		handler := NewSeniorHandler(svc)

		ctx := setupTestContext("POST", "/seniors", []byte("{not json"))
		handler.CreateSenior(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())
		svc.AssertNotCalled(t, "Register")
	})
}

func TestSeniorHandler_GetSeniors(t *testing.T) {
	t.Run("single lookup not found maps to 404", func(t *testing.T) {
		svc := new(MockSeniorService)
		handler := NewSeniorHandler(svc)

		svc.On("Get", mock.Anything, int64(42)).Return(nil, services.ErrSeniorNotFound)

		ctx := setupTestContext("GET", "/seniors?id=42", nil)
		handler.GetSeniors(ctx)

		assert.Equal(t, 404, ctx.Response.StatusCode())

		var body struct {
			Message string `json:"message"`
			Code    int    `json:"code"`
		}
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
		assert.Equal(t, 404, body.Code)
	})

	t.Run("listing forwards filters", func(t *testing.T) {
		svc := new(MockSeniorService)
		handler := NewSeniorHandler(svc)

		svc.On("List", mock.Anything, mock.MatchedBy(func(f model.SeniorFilter) bool {
			return f.Barangay != nil && *f.Barangay == "Poblacion" &&
				f.Remarks != nil && *f.Remarks == model.RemarkPending
		})).Return([]*model.Senior{{ID: 1}}, nil)

		ctx := setupTestContext("GET", "/seniors?barangay=Poblacion&remarks=pending", nil)
		handler.GetSeniors(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())
		svc.AssertExpectations(t)
	})
}

func TestSeniorHandler_ReleaseSenior(t *testing.T) {
	t.Run("release stamps the effective date", func(t *testing.T) {
		svc := new(MockSeniorService)
		handler := NewSeniorHandler(svc)

		effective := time.Now().Add(72 * time.Hour)
		svc.On("Release", mock.Anything, int64(5)).
			Return(&model.Senior{ID: 5, ReleasedAt: &effective}, nil)

		ctx := setupTestContext("POST", "/seniors/release", []byte(`{"id":5}`))
		handler.ReleaseSenior(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())
	})

	t.Run("second release maps to 409", func(t *testing.T) {
		svc := new(MockSeniorService)
		handler := NewSeniorHandler(svc)

		svc.On("Release", mock.Anything, int64(5)).
			Return(nil, services.ErrAlreadyReleased)

		ctx := setupTestContext("POST", "/seniors/release", []byte(`{"id":5}`))
		handler.ReleaseSenior(ctx)

		assert.Equal(t, 409, ctx.Response.StatusCode())
	})
}
