package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/oscahub/benefits-gateway/internal/model"
	xhttp "github.com/oscahub/benefits-gateway/pkg/http"
)

type BenefitService interface {
	Create(ctx context.Context, p model.BenefitCreateRequest) (*model.Benefit, error)
	Update(ctx context.Context, p model.BenefitUpdateRequest) (*model.Benefit, error)
	Get(ctx context.Context, id int64) (*model.Benefit, error)
	List(ctx context.Context) ([]*model.Benefit, error)
	Delete(ctx context.Context, id int64) error
}

type BenefitHandler struct {
	svc BenefitService
}

func NewBenefitHandler(benefitService BenefitService) *BenefitHandler {
	return &BenefitHandler{
		svc: benefitService,
	}
}

func RegisterBenefitRoutes(e *router.Group, h *BenefitHandler) {
	e.POST("/benefits", h.CreateBenefit)
	e.GET("/benefits", h.GetBenefits)
	e.PUT("/benefits", h.UpdateBenefit)
	e.DELETE("/benefits", h.DeleteBenefit)
}

type benefitPayload struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

func (h *BenefitHandler) CreateBenefit(ctx *xhttp.RequestCtx) {
	var req benefitPayload
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	b, err := h.svc.Create(ctx, model.BenefitCreateRequest{
		Name:         req.Name,
		Description:  req.Description,
		Requirements: req.Requirements,
	})
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusCreated, b)
}

func (h *BenefitHandler) GetBenefits(ctx *xhttp.RequestCtx) {
	if query(ctx, "id") != "" {
		id, err := queryInt64(ctx, "id")
		if err != nil {
			xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid id")
			return
		}
		b, err := h.svc.Get(ctx, id)
		if err != nil {
			writeServiceError(ctx, err)
			return
		}
		xhttp.WriteData(ctx, xhttp.StatusOK, b)
		return
	}

	benefits, err := h.svc.List(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, benefits)
}

func (h *BenefitHandler) UpdateBenefit(ctx *xhttp.RequestCtx) {
	var req benefitPayload
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	b, err := h.svc.Update(ctx, model.BenefitUpdateRequest{
		ID: req.ID,
		BenefitCreateRequest: model.BenefitCreateRequest{
			Name:         req.Name,
			Description:  req.Description,
			Requirements: req.Requirements,
		},
	})
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, b)
}

func (h *BenefitHandler) DeleteBenefit(ctx *xhttp.RequestCtx) {
	id, err := queryInt64(ctx, "id")
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, map[string]int64{"id": id})
}
