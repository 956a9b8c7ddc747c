package handlers

import (
	"context"
	"strings"

	"github.com/fasthttp/router"
	"github.com/oscahub/benefits-gateway/internal/model"
	xhttp "github.com/oscahub/benefits-gateway/pkg/http"
)

type ApplicationService interface {
	Submit(ctx context.Context, p model.ApplicationSubmitRequest) ([]*model.Application, error)
	UpdateStatus(ctx context.Context, p model.ApplicationStatusUpdateRequest) (*model.Application, error)
	UpdateCategory(ctx context.Context, p model.ApplicationCategoryUpdateRequest) (*model.Application, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f model.ApplicationFilter) ([]*model.ApplicationDetail, error)
}

type ApplicationHandler struct {
	svc ApplicationService
}

func NewApplicationHandler(applicationService ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		svc: applicationService,
	}
}

func RegisterApplicationRoutes(e *router.Group, h *ApplicationHandler) {
	e.POST("/benefits/application", h.SubmitApplications)
	e.GET("/benefits/application", h.ListApplications)
	e.DELETE("/benefits/application", h.DeleteApplication)
	e.PUT("/benefits/application/status", h.UpdateApplicationStatus)
	e.PUT("/categories", h.UpdateApplicationCategory)
}

func (h *ApplicationHandler) SubmitApplications(ctx *xhttp.RequestCtx) {
	var req struct {
		BenefitID int64   `json:"benefit_id"`
		SeniorIDs []int64 `json:"senior_ids"`
	}
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	apps, err := h.svc.Submit(ctx, model.ApplicationSubmitRequest{
		BenefitID: req.BenefitID,
		SeniorIDs: req.SeniorIDs,
	})
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusCreated, apps)
}

func (h *ApplicationHandler) ListApplications(ctx *xhttp.RequestCtx) {
	var f model.ApplicationFilter
	if v := query(ctx, "senior_id"); v != "" {
		if id, err := queryInt64(ctx, "senior_id"); err == nil {
			f.SeniorID = &id
		}
	}
	if v := query(ctx, "benefit_id"); v != "" {
		if id, err := queryInt64(ctx, "benefit_id"); err == nil {
			f.BenefitID = &id
		}
	}
	if v := query(ctx, "status"); v != "" {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			st, err := model.ParseStatus(part)
			if err != nil {
				xhttp.WriteError(ctx, xhttp.StatusBadRequest, err.Error())
				return
			}
			f.Statuses = append(f.Statuses, st)
		}
	}

	apps, err := h.svc.List(ctx, f)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, apps)
}

func (h *ApplicationHandler) DeleteApplication(ctx *xhttp.RequestCtx) {
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

func (h *ApplicationHandler) UpdateApplicationStatus(ctx *xhttp.RequestCtx) {
	var req struct {
		ApplicationID   int64   `json:"application_id"`
		Status          string  `json:"status"`
		RejectionReason *string `json:"rejection_reason"`
	}
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	status, err := model.ParseStatus(req.Status)
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, err.Error())
		return
	}
	app, err := h.svc.UpdateStatus(ctx, model.ApplicationStatusUpdateRequest{
		ApplicationID:   req.ApplicationID,
		Status:          status,
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, app)
}

func (h *ApplicationHandler) UpdateApplicationCategory(ctx *xhttp.RequestCtx) {
	var req struct {
		ApplicationID int64  `json:"application_id"`
		Category      string `json:"category"`
	}
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	category, err := model.ParseCategory(req.Category)
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, err.Error())
		return
	}
	app, err := h.svc.UpdateCategory(ctx, model.ApplicationCategoryUpdateRequest{
		ApplicationID: req.ApplicationID,
		Category:      category,
	})
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, app)
}
