package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/fasthttp/router"
	"github.com/oscahub/benefits-gateway/internal/model"
	xhttp "github.com/oscahub/benefits-gateway/pkg/http"
)

type ReportService interface {
	CategoryCounts(ctx context.Context) ([]*model.CategoryCount, error)
	BarangayDistribution(ctx context.Context) ([]*model.BarangayDistribution, error)
	AgeDistribution(ctx context.Context) ([]*model.AgeBin, error)
	RegistrationTrend(ctx context.Context, yearly bool) ([]*model.TrendPoint, error)
	Stats(ctx context.Context) (*model.DashboardStats, error)
	ExportSeniors(ctx context.Context) ([]byte, error)
}

type DashboardHandler struct {
	svc ReportService
}

func NewDashboardHandler(reportService ReportService) *DashboardHandler {
	return &DashboardHandler{
		svc: reportService,
	}
}

func RegisterDashboardRoutes(e *router.Group, h *DashboardHandler) {
	e.GET("/dashboard/stats", h.GetStats)
	e.GET("/dashboard/categories", h.GetCategoryCounts)
	e.GET("/dashboard/barangay-distribution", h.GetBarangayDistribution)
	e.GET("/dashboard/age-distribution", h.GetAgeDistribution)
	e.GET("/dashboard/registration-trend", h.GetRegistrationTrend)
	e.GET("/reports/seniors/export", h.ExportSeniors)
}

func (h *DashboardHandler) GetStats(ctx *xhttp.RequestCtx) {
	stats, err := h.svc.Stats(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, stats)
}

func (h *DashboardHandler) GetCategoryCounts(ctx *xhttp.RequestCtx) {
	counts, err := h.svc.CategoryCounts(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, counts)
}

func (h *DashboardHandler) GetBarangayDistribution(ctx *xhttp.RequestCtx) {
	dist, err := h.svc.BarangayDistribution(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, dist)
}

func (h *DashboardHandler) GetAgeDistribution(ctx *xhttp.RequestCtx) {
	bins, err := h.svc.AgeDistribution(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, bins)
}

func (h *DashboardHandler) GetRegistrationTrend(ctx *xhttp.RequestCtx) {
	yearly := strings.EqualFold(query(ctx, "period"), "yearly")
	points, err := h.svc.RegistrationTrend(ctx, yearly)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, points)
}

func (h *DashboardHandler) ExportSeniors(ctx *xhttp.RequestCtx) {
	data, err := h.svc.ExportSeniors(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	filename := "seniors-masterlist-" + time.Now().Format("2006-01-02") + ".xlsx"
	ctx.Response.Header.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Response.SetStatusCode(xhttp.StatusOK)
	ctx.Response.SetBodyRaw(data)
}
