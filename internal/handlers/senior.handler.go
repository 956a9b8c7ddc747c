package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/oscahub/benefits-gateway/internal/model"
	xhttp "github.com/oscahub/benefits-gateway/pkg/http"
)

type SeniorService interface {
	Register(ctx context.Context, p model.SeniorCreateRequest) (*model.Senior, error)
	Update(ctx context.Context, p model.SeniorUpdateRequest) (*model.Senior, error)
	Get(ctx context.Context, id int64) (*model.Senior, error)
	List(ctx context.Context, f model.SeniorFilter) ([]*model.Senior, error)
	ListArchived(ctx context.Context) ([]*model.Senior, error)
	ListReleased(ctx context.Context) ([]*model.Senior, error)
	Archive(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	Release(ctx context.Context, id int64) (*model.Senior, error)
}

type SeniorHandler struct {
	svc SeniorService
}

func NewSeniorHandler(seniorService SeniorService) *SeniorHandler {
	return &SeniorHandler{
		svc: seniorService,
	}
}

func RegisterSeniorRoutes(e *router.Group, h *SeniorHandler) {
	e.POST("/seniors", h.CreateSenior)
	e.GET("/seniors", h.GetSeniors)
	e.PUT("/seniors", h.UpdateSenior)
	e.DELETE("/seniors", h.ArchiveSenior)
	e.GET("/seniors/archived", h.ListArchivedSeniors)
	e.POST("/seniors/restore", h.RestoreSenior)
	e.POST("/seniors/release", h.ReleaseSenior)
	e.GET("/seniors/release", h.ListReleasedSeniors)
}

type seniorPayload struct {
	FirstName        string `json:"first_name"`
	MiddleName       string `json:"middle_name"`
	LastName         string `json:"last_name"`
	Contact          string `json:"contact"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
	Barangay         string `json:"barangay"`
	Purok            string `json:"purok"`
	Age              string `json:"age"`
	Gender           string `json:"gender"`
	PWD              bool   `json:"pwd"`
	LowIncome        bool   `json:"low_income"`
}

func (p seniorPayload) toCreateRequest() model.SeniorCreateRequest {
	return model.SeniorCreateRequest{
		FirstName:        p.FirstName,
		MiddleName:       p.MiddleName,
		LastName:         p.LastName,
		Contact:          p.Contact,
		EmergencyContact: p.EmergencyContact,
		EmergencyPhone:   p.EmergencyPhone,
		Barangay:         p.Barangay,
		Purok:            p.Purok,
		Age:              p.Age,
		Gender:           p.Gender,
		PWD:              p.PWD,
		LowIncome:        p.LowIncome,
	}
}

func (h *SeniorHandler) CreateSenior(ctx *xhttp.RequestCtx) {
	var req seniorPayload
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	senior, err := h.svc.Register(ctx, req.toCreateRequest())
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusCreated, senior)
}

// GetSeniors serves both the single lookup (?id=) and the filtered
// registry listing.
func (h *SeniorHandler) GetSeniors(ctx *xhttp.RequestCtx) {
	if query(ctx, "id") != "" {
		id, err := queryInt64(ctx, "id")
		if err != nil {
			xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid id")
			return
		}
		senior, err := h.svc.Get(ctx, id)
		if err != nil {
			writeServiceError(ctx, err)
			return
		}
		xhttp.WriteData(ctx, xhttp.StatusOK, senior)
		return
	}

	var f model.SeniorFilter
	if v := query(ctx, "barangay"); v != "" {
		f.Barangay = &v
	}
	if v := query(ctx, "gender"); v != "" {
		f.Gender = &v
	}
	if v := query(ctx, "remarks"); v != "" {
		r, err := model.ParseRemark(v)
		if err != nil {
			xhttp.WriteError(ctx, xhttp.StatusBadRequest, err.Error())
			return
		}
		f.Remarks = &r
	}
	if v := query(ctx, "released"); v != "" {
		released := v == "true" || v == "1"
		f.Released = &released
	}

	seniors, err := h.svc.List(ctx, f)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, seniors)
}

func (h *SeniorHandler) UpdateSenior(ctx *xhttp.RequestCtx) {
	var req struct {
		ID int64 `json:"id"`
		seniorPayload
		Remarks string `json:"remarks"`
	}
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	remark, err := model.ParseRemark(req.Remarks)
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, err.Error())
		return
	}
	senior, err := h.svc.Update(ctx, model.SeniorUpdateRequest{
		ID:                  req.ID,
		SeniorCreateRequest: req.toCreateRequest(),
		Remarks:             remark,
	})
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, senior)
}

func (h *SeniorHandler) ArchiveSenior(ctx *xhttp.RequestCtx) {
	id, err := queryInt64(ctx, "id")
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Archive(ctx, id); err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, map[string]int64{"id": id})
}

func (h *SeniorHandler) ListArchivedSeniors(ctx *xhttp.RequestCtx) {
	seniors, err := h.svc.ListArchived(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, seniors)
}

func (h *SeniorHandler) RestoreSenior(ctx *xhttp.RequestCtx) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := h.svc.Restore(ctx, req.ID); err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, map[string]int64{"id": req.ID})
}

func (h *SeniorHandler) ReleaseSenior(ctx *xhttp.RequestCtx) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	senior, err := h.svc.Release(ctx, req.ID)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, senior)
}

func (h *SeniorHandler) ListReleasedSeniors(ctx *xhttp.RequestCtx) {
	seniors, err := h.svc.ListReleased(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, seniors)
}
