package handlers

import (
	"context"
	"io"
	"strconv"

	"github.com/fasthttp/router"
	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/internal/services"
	xhttp "github.com/oscahub/benefits-gateway/pkg/http"
)

type FundService interface {
	GetFund(ctx context.Context) (*model.GovernmentFund, error)
	SetBalance(ctx context.Context, balance float64) (*model.GovernmentFund, error)
	AddHistory(ctx context.Context, p model.FundHistoryCreateRequest, receipt *services.Receipt) (*model.FundHistory, error)
	DeleteHistory(ctx context.Context, id int64) error
	ListHistory(ctx context.Context, f model.FundHistoryFilter) ([]*model.FundHistory, error)
	OpenReceipt(ctx context.Context, id int64) (*model.FundHistory, io.ReadCloser, error)
	CreateTransaction(ctx context.Context, p model.TransactionCreateRequest) (*model.Transaction, error)
	ListTransactions(ctx context.Context, f model.TransactionFilter) ([]*model.Transaction, error)
}

type FundHandler struct {
	svc FundService
}

func NewFundHandler(fundService FundService) *FundHandler {
	return &FundHandler{
		svc: fundService,
	}
}

func RegisterFundRoutes(e *router.Group, h *FundHandler) {
	e.GET("/government-fund", h.GetFund)
	e.PUT("/government-fund", h.SetFundBalance)
	e.GET("/fund-history", h.ListFundHistory)
	e.GET("/fund-history/receipt", h.DownloadReceipt)
	e.POST("/fund-history", h.AddFundHistory)
	e.DELETE("/fund-history", h.DeleteFundHistory)
	e.GET("/transactions", h.ListTransactions)
	e.POST("/transactions", h.CreateTransaction)
}

func (h *FundHandler) GetFund(ctx *xhttp.RequestCtx) {
	fund, err := h.svc.GetFund(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, fund)
}

func (h *FundHandler) SetFundBalance(ctx *xhttp.RequestCtx) {
	var req struct {
		Balance float64 `json:"balance"`
	}
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	fund, err := h.svc.SetBalance(ctx, req.Balance)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, fund)
}

// AddFundHistory expects a multipart form so an optional receipt file
// can ride along with the entry fields.
func (h *FundHandler) AddFundHistory(ctx *xhttp.RequestCtx) {
	date, err := parseTime(string(ctx.FormValue("date")))
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid date")
		return
	}
	amount, err := strconv.ParseFloat(string(ctx.FormValue("amount")), 64)
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid amount")
		return
	}
	p := model.FundHistoryCreateRequest{
		Date:        date,
		Amount:      amount,
		Source:      string(ctx.FormValue("source")),
		Description: string(ctx.FormValue("description")),
	}
	if v := string(ctx.FormValue("available_balance")); v != "" {
		available, err := strconv.ParseFloat(v, 64)
		if err != nil {
			xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid available_balance")
			return
		}
		p.AvailableBalance = available
	}

	var receipt *services.Receipt
	if header, err := ctx.FormFile("receipt"); err == nil {
		f, err := header.Open()
		if err != nil {
			xhttp.WriteError(ctx, xhttp.StatusBadRequest, "unreadable receipt: "+err.Error())
			return
		}
		defer f.Close()
		receipt = &services.Receipt{Name: header.Filename, Body: f}
	}

	entry, err := h.svc.AddHistory(ctx, p, receipt)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusCreated, entry)
}

func (h *FundHandler) DeleteFundHistory(ctx *xhttp.RequestCtx) {
	id, err := queryInt64(ctx, "id")
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.DeleteHistory(ctx, id); err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, map[string]int64{"id": id})
}

func (h *FundHandler) DownloadReceipt(ctx *xhttp.RequestCtx) {
	id, err := queryInt64(ctx, "id")
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}
	entry, file, err := h.svc.OpenReceipt(ctx, id)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	ctx.Response.Header.Set("Content-Type", "application/octet-stream")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="`+*entry.ReceiptFile+`"`)
	ctx.Response.SetStatusCode(xhttp.StatusOK)
	ctx.Response.SetBodyStream(file, -1)
}

func (h *FundHandler) ListFundHistory(ctx *xhttp.RequestCtx) {
	var f model.FundHistoryFilter
	if v := query(ctx, "start"); v != "" {
		if t, err := parseTime(v); err == nil {
			f.Start = &t
		}
	}
	if v := query(ctx, "end"); v != "" {
		if t, err := parseTime(v); err == nil {
			f.End = &t
		}
	}
	entries, err := h.svc.ListHistory(ctx, f)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, entries)
}

func (h *FundHandler) CreateTransaction(ctx *xhttp.RequestCtx) {
	var req struct {
		SeniorID *int64  `json:"senior_id"`
		Amount   float64 `json:"amount"`
		Type     string  `json:"type"`
		Category *string `json:"category"`
		Status   string  `json:"status"`
	}
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	status, err := model.ParseTransactionStatus(req.Status)
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, err.Error())
		return
	}
	p := model.TransactionCreateRequest{
		SeniorID: req.SeniorID,
		Amount:   req.Amount,
		Type:     req.Type,
		Status:   status,
	}
	if req.Category != nil {
		category, err := model.ParseCategory(*req.Category)
		if err != nil {
			xhttp.WriteError(ctx, xhttp.StatusBadRequest, err.Error())
			return
		}
		p.Category = &category
	}
	txn, err := h.svc.CreateTransaction(ctx, p)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusCreated, txn)
}

func (h *FundHandler) ListTransactions(ctx *xhttp.RequestCtx) {
	var f model.TransactionFilter
	if v := query(ctx, "status"); v != "" {
		status, err := model.ParseTransactionStatus(v)
		if err != nil {
			xhttp.WriteError(ctx, xhttp.StatusBadRequest, err.Error())
			return
		}
		f.Status = &status
	}
	if v := query(ctx, "category"); v != "" {
		category, err := model.ParseCategory(v)
		if err != nil {
			xhttp.WriteError(ctx, xhttp.StatusBadRequest, err.Error())
			return
		}
		f.Category = &category
	}
	if v := query(ctx, "from"); v != "" {
		if t, err := parseTime(v); err == nil {
			f.From = &t
		}
	}
	if v := query(ctx, "to"); v != "" {
		if t, err := parseTime(v); err == nil {
			f.To = &t
		}
	}
	txns, err := h.svc.ListTransactions(ctx, f)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, txns)
}
