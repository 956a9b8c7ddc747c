package handlers

import (
	"context"
	"io"
	"strconv"

	"github.com/fasthttp/router"
	"github.com/oscahub/benefits-gateway/internal/model"
	xhttp "github.com/oscahub/benefits-gateway/pkg/http"
)

type DocumentService interface {
	Upload(ctx context.Context, p model.DocumentCreateRequest, file io.Reader) (*model.Document, error)
	ListBySenior(ctx context.Context, seniorID int64) ([]*model.Document, error)
	Open(ctx context.Context, id int64) (*model.Document, io.ReadCloser, error)
	Delete(ctx context.Context, id int64) error
}

type DocumentHandler struct {
	svc DocumentService
}

func NewDocumentHandler(documentService DocumentService) *DocumentHandler {
	return &DocumentHandler{
		svc: documentService,
	}
}

func RegisterDocumentRoutes(e *router.Group, h *DocumentHandler) {
	e.POST("/documents", h.UploadDocument)
	e.GET("/documents", h.ListDocuments)
	e.GET("/documents/download", h.DownloadDocument)
	e.DELETE("/documents", h.DeleteDocument)
}

func (h *DocumentHandler) DownloadDocument(ctx *xhttp.RequestCtx) {
	id, err := queryInt64(ctx, "id")
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid id")
		return
	}
	doc, file, err := h.svc.Open(ctx, id)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ctx.Response.Header.Set("Content-Type", contentType)
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="`+doc.OriginalName+`"`)
	ctx.Response.SetStatusCode(xhttp.StatusOK)
	ctx.Response.SetBodyStream(file, -1)
}

// UploadDocument expects a multipart form with a "file" part and the
// senior_id, type and optional requirement_id fields.
func (h *DocumentHandler) UploadDocument(ctx *xhttp.RequestCtx) {
	header, err := ctx.FormFile("file")
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "file is required")
		return
	}

	seniorID, err := strconv.ParseInt(string(ctx.FormValue("senior_id")), 10, 64)
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid senior_id")
		return
	}

	p := model.DocumentCreateRequest{
		SeniorID:     seniorID,
		Type:         string(ctx.FormValue("type")),
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
	}
	if v := string(ctx.FormValue("requirement_id")); v != "" {
		reqID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid requirement_id")
			return
		}
		p.RequirementID = &reqID
	}

	f, err := header.Open()
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "unreadable file: "+err.Error())
		return
	}
	defer f.Close()

	doc, err := h.svc.Upload(ctx, p, f)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusCreated, doc)
}

func (h *DocumentHandler) ListDocuments(ctx *xhttp.RequestCtx) {
	seniorID, err := queryInt64(ctx, "senior_id")
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid senior_id")
		return
	}
	docs, err := h.svc.ListBySenior(ctx, seniorID)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, docs)
}

func (h *DocumentHandler) DeleteDocument(ctx *xhttp.RequestCtx) {
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
