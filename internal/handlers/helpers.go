package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/oscahub/benefits-gateway/internal/services"
	xhttp "github.com/oscahub/benefits-gateway/pkg/http"
)

func query(ctx *xhttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}

func queryInt64(ctx *xhttp.RequestCtx, key string) (int64, error) {
	return strconv.ParseInt(query(ctx, key), 10, 64)
}

func parseTime(s string) (time.Time, error) {
	// Accept RFC3339 or YYYY-MM-DD
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// writeServiceError translates service sentinels into status codes.
// Anything not recognized is an unexpected failure and surfaces as 500.
func writeServiceError(ctx *xhttp.RequestCtx, err error) {
	switch {
	case errors.Is(err, services.ErrSeniorNotFound),
		errors.Is(err, services.ErrApplicationNotFound),
		errors.Is(err, services.ErrBenefitNotFound),
		errors.Is(err, services.ErrDocumentNotFound),
		errors.Is(err, services.ErrFundHistoryNotFound):
		xhttp.WriteError(ctx, xhttp.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAlreadyReleased),
		errors.Is(err, services.ErrNotArchived):
		xhttp.WriteError(ctx, xhttp.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidRequest):
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, err.Error())
	default:
		xhttp.WriteError(ctx, xhttp.StatusInternalServerError, err.Error())
	}
}
