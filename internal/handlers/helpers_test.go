package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/oscahub/benefits-gateway/internal/services"
	xhttp "github.com/oscahub/benefits-gateway/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteServiceError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"senior not found", services.ErrSeniorNotFound, 404},
		{"wrapped not found", fmt.Errorf("release: %w", services.ErrSeniorNotFound), 404},
		{"already released", services.ErrAlreadyReleased, 409},
		{"not archived", services.ErrNotArchived, 409},
		{"validation failure", fmt.Errorf("%w: barangay is required", services.ErrInvalidRequest), 400},
		{"database outage", errors.New("driver: bad connection"), 500},
		{"storage failure", fmt.Errorf("store receipt: %w", errors.New("disk full")), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupTestContext("GET", "/seniors", nil)
			writeServiceError(ctx, tc.err)

			assert.Equal(t, tc.want, ctx.Response.StatusCode())

			var body xhttp.ErrorBody
			require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
			assert.Equal(t, tc.want, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
