package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReportService_ExportSeniors(t *testing.T) {
	ctx := context.Background()
	seniors := new(MockReportSeniorReader)
	svc := NewReportService(seniors, new(MockApplicationCounter), new(MockFundReader), new(MockTransactionSummer))

	seniors.On("List", ctx, model.SeniorFilter{}).Return(reportSeniors(), nil)

	data, err := svc.ExportSeniors(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	t.Run("masterlist has one row per senior", func(t *testing.T) {
		rows, err := f.GetRows(masterlistSheet)
		require.NoError(t, err)
		require.Len(t, rows, 6) // header + 5 seniors
		assert.Equal(t, "ID", rows[0][0])
		assert.Equal(t, "1", rows[1][0])
		assert.Equal(t, "Poblacion", rows[1][6])
	})

	t.Run("summary sheet counts every category", func(t *testing.T) {
		rows, err := f.GetRows(summarySheet)
		require.NoError(t, err)
		require.Len(t, rows, 5) // header + 4 categories
		assert.Equal(t, "Category", rows[0][0])
		assert.Equal(t, model.CategoryRegular.Label(), rows[1][0])
		assert.Equal(t, "1", rows[1][1])
	})
}
