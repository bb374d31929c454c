package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/syemed/intake/internal/model"
)

func TestRequestsWorkbook(t *testing.T) {
	requests := []model.ServiceRequest{
		{
			ID:             118,
			SubmittedAt:    time.Date(2024, time.March, 11, 14, 30, 0, 0, time.UTC),
			SubmitterEmail: "tecnica@meditraumanorte.com.ar",
			RequesterType:  model.RequesterDistributor,
			Reason:         model.ReasonTechnicalService,
			Status:         model.RequestStatusPending,
			Equipment: []model.Equipment{
				{Ordinal: 1, ServiceOrder: 2401, Type: "Concentrador de Oxígeno", Brand: "Philips", Model: "EverFlo", SerialNumber: "EF-20231104", ClientLabel: "Meditrauma Norte"},
				{Ordinal: 2, ServiceOrder: 2402, Type: "CPAP", Brand: "ResMed", Model: "AirSense 10", SerialNumber: "AS10-4471", ClientLabel: "Meditrauma Norte"},
			},
		},
	}

	content, err := RequestsWorkbook(requests)
	require.NoError(t, err, "no error must be raised")

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err, "workbook must be readable")
	defer f.Close()

	rows, err := f.GetRows(requestsSheet)
	require.NoError(t, err, "sheet rows must be readable")
	require.Len(t, rows, 3, "header plus one row per equipment expected")

	assert.Equal(t, "OST", rows[0][0], "first header must be the service order")
	assert.Equal(t, "2401", rows[1][0])
	assert.Equal(t, "2402", rows[2][0])
	assert.Equal(t, "Concentrador de Oxígeno", rows[1][7])
	assert.Equal(t, "Meditrauma Norte", rows[2][11])
}
