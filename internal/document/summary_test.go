package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syemed/intake/internal/model"
)

func TestSummaryFileName(t *testing.T) {
	at := time.Date(2024, time.March, 11, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "Solicitud_ST_118_20240311.pdf", SummaryFileName(118, at))
}

func TestRenderSummary(t *testing.T) {
	req := &model.ServiceRequest{
		ID:             118,
		SubmittedAt:    time.Date(2024, time.March, 11, 14, 30, 0, 0, time.UTC),
		SubmitterEmail: "tecnica@meditraumanorte.com.ar",
		RequesterType:  model.RequesterDistributor,
		UrgencyLevel:   3,
		Reason:         model.ReasonTechnicalService,
		Status:         model.RequestStatusPending,
		Equipment: []model.Equipment{
			{Ordinal: 1, ServiceOrder: 2401, Type: "Concentrador de Oxígeno", Brand: "Philips", Model: "EverFlo", SerialNumber: "EF-20231104", UnderWarranty: true},
			{Ordinal: 2, ServiceOrder: 2402, Type: "CPAP", Brand: "ResMed", Model: "AirSense 10", SerialNumber: "AS10-4471"},
		},
	}
	sub := &model.Submission{
		TradeName:    "Meditrauma Norte",
		LegalName:    "Meditrauma Norte S.R.L.",
		TaxID:        "30712345678",
		ContactName:  "Carla Suárez",
		ContactPhone: "+54 387 555-0199",
		IssueTags:    []string{"El equipo indica un código de error"},
		IssueDetail:  "Corta el flujo a los 20 minutos",
		CaseComments: "Entregan el equipo el jueves",
	}

	summary, err := RenderSummary(req, sub)
	require.NoError(t, err, "no error must be raised")

	assert.True(t, len(summary) > 1000, "summary must not be empty")
	assert.Equal(t, "%PDF-", string(summary[:5]), "output must be a pdf document")
}
