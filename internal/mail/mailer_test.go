package mail

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syemed/intake/internal/model"
)

func testRequest() *model.ServiceRequest {
	return &model.ServiceRequest{
		ID:             118,
		SubmittedAt:    time.Date(2024, time.March, 11, 14, 30, 0, 0, time.UTC),
		SubmitterEmail: "tecnica@meditraumanorte.com.ar",
		Reason:         model.ReasonTechnicalService,
		Equipment: []model.Equipment{
			{Ordinal: 1, ServiceOrder: 2401},
			{Ordinal: 2, ServiceOrder: 2402},
		},
	}
}

func TestReceiptMessage(t *testing.T) {
	t.Log("receipt names the case, every ost and carries the summary")
	{
		msg := ReceiptMessage(testRequest(), "st@syemed.com", "Solicitud_ST_118_20240311.pdf", []byte("%PDF-stub"))

		assert.Equal(t, "tecnica@meditraumanorte.com.ar", msg.To)
		assert.Equal(t, "st@syemed.com", msg.Cc)
		assert.Equal(t, "Solicitud de Ingreso, Caso: #118 - Syemed", msg.Subject)
		assert.Contains(t, msg.Body, "Número de caso: #118")
		assert.Contains(t, msg.Body, "Órdenes de servicio (OST): #2401, #2402")
		require.NotNil(t, msg.Attachment, "summary must be attached")
		assert.Equal(t, "Solicitud_ST_118_20240311.pdf", msg.Attachment.Name)
	}

	t.Log("missing summary drops the attachment, not the mail")
	{
		msg := ReceiptMessage(testRequest(), "", "Solicitud_ST_118_20240311.pdf", nil)
		assert.Nil(t, msg.Attachment, "no attachment must be set")
		assert.Empty(t, msg.Cc, "no copy recipient must be set")
	}
}

func TestBuildMessage(t *testing.T) {
	msg := ReceiptMessage(testRequest(), "st@syemed.com", "Solicitud_ST_118_20240311.pdf", []byte("%PDF-stub"))
	gm := build("solicitudes@syemed.com", msg)

	var buf bytes.Buffer
	_, err := gm.WriteTo(&buf)
	require.NoError(t, err, "no error must be raised")

	raw := buf.String()
	assert.Contains(t, raw, "From: solicitudes@syemed.com")
	assert.Contains(t, raw, "To: tecnica@meditraumanorte.com.ar")
	assert.Contains(t, raw, "Cc: st@syemed.com")
	assert.Contains(t, raw, "Solicitud_ST_118_20240311.pdf")
}
