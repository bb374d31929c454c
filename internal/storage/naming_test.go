package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/syemed/intake/internal/model"
)

func TestFolderPerCategory(t *testing.T) {
	assert.Equal(t, "solicitudes_st/fotos", Folder(model.AttachmentCategoryFailure))
	assert.Equal(t, "solicitudes_st/facturas", Folder(model.AttachmentCategoryInvoice))
	assert.Equal(t, "solicitudes_st/adjuntos", Folder(model.AttachmentCategoryGeneral))
}

func TestObjectName(t *testing.T) {
	at := time.Date(2024, time.March, 11, 14, 30, 52, 0, time.UTC)

	t.Log("key carries the upload moment and the sanitized file name")
	{
		key := ObjectName(Folder(model.AttachmentCategoryFailure), at, "falla frontal (2).jpg")
		assert.Equal(t, "solicitudes_st/fotos/20240311_143052_falla_frontal__2_.jpg", key)
	}

	t.Log("summaries land in the pdf folder untouched")
	{
		key := SummaryObjectName("Solicitud_ST_118_20240311.pdf")
		assert.Equal(t, "solicitudes_st/pdfs/Solicitud_ST_118_20240311.pdf", key)
	}
}
