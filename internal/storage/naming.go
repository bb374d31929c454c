package storage

import (
	"fmt"
	"time"

	"github.com/syemed/intake/internal/model"
	"github.com/syemed/intake/internal/security"
)

// Bucket layout. Every intake upload lands under solicitudes_st, split by
// what the file documents.
const (
	folderPhotos    = "solicitudes_st/fotos"
	folderInvoices  = "solicitudes_st/facturas"
	folderSummaries = "solicitudes_st/pdfs"
	folderOther     = "solicitudes_st/adjuntos"
)

// Folder maps an attachment category to its bucket folder.
func Folder(category model.AttachmentCategory) string {
	switch category {
	case model.AttachmentCategoryFailure:
		return folderPhotos
	case model.AttachmentCategoryInvoice:
		return folderInvoices
	default:
		return folderOther
	}
}

// ObjectName builds a collision-resistant key: upload moment plus the
// sanitized original name, inside the category folder.
func ObjectName(folder string, at time.Time, fileName string) string {
	return fmt.Sprintf("%s/%s_%s", folder, at.Format("20060102_150405"), security.SafeFileName(fileName))
}

// SummaryObjectName is the key of a generated request summary.
func SummaryObjectName(fileName string) string {
	return fmt.Sprintf("%s/%s", folderSummaries, security.SafeFileName(fileName))
}
