package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileCategory groups uploads by what they may contain. Each category has
// its own extension allow-list, MIME allow-list and size ceiling.
type FileCategory string

const (
	FileCategoryImage    FileCategory = "imagenes"
	FileCategoryVideo    FileCategory = "videos"
	FileCategoryDocument FileCategory = "documentos"
)

type fileRule struct {
	extensions map[string]struct{}
	mimeTypes  map[string]struct{}
	maxBytes   int64
}

const mb = int64(1024 * 1024)

var fileRules = map[FileCategory]fileRule{
	FileCategoryImage: {
		extensions: extSet(".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"),
		mimeTypes:  extSet("image/jpeg", "image/png", "image/gif", "image/bmp", "image/webp"),
		maxBytes:   10 * mb,
	},
	FileCategoryVideo: {
		extensions: extSet(".mp4", ".mov", ".avi", ".mkv", ".webm"),
		mimeTypes:  extSet("video/mp4", "video/quicktime", "video/x-msvideo", "video/avi", "video/x-matroska", "video/webm"),
		maxBytes:   50 * mb,
	},
	FileCategoryDocument: {
		extensions: extSet(".pdf", ".doc", ".docx", ".txt"),
		mimeTypes: extSet(
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"text/plain",
		),
		maxBytes: 5 * mb,
	},
}

// Executable and script extensions rejected wherever they appear in a
// file name, not only as the final extension.
var suspiciousMarks = []string{
	".exe", ".bat", ".cmd", ".sh", ".ps1", ".scr", ".vbs", ".js",
	".jar", ".com", ".pif", ".msi", ".dll", ".sys",
}

func extSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// FileExt returns the lower-cased extension of name including the dot.
func FileExt(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// SuspiciousFileName reports whether the name carries an executable
// marker or hides one behind a double extension.
func SuspiciousFileName(name string) bool {
	lower := strings.ToLower(name)
	for _, mark := range suspiciousMarks {
		if strings.Contains(lower, mark) {
			return true
		}
	}
	return strings.Count(lower, ".") > 1
}

// ValidateFile checks an upload against the rules of the allowed
// categories. The category is derived from the extension, so a file can
// only pass under the rule set its extension belongs to.
func ValidateFile(name string, size int64, declaredType string, allowed ...FileCategory) error {
	if SuspiciousFileName(name) {
		return fmt.Errorf("nombre de archivo no permitido: %s", name)
	}

	ext := FileExt(name)
	category, ok := categoryFor(ext, allowed)
	if !ok {
		return fmt.Errorf("extensión de archivo no permitida: %s", ext)
	}

	rule := fileRules[category]
	if size > rule.maxBytes {
		return fmt.Errorf("el archivo %s supera el tamaño máximo de %dMB", name, rule.maxBytes/mb)
	}

	if declaredType != "" {
		mime := strings.ToLower(strings.TrimSpace(strings.Split(declaredType, ";")[0]))
		if _, ok := rule.mimeTypes[mime]; !ok {
			return fmt.Errorf("tipo de contenido no permitido: %s", mime)
		}
	}

	return nil
}

func categoryFor(ext string, allowed []FileCategory) (FileCategory, bool) {
	for _, category := range allowed {
		if _, ok := fileRules[category].extensions[ext]; ok {
			return category, true
		}
	}
	return "", false
}
