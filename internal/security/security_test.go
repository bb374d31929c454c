package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterSlidingWindow(t *testing.T) {
	limiter := NewLimiter(3, time.Hour)
	start := time.Date(2024, time.March, 11, 10, 0, 0, 0, time.UTC)

	t.Log("first three submissions pass")
	{
		for i := 0; i < 3; i++ {
			allowed, _ := limiter.Allow("203.0.113.7", start.Add(time.Duration(i)*time.Minute))
			require.True(t, allowed, "submission within the quota must pass")
		}
	}

	t.Log("fourth submission within the window is denied with a wait hint")
	{
		allowed, retryAfter := limiter.Allow("203.0.113.7", start.Add(5*time.Minute))
		require.False(t, allowed, "submission above the quota must be denied")
		assert.Equal(t, 55*time.Minute, retryAfter, "wait must end when the oldest attempt expires")
		assert.Zero(t, limiter.Remaining("203.0.113.7", start.Add(5*time.Minute)), "no quota must remain")
	}

	t.Log("attempts outside the window no longer count")
	{
		allowed, _ := limiter.Allow("203.0.113.7", start.Add(61*time.Minute))
		assert.True(t, allowed, "submission must pass once the oldest attempt expired")
	}

	t.Log("keys are limited independently")
	{
		allowed, _ := limiter.Allow("198.51.100.23", start.Add(5*time.Minute))
		assert.True(t, allowed, "a different caller must keep its own quota")
	}
}

func TestValidateFile(t *testing.T) {
	t.Log("failure evidence accepts both photos and videos")
	{
		err := ValidateFile("falla_frontal.jpg", 2*mb, "image/jpeg", FileCategoryImage, FileCategoryVideo)
		assert.NoError(t, err, "no error must be raised")

		err = ValidateFile("falla.mp4", 30*mb, "video/mp4", FileCategoryImage, FileCategoryVideo)
		assert.NoError(t, err, "no error must be raised")
	}

	t.Log("invoice uploads accept documents and images only")
	{
		err := ValidateFile("factura.pdf", 1*mb, "application/pdf", FileCategoryDocument, FileCategoryImage)
		assert.NoError(t, err, "no error must be raised")

		err = ValidateFile("factura.mp4", 1*mb, "video/mp4", FileCategoryDocument, FileCategoryImage)
		require.Error(t, err, "video must be rejected as invoice")
		assert.Contains(t, err.Error(), "extensión de archivo no permitida")
	}

	t.Log("each category enforces its own size ceiling")
	{
		err := ValidateFile("grande.jpg", 11*mb, "image/jpeg", FileCategoryImage)
		require.Error(t, err, "oversized image must be rejected")
		assert.Contains(t, err.Error(), "supera el tamaño máximo de 10MB")

		err = ValidateFile("video.mp4", 49*mb, "video/mp4", FileCategoryVideo)
		assert.NoError(t, err, "video below its own ceiling must pass")
	}

	t.Log("declared content type must match the extension category")
	{
		err := ValidateFile("foto.jpg", 1*mb, "application/pdf", FileCategoryImage)
		require.Error(t, err, "mismatched content type must be rejected")
		assert.Contains(t, err.Error(), "tipo de contenido no permitido")

		err = ValidateFile("foto.jpg", 1*mb, "image/jpeg; charset=binary", FileCategoryImage)
		assert.NoError(t, err, "content type parameters must be ignored")
	}

	t.Log("executable markers and double extensions are rejected")
	{
		for _, name := range []string{"virus.exe", "foto.exe.jpg", "nota.pdf.txt", "script.PS1"} {
			err := ValidateFile(name, 1*mb, "", FileCategoryImage, FileCategoryVideo, FileCategoryDocument)
			assert.Error(t, err, "suspicious name %s must be rejected", name)
		}
	}
}

func TestSanitizeText(t *testing.T) {
	t.Log("markup-prone characters are stripped and spaces collapsed")
	{
		got := SanitizeText("  El equipo <script> no   enciende {nunca} | `jamás`  ")
		assert.Equal(t, "El equipo script no enciende nunca jamás", got)
	}

	t.Log("long text is capped without splitting a character")
	{
		got := SanitizeText(strings.Repeat("ñ", 600))
		assert.Equal(t, 500, len([]rune(got)), "text must be capped at 500 characters")
	}
}

func TestSanitizeSerial(t *testing.T) {
	assert.Equal(t, "EF-20231104", SanitizeSerial("EF-2023#1104"))
	assert.Equal(t, "VA 118", SanitizeSerial("  VA 118!  "))
}

func TestSanitizeEmail(t *testing.T) {
	t.Log("addresses are lower-cased and trimmed")
	{
		got, ok := SanitizeEmail("  Tecnica@MediTrauma.COM.ar ")
		require.True(t, ok, "well-formed address must pass")
		assert.Equal(t, "tecnica@meditrauma.com.ar", got)
	}

	t.Log("shapeless addresses are flagged")
	{
		_, ok := SanitizeEmail("tecnica@meditrauma")
		assert.False(t, ok, "address without top-level domain must fail")
	}
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "factura_marzo_2024_.pdf", SafeFileName("factura marzo/2024!.pdf"))
	assert.Equal(t, "foto-equipo.jpg", SafeFileName("foto-equipo.jpg"))
}
