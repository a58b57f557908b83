package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	assert.Equal(t, "file", CleanName(""))
	assert.Equal(t, "file", CleanName("   "))
	assert.Equal(t, "report", CleanName("report"))
	assert.Equal(t, "a b", CleanName(`a\b`))
	assert.Equal(t, ".. etc passwd", CleanName("../etc/passwd"))
	assert.NotContains(t, CleanName(`..\..\evil`), `\`)
	assert.NotContains(t, CleanName("a/b/c"), "/")
}

func TestHasExtension(t *testing.T) {
	assert.True(t, HasExtension("report.pdf"))
	assert.True(t, HasExtension("archive.tar.GZ"))
	assert.False(t, HasExtension("report"))
	assert.False(t, HasExtension("report."))
	assert.False(t, HasExtension("report.verylongext"))
}

func TestExtFromPath(t *testing.T) {
	assert.Equal(t, "pdf", ExtFromPath("/upload/v1/doc.pdf"))
	assert.Equal(t, "bin", ExtFromPath("/upload/v1/doc.BIN"))
	assert.Equal(t, "", ExtFromPath("/upload/v1/doc.raw"), "provider placeholder is not an extension")
	assert.Equal(t, "", ExtFromPath("/upload/v1/doc"))
	assert.Equal(t, "", ExtFromPath(""))
}

func TestExtFromContentType(t *testing.T) {
	assert.Equal(t, "pdf", ExtFromContentType("application/pdf"))
	assert.Equal(t, "pdf", ExtFromContentType("application/pdf; charset=binary"))
	assert.Equal(t, "jpg", ExtFromContentType("image/jpeg"))
	assert.Equal(t, "docx", ExtFromContentType("application/vnd.openxmlformats-officedocument.wordprocessingml.document"))
	assert.Equal(t, "zip", ExtFromContentType("application/x-zip-compressed"))
	assert.Equal(t, "", ExtFromContentType("application/x-nothing-known"))
	assert.Equal(t, "", ExtFromContentType(""))
}

func TestAttachmentDisposition(t *testing.T) {
	assert.Equal(t,
		`attachment; filename="report.pdf"; filename*=UTF-8''report.pdf`,
		AttachmentDisposition("report.pdf"))

	got := AttachmentDisposition("résumé.pdf")
	assert.Contains(t, got, `filename="r_sum_.pdf"`)
	assert.Contains(t, got, "filename*=UTF-8''r%C3%A9sum%C3%A9.pdf")
}

func TestSanitizeASCII(t *testing.T) {
	assert.Equal(t, "plain.txt", SanitizeASCII("plain.txt"))
	assert.Equal(t, "a_b", SanitizeASCII(`a"b`))
	assert.Equal(t, "__.pdf", SanitizeASCII("日本.pdf"))
}
