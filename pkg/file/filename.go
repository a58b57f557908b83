package file

import (
	"mime"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	separatorRe = regexp.MustCompile(`[\\/]+`)
	extRe       = regexp.MustCompile(`(?i)\.[a-z0-9]{1,6}$`)
	pathExtRe   = regexp.MustCompile(`(?i)\.([a-z0-9]{1,6})(?:\?|#|$)`)
)

// CleanName strips path separators from a candidate filename and falls back
// to "file" when nothing useful is left.
func CleanName(name string) string {
	cleaned := strings.TrimSpace(separatorRe.ReplaceAllString(name, " "))
	if cleaned == "" {
		return "file"
	}
	return cleaned
}

// HasExtension reports whether the name already ends in a short extension.
func HasExtension(name string) bool {
	return extRe.MatchString(name)
}

// ExtFromPath extracts the lowercased extension (without dot) from a URL
// path. The provider's "raw" suffix is a resource-type placeholder, not a
// usable extension, so it never counts.
func ExtFromPath(pathname string) string {
	m := pathExtRe.FindStringSubmatch(pathname)
	if m == nil {
		return ""
	}
	ext := strings.ToLower(m[1])
	if ext == "raw" {
		return ""
	}
	return ext
}

// extByContentType pins extensions for the content types the provider serves.
// Checked before the mimetype database so provider quirks stay stable.
var extByContentType = map[string]string{
	"application/pdf":              "pdf",
	"image/jpeg":                   "jpg",
	"image/png":                    "png",
	"image/webp":                   "webp",
	"image/gif":                    "gif",
	"image/bmp":                    "bmp",
	"image/tiff":                   "tiff",
	"audio/mpeg":                   "mp3",
	"audio/mp4":                    "m4a",
	"audio/ogg":                    "ogg",
	"audio/wav":                    "wav",
	"video/mp4":                    "mp4",
	"video/webm":                   "webm",
	"video/quicktime":              "mov",
	"application/zip":              "zip",
	"application/x-zip-compressed": "zip",
	"application/msword":           "doc",
	"application/vnd.ms-excel":     "xls",
	"application/vnd.ms-powerpoint": "ppt",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   "docx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         "xlsx",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": "pptx",
	"text/plain":       "txt",
	"application/json": "json",
}

// ExtFromContentType maps a Content-Type header value to an extension
// (without dot). Returns "" when the type is unknown.
func ExtFromContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}
	if ext, ok := extByContentType[mediaType]; ok {
		return ext
	}
	if m := mimetype.Lookup(mediaType); m != nil {
		return strings.TrimPrefix(m.Extension(), ".")
	}
	return ""
}
