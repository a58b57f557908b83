package file

import (
	"fmt"
	"net/url"
	"strings"
)

// SanitizeASCII replaces every non-printable-ASCII rune with an underscore,
// so the plain filename= parameter stays header-safe.
func SanitizeASCII(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e || r == '"' {
			return '_'
		}
		return r
	}, name)
}

// AttachmentDisposition builds a Content-Disposition value carrying both the
// ASCII fallback and the RFC 5987 UTF-8 variant of the filename.
func AttachmentDisposition(filename string) string {
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
		SanitizeASCII(filename), url.PathEscape(filename))
}
