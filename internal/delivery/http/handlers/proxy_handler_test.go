package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"docpress/internal/delivery/http/routers"
	"docpress/internal/usecases"
	"docpress/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDownloadApp(domain string, client *http.Client) *fiber.App {
	svc := usecases.NewProxyService(config.CloudinaryConfig{Domain: domain}, client, zap.NewNop())
	app := fiber.New()
	routers.SetupProxyRoutes(app, svc, zap.NewNop())
	return app
}

func TestDownloadMissingURLReturns400(t *testing.T) {
	app := newDownloadApp("cloudinary.com", http.DefaultClient)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/download", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDownloadInvalidURLReturns400(t *testing.T) {
	app := newDownloadApp("cloudinary.com", http.DefaultClient)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/download?url=%3A%2F%2Fbad", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDownloadUntrustedHostRedirects(t *testing.T) {
	app := newDownloadApp("cloudinary.com", http.DefaultClient)

	target := "https://files.example.org/a/b.pdf"
	resp, err := app.Test(httptest.NewRequest("GET",
		"/api/download?url="+url.QueryEscape(target)+"&filename=report", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "files.example.org", loc.Host)
	assert.Equal(t, "report", loc.Query().Get("dl"))
}

func TestDownloadStreamsWithAttachmentHeaders(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer upstream.Close()

	app := newDownloadApp("127.0.0.1", upstream.Client())

	resp, err := app.Test(httptest.NewRequest("GET",
		"/api/download?url="+url.QueryEscape(upstream.URL+"/upload/v1/doc.raw")+"&filename=report", nil), 30_000)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t,
		`attachment; filename="report.pdf"; filename*=UTF-8''report.pdf`,
		resp.Header.Get("Content-Disposition"))
	assert.Equal(t, "private, max-age=31536000, immutable", resp.Header.Get("Cache-Control"))
}
