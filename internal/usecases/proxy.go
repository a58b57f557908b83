package usecases

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"docpress/pkg/config"
	apierrors "docpress/pkg/errors"
	"docpress/pkg/file"

	"go.uber.org/zap"
)

// ProxyPlan is the outcome of the strategy chain: either an open upstream
// stream ready to forward, or a redirect for the caller to follow.
type ProxyPlan struct {
	Stream      *ProxyStream
	RedirectURL string
}

type ProxyStream struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	Filename      string
}

type ProxyService interface {
	// Plan resolves a download request into a stream or a redirect. The only
	// hard error is an unparseable source URL.
	Plan(ctx context.Context, rawURL, requestedName string) (*ProxyPlan, error)
}

type proxyService struct {
	client *http.Client
	domain string
	log    *zap.Logger
}

// NewProxyClient builds the outbound client. Connection setup and the wait
// for response headers are bounded, but not the body transfer: a large asset
// legitimately streams for as long as the caller keeps downloading, so a
// whole-request timeout would cut it off mid-body. Disconnects are handled by
// the request context instead.
func NewProxyClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
		},
	}
}

func NewProxyService(cfg config.CloudinaryConfig, client *http.Client, log *zap.Logger) ProxyService {
	if client == nil {
		client = http.DefaultClient
	}
	return &proxyService{
		client: client,
		domain: strings.ToLower(cfg.Domain),
		log:    log,
	}
}

func (s *proxyService) Plan(ctx context.Context, rawURL, requestedName string) (*ProxyPlan, error) {
	target, err := url.Parse(rawURL)
	if err != nil || !target.IsAbs() || target.Host == "" {
		return nil, apierrors.ErrInvalidURL(fmt.Errorf("parse %q: %w", rawURL, errOrInvalid(err)))
	}

	dlName := file.CleanName(requestedName)

	// Untrusted hosts are never fetched; the caller goes there directly.
	if !s.trustedHost(target.Hostname()) {
		return &ProxyPlan{RedirectURL: withDownloadParam(target, dlName).String()}, nil
	}

	// Strategy A: force-download query param only.
	// Strategy B: add the provider's attachment-filename path transform; some
	// asset types reject one combination but accept the other.
	strategies := []*url.URL{
		withDownloadParam(target, dlName),
		withDownloadParam(withAttachmentTransform(target, dlName), dlName),
	}
	for _, attempt := range strategies {
		stream, err := s.open(ctx, attempt, requestedName, target)
		if err == nil {
			return &ProxyPlan{Stream: stream}, nil
		}
		s.log.Debug("proxy fetch failed", zap.String("url", attempt.String()), zap.Error(err))
	}

	// Strategy C: give up streaming, redirect with a probable extension so the
	// browser at least saves a usable name.
	redirectName := dlName
	if !file.HasExtension(redirectName) {
		if ext := file.ExtFromPath(target.Path); ext != "" {
			redirectName += "." + ext
		}
	}
	final := withDownloadParam(withAttachmentTransform(target, redirectName), redirectName)
	return &ProxyPlan{RedirectURL: final.String()}, nil
}

func (s *proxyService) trustedHost(host string) bool {
	host = strings.ToLower(host)
	return host == s.domain || strings.HasSuffix(host, "."+s.domain)
}

func (s *proxyService) open(ctx context.Context, u *url.URL, requestedName string, source *url.URL) (*ProxyStream, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}
	if resp.Body == nil {
		return nil, fmt.Errorf("upstream response has no body")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &ProxyStream{
		Body:          resp.Body,
		ContentType:   contentType,
		ContentLength: resp.ContentLength,
		Filename:      resolveFilename(resp, requestedName, source, contentType),
	}, nil
}

// resolveFilename applies the naming policy: upstream Content-Disposition,
// then the caller's wish, then the last URL path segment. The extension is
// only inferred when the winner has none.
func resolveFilename(resp *http.Response, requestedName string, source *url.URL, contentType string) string {
	candidates := []string{
		dispositionFilename(resp.Header.Get("Content-Disposition")),
		requestedName,
		lastPathSegment(source.Path),
	}

	name := ""
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			name = file.CleanName(c)
			break
		}
	}
	if name == "" {
		name = "file"
	}

	if !file.HasExtension(name) {
		ext := file.ExtFromPath(source.Path)
		if ext == "" {
			ext = file.ExtFromContentType(contentType)
		}
		if ext != "" {
			name += "." + ext
		}
	}
	return name
}

func dispositionFilename(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}

func lastPathSegment(p string) string {
	seg := path.Base(p)
	if seg == "." || seg == "/" {
		return ""
	}
	return seg
}

// withDownloadParam annotates a URL with the provider's force-download param.
func withDownloadParam(u *url.URL, filename string) *url.URL {
	out := *u
	if filename != "" {
		q := out.Query()
		q.Set("dl", filename)
		out.RawQuery = q.Encode()
	}
	return &out
}

// withAttachmentTransform inserts the provider's fl_attachment delivery
// transform after the first /upload/ path segment. URLs without that segment
// are returned unchanged.
func withAttachmentTransform(u *url.URL, filename string) *url.URL {
	out := *u
	if filename == "" {
		return &out
	}
	escaped := out.EscapedPath()
	if !strings.Contains(escaped, "/upload/") {
		return &out
	}
	transformed := strings.Replace(escaped, "/upload/",
		"/upload/fl_attachment:"+url.PathEscape(filename)+"/", 1)
	out.RawPath = transformed
	if decoded, err := url.PathUnescape(transformed); err == nil {
		out.Path = decoded
	}
	return &out
}

func errOrInvalid(err error) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("not an absolute URL")
}
