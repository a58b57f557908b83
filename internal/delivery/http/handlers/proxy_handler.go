package handlers

import (
	"docpress/internal/domain/dto"
	"docpress/internal/usecases"
	apierrors "docpress/pkg/errors"
	"docpress/pkg/file"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProxyHandler struct {
	proxyService usecases.ProxyService
	log          *zap.Logger
}

func NewProxyHandler(proxyService usecases.ProxyService, log *zap.Logger) *ProxyHandler {
	return &ProxyHandler{
		proxyService: proxyService,
		log:          log,
	}
}

// Download
//
// @Summary      Download a hosted asset as an attachment
// @Description  Streams the asset with a corrected filename/extension, or redirects to the host when streaming is not possible
// @Tags         Download
// @Produce      octet-stream
// @Param        url       query  string true  "Source asset URL"
// @Param        filename  query  string false "Desired filename, with or without extension"
// @Success      200  {file}    file
// @Failure      302  "Redirect to the asset host"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /download [get]
func (h *ProxyHandler) Download(c *fiber.Ctx) error {
	rawURL := c.Query("url")
	if rawURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing url param",
		})
	}

	// Request-scoped context so the upstream fetch is aborted rather than
	// left running when the connection goes away.
	plan, err := h.proxyService.Plan(c.Context(), rawURL, c.Query("filename"))
	if err != nil {
		return apierrors.HandleError(c, h.log, err)
	}

	if plan.RedirectURL != "" {
		return c.Redirect(plan.RedirectURL, fiber.StatusFound)
	}

	stream := plan.Stream
	c.Set(fiber.HeaderContentType, stream.ContentType)
	c.Set(fiber.HeaderContentDisposition, file.AttachmentDisposition(stream.Filename))
	c.Set(fiber.HeaderCacheControl, "private, max-age=31536000, immutable")

	if stream.ContentLength > 0 {
		return c.SendStream(stream.Body, int(stream.ContentLength))
	}
	return c.SendStream(stream.Body)
}
