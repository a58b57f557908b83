package handlers

import (
	"docpress/internal/domain/dto"
	"docpress/internal/usecases"
	"docpress/pkg/config"
	"docpress/pkg/constants"
	apierrors "docpress/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UploadHandler struct {
	uploadService usecases.UploadService
	cloudinary    config.CloudinaryConfig
	log           *zap.Logger
}

func NewUploadHandler(uploadService usecases.UploadService, cloudinary config.CloudinaryConfig, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		cloudinary:    cloudinary,
		log:           log,
	}
}

// UploadImage
//
// @Summary      Upload an image
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /upload/image [post]
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	return h.handleUpload(c, constants.ResourceImage, "images")
}

// UploadVideo
//
// @Summary      Upload a video
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Video file"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /upload/video [post]
func (h *UploadHandler) UploadVideo(c *fiber.Ctx) error {
	return h.handleUpload(c, constants.ResourceVideo, "videos")
}

// UploadPDF
//
// @Summary      Upload a PDF
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF file"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /upload/pdf [post]
func (h *UploadHandler) UploadPDF(c *fiber.Ctx) error {
	return h.handleUpload(c, constants.ResourceRaw, "pdfs")
}

// UploadFile
//
// @Summary      Upload a generic file
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /upload/file [post]
func (h *UploadHandler) UploadFile(c *fiber.Ctx) error {
	return h.handleUpload(c, constants.ResourceRaw, "files")
}

func (h *UploadHandler) handleUpload(c *fiber.Ctx, resourceType, subfolder string) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apierrors.HandleError(c, h.log, apierrors.ErrNoFile(err))
	}

	resp, err := h.uploadService.Upload(c.UserContext(), fileHeader, resourceType, subfolder)
	if err != nil {
		return apierrors.HandleError(c, h.log, err)
	}
	return c.JSON(resp)
}

// Ping confirms the upload routes are mounted.
func (h *UploadHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(dto.PingResponse{OK: true, Msg: "upload routes mounted"})
}

// Diag reports which provider credentials are present, without leaking them.
func (h *UploadHandler) Diag(c *fiber.Ctx) error {
	keyPeek := h.cloudinary.APIKey
	if len(keyPeek) > 4 {
		keyPeek = keyPeek[:4]
	}
	return c.JSON(fiber.Map{
		"ok": true,
		"present": fiber.Map{
			"CLOUDINARY_CLOUD_NAME": h.cloudinary.CloudName != "",
			"CLOUDINARY_API_KEY":    h.cloudinary.APIKey != "",
			"CLOUDINARY_API_SECRET": h.cloudinary.APISecret != "",
		},
		"sampleCfg": fiber.Map{
			"cloud_name": h.cloudinary.CloudName,
			"api_key":    keyPeek + "***",
		},
	})
}

// SelfTest uploads a built-in 1x1 PNG straight to the provider.
func (h *UploadHandler) SelfTest(c *fiber.Ctx) error {
	resp, err := h.uploadService.SelfTest(c.UserContext())
	if err != nil {
		return apierrors.HandleError(c, h.log, err)
	}
	return c.JSON(resp)
}
