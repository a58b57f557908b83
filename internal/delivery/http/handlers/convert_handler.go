package handlers

import (
	"errors"
	"fmt"

	"docpress/internal/domain/dto"
	"docpress/internal/infrastructure/converter"
	"docpress/internal/usecases"
	"docpress/pkg/constants"
	apierrors "docpress/pkg/errors"
	"docpress/pkg/file"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ConvertHandler struct {
	convertService usecases.ConvertService
	log            *zap.Logger
}

func NewConvertHandler(convertService usecases.ConvertService, log *zap.Logger) *ConvertHandler {
	return &ConvertHandler{
		convertService: convertService,
		log:            log,
	}
}

// PdfToWord
//
// @Summary      Convert a PDF to DOCX
// @Description  Runs the office converter on the uploaded PDF and returns the DOCX
// @Tags         Convert
// @Accept       multipart/form-data
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param        file  formData  file  true  "PDF file"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ConvertErrorResponse
// @Router       /convert/pdf-to-word [post]
func (h *ConvertHandler) PdfToWord(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apierrors.HandleError(c, h.log, apierrors.ErrNoFile(err))
	}

	// Deliberately not the request context: the conversion has no caller
	// cancellation hook beyond its own timeout.
	doc, err := h.convertService.PdfToWord(c.UserContext(), fileHeader)
	if err != nil {
		var failure *usecases.ConversionFailure
		if errors.As(err, &failure) {
			return h.conversionError(c, failure)
		}
		return apierrors.HandleError(c, h.log, err)
	}

	c.Set(fiber.HeaderContentType, constants.MimeDocx)
	c.Set(fiber.HeaderContentDisposition, file.AttachmentDisposition(doc.Filename))
	return c.Send(doc.Content)
}

// DebugSoffice
//
// @Summary      Probe the office converter binary
// @Tags         Convert
// @Produce      plain
// @Success      200  {string}  string
// @Failure      500  {string}  string
// @Router       /debug/soffice [get]
func (h *ConvertHandler) DebugSoffice(c *fiber.Ctx) error {
	bin, version, err := h.convertService.ConverterVersion(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	return c.SendString(version + "\n" + bin)
}

func (h *ConvertHandler) conversionError(c *fiber.Ctx, failure *usecases.ConversionFailure) error {
	res := failure.Result

	var msg string
	switch res.Outcome {
	case converter.SpawnError:
		msg = "Conversion failed (spawn error)"
	case converter.TimedOut, converter.Signaled:
		msg = "Converter interrupted"
	case converter.ExitError:
		msg = fmt.Sprintf("Converter exit %d", res.ExitCode)
	case converter.ReadbackError:
		msg = "Readback failed"
	default:
		msg = "Conversion failed"
	}

	h.log.Error("conversion failed",
		zap.String("outcome", res.Outcome.String()),
		zap.String("signal", res.Signal),
		zap.Bool("killed_by_timeout", res.KilledByTimeout),
		zap.Error(res.Err))

	body := dto.ConvertErrorResponse{
		Error:           msg,
		Signal:          res.Signal,
		KilledByTimeout: res.KilledByTimeout,
		Stdout:          res.Stdout,
		Stderr:          res.Stderr,
	}
	if res.Err != nil {
		body.Details = res.Err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}
