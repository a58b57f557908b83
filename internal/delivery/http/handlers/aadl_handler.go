package handlers

import (
	"docpress/internal/domain/dto"
	"docpress/internal/usecases"
	apierrors "docpress/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AadlHandler struct {
	aadlService usecases.AadlService
	log         *zap.Logger
}

func NewAadlHandler(aadlService usecases.AadlService, log *zap.Logger) *AadlHandler {
	return &AadlHandler{
		aadlService: aadlService,
		log:         log,
	}
}

// Create
//
// @Summary      Submit a housing-application request
// @Tags         Aadl
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateDemandeDTO true "Request"
// @Success      201      {object}  entities.AadlDemande
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /aadl [post]
func (h *AadlHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDemandeDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	demande, err := h.aadlService.Create(c.UserContext(), &req)
	if err != nil {
		return apierrors.HandleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(demande)
}

// List
//
// @Summary      List housing-application requests
// @Tags         Aadl
// @Produce      json
// @Success      200  {array}   entities.AadlDemande
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /listdemandesaadl [get]
func (h *AadlHandler) List(c *fiber.Ctx) error {
	demandes, err := h.aadlService.List(c.UserContext())
	if err != nil {
		return apierrors.HandleError(c, h.log, err)
	}
	return c.JSON(demandes)
}
