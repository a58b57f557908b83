package handlers

import (
	"docpress/internal/domain/dto"
	"docpress/internal/usecases"
	apierrors "docpress/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PrintGroupHandler struct {
	groupService usecases.PrintGroupService
	log          *zap.Logger
}

func NewPrintGroupHandler(groupService usecases.PrintGroupService, log *zap.Logger) *PrintGroupHandler {
	return &PrintGroupHandler{
		groupService: groupService,
		log:          log,
	}
}

// List
//
// @Summary      List print groups, newest first
// @Tags         DocImpression
// @Produce      json
// @Success      200  {array}   entities.PrintGroup
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /docimpression [get]
func (h *PrintGroupHandler) List(c *fiber.Ctx) error {
	groups, err := h.groupService.List(c.UserContext())
	if err != nil {
		return apierrors.HandleError(c, h.log, err)
	}
	return c.JSON(groups)
}

// Create
//
// @Summary      Create a print group
// @Description  Requires a name and at least one asset reference
// @Tags         DocImpression
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateGroupRequestDTO true "Group"
// @Success      200      {object}  dto.CreateGroupResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /docimpression [post]
func (h *PrintGroupHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGroupRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	id, err := h.groupService.Create(c.UserContext(), &req)
	if err != nil {
		return apierrors.HandleError(c, h.log, err)
	}
	return c.JSON(dto.CreateGroupResponse{OK: true, ID: id})
}

// RemoveFile
//
// @Summary      Remove one asset from all groups
// @Description  Deletes the asset at the provider (best effort), then pulls its reference from every group
// @Tags         DocImpression
// @Produce      json
// @Param        public_id  query  string false "Provider public id"
// @Param        url        query  string false "Asset URL"
// @Success      200  {object}  dto.RemoveFileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /docimpression/file [delete]
func (h *PrintGroupHandler) RemoveFile(c *fiber.Ctx) error {
	updated, err := h.groupService.RemoveFile(c.UserContext(), c.Query("public_id"), c.Query("url"))
	if err != nil {
		return apierrors.HandleError(c, h.log, err)
	}
	return c.JSON(dto.RemoveFileResponse{OK: true, Updated: updated})
}
