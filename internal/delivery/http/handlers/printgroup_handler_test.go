package handlers_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"docpress/internal/delivery/http/routers"
	"docpress/internal/domain/dto"
	"docpress/internal/domain/entities"
	apierrors "docpress/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGroupService struct {
	groups []entities.PrintGroup
}

func (s *stubGroupService) Create(ctx context.Context, req *dto.CreateGroupRequestDTO) (string, error) {
	if strings.TrimSpace(req.Name) == "" || len(req.Files) == 0 {
		return "", apierrors.ErrMissingParam("name + files required")
	}
	return "65f000000000000000000001", nil
}

func (s *stubGroupService) List(ctx context.Context) ([]entities.PrintGroup, error) {
	return s.groups, nil
}

func (s *stubGroupService) RemoveFile(ctx context.Context, publicID, url string) (int64, error) {
	if publicID == "" && url == "" {
		return 0, apierrors.ErrMissingParam("public_id or url required")
	}
	return 2, nil
}

func newGroupApp() *fiber.App {
	app := fiber.New()
	routers.SetupGroupRoutes(app, &stubGroupService{}, zap.NewNop())
	return app
}

func TestCreateGroupWithoutFilesReturns400(t *testing.T) {
	app := newGroupApp()

	req := httptest.NewRequest("POST", "/api/docimpression",
		strings.NewReader(`{"name":"dossier","files":[]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateGroupReturnsID(t *testing.T) {
	app := newGroupApp()

	req := httptest.NewRequest("POST", "/api/docimpression",
		strings.NewReader(`{"name":"dossier","files":[{"url":"https://host/a"}]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.CreateGroupResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.OK)
	assert.NotEmpty(t, body.ID)
}

func TestRemoveFileWithoutSelectorReturns400(t *testing.T) {
	app := newGroupApp()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/docimpression/file", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRemoveFileReportsUpdatedCount(t *testing.T) {
	app := newGroupApp()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/docimpression/file?public_id=docs%2Fabc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.RemoveFileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2), body.Updated)
}
