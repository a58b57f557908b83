package routers

import (
	"docpress/internal/delivery/http/handlers"
	"docpress/internal/usecases"
	"docpress/pkg/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func SetupProxyRoutes(app *fiber.App, proxyService usecases.ProxyService, log *zap.Logger) {
	h := handlers.NewProxyHandler(proxyService, log)

	api := app.Group("/api")
	api.Get("/download", h.Download)
}

func SetupConvertRoutes(app *fiber.App, convertService usecases.ConvertService, log *zap.Logger) {
	h := handlers.NewConvertHandler(convertService, log)

	api := app.Group("/api")
	api.Post("/convert/pdf-to-word", h.PdfToWord)
	// Alias kept so older frontends hitting the platform-specific path
	// still land on the converter.
	api.Post("/convert/pdf-to-word/word", h.PdfToWord)
	api.Get("/debug/soffice", h.DebugSoffice)
}

func SetupAadlRoutes(app *fiber.App, aadlService usecases.AadlService, log *zap.Logger) {
	h := handlers.NewAadlHandler(aadlService, log)

	api := app.Group("/api")
	api.Get("/listdemandesaadl", h.List)
	api.Post("/aadl", h.Create)
}

func SetupUploadRoutes(app *fiber.App, uploadService usecases.UploadService, cfg *config.Config, log *zap.Logger) {
	h := handlers.NewUploadHandler(uploadService, cfg.Cloudinary, log)

	api := app.Group("/api")
	api.Get("/upload/ping", h.Ping)
	api.Get("/diag/cloudinary", h.Diag)
	api.Post("/upload/_selftest", h.SelfTest)
	api.Post("/upload/image", h.UploadImage)
	api.Post("/upload/video", h.UploadVideo)
	api.Post("/upload/pdf", h.UploadPDF)
	api.Post("/upload/file", h.UploadFile)
}

func SetupGroupRoutes(app *fiber.App, groupService usecases.PrintGroupService, log *zap.Logger) {
	h := handlers.NewPrintGroupHandler(groupService, log)

	api := app.Group("/api")
	api.Get("/docimpression", h.List)
	api.Post("/docimpression", h.Create)
	api.Delete("/docimpression/file", h.RemoveFile)
}
