package handler

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rizkyfm/job-board-api/internal/service"
	"github.com/rizkyfm/job-board-api/internal/util"
)

type UploadHandler struct {
	files service.StorageServiceInterface
}

func NewUploadHandler(files service.StorageServiceInterface) *UploadHandler {
	return &UploadHandler{files: files}
}

func (h *UploadHandler) RegisterRoutes(app *fiber.App, requireAuth, requireCandidate, requireCompany fiber.Handler) {
	up := app.Group("/api/upload", requireAuth)
	up.Post("/resume", requireCandidate, h.upload("resume", service.KindResume, "Resume uploaded successfully"))
	up.Post("/portfolio", requireCandidate, h.upload("portfolio", service.KindPortfolio, "Portfolio uploaded successfully"))
	up.Post("/company-logo", requireCompany, h.upload("companyLogo", service.KindCompanyLogo, "Company logo uploaded successfully"))

	app.Get("/api/uploads/:type/:filename", h.Serve)
}

func (h *UploadHandler) upload(field, kind, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile(field)
		if err != nil {
			return util.ErrorResponse(c, util.NewBadRequest("No file uploaded"))
		}

		stored, err := h.files.Save(file, kind)
		if err != nil {
			return util.ErrorResponse(c, util.NewBadRequest(err.Error()))
		}

		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: message,
			Data:    stored,
		})
	}
}

func (h *UploadHandler) Serve(c *fiber.Ctx) error {
	path, contentType, err := h.files.Resolve(c.Params("type"), c.Params("filename"))
	if err != nil {
		if os.IsNotExist(err) {
			return util.ErrorResponse(c, util.NewNotFound("File not found"))
		}
		return util.ErrorResponse(c, util.NewBadRequest("Invalid file type"))
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.SendFile(path)
}
