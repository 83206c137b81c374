package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/rizkyfm/job-board-api/internal/dto"
	"github.com/rizkyfm/job-board-api/internal/middleware"
	"github.com/rizkyfm/job-board-api/internal/usecase"
	"github.com/rizkyfm/job-board-api/internal/util"
)

type ApplicationHandler struct {
	uc *usecase.ApplicationUsecase
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App, requireAuth, requireCandidate, requireCompany fiber.Handler) {
	apps := app.Group("/api/applications", requireAuth)
	apps.Post("/", requireCandidate, h.Submit)
	apps.Get("/", requireCandidate, h.ListMine)
	// Alias kept for clients built against the original route map.
	apps.Get("/my-applications", requireCandidate, h.ListMine)
	apps.Get("/:id", h.Get)
	apps.Put("/:id/status", requireCompany, h.UpdateStatus)

	app.Get("/api/jobs/:id/applications", requireAuth, requireCompany, h.ListForJob)
}

// Submit assembles the workflow request from the multipart form: jobId plus
// three JSON-encoded parts, a required resume file, and an optional portfolio.
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	req := dto.SubmitApplicationRequest{JobID: c.FormValue("jobId")}

	parseErrs := map[string]string{}
	decodePart(c, "personalInfo", &req.PersonalInfo, parseErrs)
	decodePart(c, "professionalInfo", &req.ProfessionalInfo, parseErrs)
	decodePart(c, "applicationDetails", &req.ApplicationDetails, parseErrs)
	if len(parseErrs) > 0 {
		return util.ErrorResponse(c, util.NewValidationError(parseErrs))
	}

	if file, err := c.FormFile("resume"); err == nil {
		req.Resume = file
	}
	if file, err := c.FormFile("portfolio"); err == nil {
		req.Portfolio = file
	}

	app, err := h.uc.Submit(middleware.Principal(c).ID, req)
	if err != nil {
		return util.ErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Application submitted successfully",
		Data:    app,
	})
}

func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	var f dto.ApplicationFilter
	if err := c.QueryParser(&f); err != nil {
		return util.ErrorResponse(c, util.NewBadRequest("Invalid query parameters"))
	}

	apps, total, f, err := h.uc.ListMine(middleware.Principal(c).ID, f)
	if err != nil {
		return util.ErrorResponse(c, err)
	}
	return util.ListResponse(c, apps, len(apps), total, f.Page, f.Limit)
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	app, err := h.uc.Get(middleware.Principal(c), c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: app})
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.NewBadRequest("Invalid request body"))
	}

	app, err := h.uc.UpdateStatus(middleware.Principal(c), c.Params("id"), req)
	if err != nil {
		return util.ErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Application status updated successfully",
		Data:    app,
	})
}

func (h *ApplicationHandler) ListForJob(c *fiber.Ctx) error {
	var f dto.ApplicationFilter
	if err := c.QueryParser(&f); err != nil {
		return util.ErrorResponse(c, util.NewBadRequest("Invalid query parameters"))
	}

	apps, total, f, err := h.uc.ListForJob(middleware.Principal(c), c.Params("id"), f)
	if err != nil {
		return util.ErrorResponse(c, err)
	}
	return util.ListResponse(c, apps, len(apps), total, f.Page, f.Limit)
}

// decodePart unmarshals one JSON form field. An absent part is left zeroed so
// struct validation reports its required fields together with everything else.
func decodePart(c *fiber.Ctx, name string, dst any, errs map[string]string) {
	raw := c.FormValue(name)
	if raw == "" {
		return
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		errs[name] = "must be valid JSON"
	}
}
