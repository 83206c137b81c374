package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rizkyfm/job-board-api/internal/dto"
	"github.com/rizkyfm/job-board-api/internal/middleware"
	"github.com/rizkyfm/job-board-api/internal/usecase"
	"github.com/rizkyfm/job-board-api/internal/util"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App, requireAuth, requireCompany fiber.Handler) {
	jobs := app.Group("/api/jobs")
	jobs.Get("/", h.List)
	// Registered ahead of /:id so the literal paths are not matched as ids.
	jobs.Get("/categories", h.Categories)
	jobs.Get("/locations", h.Locations)
	jobs.Get("/:id", h.Get)
	jobs.Post("/", requireAuth, requireCompany, h.Create)
	jobs.Put("/:id", requireAuth, requireCompany, h.Update)
	jobs.Delete("/:id", requireAuth, requireCompany, h.Delete)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	var f dto.JobFilter
	if err := c.QueryParser(&f); err != nil {
		return util.ErrorResponse(c, util.NewBadRequest("Invalid query parameters"))
	}

	jobs, total, f, err := h.uc.List(f)
	if err != nil {
		return util.ErrorResponse(c, err)
	}
	return util.ListResponse(c, jobs, len(jobs), total, f.Page, f.Limit)
}

func (h *JobHandler) Categories(c *fiber.Ctx) error {
	values, err := h.uc.Categories()
	if err != nil {
		return util.ErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: values})
}

func (h *JobHandler) Locations(c *fiber.Ctx) error {
	values, err := h.uc.Locations()
	if err != nil {
		return util.ErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: values})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: job})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.NewBadRequest("Invalid request body"))
	}

	job, err := h.uc.Create(middleware.Principal(c), req)
	if err != nil {
		return util.ErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusCreated,
		Data: job,
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.NewBadRequest("Invalid request body"))
	}

	job, err := h.uc.Update(middleware.Principal(c), c.Params("id"), req)
	if err != nil {
		return util.ErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: job})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(middleware.Principal(c), c.Params("id")); err != nil {
		return util.ErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job deleted successfully",
	})
}
