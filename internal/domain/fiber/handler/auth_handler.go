package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rizkyfm/job-board-api/internal/dto"
	"github.com/rizkyfm/job-board-api/internal/middleware"
	"github.com/rizkyfm/job-board-api/internal/usecase"
	"github.com/rizkyfm/job-board-api/internal/util"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App, requireAuth fiber.Handler) {
	auth := app.Group("/api/auth")
	auth.Post("/register", h.RegisterCandidate)
	auth.Post("/login", h.LoginCandidate)
	auth.Post("/company/register", h.RegisterCompany)
	auth.Post("/company/login", h.LoginCompany)
	auth.Get("/me", requireAuth, h.Me)
}

func (h *AuthHandler) RegisterCandidate(c *fiber.Ctx) error {
	var req dto.RegisterCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.NewBadRequest("Invalid request body"))
	}

	token, cand, err := h.uc.RegisterCandidate(req)
	if err != nil {
		return util.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Success: true,
		Message: "Candidate registered successfully",
		Token:   token,
		Data: fiber.Map{
			"id":      cand.ID,
			"email":   cand.Email,
			"profile": cand.Profile,
		},
	})
}

func (h *AuthHandler) LoginCandidate(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.NewBadRequest("Invalid request body"))
	}

	token, cand, err := h.uc.LoginCandidate(req)
	if err != nil {
		return util.ErrorResponse(c, err)
	}

	return c.JSON(dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		Data: fiber.Map{
			"id":      cand.ID,
			"email":   cand.Email,
			"profile": cand.Profile,
		},
	})
}

func (h *AuthHandler) RegisterCompany(c *fiber.Ctx) error {
	var req dto.RegisterCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.NewBadRequest("Invalid request body"))
	}

	token, comp, err := h.uc.RegisterCompany(req)
	if err != nil {
		return util.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Success: true,
		Message: "Company registered successfully",
		Token:   token,
		Data: fiber.Map{
			"id":         comp.ID,
			"email":      comp.Email,
			"name":       comp.Name,
			"location":   comp.Location,
			"isVerified": comp.IsVerified,
		},
	})
}

func (h *AuthHandler) LoginCompany(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.NewBadRequest("Invalid request body"))
	}

	token, comp, err := h.uc.LoginCompany(req)
	if err != nil {
		return util.ErrorResponse(c, err)
	}

	return c.JSON(dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		Data: fiber.Map{
			"id":         comp.ID,
			"email":      comp.Email,
			"name":       comp.Name,
			"location":   comp.Location,
			"isVerified": comp.IsVerified,
		},
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	data, err := h.uc.Me(middleware.Principal(c))
	if err != nil {
		return util.ErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: data})
}
