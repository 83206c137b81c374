package util

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/rizkyfm/job-board-api/internal/config"
	"github.com/rizkyfm/job-board-api/internal/response"
	"github.com/sirupsen/logrus"
)

type SuccessResponseFormat struct {
	Code    int
	Message string
	Data    any
}

type OrderedSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type OrderedErrorResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors,omitempty"`
	DevMessage string            `json:"dev_message,omitempty"`
	Trace      string            `json:"trace,omitempty"`
}

// SuccessResponse sends the standard success envelope.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(OrderedSuccessResponse{
		Success: true,
		Message: params.Message,
		Data:    params.Data,
	})
}

// ListResponse sends one page of results with pagination metadata.
func ListResponse(c *fiber.Ctx, data any, count int, total int64, page, limit int) error {
	return c.Status(fiber.StatusOK).JSON(response.NewList(data, count, total, page, limit))
}

// ErrorResponse sends the standard error envelope. Anything that is not an
// *AppError is treated as unexpected: logged, and reported with a generic
// message (plus a stack trace outside production).
func ErrorResponse(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternal(err)
	}

	resp := OrderedErrorResponse{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Fields,
	}

	if appErr.Code == fiber.StatusInternalServerError {
		logrus.WithError(err).Error("internal server error")
		if config.LoadAppConfig().Env != "production" && appErr.Err != nil {
			resp.DevMessage = appErr.Err.Error()
			resp.Trace = string(debug.Stack())
		}
	}

	return c.Status(appErr.Code).JSON(resp)
}
