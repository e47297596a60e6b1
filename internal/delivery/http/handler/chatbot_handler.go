package handler

import (
	"errors"
	"strings"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ChatbotHandler struct {
	employees usecase.EmployeeSearchUsecase
	staffing  usecase.StaffingSearchUsecase
}

func NewChatbotHandler(employees usecase.EmployeeSearchUsecase, staffing usecase.StaffingSearchUsecase) *ChatbotHandler {
	return &ChatbotHandler{employees: employees, staffing: staffing}
}

func (h *ChatbotHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/chatbot")
	grp.Post("/employee/query", h.EmployeeQuery)
	grp.Post("/manager/query", h.ManagerQuery)
	grp.Get("/employees/:employee_id/opportunities", h.Opportunities)
}

func (h *ChatbotHandler) EmployeeQuery(c fiber.Ctx) error {
	var req dto.EmployeeQueryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.EmployeeID) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "employee_id is required", nil, nil)
	}

	res, err := h.employees.ProcessQuery(c.Context(), req.EmployeeID, req.Query)
	if err != nil {
		return mapQueryError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromEmployeeQuery(res))
}

func (h *ChatbotHandler) ManagerQuery(c fiber.Ctx) error {
	var req dto.ManagerQueryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.staffing.ProcessQuery(c.Context(), req.UserRole, req.Query)
	if err != nil {
		return mapQueryError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromManagerQuery(res))
}

func (h *ChatbotHandler) Opportunities(c fiber.Ctx) error {
	employeeID := c.Params("employee_id")
	if strings.TrimSpace(employeeID) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "employee_id is required", nil, nil)
	}

	res, err := h.employees.FindPositions(c.Context(), employeeID)
	if err != nil {
		return mapQueryError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPositionSearch(res))
}

func mapQueryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
	case errors.Is(err, usecase.ErrNoSkillsSpecified):
		return middleware.NewAppError(fiber.StatusBadRequest, "No skills specified", nil, err)
	case errors.Is(err, usecase.ErrNoRequirements):
		return middleware.NewAppError(fiber.StatusBadRequest, "No skill requirements specified", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
