package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/store"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	st := store.NewFromSeed()
	employees := usecase.NewEmployeeSearchUsecase(st)
	staffing := usecase.NewStaffingSearchUsecase(st, nil, nil)

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	h := NewChatbotHandler(employees, staffing)
	h.RegisterRoutes(app.Group("/api"))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) semanticResponse {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out semanticResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, raw)
	}
	return out
}

func TestEmployeeQueryOpenPositions(t *testing.T) {
	app := newTestApp(t)

	env := postJSON(t, app, "/api/chatbot/employee/query", dto.EmployeeQueryRequest{
		EmployeeID: "EMP001",
		Query:      "Show me open positions matching my skills",
	})
	if env.Status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", env.Status)
	}

	var data dto.EmployeeQueryResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Type != string(usecase.QueryKindPositions) {
		t.Fatalf("type = %q, want %q", data.Type, usecase.QueryKindPositions)
	}
	if data.Positions == nil || data.Positions.Employee != "Raj Sharma" {
		t.Fatalf("unexpected positions payload: %+v", data.Positions)
	}
	if len(data.Positions.Matches) == 0 {
		t.Fatal("expected at least one match for EMP001")
	}
	top := data.Positions.Matches[0]
	if top.RequisitionID != "REQ001" || top.TotalScore != 72.48 {
		t.Fatalf("top match = %s score %.2f, want REQ001 72.48", top.RequisitionID, top.TotalScore)
	}
	if top.Availability.Status != "IMMEDIATELY_AVAILABLE" {
		t.Fatalf("availability = %q", top.Availability.Status)
	}
}

func TestEmployeeQueryUnknownEmployee(t *testing.T) {
	app := newTestApp(t)

	env := postJSON(t, app, "/api/chatbot/employee/query", dto.EmployeeQueryRequest{
		EmployeeID: "EMP999",
		Query:      "Show me open positions",
	})
	if env.Status != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", env.Status)
	}
	if env.Message != "Employee not found" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestEmployeeQueryMissingEmployeeID(t *testing.T) {
	app := newTestApp(t)

	env := postJSON(t, app, "/api/chatbot/employee/query", dto.EmployeeQueryRequest{
		Query: "Show me open positions",
	})
	if env.Status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", env.Status)
	}
}

func TestManagerQueryStaffingSearch(t *testing.T) {
	app := newTestApp(t)

	env := postJSON(t, app, "/api/chatbot/manager/query", dto.ManagerQueryRequest{
		UserRole: "MANAGER",
		Query:    "Find employees with Java 5 years and React 2 years",
	})
	if env.Status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", env.Status)
	}

	var data dto.ManagerQueryResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Type != string(usecase.QueryKindStaffing) {
		t.Fatalf("type = %q, want %q", data.Type, usecase.QueryKindStaffing)
	}
	if data.Staffing == nil || data.Staffing.TotalEmployeesFound == 0 {
		t.Fatalf("unexpected staffing payload: %+v", data.Staffing)
	}
	for _, m := range data.Staffing.Matches {
		if m.CurrentStatus == "ACTIVE" {
			t.Fatalf("active employee %s leaked into staffing results", m.EmployeeID)
		}
	}
}

func TestManagerQueryHelpOnUnroutedIntent(t *testing.T) {
	app := newTestApp(t)

	env := postJSON(t, app, "/api/chatbot/manager/query", dto.ManagerQueryRequest{
		UserRole: "MANAGER",
		Query:    "hello",
	})
	if env.Status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", env.Status)
	}

	var data dto.ManagerQueryResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Type != string(usecase.QueryKindHelp) {
		t.Fatalf("type = %q, want %q", data.Type, usecase.QueryKindHelp)
	}
	if data.Help == nil || data.Help.Response == "" {
		t.Fatal("expected help payload")
	}
}

func TestOpportunitiesEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/chatbot/employees/emp001/opportunities", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env semanticResponse
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", env.Status)
	}

	var data dto.PositionSearchResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	// Lowercase path param still resolves; lookup is case-insensitive.
	if data.Employee != "Raj Sharma" {
		t.Fatalf("employee = %q, want Raj Sharma", data.Employee)
	}
	if data.TotalMatches == 0 {
		t.Fatal("expected matches for EMP001")
	}
}

func TestAssistantUnavailableWithoutAdvisor(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewAssistantHandler(nil).RegisterRoutes(app.Group("/api"))

	env := postJSON(t, app, "/api/chatbot/assistant/query", dto.AssistantQueryRequest{
		UserRole: "EMPLOYEE",
		Query:    "any positions for me?",
	})
	if env.Status != fiber.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", env.Status)
	}
	if env.Message != "Assistant is not configured" {
		t.Fatalf("message = %q", env.Message)
	}
}
