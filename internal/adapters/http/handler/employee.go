package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ogurasousui/codex-hr-roster/internal/core/employee"
	"github.com/ogurasousui/codex-hr-roster/internal/lib/logger/sl"
	"github.com/ogurasousui/codex-hr-roster/internal/metrics"
)

const dateLayout = "2006-01-02"

// EmployeeHandler は社員ユースケースの HTTP 実装です。
type EmployeeHandler struct {
	svc     employee.UseCase
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewEmployeeHandler は EmployeeHandler を生成します。
func NewEmployeeHandler(svc employee.UseCase, m *metrics.Metrics, log *slog.Logger) *EmployeeHandler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &EmployeeHandler{svc: svc, metrics: m, log: log}
}

type listEmployeesQuery struct {
	Order string `form:"order"`
}

type fireRequest struct {
	Reason       string `json:"reason" binding:"required"`
	ActingUserID int64  `json:"acting_user_id" binding:"required"`
}

type employeeResponse struct {
	ID               int64   `json:"id"`
	UserID           *int64  `json:"user_id,omitempty"`
	FullName         string  `json:"full_name"`
	Profession       string  `json:"profession"`
	Active           bool    `json:"active"`
	PhotoPath        *string `json:"photo_path,omitempty"`
	PassportScanPath *string `json:"passport_scan_path,omitempty"`
}

type rosterEntryResponse struct {
	employeeResponse
	RiskScore int `json:"risk_score"`
}

type rosterResponse struct {
	Order     string                `json:"order"`
	Employees []rosterEntryResponse `json:"employees"`
}

type detailResponse struct {
	employeeResponse
	Age             *int    `json:"age,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty"`
	HireDate        *string `json:"hire_date,omitempty"`
}

type riskResponse struct {
	EmployeeID int64 `json:"employee_id"`
	RiskScore  int   `json:"risk_score"`
}

type firingResponse struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Reason     string    `json:"reason"`
	FiredBy    int64     `json:"fired_by"`
	FiredAt    time.Time `json:"fired_at"`
}

// ListEmployees は在籍社員をリスクスコア順で返します。
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	var query listEmployeesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	order := employee.SortOrder(query.Order)
	roster, err := h.svc.ListActive(c.Request.Context(), employee.ListActiveInput{Order: order})

	scores := make([]int, 0, len(roster))
	for _, entry := range roster {
		scores = append(scores, entry.RiskScore)
	}
	h.metrics.ObserveRoster(scores, err)

	if err != nil {
		h.fail(c, "list employees", err)
		return
	}

	echoed := strings.ToLower(strings.TrimSpace(query.Order))
	if echoed == "" {
		echoed = string(employee.SortDescending)
	}

	resp := rosterResponse{Order: echoed, Employees: make([]rosterEntryResponse, 0, len(roster))}
	for _, entry := range roster {
		resp.Employees = append(resp.Employees, rosterEntryResponse{
			employeeResponse: toEmployeeResponse(entry.Employee),
			RiskScore:        entry.RiskScore,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// GetEmployee は社員詳細を返します。
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := h.employeeID(c)
	if !ok {
		return
	}

	detail, err := h.svc.GetEmployeeDetail(c.Request.Context(), employee.GetEmployeeDetailInput{ID: id})
	if err != nil {
		h.fail(c, "get employee", err)
		return
	}

	resp := detailResponse{
		employeeResponse: toEmployeeResponse(detail.Employee),
		Age:              detail.Age,
		ExperienceYears:  detail.ExperienceYears,
	}
	if detail.HireDate != nil {
		hired := detail.HireDate.Format(dateLayout)
		resp.HireDate = &hired
	}

	c.JSON(http.StatusOK, resp)
}

// GetRiskScore は社員の現在のリスクスコアを返します。
func (h *EmployeeHandler) GetRiskScore(c *gin.Context) {
	id, ok := h.employeeID(c)
	if !ok {
		return
	}

	score, err := h.svc.ScoreEmployee(c.Request.Context(), employee.ScoreEmployeeInput{ID: id})
	if err != nil {
		h.fail(c, "score employee", err)
		return
	}

	c.JSON(http.StatusOK, riskResponse{EmployeeID: id, RiskScore: score})
}

// FireEmployee は社員を解雇し、作成された解雇記録を返します。
func (h *EmployeeHandler) FireEmployee(c *gin.Context) {
	id, ok := h.employeeID(c)
	if !ok {
		return
	}

	var req fireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.ObserveFiring("invalid")
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	record, err := h.svc.Fire(c.Request.Context(), employee.FireInput{
		EmployeeID:   id,
		Reason:       req.Reason,
		ActingUserID: req.ActingUserID,
	})
	h.metrics.ObserveFiring(firingResult(err))
	if err != nil {
		h.fail(c, "fire employee", err, slog.Int64("employee_id", id), slog.Int64("acting_user_id", req.ActingUserID))
		return
	}

	c.JSON(http.StatusCreated, firingResponse{
		ID:         record.ID,
		EmployeeID: record.EmployeeID,
		Reason:     record.Reason,
		FiredBy:    record.FiredBy,
		FiredAt:    record.FiredAt,
	})
}

func (h *EmployeeHandler) employeeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: employee.ErrInvalidID.Error()})
		return 0, false
	}
	return id, true
}

func (h *EmployeeHandler) fail(c *gin.Context, op string, err error, attrs ...any) {
	status := toHTTPStatus(err)
	args := append([]any{slog.String("op", op), slog.Int("status", status), sl.Err(err)}, attrs...)
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(c.Request.Context(), "request failed", args...)
	} else {
		h.log.InfoContext(c.Request.Context(), "request rejected", args...)
	}
	c.JSON(status, errorResponse{Error: publicMessage(status, err)})
}

func toEmployeeResponse(emp *employee.Employee) employeeResponse {
	if emp == nil {
		return employeeResponse{}
	}
	return employeeResponse{
		ID:               emp.ID,
		UserID:           emp.UserID,
		FullName:         emp.FullName,
		Profession:       emp.Profession,
		Active:           emp.Active,
		PhotoPath:        emp.PhotoPath,
		PassportScanPath: emp.PassportScanPath,
	}
}
