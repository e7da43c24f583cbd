package leave

import (
	"net/http"
	"strconv"

	"github.com/Harendra62/leave-management/internal/shared/apperror"
	"github.com/Harendra62/leave-management/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindingError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create leave request")
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create leave request validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get leave request", zap.String("request_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetForEmployee(c *gin.Context) {
	employeeID := c.Param("id")
	year, _ := strconv.Atoi(c.Query("year"))
	h.logger.Debug("http get employee leave requests",
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
	)

	resp, err := h.service.GetForEmployee(c.Request.Context(), employeeID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetForEmployeeByNumber(c *gin.Context) {
	number := c.Param("number")
	year, _ := strconv.Atoi(c.Query("year"))
	h.logger.Debug("http get employee leave requests by number",
		zap.String("employee_number", number),
		zap.Int("year", year),
	)

	resp, err := h.service.GetForEmployeeByNumber(c.Request.Context(), number, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPendingForManager(c *gin.Context) {
	managerID := c.Param("managerId")
	h.logger.Debug("http get pending approvals", zap.String("manager_id", managerID))

	resp, err := h.service.GetPendingForManager(c.Request.Context(), managerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Decide(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http decide leave request", zap.String("request_id", id))
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http decide leave request validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http update leave request", zap.String("request_id", id))
	var req UpdateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update leave request validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http cancel leave request", zap.String("request_id", id))

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Validate(c *gin.Context) {
	h.logger.Debug("http validate leave request")
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http validate leave request binding failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	verdict, err := h.service.Validate(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, verdict, nil)
}

func (h *Handler) ValidateComprehensive(c *gin.Context) {
	h.logger.Debug("http comprehensive validate leave request")
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http comprehensive validate binding failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	verdict, err := h.service.ValidateComprehensive(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, verdict, nil)
}

func (h *Handler) GetEmployeeSummary(c *gin.Context) {
	employeeID := c.Param("id")
	year, _ := strconv.Atoi(c.Query("year"))
	h.logger.Debug("http employee leave summary",
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
	)

	resp, err := h.service.GetEmployeeSummary(c.Request.Context(), employeeID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Report(c *gin.Context) {
	h.logger.Debug("http leave report")
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http leave report binding failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Report(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
