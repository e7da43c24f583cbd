package balance

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
	l := zap.L().Named("balance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("balance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Initialize(c *gin.Context) {
	h.logger.Debug("http initialize balances")
	var req InitializeBalancesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http initialize balances validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.Initialize(c.Request.Context(), req.EmployeeID, req.Year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetForEmployee(c *gin.Context) {
	employeeID := c.Param("id")
	year, _ := strconv.Atoi(c.Query("year"))
	h.logger.Debug("http get balances",
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

func (h *Handler) CarryForward(c *gin.Context) {
	h.logger.Debug("http carry forward balances")
	var req CarryForwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http carry forward validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	processed, err := h.service.CarryForward(c.Request.Context(), req.Year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, CarryForwardResponse{
		Year:           req.Year,
		ProcessedCount: processed,
	}, nil)
}
