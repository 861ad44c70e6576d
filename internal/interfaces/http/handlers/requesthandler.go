package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"netgrid/internal/application/request/usecases"
	"netgrid/internal/shared/biztime"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
	"netgrid/internal/shared/utils"
)

type CreateRequestLine struct {
	ResourceID uint `json:"resource_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateRequestRequest struct {
	LocationID     uint                `json:"location_id" binding:"required"`
	ConnectionType string              `json:"connection_type" binding:"required"`
	Lines          []CreateRequestLine `json:"lines" binding:"required,min=1,dive"`
}

type RequestHandler struct {
	createRequestUC  usecases.CreateRequestExecutor
	approveRequestUC usecases.ApproveRequestExecutor
	rejectRequestUC  usecases.RejectRequestExecutor
	cancelRequestUC  usecases.CancelRequestExecutor
	getRequestUC     usecases.GetRequestExecutor
	listRequestsUC   usecases.ListRequestsExecutor
	generateReportUC usecases.GenerateReportExecutor
	lockRetries      int
	retryDelay       time.Duration
	logger           logger.Interface
}

func NewRequestHandler(
	createRequestUC usecases.CreateRequestExecutor,
	approveRequestUC usecases.ApproveRequestExecutor,
	rejectRequestUC usecases.RejectRequestExecutor,
	cancelRequestUC usecases.CancelRequestExecutor,
	getRequestUC usecases.GetRequestExecutor,
	listRequestsUC usecases.ListRequestsExecutor,
	generateReportUC usecases.GenerateReportExecutor,
	lockRetries int,
	retryDelay time.Duration,
) *RequestHandler {
	return &RequestHandler{
		createRequestUC:  createRequestUC,
		approveRequestUC: approveRequestUC,
		rejectRequestUC:  rejectRequestUC,
		cancelRequestUC:  cancelRequestUC,
		getRequestUC:     getRequestUC,
		listRequestsUC:   listRequestsUC,
		generateReportUC: generateReportUC,
		lockRetries:      lockRetries,
		retryDelay:       retryDelay,
		logger:           logger.NewLogger(),
	}
}

// CreateRequest handles POST /requests. Lock timeouts are retryable, so
// the handler retries a bounded number of times before surfacing 503.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	caller := actorFromContext(c)
	lines := make([]usecases.CreateRequestLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, usecases.CreateRequestLine{
			ResourceID: line.ResourceID,
			Quantity:   line.Quantity,
		})
	}

	cmd := usecases.CreateRequestCommand{
		UserID:         caller.ID,
		LocationID:     req.LocationID,
		ConnectionType: req.ConnectionType,
		Lines:          lines,
	}

	var result *usecases.CreateRequestResult
	var err error
	for attempt := 0; ; attempt++ {
		result, err = h.createRequestUC.Execute(c.Request.Context(), cmd)
		if err == nil || !errors.IsLockTimeoutError(err) || attempt >= h.lockRetries {
			break
		}
		h.logger.Warnw("lock timeout creating request, retrying",
			"attempt", attempt+1,
			"user_id", caller.ID)
		time.Sleep(h.retryDelay)
	}
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Request created successfully")
}

// GetRequest handles GET /requests/:id
func (h *RequestHandler) GetRequest(c *gin.Context) {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	caller := actorFromContext(c)
	result, err := h.getRequestUC.Execute(c.Request.Context(), usecases.GetRequestCommand{
		RequestID: requestID,
		ActorID:   caller.ID,
		ActorRole: caller.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListRequests handles GET /requests
func (h *RequestHandler) ListRequests(c *gin.Context) {
	cmd, err := h.parseListCommand(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listRequestsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Total, result.Page, result.PageSize)
}

// ApproveRequest handles POST /requests/:id/approve
func (h *RequestHandler) ApproveRequest(c *gin.Context) {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	caller := actorFromContext(c)
	result, err := h.approveRequestUC.Execute(c.Request.Context(), usecases.ApproveRequestCommand{
		RequestID: requestID,
		ActorID:   caller.ID,
		ActorRole: caller.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request approved", result)
}

// RejectRequest handles POST /requests/:id/reject
func (h *RequestHandler) RejectRequest(c *gin.Context) {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	caller := actorFromContext(c)
	result, err := h.rejectRequestUC.Execute(c.Request.Context(), usecases.RejectRequestCommand{
		RequestID: requestID,
		ActorID:   caller.ID,
		ActorRole: caller.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request rejected", result)
}

// CancelRequest handles POST /requests/:id/cancel
func (h *RequestHandler) CancelRequest(c *gin.Context) {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	caller := actorFromContext(c)
	result, err := h.cancelRequestUC.Execute(c.Request.Context(), usecases.CancelRequestCommand{
		RequestID: requestID,
		ActorID:   caller.ID,
		ActorRole: caller.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request cancelled", result)
}

// GenerateReport handles GET /reports/requests
func (h *RequestHandler) GenerateReport(c *gin.Context) {
	caller := actorFromContext(c)

	result, err := h.generateReportUC.Execute(c.Request.Context(), usecases.GenerateReportCommand{
		ActorID:   caller.ID,
		ActorRole: caller.Role,
		Period:    c.Query("period"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Status:    c.Query("status"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *RequestHandler) parseListCommand(c *gin.Context) (usecases.ListRequestsCommand, error) {
	caller := actorFromContext(c)
	pagination := utils.ParsePagination(c)

	cmd := usecases.ListRequestsCommand{
		ActorID:   caller.ID,
		ActorRole: caller.Role,
		Status:    c.Query("status"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}

	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return cmd, errors.NewValidationError("invalid user_id parameter")
		}
		userID := uint(id)
		cmd.UserID = &userID
	}

	if raw := c.Query("start_date"); raw != "" {
		start, err := biztime.ParseDateInBizTimezone(raw)
		if err != nil {
			return cmd, errors.NewValidationError("invalid start_date, expected YYYY-MM-DD")
		}
		cmd.StartDate = &start
	}

	if raw := c.Query("end_date"); raw != "" {
		parsed, err := biztime.ParseDateInBizTimezone(raw)
		if err != nil {
			return cmd, errors.NewValidationError("invalid end_date, expected YYYY-MM-DD")
		}
		// Make the end date inclusive.
		end := parsed.AddDate(0, 0, 1)
		cmd.EndDate = &end
	}

	return cmd, nil
}
