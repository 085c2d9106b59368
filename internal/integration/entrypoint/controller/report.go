package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetlens/backend/internal/application/usecase/report"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
	"github.com/budgetlens/backend/internal/integration/entrypoint/dto"
	"github.com/budgetlens/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles dashboard statistics and monthly report endpoints.
type ReportController struct {
	statsUseCase   *report.GetDashboardStatsUseCase
	monthlyUseCase *report.GetMonthlyReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	statsUseCase *report.GetDashboardStatsUseCase,
	monthlyUseCase *report.GetMonthlyReportUseCase,
) *ReportController {
	return &ReportController{
		statsUseCase:   statsUseCase,
		monthlyUseCase: monthlyUseCase,
	}
}

// DashboardStats handles GET /dashboard/stats requests.
func (c *ReportController) DashboardStats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), report.GetDashboardStatsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard statistics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(output))
}

// Monthly handles GET /reports/monthly requests. The month query parameter is
// required and must be in YYYY-MM format.
func (c *ReportController) Monthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), report.GetMonthlyReportInput{
		UserID: userID,
		Month:  ctx.Query("month"),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyReportResponse(output))
}

// handleReportError maps report errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := http.StatusBadRequest
		if reportErr.Code == domainerror.ErrCodeReportInternalError {
			statusCode = http.StatusInternalServerError
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
