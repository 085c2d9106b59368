package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetlens/backend/internal/application/usecase/aireport"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
	"github.com/budgetlens/backend/internal/integration/entrypoint/dto"
	"github.com/budgetlens/backend/internal/integration/entrypoint/middleware"
)

// AIReportController handles AI monthly report endpoints.
type AIReportController struct {
	listUseCase         *aireport.ListReportsUseCase
	generateUseCase     *aireport.GenerateReportUseCase
	autoGenerateUseCase *aireport.AutoGenerateUseCase
}

// NewAIReportController creates a new AI report controller instance.
func NewAIReportController(
	listUseCase *aireport.ListReportsUseCase,
	generateUseCase *aireport.GenerateReportUseCase,
	autoGenerateUseCase *aireport.AutoGenerateUseCase,
) *AIReportController {
	return &AIReportController{
		listUseCase:         listUseCase,
		generateUseCase:     generateUseCase,
		autoGenerateUseCase: autoGenerateUseCase,
	}
}

// List handles GET /ai-reports requests.
func (c *AIReportController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), aireport.ListReportsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve reports",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAIReportListResponse(output.Reports))
}

// Generate handles POST /ai-reports/generate requests. Generation is
// idempotent per month: an existing report is returned with a 200, a fresh
// one with a 201.
func (c *AIReportController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.GenerateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Month is required",
			Code:  string(domainerror.ErrCodeMissingMonth),
		})
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), aireport.GenerateReportInput{
		UserID: userID,
		Month:  req.Month,
	})
	if err != nil {
		c.handleAIReportError(ctx, err)
		return
	}

	response := dto.ToAIReportResponse(output.Report)
	response.Cached = output.Cached

	statusCode := http.StatusCreated
	if output.Cached {
		statusCode = http.StatusOK
	}
	ctx.JSON(statusCode, response)
}

// AutoGenerate handles POST /ai-reports/auto-generate requests. The route is
// guarded by the cron secret, not user authentication.
func (c *AIReportController) AutoGenerate(ctx *gin.Context) {
	var req dto.AutoGenerateRequest
	// Body is optional; an empty body means the previous calendar month.
	_ = ctx.ShouldBindJSON(&req)

	output, err := c.autoGenerateUseCase.Execute(ctx.Request.Context(), aireport.AutoGenerateInput{
		Month: req.Month,
	})
	if err != nil {
		c.handleAIReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAutoGenerateResponse(output))
}

// handleAIReportError maps AI report errors to HTTP responses.
func (c *AIReportController) handleAIReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	var aiErr *domainerror.AIReportError
	if errors.As(err, &aiErr) {
		statusCode := http.StatusInternalServerError
		switch aiErr.Code {
		case domainerror.ErrCodeAIReportNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeCompletionUnavailable:
			statusCode = http.StatusServiceUnavailable
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: aiErr.Message,
			Code:  string(aiErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
