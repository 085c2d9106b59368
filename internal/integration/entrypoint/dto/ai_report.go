package dto

import (
	"time"

	"github.com/budgetlens/backend/internal/application/usecase/aireport"
	"github.com/budgetlens/backend/internal/domain/entity"
)

// GenerateReportRequest represents the request body for report generation.
type GenerateReportRequest struct {
	Month string `json:"month" binding:"required"` // YYYY-MM
}

// AutoGenerateRequest represents the request body for batch report generation.
// Month is optional and defaults to the previous calendar month.
type AutoGenerateRequest struct {
	Month string `json:"month,omitempty"`
}

// FinancialSnapshotResponse represents the stored financial snapshot.
type FinancialSnapshotResponse struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpenses    float64 `json:"total_expenses"`
	NetBalance       float64 `json:"net_balance"`
	TransactionCount int     `json:"transaction_count"`
}

// AIReportResponse represents a stored monthly narrative report.
type AIReportResponse struct {
	ID            string                    `json:"id"`
	Month         string                    `json:"month"`
	ReportContent string                    `json:"report_content"`
	FinancialData FinancialSnapshotResponse `json:"financial_data"`
	GeneratedAt   time.Time                 `json:"generated_at"`
	Cached        bool                      `json:"cached,omitempty"`
}

// AIReportListResponse represents the response for listing stored reports.
type AIReportListResponse struct {
	Reports []AIReportResponse `json:"reports"`
}

// AutoGenerateResponse represents the batch generation summary.
type AutoGenerateResponse struct {
	Month     string            `json:"month"`
	Processed int               `json:"processed"`
	Generated int               `json:"generated"`
	Skipped   int               `json:"skipped"`
	Errors    map[string]string `json:"errors"`
}

// ToAIReportResponse converts a domain AIReport entity to a response DTO.
func ToAIReportResponse(r *entity.AIReport) AIReportResponse {
	return AIReportResponse{
		ID:            r.ID.String(),
		Month:         r.Month,
		ReportContent: r.ReportContent,
		FinancialData: FinancialSnapshotResponse{
			TotalIncome:      r.FinancialData.TotalIncome,
			TotalExpenses:    r.FinancialData.TotalExpenses,
			NetBalance:       r.FinancialData.NetBalance,
			TransactionCount: r.FinancialData.TransactionCount,
		},
		GeneratedAt: r.GeneratedAt,
	}
}

// ToAIReportListResponse converts stored reports to the list response.
func ToAIReportListResponse(reports []*entity.AIReport) AIReportListResponse {
	out := make([]AIReportResponse, len(reports))
	for i, r := range reports {
		out[i] = ToAIReportResponse(r)
	}
	return AIReportListResponse{Reports: out}
}

// ToAutoGenerateResponse converts the batch output to the response DTO.
func ToAutoGenerateResponse(output *aireport.AutoGenerateOutput) AutoGenerateResponse {
	errs := output.Errors
	if errs == nil {
		errs = map[string]string{}
	}
	return AutoGenerateResponse{
		Month:     output.Month,
		Processed: output.Processed,
		Generated: output.Generated,
		Skipped:   output.Skipped,
		Errors:    errs,
	}
}
