package dto

import (
	"github.com/budgetlens/backend/internal/application/usecase/report"
)

// DashboardStatsResponse represents the dashboard statistics response.
type DashboardStatsResponse struct {
	TodayIncome             float64 `json:"today_income"`
	TodayExpenses           float64 `json:"today_expenses"`
	TodayNetBalance         float64 `json:"today_net_balance"`
	MonthlyIncome           float64 `json:"monthly_income"`
	MonthlyExpenses         float64 `json:"monthly_expenses"`
	MonthlyNetBalance       float64 `json:"monthly_net_balance"`
	MonthlyTransactionCount int     `json:"monthly_transaction_count"`
}

// CategoryBreakdownResponse represents one category group in the breakdown.
type CategoryBreakdownResponse struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// MonthlyReportResponse represents the aggregated monthly report response.
type MonthlyReportResponse struct {
	Month             string                      `json:"month"`
	TotalIncome       float64                     `json:"total_income"`
	TotalExpenses     float64                     `json:"total_expenses"`
	NetBalance        float64                     `json:"net_balance"`
	CategoryBreakdown []CategoryBreakdownResponse `json:"category_breakdown"`
	Transactions      []TransactionResponse       `json:"transactions"`
}

// ToDashboardStatsResponse converts dashboard stats output to the response DTO.
func ToDashboardStatsResponse(output *report.GetDashboardStatsOutput) DashboardStatsResponse {
	return DashboardStatsResponse{
		TodayIncome:             output.TodayIncome.InexactFloat64(),
		TodayExpenses:           output.TodayExpenses.InexactFloat64(),
		TodayNetBalance:         output.TodayNetBalance.InexactFloat64(),
		MonthlyIncome:           output.MonthlyIncome.InexactFloat64(),
		MonthlyExpenses:         output.MonthlyExpenses.InexactFloat64(),
		MonthlyNetBalance:       output.MonthlyNetBalance.InexactFloat64(),
		MonthlyTransactionCount: output.MonthlyTransactionCount,
	}
}

// ToMonthlyReportResponse converts a monthly report output to the response DTO.
func ToMonthlyReportResponse(output *report.GetMonthlyReportOutput) MonthlyReportResponse {
	breakdown := make([]CategoryBreakdownResponse, len(output.Summary.Breakdown))
	for i, group := range output.Summary.Breakdown {
		breakdown[i] = CategoryBreakdownResponse{
			Name:       group.Name,
			Type:       string(group.Type),
			Amount:     group.Amount.InexactFloat64(),
			Count:      group.Count,
			Percentage: group.Percentage,
		}
	}

	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, twc := range output.Transactions {
		transactions[i] = ToTransactionResponse(twc)
	}

	return MonthlyReportResponse{
		Month:             output.Month,
		TotalIncome:       output.Summary.TotalIncome.InexactFloat64(),
		TotalExpenses:     output.Summary.TotalExpenses.InexactFloat64(),
		NetBalance:        output.Summary.NetBalance.InexactFloat64(),
		CategoryBreakdown: breakdown,
		Transactions:      transactions,
	}
}
