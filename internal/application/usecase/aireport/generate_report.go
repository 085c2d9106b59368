// Package aireport contains the AI monthly narrative report use cases.
package aireport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/application/usecase/report"
	"github.com/budgetlens/backend/internal/domain/entity"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

// FallbackReportContent is stored when the completion service returns no
// usable text. The report still persists so the month reads consistently.
const FallbackReportContent = "Unable to generate analysis at this time."

// systemInstruction is the fixed persona for the narrative model.
const systemInstruction = "You are a helpful financial advisor AI that provides clear, " +
	"actionable insights about personal finances. Your responses are professional, " +
	"friendly, and easy to understand."

// GenerateReportInput represents the input for generating a monthly report.
type GenerateReportInput struct {
	UserID uuid.UUID
	Month  string
}

// GenerateReportOutput represents the result of report generation.
type GenerateReportOutput struct {
	Report *entity.AIReport
	Cached bool // True when an existing report was returned without a model call
}

// GenerateReportUseCase drives the per-(user, month) generation state machine:
// return the stored report if one exists, otherwise aggregate, call the model,
// and persist exactly once.
type GenerateReportUseCase struct {
	aiReportRepo      adapter.AIReportRepository
	transactionRepo   adapter.TransactionRepository
	userRepo          adapter.UserRepository
	completionService adapter.CompletionService
	emailService      adapter.EmailService
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
// emailService may be nil; notification is best effort either way.
func NewGenerateReportUseCase(
	aiReportRepo adapter.AIReportRepository,
	transactionRepo adapter.TransactionRepository,
	userRepo adapter.UserRepository,
	completionService adapter.CompletionService,
	emailService adapter.EmailService,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		aiReportRepo:      aiReportRepo,
		transactionRepo:   transactionRepo,
		userRepo:          userRepo,
		completionService: completionService,
		emailService:      emailService,
	}
}

// Execute generates (or returns) the report for the given user and month.
//
// A stored report is returned unchanged with no model call. On a fresh
// generation, completion failure persists nothing so the caller can retry;
// an empty completion persists the fallback text. A losing race on the
// (user, month) key resolves to the winner's record, reported as success.
func (uc *GenerateReportUseCase) Execute(
	ctx context.Context,
	input GenerateReportInput,
) (*GenerateReportOutput, error) {
	start, end, err := report.MonthBounds(input.Month)
	if err != nil {
		return nil, err
	}

	existing, err := uc.aiReportRepo.FindByUserAndMonth(ctx, input.UserID, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing report: %w", err)
	}
	if existing != nil {
		return &GenerateReportOutput{Report: existing, Cached: true}, nil
	}

	if !uc.completionService.IsAvailable() {
		return nil, domainerror.NewAIReportError(
			domainerror.ErrCodeCompletionUnavailable,
			"completion service is not configured",
			domainerror.ErrCompletionUnavailable,
		)
	}

	transactions, err := uc.transactionRepo.FindByUserAndDateRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for report: %w", err)
	}

	summary := report.Summarize(report.ToCategorized(transactions))
	prompt := buildAnalysisPrompt(input.Month, summary, len(transactions))

	content, err := uc.completionService.Complete(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, domainerror.NewAIReportError(
			domainerror.ErrCodeReportGenerationFailed,
			"failed to generate report",
			errors.Join(domainerror.ErrReportGenerationFailed, err),
		)
	}
	if strings.TrimSpace(content) == "" {
		content = FallbackReportContent
	}

	totalIncome, _ := summary.TotalIncome.Float64()
	totalExpenses, _ := summary.TotalExpenses.Float64()
	netBalance, _ := summary.NetBalance.Float64()
	newReport := entity.NewAIReport(input.UserID, input.Month, content, entity.FinancialSnapshot{
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		NetBalance:       netBalance,
		TransactionCount: len(transactions),
	})

	stored, created, err := uc.aiReportRepo.CreateOrGetExisting(ctx, newReport)
	if err != nil {
		return nil, fmt.Errorf("failed to persist report: %w", err)
	}

	if created {
		uc.notifyReportReady(ctx, input.UserID, input.Month)
	}

	return &GenerateReportOutput{Report: stored, Cached: !created}, nil
}

// notifyReportReady enqueues the report-ready email. Failures are logged and
// swallowed; notification never fails the generation request.
func (uc *GenerateReportUseCase) notifyReportReady(ctx context.Context, userID uuid.UUID, month string) {
	if uc.emailService == nil {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		slog.Warn("Skipping report-ready email, user lookup failed", "user_id", userID, "error", err)
		return
	}
	if !user.EmailNotifications {
		return
	}

	err = uc.emailService.QueueReportReadyEmail(ctx, adapter.QueueReportReadyInput{
		UserID:     userID.String(),
		UserEmail:  user.Email,
		UserName:   user.Name,
		Month:      month,
		MonthLabel: report.MonthLabel(month),
	})
	if err != nil {
		slog.Warn("Failed to queue report-ready email", "user_id", userID, "error", err)
	}
}

// buildAnalysisPrompt renders the financial-advisor prompt for one month.
func buildAnalysisPrompt(month string, summary *report.MonthlySummary, transactionCount int) string {
	var sb strings.Builder

	totalIncome, _ := summary.TotalIncome.Float64()
	totalExpenses, _ := summary.TotalExpenses.Float64()
	netBalance, _ := summary.NetBalance.Float64()

	sb.WriteString("You are a financial advisor AI assistant. Analyze the following monthly financial data and provide a comprehensive, insightful, and actionable analysis report.\n\n")
	sb.WriteString(fmt.Sprintf("**Month:** %s\n\n", report.MonthLabel(month)))
	sb.WriteString("**Financial Summary:**\n")
	sb.WriteString(fmt.Sprintf("- Total Income: $%.2f\n", totalIncome))
	sb.WriteString(fmt.Sprintf("- Total Expenses: $%.2f\n", totalExpenses))
	sb.WriteString(fmt.Sprintf("- Net Balance: $%.2f\n", netBalance))
	sb.WriteString(fmt.Sprintf("- Total Transactions: %d\n\n", transactionCount))

	sb.WriteString("**Category Breakdown:**\n")
	for _, group := range summary.Breakdown {
		amount, _ := group.Amount.Float64()
		sb.WriteString(fmt.Sprintf("- %s: $%.2f (%.1f%%) - %d transactions\n",
			group.Name, amount, group.Percentage, group.Count))
	}

	sb.WriteString("\n**Top Expenses:**\n")
	for _, group := range report.TopByType(summary.Breakdown, entity.TransactionTypeExpense, 5) {
		amount, _ := group.Amount.Float64()
		sb.WriteString(fmt.Sprintf("- %s: $%.2f\n", group.Name, amount))
	}

	sb.WriteString("\n**Top Income Sources:**\n")
	for _, group := range report.TopByType(summary.Breakdown, entity.TransactionTypeIncome, 5) {
		amount, _ := group.Amount.Float64()
		sb.WriteString(fmt.Sprintf("- %s: $%.2f\n", group.Name, amount))
	}

	sb.WriteString(`
Please provide a detailed analysis that includes:
1. **Overall Financial Health**: Assess the month's financial performance
2. **Spending Patterns**: Identify key spending trends and patterns
3. **Category Insights**: Highlight notable categories and their impact
4. **Savings Analysis**: Evaluate savings potential and opportunities
5. **Recommendations**: Provide actionable advice for the next month
6. **Goals Progress**: If applicable, comment on financial goals

Make the analysis professional, friendly, and easy to understand. Use emojis sparingly but effectively. Format the response in clear sections with headings.
`)

	return sb.String()
}
