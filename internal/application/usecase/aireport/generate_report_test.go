package aireport

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/domain/entity"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

type mockAIReportRepo struct {
	reports map[string]*entity.AIReport // keyed by userID|month
	creates int
}

func newMockAIReportRepo() *mockAIReportRepo {
	return &mockAIReportRepo{reports: make(map[string]*entity.AIReport)}
}

func (m *mockAIReportRepo) key(userID uuid.UUID, month string) string {
	return userID.String() + "|" + month
}

func (m *mockAIReportRepo) CreateOrGetExisting(_ context.Context, report *entity.AIReport) (*entity.AIReport, bool, error) {
	m.creates++
	key := m.key(report.UserID, report.Month)
	if existing, ok := m.reports[key]; ok {
		return existing, false, nil
	}
	m.reports[key] = report
	return report, true, nil
}

func (m *mockAIReportRepo) FindByUserAndMonth(_ context.Context, userID uuid.UUID, month string) (*entity.AIReport, error) {
	return m.reports[m.key(userID, month)], nil
}

func (m *mockAIReportRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.AIReport, error) {
	var out []*entity.AIReport
	for _, r := range m.reports {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockTransactionRepo struct {
	transactions []*entity.TransactionWithCategory
}

func (m *mockTransactionRepo) Create(context.Context, *entity.Transaction) error { return nil }
func (m *mockTransactionRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (m *mockTransactionRepo) FindByIDWithCategory(context.Context, uuid.UUID) (*entity.TransactionWithCategory, error) {
	return nil, nil
}
func (m *mockTransactionRepo) FindByFilter(context.Context, adapter.TransactionFilter, adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	return nil, nil
}
func (m *mockTransactionRepo) FindByUserAndDateRange(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.TransactionWithCategory, error) {
	return m.transactions, nil
}
func (m *mockTransactionRepo) Update(context.Context, *entity.Transaction) error { return nil }
func (m *mockTransactionRepo) Delete(context.Context, uuid.UUID) error           { return nil }

type mockUserRepo struct {
	users []*entity.User
}

func (m *mockUserRepo) Create(context.Context, *entity.User) error { return nil }
func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (m *mockUserRepo) FindByEmail(context.Context, string) (*entity.User, error) { return nil, nil }
func (m *mockUserRepo) FindAll(context.Context) ([]*entity.User, error)           { return m.users, nil }
func (m *mockUserRepo) Update(context.Context, *entity.User) error                { return nil }
func (m *mockUserRepo) Delete(context.Context, uuid.UUID) error                   { return nil }
func (m *mockUserRepo) ExistsByEmail(context.Context, string) (bool, error)       { return false, nil }

type mockCompletionService struct {
	available bool
	response  string
	err       error
	calls     int
	prompts   []string
}

func (m *mockCompletionService) IsAvailable() bool { return m.available }
func (m *mockCompletionService) Complete(_ context.Context, _, prompt string) (string, error) {
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func expenseTx(userID uuid.UUID, amount string, categoryName string) *entity.TransactionWithCategory {
	amt, _ := decimal.NewFromString(amount)
	tx := entity.NewTransaction(userID, entity.TransactionTypeExpense, amt, nil, "", time.Now())
	var category *entity.Category
	if categoryName != "" {
		category = entity.NewCategory(userID, categoryName, entity.CategoryTypeExpense, "tag", "#6366F1")
	}
	return &entity.TransactionWithCategory{Transaction: tx, Category: category}
}

func TestGenerateReport(t *testing.T) {
	userID := uuid.New()

	t.Run("generates and persists a fresh report", func(t *testing.T) {
		reportRepo := newMockAIReportRepo()
		completion := &mockCompletionService{available: true, response: "Solid month overall."}
		uc := NewGenerateReportUseCase(reportRepo, &mockTransactionRepo{
			transactions: []*entity.TransactionWithCategory{expenseTx(userID, "120.50", "Food & Dining")},
		}, &mockUserRepo{}, completion, nil)

		output, err := uc.Execute(context.Background(), GenerateReportInput{UserID: userID, Month: "2025-05"})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if output.Cached {
			t.Error("fresh generation should not report Cached")
		}
		if output.Report.ReportContent != "Solid month overall." {
			t.Errorf("ReportContent = %q", output.Report.ReportContent)
		}
		if output.Report.FinancialData.TotalExpenses != 120.5 {
			t.Errorf("snapshot TotalExpenses = %v, want 120.5", output.Report.FinancialData.TotalExpenses)
		}
		if output.Report.FinancialData.TransactionCount != 1 {
			t.Errorf("snapshot TransactionCount = %d, want 1", output.Report.FinancialData.TransactionCount)
		}
		if completion.calls != 1 {
			t.Errorf("completion calls = %d, want 1", completion.calls)
		}
	})

	t.Run("second call returns the stored report without a model call", func(t *testing.T) {
		reportRepo := newMockAIReportRepo()
		completion := &mockCompletionService{available: true, response: "First narrative."}
		uc := NewGenerateReportUseCase(reportRepo, &mockTransactionRepo{
			transactions: []*entity.TransactionWithCategory{expenseTx(userID, "50", "Shopping")},
		}, &mockUserRepo{}, completion, nil)

		first, err := uc.Execute(context.Background(), GenerateReportInput{UserID: userID, Month: "2025-05"})
		if err != nil {
			t.Fatalf("first Execute returned error: %v", err)
		}

		completion.response = "Second narrative that must never be stored."
		second, err := uc.Execute(context.Background(), GenerateReportInput{UserID: userID, Month: "2025-05"})
		if err != nil {
			t.Fatalf("second Execute returned error: %v", err)
		}

		if !second.Cached {
			t.Error("second call should report Cached")
		}
		if second.Report.ID != first.Report.ID {
			t.Error("second call returned a different report record")
		}
		if second.Report.ReportContent != "First narrative." {
			t.Errorf("ReportContent = %q, want the first narrative", second.Report.ReportContent)
		}
		if completion.calls != 1 {
			t.Errorf("completion calls = %d, want 1", completion.calls)
		}
	})

	t.Run("completion failure persists nothing", func(t *testing.T) {
		reportRepo := newMockAIReportRepo()
		completion := &mockCompletionService{available: true, err: errors.New("upstream timeout")}
		uc := NewGenerateReportUseCase(reportRepo, &mockTransactionRepo{
			transactions: []*entity.TransactionWithCategory{expenseTx(userID, "50", "")},
		}, &mockUserRepo{}, completion, nil)

		_, err := uc.Execute(context.Background(), GenerateReportInput{UserID: userID, Month: "2025-05"})
		if !errors.Is(err, domainerror.ErrReportGenerationFailed) {
			t.Fatalf("err = %v, want ErrReportGenerationFailed", err)
		}
		if len(reportRepo.reports) != 0 {
			t.Error("failed generation must not persist a report")
		}

		// The key stayed free, so a retry can succeed.
		completion.err = nil
		completion.response = "Retry narrative."
		output, err := uc.Execute(context.Background(), GenerateReportInput{UserID: userID, Month: "2025-05"})
		if err != nil {
			t.Fatalf("retry returned error: %v", err)
		}
		if output.Report.ReportContent != "Retry narrative." {
			t.Errorf("retry ReportContent = %q", output.Report.ReportContent)
		}
	})

	t.Run("empty completion stores the fallback text", func(t *testing.T) {
		reportRepo := newMockAIReportRepo()
		completion := &mockCompletionService{available: true, response: "   "}
		uc := NewGenerateReportUseCase(reportRepo, &mockTransactionRepo{
			transactions: []*entity.TransactionWithCategory{expenseTx(userID, "50", "")},
		}, &mockUserRepo{}, completion, nil)

		output, err := uc.Execute(context.Background(), GenerateReportInput{UserID: userID, Month: "2025-05"})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if output.Report.ReportContent != FallbackReportContent {
			t.Errorf("ReportContent = %q, want fallback", output.Report.ReportContent)
		}
	})

	t.Run("unconfigured completion service is rejected", func(t *testing.T) {
		uc := NewGenerateReportUseCase(newMockAIReportRepo(), &mockTransactionRepo{}, &mockUserRepo{},
			&mockCompletionService{available: false}, nil)

		_, err := uc.Execute(context.Background(), GenerateReportInput{UserID: userID, Month: "2025-05"})
		if !errors.Is(err, domainerror.ErrCompletionUnavailable) {
			t.Errorf("err = %v, want ErrCompletionUnavailable", err)
		}
	})

	t.Run("invalid month is rejected before any store access", func(t *testing.T) {
		reportRepo := newMockAIReportRepo()
		uc := NewGenerateReportUseCase(reportRepo, &mockTransactionRepo{}, &mockUserRepo{},
			&mockCompletionService{available: true}, nil)

		_, err := uc.Execute(context.Background(), GenerateReportInput{UserID: userID, Month: "05-2025"})
		if !errors.Is(err, domainerror.ErrInvalidMonthFormat) {
			t.Errorf("err = %v, want ErrInvalidMonthFormat", err)
		}
		if reportRepo.creates != 0 {
			t.Error("validation failure must not touch the store")
		}
	})
}

func TestGenerateReportPromptContents(t *testing.T) {
	userID := uuid.New()
	completion := &mockCompletionService{available: true, response: "ok"}
	uc := NewGenerateReportUseCase(newMockAIReportRepo(), &mockTransactionRepo{
		transactions: []*entity.TransactionWithCategory{
			expenseTx(userID, "200", "Food & Dining"),
			expenseTx(userID, "300", "Food & Dining"),
		},
	}, &mockUserRepo{}, completion, nil)

	if _, err := uc.Execute(context.Background(), GenerateReportInput{UserID: userID, Month: "2025-01"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	prompt := completion.prompts[0]
	for _, want := range []string{
		"**Month:** January 2025",
		"- Total Expenses: $500.00",
		"- Food & Dining: $500.00 (100.0%) - 2 transactions",
		"**Top Expenses:**",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
