package aireport

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/budgetlens/backend/internal/domain/entity"
)

type perUserTransactionRepo struct {
	mockTransactionRepo
	byUser map[uuid.UUID][]*entity.TransactionWithCategory
	errFor map[uuid.UUID]error
}

func (m *perUserTransactionRepo) FindByUserAndDateRange(_ context.Context, userID uuid.UUID, _, _ time.Time) ([]*entity.TransactionWithCategory, error) {
	if err := m.errFor[userID]; err != nil {
		return nil, err
	}
	return m.byUser[userID], nil
}

func TestAutoGenerate(t *testing.T) {
	activeUser := entity.NewUser("active@example.com", "Active", "hash")
	idleUser := entity.NewUser("idle@example.com", "Idle", "hash")
	brokenUser := entity.NewUser("broken@example.com", "Broken", "hash")

	txRepo := &perUserTransactionRepo{
		byUser: map[uuid.UUID][]*entity.TransactionWithCategory{
			activeUser.ID: {expenseTx(activeUser.ID, "80", "Shopping")},
		},
		errFor: map[uuid.UUID]error{
			brokenUser.ID: errors.New("store unavailable"),
		},
	}
	userRepo := &mockUserRepo{users: []*entity.User{activeUser, idleUser, brokenUser}}
	reportRepo := newMockAIReportRepo()
	completion := &mockCompletionService{available: true, response: "narrative"}

	generate := NewGenerateReportUseCase(reportRepo, txRepo, userRepo, completion, nil)
	uc := NewAutoGenerateUseCase(userRepo, txRepo, generate)

	output, err := uc.Execute(context.Background(), AutoGenerateInput{Month: "2025-04"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.Month != "2025-04" {
		t.Errorf("Month = %q, want 2025-04", output.Month)
	}
	if output.Processed != 3 {
		t.Errorf("Processed = %d, want 3", output.Processed)
	}
	if output.Generated != 1 {
		t.Errorf("Generated = %d, want 1", output.Generated)
	}
	if output.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", output.Skipped)
	}
	if len(output.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(output.Errors))
	}
	if _, ok := output.Errors[brokenUser.ID.String()]; !ok {
		t.Error("Errors should be keyed by the failing user's id")
	}

	// One failing user never aborts the others.
	if len(reportRepo.reports) != 1 {
		t.Errorf("stored reports = %d, want 1", len(reportRepo.reports))
	}
}

func TestAutoGenerateDefaultsToPreviousMonth(t *testing.T) {
	userRepo := &mockUserRepo{}
	txRepo := &perUserTransactionRepo{}
	generate := NewGenerateReportUseCase(newMockAIReportRepo(), txRepo, userRepo,
		&mockCompletionService{available: true}, nil)

	uc := NewAutoGenerateUseCase(userRepo, txRepo, generate)
	uc.now = func() time.Time { return time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC) }

	output, err := uc.Execute(context.Background(), AutoGenerateInput{})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.Month != "2024-12" {
		t.Errorf("Month = %q, want 2024-12", output.Month)
	}
}

func TestAutoGenerateExistingReportCountsAsSkipped(t *testing.T) {
	user := entity.NewUser("user@example.com", "User", "hash")
	userRepo := &mockUserRepo{users: []*entity.User{user}}
	txRepo := &perUserTransactionRepo{
		byUser: map[uuid.UUID][]*entity.TransactionWithCategory{
			user.ID: {expenseTx(user.ID, "10", "")},
		},
	}
	reportRepo := newMockAIReportRepo()
	completion := &mockCompletionService{available: true, response: "narrative"}
	generate := NewGenerateReportUseCase(reportRepo, txRepo, userRepo, completion, nil)
	uc := NewAutoGenerateUseCase(userRepo, txRepo, generate)

	if _, err := uc.Execute(context.Background(), AutoGenerateInput{Month: "2025-03"}); err != nil {
		t.Fatalf("first run returned error: %v", err)
	}
	output, err := uc.Execute(context.Background(), AutoGenerateInput{Month: "2025-03"})
	if err != nil {
		t.Fatalf("second run returned error: %v", err)
	}

	if output.Generated != 0 || output.Skipped != 1 {
		t.Errorf("second run generated=%d skipped=%d, want 0/1", output.Generated, output.Skipped)
	}
	if completion.calls != 1 {
		t.Errorf("completion calls = %d, want 1", completion.calls)
	}
}
