package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetlens/backend/internal/domain/entity"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

func dec(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

type mockGoalRepo struct {
	goals map[uuid.UUID]*entity.Goal
}

func newMockGoalRepo(goals ...*entity.Goal) *mockGoalRepo {
	m := &mockGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
	for _, g := range goals {
		m.goals[g.ID] = g
	}
	return m
}

func (m *mockGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	m.goals[goal.ID] = goal
	return nil
}

func (m *mockGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	return m.goals[id], nil
}

func (m *mockGoalRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range m.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockGoalRepo) Update(_ context.Context, goal *entity.Goal) error {
	m.goals[goal.ID] = goal
	return nil
}

func (m *mockGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.goals, id)
	return nil
}

func TestCreateGoal(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		goalName      string
		target        string
		current       string
		color         string
		wantErr       error
		wantColor     string
	}{
		{
			name:      "creates a goal with the default color",
			goalName:  "Emergency Fund",
			target:    "5000",
			current:   "0",
			wantColor: entity.DefaultGoalColor,
		},
		{
			name:      "keeps an explicit color",
			goalName:  "Vacation",
			target:    "1200",
			current:   "300",
			color:     "#10b981",
			wantColor: "#10b981",
		},
		{
			name:     "rejects a blank name",
			goalName: "   ",
			target:   "5000",
			current:  "0",
			wantErr:  domainerror.ErrMissingGoalName,
		},
		{
			name:     "rejects non-positive target",
			goalName: "Emergency Fund",
			target:   "0",
			current:  "0",
			wantErr:  domainerror.ErrInvalidTargetAmount,
		},
		{
			name:     "rejects negative current amount",
			goalName: "Emergency Fund",
			target:   "5000",
			current:  "-1",
			wantErr:  domainerror.ErrNegativeCurrentAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateGoalUseCase(newMockGoalRepo())

			output, err := uc.Execute(context.Background(), CreateGoalInput{
				UserID:        userID,
				Name:          tt.goalName,
				TargetAmount:  dec(tt.target),
				CurrentAmount: dec(tt.current),
				Color:         tt.color,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}
			if output.Goal.Color != tt.wantColor {
				t.Errorf("Color = %q, want %q", output.Goal.Color, tt.wantColor)
			}
		})
	}
}

func TestAddFundsIsAdditive(t *testing.T) {
	userID := uuid.New()
	goal := entity.NewGoal(userID, "Emergency Fund", dec("5000"), dec("1000"), "", nil, entity.DefaultGoalColor)
	repo := newMockGoalRepo(goal)
	uc := NewAddFundsUseCase(repo)

	output, err := uc.Execute(context.Background(), AddFundsInput{UserID: userID, GoalID: goal.ID, Amount: dec("250")})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got := output.Goal.CurrentAmount.String(); got != "1250" {
		t.Errorf("CurrentAmount = %s, want 1250 (additive, not replacement)", got)
	}

	if _, err := uc.Execute(context.Background(), AddFundsInput{UserID: userID, GoalID: goal.ID, Amount: dec("250")}); err != nil {
		t.Fatalf("second Execute returned error: %v", err)
	}
	if got := repo.goals[goal.ID].CurrentAmount.String(); got != "1500" {
		t.Errorf("CurrentAmount = %s, want 1500 after two deposits", got)
	}
}

func TestGoalOwnership(t *testing.T) {
	owner := uuid.New()
	goal := entity.NewGoal(owner, "Emergency Fund", dec("5000"), dec("0"), "", nil, entity.DefaultGoalColor)
	repo := newMockGoalRepo(goal)

	t.Run("foreign user cannot update", func(t *testing.T) {
		uc := NewUpdateGoalUseCase(repo)
		name := "Hijacked"
		_, err := uc.Execute(context.Background(), UpdateGoalInput{
			UserID: uuid.New(),
			GoalID: goal.ID,
			Name:   &name,
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
			t.Errorf("err = %v, want ErrUnauthorizedGoalAccess", err)
		}
	})

	t.Run("missing goal reports not found", func(t *testing.T) {
		uc := NewDeleteGoalUseCase(repo)
		err := uc.Execute(context.Background(), DeleteGoalInput{UserID: owner, GoalID: uuid.New()})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("err = %v, want ErrGoalNotFound", err)
		}
	})
}

func TestUpdateGoalRequiresFields(t *testing.T) {
	owner := uuid.New()
	goal := entity.NewGoal(owner, "Emergency Fund", dec("5000"), dec("0"), "", nil, entity.DefaultGoalColor)
	uc := NewUpdateGoalUseCase(newMockGoalRepo(goal))

	_, err := uc.Execute(context.Background(), UpdateGoalInput{UserID: owner, GoalID: goal.ID})
	if !errors.Is(err, domainerror.ErrNoGoalFieldsToUpdate) {
		t.Errorf("err = %v, want ErrNoGoalFieldsToUpdate", err)
	}
}
