package report

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

func TestValidateMonth(t *testing.T) {
	tests := []struct {
		name    string
		month   string
		wantErr error
	}{
		{name: "valid month", month: "2025-06", wantErr: nil},
		{name: "valid december", month: "2024-12", wantErr: nil},
		{name: "empty month", month: "", wantErr: domainerror.ErrMissingMonth},
		{name: "missing zero padding", month: "2025-6", wantErr: domainerror.ErrInvalidMonthFormat},
		{name: "full date", month: "2025-06-01", wantErr: domainerror.ErrInvalidMonthFormat},
		{name: "month out of range", month: "2025-13", wantErr: domainerror.ErrInvalidMonthFormat},
		{name: "garbage", month: "june 2025", wantErr: domainerror.ErrInvalidMonthFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMonth(tt.month)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateMonth(%q) = %v, want nil", tt.month, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateMonth(%q) = %v, want %v", tt.month, err, tt.wantErr)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	start, end, err := MonthBounds("2025-02")
	if err != nil {
		t.Fatalf("MonthBounds returned error: %v", err)
	}

	wantStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}

	// Non-leap February ends on the 28th at 23:59:59.999.
	wantEnd := time.Date(2025, 2, 28, 23, 59, 59, int(999*time.Millisecond), time.Local)
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}

func TestMonthBoundsLeapYear(t *testing.T) {
	_, end, err := MonthBounds("2024-02")
	if err != nil {
		t.Fatalf("MonthBounds returned error: %v", err)
	}
	if end.Day() != 29 {
		t.Errorf("leap February end day = %d, want 29", end.Day())
	}
}

func TestTodayBounds(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 45, 0, time.UTC)
	start, end := TodayBounds(now)

	if !start.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want midnight of the same day", start)
	}
	if end.Day() != 15 || end.Hour() != 23 || end.Minute() != 59 {
		t.Errorf("end = %v, want end of the same day", end)
	}
}

func TestMonthToDateBounds(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	start, end := MonthToDateBounds(now)

	if !start.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want first of the month", start)
	}
	if !end.Equal(now) {
		t.Errorf("end = %v, want now", end)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel("2025-01"); got != "January 2025" {
		t.Errorf("MonthLabel(2025-01) = %q, want January 2025", got)
	}
	if got := MonthLabel("not-a-month"); got != "not-a-month" {
		t.Errorf("MonthLabel fallback = %q, want the raw value", got)
	}
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{name: "mid year", now: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), want: "2025-05"},
		{name: "january rolls into previous year", now: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), want: "2024-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreviousMonth(tt.now); got != tt.want {
				t.Errorf("PreviousMonth = %q, want %q", got, tt.want)
			}
		})
	}
}
