// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/domain/entity"
	domainerror "github.com/budgetlens/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueReportReadyEmail queues a notification that a monthly report is ready.
func (s *Service) QueueReportReadyEmail(ctx context.Context, input adapter.QueueReportReadyInput) error {
	subject := fmt.Sprintf("Your %s financial report is ready - BudgetLens", input.MonthLabel)

	reportURL := input.ReportURL
	if reportURL == "" {
		reportURL = fmt.Sprintf("%s/reports?month=%s", s.appBaseURL, input.Month)
	}

	templateData := map[string]interface{}{
		"user_name":   input.UserName,
		"month":       input.Month,
		"month_label": input.MonthLabel,
		"report_url":  reportURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateReportReady,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue report ready email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
