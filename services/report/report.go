package report

import (
	"fmt"
	"time"

	problemRepo "neuroglove/database/repository/problem"
	"neuroglove/models"
	"neuroglove/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportService persists user problem reports and forwards them by mail.
type ReportService interface {
	// Submit stores the report and mails it in the background. Mail
	// delivery is best-effort: failures are logged, never surfaced.
	Submit(user *models.User, description string) (*models.Problem, error)
}

// DefaultReportService is the production implementation. Mailer may be nil
// when mail credentials are not configured.
type DefaultReportService struct {
	Repo   problemRepo.ProblemRepository
	Mailer Mailer
}

func (s *DefaultReportService) Submit(user *models.User, description string) (*models.Problem, error) {
	problem := &models.Problem{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		UserEmail:   user.Email,
		Description: description,
		Timestamp:   time.Now(),
	}
	if err := s.Repo.Insert(problem); err != nil {
		return nil, err
	}

	go s.mail(problem)
	return problem, nil
}

func (s *DefaultReportService) mail(problem *models.Problem) {
	logger := utils.GetLogger()
	if s.Mailer == nil {
		logger.Error("Mail credentials not configured; problem report not mailed",
			zap.String("problemID", problem.ID))
		return
	}

	subject := fmt.Sprintf("User Problem Report from %s", problem.UserEmail)
	body := fmt.Sprintf("User: %s\nUser ID: %s\nTimestamp: %s\n\nProblem Description:\n%s\n",
		problem.UserEmail, problem.UserID, problem.Timestamp.Format(time.RFC3339), problem.Description)

	if err := s.Mailer.Send(subject, body); err != nil {
		logger.Error("Failed to mail problem report",
			zap.String("problemID", problem.ID), zap.Error(err))
		return
	}
	logger.Info("Problem report mailed", zap.String("problemID", problem.ID))
}
