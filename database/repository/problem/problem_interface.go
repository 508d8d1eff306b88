package problemRepo

import "neuroglove/models"

// ProblemRepository defines methods for problem-report data access.
type ProblemRepository interface {
	// Insert stores a new problem report.
	Insert(problem *models.Problem) error
}
