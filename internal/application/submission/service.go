package submission

import (
	"context"
	"log/slog"
	"time"

	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
	"github.com/keerthiramGR/skillbridge-ai/internal/pkg/id"
)

type submissionStore interface {
	Put(ctx context.Context, s *domain.Submission) error
	ListByStudent(ctx context.Context, studentID string) ([]domain.Submission, error)
	ListByProblem(ctx context.Context, problemID string) ([]domain.Submission, error)
	ListAll(ctx context.Context) ([]domain.Submission, error)
}

// CreateResult distinguishes a persisted submission from a demo-mode echo.
type CreateResult struct {
	Submission *domain.Submission
	DemoMode   bool
}

type Service interface {
	Create(ctx context.Context, studentID string, req domain.CreateSubmissionRequest) *CreateResult
	List(ctx context.Context, callerID, callerRole, problemID string) ([]domain.Submission, bool)
}

type service struct {
	repo submissionStore
}

func NewService(repo submissionStore) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, studentID string, req domain.CreateSubmissionRequest) *CreateResult {
	sub := &domain.Submission{
		SubmissionID:  id.New(),
		ProblemID:     req.ProblemID,
		StudentID:     studentID,
		GithubURL:     req.GithubURL,
		DemoURL:       req.DemoURL,
		Documentation: req.Documentation,
		Status:        "pending",
		SubmittedAt:   time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, sub); err != nil {
		slog.Warn("submission not persisted, echoing demo result", "problem_id", req.ProblemID, "err", err)
		return &CreateResult{
			Submission: &domain.Submission{
				SubmissionID: "demo-submission-id",
				ProblemID:    req.ProblemID,
				Status:       "pending",
			},
			DemoMode: true,
		}
	}
	return &CreateResult{Submission: sub}
}

// List scopes results by caller: students see only their own submissions,
// recruiters and admins see a problem's submissions or everything. The
// boolean reports demo mode on storage failure.
func (s *service) List(ctx context.Context, callerID, callerRole, problemID string) ([]domain.Submission, bool) {
	var (
		subs []domain.Submission
		err  error
	)
	switch {
	case callerRole == domain.RoleStudent:
		subs, err = s.repo.ListByStudent(ctx, callerID)
	case problemID != "":
		subs, err = s.repo.ListByProblem(ctx, problemID)
	default:
		subs, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		slog.Warn("submission listing unavailable, serving demo data", "err", err)
		reviewed := 92
		return []domain.Submission{
			{SubmissionID: "1", ProblemID: "p1", Status: "reviewed", Score: &reviewed},
			{SubmissionID: "2", ProblemID: "p2", Status: "pending"},
		}, true
	}
	return subs, false
}
