package problem

import (
	"context"
	"log/slog"
	"time"

	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
	"github.com/keerthiramGR/skillbridge-ai/internal/pkg/id"
)

type problemStore interface {
	Put(ctx context.Context, p *domain.Problem) error
	ListByStatus(ctx context.Context, status, problemDomain, difficulty string) ([]domain.Problem, error)
}

// CreateResult distinguishes a persisted problem from a demo-mode echo.
type CreateResult struct {
	Problem  *domain.Problem
	DemoMode bool
}

type Service interface {
	Create(ctx context.Context, createdBy string, req domain.CreateProblemRequest) *CreateResult
	List(ctx context.Context, status, problemDomain, difficulty string) ([]domain.Problem, bool)
}

type service struct {
	repo problemStore
}

func NewService(repo problemStore) Service {
	return &service{repo: repo}
}

// Create persists a new problem statement. A storage failure degrades to a
// demo echo of the upload rather than failing the request.
func (s *service) Create(ctx context.Context, createdBy string, req domain.CreateProblemRequest) *CreateResult {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}
	maxParticipants := req.MaxParticipants
	if maxParticipants == 0 {
		maxParticipants = 50
	}
	p := &domain.Problem{
		ProblemID:          id.New(),
		Title:              req.Title,
		Domain:             req.Domain,
		Difficulty:         difficulty,
		Description:        req.Description,
		RequiredSkills:     req.RequiredSkills,
		Deadline:           req.Deadline,
		EvaluationCriteria: req.EvaluationCriteria,
		MaxParticipants:    maxParticipants,
		CreatedBy:          createdBy,
		Status:             "active",
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, p); err != nil {
		slog.Warn("problem upload not persisted, echoing demo result", "title", req.Title, "err", err)
		return &CreateResult{
			Problem: &domain.Problem{
				ProblemID:  "demo-problem-id",
				Title:      req.Title,
				Domain:     req.Domain,
				Difficulty: difficulty,
				Status:     "active",
			},
			DemoMode: true,
		}
	}
	return &CreateResult{Problem: p}
}

// List returns active problems with optional domain and difficulty filters.
// The boolean reports demo mode: true means storage was unreachable and the
// catalog below was served instead.
func (s *service) List(ctx context.Context, status, problemDomain, difficulty string) ([]domain.Problem, bool) {
	if status == "" {
		status = "active"
	}
	problems, err := s.repo.ListByStatus(ctx, status, problemDomain, difficulty)
	if err != nil {
		slog.Warn("problem listing unavailable, serving demo catalog", "err", err)
		return demoProblems(), true
	}
	return problems, false
}

func demoProblems() []domain.Problem {
	return []domain.Problem{
		{ProblemID: "1", Title: "Build a Real-Time Chat Application", Domain: "web", Difficulty: "medium", Status: "active"},
		{ProblemID: "2", Title: "ML-Based Fraud Detection System", Domain: "ml", Difficulty: "hard", Status: "active"},
		{ProblemID: "3", Title: "E-Commerce Recommendation Engine", Domain: "data", Difficulty: "medium", Status: "active"},
	}
}
