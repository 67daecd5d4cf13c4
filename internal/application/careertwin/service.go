package careertwin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
)

const systemPrompt = `You are an AI Career Twin for SkillBridge AI — a personalized career mentor.

Your role:
- Analyze the student's Skill DNA and provide career guidance
- Recommend specific skills and learning paths
- Predict career readiness percentages
- Suggest relevant challenges from the platform
- Track and celebrate daily growth
- Be encouraging but honest about areas needing improvement

Personality: Professional yet friendly, data-driven, motivational.
Always reference the student's actual skill data in responses.
Keep responses concise (2-4 paragraphs max).`

// HistoryEntry is one prior turn of a Career Twin conversation.
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /career-twin/chat.
type ChatRequest struct {
	Message string         `json:"message" validate:"required"`
	History []HistoryEntry `json:"history"`
}

type ChatResponse struct {
	Response          string   `json:"response"`
	CareerReadiness   int      `json:"career_readiness"`
	RecommendedSkills []string `json:"recommended_skills"`
	DailyGrowth       string   `json:"daily_growth"`
}

type DailyInsights struct {
	CareerReadiness     int    `json:"career_readiness"`
	ReadinessChange     string `json:"readiness_change"`
	TodayRecommendation string `json:"today_recommendation"`
	Streak              int    `json:"streak"`
	NextMilestone       string `json:"next_milestone"`
	SkillOfTheDay       string `json:"skill_of_the_day"`
}

type completer interface {
	AnalyzeText(ctx context.Context, systemPrompt, userInput string) string
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type Service interface {
	Chat(ctx context.Context, studentID string, req ChatRequest) *ChatResponse
	Insights(ctx context.Context, studentID string) *DailyInsights
}

type service struct {
	ai    completer
	users userStore
}

func NewService(ai completer, users userStore) Service {
	return &service{ai: ai, users: users}
}

// Chat runs one mentor turn. Conversation history and the student's skill
// context are folded into the prompt since the completion is single-turn.
// The stored user record personalizes the context when reachable.
func (s *service) Chat(ctx context.Context, studentID string, req ChatRequest) *ChatResponse {
	ident := "ID=" + studentID
	if u, err := s.users.Get(ctx, studentID); err != nil {
		slog.Warn("student lookup failed, mentoring without profile", "student_id", studentID, "err", err)
	} else if u.Name != "" {
		ident = fmt.Sprintf("Name=%s, ID=%s", u.Name, studentID)
	}

	var b strings.Builder
	for _, h := range req.History {
		fmt.Fprintf(&b, "%s: %s\n", h.Role, h.Content)
	}
	fmt.Fprintf(&b,
		"Student context: %s, Skill DNA Score=87%%, "+
			"Strengths: Problem Solving (88%%), Web Dev (92%%). "+
			"Growth areas: System Design (60%%), DevOps (55%%).\n",
		ident)
	fmt.Fprintf(&b, "user: %s", req.Message)

	response := s.ai.AnalyzeText(ctx, systemPrompt, b.String())

	return &ChatResponse{
		Response:          response,
		CareerReadiness:   78,
		RecommendedSkills: []string{"System Design", "Advanced SQL", "REST API Design"},
		DailyGrowth:       "+0.5%",
	}
}

func (s *service) Insights(ctx context.Context, studentID string) *DailyInsights {
	return &DailyInsights{
		CareerReadiness:     78,
		ReadinessChange:     "+2%",
		TodayRecommendation: "Practice a System Design problem to improve your weakest area.",
		Streak:              7,
		NextMilestone:       "Complete 3 more challenges to earn 'Full Stack' badge",
		SkillOfTheDay:       "Database Indexing",
	}
}
