package domain

import "time"

type Submission struct {
	SubmissionID  string    `json:"id" dynamodbav:"submission_id"`
	ProblemID     string    `json:"problem_id" dynamodbav:"problem_id"`
	StudentID     string    `json:"student_id" dynamodbav:"student_id"`
	GithubURL     string    `json:"github_url" dynamodbav:"github_url"`
	DemoURL       string    `json:"demo_url,omitempty" dynamodbav:"demo_url"`
	Documentation string    `json:"documentation,omitempty" dynamodbav:"documentation"`
	Status        string    `json:"status" dynamodbav:"status"`
	Score         *int      `json:"score,omitempty" dynamodbav:"score"`
	SubmittedAt   time.Time `json:"submitted_at" dynamodbav:"submitted_at"`
}

// CreateSubmissionRequest is the body of POST /submissions/create.
type CreateSubmissionRequest struct {
	ProblemID     string `json:"problem_id" validate:"required"`
	GithubURL     string `json:"github_url" validate:"required,url"`
	DemoURL       string `json:"demo_url" validate:"omitempty,url"`
	Documentation string `json:"documentation"`
}
