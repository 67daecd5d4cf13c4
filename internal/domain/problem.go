package domain

import "time"

type Problem struct {
	ProblemID          string    `json:"id" dynamodbav:"problem_id"`
	Title              string    `json:"title" dynamodbav:"title"`
	Domain             string    `json:"domain" dynamodbav:"domain"`
	Difficulty         string    `json:"difficulty" dynamodbav:"difficulty"`
	Description        string    `json:"description,omitempty" dynamodbav:"description"`
	RequiredSkills     []string  `json:"required_skills,omitempty" dynamodbav:"required_skills"`
	Deadline           string    `json:"deadline,omitempty" dynamodbav:"deadline"`
	EvaluationCriteria string    `json:"evaluation_criteria,omitempty" dynamodbav:"evaluation_criteria"`
	MaxParticipants    int       `json:"max_participants,omitempty" dynamodbav:"max_participants"`
	CreatedBy          string    `json:"created_by,omitempty" dynamodbav:"created_by"`
	Status             string    `json:"status" dynamodbav:"status"`
	CreatedAt          time.Time `json:"created_at" dynamodbav:"created_at"`
}

// CreateProblemRequest is the body of POST /problems/upload.
type CreateProblemRequest struct {
	Title              string   `json:"title" validate:"required"`
	Domain             string   `json:"domain" validate:"required"`
	Difficulty         string   `json:"difficulty"`
	Description        string   `json:"description" validate:"required"`
	RequiredSkills     []string `json:"required_skills" validate:"required"`
	Deadline           string   `json:"deadline" validate:"required"`
	EvaluationCriteria string   `json:"evaluation_criteria"`
	MaxParticipants    int      `json:"max_participants"`
}
