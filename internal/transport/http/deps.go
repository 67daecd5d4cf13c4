package http

import (
	"github.com/keerthiramGR/skillbridge-ai/internal/application/auth"
	"github.com/keerthiramGR/skillbridge-ai/internal/infrastructure/dynamo"
	"github.com/keerthiramGR/skillbridge-ai/internal/infrastructure/gemini"
	"github.com/keerthiramGR/skillbridge-ai/internal/infrastructure/google"
	"github.com/keerthiramGR/skillbridge-ai/internal/infrastructure/smtp"
	"github.com/keerthiramGR/skillbridge-ai/internal/infrastructure/token"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo       *dynamo.UserRepo
	ProblemRepo    *dynamo.ProblemRepo
	SubmissionRepo *dynamo.SubmissionRepo
	Mailer         smtp.Mailer
	GoogleVerifier auth.GoogleVerifier
	TokenCodec     *token.Codec
	AI             gemini.Completer
}

var _ auth.GoogleVerifier = (*google.Verifier)(nil)
