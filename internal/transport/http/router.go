package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/keerthiramGR/skillbridge-ai/internal/application/auth"
	"github.com/keerthiramGR/skillbridge-ai/internal/application/careertwin"
	"github.com/keerthiramGR/skillbridge-ai/internal/application/dashboard"
	"github.com/keerthiramGR/skillbridge-ai/internal/application/interview"
	"github.com/keerthiramGR/skillbridge-ai/internal/application/matching"
	"github.com/keerthiramGR/skillbridge-ai/internal/application/otp"
	"github.com/keerthiramGR/skillbridge-ai/internal/application/problem"
	"github.com/keerthiramGR/skillbridge-ai/internal/application/skills"
	"github.com/keerthiramGR/skillbridge-ai/internal/application/submission"
	"github.com/keerthiramGR/skillbridge-ai/internal/config"
	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
	"github.com/keerthiramGR/skillbridge-ai/internal/transport/http/handler"
	appmiddleware "github.com/keerthiramGR/skillbridge-ai/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.TokenCodec)

	// 5 requests/second, burst of 10 — applied to the public auth endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	authSvc := auth.NewService(auth.ServiceDeps{
		Users:               deps.UserRepo,
		Ledger:              otp.NewLedger(otp.NewMemoryStore()),
		Mailer:              deps.Mailer,
		Google:              deps.GoogleVerifier,
		Tokens:              deps.TokenCodec,
		RecruiterAccessKey:  cfg.RecruiterAccessKey,
		AdminPasscode:       cfg.AdminPasscode,
		TrustClientIdentity: cfg.TrustClientIdentity,
		OTPTTL:              time.Duration(cfg.OTPTTLMinutes) * time.Minute,
	})
	problemSvc := problem.NewService(deps.ProblemRepo)
	submissionSvc := submission.NewService(deps.SubmissionRepo)
	skillSvc := skills.NewService(deps.AI, deps.SubmissionRepo)
	interviewSvc := interview.NewService(deps.AI)
	matchingSvc := matching.NewService(deps.AI, deps.ProblemRepo)
	twinSvc := careertwin.NewService(deps.AI, deps.UserRepo)
	dashboardSvc := dashboard.NewService(deps.UserRepo, deps.ProblemRepo, deps.SubmissionRepo)

	healthH := handler.NewHealthHandler(cfg.AppName, cfg.AppVersion)
	authH := handler.NewAuthHandler(authSvc)
	problemH := handler.NewProblemHandler(problemSvc)
	submissionH := handler.NewSubmissionHandler(submissionSvc)
	skillH := handler.NewSkillHandler(skillSvc)
	interviewH := handler.NewInterviewHandler(interviewSvc)
	recH := handler.NewRecommendationHandler(matchingSvc)
	twinH := handler.NewCareerTwinHandler(twinSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Public routes (no auth) ──────────────────────────────────────────
	r.Get("/", healthH.Root)
	r.Get("/health", healthH.Health)
	r.With(sensitiveRL.Limit).Post("/auth/google", authH.Google)
	r.With(sensitiveRL.Limit).Post("/auth/send-otp", authH.SendOTP)
	r.With(sensitiveRL.Limit).Post("/auth/verify-otp", authH.VerifyOTP)
	r.With(sensitiveRL.Limit).Post("/auth/verify-role", authH.VerifyRole)
	r.Get("/problems/list", problemH.List)

	// ── Authenticated routes ─────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// Any authenticated user
		r.Post("/skills/analyze", skillH.Analyze)
		r.Get("/skills/profile/{studentID}", skillH.Profile)
		r.Post("/interview/evaluate", interviewH.Evaluate)
		r.Get("/interview/questions/{interviewType}", interviewH.Questions)
		r.Get("/recommendations/get", recH.Get)
		r.Get("/recommendations/match/{problemID}", recH.MatchProblem)
		r.Get("/submissions/list", submissionH.List)
		r.Get("/dashboard/student-stats", dashboardH.StudentStats)
		r.Post("/career-twin/chat", twinH.Chat)
		r.Get("/career-twin/daily-insights", twinH.Insights)

		// Student-only routes
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.RequireRole(domain.RoleStudent))

			r.Post("/submissions/create", submissionH.Create)
		})

		// Recruiter and admin routes
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.RequireRole(domain.RoleRecruiter, domain.RoleAdmin))

			r.Post("/problems/upload", problemH.Upload)
		})

		r.With(appmiddleware.RequireRole(domain.RoleRecruiter)).
			Get("/dashboard/recruiter-stats", dashboardH.RecruiterStats)

		// Admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

			r.Get("/dashboard/analytics", dashboardH.Analytics)
		})
	})

	return r
}
