package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/keerthiramGR/skillbridge-ai/internal/config"
	"github.com/keerthiramGR/skillbridge-ai/internal/infrastructure/dynamo"
	"github.com/keerthiramGR/skillbridge-ai/internal/infrastructure/gemini"
	"github.com/keerthiramGR/skillbridge-ai/internal/infrastructure/google"
	"github.com/keerthiramGR/skillbridge-ai/internal/infrastructure/smtp"
	"github.com/keerthiramGR/skillbridge-ai/internal/infrastructure/token"
	transporthttp "github.com/keerthiramGR/skillbridge-ai/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	ctx := context.Background()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(ctx, dynamoClient, cfg.DynamoTables)

	deps := &transporthttp.Deps{
		UserRepo:       dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		ProblemRepo:    dynamo.NewProblemRepo(dynamoClient, cfg.DynamoTables.Problems),
		SubmissionRepo: dynamo.NewSubmissionRepo(dynamoClient, cfg.DynamoTables.Submissions),
		Mailer:         smtp.NewMailer(cfg),
		GoogleVerifier: google.NewVerifier(cfg),
		TokenCodec:     token.NewCodec(cfg),
		AI:             gemini.NewClient(ctx, cfg),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
