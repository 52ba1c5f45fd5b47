package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/monthsbackend/internal/auth"
	"github.com/monthsbackend/internal/config"
	"github.com/monthsbackend/internal/journal"
	"github.com/monthsbackend/internal/logging"
	"github.com/monthsbackend/internal/models"
	"github.com/monthsbackend/internal/store"
)

type SubmitRequest struct {
	Slot   int    `json:"slot"`
	Answer string `json:"answer"`
}

type SubmitResponse struct {
	EntryID     string `json:"entry_id"`
	Slot        int    `json:"slot"`
	CurrentSlot int    `json:"current_slot"`
	AllComplete bool   `json:"all_complete"`
}

var (
	cfg       *config.Config
	logger    *zap.Logger
	dataStore store.Store
)

// handler persists one slot's answer for today's session. The session is
// rebuilt from the store on every invocation, so a retried request lands in
// the same state it would have in a long-lived process.
func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userID, err := auth.UserIDFromHeaders([]byte(cfg.JWTSecret), request.Headers)
	if err != nil {
		return errorResponse(401, "UNAUTHORIZED", "Invalid or missing authentication token"), nil
	}

	var req SubmitRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return errorResponse(400, "INVALID_REQUEST", "Invalid JSON in request body"), nil
	}
	slot := models.Slot(req.Slot)
	if !slot.Valid() {
		return errorResponse(400, "VALIDATION_ERROR", "Slot must be 0, 1 or 2"), nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	flow, err := journal.Start(ctx, dataStore, logger, rng, userID, time.Now())
	if errors.Is(err, journal.ErrNotEnoughQuestions) {
		return errorResponse(409, "INSUFFICIENT_QUESTIONS", "Not enough active questions to start today's session"), nil
	}
	if err != nil {
		logger.Error("failed to load session", zap.String("user_id", userID), zap.Error(err))
		return errorResponse(500, "STORE_ERROR", "Failed to load today's session, please retry"), nil
	}

	err = flow.SubmitAnswer(ctx, slot, req.Answer)
	switch {
	case errors.Is(err, journal.ErrEmptyAnswer):
		return errorResponse(400, "VALIDATION_ERROR", "Answer must not be empty"), nil
	case errors.Is(err, journal.ErrWrongSlot):
		return errorResponse(409, "WRONG_SLOT", fmt.Sprintf("Current slot is %d", flow.CurrentSlot())), nil
	case errors.Is(err, journal.ErrAlreadyComplete):
		return errorResponse(409, "ALREADY_COMPLETE", "All questions for today are already completed"), nil
	case err != nil:
		logger.Error("failed to save answer",
			zap.String("user_id", userID),
			zap.Int("slot", req.Slot),
			zap.Error(err),
		)
		return errorResponse(500, "STORE_ERROR", "Failed to save, please retry"), nil
	}

	logger.Info("answer saved",
		zap.String("user_id", userID),
		zap.String("entry_id", flow.EntryID()),
		zap.Int("slot", req.Slot),
		zap.Bool("all_complete", flow.AllComplete()),
	)

	responseBody, err := json.Marshal(SubmitResponse{
		EntryID:     flow.EntryID(),
		Slot:        req.Slot,
		CurrentSlot: int(flow.CurrentSlot()),
		AllComplete: flow.AllComplete(),
	})
	if err != nil {
		return errorResponse(500, "SERIALIZATION_ERROR", "Error creating response"), nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(responseBody),
	}, nil
}

func errorResponse(statusCode int, code, message string) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(map[string]string{"error": message, "code": code})
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

func init() {
	var err error
	cfg, err = config.LoadFromEnv()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logger = logging.MustNew(cfg.LogLevel)

	dataStore, err = store.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		fmt.Printf("Error initializing database: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	lambda.Start(handler)
}
