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

type SlotState struct {
	Slot      int    `json:"slot"`
	Question  string `json:"question"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
	Answer    string `json:"answer,omitempty"`
}

type TodayResponse struct {
	Date        string      `json:"date"`
	EntryID     string      `json:"entry_id,omitempty"`
	CurrentSlot int         `json:"current_slot"`
	AllComplete bool        `json:"all_complete"`
	Questions   []SlotState `json:"questions"`
}

var (
	cfg       *config.Config
	logger    *zap.Logger
	dataStore store.Store
)

// handler loads or starts today's journaling session for the authenticated
// user and returns its current state.
func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userID, err := auth.UserIDFromHeaders([]byte(cfg.JWTSecret), request.Headers)
	if err != nil {
		return errorResponse(401, "UNAUTHORIZED", "Invalid or missing authentication token"), nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	flow, err := journal.Start(ctx, dataStore, logger, rng, userID, time.Now())
	if errors.Is(err, journal.ErrNotEnoughQuestions) {
		return errorResponse(409, "INSUFFICIENT_QUESTIONS", "Not enough active questions to start today's session"), nil
	}
	if err != nil {
		logger.Error("failed to start session", zap.String("user_id", userID), zap.Error(err))
		return errorResponse(500, "STORE_ERROR", "Failed to load today's session, please retry"), nil
	}

	resp := TodayResponse{
		Date:        flow.Date(),
		EntryID:     flow.EntryID(),
		CurrentSlot: int(flow.CurrentSlot()),
		AllComplete: flow.AllComplete(),
	}
	for slot := models.SlotFirst; slot <= models.SlotThird; slot++ {
		q := flow.Question(slot)
		resp.Questions = append(resp.Questions, SlotState{
			Slot:      int(slot),
			Question:  q.Text,
			Category:  string(q.Category),
			Completed: flow.Completed(slot),
			Answer:    flow.Answer(slot),
		})
	}

	responseBody, err := json.Marshal(resp)
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
