package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/monthsbackend/internal/auth"
	"github.com/monthsbackend/internal/config"
	"github.com/monthsbackend/internal/dates"
	"github.com/monthsbackend/internal/logging"
	"github.com/monthsbackend/internal/store"
)

type ProgressResponse struct {
	Month         string `json:"month"`
	DaysJournaled int    `json:"days_journaled"`
	DaysInMonth   int    `json:"days_in_month"`
}

var (
	cfg       *config.Config
	logger    *zap.Logger
	dataStore store.Store
)

// handler reports how many days of the month the user completed all three
// questions. Defaults to the current month when no month parameter is given.
func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userID, err := auth.UserIDFromHeaders([]byte(cfg.JWTSecret), request.Headers)
	if err != nil {
		return errorResponse(401, "UNAUTHORIZED", "Invalid or missing authentication token"), nil
	}

	month := request.QueryStringParameters["month"]
	if month == "" {
		month = dates.MonthKey(time.Now())
	}
	first, last, err := dates.MonthBounds(month)
	if err != nil {
		return errorResponse(400, "INVALID_MONTH", "Month must be formatted YYYY-MM"), nil
	}

	completed, err := dataStore.CountCompletedEntries(ctx, userID, first, last)
	if err != nil {
		logger.Error("failed to count completed entries",
			zap.String("user_id", userID),
			zap.String("month", month),
			zap.Error(err),
		)
		return errorResponse(500, "STORE_ERROR", "Failed to load progress, please retry"), nil
	}

	responseBody, err := json.Marshal(ProgressResponse{
		Month:         month,
		DaysJournaled: completed,
		DaysInMonth:   dates.DaysInMonth(month),
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
