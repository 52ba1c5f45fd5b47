package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/monthsbackend/internal/auth"
	"github.com/monthsbackend/internal/book"
	"github.com/monthsbackend/internal/config"
	"github.com/monthsbackend/internal/dates"
	"github.com/monthsbackend/internal/logging"
	"github.com/monthsbackend/internal/store"
)

// fallbackName is the cover title when the user never set a display name.
const fallbackName = "My Journal"

var (
	cfg       *config.Config
	logger    *zap.Logger
	dataStore store.Store
)

// handler builds the printable book for one month of the authenticated user's
// entries and returns it as a base64-encoded PDF.
func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userID, err := auth.UserIDFromHeaders([]byte(cfg.JWTSecret), request.Headers)
	if err != nil {
		return errorResponse(401, "UNAUTHORIZED", "Invalid or missing authentication token"), nil
	}

	month := request.PathParameters["month"]
	if month == "" {
		month = request.QueryStringParameters["month"]
	}
	// Malformed month keys are rejected here; the typesetter assumes a
	// normalized key.
	first, last, err := dates.MonthBounds(month)
	if err != nil {
		return errorResponse(400, "INVALID_MONTH", "Month must be formatted YYYY-MM"), nil
	}

	user, err := dataStore.GetUser(ctx, userID)
	if err != nil {
		logger.Error("failed to load user", zap.String("user_id", userID), zap.Error(err))
		return errorResponse(500, "STORE_ERROR", "Failed to load user, please retry"), nil
	}
	userName := user.Name
	if userName == "" {
		userName = fallbackName
	}

	records, err := dataStore.ListMonthEntries(ctx, userID, first, last)
	if err != nil {
		logger.Error("failed to load month entries",
			zap.String("user_id", userID),
			zap.String("month", month),
			zap.Error(err),
		)
		return errorResponse(500, "STORE_ERROR", "Failed to load entries, please retry"), nil
	}

	entries := make([]book.Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, book.EntryFromModel(record))
	}

	data, fileName, err := book.Generate(userName, month, entries, time.Now())
	if err != nil {
		logger.Error("failed to generate book",
			zap.String("user_id", userID),
			zap.String("month", month),
			zap.Error(err),
		)
		return errorResponse(500, "RENDER_ERROR", "Failed to generate book"), nil
	}

	logger.Info("book generated",
		zap.String("user_id", userID),
		zap.String("month", month),
		zap.Int("entries", len(entries)),
		zap.Int("bytes", len(data)),
	)

	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Headers: map[string]string{
			"Content-Type":        "application/pdf",
			"Content-Disposition": fmt.Sprintf("attachment; filename=%q", fileName),
		},
		Body:            base64.StdEncoding.EncodeToString(data),
		IsBase64Encoded: true,
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
