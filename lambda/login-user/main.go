package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/monthsbackend/internal/auth"
	"github.com/monthsbackend/internal/config"
	"github.com/monthsbackend/internal/logging"
	"github.com/monthsbackend/internal/store"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

var (
	cfg       *config.Config
	logger    *zap.Logger
	dataStore store.Store
)

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req LoginRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return errorResponse(400, "INVALID_REQUEST", "Invalid JSON in request body"), nil
	}

	user, err := dataStore.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return errorResponse(401, "INVALID_CREDENTIALS", "Invalid email or password"), nil
	}
	if err != nil {
		logger.Error("failed to look up user", zap.Error(err))
		return errorResponse(500, "STORE_ERROR", "Error looking up user"), nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return errorResponse(401, "INVALID_CREDENTIALS", "Invalid email or password"), nil
	}

	token, err := auth.GenerateToken([]byte(cfg.JWTSecret), user.ID)
	if err != nil {
		logger.Error("failed to generate token", zap.String("user_id", user.ID), zap.Error(err))
		return errorResponse(500, "SERVICE_ERROR", "Error generating token"), nil
	}

	responseBody, err := json.Marshal(LoginResponse{UserID: user.ID, Name: user.Name, Token: token})
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
