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

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

var (
	cfg       *config.Config
	logger    *zap.Logger
	dataStore store.Store
)

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req RegisterRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return errorResponse(400, "INVALID_REQUEST", "Invalid JSON in request body"), nil
	}

	if req.Email == "" {
		return errorResponse(400, "VALIDATION_ERROR", "Email is required"), nil
	}
	if len(req.Password) < 8 {
		return errorResponse(400, "VALIDATION_ERROR", "Password must be at least 8 characters"), nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errorResponse(500, "SERVICE_ERROR", "Error processing password"), nil
	}

	user, err := dataStore.CreateUser(ctx, req.Email, req.Name, string(hashedPassword))
	if errors.Is(err, store.ErrDuplicateUser) {
		return errorResponse(409, "DUPLICATE_USER", "An account with this email already exists"), nil
	}
	if err != nil {
		logger.Error("failed to create user", zap.String("email", req.Email), zap.Error(err))
		return errorResponse(500, "STORE_ERROR", "Error creating user"), nil
	}

	token, err := auth.GenerateToken([]byte(cfg.JWTSecret), user.ID)
	if err != nil {
		logger.Error("failed to generate token", zap.String("user_id", user.ID), zap.Error(err))
		return errorResponse(500, "SERVICE_ERROR", "Error generating token"), nil
	}

	logger.Info("user registered", zap.String("user_id", user.ID))

	responseBody, err := json.Marshal(RegisterResponse{UserID: user.ID, Token: token})
	if err != nil {
		return errorResponse(500, "SERIALIZATION_ERROR", "Error creating response"), nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: 201,
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
