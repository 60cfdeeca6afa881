package agent

import (
	"context"
	"fmt"
	"shopsight/domain"
	"shopsight/pkg/logger"
	"shopsight/pkg/metrics"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	systemInstruction = "You are a helpful store analytics assistant that provides clear, actionable insights based on store data."

	// How many records of each collection are loaded per question.
	loadLimit = 1000

	// Answers longer than this are considered high confidence.
	highConfidenceLength = 100

	historyDefaultLimit = 20
	historyMaxLimit     = 100
)

// LLMClient submits a system instruction plus a user prompt under a session
// identifier and returns the generated answer text.
type LLMClient interface {
	Complete(ctx context.Context, system, sessionID, prompt string) (string, error)
}

type StoreRepository interface {
	FindByID(ctx context.Context, id string) (domain.Store, error)
}

type ProductRepository interface {
	FindByStore(ctx context.Context, storeID string, limit int) ([]domain.Product, error)
}

type OrdersRepository interface {
	FindByStore(ctx context.Context, storeID string, limit int) ([]domain.Order, error)
}

type CustomerRepository interface {
	FindByStore(ctx context.Context, storeID string, limit int) ([]domain.Customer, error)
}

type QuestionRepository interface {
	Create(ctx context.Context, question *domain.Question) error
	FindByStore(ctx context.Context, storeID string, limit int) ([]domain.Question, error)
}

type AnswerSource string

const (
	AnswerSourceLLM      AnswerSource = "llm"
	AnswerSourceFallback AnswerSource = "fallback"
)

// Answer is the two-variant result of analyzing a question: an LLM answer or a
// rule-based fallback answer. Callers inspect Source, never an error.
type Answer struct {
	Text       string
	Confidence string
	Intent     Intent
	ShopifyQL  string
	Source     AnswerSource
}

type Service struct {
	llm          LLMClient
	storeRepo    StoreRepository
	productRepo  ProductRepository
	ordersRepo   OrdersRepository
	customerRepo CustomerRepository
	questionRepo QuestionRepository
}

func NewService(
	llm LLMClient,
	storeRepo StoreRepository,
	productRepo ProductRepository,
	ordersRepo OrdersRepository,
	customerRepo CustomerRepository,
	questionRepo QuestionRepository,
) *Service {
	return &Service{
		llm:          llm,
		storeRepo:    storeRepo,
		productRepo:  productRepo,
		ordersRepo:   ordersRepo,
		customerRepo: customerRepo,
		questionRepo: questionRepo,
	}
}

// Analyze answers a question over the given dataset. It is total: an LLM
// failure switches to the rule-based fallback and is never surfaced.
func (s *Service) Analyze(ctx context.Context, question string, data StoreData) Answer {
	prompt := buildPrompt(question, data)
	sessionID := "store-analytics-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	text, err := s.llm.Complete(ctx, systemInstruction, sessionID, prompt)
	if err != nil {
		logger.Warn("LLM attempt failed, serving rule-based fallback", err)
		metrics.FallbackAnswersTotal.Inc()
		return fallbackAnswer(question, data)
	}

	confidence := domain.ConfidenceMedium
	if len(text) > highConfidenceLength {
		confidence = domain.ConfidenceHigh
	}

	intent := ClassifyIntent(question)

	return Answer{
		Text:       text,
		Confidence: confidence,
		Intent:     intent,
		ShopifyQL:  shopifyQL(intent),
		Source:     AnswerSourceLLM,
	}
}

// AskQuestion loads the store's dataset, answers the question and records it
// in the question history.
func (s *Service) AskQuestion(ctx context.Context, storeID, question string) (domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return domain.Question{}, fmt.Errorf("context error: %w", err)
	}

	if _, err := s.storeRepo.FindByID(ctx, storeID); err != nil {
		return domain.Question{}, err
	}

	products, err := s.productRepo.FindByStore(ctx, storeID, loadLimit)
	if err != nil {
		logger.Error("Failed to load products for question", err)
		return domain.Question{}, err
	}

	orders, err := s.ordersRepo.FindByStore(ctx, storeID, loadLimit)
	if err != nil {
		logger.Error("Failed to load orders for question", err)
		return domain.Question{}, err
	}

	customers, err := s.customerRepo.FindByStore(ctx, storeID, loadLimit)
	if err != nil {
		logger.Error("Failed to load customers for question", err)
		return domain.Question{}, err
	}

	answer := s.Analyze(ctx, question, StoreData{
		Products:  products,
		Orders:    orders,
		Customers: customers,
	})

	record := domain.Question{
		ID:         uuid.NewString(),
		StoreID:    storeID,
		Question:   question,
		Answer:     answer.Text,
		Confidence: answer.Confidence,
		ShopifyQL:  answer.ShopifyQL,
		Intent:     string(answer.Intent),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.questionRepo.Create(ctx, &record); err != nil {
		logger.Error("Failed to save question history", err)
		return domain.Question{}, err
	}

	return record, nil
}

// History returns the store's question history, newest first. The limit
// defaults to 20 and is capped at 100.
func (s *Service) History(ctx context.Context, storeID string, limit int) ([]domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = historyDefaultLimit
	}
	if limit > historyMaxLimit {
		limit = historyMaxLimit
	}

	return s.questionRepo.FindByStore(ctx, storeID, limit)
}
