package rest

import (
	"context"
	"errors"
	"net/http"
	"shopsight/domain"
	"shopsight/pkg/logger"
	"shopsight/pkg/metrics"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type QuestionService interface {
	AskQuestion(ctx context.Context, storeID, question string) (domain.Question, error)
	History(ctx context.Context, storeID string, limit int) ([]domain.Question, error)
}

type QuestionHandler struct {
	questionService QuestionService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewQuestionHandler(questionService QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		validator:       validator.New(),
		// Question answering waits on the LLM, so this window is wider than
		// the other handlers'.
		timeout: 60 * time.Second,
	}
}

type AskQuestionRequest struct {
	StoreID  string `json:"store_id" validate:"required"`
	Question string `json:"question" validate:"required"`
}

type HistoryQuery struct {
	Limit int `query:"limit" validate:"gte=0,lte=100"`
}

func (h *QuestionHandler) AskQuestion(c echo.Context) error {
	var req AskQuestionRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate question request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	answered, err := h.questionService.AskQuestion(ctx, req.StoreID, req.Question)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to answer question", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.QuestionsTotal.Inc()
	metrics.QuestionAnswerLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(answered))
}

func (h *QuestionHandler) GetQuestionHistory(c echo.Context) error {
	var q HistoryQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	questions, err := h.questionService.History(ctx, c.Param("id"), q.Limit)
	if err != nil {
		logger.Error("Failed to get question history", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(questions))
}
