package handler

import (
	"encoding/json"

	"text-quiz/internal/domain"
	"text-quiz/internal/dto"
	"text-quiz/internal/logger"
	"text-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuiz godoc
// @Summary Generate quizzes from text
// @Description Generates up to 5 question/answer pairs grounded in the given text (max 1000 characters, longer text is truncated)
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Source text"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	// The body is decoded regardless of Content-Type; a non-string text
	// fails to decode and is reported like a missing one.
	var req dto.GenerateQuizRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		logger.Get().Debug("Failed to decode quiz request", zap.Error(err))
		return domain.NewInvalidInputError(domain.MsgTextRequired)
	}

	resp, err := h.service.GenerateQuizzes(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
