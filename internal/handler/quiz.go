package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuizHandler handles quiz play
type QuizHandler struct {
	trivia *service.TriviaService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(trivia *service.TriviaService) *QuizHandler {
	return &QuizHandler{
		trivia: trivia,
	}
}

// PlayQuiz returns a random question of the chosen category that is not in
// previous_questions, or a null question when none is left
// POST /quizzes
func (h *QuizHandler) PlayQuiz(c echo.Context) error {
	var req PlayQuizRequest
	if err := c.Bind(&req); err != nil {
		return domain.E(domain.KindBadRequest, "bind quiz", err)
	}
	if err := c.Validate(&req); err != nil {
		return domain.E(domain.KindBadRequest, "validate quiz", err)
	}

	question, err := h.trivia.NextQuizQuestion(c.Request().Context(), int64(*req.QuizCategory.ID), req.previousIDs())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, quizResponse{
		Success:  true,
		Question: question,
	})
}
