package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/pagination"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	trivia *service.TriviaService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(trivia *service.TriviaService) *QuestionHandler {
	return &QuestionHandler{
		trivia: trivia,
	}
}

// ListQuestions returns a page of questions with every category and the
// categories present on that page
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	page := pagination.ParsePage(c.QueryParam("page"))

	result, err := h.trivia.ListQuestions(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, questionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		Categories:      result.Categories,
		CurrentCategory: result.CurrentCategory,
	})
}

// CreateQuestion stores a new question
// POST /questions
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return domain.E(domain.KindUnprocessable, "bind question", err)
	}

	question, err := h.trivia.CreateQuestion(c.Request().Context(), service.CreateQuestionInput{
		Question:   string(req.Question),
		Answer:     string(req.Answer),
		Difficulty: string(req.Difficulty),
		Category:   string(req.Category),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdResponse{
		Success:  true,
		Inserted: question.ID,
		Message:  "question created",
	})
}

// DeleteQuestion deletes a question by ID
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.trivia.DeleteQuestion(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deletedResponse{
		Success:       true,
		DeletedItemID: id,
		Message:       "question deleted",
	})
}

// SearchQuestions returns a page of the questions containing searchTerm
// POST /questions_search?page=N
func (h *QuestionHandler) SearchQuestions(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return domain.E(domain.KindUnprocessable, "bind search", err)
	}
	page := pagination.ParsePage(c.QueryParam("page"))

	result, err := h.trivia.SearchQuestions(c.Request().Context(), string(req.SearchTerm), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, searchResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.TotalQuestions,
	})
}

// pathID parses the :id path parameter. Non-numeric IDs name no resource.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.E(domain.KindNotFound, "parse id", err)
	}
	return id, nil
}
