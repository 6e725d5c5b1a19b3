package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/pagination"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	trivia *service.TriviaService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(trivia *service.TriviaService) *CategoryHandler {
	return &CategoryHandler{
		trivia: trivia,
	}
}

// ListCategories returns every category
// GET /categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.trivia.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categoriesResponse{
		Success:         true,
		Categories:      categories,
		TotalCategories: len(categories),
	})
}

// ListQuestions returns a page of the questions in a category
// GET /categories/:id/questions?page=N
func (h *CategoryHandler) ListQuestions(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	page := pagination.ParsePage(c.QueryParam("page"))

	result, err := h.trivia.QuestionsByCategory(c.Request().Context(), id, page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: result.CurrentCategory,
	})
}
