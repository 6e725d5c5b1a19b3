package handler

import (
	"net/http"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "resource not found",
	http.StatusUnprocessableEntity: "Unprocessable",
	http.StatusInternalServerError: "server error",
}

// NewErrorResponse builds the error body for an HTTP status code
func NewErrorResponse(code int) ErrorResponse {
	message, ok := errorMessages[code]
	if !ok {
		message = http.StatusText(code)
	}
	return ErrorResponse{Success: false, Error: code, Message: message}
}

type categoriesResponse struct {
	Success         bool              `json:"success"`
	Categories      []domain.Category `json:"categories"`
	TotalCategories int               `json:"total_categories"`
}

type questionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      []domain.Category `json:"categories"`
	CurrentCategory []int64           `json:"current_category"`
}

type categoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory string            `json:"current_category"`
}

type searchResponse struct {
	Success        bool              `json:"success"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

type createdResponse struct {
	Success  bool   `json:"success"`
	Inserted int64  `json:"inserted"`
	Message  string `json:"message"`
}

type deletedResponse struct {
	Success       bool   `json:"success"`
	DeletedItemID int64  `json:"deleted_item_id"`
	Message       string `json:"message"`
}

type quizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question"`
}
