package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// QuestionRepository defines the interface for question-related operations.
// Every listing is ordered by ascending question ID.
type QuestionRepository interface {
	// List retrieves all questions
	List(ctx context.Context) ([]Question, error)

	// ListByCategory retrieves the questions linked to a category
	ListByCategory(ctx context.Context, categoryID int64) ([]Question, error)

	// Search retrieves the questions whose text contains term, ignoring case
	Search(ctx context.Context, term string) ([]Question, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int64) (*Question, error)

	// Create inserts a question and assigns its ID
	Create(ctx context.Context, question *Question) error

	// Delete deletes a question
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository defines the read-only operations on categories.
// List is ordered by ascending category ID.
type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
}

// Question represents a trivia question
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category groups questions under a human-readable label
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}
