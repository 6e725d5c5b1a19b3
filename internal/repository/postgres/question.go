package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

const questionColumns = `id, question, answer, category, difficulty`

// QuestionRepository implements the domain.QuestionRepository interface
type QuestionRepository struct {
	db DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db DB) *QuestionRepository {
	return &QuestionRepository{
		db: db,
	}
}

// List retrieves all questions ordered by ID
func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions
		ORDER BY id
	`
	return r.queryQuestions(ctx, query)
}

// ListByCategory retrieves the questions of one category ordered by ID
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions
		WHERE category = $1
		ORDER BY id
	`
	return r.queryQuestions(ctx, query, categoryID)
}

// Search retrieves the questions whose text contains term, ignoring case
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]domain.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions
		WHERE question ILIKE $1
		ORDER BY id
	`
	return r.queryQuestions(ctx, query, containsPattern(term))
}

// GetByID retrieves a question by its ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	var question domain.Question
	err := r.db.QueryRow(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE id = $1
	`, id).Scan(
		&question.ID,
		&question.Question,
		&question.Answer,
		&question.Category,
		&question.Difficulty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &question, nil
}

// Create inserts a question and stores the generated ID on it
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	query := `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		question.Question,
		question.Answer,
		question.Category,
		question.Difficulty,
	).Scan(&question.ID)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// Delete deletes a question
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM questions WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepository) queryQuestions(ctx context.Context, query string, args ...any) ([]domain.Question, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	defer rows.Close()

	questions := []domain.Question{}
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return questions, nil
}
