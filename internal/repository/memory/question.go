// Package memory keeps questions and categories in process memory.
// It serves tests and local runs without a database.
package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuestionRepository implements the domain.QuestionRepository interface
type QuestionRepository struct {
	mu        sync.RWMutex
	questions []domain.Question // ascending ID
	nextID    int64
}

// NewQuestionRepository creates a repository holding questions.
// IDs already set on the seed are kept; the rest are assigned.
func NewQuestionRepository(questions ...domain.Question) *QuestionRepository {
	r := &QuestionRepository{nextID: 1}
	for _, q := range questions {
		if q.ID == 0 {
			q.ID = r.nextID
		}
		r.nextID = max(r.nextID, q.ID+1)
		r.questions = append(r.questions, q)
	}
	slices.SortFunc(r.questions, func(a, b domain.Question) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return r
}

// List retrieves all questions ordered by ID
func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	return r.filter(func(domain.Question) bool { return true }), nil
}

// ListByCategory retrieves the questions of one category ordered by ID
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error) {
	return r.filter(func(q domain.Question) bool { return q.Category == categoryID }), nil
}

// Search retrieves the questions whose text contains term, ignoring case
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]domain.Question, error) {
	term = strings.ToLower(term)
	return r.filter(func(q domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

// GetByID retrieves a question by its ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index(id)
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	q := r.questions[i]
	return &q, nil
}

// Create inserts a question and assigns its ID
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	question.ID = r.nextID
	r.nextID++
	r.questions = append(r.questions, *question)
	return nil
}

// Delete deletes a question
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index(id)
	if !ok {
		return domain.ErrQuestionNotFound
	}
	r.questions = slices.Delete(r.questions, i, i+1)
	return nil
}

func (r *QuestionRepository) filter(keep func(domain.Question) bool) []domain.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Question{}
	for _, q := range r.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

// index must be called with mu held
func (r *QuestionRepository) index(id int64) (int, bool) {
	return slices.BinarySearchFunc(r.questions, id, func(q domain.Question, id int64) int {
		return cmp.Compare(q.ID, id)
	})
}
