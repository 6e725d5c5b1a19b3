package service

import (
	"context"
	"errors"
	"slices"
	"strconv"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/pagination"
	"github.com/zizouhuweidi/trivia/internal/quiz"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

// AllCategories selects every question as a quiz candidate
const AllCategories int64 = 0

// TriviaService implements browsing, editing and playing trivia questions.
// Every error it returns is a *domain.Error.
type TriviaService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	validator  *validation.Validator
}

// NewTriviaService creates a new trivia service
func NewTriviaService(questions domain.QuestionRepository, categories domain.CategoryRepository) *TriviaService {
	return &TriviaService{
		questions:  questions,
		categories: categories,
		validator:  validation.New(),
	}
}

// QuestionPage is one page of the full question list
type QuestionPage struct {
	Questions      []domain.Question
	TotalQuestions int
	Categories     []domain.Category
	// CurrentCategory lists the distinct category IDs of the questions on this page only
	CurrentCategory []int64
}

// CategoryQuestions is one page of the questions in a category
type CategoryQuestions struct {
	Questions       []domain.Question
	TotalQuestions  int
	CurrentCategory string
}

// SearchResult is one page of the questions matching a search term
type SearchResult struct {
	Questions      []domain.Question
	TotalQuestions int
}

// CreateQuestionInput carries the fields of a new question as submitted
type CreateQuestionInput struct {
	Question   string `validate:"required"`
	Answer     string `validate:"required"`
	Difficulty string `validate:"required"`
	Category   string `validate:"required"`
}

// ListCategories retrieves all categories
func (s *TriviaService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "list categories"

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, domain.E(domain.KindInternal, op, err)
	}
	return categories, nil
}

// ListQuestions retrieves a page of all questions together with the categories
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	const op = "list questions"

	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, domain.E(domain.KindInternal, op, err)
	}

	current := pagination.Paginate(page, questions)
	if len(current) == 0 {
		return nil, domain.E(domain.KindNotFound, op, nil)
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, domain.E(domain.KindInternal, op, err)
	}

	return &QuestionPage{
		Questions:       current,
		TotalQuestions:  len(questions),
		Categories:      categories,
		CurrentCategory: categoryIDs(current),
	}, nil
}

// QuestionsByCategory retrieves a page of the questions in a category
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int64, page int) (*CategoryQuestions, error) {
	const op = "list category questions"

	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, domain.E(domain.KindUnprocessable, op, err)
		}
		return nil, domain.E(domain.KindInternal, op, err)
	}

	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, domain.E(domain.KindInternal, op, err)
	}

	return &CategoryQuestions{
		Questions:       pagination.Paginate(page, questions),
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	}, nil
}

// SearchQuestions retrieves a page of the questions whose text contains term
func (s *TriviaService) SearchQuestions(ctx context.Context, term string, page int) (*SearchResult, error) {
	const op = "search questions"

	term = validation.NormalizeTerm(term)
	if term == "" {
		return nil, domain.E(domain.KindUnprocessable, op, errors.New("empty search term"))
	}

	questions, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, domain.E(domain.KindInternal, op, err)
	}
	if len(questions) == 0 {
		return nil, domain.E(domain.KindNotFound, op, nil)
	}

	return &SearchResult{
		Questions:      pagination.Paginate(page, questions),
		TotalQuestions: len(questions),
	}, nil
}

// CreateQuestion validates and stores a new question
func (s *TriviaService) CreateQuestion(ctx context.Context, in CreateQuestionInput) (*domain.Question, error) {
	const op = "create question"

	if err := s.validator.Validate(in); err != nil {
		return nil, domain.E(domain.KindUnprocessable, op, err)
	}

	difficulty, err := strconv.Atoi(in.Difficulty)
	if err != nil || difficulty < 1 {
		return nil, domain.E(domain.KindUnprocessable, op, errors.New("difficulty must be a positive integer"))
	}
	category, err := strconv.ParseInt(in.Category, 10, 64)
	if err != nil {
		return nil, domain.E(domain.KindUnprocessable, op, errors.New("category must be an integer"))
	}

	question := &domain.Question{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   category,
		Difficulty: difficulty,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, domain.E(domain.KindUnprocessable, op, err)
	}
	return question, nil
}

// DeleteQuestion deletes a question. A missing question and a failed
// delete are both reported as not found.
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int64) error {
	const op = "delete question"

	if err := s.questions.Delete(ctx, id); err != nil {
		return domain.E(domain.KindNotFound, op, err)
	}
	return nil
}

// NextQuizQuestion draws a question of the category, or of any category for
// AllCategories, that is not in previous. It returns nil when none is left.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, categoryID int64, previous []int64) (*domain.Question, error) {
	const op = "play quiz"

	var (
		candidates []domain.Question
		err        error
	)
	if categoryID == AllCategories {
		candidates, err = s.questions.List(ctx)
	} else {
		candidates, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, domain.E(domain.KindBadRequest, op, err)
	}

	return quiz.NextQuestion(candidates, previous), nil
}

func categoryIDs(questions []domain.Question) []int64 {
	ids := make([]int64, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.Category)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}
