package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

var questionCols = []string{"id", "question", "answer", "category", "difficulty"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestQuestionRepositoryList(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM questions")).
		WillReturnRows(pgxmock.NewRows(questionCols).
			AddRow(int64(1), "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", int64(4), 2).
			AddRow(int64(2), "What boxer's original name is Cassius Clay?", "Muhammad Ali", int64(4), 1))

	questions, err := NewQuestionRepository(mock).List(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, domain.Question{ID: 2, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1}, questions[1])
}

func TestQuestionRepositoryListEmptyIsNotNil(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM questions")).
		WillReturnRows(pgxmock.NewRows(questionCols))

	questions, err := NewQuestionRepository(mock).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
}

func TestQuestionRepositoryListByCategory(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE category = $1")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(questionCols).
			AddRow(int64(13), "What is the largest lake in Africa?", "Lake Victoria", int64(3), 2))

	questions, err := NewQuestionRepository(mock).ListByCategory(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, int64(3), questions[0].Category)
}

func TestQuestionRepositorySearchEscapesWildcards(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE question ILIKE $1")).
		WithArgs(`%100\% \_sure%`).
		WillReturnRows(pgxmock.NewRows(questionCols))

	_, err := NewQuestionRepository(mock).Search(context.Background(), "100% _sure")
	require.NoError(t, err)
}

func TestQuestionRepositoryQueryError(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM questions")).
		WillReturnError(errors.New("connection reset"))

	_, err := NewQuestionRepository(mock).List(context.Background())
	assert.ErrorContains(t, err, "connection reset")
}

func TestQuestionRepositoryGetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := NewQuestionRepository(mock).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

func TestQuestionRepositoryCreate(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO questions")).
		WithArgs("new_question", "new_answer", int64(1), 2).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(24)))

	q := &domain.Question{Question: "new_question", Answer: "new_answer", Category: 1, Difficulty: 2}
	require.NoError(t, NewQuestionRepository(mock).Create(context.Background(), q))
	assert.Equal(t, int64(24), q.ID)
}

func TestQuestionRepositoryDelete(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM questions WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, NewQuestionRepository(mock).Delete(context.Background(), 5))
}

func TestQuestionRepositoryDeleteMissing(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM questions WHERE id = $1")).
		WithArgs(int64(500)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := NewQuestionRepository(mock).Delete(context.Background(), 500)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}
