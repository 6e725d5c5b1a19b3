package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

func TestCategoryRepositoryList(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM categories")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "type"}).
			AddRow(int64(1), "Science").
			AddRow(int64(2), "Art"))

	categories, err := NewCategoryRepository(mock).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}, categories)
}

func TestCategoryRepositoryGetByID(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "type"}).AddRow(int64(2), "Art"))

	category, err := NewCategoryRepository(mock).GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Art", category.Type)
}

func TestCategoryRepositoryGetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(1000)).
		WillReturnError(pgx.ErrNoRows)

	_, err := NewCategoryRepository(mock).GetByID(context.Background(), 1000)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
