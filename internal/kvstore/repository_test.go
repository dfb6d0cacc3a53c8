package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"value"}).
			AddRow([]byte(`[{"id":1001}]`))

		mock.ExpectQuery("SELECT value FROM kv_store").
			WithArgs("orders").
			WillReturnRows(rows)

		value, err := repo.Get(context.Background(), "orders")
		assert.NoError(t, err)
		assert.JSONEq(t, `[{"id":1001}]`, string(value))
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_store").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		_, err := repo.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_store").
			WillReturnError(errors.New("db error"))

		_, err := repo.Get(context.Background(), "orders")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrKeyNotFound)
	})
}

func TestRepository_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO kv_store").
			WithArgs("orders", []byte(`[]`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Set(context.Background(), "orders", []byte(`[]`))
		assert.NoError(t, err)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO kv_store").
			WillReturnError(errors.New("db error"))

		err := repo.Set(context.Background(), "orders", []byte(`[]`))
		assert.Error(t, err)
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM kv_store").
			WithArgs("session").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), "session")
		assert.NoError(t, err)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM kv_store").
			WillReturnError(errors.New("db error"))

		err := repo.Delete(context.Background(), "session")
		assert.Error(t, err)
	})
}
