package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockedPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewPostgres(db), mock
}

func TestPostgres_GetReturnsValue(t *testing.T) {
	store, mock := newMockedPostgres(t)
	rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).AddRow(KeyCart, `[{"id":1}]`, time.Now())
	mock.ExpectQuery(`SELECT \* FROM "local_store" WHERE key = \$1`).WillReturnRows(rows)

	value, ok, err := store.Get(context.Background(), KeyCart)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, value)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetMissingKey(t *testing.T) {
	store, mock := newMockedPostgres(t)
	mock.ExpectQuery(`SELECT \* FROM "local_store" WHERE key = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

	_, ok, err := store.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SetUpserts(t *testing.T) {
	store, mock := newMockedPostgres(t)
	mock.ExpectExec(`INSERT INTO "local_store" .* ON CONFLICT \("key"\) DO UPDATE SET`).
		WithArgs(KeyProducts, "[]", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Set(context.Background(), KeyProducts, "[]"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Delete(t *testing.T) {
	store, mock := newMockedPostgres(t)
	mock.ExpectExec(`DELETE FROM "local_store" WHERE key = \$1`).
		WithArgs(KeyToken).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Delete(context.Background(), KeyToken))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_NotConfigured(t *testing.T) {
	var store *Postgres
	_, _, err := store.Get(context.Background(), KeyCart)
	require.ErrorIs(t, err, ErrNotConfigured)
	require.ErrorIs(t, NewPostgres(nil).Set(context.Background(), KeyCart, "[]"), ErrNotConfigured)
}
