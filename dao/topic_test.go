package dao

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTopicExistsActiveByTitleAndBody(t *testing.T) {
	db, mock := newTestDB(t)
	d := NewTopic(db)

	mock.ExpectQuery("SELECT .* FROM `topic` WHERE title = \\? AND body = \\? AND active = \\?").
		WithArgs("un título", "un cuerpo", true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	exists, err := d.ExistsActiveByTitleAndBody(context.Background(), "un título", "un cuerpo")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT .* FROM `topic`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	exists, err = d.ExistsActiveByTitleAndBody(context.Background(), "otro", "otro")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicGetByIDFiltersInactive(t *testing.T) {
	db, mock := newTestDB(t)
	d := NewTopic(db)

	mock.ExpectQuery("SELECT .* FROM `topic` WHERE id = \\? AND active = \\?").
		WithArgs(int64(9), true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "created_at", "status", "author", "active", "course_id"}))

	topic, err := d.GetByID(context.Background(), 9, false)
	require.NoError(t, err)
	assert.Nil(t, topic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// FindPage con ambos filtros: el SQL tiene que comparar el curso sin
// distinguir mayúsculas y extraer el año de la fecha de creación.
func TestTopicFindPageWithFilters(t *testing.T) {
	db, mock := newTestDB(t)
	d := NewTopic(db)

	courseName := "java"
	year := 2023
	created := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT count.* FROM `topic`.*LOWER.*YEAR").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT .* FROM `topic`.*ORDER BY topic.created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "created_at", "status", "author", "active", "course_id", "Course__id", "Course__name", "Course__category"}).
			AddRow(int64(5), "Duda sobre streams", "cuerpo del tópico", created, "OPEN", "maria", true, int64(7), int64(7), "Java", "Backend"))

	topics, total, err := d.FindPage(context.Background(), &courseName, &year, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, topics, 1)
	assert.Equal(t, "Duda sobre streams", topics[0].Title)
	assert.Equal(t, "Java", topics[0].Course.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicFindResolvedPage(t *testing.T) {
	db, mock := newTestDB(t)
	d := NewTopic(db)

	mock.ExpectQuery("SELECT count.* FROM `topic`.*status").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(int64(0)))
	mock.ExpectQuery("SELECT .* FROM `topic`.*status").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	topics, total, err := d.FindResolvedPage(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, topics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicSoftDelete(t *testing.T) {
	db, mock := newTestDB(t)
	d := NewTopic(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `topic` SET `active`=\\? WHERE id = \\?").
		WithArgs(false, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, d.SoftDelete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicMarkResolvedTx(t *testing.T) {
	db, mock := newTestDB(t)
	d := NewTopic(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `topic` SET `status`=\\? WHERE id = \\?").
		WithArgs("RESOLVED", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := d.Transaction(context.Background(), func(tx *gorm.DB) error {
		return d.MarkResolvedTx(tx, 5)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
