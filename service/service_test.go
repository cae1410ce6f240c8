package service

import (
	"testing"

	"forohub/dao"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newTestDB abre un *gorm.DB sobre sqlmock; toda expectativa de SQL se
// declara contra el mock devuelto.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func newTopicService(db *gorm.DB) *TopicService {
	return &TopicService{
		DB:        db,
		TopicDAO:  dao.NewTopic(db),
		CourseDAO: dao.NewCourse(db),
		ReplyDAO:  dao.NewReply(db),
		Rules:     NewTopicRules(),
	}
}

var topicColumns = []string{"id", "title", "body", "created_at", "status", "author", "active", "course_id"}
