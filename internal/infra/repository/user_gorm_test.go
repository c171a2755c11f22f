package repository

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestUserGormRepository_FindByContact(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserGormRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone"}).
		AddRow(10, "Ravi", "ravi@example.com", "9876543210")
	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE email = \\? OR phone = \\?").
		WillReturnRows(rows)

	u, err := r.FindByContact(context.Background(), "ravi@example.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(10), u.ID)
	assert.Equal(t, "Ravi", u.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGormRepository_FindByContact_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserGormRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := r.FindByContact(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repo.ErrUserNotFound)
}

func TestUserGormRepository_SaveCartData(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET `cart_data`=(.+) WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := r.SaveCartData(context.Background(), 10, "[]")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 同じ内容の上書きはMySQLだとRowsAffected=0になる。存在判定には使わないこと
func TestUserGormRepository_SaveCartData_NoChangeIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := r.SaveCartData(context.Background(), 10, "[]")
	assert.NoError(t, err)
}

func TestUserGormRepository_Update_MissingUser(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewUserGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := r.Update(context.Background(), &model.User{ID: 99, Name: "Ravi", Email: "ravi@example.com"})
	assert.ErrorIs(t, err, repo.ErrUserNotFound)
}
