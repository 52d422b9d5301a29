package identity

import (
	"log"
	"testing"

	"yatrasetu/src/models"
	"yatrasetu/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var testSecret = []byte("test-secret")

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	return New(gormDB, testSecret), mock
}

func TestRegisterHashesPassword(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs("siddhesh@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	userId, err := s.Register(&types.RegisterUserRequestBody{
		Name:     "Siddhesh Patil",
		Email:    "siddhesh@example.com",
		Password: "password123",
		Phone:    "9876543211",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(2), userId)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs("siddhesh@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := s.Register(&types.RegisterUserRequestBody{
		Name:     "Siddhesh Patil",
		Email:    "siddhesh@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func userRow(t *testing.T, id uint, email, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "name", "email", "password", "role"}).
		AddRow(id, "Siddhesh Patil", email, string(hash), "passenger")
}

func TestLoginAndVerifyRoundTrip(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).
		WithArgs("siddhesh@example.com", 1).
		WillReturnRows(userRow(t, 2, "siddhesh@example.com", "password123"))

	token, user, err := s.Login("siddhesh@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, uint(2), user.ID)
	assert.NotEmpty(t, token)

	claims, uid, err := s.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), uid)
	assert.Equal(t, types.ROLE_PASSENGER, claims.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).
		WithArgs("siddhesh@example.com", 1).
		WillReturnRows(userRow(t, 2, "siddhesh@example.com", "password123"))

	_, _, err := s.Login("siddhesh@example.com", "letmein")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := s.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyRejectsGarbage(t *testing.T) {
	s, _ := newMockService(t)

	_, _, err := s.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	s, _ := newMockService(t)
	other := New(nil, []byte("other-secret"))

	token, err := other.IssueToken(&models.User{ID: 2, Role: types.ROLE_PASSENGER})
	assert.NoError(t, err)

	_, _, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
