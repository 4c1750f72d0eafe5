package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/lab-booking-service/internal/auth"
	"github.com/spec-kit/lab-booking-service/internal/domain"
	"github.com/spec-kit/lab-booking-service/internal/events"
	"github.com/spec-kit/lab-booking-service/internal/search"
	"github.com/spec-kit/lab-booking-service/internal/service"
	"github.com/spec-kit/lab-booking-service/pkg/util"
)

func newUserService(repo *MockUserRepo) *service.UserService {
	return service.NewUserService(repo, events.NewInMemoryDispatcher(), 4)
}

func TestRegisterGeneratesIDAndHashesPassword(t *testing.T) {
	repo := new(MockUserRepo)
	var created *domain.User
	repo.On("Create", context.Background(), mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.User) }).
		Return(nil)

	user := &domain.User{Username: "alice", Nickname: "Alice", IsActive: true}
	err := newUserService(repo).Register(context.Background(), user, "correctpass")
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "correctpass", created.PasswordHash)
	assert.NoError(t, auth.ComparePassword(created.PasswordHash, "correctpass"))
}

func TestRegisterKeepsSuppliedID(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("Create", context.Background(), mock.AnythingOfType("*domain.User")).Return(nil)

	user := &domain.User{ID: "custom-id", Username: "alice"}
	err := newUserService(repo).Register(context.Background(), user, "pw")
	require.NoError(t, err)
	assert.Equal(t, "custom-id", user.ID)
}

func TestRegisterDuplicateUsernameConflict(t *testing.T) {
	repo := new(MockUserRepo)
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	repo.On("Create", context.Background(), mock.AnythingOfType("*domain.User")).Return(pgErr)

	err := newUserService(repo).Register(context.Background(), &domain.User{Username: "alice"}, "pw")
	require.Error(t, err)
	assert.True(t, util.IsUniqueViolation(err))
	assert.Equal(t, "CONFLICT", util.ToDomainError(err).Code)
}

func TestFindPagePassesWindowAndReturnsTotal(t *testing.T) {
	repo := new(MockUserRepo)
	stored := []domain.User{{ID: "u-1", Username: "alice", PasswordHash: "hash", Nickname: "Alice"}}

	repo.On("FindPage", context.Background(), mock.MatchedBy(func(q search.Query) bool {
		return q.Filter.Keyword() == "ali" && q.Window.Offset() == 10 && q.Window.Limit() == 5
	})).Return(stored, int64(42), nil)

	records, total, err := newUserService(repo).FindPage(context.Background(), "ali", "3", "5")
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
	require.Len(t, records, 1)
	assert.Equal(t, "alice", records[0].Username)
}

func TestFindListTrivialKeywordMatchesAll(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("FindList", context.Background(), mock.MatchedBy(func(f search.Filter) bool {
		return f.IsMatchAll()
	})).Return([]domain.User{}, nil)

	records, err := newUserService(repo).FindList(context.Background(), "undefined")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUpdateOneZeroModified(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("UpdateOne", context.Background(), "missing-id", mock.AnythingOfType("*domain.User")).
		Return(int64(0), nil)

	modified, err := newUserService(repo).UpdateOne(context.Background(), "missing-id",
		&domain.User{Username: "alice"}, "newpass")
	require.NoError(t, err)
	assert.Equal(t, int64(0), modified)
}

func TestUpdateOneBlankPasswordKeepsStoredHash(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByID", context.Background(), "u-1").
		Return(&domain.User{ID: "u-1", PasswordHash: "stored-hash"}, nil)

	var updated *domain.User
	repo.On("UpdateOne", context.Background(), "u-1", mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { updated = args.Get(2).(*domain.User) }).
		Return(int64(1), nil)

	modified, err := newUserService(repo).UpdateOne(context.Background(), "u-1",
		&domain.User{Username: "alice"}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)
	require.NotNil(t, updated)
	assert.Equal(t, "stored-hash", updated.PasswordHash)
}

func TestUpdateOneBlankPasswordMissingUser(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByID", context.Background(), "missing-id").Return(nil, pgx.ErrNoRows)

	modified, err := newUserService(repo).UpdateOne(context.Background(), "missing-id",
		&domain.User{Username: "alice"}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), modified)
}

func TestDeleteOneReturnsRemovedProfile(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("DeleteOne", context.Background(), "u-1").
		Return(&domain.User{ID: "u-1", Username: "alice", PasswordHash: "hash"}, nil)

	profile, err := newUserService(repo).DeleteOne(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
}

func TestDeleteOneNotFound(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("DeleteOne", context.Background(), "missing").Return(nil, pgx.ErrNoRows)

	_, err := newUserService(repo).DeleteOne(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", util.ToDomainError(err).Code)
}
