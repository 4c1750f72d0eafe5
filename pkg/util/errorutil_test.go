package util_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/lab-booking-service/pkg/util"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	orig := util.NewConflict("username taken", nil)
	mapped := util.ToDomainError(orig)
	assert.Equal(t, "CONFLICT", mapped.Code)
	assert.Equal(t, http.StatusConflict, mapped.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := util.ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	mapped := util.ToDomainError(pgErr)
	assert.Equal(t, "CONFLICT", mapped.Code)
	assert.Equal(t, "users_username_key", mapped.Details["constraint"])
	assert.True(t, util.IsUniqueViolation(pgErr))
}

func TestToDomainErrorUnknown(t *testing.T) {
	mapped := util.ToDomainError(errors.New("connection reset"))
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
}

func TestUpdateFailed(t *testing.T) {
	err := util.NewUpdateFailed("laboratory")
	mapped := util.ToDomainError(err)
	assert.Equal(t, "UPDATE_FAILED", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	assert.Contains(t, mapped.Message, "laboratory")
}
