package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/lab-booking-service/internal/domain"
	"github.com/spec-kit/lab-booking-service/internal/events"
	"github.com/spec-kit/lab-booking-service/internal/search"
	"github.com/spec-kit/lab-booking-service/internal/service"
	"github.com/spec-kit/lab-booking-service/pkg/util"
)

func newLabService(repo *MockLaboratoryRepo) *service.LaboratoryService {
	return service.NewLaboratoryService(repo, events.NewInMemoryDispatcher())
}

func TestLabCreateSetsIDAndCreator(t *testing.T) {
	repo := new(MockLaboratoryRepo)
	repo.On("Create", context.Background(), mock.AnythingOfType("*domain.Laboratory")).Return(nil)

	lab := &domain.Laboratory{Name: "Chem Lab A", Location: "Bldg 2", IsActive: true}
	err := newLabService(repo).Create(context.Background(), "u-1", lab)
	require.NoError(t, err)
	assert.NotEmpty(t, lab.ID)
	assert.Equal(t, "u-1", lab.CreatedBy)
}

func TestLabCreateDuplicateNameConflict(t *testing.T) {
	repo := new(MockLaboratoryRepo)
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "laboratories_name_key"}
	repo.On("Create", context.Background(), mock.AnythingOfType("*domain.Laboratory")).Return(pgErr)

	err := newLabService(repo).Create(context.Background(), "u-1", &domain.Laboratory{Name: "Chem Lab A"})
	require.Error(t, err)
	assert.True(t, util.IsUniqueViolation(err))
}

func TestLabFindListKeywordFilter(t *testing.T) {
	repo := new(MockLaboratoryRepo)
	chem := domain.Laboratory{ID: "lab-1", Name: "Chem Lab A", Location: "Bldg 2"}

	repo.On("FindList", context.Background(), mock.MatchedBy(func(f search.Filter) bool {
		return f.Keyword() == "chem"
	})).Return([]domain.Laboratory{chem}, nil)
	repo.On("FindList", context.Background(), mock.MatchedBy(func(f search.Filter) bool {
		return f.Keyword() == "bio"
	})).Return([]domain.Laboratory{}, nil)

	svc := newLabService(repo)

	matched, err := svc.FindList(context.Background(), "chem")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Chem Lab A", matched[0].Name)

	empty, err := svc.FindList(context.Background(), "bio")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLabFindPageDefaults(t *testing.T) {
	repo := new(MockLaboratoryRepo)
	repo.On("FindPage", context.Background(), mock.MatchedBy(func(q search.Query) bool {
		return q.Filter.IsMatchAll() && q.Window.PageNum == 1 && q.Window.PageSize == 10
	})).Return([]domain.Laboratory{}, int64(0), nil)

	records, total, err := newLabService(repo).FindPage(context.Background(), "null", "junk", "-1")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int64(0), total)
}

func TestLabUpdateOneZeroModified(t *testing.T) {
	repo := new(MockLaboratoryRepo)
	repo.On("UpdateOne", context.Background(), "missing-id", mock.AnythingOfType("*domain.Laboratory")).
		Return(int64(0), nil)

	modified, err := newLabService(repo).UpdateOne(context.Background(), "missing-id",
		&domain.Laboratory{Name: "Chem Lab A"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), modified)
}

func TestLabDeleteOneNotFound(t *testing.T) {
	repo := new(MockLaboratoryRepo)
	repo.On("DeleteOne", context.Background(), "missing").Return(nil, pgx.ErrNoRows)

	_, err := newLabService(repo).DeleteOne(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", util.ToDomainError(err).Code)
}

func TestLabDeleteOneReturnsRecord(t *testing.T) {
	repo := new(MockLaboratoryRepo)
	repo.On("DeleteOne", context.Background(), "lab-1").
		Return(&domain.Laboratory{ID: "lab-1", Name: "Chem Lab A"}, nil)

	lab, err := newLabService(repo).DeleteOne(context.Background(), "lab-1")
	require.NoError(t, err)
	assert.Equal(t, "Chem Lab A", lab.Name)
}
