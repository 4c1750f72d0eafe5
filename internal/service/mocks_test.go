package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/lab-booking-service/internal/domain"
	"github.com/spec-kit/lab-booking-service/internal/search"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) FindPage(ctx context.Context, query search.Query) ([]domain.User, int64, error) {
	args := m.Called(ctx, query)
	var users []domain.User
	if v := args.Get(0); v != nil {
		users = v.([]domain.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepo) FindList(ctx context.Context, filter search.Filter) ([]domain.User, error) {
	args := m.Called(ctx, filter)
	var users []domain.User
	if v := args.Get(0); v != nil {
		users = v.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	var user *domain.User
	if v := args.Get(0); v != nil {
		user = v.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if v := args.Get(0); v != nil {
		user = v.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepo) UpdateOne(ctx context.Context, id string, user *domain.User) (int64, error) {
	args := m.Called(ctx, id, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) DeleteOne(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	var user *domain.User
	if v := args.Get(0); v != nil {
		user = v.(*domain.User)
	}
	return user, args.Error(1)
}

type MockLaboratoryRepo struct{ mock.Mock }

func (m *MockLaboratoryRepo) Create(ctx context.Context, lab *domain.Laboratory) error {
	return m.Called(ctx, lab).Error(0)
}

func (m *MockLaboratoryRepo) FindPage(ctx context.Context, query search.Query) ([]domain.Laboratory, int64, error) {
	args := m.Called(ctx, query)
	var labs []domain.Laboratory
	if v := args.Get(0); v != nil {
		labs = v.([]domain.Laboratory)
	}
	return labs, args.Get(1).(int64), args.Error(2)
}

func (m *MockLaboratoryRepo) FindList(ctx context.Context, filter search.Filter) ([]domain.Laboratory, error) {
	args := m.Called(ctx, filter)
	var labs []domain.Laboratory
	if v := args.Get(0); v != nil {
		labs = v.([]domain.Laboratory)
	}
	return labs, args.Error(1)
}

func (m *MockLaboratoryRepo) GetByID(ctx context.Context, id string) (*domain.Laboratory, error) {
	args := m.Called(ctx, id)
	var lab *domain.Laboratory
	if v := args.Get(0); v != nil {
		lab = v.(*domain.Laboratory)
	}
	return lab, args.Error(1)
}

func (m *MockLaboratoryRepo) UpdateOne(ctx context.Context, id string, lab *domain.Laboratory) (int64, error) {
	args := m.Called(ctx, id, lab)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLaboratoryRepo) DeleteOne(ctx context.Context, id string) (*domain.Laboratory, error) {
	args := m.Called(ctx, id)
	var lab *domain.Laboratory
	if v := args.Get(0); v != nil {
		lab = v.(*domain.Laboratory)
	}
	return lab, args.Error(1)
}
