package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/lab-booking-service/internal/domain"
	"github.com/spec-kit/lab-booking-service/internal/events"
	"github.com/spec-kit/lab-booking-service/internal/repository"
	"github.com/spec-kit/lab-booking-service/internal/search"
)

// LaboratoryService exposes CRUD and paginated search over laboratories.
type LaboratoryService struct {
	labs       repository.LaboratoryRepository
	dispatcher events.Dispatcher
}

// NewLaboratoryService builds the service.
func NewLaboratoryService(labs repository.LaboratoryRepository, dispatcher events.Dispatcher) *LaboratoryService {
	return &LaboratoryService{labs: labs, dispatcher: dispatcher}
}

// Create inserts a laboratory, generating the business identifier when absent
// and recording the creating user. Name uniqueness is enforced by the store.
func (s *LaboratoryService) Create(ctx context.Context, creatorID string, lab *domain.Laboratory) error {
	if lab.ID == "" {
		lab.ID = uuid.NewString()
	}
	lab.CreatedBy = creatorID

	if err := s.labs.Create(ctx, lab); err != nil {
		return err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventLaboratoryCreated,
		ResourceID: lab.ID,
		ActorID:    creatorID,
		Timestamp:  time.Now(),
		Payload:    events.LaboratoryCreatedPayload{Name: lab.Name, Location: lab.Location},
	})
	return nil
}

// FindPage returns the windowed records and the unwindowed total.
func (s *LaboratoryService) FindPage(ctx context.Context, keyword, pageNum, pageSize string) ([]domain.Laboratory, int64, error) {
	return s.labs.FindPage(ctx, search.Build(keyword, pageNum, pageSize))
}

// FindList returns all matching records without windowing.
func (s *LaboratoryService) FindList(ctx context.Context, keyword string) ([]domain.Laboratory, error) {
	return s.labs.FindList(ctx, search.BuildFilter(keyword))
}

// FindByID looks up a laboratory by business identifier.
func (s *LaboratoryService) FindByID(ctx context.Context, id string) (*domain.Laboratory, error) {
	return s.labs.GetByID(ctx, id)
}

// UpdateOne full-replaces the record matched by business identifier and
// reports how many records were modified. The creator reference is set at
// creation and never revisited here.
func (s *LaboratoryService) UpdateOne(ctx context.Context, id string, lab *domain.Laboratory) (int64, error) {
	modified, err := s.labs.UpdateOne(ctx, id, lab)
	if err != nil {
		return 0, err
	}
	if modified > 0 {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventLaboratoryUpdated,
			ResourceID: id,
			Timestamp:  time.Now(),
		})
	}
	return modified, nil
}

// DeleteOne removes the record and returns it.
func (s *LaboratoryService) DeleteOne(ctx context.Context, id string) (*domain.Laboratory, error) {
	lab, err := s.labs.DeleteOne(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventLaboratoryDeleted,
		ResourceID: id,
		Timestamp:  time.Now(),
		Payload:    events.LaboratoryDeletedPayload{Name: lab.Name},
	})
	return lab, nil
}
