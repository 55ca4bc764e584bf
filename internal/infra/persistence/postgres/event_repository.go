package postgres

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// eventRepository implements the domain.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// Upsert inserts the event or refreshes the existing row for the same
// (user, service, external id).
func (repo *eventRepository) Upsert(ctx context.Context, event *entity.CalendarEvent) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "service"}, {Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "location", "starts_at", "ends_at", "updated_at",
			}),
		}).
		Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindByUserAndRange retrieves the user's events starting within [from, to),
// ordered by start time ascending.
func (repo *eventRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.CalendarEvent, error) {
	var eventModels []model.CalendarEventModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND starts_at >= ? AND starts_at < ?", userID, from, to).
		Order("starts_at ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	events := make([]*entity.CalendarEvent, 0, len(eventModels))
	for i := range eventModels {
		events = append(events, toEventDomain(&eventModels[i]))
	}

	return events, nil
}

// --- Mapper Functions ---

func toEventDomain(data *model.CalendarEventModel) *entity.CalendarEvent {
	if data == nil {
		return nil
	}

	return &entity.CalendarEvent{
		ID:         data.ID,
		UserID:     data.UserID,
		Service:    entity.ServiceType(data.Service),
		ExternalID: data.ExternalID,
		Title:      data.Title,
		Location:   data.Location,
		StartsAt:   data.StartsAt,
		EndsAt:     data.EndsAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromEventDomain(data *entity.CalendarEvent) *model.CalendarEventModel {
	if data == nil {
		return nil
	}

	return &model.CalendarEventModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Service:    string(data.Service),
		ExternalID: data.ExternalID,
		Title:      data.Title,
		Location:   data.Location,
		StartsAt:   data.StartsAt,
		EndsAt:     data.EndsAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
