package impl

import (
	"context"
	"testing"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	mockUsecase "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// calendarServiceFixtures holds all test dependencies for calendar service tests.
type calendarServiceFixtures struct {
	service   *calendarService
	txManager *mockRepo.MockTransactionManager
	eventRepo *mockRepo.MockEventRepository
	clients   *mockUsecase.MockProviderClientUsecase
	gateway   *mockSvc.MockProviderGateway
	now       time.Time
}

func createTestCalendarService(t *testing.T) calendarServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	clients := mockUsecase.NewMockProviderClientUsecase(t)
	gateway := mockSvc.NewMockProviderGateway(t)
	gateway.EXPECT().Provider().Return(entity.ExternalProviderGoogle)

	svc, ok := NewCalendarService(CalendarServiceParams{
		TxManager: txManager,
		EventRepo: eventRepo,
		Clients:   clients,
		Gateways:  []service.ProviderGateway{gateway},
		Config:    &config.Config{},
		Logger:    newDiscardLogger(),
	}).(*calendarService)
	require.True(t, ok)

	now := time.Date(2025, 7, 14, 8, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return calendarServiceFixtures{
		service:   svc,
		txManager: txManager,
		eventRepo: eventRepo,
		clients:   clients,
		gateway:   gateway,
		now:       now,
	}
}

func day(hour, minute int) time.Time {
	return time.Date(2025, 7, 14, hour, minute, 0, 0, time.UTC)
}

func eventAt(start, end time.Time) *entity.CalendarEvent {
	return &entity.CalendarEvent{StartsAt: start, EndsAt: end}
}

func TestComputeFreeBlocks_GapsBetweenEvents(t *testing.T) {
	events := []*entity.CalendarEvent{
		eventAt(day(9, 0), day(10, 0)),
		eventAt(day(14, 0), day(15, 0)),
	}

	blocks := computeFreeBlocks(events, day(9, 0), day(17, 0), 30*time.Minute)

	require.Len(t, blocks, 2)
	assert.Equal(t, day(10, 0), blocks[0].Start)
	assert.Equal(t, day(14, 0), blocks[0].End)
	assert.Equal(t, 240, blocks[0].DurationMinutes)
	assert.Equal(t, day(15, 0), blocks[1].Start)
	assert.Equal(t, day(17, 0), blocks[1].End)
	assert.Equal(t, 120, blocks[1].DurationMinutes)
}

func TestComputeFreeBlocks_EmptyDayIsOneBlock(t *testing.T) {
	blocks := computeFreeBlocks(nil, day(9, 0), day(17, 0), 30*time.Minute)

	require.Len(t, blocks, 1)
	assert.Equal(t, day(9, 0), blocks[0].Start)
	assert.Equal(t, day(17, 0), blocks[0].End)
	assert.Equal(t, 480, blocks[0].DurationMinutes)
}

func TestComputeFreeBlocks_ShortGapsAreDropped(t *testing.T) {
	events := []*entity.CalendarEvent{
		eventAt(day(9, 0), day(12, 0)),
		eventAt(day(12, 20), day(17, 0)),
	}

	blocks := computeFreeBlocks(events, day(9, 0), day(17, 0), 30*time.Minute)

	assert.Empty(t, blocks)
}

func TestComputeFreeBlocks_OverlappingEventsMerge(t *testing.T) {
	events := []*entity.CalendarEvent{
		eventAt(day(9, 0), day(11, 0)),
		eventAt(day(10, 0), day(12, 0)),
		eventAt(day(11, 30), day(13, 0)),
	}

	blocks := computeFreeBlocks(events, day(9, 0), day(17, 0), 30*time.Minute)

	require.Len(t, blocks, 1)
	assert.Equal(t, day(13, 0), blocks[0].Start)
	assert.Equal(t, day(17, 0), blocks[0].End)
}

func TestComputeFreeBlocks_EventsOutsideWindowAreClamped(t *testing.T) {
	events := []*entity.CalendarEvent{
		eventAt(day(7, 0), day(9, 30)),   // spills into the window
		eventAt(day(16, 30), day(19, 0)), // spills past the window
		eventAt(day(20, 0), day(21, 0)),  // entirely outside, ignored
	}

	blocks := computeFreeBlocks(events, day(9, 0), day(17, 0), 30*time.Minute)

	require.Len(t, blocks, 1)
	assert.Equal(t, day(9, 30), blocks[0].Start)
	assert.Equal(t, day(16, 30), blocks[0].End)
	assert.Equal(t, 420, blocks[0].DurationMinutes)
}

func TestComputeFreeBlocks_UnsortedInput(t *testing.T) {
	events := []*entity.CalendarEvent{
		eventAt(day(14, 0), day(15, 0)),
		eventAt(day(9, 0), day(10, 0)),
	}

	blocks := computeFreeBlocks(events, day(9, 0), day(17, 0), 30*time.Minute)

	require.Len(t, blocks, 2)
	assert.Equal(t, day(10, 0), blocks[0].Start)
	assert.Equal(t, day(15, 0), blocks[1].Start)
}

func TestCalendarService_Sync_SimulatedConnection(t *testing.T) {
	fx := createTestCalendarService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.clients.EXPECT().
		Handle(ctx, userID, entity.ServiceGoogleCalendar).
		Return(&usecase.ClientHandle{
			Service:   entity.ServiceGoogleCalendar,
			Provider:  entity.ExternalProviderGoogle,
			Simulated: true,
		}, nil)
	fx.clients.EXPECT().
		Handle(ctx, userID, entity.ServiceOutlookCalendar).
		Return(nil, errors.Wrap(domainerrors.ErrConnectionNotFound, "service outlook_calendar is not connected"))

	var stored []*entity.CalendarEvent
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEventRepo := mockRepo.NewMockEventRepository(t)

			mockFactory.EXPECT().NewEventRepository().Return(mockEventRepo)
			mockEventRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.CalendarEvent")).
				Run(func(ctx context.Context, event *entity.CalendarEvent) {
					stored = append(stored, event)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Sync(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, len(stored), output.Synced)
	require.NotEmpty(t, stored)

	// Fixture IDs are stable so repeated syncs upsert the same rows.
	assert.Equal(t, "sim-event-1", stored[0].ExternalID)
	for _, event := range stored {
		assert.Equal(t, userID, event.UserID)
		assert.Equal(t, entity.ServiceGoogleCalendar, event.Service)
		assert.True(t, event.EndsAt.After(event.StartsAt))
	}
}

func TestCalendarService_Sync_GatewayFetch(t *testing.T) {
	fx := createTestCalendarService(t)

	ctx := context.Background()
	userID := uuid.New()
	fetched := []*entity.CalendarEvent{
		{ExternalID: "evt-1", Title: "Offsite", StartsAt: day(10, 0), EndsAt: day(12, 0)},
	}

	fx.clients.EXPECT().
		Handle(ctx, userID, entity.ServiceGoogleCalendar).
		Return(&usecase.ClientHandle{
			Service:     entity.ServiceGoogleCalendar,
			Provider:    entity.ExternalProviderGoogle,
			AccessToken: "live-access-token",
		}, nil)
	fx.clients.EXPECT().
		Handle(ctx, userID, entity.ServiceOutlookCalendar).
		Return(nil, errors.Wrap(domainerrors.ErrConnectionNotFound, "not connected"))
	fx.gateway.EXPECT().
		FetchEvents(ctx, "live-access-token", fx.now, fx.now.AddDate(0, 0, 7)).
		Return(fetched, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEventRepo := mockRepo.NewMockEventRepository(t)

			mockFactory.EXPECT().NewEventRepository().Return(mockEventRepo)
			mockEventRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.CalendarEvent")).
				Run(func(ctx context.Context, event *entity.CalendarEvent) {
					assert.Equal(t, userID, event.UserID)
					assert.Equal(t, entity.ServiceGoogleCalendar, event.Service)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Sync(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 1, output.Synced)
}

func TestCalendarService_Sync_ProviderFailureSkipsService(t *testing.T) {
	fx := createTestCalendarService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.clients.EXPECT().
		Handle(ctx, userID, entity.ServiceGoogleCalendar).
		Return(&usecase.ClientHandle{
			Service:     entity.ServiceGoogleCalendar,
			Provider:    entity.ExternalProviderGoogle,
			AccessToken: "live-access-token",
		}, nil)
	fx.clients.EXPECT().
		Handle(ctx, userID, entity.ServiceOutlookCalendar).
		Return(nil, errors.Wrap(domainerrors.ErrConnectionNotFound, "not connected"))
	fx.gateway.EXPECT().
		FetchEvents(ctx, "live-access-token", fx.now, fx.now.AddDate(0, 0, 7)).
		Return(nil, errors.New("503 backend error"))

	output, err := fx.service.Sync(ctx, userID)

	// Per-service failures are logged and skipped; the sync itself succeeds.
	require.NoError(t, err)
	assert.Equal(t, 0, output.Synced)
}

func TestCalendarService_ListEvents_QueriesWholeDay(t *testing.T) {
	fx := createTestCalendarService(t)

	ctx := context.Background()
	userID := uuid.New()
	requested := day(13, 45)
	events := []*entity.CalendarEvent{eventAt(day(9, 0), day(9, 30))}

	fx.eventRepo.EXPECT().
		FindByUserAndRange(ctx, userID, day(0, 0), day(0, 0).AddDate(0, 0, 1)).
		Return(events, nil)

	listed, err := fx.service.ListEvents(ctx, userID, requested)

	require.NoError(t, err)
	assert.Equal(t, events, listed)
}

func TestCalendarService_FreeBlocks_UsesBusinessHoursDefaults(t *testing.T) {
	fx := createTestCalendarService(t)

	ctx := context.Background()
	userID := uuid.New()
	events := []*entity.CalendarEvent{
		eventAt(day(9, 0), day(10, 0)),
		eventAt(day(14, 0), day(15, 0)),
	}

	fx.eventRepo.EXPECT().
		FindByUserAndRange(ctx, userID, day(0, 0), day(0, 0).AddDate(0, 0, 1)).
		Return(events, nil)

	blocks, err := fx.service.FreeBlocks(ctx, userID, day(0, 0))

	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, day(10, 0), blocks[0].Start)
	assert.Equal(t, day(14, 0), blocks[0].End)
	assert.Equal(t, day(15, 0), blocks[1].Start)
	assert.Equal(t, day(17, 0), blocks[1].End)
}
