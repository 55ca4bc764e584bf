package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"pulse/config"
	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultDayStartHour = 9
	defaultDayEndHour   = 17
	defaultMinFreeBlock = 30 * time.Minute

	// Sync pulls this many days of upcoming events.
	syncHorizonDays = 7
)

// calendarService implements the CalendarUsecase interface.
type calendarService struct {
	txManager    repository.TransactionManager
	eventRepo    repository.EventRepository
	clients      usecase.ProviderClientUsecase
	gateways     map[entity.ExternalProvider]service.ProviderGateway
	dayStartHour int
	dayEndHour   int
	minFreeBlock time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// CalendarServiceParams holds dependencies for CalendarService, injected by Fx.
type CalendarServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	EventRepo repository.EventRepository
	Clients   usecase.ProviderClientUsecase
	Gateways  []service.ProviderGateway `group:"provider_gateways"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCalendarService is the constructor for calendarService.
func NewCalendarService(params CalendarServiceParams) usecase.CalendarUsecase {
	gateways := make(map[entity.ExternalProvider]service.ProviderGateway, len(params.Gateways))
	for _, gateway := range params.Gateways {
		gateways[gateway.Provider()] = gateway
	}

	dayStartHour, dayEndHour, minFreeBlock := defaultDayStartHour, defaultDayEndHour, defaultMinFreeBlock
	if briefing := params.Config.Briefing; briefing != nil {
		if briefing.DayStartHour > 0 || briefing.DayEndHour > 0 {
			dayStartHour, dayEndHour = briefing.DayStartHour, briefing.DayEndHour
		}
		if briefing.MinFreeBlock > 0 {
			minFreeBlock = briefing.MinFreeBlock
		}
	}

	return &calendarService{
		txManager:    params.TxManager,
		eventRepo:    params.EventRepo,
		clients:      params.Clients,
		gateways:     gateways,
		dayStartHour: dayStartHour,
		dayEndHour:   dayEndHour,
		minFreeBlock: minFreeBlock,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *calendarService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Sync pulls the coming week's events from every connected calendar service
// into the cache. A failing service is logged and skipped.
func (srv *calendarService) Sync(ctx context.Context, userID uuid.UUID) (*usecase.SyncOutput, error) {
	synced := 0
	for _, serviceType := range []entity.ServiceType{entity.ServiceGoogleCalendar, entity.ServiceOutlookCalendar} {
		count, err := srv.syncService(ctx, userID, serviceType)
		if err != nil {
			if errors.Is(err, domainerrors.ErrConnectionNotFound) {
				continue
			}
			srv.log(ctx).Error("Calendar sync failed for service",
				slog.Any("userID", userID), slog.String("service", string(serviceType)), slog.Any("error", err))

			continue
		}
		synced += count
	}

	srv.log(ctx).Info("Calendar sync completed", slog.Any("userID", userID), slog.Int("synced", synced))

	return &usecase.SyncOutput{Synced: synced}, nil
}

func (srv *calendarService) syncService(ctx context.Context, userID uuid.UUID, serviceType entity.ServiceType) (int, error) {
	handle, err := srv.clients.Handle(ctx, userID, serviceType)
	if err != nil {
		return 0, err
	}

	var events []*entity.CalendarEvent
	if handle.Simulated {
		events = simulatedEvents(userID, serviceType, srv.now())
	} else {
		gateway, ok := srv.gateways[handle.Provider]
		if !ok {
			return 0, errors.Errorf("no gateway registered for provider %s", handle.Provider)
		}
		from := srv.now()
		to := from.AddDate(0, 0, syncHorizonDays)
		events, err = gateway.FetchEvents(ctx, handle.AccessToken, from, to)
		if err != nil {
			return 0, errors.Wrap(domainerrors.ErrProviderFailure, err.Error())
		}
		for _, event := range events {
			event.UserID = userID
			event.Service = serviceType
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()
		for _, event := range events {
			if err := eventRepo.Upsert(ctx, event); err != nil {
				return errors.Wrapf(err, "failed to upsert event %s", event.ExternalID)
			}
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to store synced events")
	}

	return len(events), nil
}

// ListEvents returns the user's cached events for one calendar day, ordered
// by start time.
func (srv *calendarService) ListEvents(ctx context.Context, userID uuid.UUID, day time.Time) ([]*entity.CalendarEvent, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	events, err := srv.eventRepo.FindByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cached events")
	}

	return events, nil
}

// FreeBlocks computes the unoccupied gaps of one calendar day inside the
// configured business-hours window.
func (srv *calendarService) FreeBlocks(ctx context.Context, userID uuid.UUID, day time.Time) ([]entity.FreeBlock, error) {
	events, err := srv.ListEvents(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	windowStart := time.Date(day.Year(), day.Month(), day.Day(), srv.dayStartHour, 0, 0, 0, day.Location())
	windowEnd := time.Date(day.Year(), day.Month(), day.Day(), srv.dayEndHour, 0, 0, 0, day.Location())

	return computeFreeBlocks(events, windowStart, windowEnd, srv.minFreeBlock), nil
}

// computeFreeBlocks walks the day's events in start order and emits every gap
// inside [windowStart, windowEnd) that is at least minBlock long. Events
// outside the window are clamped; overlapping events merge naturally because
// the cursor only ever moves forward.
func computeFreeBlocks(events []*entity.CalendarEvent, windowStart, windowEnd time.Time, minBlock time.Duration) []entity.FreeBlock {
	if !windowEnd.After(windowStart) {
		return nil
	}

	sorted := make([]*entity.CalendarEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartsAt.Before(sorted[j].StartsAt)
	})

	blocks := make([]entity.FreeBlock, 0)
	cursor := windowStart

	emit := func(start, end time.Time) {
		if gap := end.Sub(start); gap >= minBlock {
			blocks = append(blocks, entity.FreeBlock{
				Start:           start,
				End:             end,
				DurationMinutes: int(gap / time.Minute),
			})
		}
	}

	for _, event := range sorted {
		start, end := event.StartsAt, event.EndsAt
		if !end.After(windowStart) || !start.Before(windowEnd) {
			continue
		}
		if start.Before(windowStart) {
			start = windowStart
		}
		if end.After(windowEnd) {
			end = windowEnd
		}

		if start.After(cursor) {
			emit(cursor, start)
		}
		if end.After(cursor) {
			cursor = end
		}
	}

	if windowEnd.After(cursor) {
		emit(cursor, windowEnd)
	}

	return blocks
}
