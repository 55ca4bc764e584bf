package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

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
	briefMaxTokens      = 400
	briefUnreadMailCap  = 10
	briefPromptPreamble = "Write a short, upbeat morning brief for the following day. " +
		"Mention the schedule, the best free blocks for focused work, and the unread mail worth attention. " +
		"Keep it under 200 words.\n\n"
)

// briefService implements the BriefUsecase interface.
type briefService struct {
	briefRepo  repository.BriefRepository
	emailRepo  repository.EmailRepository
	calendar   usecase.CalendarUsecase
	completion service.CompletionService
	logger     *slog.Logger
	now        func() time.Time
}

// BriefServiceParams holds dependencies for BriefService, injected by Fx.
type BriefServiceParams struct {
	fx.In

	BriefRepo  repository.BriefRepository
	EmailRepo  repository.EmailRepository
	Calendar   usecase.CalendarUsecase
	Completion service.CompletionService
	Logger     *slog.Logger
}

// NewBriefService is the constructor for briefService.
func NewBriefService(params BriefServiceParams) usecase.BriefUsecase {
	return &briefService{
		briefRepo:  params.BriefRepo,
		emailRepo:  params.EmailRepo,
		calendar:   params.Calendar,
		completion: params.Completion,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *briefService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Generate composes a brief for the date from cached events, free blocks and
// unread mail, then stores it. Regeneration overwrites the previous brief.
func (srv *briefService) Generate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyBrief, error) {
	events, err := srv.calendar.ListEvents(ctx, userID, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load events for brief")
	}

	freeBlocks, err := srv.calendar.FreeBlocks(ctx, userID, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute free blocks for brief")
	}

	unread, err := srv.emailRepo.FindUnreadByUserID(ctx, userID, briefUnreadMailCap)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load unread mail for brief")
	}

	digest := composeDigest(date, events, freeBlocks, unread)

	content, err := srv.completion.Complete(ctx, briefPromptPreamble+digest, briefMaxTokens)
	if err != nil {
		// The brief must always materialize; fall back to the plain digest.
		srv.log(ctx).Warn("Brief generation fell back to plain digest",
			slog.Any("userID", userID), slog.Any("error", err))
		content = digest
	}
	content = strings.TrimSpace(content)

	brief := &entity.DailyBrief{
		UserID:      userID,
		Date:        truncateToDateUTC(date),
		Content:     content,
		GeneratedAt: srv.now(),
	}
	if err := srv.briefRepo.Upsert(ctx, brief); err != nil {
		return nil, errors.Wrap(err, "failed to store brief")
	}

	srv.log(ctx).Info("Generated daily brief",
		slog.Any("userID", userID), slog.String("date", brief.Date.Format("2006-01-02")))

	return brief, nil
}

// Get returns the stored brief for the date.
func (srv *briefService) Get(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyBrief, error) {
	brief, err := srv.briefRepo.FindByUserAndDate(ctx, userID, truncateToDateUTC(date))
	if err != nil {
		if errors.Is(err, repository.ErrBriefNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBriefNotFound, "no brief for date")
		}

		return nil, errors.Wrap(err, "failed to load brief")
	}

	return brief, nil
}

// composeDigest renders the day's raw material as plain text. It doubles as
// the completion prompt payload and the fallback brief content.
func composeDigest(date time.Time, events []*entity.CalendarEvent, freeBlocks []entity.FreeBlock, unread []*entity.Email) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Date: %s\n\n", date.Format("Monday, January 2"))

	b.WriteString("Schedule:\n")
	if len(events) == 0 {
		b.WriteString("- No events scheduled.\n")
	}
	for _, event := range events {
		fmt.Fprintf(&b, "- %s-%s %s", event.StartsAt.Format("15:04"), event.EndsAt.Format("15:04"), event.Title)
		if event.Location != "" {
			fmt.Fprintf(&b, " (%s)", event.Location)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nFree blocks:\n")
	if len(freeBlocks) == 0 {
		b.WriteString("- None inside business hours.\n")
	}
	for _, block := range freeBlocks {
		fmt.Fprintf(&b, "- %s-%s (%d min)\n", block.Start.Format("15:04"), block.End.Format("15:04"), block.DurationMinutes)
	}

	b.WriteString("\nUnread mail:\n")
	if len(unread) == 0 {
		b.WriteString("- Inbox is clear.\n")
	}
	for _, email := range unread {
		fmt.Fprintf(&b, "- %s: %s\n", email.From, email.Subject)
	}

	return b.String()
}

func truncateToDateUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
