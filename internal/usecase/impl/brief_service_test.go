package impl

import (
	"context"
	"testing"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	mockUsecase "pulse/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// briefServiceFixtures holds all test dependencies for brief service tests.
type briefServiceFixtures struct {
	service    *briefService
	briefRepo  *mockRepo.MockBriefRepository
	emailRepo  *mockRepo.MockEmailRepository
	calendar   *mockUsecase.MockCalendarUsecase
	completion *mockSvc.MockCompletionService
	now        time.Time
}

func createTestBriefService(t *testing.T) briefServiceFixtures {
	briefRepo := mockRepo.NewMockBriefRepository(t)
	emailRepo := mockRepo.NewMockEmailRepository(t)
	calendar := mockUsecase.NewMockCalendarUsecase(t)
	completion := mockSvc.NewMockCompletionService(t)

	svc, ok := NewBriefService(BriefServiceParams{
		BriefRepo:  briefRepo,
		EmailRepo:  emailRepo,
		Calendar:   calendar,
		Completion: completion,
		Logger:     newDiscardLogger(),
	}).(*briefService)
	require.True(t, ok)

	now := time.Date(2025, 7, 14, 6, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return briefServiceFixtures{
		service:    svc,
		briefRepo:  briefRepo,
		emailRepo:  emailRepo,
		calendar:   calendar,
		completion: completion,
		now:        now,
	}
}

func TestBriefService_Generate_Success(t *testing.T) {
	fx := createTestBriefService(t)

	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 7, 14, 9, 15, 0, 0, time.UTC)

	events := []*entity.CalendarEvent{
		{
			Title:    "Team standup",
			Location: "Meet",
			StartsAt: time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC),
		},
	}
	freeBlocks := []entity.FreeBlock{
		{
			Start:           time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC),
			End:             time.Date(2025, 7, 14, 17, 0, 0, 0, time.UTC),
			DurationMinutes: 450,
		},
	}
	unread := []*entity.Email{
		{From: "Maya Chen <maya.chen@example.com>", Subject: "Q3 planning doc ready for review"},
	}

	fx.calendar.EXPECT().ListEvents(ctx, userID, date).Return(events, nil)
	fx.calendar.EXPECT().FreeBlocks(ctx, userID, date).Return(freeBlocks, nil)
	fx.emailRepo.EXPECT().FindUnreadByUserID(ctx, userID, briefUnreadMailCap).Return(unread, nil)
	fx.completion.EXPECT().
		Complete(ctx, mock.AnythingOfType("string"), briefMaxTokens).
		RunAndReturn(func(ctx context.Context, prompt string, maxTokens int) (string, error) {
			// The prompt carries the digest of everything loaded above.
			assert.Contains(t, prompt, "Team standup")
			assert.Contains(t, prompt, "09:30-17:00 (450 min)")
			assert.Contains(t, prompt, "Q3 planning doc ready for review")

			return "Good morning! One quick standup, then a clear runway all day.\n", nil
		})

	var stored *entity.DailyBrief
	fx.briefRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.DailyBrief")).
		Run(func(ctx context.Context, brief *entity.DailyBrief) {
			stored = brief
		}).
		Return(nil)

	brief, err := fx.service.Generate(ctx, userID, date)

	require.NoError(t, err)
	assert.Equal(t, "Good morning! One quick standup, then a clear runway all day.", brief.Content)
	assert.Equal(t, userID, brief.UserID)
	assert.Equal(t, time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC), brief.Date)
	assert.Equal(t, fx.now, brief.GeneratedAt)
	assert.Equal(t, brief, stored)
}

func TestBriefService_Generate_CompletionFailureFallsBackToDigest(t *testing.T) {
	fx := createTestBriefService(t)

	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	fx.calendar.EXPECT().ListEvents(ctx, userID, date).Return(nil, nil)
	fx.calendar.EXPECT().FreeBlocks(ctx, userID, date).Return(nil, nil)
	fx.emailRepo.EXPECT().FindUnreadByUserID(ctx, userID, briefUnreadMailCap).Return(nil, nil)
	fx.completion.EXPECT().
		Complete(ctx, mock.AnythingOfType("string"), briefMaxTokens).
		Return("", errors.New("rate limited"))
	fx.briefRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.DailyBrief")).
		Return(nil)

	brief, err := fx.service.Generate(ctx, userID, date)

	// The brief still materializes, carrying the plain-text digest.
	require.NoError(t, err)
	assert.Contains(t, brief.Content, "Schedule:")
	assert.Contains(t, brief.Content, "No events scheduled.")
	assert.Contains(t, brief.Content, "Inbox is clear.")
}

func TestBriefService_Get_Success(t *testing.T) {
	fx := createTestBriefService(t)

	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 7, 14, 15, 45, 0, 0, time.UTC)
	stored := &entity.DailyBrief{
		UserID:  userID,
		Date:    time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
		Content: "Good morning!",
	}

	// Lookup uses the date truncated to midnight UTC regardless of the
	// time of day passed in.
	fx.briefRepo.EXPECT().
		FindByUserAndDate(ctx, userID, time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)).
		Return(stored, nil)

	brief, err := fx.service.Get(ctx, userID, date)

	require.NoError(t, err)
	assert.Equal(t, stored, brief)
}

func TestBriefService_Get_NotFound(t *testing.T) {
	fx := createTestBriefService(t)

	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	fx.briefRepo.EXPECT().
		FindByUserAndDate(ctx, userID, date).
		Return(nil, repository.ErrBriefNotFound)

	brief, err := fx.service.Get(ctx, userID, date)

	assert.Error(t, err)
	assert.Nil(t, brief)
	assert.True(t, errors.Is(err, domainerrors.ErrBriefNotFound))
}
