package impl

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

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

// mailboxServiceFixtures holds all test dependencies for mailbox service tests.
type mailboxServiceFixtures struct {
	service    *mailboxService
	txManager  *mockRepo.MockTransactionManager
	emailRepo  *mockRepo.MockEmailRepository
	clients    *mockUsecase.MockProviderClientUsecase
	gateway    *mockSvc.MockProviderGateway
	completion *mockSvc.MockCompletionService
	now        time.Time
}

func createTestMailboxService(t *testing.T) mailboxServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	emailRepo := mockRepo.NewMockEmailRepository(t)
	clients := mockUsecase.NewMockProviderClientUsecase(t)
	gateway := mockSvc.NewMockProviderGateway(t)
	gateway.EXPECT().Provider().Return(entity.ExternalProviderGoogle)
	completion := mockSvc.NewMockCompletionService(t)

	svc, ok := NewMailboxService(MailboxServiceParams{
		TxManager:  txManager,
		EmailRepo:  emailRepo,
		Clients:    clients,
		Gateways:   []service.ProviderGateway{gateway},
		Completion: completion,
		Config:     &config.Config{},
		Logger:     newDiscardLogger(),
	}).(*mailboxService)
	require.True(t, ok)

	now := time.Date(2025, 7, 14, 8, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return mailboxServiceFixtures{
		service:    svc,
		txManager:  txManager,
		emailRepo:  emailRepo,
		clients:    clients,
		gateway:    gateway,
		completion: completion,
		now:        now,
	}
}

func TestMailboxService_Sync_SimulatedConnection(t *testing.T) {
	fx := createTestMailboxService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.clients.EXPECT().
		Handle(ctx, userID, entity.ServiceGmail).
		Return(&usecase.ClientHandle{
			Service:   entity.ServiceGmail,
			Provider:  entity.ExternalProviderGoogle,
			Simulated: true,
		}, nil)
	fx.clients.EXPECT().
		Handle(ctx, userID, entity.ServiceOutlookMail).
		Return(nil, errors.Wrap(domainerrors.ErrConnectionNotFound, "service outlook_mail is not connected"))

	var stored []*entity.Email
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEmailRepo := mockRepo.NewMockEmailRepository(t)

			mockFactory.EXPECT().NewEmailRepository().Return(mockEmailRepo)
			mockEmailRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.Email")).
				Run(func(ctx context.Context, email *entity.Email) {
					stored = append(stored, email)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Sync(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, len(stored), output.Synced)
	require.NotEmpty(t, stored)

	// Fixture IDs are stable so repeated syncs upsert the same rows.
	assert.Equal(t, "sim-mail-1", stored[0].ExternalID)
	for _, email := range stored {
		assert.Equal(t, userID, email.UserID)
		assert.Equal(t, entity.ServiceGmail, email.Service)
		assert.True(t, email.ReceivedAt.Before(fx.now))
	}
}

func TestMailboxService_Sync_GatewayFetch(t *testing.T) {
	fx := createTestMailboxService(t)

	ctx := context.Background()
	userID := uuid.New()
	fetched := []*entity.Email{
		{ExternalID: "msg-1", From: "a@example.com", Subject: "hello"},
		{ExternalID: "msg-2", From: "b@example.com", Subject: "world"},
	}

	fx.clients.EXPECT().
		Handle(ctx, userID, entity.ServiceGmail).
		Return(&usecase.ClientHandle{
			Service:     entity.ServiceGmail,
			Provider:    entity.ExternalProviderGoogle,
			AccessToken: "live-access-token",
		}, nil)
	fx.clients.EXPECT().
		Handle(ctx, userID, entity.ServiceOutlookMail).
		Return(nil, errors.Wrap(domainerrors.ErrConnectionNotFound, "not connected"))
	fx.gateway.EXPECT().
		FetchMail(ctx, "live-access-token", defaultMailSyncLimit).
		Return(fetched, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEmailRepo := mockRepo.NewMockEmailRepository(t)

			mockFactory.EXPECT().NewEmailRepository().Return(mockEmailRepo)
			mockEmailRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.Email")).
				Run(func(ctx context.Context, email *entity.Email) {
					assert.Equal(t, userID, email.UserID)
					assert.Equal(t, entity.ServiceGmail, email.Service)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Sync(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 2, output.Synced)
}

func TestMailboxService_List(t *testing.T) {
	fx := createTestMailboxService(t)

	ctx := context.Background()
	userID := uuid.New()
	emails := []*entity.Email{{ID: uuid.New(), Subject: "newest"}, {ID: uuid.New(), Subject: "older"}}

	fx.emailRepo.EXPECT().FindByUserID(ctx, userID, 0).Return(emails, nil)

	listed, err := fx.service.List(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, emails, listed)
}

func TestMailboxService_Summarize_Success(t *testing.T) {
	fx := createTestMailboxService(t)

	ctx := context.Background()
	userID := uuid.New()
	emailID := uuid.New()

	fx.emailRepo.EXPECT().
		FindByID(ctx, userID, emailID).
		Return(&entity.Email{
			ID:      emailID,
			UserID:  userID,
			From:    "maya.chen@example.com",
			Subject: "Q3 planning doc ready for review",
			Body:    "The Q3 planning document is ready for your review.",
		}, nil)
	fx.completion.EXPECT().
		Complete(ctx, mock.AnythingOfType("string"), summaryMaxTokens).
		RunAndReturn(func(ctx context.Context, prompt string, maxTokens int) (string, error) {
			assert.Contains(t, prompt, "Q3 planning doc ready for review")

			return "  Maya wants the Q3 doc reviewed before Thursday.\n", nil
		})
	fx.emailRepo.EXPECT().
		UpdateSummary(ctx, emailID, "Maya wants the Q3 doc reviewed before Thursday.").
		Return(nil)

	output, err := fx.service.Summarize(ctx, userID, emailID)

	require.NoError(t, err)
	assert.Equal(t, "Maya wants the Q3 doc reviewed before Thursday.", output.Summary)
}

func TestMailboxService_Summarize_NotFound(t *testing.T) {
	fx := createTestMailboxService(t)

	ctx := context.Background()
	userID := uuid.New()
	emailID := uuid.New()

	fx.emailRepo.EXPECT().
		FindByID(ctx, userID, emailID).
		Return(nil, repository.ErrEmailNotFound)

	output, err := fx.service.Summarize(ctx, userID, emailID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailNotFound))
}

func TestMailboxService_Summarize_CompletionFailure(t *testing.T) {
	fx := createTestMailboxService(t)

	ctx := context.Background()
	userID := uuid.New()
	emailID := uuid.New()

	fx.emailRepo.EXPECT().
		FindByID(ctx, userID, emailID).
		Return(&entity.Email{ID: emailID, UserID: userID, Subject: "hello"}, nil)
	fx.completion.EXPECT().
		Complete(ctx, mock.AnythingOfType("string"), summaryMaxTokens).
		Return("", errors.New("rate limited"))

	output, err := fx.service.Summarize(ctx, userID, emailID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCompletionFailed))
}

func TestMailboxService_SuggestReplies_OnePerTone(t *testing.T) {
	fx := createTestMailboxService(t)

	ctx := context.Background()
	userID := uuid.New()
	emailID := uuid.New()

	fx.emailRepo.EXPECT().
		FindByID(ctx, userID, emailID).
		Return(&entity.Email{
			ID:      emailID,
			UserID:  userID,
			From:    "d.okafor@example.com",
			Subject: "Re: lunch next week?",
			Body:    "Tuesday works great for me.",
		}, nil)
	fx.completion.EXPECT().
		Complete(ctx, mock.AnythingOfType("string"), replyMaxTokens).
		RunAndReturn(func(ctx context.Context, prompt string, maxTokens int) (string, error) {
			// Echo the tone instruction back so each suggestion is distinct.
			instruction := strings.SplitN(strings.TrimPrefix(prompt, "Write a "), " reply", 2)[0]

			return "Sounds good! (" + instruction + ")", nil
		})

	var stored []*entity.SmartReply
	fx.emailRepo.EXPECT().
		ReplaceReplies(ctx, emailID, mock.AnythingOfType("[]*entity.SmartReply")).
		Run(func(ctx context.Context, emailID uuid.UUID, replies []*entity.SmartReply) {
			stored = replies
		}).
		Return(nil)

	replies, err := fx.service.SuggestReplies(ctx, userID, emailID)

	require.NoError(t, err)
	require.Len(t, replies, 3)
	assert.Equal(t, entity.ToneProfessional, replies[0].Tone)
	assert.Equal(t, entity.ToneFriendly, replies[1].Tone)
	assert.Equal(t, entity.ToneBrief, replies[2].Tone)
	assert.Equal(t, "Sounds good! (polite, professional)", replies[0].Body)
	assert.Equal(t, replies, stored)
	for _, reply := range replies {
		assert.Equal(t, emailID, reply.EmailID)
	}
}

func TestMailboxService_SuggestReplies_CompletionFailure(t *testing.T) {
	fx := createTestMailboxService(t)

	ctx := context.Background()
	userID := uuid.New()
	emailID := uuid.New()

	fx.emailRepo.EXPECT().
		FindByID(ctx, userID, emailID).
		Return(&entity.Email{ID: emailID, UserID: userID, Subject: "hello"}, nil)
	fx.completion.EXPECT().
		Complete(ctx, mock.AnythingOfType("string"), replyMaxTokens).
		Return("", errors.New("rate limited"))

	replies, err := fx.service.SuggestReplies(ctx, userID, emailID)

	assert.Error(t, err)
	assert.Nil(t, replies)
	assert.True(t, errors.Is(err, domainerrors.ErrCompletionFailed))
}

func TestTruncateBody(t *testing.T) {
	t.Run("short body passes through", func(t *testing.T) {
		assert.Equal(t, "hello", truncateBody("hello"))
	})

	t.Run("ascii body cuts at the limit", func(t *testing.T) {
		body := strings.Repeat("a", bodyPromptLimit+100)

		got := truncateBody(body)

		assert.Len(t, got, bodyPromptLimit)
	})

	t.Run("multibyte body never splits a rune", func(t *testing.T) {
		// Three bytes per rune, so the byte limit lands mid-sequence.
		body := strings.Repeat("世", bodyPromptLimit)

		got := truncateBody(body)

		assert.True(t, utf8.ValidString(got))
		assert.LessOrEqual(t, len(got), bodyPromptLimit)
		assert.Equal(t, strings.Repeat("世", bodyPromptLimit/3), got)
	})
}
