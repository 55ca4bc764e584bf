package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

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
	defaultMailSyncLimit   = 20
	summaryMaxTokens       = 150
	replyMaxTokens         = 200
	bodyPromptLimit        = 4000 // Truncate long bodies before prompting.
	summaryPromptTemplate  = "Summarize the following email in two or three sentences. Focus on what the sender wants and any deadline.\n\nFrom: %s\nSubject: %s\n\n%s"
	replyPromptTemplate    = "Write a %s reply to the following email. Return only the reply body, no subject line.\n\nFrom: %s\nSubject: %s\n\n%s"
	toneProfessionalPrompt = "polite, professional"
	toneFriendlyPrompt     = "warm, friendly"
	toneBriefPrompt        = "very short, to-the-point"
)

// mailboxService implements the MailboxUsecase interface.
type mailboxService struct {
	txManager  repository.TransactionManager
	emailRepo  repository.EmailRepository
	clients    usecase.ProviderClientUsecase
	gateways   map[entity.ExternalProvider]service.ProviderGateway
	completion service.CompletionService
	syncLimit  int
	logger     *slog.Logger
	now        func() time.Time
}

// MailboxServiceParams holds dependencies for MailboxService, injected by Fx.
type MailboxServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	EmailRepo  repository.EmailRepository
	Clients    usecase.ProviderClientUsecase
	Gateways   []service.ProviderGateway `group:"provider_gateways"`
	Completion service.CompletionService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewMailboxService is the constructor for mailboxService.
func NewMailboxService(params MailboxServiceParams) usecase.MailboxUsecase {
	gateways := make(map[entity.ExternalProvider]service.ProviderGateway, len(params.Gateways))
	for _, gateway := range params.Gateways {
		gateways[gateway.Provider()] = gateway
	}

	syncLimit := defaultMailSyncLimit
	if params.Config.Briefing != nil && params.Config.Briefing.MailSyncLimit > 0 {
		syncLimit = params.Config.Briefing.MailSyncLimit
	}

	return &mailboxService{
		txManager:  params.TxManager,
		emailRepo:  params.EmailRepo,
		clients:    params.Clients,
		gateways:   gateways,
		completion: params.Completion,
		syncLimit:  syncLimit,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *mailboxService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Sync pulls recent messages from every connected mail service into the
// cache. A failing service is logged and skipped; the others still sync.
func (srv *mailboxService) Sync(ctx context.Context, userID uuid.UUID) (*usecase.SyncOutput, error) {
	synced := 0
	for _, serviceType := range []entity.ServiceType{entity.ServiceGmail, entity.ServiceOutlookMail} {
		count, err := srv.syncService(ctx, userID, serviceType)
		if err != nil {
			if errors.Is(err, domainerrors.ErrConnectionNotFound) {
				continue
			}
			srv.log(ctx).Error("Mailbox sync failed for service",
				slog.Any("userID", userID), slog.String("service", string(serviceType)), slog.Any("error", err))

			continue
		}
		synced += count
	}

	srv.log(ctx).Info("Mailbox sync completed", slog.Any("userID", userID), slog.Int("synced", synced))

	return &usecase.SyncOutput{Synced: synced}, nil
}

func (srv *mailboxService) syncService(ctx context.Context, userID uuid.UUID, serviceType entity.ServiceType) (int, error) {
	handle, err := srv.clients.Handle(ctx, userID, serviceType)
	if err != nil {
		return 0, err
	}

	var emails []*entity.Email
	if handle.Simulated {
		emails = simulatedMail(userID, serviceType, srv.now())
	} else {
		gateway, ok := srv.gateways[handle.Provider]
		if !ok {
			return 0, errors.Errorf("no gateway registered for provider %s", handle.Provider)
		}
		emails, err = gateway.FetchMail(ctx, handle.AccessToken, srv.syncLimit)
		if err != nil {
			return 0, errors.Wrap(domainerrors.ErrProviderFailure, err.Error())
		}
		for _, email := range emails {
			email.UserID = userID
			email.Service = serviceType
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		emailRepo := repoFactory.NewEmailRepository()
		for _, email := range emails {
			if err := emailRepo.Upsert(ctx, email); err != nil {
				return errors.Wrapf(err, "failed to upsert email %s", email.ExternalID)
			}
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to store synced mail")
	}

	return len(emails), nil
}

// List returns the user's cached messages, newest first.
func (srv *mailboxService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Email, error) {
	emails, err := srv.emailRepo.FindByUserID(ctx, userID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cached mail")
	}

	return emails, nil
}

// Summarize generates and persists an AI summary for one cached message.
func (srv *mailboxService) Summarize(ctx context.Context, userID, emailID uuid.UUID) (*usecase.SummarizeOutput, error) {
	email, err := srv.emailRepo.FindByID(ctx, userID, emailID)
	if err != nil {
		if errors.Is(err, repository.ErrEmailNotFound) {
			return nil, errors.Wrap(domainerrors.ErrEmailNotFound, "email not found")
		}

		return nil, errors.Wrap(err, "failed to load email")
	}

	prompt := fmt.Sprintf(summaryPromptTemplate, email.From, email.Subject, truncateBody(email.Body))

	summary, err := srv.completion.Complete(ctx, prompt, summaryMaxTokens)
	if err != nil {
		srv.log(ctx).Error("Summary generation failed",
			slog.Any("userID", userID), slog.Any("emailID", emailID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCompletionFailed, "failed to generate summary")
	}
	summary = strings.TrimSpace(summary)

	if err := srv.emailRepo.UpdateSummary(ctx, emailID, summary); err != nil {
		return nil, errors.Wrap(err, "failed to store summary")
	}

	return &usecase.SummarizeOutput{Summary: summary}, nil
}

// SuggestReplies generates one reply suggestion per tone and replaces any
// previous suggestions for the message.
func (srv *mailboxService) SuggestReplies(ctx context.Context, userID, emailID uuid.UUID) ([]*entity.SmartReply, error) {
	email, err := srv.emailRepo.FindByID(ctx, userID, emailID)
	if err != nil {
		if errors.Is(err, repository.ErrEmailNotFound) {
			return nil, errors.Wrap(domainerrors.ErrEmailNotFound, "email not found")
		}

		return nil, errors.Wrap(err, "failed to load email")
	}

	body := truncateBody(email.Body)
	replies := make([]*entity.SmartReply, 0, len(entity.ReplyTones()))
	for _, tone := range entity.ReplyTones() {
		prompt := fmt.Sprintf(replyPromptTemplate, toneInstruction(tone), email.From, email.Subject, body)

		replyBody, err := srv.completion.Complete(ctx, prompt, replyMaxTokens)
		if err != nil {
			srv.log(ctx).Error("Reply generation failed",
				slog.Any("userID", userID), slog.Any("emailID", emailID),
				slog.String("tone", string(tone)), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrCompletionFailed, "failed to generate reply suggestions")
		}

		replies = append(replies, &entity.SmartReply{
			EmailID: emailID,
			Tone:    tone,
			Body:    strings.TrimSpace(replyBody),
		})
	}

	if err := srv.emailRepo.ReplaceReplies(ctx, emailID, replies); err != nil {
		return nil, errors.Wrap(err, "failed to store reply suggestions")
	}

	return replies, nil
}

func toneInstruction(tone entity.ReplyTone) string {
	switch tone {
	case entity.ToneProfessional:
		return toneProfessionalPrompt
	case entity.ToneFriendly:
		return toneFriendlyPrompt
	case entity.ToneBrief:
		return toneBriefPrompt
	default:
		return string(tone)
	}
}

func truncateBody(body string) string {
	if len(body) <= bodyPromptLimit {
		return body
	}

	// Back up to a rune boundary so the cut never splits a UTF-8 sequence.
	cut := bodyPromptLimit
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}

	return body[:cut]
}
