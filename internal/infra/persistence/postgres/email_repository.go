package postgres

import (
	"context"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// emailRepository implements the domain.EmailRepository interface.
type emailRepository struct {
	db *gorm.DB
}

// NewEmailRepository is the constructor for emailRepository.
func NewEmailRepository(db *gorm.DB) repository.EmailRepository {
	return &emailRepository{db: db}
}

// Upsert inserts the message or refreshes the existing row for the same
// (user, service, external id).
func (repo *emailRepository) Upsert(ctx context.Context, email *entity.Email) error {
	emailM := fromEmailDomain(email)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "service"}, {Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"from_address", "subject", "snippet", "body", "received_at", "unread", "updated_at",
			}),
		}).
		Create(emailM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert email")
	}

	email.ID = emailM.ID
	email.CreatedAt = emailM.CreatedAt
	email.UpdatedAt = emailM.UpdatedAt

	return nil
}

// FindByID retrieves a single cached message owned by the given user.
func (repo *emailRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Email, error) {
	var emailM model.EmailModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&emailM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmailNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toEmailDomain(&emailM), nil
}

// FindByUserID retrieves the user's cached messages, newest first.
func (repo *emailRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Email, error) {
	return repo.findEmails(ctx, limit, "user_id = ?", userID)
}

// FindUnreadByUserID retrieves the user's unread messages, newest first.
func (repo *emailRepository) FindUnreadByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Email, error) {
	return repo.findEmails(ctx, limit, "user_id = ? AND unread = ?", userID, true)
}

func (repo *emailRepository) findEmails(ctx context.Context, limit int, cond string, args ...any) ([]*entity.Email, error) {
	query := repo.db.WithContext(ctx).
		Where(cond, args...).
		Order("received_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var emailModels []model.EmailModel
	if err := query.Find(&emailModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	emails := make([]*entity.Email, 0, len(emailModels))
	for i := range emailModels {
		emails = append(emails, toEmailDomain(&emailModels[i]))
	}

	return emails, nil
}

// UpdateSummary stores the AI summary on an existing message.
func (repo *emailRepository) UpdateSummary(ctx context.Context, id uuid.UUID, summary string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmailModel{}).
		Where("id = ?", id).
		Update("summary", summary)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update summary")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEmailNotFound
	}

	return nil
}

// ReplaceReplies deletes any previous suggestions for the email and stores the new set.
func (repo *emailRepository) ReplaceReplies(ctx context.Context, emailID uuid.UUID, replies []*entity.SmartReply) error {
	if err := repo.db.WithContext(ctx).
		Where("email_id = ?", emailID).
		Delete(&model.SmartReplyModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete previous replies")
	}

	if len(replies) == 0 {
		return nil
	}

	replyModels := make([]model.SmartReplyModel, 0, len(replies))
	for _, reply := range replies {
		replyModels = append(replyModels, *fromReplyDomain(reply))
	}

	if err := repo.db.WithContext(ctx).Create(&replyModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEmailNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create replies")
	}

	for i := range replies {
		replies[i].ID = replyModels[i].ID
		replies[i].CreatedAt = replyModels[i].CreatedAt
	}

	return nil
}

// FindRepliesByEmailID retrieves stored reply suggestions in creation order.
func (repo *emailRepository) FindRepliesByEmailID(ctx context.Context, emailID uuid.UUID) ([]*entity.SmartReply, error) {
	var replyModels []model.SmartReplyModel
	if err := repo.db.WithContext(ctx).
		Where("email_id = ?", emailID).
		Order("created_at ASC").
		Find(&replyModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	replies := make([]*entity.SmartReply, 0, len(replyModels))
	for i := range replyModels {
		replies = append(replies, toReplyDomain(&replyModels[i]))
	}

	return replies, nil
}

// --- Mapper Functions ---

func toEmailDomain(data *model.EmailModel) *entity.Email {
	if data == nil {
		return nil
	}

	return &entity.Email{
		ID:         data.ID,
		UserID:     data.UserID,
		Service:    entity.ServiceType(data.Service),
		ExternalID: data.ExternalID,
		From:       data.From,
		Subject:    data.Subject,
		Snippet:    data.Snippet,
		Body:       data.Body,
		ReceivedAt: data.ReceivedAt,
		Unread:     data.Unread,
		Summary:    data.Summary,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromEmailDomain(data *entity.Email) *model.EmailModel {
	if data == nil {
		return nil
	}

	return &model.EmailModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Service:    string(data.Service),
		ExternalID: data.ExternalID,
		From:       data.From,
		Subject:    data.Subject,
		Snippet:    data.Snippet,
		Body:       data.Body,
		ReceivedAt: data.ReceivedAt,
		Unread:     data.Unread,
		Summary:    data.Summary,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toReplyDomain(data *model.SmartReplyModel) *entity.SmartReply {
	if data == nil {
		return nil
	}

	return &entity.SmartReply{
		ID:        data.ID,
		EmailID:   data.EmailID,
		Tone:      entity.ReplyTone(data.Tone),
		Body:      data.Body,
		CreatedAt: data.CreatedAt,
	}
}

func fromReplyDomain(data *entity.SmartReply) *model.SmartReplyModel {
	if data == nil {
		return nil
	}

	return &model.SmartReplyModel{
		ID:        data.ID,
		EmailID:   data.EmailID,
		Tone:      string(data.Tone),
		Body:      data.Body,
		CreatedAt: data.CreatedAt,
	}
}
