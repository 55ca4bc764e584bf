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

// briefRepository implements the domain.BriefRepository interface.
type briefRepository struct {
	db *gorm.DB
}

// NewBriefRepository is the constructor for briefRepository.
func NewBriefRepository(db *gorm.DB) repository.BriefRepository {
	return &briefRepository{db: db}
}

// Upsert inserts the brief or replaces the existing row for the same (user, date).
func (repo *briefRepository) Upsert(ctx context.Context, brief *entity.DailyBrief) error {
	briefM := fromBriefDomain(brief)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "generated_at"}),
		}).
		Create(briefM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert brief")
	}

	brief.ID = briefM.ID

	return nil
}

// FindByUserAndDate retrieves the brief for one calendar date.
func (repo *briefRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyBrief, error) {
	var briefM model.DailyBriefModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).
		First(&briefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBriefNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toBriefDomain(&briefM), nil
}

// --- Mapper Functions ---

func toBriefDomain(data *model.DailyBriefModel) *entity.DailyBrief {
	if data == nil {
		return nil
	}

	return &entity.DailyBrief{
		ID:          data.ID,
		UserID:      data.UserID,
		Date:        data.Date,
		Content:     data.Content,
		GeneratedAt: data.GeneratedAt,
	}
}

func fromBriefDomain(data *entity.DailyBrief) *model.DailyBriefModel {
	if data == nil {
		return nil
	}

	return &model.DailyBriefModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Date:        data.Date,
		Content:     data.Content,
		GeneratedAt: data.GeneratedAt,
	}
}
