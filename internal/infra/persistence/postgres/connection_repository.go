package postgres

import (
	"context"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/crypto"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// connectionRepository implements the domain.ConnectionRepository interface.
// It encrypts token columns on the way in and decrypts them on the way out,
// so plaintext token material never reaches the database.
type connectionRepository struct {
	db     *gorm.DB
	cipher *crypto.TokenCipher
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB, cipher *crypto.TokenCipher) repository.ConnectionRepository {
	return &connectionRepository{db: db, cipher: cipher}
}

// Upsert inserts the connection or replaces the existing row for the same
// (user, service). The conflict target is the composite unique index, which
// is what keeps repeated OAuth callbacks from piling up duplicate rows.
func (repo *connectionRepository) Upsert(ctx context.Context, conn *entity.Connection) error {
	connM, err := repo.fromConnectionDomain(conn)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "service"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"account_email", "simulated", "access_token", "refresh_token", "expires_at", "updated_at",
			}),
		}).
		Create(connM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert connection")
	}

	// Update the entity with generated values
	conn.ID = connM.ID
	conn.CreatedAt = connM.CreatedAt
	conn.UpdatedAt = connM.UpdatedAt

	return nil
}

// FindByUserAndService retrieves the single connection for a user and service.
func (repo *connectionRepository) FindByUserAndService(ctx context.Context, userID uuid.UUID, service entity.ServiceType) (*entity.Connection, error) {
	var connM model.ConnectionModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND service = ?", userID, string(service)).
		First(&connM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, errors.WithStack(err)
	}

	return repo.toConnectionDomain(&connM)
}

// FindByUserID retrieves all connections of a user, ordered by service name.
func (repo *connectionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Connection, error) {
	var connModels []model.ConnectionModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("service ASC").
		Find(&connModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	conns := make([]*entity.Connection, 0, len(connModels))
	for i := range connModels {
		conn, err := repo.toConnectionDomain(&connModels[i])
		if err != nil {
			return nil, err
		}
		conns = append(conns, conn)
	}

	return conns, nil
}

// UpdateCredential replaces the stored credential after a token refresh.
func (repo *connectionRepository) UpdateCredential(ctx context.Context, id uuid.UUID, credential entity.Credential) error {
	sealedAccess, err := repo.cipher.Seal(credential.AccessToken)
	if err != nil {
		return errors.Wrap(err, "seal access token")
	}
	sealedRefresh, err := repo.cipher.Seal(credential.RefreshToken)
	if err != nil {
		return errors.Wrap(err, "seal refresh token")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ConnectionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"simulated":     credential.Simulated,
			"access_token":  sealedAccess,
			"refresh_token": sealedRefresh,
			"expires_at":    credential.ExpiresAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update credential")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// DeleteByUserAndService removes the connection for (user, service).
func (repo *connectionRepository) DeleteByUserAndService(ctx context.Context, userID uuid.UUID, service entity.ServiceType) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND service = ?", userID, string(service)).
		Delete(&model.ConnectionModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// If no rows were affected, it means the connection was not found.
	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toConnectionDomain converts a GORM ConnectionModel to a domain Connection entity,
// decrypting the stored token material.
func (repo *connectionRepository) toConnectionDomain(data *model.ConnectionModel) (*entity.Connection, error) {
	if data == nil {
		return nil, nil
	}

	accessToken, err := repo.cipher.Open(data.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "open access token")
	}
	refreshToken, err := repo.cipher.Open(data.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "open refresh token")
	}

	return &entity.Connection{
		ID:           data.ID,
		UserID:       data.UserID,
		Service:      entity.ServiceType(data.Service),
		AccountEmail: data.AccountEmail,
		Credential: entity.Credential{
			Simulated:    data.Simulated,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    data.ExpiresAt,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

// fromConnectionDomain converts a domain Connection entity to a GORM ConnectionModel,
// encrypting the token material.
func (repo *connectionRepository) fromConnectionDomain(data *entity.Connection) (*model.ConnectionModel, error) {
	if data == nil {
		return nil, nil
	}

	sealedAccess, err := repo.cipher.Seal(data.Credential.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "seal access token")
	}
	sealedRefresh, err := repo.cipher.Seal(data.Credential.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "seal refresh token")
	}

	return &model.ConnectionModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Service:      string(data.Service),
		AccountEmail: data.AccountEmail,
		Simulated:    data.Credential.Simulated,
		AccessToken:  sealedAccess,
		RefreshToken: sealedRefresh,
		ExpiresAt:    data.Credential.ExpiresAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}
