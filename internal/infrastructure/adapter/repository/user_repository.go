package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/trade-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements persistence.ReputationWriter using GORM
type UserRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *ErrorMapper
}

var _ persistence.ReputationWriter = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	mapped := r.errorMapper.MapError(err, operation, userID)
	if errors.Is(mapped, errs.ErrConcurrentUpdate) {
		r.logger.Warn("User row changed concurrently", map[string]any{
			"operation": operation,
			"user_id":   userID,
			"error":     err.Error(),
		})
		return mapped
	}

	r.logger.Error("Database error on user row", map[string]any{
		"operation": operation,
		"user_id":   userID,
		"error":     err.Error(),
	})
	return mapped
}

// EnsureUser inserts a zero-reputation row unless one exists, then returns the stored row
func (r *UserRepository) EnsureUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := entity.NewUser(userID, r.timeProvider)
	if err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if err := r.insertIfAbsent(db, user); err != nil {
		return nil, r.handleDatabaseError("ensure user", err, user.ID)
	}

	var row model.User
	if err := db.Where("user_id = ?", user.ID).Take(&row).Error; err != nil {
		return nil, r.handleDatabaseError("ensure user", err, user.ID)
	}
	return row.ToEntity(), nil
}

// ApplyAward adds an award under a row lock and a compare-and-set guard.
// The UPDATE only lands if reputation_points still holds the value that was
// read, so two writers can never both succeed from the same starting point.
func (r *UserRepository) ApplyAward(ctx context.Context, userID string, award int) (*entity.User, error) {
	r.logger.Debug("Applying reputation award", map[string]any{
		"user_id": userID,
		"award":   award,
	})

	var user *entity.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := r.lockUser(tx, userID)
		if err != nil {
			return err
		}

		previous := current.ReputationPoints
		current.ApplyAward(award, r.timeProvider)

		result := tx.Model(&model.User{}).
			Where("user_id = ? AND reputation_points = ?", userID, previous).
			Updates(map[string]any{
				"reputation_points": current.ReputationPoints,
				"updated_at":        current.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.ErrConcurrentUpdate
		}

		user = current
		return nil
	})
	if err != nil {
		return nil, r.handleDatabaseError("apply award", err, userID)
	}

	r.logger.Info("Reputation updated", map[string]any{
		"user_id":           userID,
		"award":             award,
		"reputation_points": user.ReputationPoints,
	})

	return user, nil
}

// SetBlocked toggles the moderation flag, creating the user if needed
func (r *UserRepository) SetBlocked(ctx context.Context, userID string, blocked bool) (*entity.User, error) {
	var user *entity.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := r.lockUser(tx, userID)
		if err != nil {
			return err
		}

		current.SetBlocked(blocked, r.timeProvider)
		result := tx.Model(&model.User{}).
			Where("user_id = ?", userID).
			Updates(map[string]any{
				"blocked":    current.Blocked,
				"updated_at": current.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}

		user = current
		return nil
	})
	if err != nil {
		return nil, r.handleDatabaseError("set blocked", err, userID)
	}

	return user, nil
}

// lockUser creates the row if needed and reads it back with a row lock where
// the dialect supports one
func (r *UserRepository) lockUser(tx *gorm.DB, userID string) (*entity.User, error) {
	fresh, err := entity.NewUser(userID, r.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := r.insertIfAbsent(tx, fresh); err != nil {
		return nil, err
	}

	query := tx
	if tx.Dialector.Name() == "postgres" {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var row model.User
	if err := query.Where("user_id = ?", fresh.ID).Take(&row).Error; err != nil {
		return nil, err
	}
	return row.ToEntity(), nil
}

func (r *UserRepository) insertIfAbsent(db *gorm.DB, user *entity.User) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(model.UserFromEntity(user)).Error
}
