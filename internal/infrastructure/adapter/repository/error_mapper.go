package repository

import (
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/trade-ledger/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
	// EntityTypeTrade represents the trade entity
	EntityTypeTrade EntityType = "trade"
	// EntityTypeReport represents the report entity
	EntityTypeReport EntityType = "report"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct {
	classifier *ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: NewErrorClassifier()}
}

// MapError maps a database error to a domain error. Lock conflicts become
// ErrConcurrentUpdate; everything else wraps ErrStoreUnavailable.
func (m *ErrorMapper) MapError(err error, operation, userID string) error {
	if err == nil {
		return nil
	}

	// Domain errors raised inside a transaction callback pass through untouched
	if isDomainError(err) {
		return err
	}

	if m.classifier.IsLockError(err) {
		return fmt.Errorf("%w: %s: %v", errs.ErrConcurrentUpdate, operation, err)
	}

	return errs.NewStoreError(operation, userID, err)
}

// MapEntityNotFoundError maps gorm's missing-record error to the entity's not found error
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType, operation, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeUser:
			return errs.ErrUserNotFound
		case EntityTypeTrade:
			return fmt.Errorf("%w: %s", errs.ErrTradeNotFound, id)
		}
	}

	return m.MapError(err, operation, "")
}

func isDomainError(err error) bool {
	return errors.Is(err, errs.ErrConcurrentUpdate) ||
		errors.Is(err, errs.ErrStoreUnavailable) ||
		errs.IsNotFoundError(err) ||
		errors.Is(err, errs.ErrTradeAlreadyCompleted) ||
		errors.Is(err, errs.ErrInvalidUserID)
}
