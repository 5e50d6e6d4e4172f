package repository

import (
	"context"
	"errors"
	"strings"
)

// ErrorType is the storage failure class a driver error belongs to
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// errorPatterns lists lowercase message fragments produced by the postgres
// and sqlite drivers, in classification order. Lock errors come before
// transient ones because "database is locked" would otherwise read as a timeout.
var errorPatterns = []struct {
	kind      ErrorType
	fragments []string
}{
	{DuplicateKeyError, []string{"duplicate key", "unique constraint", "sqlite_constraint_unique"}},
	{LockError, []string{
		"deadlock", "lock wait timeout", "could not serialize access",
		"serialization failure", "database is locked", "sqlite_busy", "sqlite_locked",
	}},
	{TransientError, []string{"connection reset", "timeout", "eof", "server closed", "broken pipe"}},
	{ConnectionError, []string{"connection refused", "dial", "network", "no such host", "bad connection"}},
	{ConstraintError, []string{"constraint", "violates", "foreign key", "not null"}},
}

// ErrorClassifier maps driver errors to an ErrorType by message inspection,
// since neither gorm driver exposes a portable error code.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the first matching ErrorType, or "" for unknown errors
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return TransientError
	}

	msg := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		for _, fragment := range p.fragments {
			if strings.Contains(msg, fragment) {
				return p.kind
			}
		}
	}
	return ""
}

// IsLockError reports a lost lock or serialization conflict
func (c *ErrorClassifier) IsLockError(err error) bool {
	return c.Classify(err) == LockError
}

// IsRetryable reports whether repeating the statement can succeed
func (c *ErrorClassifier) IsRetryable(err error) bool {
	switch c.Classify(err) {
	case LockError, TransientError, ConnectionError:
		return true
	default:
		return false
	}
}
