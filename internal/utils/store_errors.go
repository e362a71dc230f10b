package utils

import (
	"Culinary-Alchemy/domain"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// StoreError classifies a failed write. Typed domain errors pass through, rejected values
// become a ConstraintViolationError and anything else aborts the transaction.
func StoreError(entity string, err error) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}
	if constraint := constraintKind(err); constraint != "" {
		return &domain.ConstraintViolationError{Entity: entity, Constraint: constraint, Err: err}
	}
	return &domain.TransactionAbortError{Err: err}
}

func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrAlreadyDeleted) ||
		errors.Is(err, domain.ErrReferentialIntegrity) ||
		errors.Is(err, domain.ErrConstraintViolation) ||
		errors.Is(err, domain.ErrTransactionAbort)
}

func constraintKind(err error) string {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return "unique"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return "foreign key"
	}

	// Drivers that do not implement gorm's error translation.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "unique constraint"),
		strings.Contains(msg, "23505"):
		return "unique"
	case strings.Contains(msg, "foreign key"),
		strings.Contains(msg, "23503"):
		return "foreign key"
	case strings.Contains(msg, "not null constraint"),
		strings.Contains(msg, "23502"):
		return "not null"
	}
	return ""
}
