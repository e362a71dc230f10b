package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is. Each typed error below matches exactly one of them.
var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyDeleted       = errors.New("already deleted")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrConstraintViolation  = errors.New("constraint violation")
	ErrTransactionAbort     = errors.New("transaction aborted")
)

const (
	EntityUser     = "user"
	EntityRecipe   = "recipe"
	EntityMealType = "meal_type"
	EntityDietary  = "dietary"
)

type NotFoundError struct {
	Entity string
	Key    string
	Value  any
}

func NewNotFoundError(entity, key string, value any) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key, Value: value}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s %v not found", e.Entity, e.Key, e.Value)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type AlreadyDeletedError struct {
	Entity string
	ID     uint
}

func (e *AlreadyDeletedError) Error() string {
	return fmt.Sprintf("%s %d already deleted", e.Entity, e.ID)
}

func (e *AlreadyDeletedError) Is(target error) bool {
	return target == ErrAlreadyDeleted
}

// ReferentialIntegrityError lists every referenced id missing from its lookup table.
type ReferentialIntegrityError struct {
	Entity string
	IDs    []uint
}

func (e *ReferentialIntegrityError) Error() string {
	ids := make([]string, 0, len(e.IDs))
	for _, id := range e.IDs {
		ids = append(ids, fmt.Sprintf("%d", id))
	}
	return fmt.Sprintf("%s ids do not exist: %s", e.Entity, strings.Join(ids, ", "))
}

func (e *ReferentialIntegrityError) Is(target error) bool {
	return target == ErrReferentialIntegrity
}

type ConstraintViolationError struct {
	Entity     string
	Constraint string
	Err        error
}

func (e *ConstraintViolationError) Error() string {
	msg := e.Entity + " violates a store constraint"
	if e.Constraint != "" {
		msg = fmt.Sprintf("%s violates %s constraint", e.Entity, e.Constraint)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrConstraintViolation
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}

// TransactionAbortError wraps store failures unrelated to input validity:
// lost connections, deadlocks, cancelled contexts, failed commits.
type TransactionAbortError struct {
	Err error
}

func (e *TransactionAbortError) Error() string {
	return "transaction aborted: " + e.Err.Error()
}

func (e *TransactionAbortError) Is(target error) bool {
	return target == ErrTransactionAbort
}

func (e *TransactionAbortError) Unwrap() error {
	return e.Err
}
