package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/questionbank/internal/repository"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// Entity names as they appear in error messages.
const (
	EntitySetup    = "Setup"
	EntityMCOption = "Multiple choice option"
	EntityRubric   = "Rubric"
	EntityQuestion = "Question"
)

type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type ValidationKind string

const (
	KindInvalidType   ValidationKind = "invalid_type"
	KindMissingSetup  ValidationKind = "missing_setup"
	KindUnknownSetup  ValidationKind = "unknown_setup"
	KindBlankField    ValidationKind = "blank_field"
	KindInvalidPoints ValidationKind = "invalid_points"
	KindTypeImmutable ValidationKind = "type_immutable"
)

// ValidationError names the question rule that a create or update violated.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func newValidationError(kind ValidationKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// lookupError maps a repository failure for entity id to a service error.
func lookupError(entity string, id uint, op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	log.Error().Err(err).Str("entity", entity).Uint("id", id).Msgf("Failed to %s", op)
	return fmt.Errorf("failed to %s %s %d: %w", op, entity, id, err)
}

func storeError(entity, op string, err error) error {
	log.Error().Err(err).Str("entity", entity).Msgf("Failed to %s", op)
	return fmt.Errorf("failed to %s %s: %w", op, entity, err)
}
