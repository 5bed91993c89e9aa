package errs_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessRuleViolationError(t *testing.T) {
	t.Run("NewBusinessRuleViolationError", func(t *testing.T) {
		err := errs.NewBusinessRuleViolationError("inactive customer cannot order")

		assert.Equal(t, "inactive customer cannot order", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "business rule violated: inactive customer cannot order", err.Error())
		assert.Equal(t, errs.ErrBusinessRuleViolated, err.Unwrap())
	})

	t.Run("NewBusinessRuleViolationErrorWithCause", func(t *testing.T) {
		cause := errors.New("restaurant 42 is flagged inactive")
		err := errs.NewBusinessRuleViolationErrorWithCause("inactive restaurant", cause)

		assert.Equal(t, "inactive restaurant", err.Reason)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"business rule violated: inactive restaurant (cause: restaurant 42 is flagged inactive)",
			err.Error())
		assert.Equal(t, errs.ErrBusinessRuleViolated, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("CONFIRMED", "DELIVERED")

		assert.Equal(t, "CONFIRMED", err.From)
		assert.Equal(t, "DELIVERED", err.To)
		assert.Equal(t, "invalid status transition: from CONFIRMED to DELIVERED", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})
}

func TestDependencyUnavailableError(t *testing.T) {
	t.Run("NewDependencyUnavailableError", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewDependencyUnavailableError("customer repository", cause)

		assert.Equal(t, "customer repository", err.Collaborator)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "dependency unavailable: customer repository (cause: connection refused)", err.Error())
		assert.Equal(t, errs.ErrDependencyUnavailable, err.Unwrap())
	})
}

func TestDomainSentinelErrors(t *testing.T) {
	t.Run("errors.Is works with domain errors", func(t *testing.T) {
		ruleErr := errs.NewBusinessRuleViolationError("product unavailable")
		require.ErrorIs(t, ruleErr, errs.ErrBusinessRuleViolated)

		transitionErr := errs.NewInvalidTransitionError("DELIVERED", "CANCELLED")
		require.ErrorIs(t, transitionErr, errs.ErrInvalidTransition)

		depErr := errs.NewDependencyUnavailableError("order storage", errors.New("timeout"))
		require.ErrorIs(t, depErr, errs.ErrDependencyUnavailable)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "business rule violated", errs.ErrBusinessRuleViolated.Error())
		assert.Equal(t, "invalid status transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "dependency unavailable", errs.ErrDependencyUnavailable.Error())
	})
}
