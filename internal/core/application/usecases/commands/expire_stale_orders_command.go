package commands

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
		"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
	)
)

// ExpireStaleOrdersCommand requests cancellation of Pending orders that were
// created before the given cutoff and never confirmed.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Time

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a command with the staleness cutoff.
func NewExpireStaleOrdersCommand(olderThan time.Time) (ExpireStaleOrdersCommand, error) {
	expireCommand := ExpireStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := expireCommand.setOlderThan(olderThan); err != nil {
		return ExpireStaleOrdersCommand{}, err
	}

	return expireCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns the cutoff; Pending orders created before it are stale.
func (c ExpireStaleOrdersCommand) OlderThan() time.Time {
	return c.olderThan
}

func (c *ExpireStaleOrdersCommand) setOlderThan(olderThan time.Time) error {
	if olderThan.IsZero() {
		return errs.NewValueIsRequiredError("olderThan")
	}
	c.olderThan = olderThan
	return nil
}
