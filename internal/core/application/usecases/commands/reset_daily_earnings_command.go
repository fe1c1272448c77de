package commands

import (
	"errors"

	"mtaani/internal/pkg/guard"
)

var ErrResetDailyEarningsCommandIsNotConstructed = errors.New(
	"ResetDailyEarningsCommand must be created via NewResetDailyEarningsCommand constructor",
)

// ResetDailyEarningsCommand zeroes every rider's daily earnings accumulator.
// Parameterless; the midnight job issues it once per day.
type ResetDailyEarningsCommand struct {
	guard guard.ConstructorGuard
}

// NewResetDailyEarningsCommand creates the command.
func NewResetDailyEarningsCommand() ResetDailyEarningsCommand {
	return ResetDailyEarningsCommand{guard: guard.NewConstructorGuard()}
}

func (c ResetDailyEarningsCommand) Validate() error {
	return c.guard.Validate(ErrResetDailyEarningsCommandIsNotConstructed)
}
