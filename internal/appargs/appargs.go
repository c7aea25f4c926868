// Package appargs provides positional argument validation for commands built
// with github.com/urfave/cli/v2.
package appargs

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

// Validator is an argument validator function. It returns the number of
// arguments consumed or -1 on error.
type Validator = func([]string) int

// RequiredNonEmpty is a validator for a single required parameter that must
// not be empty. Paths are validated this way: an empty path would resolve to
// the current directory.
func RequiredNonEmpty(args []string) int {
	if len(args) == 0 || args[0] == "" {
		return -1
	}
	return 1
}

// ErrInvalidUsage is returned when there is a validation error.
var ErrInvalidUsage = errors.New("invalid command usage")

// Validate can be used as a command's Before function to validate the
// arguments to the command. The returned error names the expected usage.
func Validate(vs ...Validator) cli.BeforeFunc {
	return func(c *cli.Context) error {
		remaining := c.Args().Slice()
		for _, v := range vs {
			consumed := v(remaining)
			if consumed < 0 {
				return usageError(c)
			}
			remaining = remaining[consumed:]
		}

		if len(remaining) > 0 {
			return usageError(c)
		}

		return nil
	}
}

func usageError(c *cli.Context) error {
	if c.Command == nil || c.Command.ArgsUsage == "" {
		return ErrInvalidUsage
	}
	return fmt.Errorf("%w, expected: %s", ErrInvalidUsage, c.Command.ArgsUsage)
}
