package cli

import (
	"fmt"

	"lspwire/src/internal/errors"
)

// FormatError renders err for the terminal. Errors that carry a client code
// are tagged with the code, its category and its standard message.
func FormatError(err error) string {
	code := errors.CodeOf(err)
	if code == errors.InternalError {
		return fmt.Sprintf("Error: %v", err)
	}
	return fmt.Sprintf("Error [%d %s/%s]: %v",
		code, errors.GetErrorCodeCategory(code), errors.GetErrorCodeMessage(code), err)
}
