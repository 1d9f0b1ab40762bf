package interview

import (
	"errors"
	"fmt"
)

// ConfigError represents a planning-time configuration failure: an unknown
// role, a question pool smaller than the sample size, an empty plan at
// start. These must surface before a session starts, never mid-traversal.
type ConfigError struct {
	Component string
	Reason    string
	Err       error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("configuration error in %s: %s", e.Component, e.Reason)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ContractError represents an out-of-order operation call: starting a
// session twice, reading the current question after completion, advancing
// past the end of the plan. It indicates a caller bug, not user input,
// and is never auto-corrected.
type ContractError struct {
	Operation string
	Reason    string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Operation, e.Reason)
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsContractError reports whether err is (or wraps) a ContractError.
func IsContractError(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}
