package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Template errors
	ErrMsgTemplateNotFound = "template not found"
	ErrMsgItemExists       = "item already exists"

	// Trader errors
	ErrMsgInvalidCurrency = "invalid currency reference"

	// Quest errors
	ErrMsgMalformedQuest = "quest condition tree is malformed"

	// Config errors
	ErrMsgInvalidConfig = "invalid configuration"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)
	ErrItemExists       = errors.New(ErrMsgItemExists)

	ErrInvalidCurrency = errors.New(ErrMsgInvalidCurrency)

	ErrMalformedQuest = errors.New(ErrMsgMalformedQuest)

	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)
)
