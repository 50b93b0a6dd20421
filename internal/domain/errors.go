package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Builder contract errors
	ErrMsgInvalidArgument      = "invalid argument"
	ErrMsgWrongMetaKind        = "wrong metadata kind"
	ErrMsgUnsupportedOperation = "unsupported operation"
	ErrMsgUnknownKind          = "unknown item kind"

	// Stack errors
	ErrMsgInvalidAmount = "invalid amount"
	ErrMsgInvalidDamage = "invalid damage"
	ErrMsgNotDamageable = "item is not damageable"

	// Meta errors
	ErrMsgIndexOutOfRange = "index out of range"
	ErrMsgEnchantConflict = "enchantment already present"
	ErrMsgInvalidLevel    = "invalid enchantment level"
	ErrMsgNotRepairable   = "item is not repairable"
	ErrMsgInvalidCost     = "invalid repair cost"

	// Book errors
	ErrMsgTooManyPages = "too many pages"
	ErrMsgPageTooLong  = "page too long"
	ErrMsgTitleTooLong = "title too long"

	// Firework errors
	ErrMsgInvalidPower = "invalid firework power"

	// Potion errors
	ErrMsgEffectExists   = "potion effect already present"
	ErrMsgEffectNotFound = "potion effect not found"

	// Skull errors
	ErrMsgInvalidOwner = "invalid skull owner"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidArgument      = errors.New(ErrMsgInvalidArgument)
	ErrWrongMetaKind        = errors.New(ErrMsgWrongMetaKind)
	ErrUnsupportedOperation = errors.New(ErrMsgUnsupportedOperation)
	ErrUnknownKind          = errors.New(ErrMsgUnknownKind)

	ErrInvalidAmount = errors.New(ErrMsgInvalidAmount)
	ErrInvalidDamage = errors.New(ErrMsgInvalidDamage)
	ErrNotDamageable = errors.New(ErrMsgNotDamageable)

	ErrIndexOutOfRange = errors.New(ErrMsgIndexOutOfRange)
	ErrEnchantConflict = errors.New(ErrMsgEnchantConflict)
	ErrInvalidLevel    = errors.New(ErrMsgInvalidLevel)
	ErrInvalidCost     = errors.New(ErrMsgInvalidCost)

	ErrTooManyPages = errors.New(ErrMsgTooManyPages)
	ErrPageTooLong  = errors.New(ErrMsgPageTooLong)
	ErrTitleTooLong = errors.New(ErrMsgTitleTooLong)

	ErrInvalidPower = errors.New(ErrMsgInvalidPower)

	ErrEffectExists   = errors.New(ErrMsgEffectExists)
	ErrEffectNotFound = errors.New(ErrMsgEffectNotFound)

	ErrInvalidOwner = errors.New(ErrMsgInvalidOwner)
)

// ErrNotRepairable is an unsupported operation: errors.Is matches both.
var ErrNotRepairable = &unsupportedError{msg: ErrMsgNotRepairable}

type unsupportedError struct {
	msg string
}

func (e *unsupportedError) Error() string { return e.msg }

func (e *unsupportedError) Unwrap() error { return ErrUnsupportedOperation }
