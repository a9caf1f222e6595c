package contract

import "errors"

// Sentinel errors returned (wrapped) by IdentityContract transactions.
// Fabric discards the write set of any transaction that returns an error, so each
// of these also means the world state was left untouched.
var (
	ErrConstructionFailed = errors.New("construction failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoOpRejected       = errors.New("new value equals current value")
	ErrTransferFailed     = errors.New("value transfer failed")
	ErrNotInitialized     = errors.New("identity record does not exist")
	ErrAlreadyInitialized = errors.New("identity record already exists")
)
