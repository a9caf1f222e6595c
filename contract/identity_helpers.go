package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"identityrecord/model"
	"time"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// --- Core Helper Methods (used across multiple operations) ---

// getCurrentTxTimestamp retrieves the current transaction timestamp from the stub.
func getCurrentTxTimestamp(ctx contractapi.TransactionContextInterface) (time.Time, error) {
	ts, err := ctx.GetStub().GetTxTimestamp()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get transaction timestamp: %w", err)
	}
	return ts.AsTime(), nil
}

// getCallerID retrieves the full X.509 ID of the current transactor.
func getCallerID(ctx contractapi.TransactionContextInterface) (string, error) {
	clientIdentity := ctx.GetClientIdentity()
	if clientIdentity == nil {
		return "", errors.New("client identity is nil from context")
	}
	id, err := clientIdentity.GetID()
	if err != nil {
		return "", fmt.Errorf("failed to get client identity ID from context: %w", err)
	}
	if id == "" {
		return "", errors.New("client identity ID from context is empty")
	}
	return id, nil
}

// requireOwner loads the record and checks that the caller owns it.
func (s *IdentityContract) requireOwner(ctx contractapi.TransactionContextInterface, op string) (*model.IdentityRecord, error) {
	record, err := s.getIdentityRecord(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	caller, err := getCallerID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve caller: %w", op, err)
	}
	if caller != record.Owner {
		logger.Warningf("%s: rejected caller '%s', not the record owner", op, caller)
		return nil, fmt.Errorf("%s: %w: caller '%s' is not the record owner", op, ErrUnauthorized, caller)
	}
	return record, nil
}

// --- Validation Helper Functions ---

func validateRequiredName(input, field string) error {
	if input == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrInvalidInput, field)
	}
	return validateOptionalName(input, field)
}

func validateOptionalName(input, field string) error {
	if len(input) > maxNameLength {
		return fmt.Errorf("%w: %s exceeds max length %d", ErrInvalidInput, field, maxNameLength)
	}
	return nil
}

func validateBirth(birth int64) error {
	if birth == 0 {
		return fmt.Errorf("%w: birth cannot be zero", ErrInvalidInput)
	}
	return nil
}

// --- Events ---

func eventMeta(ctx contractapi.TransactionContextInterface, now time.Time) model.EventMeta {
	return model.EventMeta{
		TxID:      ctx.GetStub().GetTxID(),
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}

// emitEvent sets the chaincode event of the transaction. A failure aborts the
// transaction so a mutation is never committed without its audit record.
func emitEvent(ctx contractapi.TransactionContextInterface, eventName string, payload interface{}) error {
	eventBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for event '%s': %w", eventName, err)
	}
	if err := ctx.GetStub().SetEvent(eventName, eventBytes); err != nil {
		logger.Warningf("emitEvent: Failed to set event '%s': %v", eventName, err)
		return fmt.Errorf("failed to set event '%s': %w", eventName, err)
	}
	return nil
}
