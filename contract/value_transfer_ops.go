package contract

import (
	"fmt"
	"identityrecord/model"
	"strconv"
	"strings"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// transientValueKey carries the amount of an unrouted value transfer.
const transientValueKey = "value"

// --- Value Transfer Guard ---
// The record never keeps value. Anything sent to it is refunded to the sender
// within the same transaction.

// ReceiveValue is the named entry point for a value transfer to the record.
// No prior balance is needed: amount is the value attached to this invocation.
func (s *IdentityContract) ReceiveValue(ctx contractapi.TransactionContextInterface, amount uint64) error {
	return s.refundValue(ctx, "ReceiveValue", amount)
}

// BalanceOf returns the committed balance of a principal.
func (s *IdentityContract) BalanceOf(ctx contractapi.TransactionContextInterface, principal string) (uint64, error) {
	if strings.TrimSpace(principal) == "" {
		return 0, fmt.Errorf("BalanceOf: %w: principal cannot be empty", ErrInvalidInput)
	}
	amount, err := NewValueLedger(ctx).BalanceOf(principal)
	if err != nil {
		return 0, fmt.Errorf("BalanceOf: %w", err)
	}
	return amount, nil
}

// receiveUnrouted is installed as the contract's UnknownTransaction handler.
// The amount is read from the transient field "value"; no field means zero.
func (s *IdentityContract) receiveUnrouted(ctx contractapi.TransactionContextInterface) error {
	fn, _ := ctx.GetStub().GetFunctionAndParameters()
	logger.Infof("Unrouted invocation '%s' handled as value transfer", fn)

	transient, err := ctx.GetStub().GetTransient()
	if err != nil {
		return fmt.Errorf("unrouted transfer: failed to read transient data: %w", err)
	}
	var amount uint64
	if raw, ok := transient[transientValueKey]; ok {
		amount, err = strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 64)
		if err != nil {
			return fmt.Errorf("unrouted transfer: %w: transient '%s' is not an unsigned amount", ErrInvalidInput, transientValueKey)
		}
	}
	return s.refundValue(ctx, "unrouted transfer", amount)
}

func (s *IdentityContract) refundValue(ctx contractapi.TransactionContextInterface, op string, amount uint64) error {
	if _, err := s.getIdentityRecord(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	sender, err := getCallerID(ctx)
	if err != nil {
		return fmt.Errorf("%s: failed to resolve sender: %w", op, err)
	}
	now, err := getCurrentTxTimestamp(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// The amount travels with the invocation, like a payment attached to a call.
	// It lands on the record account and leaves it again as the refund, so the
	// record account ends every transaction where it started.
	ledger := NewValueLedger(ctx)
	if err := ledger.Credit(recordAccount, amount); err != nil {
		logger.Warningf("%s: incoming transfer of %d from '%s' failed: %v", op, amount, sender, err)
		return fmt.Errorf("%s: %w: %v", op, ErrTransferFailed, err)
	}
	if err := ledger.Debit(recordAccount, amount); err != nil {
		logger.Warningf("%s: refund of %d to '%s' failed: %v", op, amount, sender, err)
		return fmt.Errorf("%s: %w: refund: %v", op, ErrTransferFailed, err)
	}

	event := model.ValueRefundedEvent{Recipient: sender, Amount: amount, EventMeta: eventMeta(ctx, now)}
	if err := emitEvent(ctx, model.EventValueRefunded, event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := ledger.Commit(); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrTransferFailed, err)
	}
	logger.Infof("%s: refunded %d to '%s'", op, amount, sender)
	return nil
}
