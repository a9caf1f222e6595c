package contract

import (
	"encoding/json"
	"fmt"
	"identityrecord/model"
	"math"
	"sort"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

const (
	balanceObjectType = "Balance" // Stores model.Balance. Attribute for composite key: principal.

	// recordAccount is the principal under which the identity record itself holds value.
	recordAccount = "identity-record"
)

// ValueLedger tracks the value held by principals inside one transaction.
// Fabric does not let a transaction read its own writes, so balances are read
// once, changed in memory and written by Commit.
type ValueLedger struct {
	Ctx      contractapi.TransactionContextInterface
	original map[string]uint64
	pending  map[string]uint64
}

// NewValueLedger creates a ValueLedger bound to the transaction context.
func NewValueLedger(ctx contractapi.TransactionContextInterface) *ValueLedger {
	return &ValueLedger{
		Ctx:      ctx,
		original: map[string]uint64{},
		pending:  map[string]uint64{},
	}
}

func (vl *ValueLedger) createBalanceCompositeKey(principal string) (string, error) {
	return vl.Ctx.GetStub().CreateCompositeKey(balanceObjectType, []string{principal})
}

// BalanceOf returns the balance of principal as seen by this transaction.
func (vl *ValueLedger) BalanceOf(principal string) (uint64, error) {
	if amount, ok := vl.pending[principal]; ok {
		return amount, nil
	}
	key, err := vl.createBalanceCompositeKey(principal)
	if err != nil {
		return 0, fmt.Errorf("failed to create balance key for '%s': %w", principal, err)
	}
	balanceBytes, err := vl.Ctx.GetStub().GetState(key)
	if err != nil {
		return 0, fmt.Errorf("failed to read balance of '%s': %w", principal, err)
	}
	var amount uint64
	if balanceBytes != nil {
		var balance model.Balance
		if err := json.Unmarshal(balanceBytes, &balance); err != nil {
			return 0, fmt.Errorf("failed to unmarshal balance of '%s': %w", principal, err)
		}
		amount = balance.Amount
	}
	vl.original[principal] = amount
	vl.pending[principal] = amount
	return amount, nil
}

// Credit adds amount to the balance of principal in memory.
func (vl *ValueLedger) Credit(principal string, amount uint64) error {
	balance, err := vl.BalanceOf(principal)
	if err != nil {
		return err
	}
	if balance > math.MaxUint64-amount {
		return fmt.Errorf("balance of '%s' would overflow", principal)
	}
	vl.pending[principal] = balance + amount
	return nil
}

// Debit removes amount from the balance of principal in memory.
func (vl *ValueLedger) Debit(principal string, amount uint64) error {
	balance, err := vl.BalanceOf(principal)
	if err != nil {
		return err
	}
	if balance < amount {
		return fmt.Errorf("insufficient balance: '%s' holds %d, needs %d", principal, balance, amount)
	}
	vl.pending[principal] = balance - amount
	return nil
}

// Commit writes every balance that changed, in key order.
func (vl *ValueLedger) Commit() error {
	principals := make([]string, 0, len(vl.pending))
	for principal, amount := range vl.pending {
		if amount != vl.original[principal] {
			principals = append(principals, principal)
		}
	}
	sort.Strings(principals)

	for _, principal := range principals {
		key, err := vl.createBalanceCompositeKey(principal)
		if err != nil {
			return fmt.Errorf("failed to create balance key for '%s': %w", principal, err)
		}
		balanceBytes, err := json.Marshal(model.Balance{
			ObjectType: balanceObjectType,
			Principal:  principal,
			Amount:     vl.pending[principal],
		})
		if err != nil {
			return fmt.Errorf("failed to marshal balance of '%s': %w", principal, err)
		}
		if err := vl.Ctx.GetStub().PutState(key, balanceBytes); err != nil {
			return fmt.Errorf("failed to save balance of '%s': %w", principal, err)
		}
		vl.original[principal] = vl.pending[principal]
	}
	return nil
}
