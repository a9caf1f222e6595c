// File: model/balances.go
package model

// Balance is the value held by one principal in the in-ledger balance table.
type Balance struct {
	ObjectType string `json:"objectType"` // Always "Balance"
	Principal  string `json:"principal"`
	Amount     uint64 `json:"amount"`
}
