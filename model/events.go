// File: model/events.go
package model

// Chaincode event names. One event is set per successful transaction.
const (
	EventIdentityCreated   = "IdentityCreated"
	EventFirstNameUpdated  = "FirstNameUpdated"
	EventSecondNameUpdated = "SecondNameUpdated"
	EventSurnameUpdated    = "SurnameUpdated"
	EventBirthUpdated      = "BirthUpdated"
	EventValueRefunded     = "ValueRefunded"
)

// EventMeta identifies the transaction that produced an event.
type EventMeta struct {
	TxID      string `json:"txId"`
	Timestamp string `json:"timestamp"` // RFC3339
}

type IdentityCreatedEvent struct {
	Owner        string `json:"owner"`
	FirstName    string `json:"firstName"`
	SecondName   string `json:"secondName"`
	Surname      string `json:"surname"`
	Birth        int64  `json:"birth"`
	CreationTime int64  `json:"creationTime"`
	EventMeta
}

type FirstNameUpdatedEvent struct {
	OldFirstName string `json:"oldFirstName"`
	NewFirstName string `json:"newFirstName"`
	EventMeta
}

type SecondNameUpdatedEvent struct {
	OldSecondName string `json:"oldSecondName"`
	NewSecondName string `json:"newSecondName"`
	EventMeta
}

type SurnameUpdatedEvent struct {
	OldSurname string `json:"oldSurname"`
	NewSurname string `json:"newSurname"`
	EventMeta
}

type BirthUpdatedEvent struct {
	OldBirth int64 `json:"oldBirth"`
	NewBirth int64 `json:"newBirth"`
	EventMeta
}

// ValueRefundedEvent records value returned to the principal that sent it.
type ValueRefundedEvent struct {
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
	EventMeta
}
