// File: model/identities.go
package model

// IdentityRecord is the single personal identity stored by the chaincode.
type IdentityRecord struct {
	ObjectType   string `json:"objectType"`   // Always "IdentityRecord"
	Owner        string `json:"owner"`        // Full ID of the principal that created the record
	FirstName    string `json:"firstName"`    // Required, bounded length
	SecondName   string `json:"secondName"`   // Optional, may be empty
	Surname      string `json:"surname"`      // Required, bounded length
	Birth        int64  `json:"birth"`        // Seconds since epoch, never zero
	CreationTime int64  `json:"creationTime"` // Tx timestamp (seconds) of CreateIdentity, never rewritten
}

// IdentitySnapshot is the aggregate view returned by GetIdentity.
type IdentitySnapshot struct {
	FirstName    string `json:"firstName"`
	SecondName   string `json:"secondName"`
	Surname      string `json:"surname"`
	Birth        int64  `json:"birth"`
	CreationTime int64  `json:"creationTime"`
}

// Snapshot copies the readable fields of the record.
func (r *IdentityRecord) Snapshot() IdentitySnapshot {
	return IdentitySnapshot{
		FirstName:    r.FirstName,
		SecondName:   r.SecondName,
		Surname:      r.Surname,
		Birth:        r.Birth,
		CreationTime: r.CreationTime,
	}
}

// HistoryEntry is one committed version of the identity record.
type HistoryEntry struct {
	TxID      string          `json:"txId"`
	Timestamp string          `json:"timestamp"` // RFC3339
	IsDelete  bool            `json:"isDelete"`
	Record    *IdentityRecord `json:"record,omitempty"` // Nil for delete markers
}
