package contract

import (
	"encoding/json"
	"fmt"
	"identityrecord/model"
	"time"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// --- Query Functions ---
// Reads are open to every caller.

func (s *IdentityContract) IsOwner(ctx contractapi.TransactionContextInterface, candidate string) (bool, error) {
	record, err := s.getIdentityRecord(ctx)
	if err != nil {
		return false, fmt.Errorf("IsOwner: %w", err)
	}
	return candidate == record.Owner, nil
}

func (s *IdentityContract) Owner(ctx contractapi.TransactionContextInterface) (string, error) {
	record, err := s.getIdentityRecord(ctx)
	if err != nil {
		return "", fmt.Errorf("Owner: %w", err)
	}
	return record.Owner, nil
}

func (s *IdentityContract) FirstName(ctx contractapi.TransactionContextInterface) (string, error) {
	record, err := s.getIdentityRecord(ctx)
	if err != nil {
		return "", fmt.Errorf("FirstName: %w", err)
	}
	return record.FirstName, nil
}

func (s *IdentityContract) SecondName(ctx contractapi.TransactionContextInterface) (string, error) {
	record, err := s.getIdentityRecord(ctx)
	if err != nil {
		return "", fmt.Errorf("SecondName: %w", err)
	}
	return record.SecondName, nil
}

func (s *IdentityContract) Surname(ctx contractapi.TransactionContextInterface) (string, error) {
	record, err := s.getIdentityRecord(ctx)
	if err != nil {
		return "", fmt.Errorf("Surname: %w", err)
	}
	return record.Surname, nil
}

func (s *IdentityContract) Birth(ctx contractapi.TransactionContextInterface) (int64, error) {
	record, err := s.getIdentityRecord(ctx)
	if err != nil {
		return 0, fmt.Errorf("Birth: %w", err)
	}
	return record.Birth, nil
}

func (s *IdentityContract) CreationTime(ctx contractapi.TransactionContextInterface) (int64, error) {
	record, err := s.getIdentityRecord(ctx)
	if err != nil {
		return 0, fmt.Errorf("CreationTime: %w", err)
	}
	return record.CreationTime, nil
}

// GetIdentity returns firstName, secondName, surname, birth and creationTime as
// currently stored.
func (s *IdentityContract) GetIdentity(ctx contractapi.TransactionContextInterface) (*model.IdentitySnapshot, error) {
	logger.Debug("Chaincode Call: GetIdentity")
	record, err := s.getIdentityRecord(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetIdentity: %w", err)
	}
	snapshot := record.Snapshot()
	return &snapshot, nil
}

// GetIdentityHistory returns every committed version of the record key in the
// order the peer reports them.
func (s *IdentityContract) GetIdentityHistory(ctx contractapi.TransactionContextInterface) ([]model.HistoryEntry, error) {
	logger.Debug("Chaincode Call: GetIdentityHistory")
	historyIter, err := ctx.GetStub().GetHistoryForKey(identityRecordObjectType)
	if err != nil {
		return nil, fmt.Errorf("GetIdentityHistory: failed to get history for identity record: %w", err)
	}
	defer historyIter.Close()

	entries := []model.HistoryEntry{}
	for historyIter.HasNext() {
		item, err := historyIter.Next()
		if err != nil {
			return nil, fmt.Errorf("GetIdentityHistory: failed to iterate history: %w", err)
		}
		entry := model.HistoryEntry{TxID: item.TxId, IsDelete: item.IsDelete}
		if item.Timestamp != nil {
			entry.Timestamp = item.Timestamp.AsTime().UTC().Format(time.RFC3339)
		}
		if !item.IsDelete && len(item.Value) > 0 {
			var record model.IdentityRecord
			if err := json.Unmarshal(item.Value, &record); err != nil {
				logger.Warningf("GetIdentityHistory: Failed to unmarshal record at tx '%s': %v. Skipping.", item.TxId, err)
				continue
			}
			entry.Record = &record
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
