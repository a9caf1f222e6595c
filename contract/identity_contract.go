package contract

import (
	"encoding/json"
	"fmt"
	"identityrecord/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric/common/flogging"
)

var logger = flogging.MustGetLogger("identityrecord.contract")

// identityRecordObjectType is the world state key of the record and its 'objectType'.
const identityRecordObjectType = "IdentityRecord"

// Constants for input validation
const (
	maxNameLength = 32 // Bytes; every name field fits one 32-byte word
)

// IdentityContract manages the single personal identity record of a deployment.
// @contract:IdentityContract
type IdentityContract struct {
	contractapi.Contract
}

// NewIdentityContract returns the contract with the unrouted value-transfer guard
// installed as its UnknownTransaction handler.
func NewIdentityContract() *IdentityContract {
	ic := &IdentityContract{}
	ic.Name = "IdentityContract"
	ic.UnknownTransaction = ic.receiveUnrouted
	return ic
}

// GetEvaluateTransactions marks the read-only transactions so clients evaluate
// rather than submit them.
func (s *IdentityContract) GetEvaluateTransactions() []string {
	return []string{
		"Owner", "FirstName", "SecondName", "Surname", "Birth", "CreationTime",
		"GetIdentity", "IsOwner", "BalanceOf", "GetIdentityHistory",
	}
}

// CreateIdentity is the constructor of the record. The caller becomes the owner
// and the transaction timestamp becomes the creation time.
func (s *IdentityContract) CreateIdentity(ctx contractapi.TransactionContextInterface,
	firstName string, secondName string, surname string, birth int64) error {

	existing, err := ctx.GetStub().GetState(identityRecordObjectType)
	if err != nil {
		return fmt.Errorf("CreateIdentity: failed to check for existing record: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("CreateIdentity: %w", ErrAlreadyInitialized)
	}

	if err := validateRequiredName(firstName, "firstName"); err != nil {
		return constructionFailed(err)
	}
	if err := validateOptionalName(secondName, "secondName"); err != nil {
		return constructionFailed(err)
	}
	if err := validateRequiredName(surname, "surname"); err != nil {
		return constructionFailed(err)
	}
	if err := validateBirth(birth); err != nil {
		return constructionFailed(err)
	}

	owner, err := getCallerID(ctx)
	if err != nil {
		return constructionFailed(err)
	}
	now, err := getCurrentTxTimestamp(ctx)
	if err != nil {
		return constructionFailed(err)
	}

	record := model.IdentityRecord{
		ObjectType:   identityRecordObjectType,
		Owner:        owner,
		FirstName:    firstName,
		SecondName:   secondName,
		Surname:      surname,
		Birth:        birth,
		CreationTime: now.Unix(),
	}

	event := model.IdentityCreatedEvent{
		Owner:        record.Owner,
		FirstName:    record.FirstName,
		SecondName:   record.SecondName,
		Surname:      record.Surname,
		Birth:        record.Birth,
		CreationTime: record.CreationTime,
		EventMeta:    eventMeta(ctx, now),
	}
	if err := emitEvent(ctx, model.EventIdentityCreated, event); err != nil {
		return fmt.Errorf("CreateIdentity: %w", err)
	}
	if err := s.putIdentityRecord(ctx, &record); err != nil {
		return fmt.Errorf("CreateIdentity: %w", err)
	}
	logger.Infof("Identity record created for owner '%s' (%s %s)", owner, firstName, surname)
	return nil
}

func constructionFailed(cause error) error {
	logger.Warningf("CreateIdentity rejected: %v", cause)
	return fmt.Errorf("CreateIdentity: %w: %v", ErrConstructionFailed, cause)
}

// getIdentityRecord reads and unmarshals the record, failing with ErrNotInitialized
// when CreateIdentity never committed.
func (s *IdentityContract) getIdentityRecord(ctx contractapi.TransactionContextInterface) (*model.IdentityRecord, error) {
	recordBytes, err := ctx.GetStub().GetState(identityRecordObjectType)
	if err != nil {
		return nil, fmt.Errorf("failed to read identity record from ledger: %w", err)
	}
	if recordBytes == nil {
		return nil, ErrNotInitialized
	}
	var record model.IdentityRecord
	if err := json.Unmarshal(recordBytes, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal identity record: %w", err)
	}
	return &record, nil
}

func (s *IdentityContract) putIdentityRecord(ctx contractapi.TransactionContextInterface, record *model.IdentityRecord) error {
	recordBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal identity record: %w", err)
	}
	if err := ctx.GetStub().PutState(identityRecordObjectType, recordBytes); err != nil {
		return fmt.Errorf("failed to save identity record to ledger: %w", err)
	}
	return nil
}
