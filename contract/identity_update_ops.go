package contract

import (
	"fmt"
	"identityrecord/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// --- Owner Operations ---
// Every update runs the same guards in order: owner check, input check, change
// check. Nothing is written until all three pass.

func (s *IdentityContract) UpdateFirstName(ctx contractapi.TransactionContextInterface, firstName string) (string, error) {
	record, err := s.requireOwner(ctx, "UpdateFirstName")
	if err != nil {
		return "", err
	}
	if err := validateRequiredName(firstName, "firstName"); err != nil {
		return "", fmt.Errorf("UpdateFirstName: %w", err)
	}
	if firstName == record.FirstName {
		return "", fmt.Errorf("UpdateFirstName: %w", ErrNoOpRejected)
	}

	oldFirstName := record.FirstName
	record.FirstName = firstName
	err = s.commitUpdate(ctx, "UpdateFirstName", record, model.EventFirstNameUpdated, func(meta model.EventMeta) interface{} {
		return model.FirstNameUpdatedEvent{OldFirstName: oldFirstName, NewFirstName: firstName, EventMeta: meta}
	})
	if err != nil {
		return "", err
	}
	return record.FirstName, nil
}

// UpdateSecondName accepts an empty value; the second name is optional.
func (s *IdentityContract) UpdateSecondName(ctx contractapi.TransactionContextInterface, secondName string) (string, error) {
	record, err := s.requireOwner(ctx, "UpdateSecondName")
	if err != nil {
		return "", err
	}
	if err := validateOptionalName(secondName, "secondName"); err != nil {
		return "", fmt.Errorf("UpdateSecondName: %w", err)
	}
	if secondName == record.SecondName {
		return "", fmt.Errorf("UpdateSecondName: %w", ErrNoOpRejected)
	}

	oldSecondName := record.SecondName
	record.SecondName = secondName
	err = s.commitUpdate(ctx, "UpdateSecondName", record, model.EventSecondNameUpdated, func(meta model.EventMeta) interface{} {
		return model.SecondNameUpdatedEvent{OldSecondName: oldSecondName, NewSecondName: secondName, EventMeta: meta}
	})
	if err != nil {
		return "", err
	}
	return record.SecondName, nil
}

func (s *IdentityContract) UpdateSurname(ctx contractapi.TransactionContextInterface, surname string) (string, error) {
	record, err := s.requireOwner(ctx, "UpdateSurname")
	if err != nil {
		return "", err
	}
	if err := validateRequiredName(surname, "surname"); err != nil {
		return "", fmt.Errorf("UpdateSurname: %w", err)
	}
	if surname == record.Surname {
		return "", fmt.Errorf("UpdateSurname: %w", ErrNoOpRejected)
	}

	oldSurname := record.Surname
	record.Surname = surname
	err = s.commitUpdate(ctx, "UpdateSurname", record, model.EventSurnameUpdated, func(meta model.EventMeta) interface{} {
		return model.SurnameUpdatedEvent{OldSurname: oldSurname, NewSurname: surname, EventMeta: meta}
	})
	if err != nil {
		return "", err
	}
	return record.Surname, nil
}

func (s *IdentityContract) UpdateBirth(ctx contractapi.TransactionContextInterface, birth int64) (int64, error) {
	record, err := s.requireOwner(ctx, "UpdateBirth")
	if err != nil {
		return 0, err
	}
	if err := validateBirth(birth); err != nil {
		return 0, fmt.Errorf("UpdateBirth: %w", err)
	}
	if birth == record.Birth {
		return 0, fmt.Errorf("UpdateBirth: %w", ErrNoOpRejected)
	}

	oldBirth := record.Birth
	record.Birth = birth
	err = s.commitUpdate(ctx, "UpdateBirth", record, model.EventBirthUpdated, func(meta model.EventMeta) interface{} {
		return model.BirthUpdatedEvent{OldBirth: oldBirth, NewBirth: birth, EventMeta: meta}
	})
	if err != nil {
		return 0, err
	}
	return record.Birth, nil
}

// commitUpdate sets the field's event, then persists the already-guarded record.
func (s *IdentityContract) commitUpdate(ctx contractapi.TransactionContextInterface, op string,
	record *model.IdentityRecord, eventName string, buildEvent func(model.EventMeta) interface{}) error {

	now, err := getCurrentTxTimestamp(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := emitEvent(ctx, eventName, buildEvent(eventMeta(ctx, now))); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.putIdentityRecord(ctx, record); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	logger.Infof("%s: identity record updated by owner, event '%s' emitted", op, eventName)
	return nil
}
