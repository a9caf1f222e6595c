package contract

import (
	"identityrecord/model"
)

func (s *IdentityContractSuite) TestUpdateFirstName() {
	s.Run("owner changes the first name", func() {
		updated, err := s.contract.UpdateFirstName(s.invoke(ownerID), "Dieghito")
		s.Require().NoError(err)
		s.Equal("Dieghito", updated)

		var event model.FirstNameUpdatedEvent
		s.singleEvent(model.EventFirstNameUpdated, &event)
		s.Equal("Diego", event.OldFirstName)
		s.Equal("Dieghito", event.NewFirstName)
		s.NotEmpty(event.TxID)
	})

	s.Run("same value is rejected", func() {
		_, err := s.contract.UpdateFirstName(s.invoke(ownerID), "Dieghito")
		s.Require().ErrorIs(err, ErrNoOpRejected)
		s.Empty(s.stub.events)
	})

	s.Run("non-owner is rejected", func() {
		_, err := s.contract.UpdateFirstName(s.invoke(strangerID), "X")
		s.Require().ErrorIs(err, ErrUnauthorized)
		s.Empty(s.stub.events)
	})

	s.Run("empty value is rejected", func() {
		_, err := s.contract.UpdateFirstName(s.invoke(ownerID), "")
		s.Require().ErrorIs(err, ErrInvalidInput)
	})

	s.Equal(model.IdentitySnapshot{
		FirstName:    "Dieghito",
		SecondName:   "Armando",
		Surname:      "Maradona",
		Birth:        maradonaBirth,
		CreationTime: s.created,
	}, s.snapshot())
}

func (s *IdentityContractSuite) TestUpdateSecondName() {
	s.Run("owner may clear the second name", func() {
		updated, err := s.contract.UpdateSecondName(s.invoke(ownerID), "")
		s.Require().NoError(err)
		s.Equal("", updated)

		var event model.SecondNameUpdatedEvent
		s.singleEvent(model.EventSecondNameUpdated, &event)
		s.Equal("Armando", event.OldSecondName)
		s.Equal("", event.NewSecondName)
	})

	s.Run("clearing twice is a no-op", func() {
		_, err := s.contract.UpdateSecondName(s.invoke(ownerID), "")
		s.Require().ErrorIs(err, ErrNoOpRejected)
	})

	s.Run("oversized value is rejected", func() {
		_, err := s.contract.UpdateSecondName(s.invoke(ownerID), "abcdefghijklmnopqrstuvwxyz0123456")
		s.Require().ErrorIs(err, ErrInvalidInput)
	})

	s.Run("non-owner is rejected", func() {
		_, err := s.contract.UpdateSecondName(s.invoke(strangerID), "Armandito")
		s.Require().ErrorIs(err, ErrUnauthorized)
	})

	s.Equal("", s.snapshot().SecondName)
}

func (s *IdentityContractSuite) TestUpdateSurname() {
	s.Run("owner changes the surname", func() {
		updated, err := s.contract.UpdateSurname(s.invoke(ownerID), "Franco")
		s.Require().NoError(err)
		s.Equal("Franco", updated)

		var event model.SurnameUpdatedEvent
		s.singleEvent(model.EventSurnameUpdated, &event)
		s.Equal("Maradona", event.OldSurname)
		s.Equal("Franco", event.NewSurname)
	})

	s.Run("same value is rejected", func() {
		_, err := s.contract.UpdateSurname(s.invoke(ownerID), "Franco")
		s.Require().ErrorIs(err, ErrNoOpRejected)
	})

	s.Run("empty value is rejected", func() {
		_, err := s.contract.UpdateSurname(s.invoke(ownerID), "")
		s.Require().ErrorIs(err, ErrInvalidInput)
	})

	s.Run("non-owner is rejected", func() {
		_, err := s.contract.UpdateSurname(s.invoke(strangerID), "Other")
		s.Require().ErrorIs(err, ErrUnauthorized)
	})

	snapshot := s.snapshot()
	s.Equal("Franco", snapshot.Surname)
	s.Equal("Diego", snapshot.FirstName)
}

func (s *IdentityContractSuite) TestUpdateBirth() {
	newBirth := maradonaBirth + 86400

	s.Run("owner changes the birth", func() {
		updated, err := s.contract.UpdateBirth(s.invoke(ownerID), newBirth)
		s.Require().NoError(err)
		s.Equal(newBirth, updated)

		var event model.BirthUpdatedEvent
		s.singleEvent(model.EventBirthUpdated, &event)
		s.Equal(maradonaBirth, event.OldBirth)
		s.Equal(newBirth, event.NewBirth)
	})

	s.Run("same value is rejected", func() {
		_, err := s.contract.UpdateBirth(s.invoke(ownerID), newBirth)
		s.Require().ErrorIs(err, ErrNoOpRejected)
	})

	s.Run("zero is rejected", func() {
		_, err := s.contract.UpdateBirth(s.invoke(ownerID), 0)
		s.Require().ErrorIs(err, ErrInvalidInput)
	})

	s.Run("non-owner is rejected", func() {
		_, err := s.contract.UpdateBirth(s.invoke(strangerID), 1)
		s.Require().ErrorIs(err, ErrUnauthorized)
	})

	s.Equal(newBirth, s.snapshot().Birth)
}

// Guards run in order: a non-owner submitting an invalid or unchanged value
// still gets ErrUnauthorized.
func (s *IdentityContractSuite) TestOwnerGuardRunsFirst() {
	_, err := s.contract.UpdateFirstName(s.invoke(strangerID), "")
	s.Require().ErrorIs(err, ErrUnauthorized)

	_, err = s.contract.UpdateBirth(s.invoke(strangerID), maradonaBirth)
	s.Require().ErrorIs(err, ErrUnauthorized)

	_, err = s.contract.UpdateSurname(s.invoke(ownerID), "")
	s.Require().ErrorIs(err, ErrInvalidInput)
	s.NotErrorIs(err, ErrNoOpRejected)
}

func (s *IdentityContractSuite) TestCreationTimeSurvivesUpdates() {
	_, err := s.contract.UpdateFirstName(s.invoke(ownerID), "Dieghito")
	s.Require().NoError(err)
	_, err = s.contract.UpdateSecondName(s.invoke(ownerID), "")
	s.Require().NoError(err)
	_, err = s.contract.UpdateSurname(s.invoke(ownerID), "Franco")
	s.Require().NoError(err)
	_, err = s.contract.UpdateBirth(s.invoke(ownerID), 1)
	s.Require().NoError(err)

	creationTime, err := s.contract.CreationTime(s.invoke(strangerID))
	s.Require().NoError(err)
	s.Equal(s.created, creationTime)
	s.Greater(s.stub.txTime.Unix(), s.created)
}

func (s *IdentityContractSuite) TestFailedEventAbortsUpdate() {
	s.stub.failEvent = true
	_, err := s.contract.UpdateFirstName(s.invoke(ownerID), "Dieghito")
	s.stub.failEvent = false

	s.Require().Error(err)
	s.Empty(s.stub.events)
	s.Equal("Diego", s.snapshot().FirstName)

	history, err := s.contract.GetIdentityHistory(s.invoke(strangerID))
	s.Require().NoError(err)
	s.Len(history, 1)
}

func (s *IdentityContractSuite) TestWhitespaceNamesAreValues() {
	updated, err := s.contract.UpdateFirstName(s.invoke(ownerID), " ")
	s.Require().NoError(err)
	s.Equal(" ", updated)

	_, err = s.contract.UpdateSurname(s.invoke(ownerID), "  ")
	s.Require().NoError(err)

	snapshot := s.snapshot()
	s.Equal(" ", snapshot.FirstName)
	s.Equal("  ", snapshot.Surname)
}

func (s *IdentityContractSuite) TestUpdatesRequireRecord() {
	stub := newRecordingStub()
	stub.startTx()
	_, err := NewIdentityContract().UpdateFirstName(newTxContext(stub, ownerID), "Diego")
	s.Require().ErrorIs(err, ErrNotInitialized)
}
