package command

import (
	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
)

// ClearWord is the command word.
const ClearWord = "clear"

// MessageCleared is the clear feedback.
const MessageCleared = "Address book has been cleared!"

// Clear removes every student and lesson.
type Clear struct{}

// Execute implements Command.
func (Clear) Execute(m model.Model) (*Result, error) {
	if err := m.SetAddressBook(addressbook.New()); err != nil {
		return nil, err
	}
	return &Result{Feedback: MessageCleared, RefreshView: true}, nil
}
