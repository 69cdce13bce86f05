package command

import (
	"strings"

	"github.com/tutorhub/tutorhub/internal/application/model"
)

// Command words.
const (
	HelpWord = "help"
	ExitWord = "exit"
)

// Usage holds the syntax line of every command, keyed by command word.
var Usage = map[string]string{
	AddStudentWord:       "add_student n/NAME p/PHONE e/EMAIL a/ADDRESS s/SUBJECT [t/TAG]...",
	EditStudentWord:      "edit_student INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [s/SUBJECT] [t/TAG]...",
	DeleteStudentWord:    "delete_student INDEX",
	ListStudentsWord:     "list_students",
	FindStudentsWord:     "find_students KEYWORD [MORE_KEYWORDS]...",
	FilterStudentsWord:   "filter_students EXPRESSION",
	ClearWord:            "clear",
	AddLessonWord:        "add_lesson n/NAME d/DATE tm/TIME s/SUBJECT",
	EditLessonWord:       "edit_lesson INDEX [n/NAME] [d/DATE] [tm/TIME] [s/SUBJECT]",
	DeleteLessonWord:     "delete_lesson INDEX",
	ListLessonsWord:      "list_lessons [n/NAME] [d/DATE]",
	FilterLessonsWord:    "filter_lessons EXPRESSION",
	AddAssignmentWord:    "add_assignment INDEX as/ASSIGNMENT [d/DUE_DATE]",
	EditAssignmentWord:   "edit_assignment INDEX as/ASSIGNMENT [nas/NEW_NAME] [d/DUE_DATE]",
	DeleteAssignmentWord: "delete_assignment INDEX as/ASSIGNMENT",
	MarkAssignmentWord:   "mark_assignment INDEX as/ASSIGNMENT",
	UnmarkAssignmentWord: "unmark_assignment INDEX as/ASSIGNMENT",
	HelpWord:             "help",
	ExitWord:             "exit",
}

// helpOrder is the order commands appear in the help text.
var helpOrder = []string{
	AddStudentWord, EditStudentWord, DeleteStudentWord, ListStudentsWord, FindStudentsWord, FilterStudentsWord,
	AddLessonWord, EditLessonWord, DeleteLessonWord, ListLessonsWord, FilterLessonsWord,
	AddAssignmentWord, EditAssignmentWord, DeleteAssignmentWord, MarkAssignmentWord, UnmarkAssignmentWord,
	ClearWord, HelpWord, ExitWord,
}

// HelpText renders every command's syntax.
func HelpText() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, word := range helpOrder {
		b.WriteString("  ")
		b.WriteString(Usage[word])
		b.WriteString("\n")
	}
	b.WriteString("Dates are dd-MM-yyyy (yyyy-MM-dd is accepted), times are HH:mm.")
	return b.String()
}

// Help shows the command reference.
type Help struct{}

// Execute implements Command.
func (Help) Execute(model.Model) (*Result, error) {
	return &Result{Feedback: HelpText(), ShowHelp: true}, nil
}

// MessageExit is the exit feedback.
const MessageExit = "Exiting Address Book as requested ..."

// Exit ends the session.
type Exit struct{}

// Execute implements Command.
func (Exit) Execute(model.Model) (*Result, error) {
	return &Result{Feedback: MessageExit, Exit: true}, nil
}
