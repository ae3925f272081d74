package tui

type ModalType int

const (
	ModalNone ModalType = iota
	ModalTaskCreate
	ModalTaskEdit
	ModalTaskDelete
)

type ModalState interface {
	Type() ModalType
}

// TaskCreateState creates a task in Column.
type TaskCreateState struct {
	Column int
}

func (s *TaskCreateState) Type() ModalType { return ModalTaskCreate }

type TaskEditState struct {
	TaskID string
}

func (s *TaskEditState) Type() ModalType { return ModalTaskEdit }

type TaskDeleteState struct {
	TaskID string
	Title  string
}

func (s *TaskDeleteState) Type() ModalType { return ModalTaskDelete }
