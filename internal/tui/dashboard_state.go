package tui

import (
	"github.com/akyairhashvil/taskboard/internal/config"
	"github.com/charmbracelet/bubbles/textinput"
)

// ViewState tracks cursor focus for the board and the table.
type ViewState struct {
	mode       int
	focusedCol int
	focusedIdx int
	tableRow   int
	// hoverCol and hoverIdx are the keyboard drag pointer. hoverIdx -1 means
	// the column itself rather than a card in it.
	hoverCol int
	hoverIdx int
}

func newViewState() *ViewState {
	return &ViewState{
		mode:       config.ViewModeBoard,
		focusedCol: config.DefaultFocusColumn,
		hoverIdx:   -1,
	}
}

// ModalManager tracks the open modal, if any.
type ModalManager struct {
	current ModalState
}

func newModalManager() *ModalManager {
	return &ModalManager{}
}

func (m *ModalManager) IsOpen() bool {
	return m.current != nil
}

func (m *ModalManager) Current() ModalState {
	return m.current
}

func (m *ModalManager) Open(state ModalState) {
	m.current = state
}

func (m *ModalManager) Close() {
	m.current = nil
}

func (m *ModalManager) Is(t ModalType) bool {
	return m.current != nil && m.current.Type() == t
}

// InputState stores the text input used by the create and edit prompts.
type InputState struct {
	textInput textinput.Model
}

func newInputState() *InputState {
	ti := textinput.New()
	ti.CharLimit = config.MaxTitleLength
	ti.Width = 40
	return &InputState{textInput: ti}
}
