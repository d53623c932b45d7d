package interaction

// Action is what the widget does in response to a key
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionRefresh
	ActionToggleCaption
	ActionCycleSize
	ActionTogglePause
	ActionToggleHelp
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionRefresh:
		return "refresh"
	case ActionToggleCaption:
		return "toggle_caption"
	case ActionCycleSize:
		return "cycle_size"
	case ActionTogglePause:
		return "toggle_pause"
	case ActionToggleHelp:
		return "toggle_help"
	default:
		return "none"
	}
}

// ActionFor maps a key event to a widget action
func ActionFor(event KeyEvent) Action {
	switch event.Type {
	case KeyEscape, KeyInterrupt:
		return ActionQuit
	}

	switch event.Key {
	case 'q', 'Q':
		return ActionQuit
	case 'r', 'R':
		return ActionRefresh
	case 'c', 'C':
		return ActionToggleCaption
	case 's', 'S':
		return ActionCycleSize
	case 'p', 'P':
		return ActionTogglePause
	case 'h', 'H', '?':
		return ActionToggleHelp
	default:
		return ActionNone
	}
}

// HelpLines describes the key bindings
func HelpLines() []string {
	return []string{
		"q / Esc   quit",
		"r         refresh now",
		"c         toggle caption",
		"s         cycle size class",
		"p         pause automatic refresh",
		"h         toggle this help",
	}
}
