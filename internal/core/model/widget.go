package model

// FileEvent represents a change to a watched file
type FileEvent struct {
	Path      string
	Operation string
}

// InteractionState represents the current UI interaction state
type InteractionState struct {
	IsPaused      bool
	ShowHelp      bool
	ForcedSize    *SizeClass // nil means measure the terminal
	StatusMessage string     // Status message to display
}

// LayoutParam carries render-time settings that are not part of an entry
type LayoutParam struct {
	Width      int
	Height     int
	Timezone   string
	TimeFormat string
}
