package input

// IntentType is the semantic action a key resolves to
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit
	IntentPause
	IntentToggleMute
	IntentToggleDust
	IntentToggleHelp

	// Schedule
	IntentClear
	IntentModeNone
	IntentModeRandom
	IntentModeOrigin
	IntentModeDestination
	IntentModePair

	// Prompts
	IntentSearchOpen
	IntentLaunchOpen
	IntentPromptSubmit
	IntentPromptCancel

	// Camera
	IntentRotateLeft
	IntentRotateRight
	IntentRotateUp
	IntentRotateDown
	IntentZoomIn
	IntentZoomOut
	IntentResetView
)

// PromptKind identifies which prompt collected a submitted line
type PromptKind uint8

const (
	PromptNone PromptKind = iota
	PromptSearch
	PromptLaunch
)

// Intent is a resolved input action with an optional payload
type Intent struct {
	Type   IntentType
	Prompt PromptKind
	Text   string
}
