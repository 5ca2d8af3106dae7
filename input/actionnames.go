package input

// actionRegistry maps canonical action names to intents
// Used by the key config loader to resolve TOML action strings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":          IntentQuit,
	"pause":         IntentPause,
	"toggle_mute":   IntentToggleMute,
	"toggle_dust":   IntentToggleDust,
	"toggle_help":   IntentToggleHelp,
	"clear":         IntentClear,
	"mode_none":     IntentModeNone,
	"mode_random":   IntentModeRandom,
	"mode_origin":   IntentModeOrigin,
	"mode_dest":     IntentModeDestination,
	"mode_pair":     IntentModePair,
	"search":        IntentSearchOpen,
	"launch":        IntentLaunchOpen,
	"rotate_left":   IntentRotateLeft,
	"rotate_right":  IntentRotateRight,
	"rotate_up":     IntentRotateUp,
	"rotate_down":   IntentRotateDown,
	"zoom_in":       IntentZoomIn,
	"zoom_out":      IntentZoomOut,
	"reset_view":    IntentResetView,
}

// ActionIntent resolves an action name
func ActionIntent(name string) (IntentType, bool) {
	it, ok := actionRegistry[name]
	return it, ok
}

// ActionName returns the canonical name of an intent, empty if it has none
func ActionName(it IntentType) string {
	for name, v := range actionRegistry {
		if v == it && name != "none" {
			return name
		}
	}
	return ""
}
