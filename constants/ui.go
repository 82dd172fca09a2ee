package constants

// Menu and Settings
const (
	MenuOptionCount     = 3
	SettingsOptionCount = 3
	DifficultyCount     = 4

	// DefaultDifficultyCursor is the cursor position on entering difficulty select
	DefaultDifficultyCursor = 1

	VolumeStep    = 10
	VolumeMin     = 0
	VolumeMax     = 100
	DefaultVolume = 50
)

// Dialogue Typewriter
const (
	// TypewriterPacing is the number of ticks that must elapse before a reveal
	TypewriterPacing = 2

	// TypewriterBlipOdds is the 1-in-N chance of a blip per revealed character
	TypewriterBlipOdds = 3

	// DialogueWrapWidth is the column budget for wrapped dialogue text
	DialogueWrapWidth = 60
	// DialogueMaxLines is the number of wrapped lines shown in the box
	DialogueMaxLines = 4
)

// Presentation
const (
	// ExpressionDisplayFrames is how long a new expression line stays visible
	ExpressionDisplayFrames = 180

	// HP bar color thresholds
	HPHealthyMin = 51
	HPWarningMin = 26
)

// Keyboard hold emulation: terminals report presses, never releases
const (
	// KeyHoldFrames keeps a paddle direction active after the last press
	KeyHoldFrames = 6
)

// Terminal Layout (cells)
const (
	MinScreenWidth  = 40
	MinScreenHeight = 16

	HPBarWidth         = 20
	ConfidenceBarWidth = 20

	// PortraitPanelWidth is the side panel reserved for the opponent portrait during a match
	PortraitPanelWidth = 16
	// PortraitPanelMinScreenWidth is the narrowest screen that still gets the panel
	PortraitPanelMinScreenWidth = 72

	// FixedDialogueHeight is the box height of the fixed dialogue layout, borders included
	FixedDialogueHeight = 4
)
