package tui

// Stage identifies which screen the shell is showing. The flow is
// Initial -> Title -> {Settings, Infos, Game} -> Title, and End quits.
type Stage int

const (
	StageInitial Stage = iota
	StageTitle
	StageSettings
	StageInfos
	StageGame
	StageEnd
)

// String returns the stage name for logging.
func (s Stage) String() string {
	switch s {
	case StageInitial:
		return "initial"
	case StageTitle:
		return "title"
	case StageSettings:
		return "settings"
	case StageInfos:
		return "infos"
	case StageGame:
		return "game"
	case StageEnd:
		return "end"
	default:
		return "unknown"
	}
}
