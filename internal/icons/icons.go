package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Deck           string
	Check          string
	Cross          string
	Skipped        string
	Marker         string
	Bullet         string
	ProgressFilled string
	ProgressEmpty  string
	Trophy         string
	Flame          string
	SoundOn        string
	SoundOff       string
}

var (
	nerdIcons = Icons{
		Deck:           " ", // nf-fa-book
		Check:          "",  // nf-fa-check
		Cross:          "",  // nf-fa-times
		Skipped:        "",  // nf-fa-ban
		Marker:         "",  // nf-fa-chevron_right
		Bullet:         "·",
		ProgressFilled: "▓",
		ProgressEmpty:  "░",
		Trophy:         " ", // nf-fa-trophy
		Flame:          " ", // nf-fa-fire
		SoundOn:        "",  // nf-fa-volume_up
		SoundOff:       "",  // nf-fa-volume_off
	}

	unicodeIcons = Icons{
		Deck:           "📚 ",
		Check:          "✓",
		Cross:          "✗",
		Skipped:        "⊘",
		Marker:         "❯",
		Bullet:         "·",
		ProgressFilled: "▓",
		ProgressEmpty:  "░",
		Trophy:         "🏆 ",
		Flame:          "🔥 ",
		SoundOn:        "🔊",
		SoundOff:       "🔇",
	}

	noneIcons = Icons{
		Deck:           "",
		Check:          "+",
		Cross:          "x",
		Skipped:        "-",
		Marker:         ">",
		Bullet:         "-",
		ProgressFilled: "#",
		ProgressEmpty:  "-",
		Trophy:         "",
		Flame:          "",
		SoundOn:        "[snd]",
		SoundOff:       "[mute]",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatDeck formats a deck title with the appropriate icon.
func FormatDeck(title string) string {
	if current == noneIcons {
		return title
	}
	return current.Deck + title
}

// Check returns the correct-answer indicator.
func Check() string {
	return current.Check
}

// Cross returns the wrong-answer indicator.
func Cross() string {
	return current.Cross
}

// Skipped returns the skipped-question indicator.
func Skipped() string {
	return current.Skipped
}

// Marker returns the selected-option marker.
func Marker() string {
	return current.Marker
}

// Bullet returns the unselected-option marker.
func Bullet() string {
	return current.Bullet
}

// ProgressFilled returns the filled progress bar cell.
func ProgressFilled() string {
	return current.ProgressFilled
}

// ProgressEmpty returns the empty progress bar cell.
func ProgressEmpty() string {
	return current.ProgressEmpty
}

// Trophy returns the score icon for the results report.
func Trophy() string {
	return current.Trophy
}

// Flame returns the streak icon.
func Flame() string {
	return current.Flame
}

// SoundOn returns the sound-enabled indicator.
func SoundOn() string {
	return current.SoundOn
}

// SoundOff returns the muted indicator.
func SoundOff() string {
	return current.SoundOff
}
