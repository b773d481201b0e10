// Package assets generates Play Store marketing images: the feature graphic,
// post-processed phone screenshots and synthetic screens for every major app
// screen.
package assets

import (
	"image/color"

	"github.com/codzuregroup/storeart/pkg/generator"
)

// ── Fixed output geometry ──

const (
	FeatureWidth  = 1024
	FeatureHeight = 500

	ScreenWidth  = 1080
	ScreenHeight = 1920
)

// ── Brand ──

const (
	DefaultPrimary = "#4F46E5" // indigo
	DefaultAccent  = "#22D3EE" // cyan
	DefaultAppName = "Day Call"
	DefaultTagline = "Wake with vibes. Live with intention."
)

var (
	textLight   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	textSubtle  = color.NRGBA{R: 235, G: 235, B: 245, A: 255}
	letterboxBG = color.NRGBA{R: 10, G: 10, B: 20, A: 255}
)

// Palette holds the brand colors used uniformly across every generated image.
type Palette struct {
	Primary color.NRGBA
	Accent  color.NRGBA
}

// DefaultPalette is the indigo/cyan palette used when no colors are given.
func DefaultPalette() Palette {
	return Palette{
		Primary: generator.MustParseColor(DefaultPrimary),
		Accent:  generator.MustParseColor(DefaultAccent),
	}
}

// Brand is the textual and color identity of the app being marketed. Colors
// stay as hex strings until ResolvePalette validates them.
type Brand struct {
	AppName string `yaml:"app_name"`
	Tagline string `yaml:"tagline"`
	Primary string `yaml:"primary"`
	Accent  string `yaml:"accent"`
}

// DefaultBrand returns the built-in brand.
func DefaultBrand() Brand {
	return Brand{
		AppName: DefaultAppName,
		Tagline: DefaultTagline,
		Primary: DefaultPrimary,
		Accent:  DefaultAccent,
	}
}

// ── Captions ──

// CaptionMap maps a screenshot's base filename (without extension) to the
// caption drawn over it.
type CaptionMap map[string]string

// ── Screens ──

// ScreenDescriptor describes one synthetic marketing screenshot.
type ScreenDescriptor struct {
	ID       string
	Title    string
	Subtitle string
}

// Screens is the ordered set of synthetic screens, one per major app screen.
var Screens = []ScreenDescriptor{
	{"01_home", "Alarms", "Your alarms at a glance"},
	{"02_add_alarm", "Add Alarm", "Label, days, tones, challenges"},
	{"03_edit_alarm", "Edit Alarm", "Fine-tune time, repeat and vibe"},
	{"04_ring", "Wake Up Challenge", "Engage your brain to dismiss"},
	{"05_vibes", "Vibes", "Pick a vibe to match your morning"},
	{"06_todo", "Todos", "Plan your day with reminders"},
	{"07_add_todo", "Add Task", "Due date, reminders, recurrence"},
	{"08_completed", "Completed", "Celebrate what you've done"},
	{"09_settings", "Settings", "Reliability, sounds, preferences"},
	{"10_login", "Welcome", "Sign in to sync your experience"},
	{"11_splash", "Day Call", "Wake with vibes. Live with intention."},
}

// ScreenshotExtensions lists the raw screenshot formats picked up from the
// input directory, compared case-insensitively.
var ScreenshotExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}
