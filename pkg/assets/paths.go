// paths.go — Filesystem layout of inputs and outputs.
package assets

import "path/filepath"

// Paths is the resolved filesystem layout for one invocation.
type Paths struct {
	WorkDir    string
	InputDir   string // raw screenshots
	OutputDir  string
	Captions   string // JSON caption map
	Icon       string // app icon, optional
	Background string // mock screen background, optional
}

// DefaultPaths lays out inputs and outputs relative to workDir, with app
// resources looked up in the Android module two levels above it.
func DefaultPaths(workDir string) Paths {
	return PathsWithRes(workDir, filepath.Join(workDir, "..", "..", "app", "src", "main", "res"))
}

// PathsWithRes is DefaultPaths with an explicit Android res directory.
func PathsWithRes(workDir, resDir string) Paths {
	drawable := filepath.Join(resDir, "drawable")
	return Paths{
		WorkDir:    workDir,
		InputDir:   filepath.Join(workDir, "input"),
		OutputDir:  filepath.Join(workDir, "output"),
		Captions:   filepath.Join(workDir, "captions.json"),
		Icon:       filepath.Join(drawable, "app_icon.png"),
		Background: filepath.Join(drawable, "bg.png"),
	}
}

// FeatureGraphic is where the feature graphic is written.
func (p Paths) FeatureGraphic() string {
	return filepath.Join(p.OutputDir, "feature_graphic.png")
}

// ScreenshotsDir holds every generated phone screenshot.
func (p Paths) ScreenshotsDir() string {
	return filepath.Join(p.OutputDir, "screenshots")
}

// Screenshot is the output path for the phone screenshot called name.
func (p Paths) Screenshot(name string) string {
	return filepath.Join(p.ScreenshotsDir(), "phone_"+name+".png")
}
