package samples

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Settings are user preferences a sample reads when it is created.
// Samples get them from GraphicsContext.Settings.
type Settings struct {
	ClearColor        color.RGBA
	CameraSensitivity float32
	CameraMoveSpeed   float32
}

// DefaultSettings returns the settings used when WithSettings is not given.
func DefaultSettings() Settings {
	return Settings{
		ClearColor:        colornames.Black,
		CameraSensitivity: 1,
		CameraMoveSpeed:   1,
	}
}

// withDefaults replaces non-positive camera values with their defaults.
func (s Settings) withDefaults() Settings {
	def := DefaultSettings()
	if s.CameraSensitivity <= 0 {
		s.CameraSensitivity = def.CameraSensitivity
	}
	if s.CameraMoveSpeed <= 0 {
		s.CameraMoveSpeed = def.CameraMoveSpeed
	}
	return s
}
