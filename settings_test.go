package samples

import (
	"image/color"
	"testing"
)

func TestWithSettingsDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want Settings
	}{
		{
			name: "zero camera values use defaults",
			in:   Settings{ClearColor: color.RGBA{R: 1, A: 255}},
			want: Settings{ClearColor: color.RGBA{R: 1, A: 255}, CameraSensitivity: 1, CameraMoveSpeed: 1},
		},
		{
			name: "negative values use defaults",
			in:   Settings{CameraSensitivity: -2, CameraMoveSpeed: 4},
			want: Settings{CameraSensitivity: 1, CameraMoveSpeed: 4},
		},
		{
			name: "positive values kept",
			in:   Settings{CameraSensitivity: 0.5, CameraMoveSpeed: 3},
			want: Settings{CameraSensitivity: 0.5, CameraMoveSpeed: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewApp(nil, Definition{Name: "x"}, WithSettings(tt.in))
			if a.opts.settings != tt.want {
				t.Errorf("settings = %+v, want %+v", a.opts.settings, tt.want)
			}
		})
	}
}

func TestDefaultSettingsWithoutOption(t *testing.T) {
	a := NewApp(nil, Definition{Name: "x"})
	if a.opts.settings != DefaultSettings() {
		t.Errorf("settings = %+v, want %+v", a.opts.settings, DefaultSettings())
	}
	if a.opts.settings.ClearColor.A != 0xff {
		t.Errorf("default clear color %v is not opaque", a.opts.settings.ClearColor)
	}
}
