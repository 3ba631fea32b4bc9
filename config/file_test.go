package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name       string
		createFile bool
		content    string
		wantErr    string
		validate   func(t *testing.T, f *File)
	}{
		{
			name:       "partial override keeps defaults",
			createFile: true,
			content: `gravity:
  force: 150000
player:
  jump_impulse: 12000
`,
			validate: func(t *testing.T, f *File) {
				if f.Gravity.Force != 150000 {
					t.Errorf("Gravity.Force = %v, want 150000", f.Gravity.Force)
				}
				if f.Player.JumpImpulse != 12000 {
					t.Errorf("Player.JumpImpulse = %v, want 12000", f.Player.JumpImpulse)
				}
				if f.Player.HalfHeight != Player.HalfHeight {
					t.Errorf("Player.HalfHeight = %v, want default %v", f.Player.HalfHeight, Player.HalfHeight)
				}
				if f.Planet.Radius != Planet.Radius {
					t.Errorf("Planet.Radius = %v, want default %v", f.Planet.Radius, Planet.Radius)
				}
			},
		},
		{
			name:       "empty file is all defaults",
			createFile: true,
			content:    "",
			validate: func(t *testing.T, f *File) {
				if f.Bullet != Bullet {
					t.Errorf("Bullet = %+v, want %+v", f.Bullet, Bullet)
				}
			},
		},
		{
			name:       "missing file",
			createFile: false,
			wantErr:    "no such file",
		},
		{
			name:       "malformed yaml",
			createFile: true,
			content:    "planet: [radius",
			wantErr:    "parse",
		},
		{
			name:       "non-positive radius",
			createFile: true,
			content:    "planet:\n  radius: 0\n",
			wantErr:    "planet.radius",
		},
		{
			name:       "atmosphere inside planet",
			createFile: true,
			content:    "planet:\n  atmosphere_scale: 0.5\n",
			wantErr:    "atmosphere_scale",
		},
		{
			name:       "inverted zoom range",
			createFile: true,
			content:    "camera:\n  min_scale: 2\n  max_scale: 1\n",
			wantErr:    "camera scale range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tunables.yaml")
			if tt.createFile {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatalf("write: %v", err)
				}
			}

			f, err := LoadFile(path)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("LoadFile() error = nil, want %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadFile() error = %q, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			tt.validate(t, f)
		})
	}
}

func TestFileApply(t *testing.T) {
	saved := Gravity
	t.Cleanup(func() { Gravity = saved })

	f := &File{Planet: Planet, Gravity: GravityConfig{Force: 42}, Player: Player, Bullet: Bullet, Camera: Camera}
	f.Apply()

	if Gravity.Force != 42 {
		t.Fatalf("Gravity.Force = %v after Apply, want 42", Gravity.Force)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in     string
		want   Variant
		wantOK bool
	}{
		{"twin", VariantTwin, true},
		{"rich", VariantTwin, true},
		{"", VariantTwin, true},
		{"home", VariantHome, true},
		{"simple", VariantHome, true},
		{"moon", VariantTwin, false},
	}
	for _, tt := range tests {
		got, ok := ParseVariant(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseVariant(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
