package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/gravwalk/config"
)

func TestEmbeddedLevels(t *testing.T) {
	l := NewLevelLoader()
	names := l.MustLoadLevels()
	if len(names) != 2 || names[0] != "home" || names[1] != "twin" {
		t.Fatalf("levels = %v, want [home twin]", names)
	}

	twin := l.MustLoadLevel("twin")
	if len(twin.Planets) != 2 {
		t.Errorf("twin planets = %d, want 2", len(twin.Planets))
	}
	if twin.Planets[1].X != 750 || twin.Planets[1].Y != 500 {
		t.Errorf("second planet at (%v, %v), want (750, 500)", twin.Planets[1].X, twin.Planets[1].Y)
	}

	home := l.MustLoadLevel("home")
	if len(home.Planets) != 1 || !home.Planets[0].Home || home.Planets[0].Atmosphere {
		t.Errorf("home planets = %+v, want one home planet without atmosphere", home.Planets)
	}
}

func TestMustLoadLevelPanicsOnUnknownLevel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLoadLevel did not panic for a missing level")
		}
	}()
	NewLevelLoader().MustLoadLevel("missing")
}

func TestSynthesizeTone(t *testing.T) {
	tone := cfg.ToneConfig{Frequency: 440, Duration: 0.01, Volume: 1}
	data := SynthesizeTone(tone, 44100)

	if len(data) != 441*4 {
		t.Fatalf("len = %d, want %d", len(data), 441*4)
	}
	left := binary.LittleEndian.Uint16(data[40:])
	right := binary.LittleEndian.Uint16(data[42:])
	if left != right {
		t.Errorf("channels differ at frame 10: %d vs %d", left, right)
	}
	if SynthesizeTone(cfg.ToneConfig{}, 44100) != nil {
		t.Error("zero-length tone produced samples")
	}
}
