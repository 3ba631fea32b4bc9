package components

import (
	cfg "github.com/automoto/gravwalk/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during a tick (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
