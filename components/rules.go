package components

import (
	cfg "github.com/automoto/gravwalk/config"
	"github.com/yohamta/donburi"
)

// RulesData selects the variant the scene was built for (singleton component).
type RulesData struct {
	Variant cfg.Variant
}

var Rules = donburi.NewComponentType[RulesData]()

// DebugData toggles the profiling overlay (singleton component).
type DebugData struct {
	Visible bool
}

var Debug = donburi.NewComponentType[DebugData]()
