package systems

import (
	"math"

	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player, eases wheel zoom and applies screen shake.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateZoom(e, camera)
	updateScreenShake(cameraEntry, camera)

	if !cfg.Camera.FollowPlayer {
		return
	}
	w, ok := getWorld(e)
	if !ok {
		return
	}
	_, body, ok := playerBody(e, w)
	if !ok {
		return
	}
	target := body.Position()
	camera.Position.X += (target.X - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * cfg.Camera.FollowSmoothing
}

func updateZoom(e *ecs.ECS, camera *components.CameraData) {
	if inputEntry, ok := components.Input.First(e.World); ok {
		if wheel := components.Input.Get(inputEntry).Wheel; wheel != 0 {
			camera.Target = ZoomTarget(camera.Target, wheel)
			camera.Zoom = gween.New(float32(camera.Scale), float32(camera.Target), cfg.Camera.ZoomDuration, ease.OutQuad)
		}
	}
	if camera.Zoom == nil {
		return
	}
	scale, finished := camera.Zoom.Update(float32(getClock(e).Delta))
	camera.Scale = float64(scale)
	if finished {
		camera.Scale = camera.Target
		camera.Zoom = nil
	}
}

// ZoomTarget returns the scale after wheel notches; scrolling up zooms in.
// The result stays within the configured scale range.
func ZoomTarget(current, wheel float64) float64 {
	target := current * (1 - wheel*cfg.Camera.ZoomStep)
	return math.Max(cfg.Camera.MinScale, math.Min(cfg.Camera.MaxScale, target))
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	intensity := shake.Intensity * progress * camera.Scale

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * intensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * intensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake, keeping a stronger one in progress.
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
