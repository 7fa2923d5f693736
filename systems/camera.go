package systems

import (
	"math"

	"github.com/automoto/hitgrid/components"
	"github.com/automoto/hitgrid/config"
	"github.com/automoto/hitgrid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	// Get level dimensions for camera bounds
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(body.Velocity().X.Float()) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := float64(player.Facing) * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	// Follow the center of the player's locator
	center := body.Locator().Bounds().Center()
	targetX := center.X.Float() + camera.LookAheadX
	targetY := center.Y.Float()

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.MapWidth)
	levelHeight := float64(levelData.CurrentLevel.MapHeight)

	// Camera bounds: ensure the level always fills the screen
	minCameraX := screenWidth / 2
	maxCameraX := math.Max(minCameraX, levelWidth-screenWidth/2)
	minCameraY := screenHeight / 2
	maxCameraY := math.Max(minCameraY, levelHeight-screenHeight/2)

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// updateScreenShake sets the shake offset of the camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Shake.X, camera.Shake.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	camera.Shake.X = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Shake.Y = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}
