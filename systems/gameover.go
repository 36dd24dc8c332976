package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/fonts"
	"github.com/automoto/foolrunner/hazard"
	"github.com/automoto/foolrunner/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const (
	gameOverTitleY       = 150
	gameOverStatsY       = 210
	gameOverMenuStartY   = 300.0
	gameOverItemHeight   = 24.0
	gameOverItemGap      = 14.0
	gameOverOptionsCount = int(components.GameOverMenu) + 1
)

var gameOverOptions = []string{"Retry", "Main Menu"}

// NewUpdateGameOver drives the death overlay: the fade in, the death shake
// and the retry / menu choice. Retry respawns in place.
func NewUpdateGameOver(c cfg.Config, ctrl *physics.Controller, sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if CurrentState(e) != cfg.StateDead {
			return
		}
		over := GetOrCreateGameOver(e)
		dt := GetOrCreateClock(e).DT

		ready := true
		if over.Fade != nil {
			over.Alpha, ready = over.Fade.Update(float32(dt))
		}
		settleCamera(e, dt)

		// Menu input waits for the fade to finish.
		if !ready {
			return
		}

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			over.SelectedOption = components.GameOverOption(
				(int(over.SelectedOption) - 1 + gameOverOptionsCount) % gameOverOptionsCount,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			over.SelectedOption = components.GameOverOption(
				(int(over.SelectedOption) + 1) % gameOverOptionsCount,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch over.SelectedOption {
			case components.GameOverRetry:
				Respawn(e, c.Player, ctrl.DefaultRunSpeed())
				ChangeState(e, cfg.StatePlaying)
			case components.GameOverMenu:
				if ChangeState(e, cfg.StateMenu) {
					sceneChanger.ChangeScene(createMenuScene())
				}
			}
		}
	}
}

// settleCamera lets a death shake play out over the frozen body.
func settleCamera(e *ecs.ECS, dt float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	components.Camera.Get(cameraEntry).View.Update(components.Player.Get(playerEntry).Body.Box, 0, dt)
}

// Respawn revives the player at the level spawn moving at vx, snaps the
// camera and starts a new attempt.
func Respawn(e *ecs.ECS, player cfg.PlayerConfig, vx float64) {
	lvlEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(lvlEntry)
	p := components.Player.Get(playerEntry)

	hazard.Respawn(p.Body, lvl.Current, player, vx)
	p.Cause = hazard.CauseNone
	p.Pending = math.Vec2{}

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		components.Camera.Get(cameraEntry).View.Reset(p.Body.Box)
	}
	if runEntry, ok := components.Run.First(e.World); ok {
		components.Run.Get(runEntry).Tracker.Start(p.Body.Box.X)
	}
}

// NewDrawGameOver renders the death overlay in the palette's colors.
func NewDrawGameOver(colors cfg.ColorConfig) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if CurrentState(e) != cfg.StateDead {
			return
		}
		over := GetOrCreateGameOver(e)
		alpha := over.Alpha
		if over.Fade == nil {
			alpha = 1
		}

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.FillRect(
			screen,
			0, 0,
			float32(width), float32(height),
			fadeColor(colors.DeathBackground.Value(), alpha),
			false,
		)

		titleFont := fonts.Title.Get()
		title := "YOU DIED"
		titleWidth := len(title) * 20
		text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), gameOverTitleY, fadeColor(colors.TitleColor.Value(), alpha))

		statsFont := fonts.Regular.Get()
		normal := fadeColor(colors.TextColorNormal.Value(), alpha)
		selected := fadeColor(colors.TextColorSelected.Value(), alpha)
		lines := []string{
			causeLabel(over.Cause),
			fmt.Sprintf("Distance %.1f   Best %.1f", over.Distance, over.Best),
		}
		if over.NewBest {
			lines = append(lines, "NEW BEST!")
		}
		for i, line := range lines {
			lineWidth := len(line) * 8
			c := normal
			if i == 2 {
				c = selected
			}
			text.Draw(screen, line, statsFont, int((width-float64(lineWidth))/2), gameOverStatsY+i*24, c)
		}

		menuFont := fonts.Bold.Get()
		for i, option := range gameOverOptions {
			y := gameOverMenuStartY + float64(i)*(gameOverItemHeight+gameOverItemGap)

			textColor := normal
			if components.GameOverOption(i) == over.SelectedOption {
				textColor = selected
			}

			textWidth := len(option) * 12
			x := int((width - float64(textWidth)) / 2)
			text.Draw(screen, option, menuFont, x, int(y)+int(gameOverItemHeight), textColor)
		}

		input := getOrCreateInput(e)
		hint := getMenuHint(input.LastInputMethod)
		hintWidth := len(hint) * 7
		text.Draw(screen, hint, fonts.Small.Get(), int((width-float64(hintWidth))/2), int(height)-12, normal)
	}
}

func causeLabel(cause string) string {
	switch cause {
	case hazard.CauseHazard.String():
		return "Hit a hazard"
	case hazard.CauseFell.String():
		return "Fell out of the world"
	}
	return ""
}

// fadeColor scales a premultiplied color by alpha.
func fadeColor(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
