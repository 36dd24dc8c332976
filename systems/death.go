package systems

import (
	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/hazard"
	"github.com/automoto/foolrunner/storage"
	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	deathShakeIntensity = 6.0
	deathShakeDuration  = 0.35
	deathFadeDuration   = 0.4
)

// RunRecorder stores finished runs. *storage.Store satisfies it.
type RunRecorder interface {
	RecordRun(r storage.Run) (int64, error)
	BestDistance(level string) (float64, error)
}

// NewUpdateDeaths tests the player against the level's hazards and kill
// plane. A hit kills the body in the same step, ends the run and moves the
// game to Dead. recorder may be nil.
func NewUpdateDeaths(recorder RunRecorder) ecs.System {
	return func(e *ecs.ECS) {
		lvlEntry, ok := components.Level.First(e.World)
		if !ok {
			return
		}
		lvl := components.Level.Get(lvlEntry)

		components.Player.Each(e.World, func(entry *donburi.Entry) {
			p := components.Player.Get(entry)
			cause := lvl.Hazards.Apply(p.Body)
			if cause == hazard.CauseNone {
				return
			}
			p.Cause = cause
			handlePlayerDeath(e, lvl.Current.Name, cause, recorder)
		})
	}
}

func handlePlayerDeath(e *ecs.ECS, levelName string, cause hazard.Cause, recorder RunRecorder) {
	if camEntry, ok := components.Camera.First(e.World); ok {
		components.Camera.Get(camEntry).View.Shake(deathShakeIntensity, deathShakeDuration)
	}

	over := GetOrCreateGameOver(e)
	*over = components.GameOverData{
		SelectedOption: components.GameOverRetry,
		Cause:          cause.String(),
		Fade:           gween.New(0, 1, deathFadeDuration, ease.OutQuad),
	}

	if runEntry, ok := components.Run.First(e.World); ok {
		r := components.Run.Get(runEntry)
		result := r.Tracker.Result(levelName, cause.String())
		over.Distance = result.Distance
		over.NewBest = result.Distance > r.Best
		if over.NewBest {
			r.Best = result.Distance
		}
		over.Best = r.Best

		if recorder != nil {
			if _, err := recorder.RecordRun(result); err != nil {
				log.Warn("could not record run", "error", err)
			}
		}
		log.Info("run ended", "level", levelName, "cause", cause, "distance", result.Distance, "time", result.Duration)
	}

	ChangeState(e, cfg.StateDead)
}
