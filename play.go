package main

import (
	"errors"
	"image"

	"github.com/automoto/foolrunner/assets"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/fonts"
	"github.com/automoto/foolrunner/scenes"
	"github.com/automoto/foolrunner/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var flagLevel string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Opens the game window on the main menu. With --level, or with
debug.skip_menu set in the config, the run starts right away.

Examples:
  foolrunner play
  foolrunner play --level 02_caves`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level to start (skips the menu)")
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	width  int
	height int
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop after the current update.
func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, g.width, g.height)
	return g.width, g.height
}

func runPlay(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	machine := cfg.NewStateMachine(cfg.StateMenu)
	session, closeSession, err := newSession(c, machine)
	if err != nil {
		return err
	}
	defer closeSession()

	// Initialize persistence and load saved settings
	persistence, err := systems.OpenPersistence(appName)
	if err != nil {
		log.Warn("could not initialize persistence", "error", err)
	}
	session.Persistence = persistence
	session.Saved, _ = persistence.LoadSettings()
	if session.Saved == nil {
		session.Saved = &systems.SavedSettings{}
	}

	if c.Player.Sprite != "" {
		sprite, err := assets.LoadSprite(c.Player.Sprite, int(c.Player.Width), int(c.Player.Height))
		if err != nil {
			log.Warn("using placeholder player", "error", err)
		}
		session.Sprite = sprite
	}

	g := &Game{width: c.Display.Width, height: c.Display.Height}

	levelName := flagLevel
	if levelName == "" && c.Debug.SkipMenu {
		levelName = c.Level.Name
	}
	if flagLevel != "" || c.Debug.SkipMenu {
		index, err := levelIndex(session.Levels, levelName)
		if err != nil {
			return err
		}
		if err := machine.Transition(cfg.StatePlaying); err != nil {
			return err
		}
		g.scene = scenes.NewPlatformerScene(g, session, index)
	} else {
		g.scene = scenes.NewMenuScene(g, session)
	}

	ebiten.SetWindowSize(c.Display.Width, c.Display.Height)
	ebiten.SetWindowTitle(c.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(c.Display.TPS)
	ebiten.SetFullscreen(c.Display.Fullscreen || session.Saved.Fullscreen)

	log.Debug("starting", "levels", len(session.Levels), "width", c.Display.Width, "height", c.Display.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
