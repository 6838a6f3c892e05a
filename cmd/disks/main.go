// cmd/disks/main.go

// disks renders a bouncing-disk point-sprite animation in a window.
//
// Usage:
//
//	disks [flags]
//
// Flags:
//
//	--config <path>  - Options file (YAML); defaults overlay absent fields
//	--seed <value>   - RNG seed for reproducible runs (0 = time-based)
//	--num <n>        - Number of disks
//	--width <px>     - Viewport width
//	--height <px>    - Viewport height
//	--size <px>      - Disk size (point-sprite size and collision radius)
//	--title <text>   - Window title (the target surface identifier)
package main

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-bouncing-disks/internal/app"
	"go-bouncing-disks/internal/config"
	"go-bouncing-disks/internal/utils"
)

var (
	flagConfig string
	flagSeed   int64
	flagNum    int
	flagWidth  int
	flagHeight int
	flagSize   float64
	flagTitle  string
)

// AppGame adapts the Screen to ebiten's loop. DoFrame runs from Draw so the
// simulation step and the draw call for a tick stay together; Update only
// services host input.
type AppGame struct {
	screen  *app.Screen
	hud     *app.HUD
	diskNum int
}

func (a *AppGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(dst *ebiten.Image) {
	a.screen.DoFrame(dst)
	a.hud.Draw(dst, a.diskNum)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screen.Size()
}

var rootCmd = &cobra.Command{
	Use:   "disks",
	Short: "Bouncing-disk point-sprite animation",
	Long: `disks simulates a population of disks bouncing inside a viewport and
renders them as circular point sprites through a GPU shader pipeline.

Examples:
  disks
  disks --num 500 --size 12
  disks --config configs/disks.yaml --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, &opts)

		rng := utils.NewPRNGService(opts.Seed)
		screen, err := app.NewScreen(opts, rng)
		if err != nil {
			return err
		}
		hud, err := app.NewHUD()
		if err != nil {
			return err
		}

		app.Greet(opts.Title)
		ebiten.SetWindowSize(opts.Width, opts.Height)
		ebiten.SetWindowTitle(opts.Title)
		game := &AppGame{screen: screen, hud: hud, diskNum: opts.DiskNum}
		if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
			return err
		}
		return nil
	},
}

// applyFlagOverrides lets explicitly set flags win over the options file.
// The title flag also fills in the default when neither file nor flag set one.
func applyFlagOverrides(cmd *cobra.Command, opts *config.Options) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		opts.Seed = flagSeed
	}
	if flags.Changed("num") {
		opts.DiskNum = flagNum
	}
	if flags.Changed("width") {
		opts.Width = flagWidth
	}
	if flags.Changed("height") {
		opts.Height = flagHeight
	}
	if flags.Changed("size") {
		opts.DiskSize = flagSize
	}
	if flags.Changed("title") || opts.Title == "" {
		opts.Title = flagTitle
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to options file (YAML)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().IntVar(&flagNum, "num", config.DefaultDiskNum, "Number of disks")
	rootCmd.Flags().IntVar(&flagWidth, "width", config.DefaultWidth, "Viewport width in pixels")
	rootCmd.Flags().IntVar(&flagHeight, "height", config.DefaultHeight, "Viewport height in pixels")
	rootCmd.Flags().Float64Var(&flagSize, "size", config.DefaultDiskSize, "Disk size in pixels")
	rootCmd.Flags().StringVar(&flagTitle, "title", "Bouncing Disks", "Window title")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
