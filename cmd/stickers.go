package cmd

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/marcus/floatmenu/internal/config"
	"github.com/marcus/floatmenu/internal/stickers"
	"github.com/marcus/floatmenu/pkg/floatmenu/position"
	"github.com/marcus/floatmenu/pkg/floatmenu/theme"
)

var stickersCmd = &cobra.Command{
	Use:   "stickers",
	Short: "Browse sticker packs with row menus",
	Long: `Open an in-memory sticker pack manager. Every row has a floating menu.

Keys: j/k or arrows move, enter or space opens the row menu, / filters,
esc closes, q quits. Click a row's trigger to open its menu at the pointer.`,
	GroupID: "demo",
	RunE:    runStickers,
}

func init() {
	rootCmd.AddCommand(stickersCmd)
	addStickerFlags(stickersCmd.Flags())
}

func addStickerFlags(flags *pflag.FlagSet) {
	flags.String("theme", "", "Theme: default, light or dark")
	flags.String("locale", "", "Message locale (e.g. en, de)")
	flags.String("placement", "", "Panel placement (e.g. top-start, bottom-end)")
	flags.String("strategy", "", "Position strategy: fixed or absolute")
	flags.Bool("hints", false, "Show keyboard hints in open menus")
}

// stickerOptions resolves config, env and flags into list options.
// Priority: flags > env > project config.
func stickerOptions(dir string, flags *pflag.FlagSet) (stickers.Options, error) {
	cfg, err := config.Resolve(dir)
	if err != nil {
		return stickers.Options{}, err
	}

	for _, name := range []string{"theme", "locale", "placement", "strategy"} {
		if !flags.Changed(name) {
			continue
		}
		v, _ := flags.GetString(name)
		if err := cfg.Set(name, v); err != nil {
			return stickers.Options{}, fmt.Errorf("--%s: %w", name, err)
		}
	}
	if flags.Changed("hints") {
		cfg.ShowHints, _ = flags.GetBool("hints")
	}

	if err := cfg.Validate(); err != nil {
		return stickers.Options{}, err
	}
	th, _ := theme.Parse(cfg.Theme)
	placement, _ := position.ParsePlacement(cfg.Placement)
	strategy, _ := position.ParseStrategy(cfg.Strategy)

	return stickers.Options{
		Theme:     th,
		Locale:    cfg.Locale,
		Placement: placement,
		Strategy:  strategy,
		ShowHints: cfg.ShowHints,
		Logger:    slog.Default(),
	}, nil
}

func runStickers(cmd *cobra.Command, args []string) error {
	opts, err := stickerOptions(getBaseDir(), cmd.Flags())
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stickers needs an interactive terminal")
	}

	model, err := stickers.New(opts)
	if err != nil {
		return err
	}

	slog.Info("stickers: start", "theme", opts.Theme.String(), "placement", string(opts.Placement), "strategy", string(opts.Strategy))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run stickers: %w", err)
	}
	return nil
}
