package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osmandemiroz/cram/internal/app"
	"github.com/osmandemiroz/cram/internal/chime"
	"github.com/osmandemiroz/cram/internal/config"
	"github.com/osmandemiroz/cram/internal/deck"
	"github.com/osmandemiroz/cram/internal/errmsg"
	"github.com/osmandemiroz/cram/internal/icons"
	"github.com/osmandemiroz/cram/internal/ui/styles"
)

// runTUI wires config, sound, and decks into the app model and runs the
// bubbletea program until the user quits or the context is canceled.
func runTUI(ctx context.Context, configPath, deckPath string, noSound bool) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}

	icons.Init(cfg.Icons)
	styles.SetTheme(cfg.Theme)

	snd := cfg.GetSoundConfig()
	sound := chime.New(snd.Enabled && !noSound, snd.Volume, logger)

	decks := deck.All(cfg.DeckDirs)
	logger.Debug("decks loaded", "count", len(decks))

	m := app.New(cfg, decks, sound, logger)
	if deckPath != "" {
		d, loadErr := deck.Load(deckPath)
		if loadErr != nil {
			return loadErr
		}
		m = m.StartDeck(*d)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, runErr := p.Run(); runErr != nil {
		// A canceled context surfaces as a killed program; report the
		// cancellation itself so main can map it to exit 130.
		if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return runErr
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}
