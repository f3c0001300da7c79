package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/todomaster/internal/domain"
	"github.com/runoshun/todomaster/internal/infra/config"
)

// newConfigCommand creates the config command.
func newConfigCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Display effective configuration",
		Long: `Display the configuration after merging all sources.

Sources, later ones taking precedence:
  1. built-in defaults
  2. $XDG_CONFIG_HOME/todomaster/config.toml
  3. the file given with --config
  4. --server`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := e.container.Config
			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			if len(cfg.Sources) == 0 {
				_, _ = fmt.Fprintln(w, "- (defaults only)")
			}
			for _, src := range cfg.Sources {
				_, _ = fmt.Fprintf(w, "- %s\n", src)
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Files]")
			_, _ = fmt.Fprintf(w, "- cache: %s\n", domain.CacheSlotPath(cfg.Cache.Dir, cfg.Cache.Slot))
			_, _ = fmt.Fprintf(w, "- log:   %s\n", domain.LogPath(cfg.Cache.Dir))
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective config]")
			rendered, err := config.Render(cfg)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(w, rendered)
			return nil
		},
	}
}
