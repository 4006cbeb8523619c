// Command gnfnt downloads Nerd Font archives from the ryanoasis/nerd-fonts
// releases (or a configured mirror), installs them into the per-user fonts
// directory, and refreshes the OS font cache.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "1.2.0"

var (
	flagForce     bool
	flagDryRun    bool
	flagVerbose   bool
	flagNoRefresh bool
	flagFontsDir  string
	flagConfig    string
)

var rootCmd = &cobra.Command{
	Use:     "gnfnt [flags] <font-name>...",
	Short:   "Download and install Nerd Fonts",
	Version: Version,
	Long: `gnfnt downloads Nerd Font archives and installs them into your user
fonts directory, then rebuilds the font cache so applications pick the
new fonts up immediately.

Pass one or more font family names, or '*' (quoted, so your shell does
not expand it) to install every available font after a confirmation
prompt. Names are matched against the catalog case-insensitively.

Examples:
  gnfnt FiraCode
  gnfnt JetBrainsMono Hack Meslo
  gnfnt '*'

Exit status is 0 when at least one requested font was installed or was
already present (and for help, version, and a declined confirmation),
and 1 for usage errors or when every requested font failed.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	RunE:          runInstall,
}

func init() {
	rootCmd.SetVersionTemplate("gnfnt version {{.Version}}\n")

	rootCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "reinstall fonts that are already present")
	rootCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "n", false, "resolve names and print what would be installed, without downloading")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&flagNoRefresh, "no-refresh", false, "skip the font cache rebuild after installing")
	rootCmd.Flags().StringVar(&flagFontsDir, "fonts-dir", "", "install into this directory instead of the platform default")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default is $XDG_CONFIG_HOME/gnfnt/gnfnt.lua)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
