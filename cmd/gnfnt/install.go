package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/catalog"
	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/config"
	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/font"
	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/fontcache"
	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/platform"
	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/transaction"
)

// runInstall handles a `gnfnt <font>...` invocation end to end.
func runInstall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	logger := newLogger(flagVerbose)

	detector := platform.NewDetector()

	cfg, err := loadConfig(ctx, detector)
	if err != nil {
		return errors.New(config.FormatError(err, flagVerbose))
	}

	req := font.NewRequest(args)

	// The confirmation gates the wildcard before any network or
	// filesystem action; declining is a clean cancellation.
	if req.All() && !flagDryRun {
		ok, err := confirmInstallAll(cmd.InOrStdin(), out)
		if err != nil {
			return fmt.Errorf("read confirmation: %w", err)
		}
		if !ok {
			fmt.Fprintln(out, "Installation aborted.")
			return nil
		}
	}

	info, err := detector.Detect(ctx)
	if err != nil {
		return fmt.Errorf("detect platform: %w", err)
	}
	logger.Debug("platform detected",
		"os", info.OS, "arch", info.Arch,
		"distro", info.Platform, "family", info.Family)

	fontsDir, err := resolveFontsDir(cfg, info)
	if err != nil {
		return err
	}
	logger.Debug("using fonts directory", "dir", fontsDir)

	downloader := font.NewDownloader(time.Duration(cfg.TimeoutSeconds)*time.Second, cfg.Progress)

	cat, err := buildCatalog(ctx, req, cfg, downloader)
	if err != nil {
		return err
	}

	if flagDryRun {
		return dryRun(out, cat, req)
	}

	installer := font.NewInstaller(fontsDir)

	lock, err := transaction.AcquireLock(installer.FontsDir())
	if err != nil {
		return err
	}
	defer lock.Release()

	var refresher fontcache.Refresher
	if cfg.RefreshCache && !flagNoRefresh && !info.IsWindows() {
		refresher = fontcache.New(info)
	}

	mgr, err := font.NewManager(font.Config{
		Catalog:    cat,
		Downloader: downloader,
		Installer:  installer,
		Refresher:  refresher,
		Logger:     logger,
		Force:      flagForce,
	})
	if err != nil {
		return err
	}

	report := mgr.InstallFonts(ctx, req)

	if ran, refreshErr := report.Refreshed(); ran {
		if refreshErr != nil {
			logger.Warn("font cache refresh failed", "err", refreshErr)
		} else {
			logger.Info("font cache updated")
		}
	} else if report.Installed() > 0 && info.IsWindows() {
		fmt.Fprintln(out, "New fonts will be available after applications restart.")
	}

	printSummary(out, report)

	if report.TotalFailure() {
		return fmt.Errorf("no requested fonts could be installed")
	}
	return nil
}

// newLogger builds the CLI logger: plain styled output on stderr, debug
// level behind --verbose.
func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig parses the Lua config file, honoring --config. A missing
// file yields the defaults.
func loadConfig(ctx context.Context, detector platform.Detector) (*config.Config, error) {
	path := flagConfig
	if path == "" {
		path = defaultConfigPath()
	}
	return config.NewParser(detector).ParseFile(ctx, path)
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gnfnt", "gnfnt.lua")
}

// resolveFontsDir picks the destination: --fonts-dir beats the config
// file, which beats the platform default. A leading ~ is expanded.
func resolveFontsDir(cfg *config.Config, info *platform.Info) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	dir := flagFontsDir
	if dir == "" {
		dir = cfg.FontsDir
	}
	if dir == "" {
		return platform.FontsDir(info, home), nil
	}
	return expandHome(dir, home), nil
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// buildCatalog returns the compiled-in catalog for named requests. The
// wildcard instead asks the release API for the full asset list, exactly
// like the catalog refresh the original tool performs, and fails the run
// when the listing cannot be fetched.
func buildCatalog(ctx context.Context, req font.Request, cfg *config.Config, d *font.Downloader) (catalog.Catalog, error) {
	if !req.All() {
		return catalog.Default(cfg.BaseURL), nil
	}

	cat, err := catalog.FetchLatest(ctx, d.Client(), cfg.APIURL)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("unable to fetch font list: %w", err)
	}
	if cfg.BaseURL != config.DefaultBaseURL {
		cat = cat.Rebased(cfg.BaseURL)
	}
	return cat, nil
}

// confirmInstallAll prompts before the install-everything request.
func confirmInstallAll(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprint(out, "You are about to install every Nerd Font. This requires several gigabytes of storage. Continue? [y/n] ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// dryRun resolves the request and prints what a real run would do.
func dryRun(out io.Writer, cat catalog.Catalog, req font.Request) error {
	names := req.Names()
	if req.All() {
		names = nil
		for _, entry := range cat.Entries() {
			names = append(names, entry.Name)
		}
	}

	unknown := 0
	for _, name := range names {
		entry, err := cat.Resolve(name)
		if err != nil {
			fmt.Fprintf(out, "  %-24s %v\n", name, err)
			unknown++
			continue
		}
		fmt.Fprintf(out, "  %-24s would install from %s\n", entry.Name, entry.URL)
	}

	if len(names) > 0 && unknown == len(names) {
		return fmt.Errorf("no requested fonts could be resolved")
	}
	return nil
}

// printSummary renders the per-font outcome table on stdout.
func printSummary(out io.Writer, report *font.Report) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Summary:")
	for _, o := range report.Outcomes() {
		switch o.Status {
		case font.StatusInstalled:
			fmt.Fprintf(out, "  %-24s installed (%d files)\n", o.Name, o.Files)
		case font.StatusSkipped:
			fmt.Fprintf(out, "  %-24s already installed\n", o.Name)
		case font.StatusFailed:
			fmt.Fprintf(out, "  %-24s failed: %v\n", o.Name, o.Err)
		}
	}
	fmt.Fprintf(out, "%d installed, %d skipped, %d failed\n",
		report.Installed(), report.Skipped(), report.Failed())
}
