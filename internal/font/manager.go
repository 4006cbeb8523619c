package font

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/catalog"
	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/fontcache"
)

// Manager orchestrates the install pipeline for a whole request:
// resolve, download, verify, extract, install, then one cache refresh.
type Manager struct {
	catalog    catalog.Catalog
	downloader *Downloader
	extractor  *Extractor
	installer  *Installer
	refresher  fontcache.Refresher
	logger     *log.Logger
	force      bool
}

// Config holds the collaborators for a Manager.
type Config struct {
	Catalog    catalog.Catalog
	Downloader *Downloader
	Installer  *Installer
	// Refresher may be nil to disable the post-install cache rebuild.
	Refresher fontcache.Refresher
	// Logger may be nil; a discarding logger is used then.
	Logger *log.Logger
	// Force reinstalls fonts that are already present.
	Force bool
}

// NewManager creates a manager.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Downloader == nil {
		return nil, fmt.Errorf("downloader is required")
	}
	if cfg.Installer == nil {
		return nil, fmt.Errorf("installer is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		catalog:    cfg.Catalog,
		downloader: cfg.Downloader,
		extractor:  NewExtractor(),
		installer:  cfg.Installer,
		refresher:  cfg.Refresher,
		logger:     logger,
		force:      cfg.Force,
	}, nil
}

// InstallFonts processes the request strictly sequentially, one font at
// a time in request order, recording a per-font outcome and never letting
// one failure abort the rest. After the loop, the font cache is rebuilt
// exactly once, and only when at least one font was actually installed.
func (m *Manager) InstallFonts(ctx context.Context, req Request) *Report {
	names := req.Names()
	if req.All() {
		names = nil
		for _, entry := range m.catalog.Entries() {
			names = append(names, entry.Name)
		}
	}

	report := &Report{}
	for _, name := range names {
		outcome := m.installOne(ctx, name)
		report.Add(outcome)

		switch outcome.Status {
		case StatusInstalled:
			m.logger.Info("installed", "font", outcome.Name, "files", outcome.Files)
		case StatusSkipped:
			m.logger.Info("already installed, skipping", "font", outcome.Name)
		case StatusFailed:
			m.logger.Error("failed", "font", outcome.Name, "err", outcome.Err)
		}
	}

	if m.refresher != nil && report.Installed() > 0 {
		report.refreshed = true
		report.refreshErr = m.refresher.Refresh(ctx)
	}

	return report
}

// installOne runs the pipeline for a single font. All temporary state is
// scoped to this call; the temp directory is gone before the next font
// starts.
func (m *Manager) installOne(ctx context.Context, name string) Outcome {
	entry, err := m.catalog.Resolve(name)
	if err != nil {
		return Outcome{Name: name, Status: StatusFailed, Err: err}
	}

	if !m.force {
		installed, err := m.installer.IsInstalled(entry.Name)
		if err != nil {
			return Outcome{Name: entry.Name, Status: StatusFailed, Err: err}
		}
		if installed {
			return Outcome{Name: entry.Name, Status: StatusSkipped}
		}
	}

	tmpDir, err := os.MkdirTemp("", "gnfnt-")
	if err != nil {
		return Outcome{Name: entry.Name, Status: StatusFailed, Err: fmt.Errorf("create temp dir: %w", err)}
	}
	defer os.RemoveAll(tmpDir)

	m.logger.Info("downloading", "font", entry.Name, "url", entry.URL)

	archivePath := filepath.Join(tmpDir, entry.Name+".zip")
	if err := m.downloader.DownloadToFile(ctx, entry.URL, archivePath); err != nil {
		return Outcome{Name: entry.Name, Status: StatusFailed, Err: fmt.Errorf("download: %w", err)}
	}

	if entry.Digest != "" {
		if err := VerifySHA256(archivePath, entry.Digest); err != nil {
			return Outcome{Name: entry.Name, Status: StatusFailed, Err: fmt.Errorf("verify: %w", err)}
		}
	}

	unpackDir := filepath.Join(tmpDir, "unpacked")
	if err := m.extractor.ExtractZip(archivePath, unpackDir); err != nil {
		return Outcome{Name: entry.Name, Status: StatusFailed, Err: fmt.Errorf("extract: %w", err)}
	}

	installed, err := m.installer.InstallFiles(unpackDir)
	if err != nil {
		return Outcome{Name: entry.Name, Status: StatusFailed, Err: fmt.Errorf("install: %w", err)}
	}
	if installed == 0 {
		return Outcome{Name: entry.Name, Status: StatusFailed, Err: fmt.Errorf("no font files found in archive")}
	}

	return Outcome{Name: entry.Name, Status: StatusInstalled, Files: installed}
}
