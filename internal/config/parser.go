package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/JoshAyersSBT/Get-Nerd-Fonts/internal/platform"
	lua "github.com/yuin/gopher-lua"
)

// Parser loads gnfnt Lua configs with platform information injected.
type Parser struct {
	detector platform.Detector
}

// NewParser creates a config parser using the given platform detector.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{detector: detector}
}

// ParseError carries a user-friendly message alongside the raw Lua error.
type ParseError struct {
	Message string
	Detail  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// ParseFile loads a config file. A missing file is not an error: the
// defaults are returned unchanged.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Config, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return p.ParseString(ctx, string(code))
}

// ParseString parses a Lua config from a string. Useful for tests and for
// the ParseFile path above.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (*Config, error) {
	L := newSandboxedVM()
	defer L.Close()

	if p.detector != nil {
		info, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, info); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{Message: "Lua syntax error", Detail: err.Error()}
	}

	return extractConfig(L)
}

// extractConfig reads the global `gnfnt` table into a Config, starting
// from defaults so unset fields keep their documented values.
func extractConfig(L *lua.LState) (*Config, error) {
	root := L.GetGlobal("gnfnt")
	if root.Type() != lua.LTTable {
		return nil, &ParseError{
			Message: "missing or invalid 'gnfnt' table",
			Detail:  fmt.Sprintf("expected table, got %s", root.Type()),
		}
	}

	cfg := Default()
	table := root.(*lua.LTable)

	if v := table.RawGetString("fonts_dir"); v.Type() == lua.LTString {
		cfg.FontsDir = v.String()
	}
	if v := table.RawGetString("base_url"); v.Type() == lua.LTString {
		// Archive names are appended directly, so the prefix must stay
		// slash-terminated.
		cfg.BaseURL = strings.TrimSuffix(v.String(), "/") + "/"
	}
	if v := table.RawGetString("api_url"); v.Type() == lua.LTString {
		cfg.APIURL = v.String()
	}
	if v := table.RawGetString("timeout_seconds"); v.Type() == lua.LTNumber {
		cfg.TimeoutSeconds = int(lua.LVAsNumber(v))
	}
	if v := table.RawGetString("refresh_cache"); v.Type() == lua.LTBool {
		cfg.RefreshCache = bool(v.(lua.LBool))
	}
	if v := table.RawGetString("progress"); v.Type() == lua.LTBool {
		cfg.Progress = bool(v.(lua.LBool))
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ParseError{Message: "config validation failed", Detail: err.Error()}
	}

	return cfg, nil
}

// FormatError renders a config error for display. Verbose mode keeps the
// raw Lua detail; otherwise the stack traceback is trimmed away.
func FormatError(err error, verbose bool) string {
	parseErr, ok := err.(*ParseError)
	if !ok {
		return err.Error()
	}
	if verbose {
		return fmt.Sprintf("%s\n\nDetails:\n%s", parseErr.Message, parseErr.Detail)
	}
	detail := parseErr.Detail
	if idx := strings.Index(detail, "stack traceback"); idx > 0 {
		detail = strings.TrimSpace(detail[:idx])
	}
	return fmt.Sprintf("%s: %s", parseErr.Message, detail)
}
