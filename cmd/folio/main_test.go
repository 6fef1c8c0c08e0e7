package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/folio/internal/app"
	"github.com/MrSnakeDoc/folio/internal/config"
	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/logger"
)

func quietEnv(t *testing.T, storage string) {
	t.Helper()
	t.Setenv("FOLIO_STORAGE", storage)
	t.Setenv("FOLIO_LOG_LEVEL", "error")
	t.Setenv("FOLIO_PRETTY_LOG", "false")
	t.Setenv("FOLIO_SEED_FILE", "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExport(t *testing.T) {
	quietEnv(t, config.StorageMemory)

	tests := []struct {
		name   string
		args   []string
		decode func([]byte, any) error
	}{
		{"json default", []string{"export"}, json.Unmarshal},
		{"yaml", []string{"export", "--format", "yaml"}, yaml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("export error = %v", err)
			}
			var got domain.SiteConfig
			if err := tt.decode([]byte(out), &got); err != nil {
				t.Fatalf("decode export output: %v\n%s", err, out)
			}
			if diff := cmp.Diff(domain.DefaultSiteConfig(), got); diff != "" {
				t.Errorf("export mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	quietEnv(t, config.StorageMemory)

	_, err := run(t, "export", "--format", "toml")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("export --format toml error = %v, want unsupported format", err)
	}
}

func TestResetRestoresDefault(t *testing.T) {
	quietEnv(t, config.StorageFile)
	dir := t.TempDir()
	t.Setenv("FOLIO_DATA_DIR", dir)

	ctx := context.Background()
	cfg := &config.Config{Storage: config.StorageFile, DataDir: dir}
	c, err := app.OpenContent(ctx, cfg, logger.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Store.UpdateAbout(ctx, domain.AboutTitle, "Edited"); err != nil {
		t.Fatal(err)
	}
	_ = c.Close()

	out, err := run(t, "reset")
	if err != nil {
		t.Fatalf("reset error = %v", err)
	}
	if !strings.Contains(out, "content reset") {
		t.Errorf("reset output = %q", out)
	}

	c, err = app.OpenContent(ctx, cfg, logger.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = c.Close() }()
	if diff := cmp.Diff(domain.DefaultSiteConfig(), c.Store.Current()); diff != "" {
		t.Errorf("document after reset (-want +got):\n%s", diff)
	}
}

func TestUnknownSubcommand(t *testing.T) {
	quietEnv(t, config.StorageMemory)
	if _, err := run(t, "publish"); err == nil {
		t.Error("unknown subcommand should fail")
	}
}
