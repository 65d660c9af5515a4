package main

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/collate/internal/config"
	"github.com/vango-dev/collate/internal/demo"
	"github.com/vango-dev/collate/internal/errors"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&globalFlags{})
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// chdir switches to a fresh directory so no stray config file is loaded.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version --short = %q, want %q", out, version)
	}

	out, _ = execute(t, "version")
	if !strings.Contains(out, "Go version:") {
		t.Errorf("version output = %q", out)
	}
}

func TestLayersCmd(t *testing.T) {
	out, err := execute(t, "layers")
	if err != nil {
		t.Fatalf("layers error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(demo.LayerNames()) {
		t.Fatalf("expected %d lines, got:\n%s", len(demo.LayerNames()), out)
	}
	if !strings.HasPrefix(lines[0], "theme ") {
		t.Errorf("first layer line = %q", lines[0])
	}
}

func TestRenderCmd(t *testing.T) {
	chdir(t)

	t.Run("document", func(t *testing.T) {
		out, err := execute(t, "render", "--prop", "locale=de", "--prop", "user=ada")
		if err != nil {
			t.Fatalf("render error: %v", err)
		}
		for _, want := range []string{"<!DOCTYPE html>", `<html lang="de">`, "Hallo, ada"} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q in:\n%s", want, out)
			}
		}
	})

	t.Run("fragment", func(t *testing.T) {
		out, err := execute(t, "render", "-f", "--layers", "c,b,a", "-p", "a=1,b=2")
		if err != nil {
			t.Fatalf("render error: %v", err)
		}
		if !strings.Contains(out, `{&quot;a&quot;:&quot;12&quot;`) {
			t.Errorf("fragment = %s", out)
		}
	})

	t.Run("unknown layer", func(t *testing.T) {
		_, err := execute(t, "render", "--layers", "nope")
		if !stderrors.Is(err, errors.New(errors.CodeUnknownLayer)) {
			t.Errorf("render error = %v, want unknown layer", err)
		}
	})
}

func TestRenderCmdUsesConfig(t *testing.T) {
	dir := chdir(t)
	cfg := config.New()
	cfg.Render.Title = "From Config"
	cfg.Props = map[string]string{"theme": "dark"}
	if err := cfg.SaveTo(filepath.Join(dir, "collate.yaml")); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "render")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(out, "<title>From Config</title>") || !strings.Contains(out, "theme-dark") {
		t.Errorf("config not applied:\n%s", out)
	}

	_, err = execute(t, "render", "--config", filepath.Join(dir, "missing.json"))
	if !stderrors.Is(err, errors.New(errors.CodeConfigRead)) {
		t.Errorf("render --config missing error = %v", err)
	}
}

func TestInitCmd(t *testing.T) {
	dir := chdir(t)

	out, err := execute(t, "init")
	if err != nil {
		t.Fatalf("init error: %v", err)
	}
	if !strings.Contains(out, "Wrote collate.json") {
		t.Errorf("init output = %q", out)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.Layers) != len(demo.LayerNames()) {
		t.Errorf("init layers = %v", cfg.Layers)
	}

	_, err = execute(t, "init")
	if !stderrors.Is(err, errors.New(errors.CodeInvalidArg)) {
		t.Errorf("second init error = %v, want invalid argument", err)
	}
	if _, err := execute(t, "init", "--force"); err != nil {
		t.Errorf("init --force error: %v", err)
	}
}

func TestServe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := &http.Server{Handler: demo.NewServer(cfg, logger)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, srv, ln, time.Second, logger)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("GET /healthz = %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve() = %v, want nil after shutdown", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
