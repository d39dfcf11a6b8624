package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rasterdom/common"
)

func TestDefault(t *testing.T) {
	opts, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if opts.Version != 1 {
		t.Errorf("Version = %d, want 1", opts.Version)
	}
	if opts.Viewport.Width != 800 || opts.Viewport.Height != 600 {
		t.Errorf("Viewport = %+v, want 800x600", opts.Viewport)
	}
	if opts.Output.Format != common.FormatPng {
		t.Errorf("Output.Format = %v, want png", opts.Output.Format)
	}
}

func TestLoad_NoPath(t *testing.T) {
	opts, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if opts.Viewport.Width != 800 {
		t.Errorf("Viewport.Width = %d, want 800 (default)", opts.Viewport.Width)
	}
}

func TestLoad_OverlaysFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "options.yaml")

	content := `version: 1
viewport:
  width: 1920
  height: 1080
  device_pixel_ratio: 2.0
output:
  format: webp
  jpeg_quality: 80
  animation_fps: 24
  loop_count: 1
workers:
  pool_size: 4
logging:
  console:
    level: debug
  file:
    level: ""
debug: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if opts.Viewport.Width != 1920 || opts.Viewport.Height != 1080 {
		t.Errorf("Viewport = %+v, want 1920x1080", opts.Viewport)
	}
	if opts.Output.Format != common.FormatWebp {
		t.Errorf("Output.Format = %v, want webp", opts.Output.Format)
	}
	if opts.Workers.PoolSize != 4 {
		t.Errorf("Workers.PoolSize = %d, want 4", opts.Workers.PoolSize)
	}
	if !opts.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "options.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nbogus_field: true\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() with unknown field error = nil, want error")
	}
}

func TestLoad_RejectsInvalidVersion(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "options.yaml")
	if err := os.WriteFile(path, []byte("version: 2\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() with version 2 error = nil, want validation error")
	}
	if !strings.Contains(err.Error(), "invalid render options") {
		t.Errorf("Load() error = %v, want validation error", err)
	}
}

func TestLoad_RejectsZeroViewport(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "options.yaml")
	content := `version: 1
viewport:
  width: 0
  height: 600
  device_pixel_ratio: 1.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() with zero viewport width error = nil, want validation error")
	}
}

func TestDump_RoundTrips(t *testing.T) {
	opts, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	opts.Output.Format = common.FormatAwebp

	data, err := Dump(opts)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "format: awebp") {
		t.Errorf("Dump() = %q, want it to contain %q", data, "format: awebp")
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "roundtrip.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	reloaded, err := unmarshalOptions(data, &RenderOptions{})
	if err != nil {
		t.Fatalf("unmarshalOptions() error = %v", err)
	}
	if reloaded.Output.Format != common.FormatAwebp {
		t.Errorf("reloaded Output.Format = %v, want awebp", reloaded.Output.Format)
	}
}
