package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/config"
)

func runSim(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfigOverlay(t *testing.T) {
	path := writeConfig(t, `
strip:
  length: 8
  brightness: 64
loop_delay: 250ms
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Strip.Length)
	assert.Equal(t, uint8(64), cfg.Strip.Brightness)
	assert.Equal(t, 250*time.Millisecond, cfg.LoopDelay)
	assert.Equal(t, config.TypicalLEDStrip, cfg.Strip.Correction, "unset fields keep defaults")
	assert.Equal(t, uint16(0x3C), cfg.Display.Address)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "strip:\n  length: 0\n"))
	assert.ErrorIs(t, err, config.ErrInvalidStrip)

	_, err = loadConfig(writeConfig(t, "strip: [\n"))
	assert.Error(t, err)
}

func TestOnceBoundary(t *testing.T) {
	out, err := runSim(t, "once", "--pot", "512", "--pulse", "2941")
	require.NoError(t, err)

	assert.Contains(t, out, "threshold=50cm")
	assert.Contains(t, out, "distance=49cm")
	assert.Contains(t, out, "lit=0/16")
	assert.Contains(t, out, "█", "display frame is printed")
}

func TestOnceFullBar(t *testing.T) {
	out, err := runSim(t, "once", "--pot", "1023", "--pulse", "200")
	require.NoError(t, err)
	assert.Contains(t, out, "lit=16/16")
}

func TestOnceRejectsPotOutOfRange(t *testing.T) {
	_, err := runSim(t, "once", "--pot", "2000")
	assert.Error(t, err)
}

func TestSweep(t *testing.T) {
	out, err := runSim(t, "sweep", "--pot", "1023", "--from", "0", "--to", "1000", "--step", "250")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header + pulses 0, 250, 500, 750, 1000
	assert.Len(t, lines, 6)
}

func TestSweepRejectsBadRange(t *testing.T) {
	_, err := runSim(t, "sweep", "--step", "0")
	assert.Error(t, err)

	_, err = runSim(t, "sweep", "--from", "10", "--to", "5")
	assert.Error(t, err)
}

func TestSweepUsesConfig(t *testing.T) {
	path := writeConfig(t, "strip:\n  length: 4\n")
	out, err := runSim(t, "--config", path, "sweep", "--pot", "1023", "--from", "200", "--to", "200", "--step", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "   4  ", "lit column shows the shorter strip")
}

func TestTextScreenString(t *testing.T) {
	s := newTextScreen(2, 2)
	s.SetPixel(0, 0, white())
	s.SetPixel(1, 1, white())
	require.NoError(t, s.Display())

	assert.Equal(t, "▀▄\n", s.String())

	s.ClearBuffer()
	assert.Equal(t, "▀▄\n", s.String(), "only flushed frames are shown")
}

func white() color.RGBA { return color.RGBA{255, 255, 255, 255} }
