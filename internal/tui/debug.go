package tui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/javiermolinar/tarjama/internal/quran"
	"github.com/javiermolinar/tarjama/internal/translation"
)

// DebugLogger logs keystrokes, clicks, and theme changes to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	logger  zerolog.Logger
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "tarjama-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = newDebugLogger(f)
	debugLog.file = f

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
	}
}

// newDebugLogger creates an enabled logger writing JSON lines to w.
func newDebugLogger(w io.Writer) *DebugLogger {
	return &DebugLogger{
		logger:  zerolog.New(w),
		enabled: true,
	}
}

// log writes one JSON object per line.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.logger.Log().
		Int("seq", d.seq).
		Str("ts", time.Now().Format("15:04:05.000")).
		Str("event", event).
		Fields(data).
		Send()
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key": msg.String(),
	})
}

// LogClick logs a click delivered to the row at position.
func LogClick(position int, kind quran.Kind) {
	if !debugEnabled() {
		return
	}
	debugLog.log("CLICK", map[string]any{
		"position": position,
		"kind":     kind.String(),
	})
}

// LogThemeChange logs a snapshot handed to the renderer.
func LogThemeChange(s translation.Snapshot, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("THEME_CHANGE", map[string]any{
		"reason":      reason,
		"font_size":   s.FontSize,
		"night_mode":  s.NightMode,
		"text_color":  s.TextColor,
		"arabic":      s.ArabicTextColor,
		"divider":     s.DividerColor,
		"sura_header": s.SuraHeaderColor,
	})
}

// LogSuraLoaded logs a sura range replacing the rows.
func LogSuraLoaded(sura, from, to, rows int) {
	if !debugEnabled() {
		return
	}
	debugLog.log("SURA_LOADED", map[string]any{
		"sura": sura,
		"from": from,
		"to":   to,
		"rows": rows,
	})
}

// LogError logs an error surfaced to the status line.
func LogError(err error) {
	if !debugEnabled() || err == nil {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"error": err.Error(),
	})
}
