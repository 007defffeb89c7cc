package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/getlantern/systray"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/recording"
)

// refreshInterval paces the status/recordings menu refresh.
const refreshInterval = 5 * time.Second

type Tray struct {
	service recording.RecordingService
	runner  *recording.Runner
	logger  *slog.Logger

	statusItem     *systray.MenuItem
	recordingsItem *systray.MenuItem
	pauseItem      *systray.MenuItem

	mu       sync.Mutex
	done     chan struct{}
	stopOnce sync.Once

	onOpenExports func() error
	onQuit        func()
}

type TrayConfig struct {
	Service       recording.RecordingService
	Runner        *recording.Runner
	Logger        *slog.Logger
	OnOpenExports func() error
	OnQuit        func()
}

func NewTray(cfg TrayConfig) *Tray {
	return &Tray{
		service:       cfg.Service,
		runner:        cfg.Runner,
		logger:        cfg.Logger,
		done:          make(chan struct{}),
		onOpenExports: cfg.OnOpenExports,
		onQuit:        cfg.OnQuit,
	}
}

func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(iconBytes)
	systray.SetTitle("Loom")
	systray.SetTooltip("Loom Agent")

	t.statusItem = systray.AddMenuItem("Status: Idle", "Current agent status")
	t.statusItem.Disable()

	t.recordingsItem = systray.AddMenuItem("Recordings: 0", "Registered recordings")
	t.recordingsItem.Disable()

	systray.AddSeparator()

	t.pauseItem = systray.AddMenuItem("Pause", "Pause exporting")

	openExportsItem := systray.AddMenuItem("Open Exports Folder", "Show finished exports")

	systray.AddSeparator()

	quitItem := systray.AddMenuItem("Quit", "Quit Loom Agent")

	go func() {
		for {
			select {
			case <-t.pauseItem.ClickedCh:
				t.togglePause()
			case <-openExportsItem.ClickedCh:
				t.handleOpenExports()
			case <-quitItem.ClickedCh:
				t.logger.Info("quit requested from tray")
				if t.onQuit != nil {
					t.onQuit()
				}
				systray.Quit()
				return
			}
		}
	}()

	go t.refreshLoop()

	t.logger.Info("system tray ready")
}

func (t *Tray) onExit() {
	t.stopOnce.Do(func() { close(t.done) })
	t.logger.Info("system tray exiting")
}

// refreshLoop keeps the status and recordings menu lines current while
// the tray is up.
func (t *Tray) refreshLoop() {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			t.refresh()
		}
	}
}

func (t *Tray) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshInterval)
	defer cancel()

	if recs, err := t.service.List(ctx); err == nil {
		t.UpdateRecordingsCount(len(recs))
	}

	jobs, err := t.service.ListJobs(ctx, 10)
	if err != nil {
		return
	}
	t.UpdateStatus(exportStatusLine(jobs))
}

// exportStatusLine summarizes recent jobs into one menu line.
func exportStatusLine(jobs []*recording.ExportJob) string {
	for _, j := range jobs {
		if j.Status == recording.JobStatusRunning {
			return fmt.Sprintf("Exporting %d%%", j.Progress)
		}
	}
	for _, j := range jobs {
		if j.Status == recording.JobStatusPending {
			return "Export queued"
		}
	}
	return "Idle"
}

func (t *Tray) togglePause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.runner == nil {
		return
	}

	if t.runner.IsPaused() {
		t.runner.Resume()
		t.pauseItem.SetTitle("Pause")
		t.statusItem.SetTitle("Status: Idle")
	} else {
		t.runner.Pause()
		t.pauseItem.SetTitle("Resume")
		t.statusItem.SetTitle("Status: Paused")
	}
}

func (t *Tray) handleOpenExports() {
	if t.onOpenExports != nil {
		if err := t.onOpenExports(); err != nil {
			t.logger.Error("failed to open exports folder", "error", err)
		}
	}
}

func (t *Tray) UpdateStatus(status string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.statusItem == nil {
		return
	}
	if t.runner != nil && t.runner.IsPaused() {
		return
	}
	t.statusItem.SetTitle("Status: " + status)
}

func (t *Tray) UpdateRecordingsCount(count int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.recordingsItem == nil {
		return
	}
	t.recordingsItem.SetTitle(fmt.Sprintf("Recordings: %d", count))
}

func (t *Tray) Quit() {
	systray.Quit()
}
