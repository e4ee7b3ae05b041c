package app

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/tedit/internal/config"
	"github.com/kobzarvs/tedit/internal/editor"
	"github.com/kobzarvs/tedit/internal/fileio"
	"github.com/kobzarvs/tedit/internal/gitinfo"
	"github.com/kobzarvs/tedit/internal/logger"
	"github.com/kobzarvs/tedit/internal/sysclip"
	"github.com/kobzarvs/tedit/internal/term"
)

const branchRefresh = 2 * time.Second

// App is the top-level runtime for tedit.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	if err := logger.Init(logger.DebugEnabled()); err != nil {
		return err
	}
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		return err
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.EnableMouse()
	defer s.Fini()

	ed := editor.New(cfg)
	ed.SetStorage(fileio.NewStore())
	ui := term.New(s, ed, cfg)
	ed.SetPathChooser(ui.Prompt())
	if cfg.Editor.SystemClipboard {
		if sysclip.Available() {
			ed.SetClipboardSink(sysclip.New())
		} else {
			logger.Warn("system clipboard requested but unavailable")
		}
	}

	gitPath := ""
	if len(a.args) > 0 {
		gitPath = a.args[0]
		openInitial(ed, a.args[0])
	}
	if gitPath == "" {
		if cwd, err := os.Getwd(); err == nil {
			gitPath = cwd
		}
	}

	// The branch is re-read on a timer so a checkout in another terminal
	// shows up without a keypress.
	branchPath := func() string {
		if path, ok := ed.Document().Path(); ok {
			return path
		}
		return gitPath
	}
	ui.SetBranch(gitinfo.Branch(branchPath()))
	ui.SetTick(func() {
		ui.SetBranch(gitinfo.Branch(branchPath()))
	})

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(branchRefresh)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				_ = s.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	logger.Info("started", "args", a.args)
	return ui.Run()
}

// openInitial loads the file named on the command line. A file that does
// not exist yet becomes the save target of an empty buffer.
func openInitial(ed *editor.Editor, path string) {
	err := ed.OpenPath(path)
	if err == nil {
		return
	}
	if errors.Is(err, fs.ErrNotExist) {
		ed.Bind(path)
		ed.SetStatusMessage("new file " + path)
		return
	}
	ed.SetStatusMessage(err.Error())
}
