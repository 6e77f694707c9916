package run

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/xhd2015/go-dom-tui/charm"
	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/walletui/app"
	"github.com/xhd2015/walletui/data"
	"github.com/xhd2015/walletui/internal/config"
	"github.com/xhd2015/walletui/internal/process"
	"github.com/xhd2015/walletui/log"
	"golang.org/x/term"
)

const help = `
walletui - wallet settings in the terminal

Usage: walletui [OPTIONS]
       walletui <cmd> [OPTIONS]

Available sub commands:
  list
  export <file.json>
  import <file.json>
  config

Options:
  --storage <type>                 storage backend: sqlite (default), file, server or memory
  --server-addr <addr>             server address (required when --storage=server)
  --server-token <token>           server authentication token (optional when --storage=server)
  --layout <layout>                auto (default), mobile or desktop
  --tab <tab>                      start tab: accounts, addresses, nodes or general
  --demo                           run on in-memory storage seeded with sample data
  --log <file>                     log file (default: walletui.log in the config dir)
  --show-path                      print the config dir and exit
  -h,--help                        show this help message

Environment:
  WALLETUI_CONFIG_DIR              override the config dir
  WALLETUI_<KEY>                   override a config.json key, e.g. WALLETUI_LAYOUT=mobile

Examples:
  walletui                         run with SQLite storage (default)
  walletui --storage=file          run with file storage (walletui.json)
  walletui --storage=server --server-addr=http://localhost:8080 --server-token=abc123
  walletui --demo --layout=mobile
`

func Main(args []string) error {
	loadEnv()

	if len(args) > 0 {
		arg0 := args[0]
		switch arg0 {
		case "list":
			return handleList(args[1:])
		case "export":
			return handleExport(args[1:])
		case "import":
			return handleImport(args[1:])
		case "config":
			return handleConfig(args[1:])
		}
	}

	var logFile string
	var storageType string
	var serverAddr string
	var serverToken string
	var layout string
	var tab string
	var demo bool
	var showPath bool

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		String("--layout", &layout).
		String("--tab", &tab).
		Bool("--demo", &demo).
		String("--log", &logFile).
		Bool("--show-path", &showPath).
		Help("-h,--help", help).
		Parse(args)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra arguments: %s", strings.Join(args, " "))
	}

	confDir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	if showPath {
		fmt.Println(confDir)
		return nil
	}
	err = os.MkdirAll(confDir, 0755)
	if err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	savedConfig, err := data.LoadConfig()
	if err != nil {
		return err
	}
	if demo {
		storageType = "memory"
	}
	storageConfig := applyStorageDefaults(savedConfig, storageType, serverAddr, serverToken)
	uiConfig, err := ResolveUIConfig(savedConfig, layout, tab)
	if err != nil {
		return err
	}

	err = process.EnsureSingleInstance(savedConfig.RunningPID)
	if err != nil {
		return err
	}
	savedConfig.RunningPID = os.Getpid()
	err = data.SaveConfig(savedConfig)
	if err != nil {
		return err
	}
	defer clearRunningPID()

	if logFile == "" {
		logFile, err = config.GetLogFile()
		if err != nil {
			return err
		}
	}
	err = log.Init(logFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer log.Close()

	ctx := context.Background()
	log.Infof(ctx, "starting walletui: storage=%s layout=%s", storageConfig.StorageType, uiConfig.Layout)

	manager, closeStore, err := CreateManager(storageConfig)
	if err != nil {
		log.Errorf(ctx, "open storage: %v", err)
		return err
	}
	defer closeStore()

	if demo {
		err = seedDemo(manager)
		if err != nil {
			return err
		}
	}

	appState := app.NewState(manager, app.Options{
		Storage:          storageConfig.StorageType,
		Layout:           uiConfig.Layout,
		MobileBreakpoint: uiConfig.MobileBreakpoint,
		StartTab:         uiConfig.StartTab,
		Features:         uiConfig.Features,
	})
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		appState.Width = width
	}

	var p *tea.Program
	appState.Refresh = func() {
		p.Send(cursor.Blink())
	}

	model := &Model{
		app: charm.NewCharmApp(appState, app.App),
	}
	appState.Quit = func() {
		model.quit = true
	}

	p = tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	if err != nil {
		log.Errorf(ctx, "program exited: %v", err)
	}
	return err
}

// loadEnv loads .env from the config dir, then from the working directory.
// Variables already set in the environment win.
func loadEnv() {
	envFile, err := config.GetEnvFile()
	if err == nil {
		godotenv.Load(envFile)
	}
	if _, err := os.Stat(".env"); err == nil {
		godotenv.Load(".env")
	}
}

func clearRunningPID() {
	conf, err := data.LoadConfig()
	if err != nil || conf.RunningPID != os.Getpid() {
		return
	}
	conf.RunningPID = 0
	data.SaveConfig(conf)
}

func handleConfig(args []string) error {
	var dir bool
	args, err := flags.Bool("--dir", &dir).
		Help("-h,--help", "config [--dir]\n\nPrint the config file path, or the config dir with --dir.\n").
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args, " "))
	}

	configPath, err := config.GetConfigJSONFile()
	if err != nil {
		return err
	}
	if dir {
		configPath = filepath.Dir(configPath)
	}
	fmt.Println(configPath)
	return nil
}

type Model struct {
	quit bool
	app  *charm.CharmApp[app.State]
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !isDOMKey(keyMsg) {
		m.app.State.HandleKey(keyMsg.String())
	} else {
		m.app.Update(msg)
	}
	if m.quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	return m.app.Render()
}

// isDOMKey reports whether go-dom-tui turns msg into a key event that
// component.KeyOf can name. The rest (shift+tab, ctrl+d, function keys)
// reach the app by their bubbletea name.
func isDOMKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace,
		tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight,
		tea.KeyEnter, tea.KeyTab, tea.KeyEscape,
		tea.KeyBackspace, tea.KeyDelete,
		tea.KeyCtrlC, tea.KeyCtrlV, tea.KeyCtrlX, tea.KeyCtrlW,
		tea.KeyCtrlA, tea.KeyCtrlE, tea.KeyCtrlK:
		return true
	}
	return false
}
