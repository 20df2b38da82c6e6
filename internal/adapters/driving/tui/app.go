package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lightbar-dev/lightbar/internal/adapters/driving/tui/components/input"
	"github.com/lightbar-dev/lightbar/internal/adapters/driving/tui/components/lanes"
	"github.com/lightbar-dev/lightbar/internal/adapters/driving/tui/components/status"
	"github.com/lightbar-dev/lightbar/internal/adapters/driving/tui/keymap"
	"github.com/lightbar-dev/lightbar/internal/adapters/driving/tui/messages"
	"github.com/lightbar-dev/lightbar/internal/adapters/driving/tui/styles"
	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// pollInterval is how often the bar samples the launcher's published
// result set. The launcher coalesces recomputation on its side, so
// polling this fast costs one mutex-guarded copy per tick.
const pollInterval = 30 * time.Millisecond

// App is the launcher bar following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	ctx   context.Context

	styles *styles.Styles
	keys   *keymap.KeyMap

	input  *input.QueryInput
	lanes  *lanes.Lanes
	status *status.Bar

	// lastQuery is the input value last pushed into the launcher, used
	// to detect keystrokes that actually changed the text.
	lastQuery string

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the launcher bar with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keys:   km,
		input:  input.NewQueryInput(s),
		lanes:  lanes.New(s),
		status: status.NewBar(s, km),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("lightbar"),
		a.input.Init(),
		pollCmd(),
	)
}

// pollCmd schedules the next result-set sample.
func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return messages.Tick{At: t}
	})
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.input.SetWidth(msg.Width - 4)
		a.lanes.SetDimensions(msg.Width-4, msg.Height-6)
		a.status.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case messages.Tick:
		a.poll()
		return a, pollCmd()

	case messages.ResultActivated:
		if msg.Err != nil {
			a.status.SetMessage(fmt.Sprintf("Cannot open %s: %v", msg.Item.DisplayName, msg.Err))
			return a, nil
		}
		// A successful activation ends the session, like any launcher.
		return a, tea.Quit

	case messages.Quit:
		return a, tea.Quit
	}

	// Everything else (cursor blink and friends) belongs to the input.
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// updateKey routes key presses: navigation and activation first, all
// remaining keys into the query input.
func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		if a.input.Value() == "" {
			return a, tea.Quit
		}
		a.input.Reset()
		a.lastQuery = ""
		a.status.Clear()
		a.ports.Launcher.OnQueryChanged("")
		return a, nil

	case "left":
		a.lanes.MoveLeft()
		return a, nil

	case "right":
		a.lanes.MoveRight()
		return a, nil

	case "up":
		a.lanes.MoveUp()
		return a, nil

	case "down":
		a.lanes.MoveDown()
		return a, nil

	case "enter":
		return a, a.activateSelected()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)

	// Every keystroke that changed the text is a new query generation.
	if value := a.input.Value(); value != a.lastQuery {
		a.lastQuery = value
		a.status.SetMessage("")
		a.ports.Launcher.OnQueryChanged(value)
	}
	return a, cmd
}

// activateSelected opens the item under the cursor.
func (a *App) activateSelected() tea.Cmd {
	item, ok := a.lanes.Selected()
	if !ok {
		return nil
	}

	ctx := a.ctx
	activator := a.ports.Activator
	return func() tea.Msg {
		err := activator.Activate(ctx, item)
		return messages.ResultActivated{Item: item, Err: err}
	}
}

// poll samples the launcher and refreshes the components.
func (a *App) poll() {
	set := a.ports.Launcher.CurrentResultSet()
	a.lanes.SetResultSet(set)
	a.status.SetSearching(a.ports.Launcher.IsSearchPending())
	a.status.SetErrorKind(a.ports.Launcher.LastError())
	a.status.SetResultCount(set.Len())
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	return a.input.View() + "\n\n" + a.lanes.View() + "\n\n" + a.status.View()
}

// Run starts the launcher bar.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ResultSet returns the displayed result set (for testing).
func (a *App) ResultSet() domain.CombinedResultSet {
	return a.lanes.Set()
}

// Query returns the current input value.
func (a *App) Query() string {
	return a.input.Value()
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.input.SetWidth(width - 4)
	a.lanes.SetDimensions(width-4, height-6)
	a.status.SetWidth(width)
}
