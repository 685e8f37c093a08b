// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/cli/styles"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/logging"
	"github.com/bnema/edgedock/internal/ui/controller"
)

const (
	// headerLines sit above the screen map.
	headerLines = 3
	// offsetStep is how far +/- move the panel away from its edge.
	offsetStep  = 5.0
	eventBuffer = 16
)

// visibilityMsg is sent when the controller shows or hides the panel.
type visibilityMsg struct {
	visible  bool
	geometry entity.PanelGeometry
}

// geometryMsg is sent when a visible panel moves.
type geometryMsg struct {
	geometry entity.PanelGeometry
}

// availabilityMsg is sent when pointer access changes.
type availabilityMsg struct {
	available bool
}

// Observer forwards controller notifications into the Bubble Tea program.
type Observer struct {
	ctx context.Context
	ch  chan tea.Msg
}

var _ port.VisibilityObserver = (*Observer)(nil)

// NewObserver creates an observer. Sends block until the model consumes them
// or ctx is done.
func NewObserver(ctx context.Context) *Observer {
	return &Observer{ctx: ctx, ch: make(chan tea.Msg, eventBuffer)}
}

func (o *Observer) OnVisibilityChanged(visible bool, geo entity.PanelGeometry) {
	o.send(visibilityMsg{visible: visible, geometry: geo})
}

func (o *Observer) OnGeometryChanged(geo entity.PanelGeometry) {
	o.send(geometryMsg{geometry: geo})
}

func (o *Observer) OnAvailabilityChanged(available bool) {
	o.send(availabilityMsg{available: available})
}

func (o *Observer) send(msg tea.Msg) {
	select {
	case o.ch <- msg:
	case <-o.ctx.Done():
	}
}

// wait returns a command delivering the next notification.
func (o *Observer) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-o.ch:
			return msg
		case <-o.ctx.Done():
			return nil
		}
	}
}

// PreviewConfig holds the running dock the preview drives.
type PreviewConfig struct {
	Store      *controller.SettingsStore
	Controller *controller.VisibilityController
	Observer   *Observer
	// Now stamps pointer samples. Defaults to time.Now.
	Now func() time.Time
}

// PreviewModel draws the screen in the terminal and feeds mouse motion to
// the visibility controller as pointer samples.
type PreviewModel struct {
	help     help.Model
	keys     styles.PreviewKeyMap
	showHelp bool
	width    int
	height   int

	// State mirrored from controller notifications
	visible   bool
	available bool
	pointer   *entity.Point
	lastEvent string

	ctx   context.Context
	theme *styles.Theme
	cfg   PreviewConfig
}

// NewPreviewModel creates a new preview model.
func NewPreviewModel(ctx context.Context, theme *styles.Theme, cfg PreviewConfig) PreviewModel {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	logging.FromContext(ctx).Debug().Msg("creating preview model")

	return PreviewModel{
		help:      styles.NewHelp(theme),
		keys:      styles.DefaultPreviewKeyMap(),
		width:     80,
		height:    24,
		available: true,
		ctx:       ctx,
		theme:     theme,
		cfg:       cfg,
	}
}

// Init implements tea.Model.
func (m PreviewModel) Init() tea.Cmd {
	return m.cfg.Observer.wait()
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case visibilityMsg:
		m.visible = msg.visible
		if msg.visible {
			m.lastEvent = "shown"
		} else {
			m.lastEvent = "hidden"
		}
		return m, m.cfg.Observer.wait()

	case geometryMsg:
		m.lastEvent = "repositioned to " + styles.FormatPoint(msg.geometry.Anchor)
		return m, m.cfg.Observer.wait()

	case availabilityMsg:
		m.available = msg.available
		if msg.available {
			m.lastEvent = "pointer available"
		} else {
			m.lastEvent = "pointer unavailable"
		}
		return m, m.cfg.Observer.wait()
	}

	return m, nil
}

func (m PreviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	store := m.cfg.Store
	ctrl := m.cfg.Controller

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.CycleEdge):
		if err := store.SetEdge(store.Settings().Edge.Next()); err != nil {
			m.lastEvent = err.Error()
		}
	case key.Matches(msg, m.keys.OffsetUp):
		store.SetEdgeOffset(store.Settings().EdgeOffset + offsetStep)
	case key.Matches(msg, m.keys.OffsetDown):
		store.SetEdgeOffset(max(store.Settings().EdgeOffset-offsetStep, 0))
	case key.Matches(msg, m.keys.Suspend):
		ctrl.SetAvailability(!m.available)
	case key.Matches(msg, m.keys.Show):
		ctrl.Show()
	case key.Matches(msg, m.keys.Hide):
		ctrl.Hide()
	}
	return m, nil
}

func (m *PreviewModel) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return
	}
	cols, rows := m.mapSize()
	col, row := msg.X, msg.Y-headerLines
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return
	}

	p := CellToScreen(m.cfg.Store.Screen().Frame, col, row, cols, rows)
	m.pointer = &p
	m.cfg.Controller.OnPointerSample(port.PointerSample{Position: p, Time: m.cfg.Now()})
}

// CellToScreen maps a map cell to a screen point. The first and last cells
// land exactly on the frame boundary so every edge can be reached.
func CellToScreen(frame entity.Rect, col, row, cols, rows int) entity.Point {
	scale := func(i, n int, lo, hi float64) float64 {
		if n <= 1 {
			return lo
		}
		return lo + float64(i)*(hi-lo)/float64(n-1)
	}
	return entity.Point{
		X: scale(col, cols, frame.Min.X, frame.Max.X),
		Y: scale(row, rows, frame.Min.Y, frame.Max.Y),
	}
}

func (m PreviewModel) mapSize() (cols, rows int) {
	helpLines := 2
	if m.showHelp {
		helpLines = 5
	}
	return max(m.width, 20), max(m.height-headerLines-helpLines, 5)
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	snap := m.cfg.Store.Snapshot()
	cols, rows := m.mapSize()

	screenMap := styles.ScreenMap{
		Screen:          snap.Screen,
		Geometry:        snap.Geometry(),
		TriggerDistance: snap.Settings.TriggerDistance,
		Visible:         m.visible,
		Pointer:         m.pointer,
	}

	sections := []string{
		m.renderHeader(snap),
		m.renderStatus(snap),
		"",
		screenMap.Render(m.theme, cols, rows),
		"",
		m.help.View(m.keys),
	}
	return strings.Join(sections, "\n")
}

func (m PreviewModel) renderHeader(snap controller.Snapshot) string {
	parts := []string{
		m.theme.Title.Render("edgedock preview"),
		m.theme.EdgeBadge(string(snap.Settings.Edge)),
		m.theme.VisibilityBadge(m.visible),
	}
	if !m.available {
		parts = append(parts, m.theme.StatusBadge(styles.IconLock+" no pointer access", m.theme.Background, m.theme.Warning))
	}
	if m.lastEvent != "" {
		parts = append(parts, m.theme.Subtle.Render(m.lastEvent))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, joinSpaced(parts)...)
}

func (m PreviewModel) renderStatus(snap controller.Snapshot) string {
	frame := snap.Screen.Frame
	status := fmt.Sprintf("screen %gx%g  offset %g  trigger %g  hide after %s  items %d",
		frame.Width(), frame.Height(),
		snap.Settings.EdgeOffset,
		snap.Settings.TriggerDistance,
		snap.Settings.HideDelay,
		len(snap.Items),
	)
	if m.pointer != nil {
		status += "  pointer " + styles.FormatPoint(*m.pointer)
	}
	return m.theme.Subtle.Render(status)
}

func joinSpaced(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}
