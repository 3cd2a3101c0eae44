package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"github.com/spf13/cobra"

	"github.com/joshuapare/basekit/base"
	"github.com/joshuapare/basekit/base/object"
)

var (
	topThreads  int
	topItems    int
	topInterval time.Duration
)

func init() {
	cmd := newTopCmd()
	cmd.Flags().IntVarP(&topThreads, "threads", "t", 2, "Number of worker OS threads")
	cmd.Flags().IntVar(&topItems, "items", 16, "Items added to each container")
	cmd.Flags().DurationVar(&topInterval, "interval", 250*time.Millisecond, "Refresh interval")
	rootCmd.AddCommand(cmd)
}

func newTopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Live view of the object type table under load",
		Long: `The top command keeps worker threads allocating and releasing containers
and shows the object type table refreshing live: live objects, pooled free
list blocks and total creations per type.

Keys: p pause, f flush free lists, c copy table, ? help, q quit.

Example:
  basectl top
  basectl top --threads 8 --interval 100ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTop()
		},
	}
}

func runTop() error {
	if topThreads <= 0 || topItems < 0 || topInterval <= 0 {
		return fmt.Errorf("threads and interval must be positive, items must not be negative")
	}

	// Log records would tear the alternate screen.
	verbose = false
	rt, err := newRuntime(base.DefaultConfig())
	if err != nil {
		return err
	}
	defer rt.Close()

	w, err := startWorkload(rt, topThreads, topItems)
	if err != nil {
		return fmt.Errorf("failed to start workload: %w", err)
	}

	p := tea.NewProgram(newTopModel(rt, w, topInterval), tea.WithAltScreen())
	_, runErr := p.Run()
	if err := w.stop(); err != nil {
		return fmt.Errorf("workload failed: %w", err)
	}
	if runErr != nil {
		return fmt.Errorf("error running TUI: %w", runErr)
	}
	return nil
}

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// topModel is the bubbletea model of the top view
type topModel struct {
	rt       *base.Runtime
	work     *workload
	keys     topKeyMap
	interval time.Duration

	types    []object.TypeInfo
	lastOps  uint64
	lastTick time.Time
	rate     float64 // workload iterations per second

	paused   bool
	showHelp bool
	status   string
	width    int
}

func newTopModel(rt *base.Runtime, w *workload, interval time.Duration) topModel {
	return topModel{
		rt:       rt,
		work:     w,
		keys:     defaultTopKeyMap(),
		interval: interval,
		types:    rt.Registry().Types(),
		lastTick: time.Now(),
	}
}

func (m topModel) Init() tea.Cmd {
	return tick(m.interval)
}

func (m topModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			m.work.setPaused(m.paused)
		case key.Matches(msg, m.keys.Flush):
			n := m.rt.Registry().Flush()
			m.types = m.rt.Registry().Types()
			m.status = fmt.Sprintf("flushed %d pooled blocks", n)
		case key.Matches(msg, m.keys.Copy):
			if err := clipboard.WriteAll(plainTypeTable(m.types)); err != nil {
				m.status = fmt.Sprintf("copy failed: %v", err)
			} else {
				m.status = "type table copied"
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		ops := m.work.ops.Load()
		if elapsed := now.Sub(m.lastTick).Seconds(); elapsed > 0 {
			m.rate = float64(ops-m.lastOps) / elapsed
		}
		m.lastOps, m.lastTick = ops, now
		m.types = m.rt.Registry().Types()
		return m, tick(m.interval)
	}
	return m, nil
}

func (m topModel) View() string {
	if m.showHelp {
		return overlay.New(helpView{keys: m.keys}, mainView{m: m}, overlay.Center, overlay.Center, 0, 0).View()
	}
	return m.renderMain()
}

func (m topModel) renderMain() string {
	title := headerStyle.Render("basekit object types")
	rate := rateStyle.Render(fmt.Sprintf("%.0f iterations/s on %d threads", m.rate, len(m.work.threads)))
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", rate)
	if m.paused {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", pausedStyle.Render("PAUSED"))
	}

	status := m.status
	if status == "" {
		status = "? for help"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		paneStyle.Render(m.renderTable()),
		statusStyle.Render(status),
	)
}

var topColumns = []struct {
	title string
	width int
}{
	{"ID", 4}, {"NAME", 14}, {"GO TYPE", 40}, {"POOLED", 8}, {"LIVE", 8}, {"CREATED", 12},
}

func (m topModel) renderTable() string {
	var b strings.Builder

	cells := make([]string, len(topColumns))
	for i, c := range topColumns {
		cells[i] = fmt.Sprintf("%-*s", c.width, c.title)
	}
	b.WriteString(tableHeaderStyle.Render(strings.Join(cells, " ")))

	for row, info := range m.types {
		pooled := "-"
		if info.Flags&object.UseFreeList != 0 {
			pooled = fmt.Sprint(info.FreeListCount)
		}
		values := []string{
			fmt.Sprint(info.ID), info.Name, info.GoType, pooled,
			fmt.Sprint(info.NumberOfObjects), fmt.Sprint(info.TotalCreated),
		}
		for i, c := range topColumns {
			cells[i] = fmt.Sprintf("%-*s", c.width, truncate(values[i], c.width))
		}
		line := strings.Join(cells, " ")
		if row%2 == 1 {
			line = tableRowAltStyle.Render(line)
		}
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// plainTypeTable renders infos as tab-separated text with a header row.
func plainTypeTable(infos []object.TypeInfo) string {
	var b strings.Builder
	b.WriteString("id\tname\tgo_type\tpooled\tlive\tcreated\n")
	for _, info := range infos {
		fmt.Fprintf(&b, "%d\t%s\t%s\t%d\t%d\t%d\n",
			info.ID, info.Name, info.GoType, info.FreeListCount, info.NumberOfObjects, info.TotalCreated)
	}
	return b.String()
}

// mainView and helpView adapt the two layers of the help overlay to tea.Model.
type mainView struct{ m topModel }

func (v mainView) Init() tea.Cmd                       { return nil }
func (v mainView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v mainView) View() string                        { return v.m.renderMain() }

type helpView struct{ keys topKeyMap }

func (v helpView) Init() tea.Cmd                       { return nil }
func (v helpView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v helpView) View() string {
	lines := []string{tableHeaderStyle.Render("Keys"), ""}
	for _, b := range v.keys.bindings() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-10s %s", h.Key, h.Desc))
	}
	return helpBoxStyle.Render(strings.Join(lines, "\n"))
}
