// Package ui renders interactive progress for directory runs.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"pancake/internal/pipeline"
)

const (
	statusWidth = 9
	timeWidth   = 8
	// chromeRows — строки вокруг списка: заголовок, пустые, счётчики, полоса.
	chromeRows = 7
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	workingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

type fileItem struct {
	path    string
	status  pipeline.Status
	stage   pipeline.Stage
	elapsed time.Duration
	err     string
}

func (it fileItem) finished() bool {
	return it.status == pipeline.StatusDone || it.status == pipeline.StatusError
}

type progressModel struct {
	title   string
	events  <-chan pipeline.Event
	spinner spinner.Model
	bar     progress.Model
	items   []fileItem
	index   map[string]int
	// phase — стадия всего прогона из событий без файла.
	phase   string
	done    int
	failed  int
	width   int
	height  int
	closed  bool
	started time.Time
}

type eventMsg pipeline.Event
type closedMsg struct{}

// NewProgressModel returns a Bubble Tea model with one row per file of a
// directory run. Rows scroll to keep unfinished files visible; the model quits
// once events is closed.
func NewProgressModel(title string, files []string, events <-chan pipeline.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = workingStyle

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 60

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		items:   make([]fileItem, len(files)),
		index:   make(map[string]int, len(files)),
		width:   80,
		height:  24,
		started: time.Now(),
	}
	for i, file := range files {
		m.items[i] = fileItem{path: file, status: pipeline.StatusQueued}
		m.index[file] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.applyEvent(pipeline.Event(msg)), m.waitEvent())
	case closedMsg:
		m.closed = true
		return m, tea.Quit
	case tea.KeyMsg:
		// прерывание отдаём вызывающему: воркеры доработают, события дочитаются
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = max(msg.Width-24, 10)
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		return m, nil
	case spinner.TickMsg:
		if m.closed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) waitEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev pipeline.Event) tea.Cmd {
	if ev.File == "" {
		m.phase = stageVerb(ev.Stage)
		return nil
	}
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	item := &m.items[idx]
	if item.finished() {
		return nil
	}
	item.status = ev.Status
	if ev.Stage != "" {
		item.stage = ev.Stage
	}
	switch ev.Status {
	case pipeline.StatusDone:
		m.done++
		item.elapsed = ev.Elapsed
	case pipeline.StatusError:
		m.failed++
		item.elapsed = ev.Elapsed
		if ev.Err != nil {
			item.err = firstLine(ev.Err.Error())
		}
	}
	return m.bar.SetPercent(m.percent())
}

// percent: законченный файл весит 1, остальные по пройденной стадии.
func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	total := 0.0
	for _, item := range m.items {
		if item.finished() {
			total++
			continue
		}
		total += stageWeight(item.stage)
	}
	return total / float64(len(m.items))
}

func stageWeight(stage pipeline.Stage) float64 {
	switch stage {
	case pipeline.StageLoad:
		return 0.1
	case pipeline.StageLex:
		return 0.4
	case pipeline.StageParse:
		return 0.7
	}
	return 0
}

// window returns the half-open range of rows to draw. The first unfinished
// file is kept in view; everything fits when the terminal is tall enough.
func (m *progressModel) window() (int, int) {
	rows := max(m.height-chromeRows, 3)
	if len(m.items) <= rows {
		return 0, len(m.items)
	}
	focus := len(m.items) - 1
	for i, item := range m.items {
		if !item.finished() {
			focus = i
			break
		}
	}
	start := max(focus-1, 0)
	if start+rows > len(m.items) {
		start = len(m.items) - rows
	}
	return start, start + rows
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	var b strings.Builder

	header := m.title
	if m.phase != "" && !m.closed {
		header += " (" + m.phase + ")"
	}
	if m.closed {
		b.WriteString(okStyle.Render("✓ "))
	} else {
		b.WriteString(m.spinner.View() + " ")
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusWidth-timeWidth-6, 20)
	start, end := m.window()
	if start > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more above", start)))
		b.WriteString("\n")
	}
	for _, item := range m.items[start:end] {
		b.WriteString(m.row(item, nameWidth))
		b.WriteString("\n")
	}
	if end < len(m.items) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more below", len(m.items)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.closed {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString(" ")
	b.WriteString(m.counters())
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) row(item fileItem, nameWidth int) string {
	label := statusText(item)
	status := statusStyle(item.status).Render(fmt.Sprintf("%-*s", statusWidth, label))
	line := fmt.Sprintf("  %s %s", status, runewidth.FillRight(truncate(item.path, nameWidth), nameWidth))
	if item.finished() {
		line += " " + dimStyle.Render(fmt.Sprintf("%*s", timeWidth, formatElapsed(item.elapsed)))
	}
	if item.err != "" {
		line += "\n" + strings.Repeat(" ", statusWidth+3) + failStyle.Render(truncate(item.err, nameWidth))
	}
	return line
}

func (m *progressModel) counters() string {
	parts := []string{fmt.Sprintf("%d/%d", m.done+m.failed, len(m.items))}
	if m.failed > 0 {
		parts = append(parts, failStyle.Render(fmt.Sprintf("%d failed", m.failed)))
	}
	parts = append(parts, dimStyle.Render(formatElapsed(time.Since(m.started))))
	return strings.Join(parts, "  ")
}

func statusText(item fileItem) string {
	switch item.status {
	case pipeline.StatusWorking:
		if verb := stageVerb(item.stage); verb != "" {
			return verb
		}
		return "working"
	case pipeline.StatusDone:
		return "ok"
	case pipeline.StatusError:
		return "failed"
	}
	return "queued"
}

func stageVerb(stage pipeline.Stage) string {
	switch stage {
	case pipeline.StageLoad:
		return "loading"
	case pipeline.StageLex:
		return "lexing"
	case pipeline.StageParse:
		return "parsing"
	}
	return ""
}

func statusStyle(status pipeline.Status) lipgloss.Style {
	switch status {
	case pipeline.StatusDone:
		return okStyle
	case pipeline.StatusError:
		return failStyle
	case pipeline.StatusWorking:
		return workingStyle
	}
	return dimStyle
}

func formatElapsed(d time.Duration) string {
	switch {
	case d <= 0:
		return ""
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
