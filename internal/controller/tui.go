package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "gooze.dev/pkg/wasmut/internal/model"
)

const maxRecentSurvivors = 5

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	killedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	survivedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	timeoutStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

type estimationMsg struct {
	stats []functionStat
	total int
	err   error
}

type concurrencyMsg struct {
	threads, shardIndex, shardCount int
}

type startedMsg struct {
	mutation m.Mutation
	worker   int
}

type (
	upcomingMsg  int
	completedMsg m.MutantResult
	scoreMsg     float64
	finishedMsg  struct{}
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := newStartConfig(options...)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("tui already started")
	}

	program := tea.NewProgram(newTUIModel(config.mode), tea.WithOutput(t.output), tea.WithContext(ctx))
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("TUI stopped", "error", err)
		}
	}()

	t.program = program
	t.done = done

	return nil
}

// Close stops the program and waits for the terminal to be restored.
func (t *TUI) Close(_ context.Context) {
	program, done := t.current()
	if program == nil {
		return
	}

	program.Quit()
	<-done

	t.mu.Lock()
	t.program = nil
	t.done = nil
	t.mu.Unlock()
}

// Wait blocks until the user quits the program or ctx is done.
func (t *TUI) Wait(ctx context.Context) {
	program, done := t.current()
	if program == nil {
		return
	}

	program.Send(finishedMsg{})

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplayEstimation shows the mutations per candidate function.
func (t *TUI) DisplayEstimation(_ context.Context, candidates []m.Candidate, mutations []m.Mutation, err error) error {
	t.send(estimationMsg{stats: buildFunctionStats(candidates, mutations), total: len(mutations), err: err})
	return nil
}

// DisplayConcurrencyInfo shows concurrency settings.
func (t *TUI) DisplayConcurrencyInfo(_ context.Context, threads int, shardIndex int, shardCount int) {
	t.send(concurrencyMsg{threads: threads, shardIndex: shardIndex, shardCount: max(shardCount, 1)})
}

// DisplayUpcomingTestsInfo sets the size of the progress bar.
func (t *TUI) DisplayUpcomingTestsInfo(_ context.Context, i int) {
	t.send(upcomingMsg(i))
}

// DisplayStartingTestInfo shows the mutation a worker picked up.
func (t *TUI) DisplayStartingTestInfo(_ context.Context, currentMutation m.Mutation, threadID int) {
	t.send(startedMsg{mutation: currentMutation, worker: threadID})
}

// DisplayCompletedTestInfo records the outcome of one mutant.
func (t *TUI) DisplayCompletedTestInfo(_ context.Context, result m.MutantResult) {
	t.send(completedMsg(result))
}

// DisplayMutationScore shows the final mutation score.
func (t *TUI) DisplayMutationScore(_ context.Context, score float64) {
	t.send(scoreMsg(score))
}

func (t *TUI) current() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

func (t *TUI) send(msg tea.Msg) {
	if program, _ := t.current(); program != nil {
		program.Send(msg)
	}
}

// tuiModel is the Bubble Tea model for both estimation and test runs.
type tuiModel struct {
	mode     StartMode
	spinner  spinner.Model
	progress progress.Model

	stats     []functionStat
	total     int
	estimated bool
	err       error

	threads    int
	shardIndex int
	shardCount int
	upcoming   int
	running    map[int]m.Mutation
	counts     map[m.TestStatus]int
	survivors  []m.MutantResult
	score      *float64

	finished bool
	height   int
	width    int
	offset   int
}

func newTUIModel(mode StartMode) tuiModel {
	return tuiModel{
		mode:     mode,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress: progress.New(progress.WithDefaultGradient()),
		running:  map[int]m.Mutation{},
		counts:   map[m.TestStatus]int{},
	}
}

func (tm tuiModel) Init() tea.Cmd {
	return tm.spinner.Tick
}

func (tm tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		tm.height = msg.Height
		tm.width = msg.Width
		tm.progress.Width = max(msg.Width-4, 10)

		return tm, nil
	case tea.KeyMsg:
		return tm.handleKeyPress(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		tm.spinner, cmd = tm.spinner.Update(msg)

		return tm, cmd
	case estimationMsg:
		tm.stats, tm.total, tm.err, tm.estimated = msg.stats, msg.total, msg.err, true
	case concurrencyMsg:
		tm.threads, tm.shardIndex, tm.shardCount = msg.threads, msg.shardIndex, msg.shardCount
	case upcomingMsg:
		tm.upcoming = int(msg)
	case startedMsg:
		tm.running[msg.worker] = msg.mutation
	case completedMsg:
		tm.complete(m.MutantResult(msg))
	case scoreMsg:
		score := float64(msg)
		tm.score = &score
	case finishedMsg:
		tm.finished = true
	}

	return tm, nil
}

func (tm *tuiModel) complete(result m.MutantResult) {
	for worker, mutation := range tm.running {
		if mutation.ID == result.Mutation.ID {
			delete(tm.running, worker)
		}
	}

	tm.counts[result.Status]++

	if result.Status == m.Survived {
		tm.survivors = append(tm.survivors, result)
	}
}

//nolint:exhaustive // Only navigation keys are handled.
func (tm tuiModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return tm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		return tm, tea.Quit
	case "down", "j":
		tm.offset = min(tm.offset+1, tm.maxOffset())
	case "up", "k":
		tm.offset = max(tm.offset-1, 0)
	case "g", "home":
		tm.offset = 0
	case "G", "end":
		tm.offset = tm.maxOffset()
	}

	return tm, nil
}

func (tm tuiModel) itemsPerPage() int {
	if tm.height == 0 {
		return 10
	}

	// header, totals and footer
	return max(tm.height-10, 1)
}

func (tm tuiModel) maxOffset() int {
	return max(len(tm.stats)-tm.itemsPerPage(), 0)
}

func (tm tuiModel) completed() int {
	total := 0
	for _, count := range tm.counts {
		total += count
	}

	return total
}

func (tm tuiModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wasmut - WebAssembly mutation testing"))
	b.WriteString("\n\n")

	if tm.mode == ModeEstimate {
		tm.renderEstimation(&b)
	} else {
		tm.renderTest(&b)
	}

	if tm.finished {
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("  q: quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (tm tuiModel) renderEstimation(b *strings.Builder) {
	if !tm.estimated {
		fmt.Fprintf(b, "  %s planning mutations\n", tm.spinner.View())
		return
	}

	if tm.err != nil {
		fmt.Fprintf(b, "  %s\n", errorStyle.Render(tm.err.Error()))
		return
	}

	if len(tm.stats) == 0 {
		b.WriteString("  No candidate functions matched\n")
		return
	}

	start := min(tm.offset, len(tm.stats))
	end := min(start+tm.itemsPerPage(), len(tm.stats))

	for _, stat := range tm.stats[start:end] {
		count := fmt.Sprintf("%d", stat.count)
		if stat.count == 0 {
			count = faintStyle.Render(count)
		}

		fmt.Fprintf(b, "  %s: %s\n", stat.name, count)
	}

	fmt.Fprintf(b, "\n  Total: %d mutations across %d function(s)\n", tm.total, len(tm.stats))

	if end-start < len(tm.stats) {
		fmt.Fprintf(b, "  Showing %d-%d of %d | j/k: scroll\n", start+1, end, len(tm.stats))
	}
}

func (tm tuiModel) renderTest(b *strings.Builder) {
	completed := tm.completed()

	if tm.threads > 0 {
		fmt.Fprintf(b, "  %d worker(s), shard %d/%d\n", tm.threads, tm.shardIndex, tm.shardCount)
	}

	percent := 0.0
	if tm.upcoming > 0 {
		percent = float64(completed) / float64(tm.upcoming)
	}

	fmt.Fprintf(b, "  %s %d/%d\n\n", tm.progress.ViewAs(percent), completed, tm.upcoming)

	fmt.Fprintf(b, "  %s  %s  %s  %s\n",
		killedStyle.Render(fmt.Sprintf("killed %d", tm.counts[m.Killed])),
		survivedStyle.Render(fmt.Sprintf("survived %d", tm.counts[m.Survived])),
		timeoutStyle.Render(fmt.Sprintf("timeout %d", tm.counts[m.Timeout])),
		errorStyle.Render(fmt.Sprintf("error %d", tm.counts[m.Error])),
	)

	if tm.score == nil {
		for worker := range tm.threads {
			if mutation, ok := tm.running[worker]; ok {
				fmt.Fprintf(b, "  %s [%d] %s %s\n", tm.spinner.View(), worker, mutation.Mutator.Describe(), location(mutation))
			}
		}
	}

	if len(tm.survivors) > 0 {
		b.WriteString("\n  Recent survivors:\n")

		for _, result := range tm.survivors[max(len(tm.survivors)-maxRecentSurvivors, 0):] {
			fmt.Fprintf(b, "    %s %s\n", survivedStyle.Render(result.Mutation.Mutator.Describe()), location(result.Mutation))
		}
	}

	if tm.score != nil {
		fmt.Fprintf(b, "\n  Mutation score: %.2f%%\n", *tm.score*100)
	}
}
