package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/CineSim/internal/catalog"
	"github.com/yildizm/CineSim/internal/emoji"
	"github.com/yildizm/CineSim/internal/poster"
	"github.com/yildizm/CineSim/internal/recommend"
	"github.com/yildizm/CineSim/internal/ui/components"
)

// Message types for the interactive app
type recommendProgressMsg struct {
	step string
}

// Options configures the interactive browser.
type Options struct {
	DefaultCount int
	MinCount     int
	MaxCount     int
	Theme        string
}

// normalize fills unset options with the browser defaults.
func (o Options) normalize() Options {
	if o.MinCount < 1 {
		o.MinCount = 3
	}
	if o.MaxCount < o.MinCount {
		o.MaxCount = 10
	}
	if o.DefaultCount < o.MinCount || o.DefaultCount > o.MaxCount {
		o.DefaultCount = 5
	}
	if o.Theme == "" {
		o.Theme = "default"
	}
	return o
}

// InteractiveModel represents a fully interactive TUI model
type InteractiveModel struct {
	width    int
	height   int
	engine   *recommend.Engine
	opts     Options
	picker   *components.List
	response *recommend.Response
	err      error
	fetching bool
	ready    bool
	quitting bool

	// Navigation state
	currentView   View
	helpReturn    View
	selectedIndex int
	maxIndex      int
	count         int
	queryTitle    string

	// Animation state
	spinnerFrame int
	tick         int
	fetchStep    string

	// Colors and styles
	primaryColor   lipgloss.AdaptiveColor
	secondaryColor lipgloss.AdaptiveColor
	successColor   lipgloss.AdaptiveColor
	warningColor   lipgloss.AdaptiveColor
	errorColor     lipgloss.AdaptiveColor
	selectedColor  lipgloss.AdaptiveColor
}

// NewInteractiveModel creates a new interactive model
func NewInteractiveModel(engine *recommend.Engine, opts Options) *InteractiveModel {
	opts = opts.normalize()
	SetThemeByName(opts.Theme)
	theme := GetTheme()

	cat := engine.Catalog()
	movies := make([]catalog.Movie, 0, cat.Len())
	for row := 0; row < cat.Len(); row++ {
		if movie, ok := cat.MovieAt(row); ok {
			movies = append(movies, movie)
		}
	}

	return &InteractiveModel{
		engine:         engine,
		opts:           opts,
		picker:         components.NewTitleList(movies, 70, 22),
		currentView:    ViewPicker,
		count:          opts.DefaultCount,
		primaryColor:   theme.Primary,
		secondaryColor: theme.Secondary,
		successColor:   theme.Success,
		warningColor:   theme.Warning,
		errorColor:     theme.Error,
		selectedColor:  theme.Selected,
	}
}

// Init initializes the interactive model
func (m *InteractiveModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tick(),
	)
}

// Update handles messages and navigation
func (m *InteractiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tickMsg:
		return m.handleTick()
	case recommendCompleteMsg:
		return m.handleRecommendComplete(msg)
	case recommendErrorMsg:
		return m.handleRecommendError(msg)
	case recommendProgressMsg:
		return m.handleRecommendProgress(msg)
	}

	return m, nil
}

// updateMaxIndex updates the maximum selectable index for current view
func (m *InteractiveModel) updateMaxIndex() {
	switch m.currentView {
	case ViewResults:
		if m.response != nil {
			m.maxIndex = max(0, len(m.response.Recommendations)-1)
		} else {
			m.maxIndex = 0
		}
	default:
		m.maxIndex = 0
	}
}

// View renders the interactive model
func (m *InteractiveModel) View() string {
	if !m.ready {
		return m.renderLoadingScreen()
	}

	if m.quitting {
		return m.renderGoodbyeScreen()
	}

	switch m.currentView {
	case ViewPicker:
		return m.renderPickerView()
	case ViewCount:
		return m.renderCountView()
	case ViewFetching:
		return m.renderFetchingScreen()
	case ViewResults:
		return m.renderResultsView()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderPickerView()
	}
}

func (m *InteractiveModel) renderLoadingScreen() string {
	loading := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render("Loading CineSim...")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, loading)
}

func (m *InteractiveModel) renderGoodbyeScreen() string {
	styles := GetStyles()
	goodbye := styles.Theme.StyledText(
		"Enjoy the show! "+emoji.GetEmoji("popcorn")+emoji.GetEmoji("sparkles"),
		&styles.Success)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, goodbye)
}

func (m *InteractiveModel) renderPickerView() string {
	title := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render("CineSim")

	cat := m.engine.Catalog()
	stats := fmt.Sprintf(
		emoji.GetEmoji("movie")+" %d movies • "+emoji.GetEmoji("index")+" %s metric • "+emoji.GetEmoji("number")+" %d dims",
		cat.Len(),
		m.engine.Metric(),
		cat.Dimension(),
	)

	statsStyled := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render(stats)

	instructions := []string{
		emoji.GetEmoji("search") + " Type to filter titles, Backspace to edit",
		emoji.GetEmoji("target") + " Navigation: ↑↓ to move, Enter to pick",
		emoji.GetEmoji("door") + " Exit: Esc clears the filter, then quits",
	}

	instructionList := make([]string, 0, len(instructions))
	for _, instruction := range instructions {
		instructionList = append(instructionList, lipgloss.NewStyle().
			Foreground(m.secondaryColor).
			Render(instruction))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		statsStyled,
		"",
		m.picker.Render(),
		"",
		lipgloss.JoinVertical(lipgloss.Left, instructionList...),
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.getRainbowColor()).
		Padding(1, 3).
		Width(min(m.width-4, 84))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *InteractiveModel) renderCountView() string {
	title := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(emoji.GetEmoji("target") + " How many recommendations?")

	picked := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render(fmt.Sprintf(emoji.GetEmoji("movie")+" Movies like %q", m.queryTitle))

	cells := make([]string, 0, m.opts.MaxCount-m.opts.MinCount+1)
	for i := m.opts.MinCount; i <= m.opts.MaxCount; i++ {
		style := lipgloss.NewStyle().Foreground(m.secondaryColor).Padding(0, 1)
		if i == m.count {
			style = style.Background(m.selectedColor).Foreground(m.primaryColor).Bold(true)
		}
		cells = append(cells, style.Render(fmt.Sprintf("%d", i)))
	}
	selector := lipgloss.JoinHorizontal(lipgloss.Center, cells...)

	instructions := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render("←→ or ↑↓ Adjust • 3-9 Jump, 0 is ten • Enter Confirm • Esc Back")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		picked,
		"",
		selector,
		"",
		instructions,
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 3).
		Width(min(m.width-4, 72))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *InteractiveModel) renderFetchingScreen() string {
	spinner := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(spinnerChars[m.spinnerFrame])

	logo := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(`
╔═╗┬┌┐┌┌─┐╔═╗┬┌┬┐
║  ││││├┤ ╚═╗││││
╚═╝┴┘└┘└─┘╚═╝┴┴ ┴`)

	statusText := "Similarity-Driven Movie Recommendations"
	dots := strings.Repeat(".", (m.tick/5)%4)
	status := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render(statusText + dots)

	// Current fetch step
	currentStep := lipgloss.NewStyle().
		Foreground(m.warningColor).
		Bold(true).
		Render(m.fetchStep)

	// Progress info
	progress := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Render(fmt.Sprintf(emoji.GetEmoji("search")+" Finding %d movies like %q", m.count, m.queryTitle))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logo,
		"",
		fmt.Sprintf("%s %s", spinner, status),
		"",
		currentStep,
		"",
		progress,
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.getRainbowColor()).
		Padding(2, 4).
		Width(60)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *InteractiveModel) renderResultsView() string {
	if m.err != nil {
		return m.renderErrorView()
	}

	title := lipgloss.NewStyle().
		Foreground(m.primaryColor).
		Bold(true).
		Render(fmt.Sprintf(emoji.GetEmoji("sparkles")+" Movies like %q", m.queryTitle))

	if m.response == nil || len(m.response.Recommendations) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(m.secondaryColor).
			Render(emoji.GetEmoji("warning") + " No recommendations found")

		content := lipgloss.JoinVertical(lipgloss.Center, title, "", empty, "",
			lipgloss.NewStyle().Foreground(m.secondaryColor).Render("n New Search • q Quit"))

		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}

	summary := fmt.Sprintf(
		emoji.GetEmoji("results")+" %d results • "+emoji.GetEmoji("clock")+" %s • "+emoji.GetEmoji("index")+" %s",
		len(m.response.Recommendations),
		m.response.Metadata.Elapsed.Round(time.Millisecond).String(),
		m.response.Metadata.Metric,
	)

	summaryStyled := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render(summary)

	resultList := make([]string, 0, len(m.response.Recommendations)*2)
	for i, rec := range m.response.Recommendations {
		prefix := "  "
		style := lipgloss.NewStyle()

		score := matchScore(rec.Distance, m.response.Metadata.Metric)
		if i == m.selectedIndex {
			prefix = "▶ "
			style = style.Background(m.selectedColor).Foreground(m.primaryColor).Bold(true)
		} else {
			style = style.Foreground(m.getMatchColor(score))
		}

		text := fmt.Sprintf("%s%d. %s (%.0f%%)", prefix, rec.Rank, titleWithYear(&rec), score*100)
		resultList = append(resultList, style.Render(text))

		// Show details for selected recommendation
		if i == m.selectedIndex {
			details := fmt.Sprintf("    "+emoji.GetEmoji("index")+" distance %.4f", rec.Distance)
			if len(rec.Genres) > 0 {
				details += fmt.Sprintf("\n    "+emoji.GetEmoji("movie")+" %s", strings.Join(rec.Genres, " / "))
			}
			if line := m.posterLine(&rec); line != "" {
				details += "\n    " + line
			}

			resultList = append(resultList, lipgloss.NewStyle().
				Foreground(m.secondaryColor).
				Render(details))
		}
	}

	instructions := lipgloss.NewStyle().
		Foreground(m.secondaryColor).
		Render("↑↓ Navigate • n New Search • c Change Count • ? Help • q Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		summaryStyled,
		"",
		lipgloss.JoinVertical(lipgloss.Left, resultList...),
		"",
		instructions,
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 2).
		Width(min(m.width-4, 100)).
		Height(min(m.height-4, 30))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *InteractiveModel) renderErrorView() string {
	styles := GetStyles()

	title := styles.Error.Render(emoji.GetEmoji("error") + " Recommendation failed")
	detail := styles.Muted.Render(m.err.Error())
	instructions := styles.Muted.Render("n New Search • q Quit")

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", detail, "", instructions)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Theme.Error).
		Padding(1, 3).
		Width(min(m.width-4, 80))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

func (m *InteractiveModel) renderHelpView() string {
	styles := GetStyles()

	title := styles.Header.Render(emoji.GetEmoji("help") + " CineSim Help")

	helpSections := []string{
		"Navigation:",
		"  Type    Filter titles in the picker",
		"  ↑↓ or j/k    Move up/down in lists",
		"  Enter or Space    Select item",
		"  Esc    Go back one screen",
		"",
		"Count keys:",
		"  ←→ or +/-    Adjust recommendation count",
		"  3-9    Jump to that count",
		"  0    Jump to ten",
		"",
		"Results keys:",
		"  n    Start a new search",
		"  c    Change the count",
		"",
		"Exit:",
		"  q    Quit application",
		"  Ctrl+C    Force quit",
		"",
		"About CineSim:",
		"  Similarity-driven movie recommendations",
		"  Nearest neighbors in embedding space",
		"  Built with Bubble Tea for beautiful TUI",
	}

	var helpList []string
	for _, line := range helpSections {
		switch {
		case strings.HasSuffix(line, ":") && !strings.HasPrefix(line, " "):
			helpList = append(helpList, styles.Subheader.Render(line))
		case line == "":
			helpList = append(helpList, "")
		default:
			helpList = append(helpList, styles.Muted.Render(line))
		}
	}

	instructions := styles.Warning.Render("Press Esc to go back")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		lipgloss.JoinVertical(lipgloss.Left, helpList...),
		"",
		instructions,
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.primaryColor).
		Padding(1, 2).
		Width(min(m.width-4, 80))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
}

// matchScore maps a distance onto [0, 1] for display. Cosine distance
// inverts directly; euclidean distance has no upper bound, so it decays
// with 1/(1+d).
func matchScore(distance float32, metric string) float64 {
	switch metric {
	case "cosine":
		score := 1.0 - float64(distance)
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
		return score
	default:
		return 1.0 / (1.0 + float64(distance))
	}
}

// titleWithYear appends the release year when the record carries one.
func titleWithYear(rec *recommend.Recommendation) string {
	if rec.Year > 0 {
		return fmt.Sprintf("%s (%d)", rec.Title, rec.Year)
	}
	return rec.Title
}

// posterLine renders the poster detail for a recommendation, distinguishing
// confirmed absence from lookup failure.
func (m *InteractiveModel) posterLine(rec *recommend.Recommendation) string {
	switch rec.Poster {
	case "":
		return ""
	case poster.PlaceholderMissing:
		return emoji.GetEmoji("no_poster") + " no poster available"
	case poster.PlaceholderError:
		return emoji.GetEmoji("warning") + " poster lookup failed"
	default:
		return emoji.GetEmoji("link") + " " + rec.Poster
	}
}

func (m *InteractiveModel) getMatchColor(score float64) lipgloss.AdaptiveColor {
	switch {
	case score >= 0.75:
		return m.successColor
	case score >= 0.5:
		return m.primaryColor
	case score >= 0.25:
		return m.warningColor
	default:
		return m.errorColor
	}
}

func (m *InteractiveModel) getRainbowColor() lipgloss.AdaptiveColor {
	colors := []string{
		"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7", "#DDA0DD", "#98D8C8",
	}
	return lipgloss.AdaptiveColor{
		Light: colors[m.tick/10%len(colors)],
		Dark:  colors[m.tick/10%len(colors)],
	}
}

func (m *InteractiveModel) startFetch() tea.Cmd {
	m.fetching = true
	m.err = nil
	m.currentView = ViewFetching
	m.fetchStep = emoji.GetEmoji("movie") + " Warming up the projector..."

	return tea.Sequence(
		// Step 1: Resolve
		func() tea.Msg {
			return recommendProgressMsg{step: emoji.GetEmoji("search") + " Resolving the title..."}
		},

		// Step 2: Query
		func() tea.Msg {
			return recommendProgressMsg{step: emoji.GetEmoji("index") + " Searching the index..."}
		},

		// Step 3: Posters
		func() tea.Msg {
			return recommendProgressMsg{step: emoji.GetEmoji("poster") + " Fetching posters..."}
		},

		// Step 4: The actual query
		CreateRecommendCommand(m.engine, m.queryTitle, m.count),
	)
}

// Handler functions for Update method

// handleWindowResize handles window resize events
func (m *InteractiveModel) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.picker.Width = min(msg.Width-12, 70)
	m.picker.Height = min(msg.Height-14, 24)
	m.ready = true
	return m, nil
}

// handleKeyPress handles keyboard input
func (m *InteractiveModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.handleQuit()
	}

	switch m.currentView {
	case ViewPicker:
		return m.handlePickerKey(msg)
	case ViewCount:
		return m.handleCountKey(msg)
	case ViewFetching:
		if msg.String() == "q" {
			return m.handleQuit()
		}
		return m, nil
	case ViewResults:
		return m.handleResultsKey(msg)
	case ViewHelp:
		return m.handleHelpKey(msg)
	}
	return m, nil
}

// handlePickerKey handles keys in the title picker. Printable runes feed
// the incremental filter, so quit keys live on Esc here rather than q.
func (m *InteractiveModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.picker.SearchQuery() != "" {
			m.picker.SetSearch("")
			return m, nil
		}
		return m.handleQuit()
	case "enter":
		item := m.picker.GetSelectedItem()
		if item == nil {
			return m, nil
		}
		m.queryTitle = item.Title
		m.currentView = ViewCount
		return m, nil
	case "up":
		m.picker.MoveUp()
		return m, nil
	case "down":
		m.picker.MoveDown()
		return m, nil
	case "backspace":
		query := []rune(m.picker.SearchQuery())
		if len(query) > 0 {
			m.picker.SetSearch(string(query[:len(query)-1]))
		}
		return m, nil
	case " ":
		m.picker.SetSearch(m.picker.SearchQuery() + " ")
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		m.picker.SetSearch(m.picker.SearchQuery() + string(msg.Runes))
	}
	return m, nil
}

// handleCountKey handles keys in the count selector
func (m *InteractiveModel) handleCountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		return m.handleQuit()
	case "esc":
		m.currentView = ViewPicker
		return m, nil
	case "up", "right", "k", "l", "+":
		if m.count < m.opts.MaxCount {
			m.count++
		}
		return m, nil
	case "down", "left", "j", "h", "-":
		if m.count > m.opts.MinCount {
			m.count--
		}
		return m, nil
	case "enter", " ":
		return m, m.startFetch()
	case "?":
		return m.handleHelp()
	case "0":
		if m.opts.MaxCount >= 10 {
			m.count = 10
		}
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n := int(key[0] - '0')
		if n >= m.opts.MinCount && n <= m.opts.MaxCount {
			m.count = n
		}
		return m, nil
	}
	return m, nil
}

// handleResultsKey handles keys in the results view
func (m *InteractiveModel) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.handleQuit()
	case "esc", "n":
		m.err = nil
		m.picker.SetSearch("")
		m.selectedIndex = 0
		m.currentView = ViewPicker
		return m, nil
	case "c":
		m.err = nil
		m.currentView = ViewCount
		return m, nil
	case "h", "?":
		return m.handleHelp()
	case "up", "k":
		return m.handleMoveUp()
	case "down", "j":
		return m.handleMoveDown()
	}
	return m, nil
}

// handleHelpKey handles keys in the help view
func (m *InteractiveModel) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.handleQuit()
	case "esc", "enter", " ":
		m.currentView = m.helpReturn
		return m, nil
	}
	return m, nil
}

// handleQuit handles quit commands
func (m *InteractiveModel) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// handleHelp handles help key
func (m *InteractiveModel) handleHelp() (tea.Model, tea.Cmd) {
	if m.currentView != ViewHelp {
		m.helpReturn = m.currentView
		m.currentView = ViewHelp
	}
	return m, nil
}

// handleMoveUp handles up movement
func (m *InteractiveModel) handleMoveUp() (tea.Model, tea.Cmd) {
	if m.selectedIndex > 0 {
		m.selectedIndex--
	}
	return m, nil
}

// handleMoveDown handles down movement
func (m *InteractiveModel) handleMoveDown() (tea.Model, tea.Cmd) {
	if m.selectedIndex < m.maxIndex {
		m.selectedIndex++
	}
	return m, nil
}

// handleTick handles timer ticks
func (m *InteractiveModel) handleTick() (tea.Model, tea.Cmd) {
	m.tick++
	m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerChars)
	return m, tick()
}

// handleRecommendComplete handles query completion
func (m *InteractiveModel) handleRecommendComplete(msg recommendCompleteMsg) (tea.Model, tea.Cmd) {
	m.response = msg.response
	m.fetching = false
	m.currentView = ViewResults
	m.selectedIndex = 0
	m.updateMaxIndex()
	return m, nil
}

// handleRecommendError handles query errors
func (m *InteractiveModel) handleRecommendError(msg recommendErrorMsg) (tea.Model, tea.Cmd) {
	m.err = msg.err
	m.fetching = false
	m.currentView = ViewResults
	return m, nil
}

// handleRecommendProgress handles progress updates
func (m *InteractiveModel) handleRecommendProgress(msg recommendProgressMsg) (tea.Model, tea.Cmd) {
	m.fetchStep = msg.step
	return m, nil
}

// InteractiveRun runs the fully interactive TUI
func InteractiveRun(engine *recommend.Engine, opts Options) error {
	model := NewInteractiveModel(engine, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
