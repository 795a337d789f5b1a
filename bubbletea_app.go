// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/saod-vizual/treeviz/huffman"
	"github.com/saod-vizual/treeviz/trace"
)

// BubbleTeaMode represents different UI modes
type BubbleTeaMode int

const (
	ModeTrace BubbleTeaMode = iota
	ModeHuffman
)

// tickMsg advances autoplay by one step.
type tickMsg time.Time

// Model represents the Bubble Tea application state
type Model struct {
	mode  BubbleTeaMode
	ready bool
	title string

	// Trace player components
	stepsList    list.Model
	treeViewport viewport.Model

	// Huffman components
	textInput textinput.Model
	codeCache *cache.Cache
	codeKind  codeKind
	current   *huffman.Result
	lastText  string
	buildErr  error

	// Data
	frames []frame
	player *trace.Player[frame]

	// State
	playing     bool
	interval    time.Duration
	focusOnTree bool // True when the tree viewport is focused for scrolling
	showHelp    bool
	status      string

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the styles from the detected color scheme
func NewStyles(scheme *ColorScheme) *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Inserted).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// stepItem represents an item in the steps list
type stepItem struct {
	index int
	frame frame
}

func (i stepItem) FilterValue() string { return i.frame.Tag }
func (i stepItem) Title() string       { return i.frame.title(i.index) }
func (i stepItem) Description() string {
	first, _, _ := strings.Cut(i.frame.Message, "\n")
	return first
}

const playerHelp = `# Player keys

| key | action |
|-----|--------|
| → / l / n | next step |
| ← / h / p | previous step |
| home / end | first / last step |
| space | start or stop autoplay |
| tab | switch focus between steps and tree |
| ctrl+y | copy the step narration |
| ? | toggle this help |
| esc / q | quit |

In Huffman mode type into the input, **tab** switches between Huffman and Shannon-Fano and **ctrl+y** copies the encoded bits.
`

func newModel(title string, mode BubbleTeaMode, interval time.Duration) Model {
	stepsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	stepsList.SetShowTitle(false) // Completely disable built-in title rendering
	stepsList.SetShowHelp(false)
	stepsList.SetFilteringEnabled(false)

	treeViewport := viewport.New(0, 0)

	// Initialize glamour renderer with auto-detection
	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	return Model{
		mode:            mode,
		title:           title,
		stepsList:       stepsList,
		treeViewport:    treeViewport,
		interval:        interval,
		styles:          NewStyles(GetColorScheme()),
		glamourRenderer: glamourRenderer,
	}
}

// InitialTraceModel creates a player over recorded frames.
func InitialTraceModel(title string, frames []frame, interval time.Duration, autoplay bool) Model {
	m := newModel(title, ModeTrace, interval)
	m.frames = frames
	m.player = trace.NewPlayer(frames)

	items := make([]list.Item, len(frames))
	for i, f := range frames {
		items[i] = stepItem{index: i, frame: f}
	}
	m.stepsList.SetItems(items)
	m.playing = autoplay && len(frames) > 1
	m.showStep()
	return m
}

// InitialHuffmanModel creates the live Huffman editor.
func InitialHuffmanModel(text string, hc *cache.Cache) Model {
	m := newModel("Huffman code", ModeHuffman, 0)

	ti := textinput.New()
	ti.Placeholder = "Type text to encode..."
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50
	ti.SetValue(text)

	m.textInput = ti
	m.codeCache = hc
	m.codeKind = codeHuffman
	m.rebuildCode()
	return m
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	if m.mode == ModeHuffman {
		return textinput.Blink
	}
	if m.playing {
		return tick(m.interval)
	}
	return nil
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
		if m.mode == ModeHuffman {
			return m.updateHuffmanMode(msg)
		}
		return m.updateTraceMode(msg)

	case tickMsg:
		if !m.playing || m.mode != ModeTrace {
			return m, nil
		}
		if !m.player.Next() {
			m.playing = false
			return m, nil
		}
		m.showStep()
		if m.player.AtEnd() {
			m.playing = false
			return m, nil
		}
		return m, tick(m.interval)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// updateTraceMode handles key events for the step player
func (m Model) updateTraceMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		m.showStep()
		return m, nil
	case "tab":
		m.focusOnTree = !m.focusOnTree
		return m, nil
	case " ":
		if m.playing {
			m.playing = false
			return m, nil
		}
		if m.player.AtEnd() {
			m.player.First()
			m.showStep()
		}
		m.playing = true
		return m, tick(m.interval)
	case "right", "l", "n":
		m.playing = false
		m.player.Next()
		m.showStep()
		return m, nil
	case "left", "h", "p":
		m.playing = false
		m.player.Prev()
		m.showStep()
		return m, nil
	case "home":
		m.playing = false
		m.player.First()
		m.showStep()
		return m, nil
	case "end":
		m.playing = false
		m.player.Last()
		m.showStep()
		return m, nil
	case "ctrl+y":
		if step, ok := m.player.Current(); ok {
			if err := clipboard.WriteAll(step.Message); err != nil {
				m.status = m.styles.ErrorMessage.Render(fmt.Sprintf("copy failed: %v", err))
			} else {
				m.status = m.styles.SuccessMessage.Render("narration copied")
			}
		}
		return m, nil
	case "up", "k":
		if m.focusOnTree {
			m.treeViewport.LineUp(1)
			return m, nil
		}
		m.playing = false
		m.player.Prev()
		m.showStep()
		return m, nil
	case "down", "j":
		if m.focusOnTree {
			m.treeViewport.LineDown(1)
			return m, nil
		}
		m.playing = false
		m.player.Next()
		m.showStep()
		return m, nil
	}

	if m.focusOnTree {
		m.treeViewport, cmd = m.treeViewport.Update(msg)
	}
	return m, cmd
}

// updateHuffmanMode handles key events for the live code editor
func (m Model) updateHuffmanMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "tab":
		if m.codeKind == codeHuffman {
			m.codeKind = codeFano
		} else {
			m.codeKind = codeHuffman
		}
		m.rebuildCode()
		return m, nil
	case "ctrl+y":
		if m.current != nil {
			bits := huffman.Encode(m.current.Text, m.current.Table)
			if err := clipboard.WriteAll(bits); err != nil {
				m.status = m.styles.ErrorMessage.Render(fmt.Sprintf("copy failed: %v", err))
			} else {
				m.status = m.styles.SuccessMessage.Render(fmt.Sprintf("%d bits copied", len(bits)))
			}
		}
		return m, nil
	case "pgup":
		m.treeViewport.LineUp(m.treeViewport.Height)
		return m, nil
	case "pgdown":
		m.treeViewport.LineDown(m.treeViewport.Height)
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	if text := m.textInput.Value(); text != m.lastText {
		m.rebuildCode()
	}
	return m, cmd
}

// showStep syncs the list cursor and the tree viewport with the player.
func (m *Model) showStep() {
	if m.showHelp {
		m.setMarkdown(playerHelp)
		return
	}
	step, ok := m.player.Current()
	if !ok {
		m.treeViewport.SetContent("Nothing to replay.")
		return
	}
	m.stepsList.Select(m.player.Pos())
	m.treeViewport.SetContent(fmt.Sprintf("%s\n\n%s", step.Tree, step.Message))
	m.treeViewport.GotoTop()
}

func (m *Model) setMarkdown(md string) {
	// Try to render as markdown first
	if rendered, err := m.glamourRenderer.Render(md); err == nil {
		m.treeViewport.SetContent(rendered)
	} else {
		m.treeViewport.SetContent(md)
	}
}

// rebuildCode rebuilds the code tree for the current input text.
func (m *Model) rebuildCode() {
	text := m.textInput.Value()
	m.lastText = text
	m.current, m.buildErr = GetOrBuildCode(m.codeCache, m.codeKind, text)
	if m.buildErr != nil {
		m.treeViewport.SetContent(m.styles.ErrorMessage.Render(m.buildErr.Error()))
		return
	}

	var sb strings.Builder
	sb.WriteString(renderTree(m.current.Root, huffmanLabel))
	sb.WriteString("\n")
	renderCodeTable(&sb, m.current)
	renderMetrics(&sb, m.current.Metrics())
	m.treeViewport.SetContent(sb.String())
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.mode == ModeHuffman {
		return m.renderHuffmanView()
	}
	return m.renderTraceView()
}

// renderTraceView renders the step player
func (m Model) renderTraceView() string {
	// Ensure we have minimum dimensions
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	listHeight := m.height - 6
	listWidth := (m.width * 35 / 100) - 1
	treeWidth := m.width - listWidth - 3

	var listStyle, treeStyle lipgloss.Style
	listTitle := fmt.Sprintf(" 📋 Steps %d/%d ", m.player.Pos()+1, m.player.Len())
	treeTitle := " 🌳 " + m.title + " "
	if m.focusOnTree {
		listStyle, treeStyle = m.styles.BorderBlurred, m.styles.BorderFocused
		treeTitle += "(Active) "
	} else {
		listStyle, treeStyle = m.styles.BorderFocused, m.styles.BorderBlurred
		listTitle += "(Active) "
	}
	if m.playing {
		treeTitle += "▶ "
	}

	stepsBox := listStyle.
		Width(listWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(listWidth-4).Render(listTitle),
			m.stepsList.View(),
		))

	treeBox := treeStyle.
		Width(treeWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(treeWidth-4).Render(treeTitle),
			m.treeViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		stepsBox,
		treeBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderFooter([]string{"←/→", "space", "home/end", "tab", "ctrl+y", "?", "esc"},
			[]string{"step", "autoplay", "first/last", "switch focus", "copy narration", "help", "quit"}),
	)
}

// renderHuffmanView renders the live code editor
func (m Model) renderHuffmanView() string {
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	treeHeight := m.height - inputHeight - 7
	width := m.width - 2

	inputBox := m.styles.BorderFocused.
		Width(width).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(width-4).Render(" ✏️  Text\n"),
			m.textInput.View(),
		))

	treeTitle := " 🌳 Huffman tree "
	if m.codeKind == codeFano {
		treeTitle = " 🌳 Shannon-Fano tree "
	}
	treeBox := m.styles.BorderBlurred.
		Width(width).
		Height(treeHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(width-4).Render(treeTitle),
			m.treeViewport.View(),
		))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		treeBox,
		m.renderFooter([]string{"tab", "pgup/pgdown", "ctrl+y", "esc"},
			[]string{"huffman/fano", "scroll", "copy bits", "quit"}),
	)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	if m.mode == ModeHuffman {
		inputHeight := 3
		width := m.width - 2
		m.textInput.Width = width - 4
		m.treeViewport.Width = width - 2
		m.treeViewport.Height = m.height - inputHeight - 9
		return
	}

	listHeight := m.height - 6
	listWidth := (m.width * 35 / 100) - 1
	treeWidth := m.width - listWidth - 3

	m.stepsList.SetSize(listWidth-2, listHeight-2)
	m.treeViewport.Width = treeWidth - 2
	m.treeViewport.Height = listHeight - 2
}

// renderFooter renders the key help line and the last status message
func (m Model) renderFooter(keys, descs []string) string {
	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}
	footer := strings.Join(helpEntries, " • ")
	if m.status != "" {
		footer += "   " + m.status
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(footer)
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%d characters%s to clipboard.\n", Green, len(text), Reset)
	return nil
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(model Model) error {
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
