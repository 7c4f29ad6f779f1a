package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"songbook/internal/models"
	"songbook/internal/repositories"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LibraryView ViewState = iota
	AddView
)

// Model represents the TUI application state.
type Model struct {
	view       ViewState
	repo       *repositories.SongRepository
	width      int
	height     int
	songList   list.Model
	nameInput  textinput.Model
	albumInput textinput.Model
	status     string
	err        error
	help       help.Model
	keys       keyMap
}

type songsLoadedMsg struct {
	songs []*models.Song
	err   error
}

type songSavedMsg struct {
	song *models.Song
	err  error
}

// NewModel creates a new TUI model backed by the given repository.
func NewModel(repo *repositories.SongRepository) *Model {
	nameInput := textinput.New()
	nameInput.Placeholder = "Name"
	nameInput.CharLimit = 120

	albumInput := textinput.New()
	albumInput.Placeholder = "Album"
	albumInput.CharLimit = 120

	songList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	songList.Title = "Songbook"

	return &Model{
		view:       LibraryView,
		repo:       repo,
		songList:   songList,
		nameInput:  nameInput,
		albumInput: albumInput,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init initializes the TUI by loading the song library.
func (m *Model) Init() tea.Cmd {
	return m.loadSongs()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.songList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LibraryView:
			return m.handleLibraryKeys(msg)
		case AddView:
			return m.handleAddKeys(msg)
		}

	case songsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.songs))
		for i, song := range msg.songs {
			items[i] = songItem{song: song}
		}
		m.songList.SetItems(items)
		return m, nil

	case songSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = LibraryView
			return m, nil
		}
		m.status = fmt.Sprintf("saved %s", msg.song)
		m.view = LibraryView
		return m, m.loadSongs()
	}

	return m.updateInputs(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view == LibraryView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case LibraryView:
		return m.renderLibrary()
	case AddView:
		return m.renderAdd()
	default:
		return ""
	}
}

func (m *Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.add):
		m.view = AddView
		m.status = ""
		m.err = nil
		m.nameInput.SetValue("")
		m.albumInput.SetValue("")
		m.albumInput.Blur()
		return m, m.nameInput.Focus()
	case key.Matches(msg, m.keys.refresh):
		return m, m.loadSongs()
	}

	var cmd tea.Cmd
	m.songList, cmd = m.songList.Update(msg)
	return m, cmd
}

func (m *Model) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = LibraryView
		return m, nil
	case "tab", "shift+tab":
		if m.nameInput.Focused() {
			m.nameInput.Blur()
			return m, m.albumInput.Focus()
		}
		m.albumInput.Blur()
		return m, m.nameInput.Focus()
	case "enter":
		if m.nameInput.Focused() {
			m.nameInput.Blur()
			return m, m.albumInput.Focus()
		}
		name := m.nameInput.Value()
		if name == "" {
			m.status = "name is required"
			m.albumInput.Blur()
			return m, m.nameInput.Focus()
		}
		return m, m.saveSong(name, m.albumInput.Value())
	}

	return m.updateInputs(msg)
}

func (m *Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.view == AddView {
		var cmd tea.Cmd
		if m.nameInput.Focused() {
			m.nameInput, cmd = m.nameInput.Update(msg)
		} else {
			m.albumInput, cmd = m.albumInput.Update(msg)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.songList, cmd = m.songList.Update(msg)
	return m, cmd
}

func (m *Model) loadSongs() tea.Cmd {
	return func() tea.Msg {
		songs, err := m.repo.List()
		return songsLoadedMsg{songs: songs, err: err}
	}
}

func (m *Model) saveSong(name, album string) tea.Cmd {
	return func() tea.Msg {
		song, err := m.repo.Create(name, album)
		return songSavedMsg{song: song, err: err}
	}
}

func (m *Model) renderLibrary() string {
	helpKeys := []key.Binding{m.keys.add, m.keys.refresh, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	status := ""
	if m.status != "" {
		status = styles.ok.Render(m.status) + "\n"
	}

	return fmt.Sprintf("%s\n%s\n%s", m.songList.View(), status, helpView)
}

func (m *Model) renderAdd() string {
	title := styles.title.Render("Add a song")

	form := fmt.Sprintf("%s\n%s", m.nameInput.View(), m.albumInput.View())

	status := ""
	if m.status != "" {
		status = "\n" + styles.warn.Render(m.status)
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s%s\n\n%s", title, form, status, helpView)
}
