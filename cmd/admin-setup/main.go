package main

import (
	"fmt"
	"os"
	"strings"

	"recipe-api/cache"
	"recipe-api/confs"
	"recipe-api/db"
	"recipe-api/repositories"
	"recipe-api/usecases"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringName
	stepEnteringPassword
	stepConfirmingPassword
	stepCreating
	stepComplete
)

type model struct {
	step         step
	email        string
	name         string
	password     string
	currentInput string
	message      string
	quitting     bool
}

type createdMsg struct{ email string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{step: stepEnteringEmail}
}

func (m model) Init() tea.Cmd {
	return nil
}

// createSuperuser connects to the configured database and creates the staff
// account directly, without going through the HTTP surface.
func createSuperuser(email, name, password string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := confs.Load()
		if err != nil {
			return errMsg{fmt.Errorf("failed to load config: %w", err)}
		}

		database, err := db.Connect(cfg)
		if err != nil {
			return errMsg{fmt.Errorf("failed to connect to database: %w", err)}
		}

		userRepo := repositories.NewUserPgRepository(database)
		useCase := usecases.NewUserUseCase(userRepo, cache.New(""), cfg.BcryptCost)

		user, err := useCase.CreateSuperuser(email, name, password)
		if err != nil {
			return errMsg{err}
		}
		return createdMsg{email: user.Email}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyBackspace:
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}
			return m, nil

		case tea.KeyEnter:
			return m.submit()

		case tea.KeyRunes, tea.KeySpace:
			if m.step == stepComplete {
				m.quitting = true
				return m, tea.Quit
			}
			m.currentInput += msg.String()
			return m, nil
		}

	case createdMsg:
		m.step = stepComplete
		m.message = successStyle.Render(fmt.Sprintf("Superuser %s created. Press any key to exit.", msg.email))
		return m, nil

	case errMsg:
		m.step = stepEnteringEmail
		m.email, m.name, m.password, m.currentInput = "", "", "", ""
		m.message = errorStyle.Render("Error: " + msg.Error())
		return m, nil
	}

	return m, nil
}

func (m model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.currentInput)

	switch m.step {
	case stepEnteringEmail:
		if value == "" {
			m.message = errorStyle.Render("Email must not be empty")
			return m, nil
		}
		m.email = value
		m.currentInput = ""
		m.message = ""
		m.step = stepEnteringName

	case stepEnteringName:
		m.name = value
		m.currentInput = ""
		m.message = ""
		m.step = stepEnteringPassword

	case stepEnteringPassword:
		if len(m.currentInput) < 5 {
			m.message = errorStyle.Render("Password must be at least 5 characters")
			return m, nil
		}
		m.password = m.currentInput
		m.currentInput = ""
		m.message = ""
		m.step = stepConfirmingPassword

	case stepConfirmingPassword:
		if m.currentInput != m.password {
			m.message = errorStyle.Render("Passwords do not match, try again")
			m.currentInput = ""
			m.step = stepEnteringPassword
			return m, nil
		}
		m.currentInput = ""
		m.message = ""
		m.step = stepCreating
		return m, createSuperuser(m.email, m.name, m.password)

	case stepComplete:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Recipe API - create superuser"))
	b.WriteString("\n")

	switch m.step {
	case stepEnteringEmail:
		b.WriteString(promptStyle.Render("Email: "))
		b.WriteString(inputStyle.Render(m.currentInput))
	case stepEnteringName:
		b.WriteString(promptStyle.Render("Name (optional): "))
		b.WriteString(inputStyle.Render(m.currentInput))
	case stepEnteringPassword:
		b.WriteString(promptStyle.Render("Password: "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.currentInput))))
	case stepConfirmingPassword:
		b.WriteString(promptStyle.Render("Confirm password: "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.currentInput))))
	case stepCreating:
		b.WriteString("Creating superuser...")
	case stepComplete:
		// message carries the result line
	}

	if m.message != "" {
		b.WriteString("\n\n")
		b.WriteString(m.message)
	}

	b.WriteString("\n\n(esc to quit)\n")
	return b.String()
}

func main() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "admin-setup failed: %v\n", err)
		os.Exit(1)
	}
}
