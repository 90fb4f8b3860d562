package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// First-run client for the energy dashboard: creates (or logs into) an
// account against the API and submits a test reading so the dashboard
// has something to show.

var serverURL = "http://localhost:3537"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

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
	stepChoosingMode step = iota
	stepEnteringEmail
	stepEnteringFirstName
	stepEnteringLastName
	stepEnteringPassword
	stepAuthenticating
	stepEnteringPower
	stepEnteringEnergy
	stepEnteringCost
	stepSendingReading
	stepComplete
)

var modes = []string{"Create a new account", "Log into an existing account"}

type model struct {
	step         step
	cursor       int
	registering  bool
	email        string
	firstName    string
	lastName     string
	password     string
	token        string
	power        float64
	energy       float64
	cost         float64
	currentInput string
	message      string
	quitting     bool
}

type authSuccessMsg struct {
	token string
	email string
}
type readingSavedMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{step: stepChoosingMode}
}

func (m model) Init() tea.Cmd {
	return nil
}

func postJSON(path string, payload any) (map[string]any, error) {
	client := &http.Client{Timeout: 10 * time.Second}

	jsonData, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", serverURL+path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server not reachable: %w", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("unexpected response from server")
	}

	if success, _ := result["success"].(bool); !success {
		message, _ := result["message"].(string)
		if message == "" {
			message = fmt.Sprintf("server returned %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("%s", message)
	}

	return result, nil
}

func authenticate(m model) tea.Cmd {
	return func() tea.Msg {
		var payload any
		path := "/api/login"
		if m.registering {
			path = "/api/register"
			payload = map[string]string{
				"email":     m.email,
				"firstName": m.firstName,
				"lastName":  m.lastName,
				"password":  m.password,
			}
		} else {
			payload = map[string]string{
				"email":    m.email,
				"password": m.password,
			}
		}

		result, err := postJSON(path, payload)
		if err != nil {
			return errMsg{err}
		}

		token, _ := result["token"].(string)
		if token == "" {
			return errMsg{fmt.Errorf("no token in response")}
		}

		return authSuccessMsg{token: token, email: m.email}
	}
}

func sendReading(m model) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]float64{
			"power":  m.power,
			"energy": m.energy,
			"cost":   m.cost,
		}

		jsonData, _ := json.Marshal(payload)
		req, _ := http.NewRequest("POST", serverURL+"/api/readings", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+m.token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("server returned %d", resp.StatusCode)}
		}

		return readingSavedMsg{}
	}
}

func parseAmount(input string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, fmt.Errorf("enter a number, e.g. 100.5")
	}
	return value, nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up":
			if m.step == stepChoosingMode && m.cursor > 0 {
				m.cursor--
			}

		case "down":
			if m.step == stepChoosingMode && m.cursor < len(modes)-1 {
				m.cursor++
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			switch m.step {
			case stepEnteringEmail, stepEnteringFirstName, stepEnteringLastName,
				stepEnteringPassword, stepEnteringPower, stepEnteringEnergy, stepEnteringCost:
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepChoosingMode:
				m.registering = m.cursor == 0
				m.step = stepEnteringEmail

			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					if m.registering {
						m.step = stepEnteringFirstName
					} else {
						m.step = stepEnteringPassword
					}
				}

			case stepEnteringFirstName:
				if m.currentInput != "" {
					m.firstName = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringLastName
				}

			case stepEnteringLastName:
				if m.currentInput != "" {
					m.lastName = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepAuthenticating
					m.message = "Authenticating..."
					return m, authenticate(m)
				}

			case stepEnteringPower:
				if value, err := parseAmount(m.currentInput); err == nil {
					m.power = value
					m.currentInput = ""
					m.step = stepEnteringEnergy
				} else {
					m.message = errorStyle.Render(err.Error())
				}

			case stepEnteringEnergy:
				if value, err := parseAmount(m.currentInput); err == nil {
					m.energy = value
					m.currentInput = ""
					m.step = stepEnteringCost
				} else {
					m.message = errorStyle.Render(err.Error())
				}

			case stepEnteringCost:
				if value, err := parseAmount(m.currentInput); err == nil {
					m.cost = value
					m.currentInput = ""
					m.step = stepSendingReading
					m.message = "Sending reading..."
					return m, sendReading(m)
				} else {
					m.message = errorStyle.Render(err.Error())
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case authSuccessMsg:
		m.token = msg.token
		m.step = stepEnteringPower
		m.message = successStyle.Render("Logged in as " + msg.email)

	case readingSavedMsg:
		m.step = stepComplete
		m.message = successStyle.Render("Reading saved!\nYour dashboard has its first data point.")

	case errMsg:
		m.message = errorStyle.Render(msg.err.Error())
		if m.step == stepAuthenticating {
			m.step = stepChoosingMode
		} else {
			m.step = stepEnteringPower
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Energy Dashboard Setup\n\n"))

	if m.message != "" {
		s.WriteString(m.message + "\n\n")
	}

	switch m.step {
	case stepChoosingMode:
		s.WriteString(promptStyle.Render("How do you want to start?\n\n"))
		for i, mode := range modes {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(mode)))
		}
		s.WriteString("\nUse up/down, Enter to select, ctrl+c to quit\n")

	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringFirstName:
		s.WriteString(promptStyle.Render("First name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringLastName:
		s.WriteString(promptStyle.Render("Last name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("*", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepAuthenticating, stepSendingReading:
		// message above already says what is happening

	case stepEnteringPower:
		s.WriteString(promptStyle.Render("Current power draw (watts):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringEnergy:
		s.WriteString(promptStyle.Render("Energy used (watt-hours):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringCost:
		s.WriteString(promptStyle.Render("Cost so far:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepComplete:
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	if url := os.Getenv("ENERGY_SERVER_URL"); url != "" {
		serverURL = url
	}

	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
