package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:5555"

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

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepChoosingMode step = iota
	stepEnteringUsername
	stepEnteringPassword
	stepAuthenticating
	stepMenu
	stepLoadingRecipes
	stepViewingRecipes
	stepEnteringTitle
	stepEnteringInstructions
	stepEnteringMinutes
	stepSubmittingRecipe
)

type user struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

type recipe struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete int    `json:"minutes_to_complete"`
	UserID            string `json:"user_id"`
}

type model struct {
	client    *http.Client
	serverURL string

	step         step
	cursor       int
	signup       bool
	username     string
	password     string
	currentUser  *user
	recipes      []recipe
	draftTitle   string
	draftBody    string
	currentInput string
	message      string
	quitting     bool
}

type authSuccessMsg struct{ user user }
type recipesMsg []recipe
type recipeCreatedMsg struct{ recipe recipe }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

var modeChoices = []string{"Log in", "Sign up"}
var menuChoices = []string{"View my recipes", "Add a recipe", "Quit"}

func initialModel() model {
	serverURL := os.Getenv("RECIPES_SERVER_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}

	// The jar keeps the session cookie across requests.
	jar, _ := cookiejar.New(nil)

	return model{
		client:    &http.Client{Timeout: 10 * time.Second, Jar: jar},
		serverURL: serverURL,
		step:      stepChoosingMode,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func postJSON(client *http.Client, url string, payload any, want int) (map[string]any, error) {
	jsonData, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		var parsed map[string]any
		if json.Unmarshal(body, &parsed) == nil {
			if msg, ok := parsed["message"].(string); ok && msg != "" {
				return nil, fmt.Errorf("%s", msg)
			}
			if msg, ok := parsed["error"].(string); ok && msg != "" {
				return nil, fmt.Errorf("%s", msg)
			}
		}
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("unreadable response: %w", err)
	}
	return result, nil
}

func authenticate(client *http.Client, serverURL, username, password string, signup bool) tea.Cmd {
	return func() tea.Msg {
		payload := map[string]string{
			"username": username,
			"password": password,
		}

		if signup {
			if _, err := postJSON(client, serverURL+"/signup", payload, http.StatusCreated); err != nil {
				return errMsg{fmt.Errorf("signup failed: %w", err)}
			}
		}

		// Login starts the session; the jar picks up the cookie.
		result, err := postJSON(client, serverURL+"/login", payload, http.StatusOK)
		if err != nil {
			return errMsg{fmt.Errorf("login failed: %w", err)}
		}

		u := user{}
		u.ID, _ = result["id"].(string)
		u.Username, _ = result["username"].(string)
		if u.ID == "" {
			return errMsg{fmt.Errorf("login failed: no user in response")}
		}
		return authSuccessMsg{user: u}
	}
}

func fetchRecipes(client *http.Client, serverURL string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Get(serverURL + "/recipes")
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("server returned %d", resp.StatusCode)}
		}

		var recipes []recipe
		if err := json.NewDecoder(resp.Body).Decode(&recipes); err != nil {
			return errMsg{fmt.Errorf("unreadable response: %w", err)}
		}
		return recipesMsg(recipes)
	}
}

func createRecipe(client *http.Client, serverURL, title, instructions string, minutes int) tea.Cmd {
	return func() tea.Msg {
		payload := map[string]any{
			"title":               title,
			"instructions":        instructions,
			"minutes_to_complete": minutes,
		}

		result, err := postJSON(client, serverURL+"/recipes", payload, http.StatusCreated)
		if err != nil {
			return errMsg{fmt.Errorf("could not save recipe: %w", err)}
		}

		r := recipe{}
		r.ID, _ = result["id"].(string)
		r.Title, _ = result["title"].(string)
		return recipeCreatedMsg{recipe: r}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if (m.step == stepChoosingMode || m.step == stepMenu) && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.step == stepChoosingMode && m.cursor < len(modeChoices)-1 {
				m.cursor++
			}
			if m.step == stepMenu && m.cursor < len(menuChoices)-1 {
				m.cursor++
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepEnteringUsername || m.step == stepEnteringPassword ||
				m.step == stepEnteringTitle || m.step == stepEnteringInstructions ||
				m.step == stepEnteringMinutes {
				// Only printable input; special keys like tab or esc would
				// otherwise append their names into the field.
				switch msg.Type {
				case tea.KeyRunes:
					m.currentInput += string(msg.Runes)
				case tea.KeySpace:
					m.currentInput += " "
				}
			}

		case "enter":
			switch m.step {
			case stepChoosingMode:
				m.signup = m.cursor == 1
				m.cursor = 0
				m.step = stepEnteringUsername

			case stepEnteringUsername:
				if m.currentInput != "" {
					m.username = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepAuthenticating
					m.message = "Signing in..."
					return m, authenticate(m.client, m.serverURL, m.username, m.password, m.signup)
				}

			case stepMenu:
				switch m.cursor {
				case 0:
					m.step = stepLoadingRecipes
					m.message = "Loading recipes..."
					return m, fetchRecipes(m.client, m.serverURL)
				case 1:
					m.step = stepEnteringTitle
				case 2:
					m.quitting = true
					return m, tea.Quit
				}

			case stepViewingRecipes:
				m.step = stepMenu
				m.cursor = 0

			case stepEnteringTitle:
				if m.currentInput != "" {
					m.draftTitle = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringInstructions
				}

			case stepEnteringInstructions:
				if m.currentInput != "" {
					m.draftBody = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringMinutes
				}

			case stepEnteringMinutes:
				minutes, err := strconv.Atoi(m.currentInput)
				if err != nil || minutes <= 0 {
					m.message = errorStyle.Render("Minutes must be a positive number")
					m.currentInput = ""
					return m, nil
				}
				m.currentInput = ""
				m.step = stepSubmittingRecipe
				m.message = "Saving recipe..."
				return m, createRecipe(m.client, m.serverURL, m.draftTitle, m.draftBody, minutes)
			}
		}

	case authSuccessMsg:
		m.currentUser = &msg.user
		m.step = stepMenu
		m.cursor = 0
		m.message = successStyle.Render("Logged in as " + msg.user.Username)

	case recipesMsg:
		m.recipes = []recipe(msg)
		m.step = stepViewingRecipes
		m.message = ""

	case recipeCreatedMsg:
		m.step = stepMenu
		m.cursor = 0
		m.message = successStyle.Render("Saved " + msg.recipe.Title)

	case errMsg:
		m.message = errorStyle.Render(msg.Error())
		switch m.step {
		case stepAuthenticating:
			// Back to the top so the user can retry or switch mode.
			m.step = stepChoosingMode
			m.cursor = 0
		case stepLoadingRecipes, stepSubmittingRecipe:
			m.step = stepMenu
			m.cursor = 0
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	s := titleStyle.Render("Recipe Box") + "\n"
	if m.message != "" {
		s += m.message + "\n\n"
	}

	switch m.step {
	case stepChoosingMode:
		s += promptStyle.Render("Welcome! What would you like to do?") + "\n\n"
		for i, choice := range modeChoices {
			if i == m.cursor {
				s += selectedStyle.Render("> "+choice) + "\n"
			} else {
				s += normalStyle.Render(choice) + "\n"
			}
		}

	case stepEnteringUsername:
		s += promptStyle.Render("Username: ") + m.currentInput + "_\n"

	case stepEnteringPassword:
		masked := ""
		for range m.currentInput {
			masked += "*"
		}
		s += promptStyle.Render("Password: ") + masked + "_\n"

	case stepAuthenticating, stepLoadingRecipes, stepSubmittingRecipe:
		// spinner-free wait; the message above says what is happening

	case stepMenu:
		s += promptStyle.Render("What next?") + "\n\n"
		for i, choice := range menuChoices {
			if i == m.cursor {
				s += selectedStyle.Render("> "+choice) + "\n"
			} else {
				s += normalStyle.Render(choice) + "\n"
			}
		}

	case stepViewingRecipes:
		if len(m.recipes) == 0 {
			s += "No recipes yet. Add one!\n"
		} else {
			for _, r := range m.recipes {
				s += selectedStyle.Render(fmt.Sprintf("%s (%d min)", r.Title, r.MinutesToComplete)) + "\n"
				s += normalStyle.Render(r.Instructions) + "\n\n"
			}
		}
		s += promptStyle.Render("Press enter to go back") + "\n"

	case stepEnteringTitle:
		s += promptStyle.Render("Title: ") + m.currentInput + "_\n"

	case stepEnteringInstructions:
		s += promptStyle.Render("Instructions: ") + m.currentInput + "_\n"

	case stepEnteringMinutes:
		s += promptStyle.Render("Minutes to complete: ") + m.currentInput + "_\n"
	}

	s += "\n" + normalStyle.Render("ctrl+c to quit") + "\n"
	return s
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
