package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/depositflow/depositflow/cmd/ops/internal/view"
	"github.com/depositflow/depositflow/internal/application"
	applicationStore "github.com/depositflow/depositflow/internal/application/store"
	"github.com/depositflow/depositflow/internal/config"
	"github.com/depositflow/depositflow/internal/database"
	"github.com/depositflow/depositflow/internal/mail"
)

type model struct {
	appService *application.Service

	currentView View

	applicationsView view.ApplicationsModel
	offersView       view.OffersModel
}

type View int

const (
	ViewMenu         View = 0
	ViewApplications View = 1
	ViewOffers       View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	mailer := mail.NewClient(cfg.Resend.APIKey, cfg.Resend.From, cfg.App.SiteURL)
	appSvc := application.NewService(applicationStore.New(db), mailer)

	return model{
		appService:       appSvc,
		currentView:      ViewMenu,
		applicationsView: view.NewApplicationsModel(appSvc),
		offersView:       view.NewOffersModel(appSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewApplications
				m.applicationsView = view.NewApplicationsModel(m.appService)

				return m, m.applicationsView.Init()
			case "2":
				m.currentView = ViewOffers
				m.offersView = view.NewOffersModel(m.appService)

				return m, m.offersView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewApplications:
		var newModel tea.Model
		newModel, cmd = m.applicationsView.Update(msg)
		m.applicationsView = newModel.(view.ApplicationsModel)
	case ViewOffers:
		var newModel tea.Model
		newModel, cmd = m.offersView.Update(msg)
		m.offersView = newModel.(view.OffersModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"DepositFlow Ops\n\n" +
				"1. Applications\n" +
				"2. Pending Offers\n\n" +
				"q. Quit",
		)
	case ViewApplications:
		return m.applicationsView.View()
	case ViewOffers:
		return m.offersView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
