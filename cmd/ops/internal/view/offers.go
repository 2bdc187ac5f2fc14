package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/depositflow/depositflow/internal/application"
)

// OffersModel lists pending offers so stale ones can be swept manually.
type OffersModel struct {
	CommonModel
	appService *application.Service

	table table.Model
	apps  []*application.Application

	loading bool
	err     error
	status  string
}

func NewOffersModel(appSvc *application.Service) OffersModel {
	columns := []table.Column{
		{Title: "Created", Width: 12},
		{Title: "Tenant", Width: 28},
		{Title: "Advance", Width: 9},
		{Title: "Expires", Width: 18},
		{Title: "Overdue", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return OffersModel{
		appService: appSvc,
		table:      t,
	}
}

func (m OffersModel) Title() string { return "Pending Offers" }
func (m OffersModel) ShortHelp() string {
	return "Esc: back | x: expire offer | r: refresh"
}

func (m OffersModel) Init() tea.Cmd {
	return m.loadOffersCmd()
}

func (m OffersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadOffersMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.apps = msg.apps
		m.refreshTable()
		return m, nil

	case expireMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error expiring offer: %v", msg.err)
		} else {
			m.status = "Offer expired"
		}
		return m, m.loadOffersCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadOffersCmd()
		case "x":
			return m, m.expireCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m OffersModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading offers...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView
	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *OffersModel) refreshTable() {
	now := time.Now()

	rows := make([]table.Row, 0, len(m.apps))
	for _, app := range m.apps {
		overdue := ""
		if now.After(app.Offer.ExpiresAt) {
			overdue = "yes"
		}
		rows = append(rows, table.Row{
			FormatDate(app.Offer.CreatedAt),
			app.OwnerEmail,
			FormatPounds(app.Offer.AdvanceAmount),
			app.Offer.ExpiresAt.Format("2006-01-02 15:04"),
			overdue,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadOffersMsg struct {
	apps []*application.Application
	err  error
}

func (m OffersModel) loadOffersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		apps, err := m.appService.ListApplications(ctx, application.ListFilter{
			TenancyStatus: new(application.TenancyOfferGenerated),
		})
		if err != nil {
			return loadOffersMsg{err: err}
		}

		pending := make([]*application.Application, 0, len(apps))
		for _, app := range apps {
			if app.Offer != nil && app.Offer.Status == application.OfferPending {
				pending = append(pending, app)
			}
		}

		return loadOffersMsg{apps: pending}
	}
}

type expireMsg struct {
	err error
}

func (m OffersModel) expireCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.apps) {
		return nil
	}

	offerID := m.apps[idx].Offer.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return expireMsg{err: m.appService.ExpireOffer(ctx, offerID)}
	}
}
