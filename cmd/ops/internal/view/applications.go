package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/depositflow/depositflow/internal/application"
)

type applicationsState int

const (
	applicationsStateBrowse applicationsState = iota
	applicationsStateConfirm
)

type ApplicationsModel struct {
	CommonModel
	appService *application.Service

	state applicationsState
	table table.Model
	apps  []*application.Application
	form  *huh.Form

	statusFilterIdx int

	filter  application.ListFilter
	loading bool
	err     error
	status  string

	confirmPayout bool
}

func NewApplicationsModel(appSvc *application.Service) ApplicationsModel {
	columns := []table.Column{
		{Title: "Created", Width: 12},
		{Title: "Tenant", Width: 28},
		{Title: "Property", Width: 32},
		{Title: "Deposit", Width: 9},
		{Title: "Advance", Width: 9},
		{Title: "Status", Width: 16},
		{Title: "Offer", Width: 10},
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

	return ApplicationsModel{
		appService: appSvc,
		table:      t,
		filter:     application.ListFilter{},
	}
}

func (m ApplicationsModel) Title() string { return "Applications" }
func (m ApplicationsModel) ShortHelp() string {
	if m.state == applicationsStateConfirm {
		return "Confirm payout | Esc: cancel"
	}
	return "Esc: back | p: mark paid out | s: status filter | r: refresh"
}

func (m ApplicationsModel) Init() tea.Cmd {
	return m.loadAppsCmd()
}

func (m ApplicationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadApplicationsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.apps = msg.apps
		m.refreshTable()
		return m, nil

	case payoutMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error marking paid out: %v", msg.err)
		} else {
			m.status = "Tenancy marked paid out"
		}
		m.state = applicationsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadAppsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case applicationsStateBrowse:
		return m.updateBrowse(msg)
	case applicationsStateConfirm:
		return m.updateConfirm(msg)
	}

	return m, nil
}

func (m ApplicationsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadAppsCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % 4
			m.applyFilter()
			return m, m.loadAppsCmd()
		case "p":
			return m.enterConfirmMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ApplicationsModel) enterConfirmMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.apps) {
		return m, nil
	}

	app := m.apps[idx]
	if app.Tenancy.Status != application.TenancyDeedSigned {
		m.status = "Only signed tenancies can be paid out"
		return m, nil
	}

	m.confirmPayout = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("payout").
				Title(fmt.Sprintf("Mark %s as paid out?", FormatPounds(app.Offer.AdvanceAmount))).
				Description(fmt.Sprintf("%s — %s", app.OwnerEmail, app.Property.AddressLine)).
				Value(&m.confirmPayout),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = applicationsStateConfirm
	m.table.Blur()
	return m, m.form.Init()
}

func (m ApplicationsModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = applicationsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.confirmPayout {
		m.state = applicationsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, nil
	}

	return m, m.payoutCmd()
}

func (m ApplicationsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading applications...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	statusLabels := []string{"All", "Offer Generated", "Deed Signed", "Paid Out"}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(statusLabels[m.statusFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == applicationsStateConfirm && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *ApplicationsModel) applyFilter() {
	switch m.statusFilterIdx {
	case 1:
		m.filter.TenancyStatus = new(application.TenancyOfferGenerated)
	case 2:
		m.filter.TenancyStatus = new(application.TenancyDeedSigned)
	case 3:
		m.filter.TenancyStatus = new(application.TenancyPaidOut)
	default:
		m.filter.TenancyStatus = nil
	}
}

func (m *ApplicationsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.apps))
	for _, app := range m.apps {
		advance := ""
		offerStatus := ""
		if app.Offer != nil {
			advance = FormatPounds(app.Offer.AdvanceAmount)
			offerStatus = string(app.Offer.Status)
		}
		rows = append(rows, table.Row{
			FormatDate(app.Tenancy.CreatedAt),
			app.OwnerEmail,
			fmt.Sprintf("%s, %s", app.Property.AddressLine, app.Property.Postcode),
			FormatPounds(app.Tenancy.DepositAmount),
			advance,
			string(app.Tenancy.Status),
			offerStatus,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadApplicationsMsg struct {
	apps []*application.Application
	err  error
}

func (m ApplicationsModel) loadAppsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		apps, err := m.appService.ListApplications(ctx, m.filter)
		return loadApplicationsMsg{apps: apps, err: err}
	}
}

type payoutMsg struct {
	err error
}

func (m ApplicationsModel) payoutCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.apps) {
		return nil
	}

	tenancyID := m.apps[idx].Tenancy.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return payoutMsg{err: m.appService.MarkPaidOut(ctx, tenancyID)}
	}
}
