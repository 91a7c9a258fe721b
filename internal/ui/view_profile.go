package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabdemo/internal/config"
)

// ProfileView is the Profile tab: static profile content in a scrollable viewport.
type ProfileView struct {
	profile  config.ProfileConfig
	viewport viewport.Model
	width    int
}

// Ensure ProfileView implements FocusView.
var _ FocusView = (*ProfileView)(nil)

// NewProfileView creates the Profile tab showing profile.
func NewProfileView(profile config.ProfileConfig) *ProfileView {
	p := &ProfileView{
		profile:  profile,
		viewport: viewport.New(defaultWidth, defaultHeight-tabBarHeight-footerHeight),
	}
	p.viewport.SetContent(p.render())
	return p
}

// InsertMode implements FocusView; the Profile tab has no text fields.
func (p *ProfileView) InsertMode() bool { return false }

// Blur implements FocusView.
func (p *ProfileView) Blur() {}

// Init implements View.
func (p *ProfileView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *ProfileView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		p.width = msg.Width
		p.viewport.Width = msg.Width
		p.viewport.Height = msg.Height
		p.viewport.SetContent(p.render())
		return p, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View implements View.
func (p *ProfileView) View() string {
	return p.viewport.View()
}

func (p *ProfileView) render() string {
	width := p.width
	if width <= 0 {
		width = defaultWidth
	}
	cardWidth := min(width, 64)

	avatar := lipgloss.JoinVertical(lipgloss.Center,
		Styles.Count.Render("◉"),
		Styles.Profile.Render(p.profile.Name),
		Styles.Muted.Render(p.profile.Bio),
	)

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Your Profile") + "\n")
	b.WriteString(lipgloss.PlaceHorizontal(cardWidth, lipgloss.Center, avatar) + "\n\n")
	b.WriteString(renderCard("About Me", Styles.Normal.Render(p.profile.About), cardWidth) + "\n")

	contact := Styles.Muted.Render("✉ ") + Styles.Normal.Render(p.profile.Email) + "\n" +
		Styles.Muted.Render("☎ ") + Styles.Normal.Render(p.profile.Phone)
	b.WriteString(renderCard("Contact", contact, cardWidth))
	return b.String()
}
