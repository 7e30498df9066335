package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/onboarding/internal/models"
	"github.com/dmitrijs2005/onboarding/internal/onboarding"
)

var (
	purple     = lipgloss.Color("#8E5AF7")
	deepPurple = lipgloss.Color("#5D11F7")
	white      = lipgloss.Color("#FFFFFF")
	red        = lipgloss.Color("#E53935")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(purple)
	textStyle   = lipgloss.NewStyle().Foreground(deepPurple)
	buttonStyle = lipgloss.NewStyle().Bold(true).Foreground(white).Background(purple).Padding(0, 2)
	alertStyle  = lipgloss.NewStyle().Bold(true).Foreground(red).
			Border(lipgloss.NormalBorder()).BorderForeground(red).Padding(0, 1)
	cardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(purple).Padding(1, 4).Align(lipgloss.Center)
	signOutStyle = lipgloss.NewStyle().Bold(true).Foreground(white).Background(lipgloss.Color("#000000")).Padding(0, 2)
)

const (
	welcomeTitle = "Find yourself."
	welcomeText  = "A small app to try out onboarding."
)

// renderStep draws the wizard screen for s.
func renderStep(s onboarding.State) string {
	var b strings.Builder

	switch s.Step {
	case onboarding.StepWelcome:
		b.WriteString(titleStyle.Render(welcomeTitle) + "\n")
		b.WriteString(textStyle.Render(welcomeText) + "\n")
	case onboarding.StepName:
		b.WriteString(titleStyle.Render("What is your name?") + "\n")
		if s.Draft.Name != "" {
			b.WriteString(textStyle.Render("Current: "+s.Draft.Name) + "\n")
		}
	case onboarding.StepAge:
		b.WriteString(titleStyle.Render("What is your age?") + "\n")
		b.WriteString(textStyle.Render(fmt.Sprintf("%.0f", s.Draft.Age)) + "\n")
		b.WriteString(ageSlider(s.Draft.Age) + "\n")
	case onboarding.StepGender:
		b.WriteString(titleStyle.Render("What is your gender?") + "\n")
		for i, g := range models.Genders {
			fmt.Fprintf(&b, "  %d) %s\n", i+1, g)
		}
		if s.Draft.Gender != "" {
			b.WriteString(textStyle.Render("Selected: "+s.Draft.Gender) + "\n")
		}
	}

	b.WriteString(buttonStyle.Render(s.Step.ButtonLabel()))
	return b.String()
}

// ageSlider draws a 20-cell track with the knob at age.
func ageSlider(age float64) string {
	const cells = 20
	pos := int((onboarding.ClampAge(age) - onboarding.MinAge) / (onboarding.MaxAge - onboarding.MinAge) * cells)
	if pos >= cells {
		pos = cells - 1
	}
	track := strings.Repeat("─", pos) + "●" + strings.Repeat("─", cells-pos-1)
	return fmt.Sprintf("%d %s %d", onboarding.MinAge, track, onboarding.MaxAge)
}

// renderAlert draws the modal alert.
func renderAlert(title string) string {
	return alertStyle.Render(title)
}

// renderProfile draws the profile card.
func renderProfile(v models.ProfileView) string {
	body := strings.Join([]string{
		titleStyle.Render(v.Name),
		textStyle.Render(v.AgeText()),
		textStyle.Render(v.Gender),
	}, "\n")
	return cardStyle.Render(body) + "\n" + signOutStyle.Render("SIGN OUT") + " (type 'signout')"
}
