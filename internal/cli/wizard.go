package cli

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/service"
	"github.com/alexanderramin/focusflow/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// focusflowHuhTheme returns a huh theme using the formatter palette.
func focusflowHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func categoryOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.StartCategories))
	for _, c := range domain.StartCategories {
		opts = append(opts, huh.NewOption(c, c))
	}
	return opts
}

// ── start ────────────────────────────────────────────────────────────────────

// newStartWizard asks for a category and starts the timer with it.
func newStartWizard(state *SharedState) *wizardView {
	category := state.LastCategory
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What are you focusing on?").
				Options(categoryOptions()...).
				Value(&category),
		),
	).WithTheme(focusflowHuhTheme()).WithShowHelp(false)

	return newWizardView(state, "Start", form, func() tea.Msg {
		return applyStart(state, category)
	})
}

func applyStart(state *SharedState, category string) tea.Msg {
	category = strings.TrimSpace(category)
	if category == "" {
		return wizardCompleteError(errors.New("pick a category to start"))
	}
	state.App.Timer.Start(category)
	state.LastCategory = category
	return wizardCompleteMsg{}
}

// ── save ─────────────────────────────────────────────────────────────────────

// saveFields holds the save dialog's answers.
type saveFields struct {
	Category   string
	Focus      int
	Visibility domain.Visibility
	Note       string
	Evidence   string
	Confirm    bool
}

// newSaveWizard collects the metadata for a stopped session. Discarding
// or cancelling drops the session without writing anything.
func newSaveWizard(state *SharedState, res timer.Result) *wizardView {
	f := &saveFields{
		Category:   domain.CoalesceStr(res.Category, state.LastCategory),
		Focus:      state.LastFocus,
		Visibility: state.LastVisibility,
		Confirm:    true,
	}

	focusOpts := make([]huh.Option[int], 0, domain.MaxFocusLevel)
	for lvl := domain.MaxFocusLevel; lvl >= domain.MinFocusLevel; lvl-- {
		focusOpts = append(focusOpts, huh.NewOption(fmt.Sprintf("%2d  %s", lvl, formatter.FocusLabel(lvl)), lvl))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptionsWith(f.Category)...).
				Value(&f.Category),
			huh.NewSelect[int]().
				Title("How focused were you?").
				Options(focusOpts...).
				Value(&f.Focus),
			huh.NewSelect[domain.Visibility]().
				Title("Visibility").
				Options(
					huh.NewOption("Public", domain.VisibilityPublic),
					huh.NewOption("Private", domain.VisibilityPrivate),
				).
				Value(&f.Visibility),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Note").
				Placeholder("What did you get done?").
				CharLimit(500).
				Value(&f.Note),
			huh.NewInput().
				Title("Evidence link").
				Placeholder("https://... (optional)").
				Validate(validateEvidenceURL).
				Value(&f.Evidence),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Save %s session?", formatter.SessionDuration(res.Duration))).
				Affirmative("Save").
				Negative("Discard").
				Value(&f.Confirm),
		),
	).WithTheme(focusflowHuhTheme()).WithShowHelp(false)

	return newWizardView(state, "Save session", form, func() tea.Msg {
		if !f.Confirm {
			return wizardCompleteOutput(formatter.Dim("Session discarded."))
		}
		return applySaveSession(state, res, *f)
	}).withCancelOutput("Session discarded.")
}

// categoryOptionsWith returns the start categories plus current when it
// is a custom label.
func categoryOptionsWith(current string) []huh.Option[string] {
	opts := categoryOptions()
	for _, c := range domain.StartCategories {
		if c == current {
			return opts
		}
	}
	if current != "" {
		opts = append([]huh.Option[string]{huh.NewOption(current, current)}, opts...)
	}
	return opts
}

// applySaveSession persists a stopped session with the dialog's answers.
// It is separate from the form so tests can drive it directly.
func applySaveSession(state *SharedState, res timer.Result, f saveFields) tea.Msg {
	focus := f.Focus
	a, err := state.App.Activities.SaveSession(state.ctx(), res, service.SaveInput{
		Category:    strings.TrimSpace(f.Category),
		Note:        strings.TrimSpace(f.Note),
		EvidenceURL: strings.TrimSpace(f.Evidence),
		FocusLevel:  &focus,
		Visibility:  f.Visibility,
	})
	if err != nil {
		return wizardCompleteError(err)
	}

	state.LastCategory = a.Category
	state.LastFocus = focus
	state.LastVisibility = a.Visibility

	return wizardCompleteOutput(formatter.StyleGreen.Render(fmt.Sprintf(
		"Saved %s of %s.", formatter.FormatMinutes(a.DurationMinutes), a.Category)) +
		"\n\n" + formatter.FormatActivityDetail(a, state.App.now().Now()))
}

// validateEvidenceURL accepts an empty value or an absolute http(s) URL.
func validateEvidenceURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("enter an http(s) link or leave blank")
	}
	return nil
}

// errorOutput renders an error for the output area.
func errorOutput(err error) string {
	return formatter.StyleRed.Render("Error: ") + err.Error()
}
