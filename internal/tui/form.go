// Package tui implements the interactive form that gathers one
// launcher-entry request field by field and then runs the installation.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"deskentry/internal/config"
	"deskentry/internal/installer"
	"deskentry/internal/launcher"
)

// InstallFunc runs the installation once the user confirms the form.
type InstallFunc func(launcher.Request) (installer.Outcome, error)

// step identifies one page of the form.
type step int

const (
	stepScript step = iota
	stepName
	stepIcon
	stepMethod
	stepInterpreter
	stepComment
	stepCategories
	stepOptions
	stepConfirm
	stepInstalling
	stepDone
)

// FormModel walks the user through one launcher-entry request. Enter
// advances, esc goes back, ctrl+c leaves without installing.
type FormModel struct {
	install InstallFunc
	history []string

	step step

	script      textinput.Model
	name        textinput.Model
	icon        textinput.Model
	interpreter textinput.Model
	comment     textinput.Model

	methodCursor int

	// histCursor is the position in history shown in the interpreter input;
	// -1 means the user's own text, preserved in typed.
	histCursor int
	typed      string

	catOptions []string
	catCursor  int
	selected   map[int]struct{}

	optCursor   int
	terminal    bool
	desktopCopy bool

	fieldErr string
	issues   launcher.ValidationErrors
	outcome  installer.Outcome
	err      error
}

// NewForm builds the form with configured defaults prefilled.
func NewForm(cfg config.Config, history []string, install InstallFunc) FormModel {
	script := textinput.New()
	script.Placeholder = "/path/to/script.sh"
	script.Focus()

	name := textinput.New()
	name.Placeholder = "My Cool App"

	icon := textinput.New()
	icon.Placeholder = "/path/to/icon.png"

	interpreter := textinput.New()

	comment := textinput.New()
	comment.Placeholder = "optional tooltip shown in menus"

	methodCursor := 0
	if method, err := launcher.ParseMethod(cfg.DefaultMethod); err == nil {
		for i, candidate := range launcher.Methods() {
			if candidate == method {
				methodCursor = i
				break
			}
		}
	}

	return FormModel{
		install:      install,
		history:      history,
		script:       script,
		name:         name,
		icon:         icon,
		interpreter:  interpreter,
		comment:      comment,
		methodCursor: methodCursor,
		histCursor:   -1,
		catOptions:   launcher.CategoriesWith(cfg.ExtraCategories),
		selected:     make(map[int]struct{}),
		terminal:     cfg.Terminal,
		desktopCopy:  cfg.CopyToDesktop,
	}
}

// Err returns the installation failure, if any. Leaving the form early is
// not an error.
func (m FormModel) Err() error {
	return m.err
}

// Outcome returns the installation outcome for the final report.
func (m FormModel) Outcome() installer.Outcome {
	return m.outcome
}

// Init satisfies the tea.Model interface.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update satisfies the tea.Model interface.
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case installResultMsg:
		return m.applyResult(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m FormModel) applyResult(msg installResultMsg) (tea.Model, tea.Cmd) {
	m.outcome = msg.outcome

	// Field problems route back to the offending page instead of ending the
	// form; everything else is final.
	var issues launcher.ValidationErrors
	if errors.As(msg.err, &issues) {
		m.issues = issues
		return m, m.setStep(m.stepForField(issues[0].Field))
	}

	m.err = msg.err
	m.step = stepDone
	return m, nil
}

func (m FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.step {
	case stepScript, stepName, stepIcon, stepInterpreter, stepComment:
		return m.updateTextStep(msg)
	case stepMethod:
		return m.updateMethodStep(msg)
	case stepCategories:
		return m.updateCategoriesStep(msg)
	case stepOptions:
		return m.updateOptionsStep(msg)
	case stepConfirm:
		return m.updateConfirmStep(msg)
	case stepInstalling:
		return m, nil
	case stepDone:
		switch msg.String() {
		case "enter", "esc", "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m FormModel) updateTextStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.advanceTextStep()
	case "esc":
		if m.step == stepScript {
			return m, tea.Quit
		}
		return m, m.setStep(m.prevStep())
	case "up", "down":
		if m.step == stepInterpreter && len(m.history) > 0 {
			m.cycleHistory(msg.String() == "up")
			return m, nil
		}
	}

	input := m.currentInput()
	if input == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if m.step == stepInterpreter {
		// Any edit leaves history browsing.
		m.histCursor = -1
	}
	m.fieldErr = ""
	return m, cmd
}

func (m FormModel) advanceTextStep() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepScript:
		script := strings.TrimSpace(m.script.Value())
		if script == "" {
			m.fieldErr = "a script or program path is required"
			return m, nil
		}
		if strings.TrimSpace(m.name.Value()) == "" {
			m.name.SetValue(launcher.SuggestName(script))
			m.name.CursorEnd()
		}
	case stepName:
		if strings.TrimSpace(m.name.Value()) == "" {
			m.fieldErr = "an application name is required"
			return m, nil
		}
	case stepIcon:
		if strings.TrimSpace(m.icon.Value()) == "" {
			m.fieldErr = "an icon file is required"
			return m, nil
		}
	}
	return m, m.setStep(m.nextStep())
}

func (m FormModel) updateMethodStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	methods := launcher.Methods()
	switch msg.String() {
	case "up", "k":
		if m.methodCursor > 0 {
			m.methodCursor--
		}
	case "down", "j":
		if m.methodCursor < len(methods)-1 {
			m.methodCursor++
		}
	case "enter":
		return m, m.setStep(m.nextStep())
	case "esc":
		return m, m.setStep(m.prevStep())
	}
	return m, nil
}

func (m FormModel) updateCategoriesStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.catCursor > 0 {
			m.catCursor--
		}
	case "down", "j":
		if m.catCursor < len(m.catOptions)-1 {
			m.catCursor++
		}
	case " ":
		if _, ok := m.selected[m.catCursor]; ok {
			delete(m.selected, m.catCursor)
		} else {
			m.selected[m.catCursor] = struct{}{}
		}
	case "enter":
		return m, m.setStep(stepOptions)
	case "esc":
		return m, m.setStep(m.prevStep())
	}
	return m, nil
}

func (m FormModel) updateOptionsStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.optCursor > 0 {
			m.optCursor--
		}
	case "down", "j":
		if m.optCursor < 1 {
			m.optCursor++
		}
	case " ":
		if m.optCursor == 0 {
			m.terminal = !m.terminal
		} else {
			m.desktopCopy = !m.desktopCopy
		}
	case "enter":
		m.step = stepConfirm
	case "esc":
		m.step = stepCategories
	}
	return m, nil
}

func (m FormModel) updateConfirmStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.step = stepInstalling
		m.issues = nil
		return m, m.runInstall()
	case "esc":
		m.step = stepOptions
	}
	return m, nil
}

func (m FormModel) runInstall() tea.Cmd {
	req := m.request()
	install := m.install
	return func() tea.Msg {
		outcome, err := install(req)
		return installResultMsg{outcome: outcome, err: err}
	}
}

// request assembles the launcher request from the form state.
func (m FormModel) request() launcher.Request {
	var categories []string
	for i, category := range m.catOptions {
		if _, ok := m.selected[i]; ok {
			categories = append(categories, category)
		}
	}

	return launcher.Request{
		Name:          strings.TrimSpace(m.name.Value()),
		ScriptPath:    strings.TrimSpace(m.script.Value()),
		IconPath:      strings.TrimSpace(m.icon.Value()),
		Method:        m.method(),
		Interpreter:   strings.TrimSpace(m.interpreter.Value()),
		Terminal:      m.terminal,
		Comment:       strings.TrimSpace(m.comment.Value()),
		Categories:    categories,
		CopyToDesktop: m.desktopCopy,
	}
}

func (m FormModel) method() launcher.Method {
	return launcher.Methods()[m.methodCursor]
}

// nextStep returns the page after the current one, skipping the interpreter
// page for direct execution.
func (m FormModel) nextStep() step {
	next := m.step + 1
	if next == stepInterpreter && m.method() == launcher.MethodDirect {
		next++
	}
	return next
}

func (m FormModel) prevStep() step {
	prev := m.step - 1
	if prev == stepInterpreter && m.method() == launcher.MethodDirect {
		prev--
	}
	return prev
}

func (m FormModel) stepForField(field string) step {
	switch field {
	case "script":
		return stepScript
	case "name":
		return stepName
	case "icon":
		return stepIcon
	case "method":
		return stepMethod
	case "categories":
		return stepCategories
	}
	return stepScript
}

// setStep switches pages and moves keyboard focus to the page's input.
func (m *FormModel) setStep(s step) tea.Cmd {
	m.step = s
	m.fieldErr = ""

	m.script.Blur()
	m.name.Blur()
	m.icon.Blur()
	m.interpreter.Blur()
	m.comment.Blur()

	if s == stepInterpreter {
		m.prepareInterpreter()
	}
	if input := m.currentInput(); input != nil {
		return input.Focus()
	}
	return nil
}

func (m *FormModel) currentInput() *textinput.Model {
	switch m.step {
	case stepScript:
		return &m.script
	case stepName:
		return &m.name
	case stepIcon:
		return &m.icon
	case stepInterpreter:
		return &m.interpreter
	case stepComment:
		return &m.comment
	}
	return nil
}

func (m *FormModel) prepareInterpreter() {
	m.histCursor = -1
	switch m.method() {
	case launcher.MethodCustom:
		m.interpreter.Placeholder = "command prefix, e.g. wine --fullscreen"
	default:
		m.interpreter.Placeholder = m.method().DefaultInterpreter() + " from PATH if left blank"
	}
}

// cycleHistory moves through remembered interpreters; up goes older, down
// returns toward the user's own text.
func (m *FormModel) cycleHistory(up bool) {
	if up {
		if m.histCursor >= len(m.history)-1 {
			return
		}
		if m.histCursor == -1 {
			m.typed = m.interpreter.Value()
		}
		m.histCursor++
	} else {
		if m.histCursor == -1 {
			return
		}
		m.histCursor--
	}

	if m.histCursor == -1 {
		m.interpreter.SetValue(m.typed)
	} else {
		m.interpreter.SetValue(m.history[m.histCursor])
	}
	m.interpreter.CursorEnd()
}

// View satisfies the tea.Model interface.
func (m FormModel) View() string {
	switch m.step {
	case stepScript:
		return m.textView("Script or program to launch", m.script, "script")
	case stepName:
		return m.textView("Application name", m.name, "name")
	case stepIcon:
		return m.textView("Icon file (png, svg, or xpm)", m.icon, "icon")
	case stepMethod:
		return m.methodView()
	case stepInterpreter:
		return m.interpreterView()
	case stepComment:
		return m.textView("Comment", m.comment, "")
	case stepCategories:
		return m.categoriesView()
	case stepOptions:
		return m.optionsView()
	case stepConfirm:
		return m.confirmView()
	case stepInstalling:
		return titleStyle.Render("Installing...") + "\n"
	case stepDone:
		return m.doneView()
	}
	return ""
}

func (m FormModel) textView(title string, input textinput.Model, field string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString("  " + input.View() + "\n")
	if m.fieldErr != "" {
		b.WriteString("  " + errorStyle.Render(m.fieldErr) + "\n")
	}
	if field != "" {
		if issue := m.issueFor(field); issue != "" {
			b.WriteString("  " + errorStyle.Render(issue) + "\n")
		}
	}
	b.WriteString("\n" + helpStyle.Render("enter continue • esc back • ctrl+c quit"))
	return b.String()
}

func (m FormModel) methodView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Execution method") + "\n\n")
	for i, method := range launcher.Methods() {
		cursor := "  "
		line := fmt.Sprintf("%-8s %s", method, helpStyle.Render(method.Summary()))
		if i == m.methodCursor {
			cursor = cursorStyle.Render("> ")
			line = cursorStyle.Render(fmt.Sprintf("%-8s", method.String())) + " " + helpStyle.Render(method.Summary())
		}
		b.WriteString("  " + cursor + line + "\n")
	}
	if issue := m.issueFor("method"); issue != "" {
		b.WriteString("\n  " + errorStyle.Render(issue) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ choose • enter continue • esc back"))
	return b.String()
}

func (m FormModel) interpreterView() string {
	title := "Interpreter"
	if m.method() == launcher.MethodCustom {
		title = "Command prefix"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString("  " + m.interpreter.View() + "\n")
	if len(m.history) > 0 {
		b.WriteString("\n  " + helpStyle.Render("recently used (↑/↓ to browse):") + "\n")
		shown := m.history
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for i, entry := range shown {
			marker := "  "
			if i == m.histCursor {
				marker = cursorStyle.Render("> ")
			}
			b.WriteString("  " + marker + entry + "\n")
		}
	}
	b.WriteString("\n" + helpStyle.Render("enter continue • esc back"))
	return b.String()
}

func (m FormModel) categoriesView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Menu categories") + "\n\n")

	// Window the list around the cursor so long vocabularies stay readable.
	const window = 10
	start := 0
	if m.catCursor >= window {
		start = m.catCursor - window + 1
	}
	end := start + window
	if end > len(m.catOptions) {
		end = len(m.catOptions)
	}

	for i := start; i < end; i++ {
		cursor := "  "
		if i == m.catCursor {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if _, ok := m.selected[i]; ok {
			check = "[x]"
		}
		b.WriteString("  " + cursor + check + " " + m.catOptions[i] + "\n")
	}
	if issue := m.issueFor("categories"); issue != "" {
		b.WriteString("\n  " + errorStyle.Render(issue) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ move • space toggle • enter continue • esc back"))
	return b.String()
}

func (m FormModel) optionsView() string {
	rows := []struct {
		label string
		value bool
	}{
		{"Run in terminal", m.terminal},
		{"Also copy to Desktop", m.desktopCopy},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Options") + "\n\n")
	for i, row := range rows {
		cursor := "  "
		if i == m.optCursor {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if row.value {
			check = "[x]"
		}
		b.WriteString("  " + cursor + check + " " + row.label + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ move • space toggle • enter continue • esc back"))
	return b.String()
}

func (m FormModel) confirmView() string {
	req := m.request()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Create this launcher?") + "\n\n")
	b.WriteString("  " + labelStyle.Render("Name:") + "       " + req.Name + "\n")
	b.WriteString("  " + labelStyle.Render("Script:") + "     " + req.ScriptPath + "\n")
	b.WriteString("  " + labelStyle.Render("Icon:") + "       " + req.IconPath + "\n")
	method := req.Method.String()
	if req.Interpreter != "" {
		method += " (" + req.Interpreter + ")"
	}
	b.WriteString("  " + labelStyle.Render("Method:") + "     " + method + "\n")
	b.WriteString("  " + labelStyle.Render("Terminal:") + "   " + yesNo(req.Terminal) + "\n")
	b.WriteString("  " + labelStyle.Render("Desktop:") + "    " + yesNo(req.CopyToDesktop) + "\n")
	if req.Comment != "" {
		b.WriteString("  " + labelStyle.Render("Comment:") + "    " + req.Comment + "\n")
	}
	if len(req.Categories) > 0 {
		b.WriteString("  " + labelStyle.Render("Categories:") + " " + strings.Join(req.Categories, ", ") + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter install • esc back"))
	return b.String()
}

func (m FormModel) doneView() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(errorStyle.Render("Installation failed") + "\n\n")
	} else {
		b.WriteString(stepStyle("done").Render("Shortcut created") + "\n\n")
	}

	for _, completed := range m.outcome.Completed {
		b.WriteString("  " + stepStyle("done").Render("✓") + " " + string(completed) + "\n")
	}
	if m.outcome.FailedStep != "" {
		b.WriteString("  " + stepStyle("failed").Render("✗") + " " + string(m.outcome.FailedStep) + "\n")
	}
	for _, warning := range m.outcome.Warnings {
		b.WriteString("  " + stepStyle("warning").Render("!") + " " + warning.Message + "\n")
	}

	if m.err != nil {
		b.WriteString("\n  " + errorStyle.Render(m.err.Error()) + "\n")
	} else {
		b.WriteString("\n  Shortcut: " + m.outcome.Plan.DescriptorFile + "\n")
		b.WriteString("  Script:   " + m.outcome.Plan.ScriptFile + "\n")
		if m.outcome.DesktopCopied {
			b.WriteString("  Desktop:  " + m.outcome.Plan.DesktopFile + "\n")
		}
		b.WriteString("\n  " + helpStyle.Render("Run 'update-desktop-database' or log out/in for the shortcut to appear in menus.") + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter exit"))
	return b.String()
}

func (m FormModel) issueFor(field string) string {
	for _, issue := range m.issues {
		if issue.Field == field {
			return issue.Message
		}
	}
	return ""
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
