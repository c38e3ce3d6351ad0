package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dohr-michael/advisor/clients/tui/atoms"
	"github.com/dohr-michael/advisor/clients/tui/components"
	"github.com/dohr-michael/advisor/clients/tui/molecules"
	"github.com/dohr-michael/advisor/internal/advisor"
	"github.com/dohr-michael/advisor/internal/agent"
	"github.com/dohr-michael/advisor/internal/voice"
)

// Gateway exchanges one utterance with the agent. Implementations never
// fail: the outcome text is always displayable.
type Gateway interface {
	Exchange(ctx context.Context, utterance string) agent.Outcome
}

// Options wires the app to its collaborators.
type Options struct {
	Gateway          Gateway
	Voice            voice.Input
	Endpoint         string // shown in the header
	Policy           advisor.Policy
	NotificationTTL  time.Duration
	VoiceSubmitDelay time.Duration
	Now              func() time.Time // defaults to time.Now
}

// App is the main TUI application model.
// Architecture: LANDING | (HEADER, CHAT, INPUT), toast on top.
type App struct {
	// Components
	header  *components.Header
	chat    *components.Chat
	landing *components.Landing
	input   molecules.QuestionInput
	spinner atoms.Spinner

	// State
	state    advisor.State
	width    int
	height   int
	spinning bool
	quitting bool

	// Dependencies
	ctx  context.Context
	opts Options
}

// NewApp creates the application. ctx bounds every exchange and capture.
func NewApp(ctx context.Context, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	a := &App{
		header:  components.NewHeader(opts.Endpoint),
		chat:    components.NewChat(),
		landing: components.NewLanding(advisor.Suggestions),
		input:   molecules.NewQuestionInput(),
		spinner: atoms.NewSpinner(components.Info),
		state:   advisor.New(opts.Policy),
		ctx:     ctx,
		opts:    opts,
	}
	a.sync()
	return a
}

// State returns the current advisor state.
func (a *App) State() advisor.State {
	return a.state
}

// Init initializes the application.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateSizes()
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		if a.state.View == advisor.ViewChat {
			var cmd tea.Cmd
			a.chat, cmd = a.chat.Update(msg)
			return a, cmd
		}
		return a, nil

	case molecules.SubmitMsg:
		return a, a.submit(msg.Content)

	case replyMsg:
		return a, a.apply(a.state.Complete(msg.Outcome, a.opts.Now()))

	case voiceResultMsg:
		if msg.Err != nil {
			return a, a.apply(a.state.CaptureFailed())
		}
		cmd := a.apply(a.state.Captured(msg.Text))
		text := msg.Text
		submit := tea.Tick(a.opts.VoiceSubmitDelay, func(time.Time) tea.Msg {
			return voiceSubmitMsg{Text: text}
		})
		return a, tea.Batch(cmd, submit)

	case voiceSubmitMsg:
		return a, a.submit(msg.Text)

	case expireMsg:
		return a, a.apply(a.state.Expire(msg.ID))

	case spinner.TickMsg:
		if !a.busy() {
			a.spinning = false
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		a.sync()
		return a, cmd
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		a.quitting = true
		return tea.Quit
	case "ctrl+x":
		return a.apply(a.state.Dismiss())
	case "ctrl+r":
		return a.listen()
	}

	if a.state.View == advisor.ViewLanding {
		return a.handleLandingKey(msg)
	}
	return a.handleChatKey(msg)
}

func (a *App) handleLandingKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		a.landing.FocusNext()
		a.sync()
		return nil
	case "shift+tab":
		a.landing.FocusPrev()
		a.sync()
		return nil
	case "enter":
		if s, ok := a.landing.FocusedSuggestion(); ok {
			return a.submit(s.Query)
		}
		if a.landing.MicFocused() {
			return a.listen()
		}
	}

	if !a.landing.InputFocused() {
		return nil
	}
	return a.updateInput(msg)
}

func (a *App) handleChatKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.landing.ResetFocus()
		return a.apply(a.state.Back())
	case "pgup", "pgdown":
		var cmd tea.Cmd
		a.chat, cmd = a.chat.Update(msg)
		return cmd
	case "ctrl+b":
		if len(a.chat.LatestProducts()) > 0 {
			return a.apply(a.state.AddToCart())
		}
		return nil
	case "ctrl+f":
		if len(a.chat.LatestProducts()) > 0 {
			return a.apply(a.state.AddFavorite())
		}
		return nil
	}
	return a.updateInput(msg)
}

func (a *App) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.state = a.state.SetInput(a.input.Value())
	return cmd
}

// submit admits text and, when accepted, starts its exchange.
func (a *App) submit(text string) tea.Cmd {
	next, utterance, ok := a.state.Submit(text, a.opts.Now())
	cmd := a.apply(next)
	if !ok {
		return cmd
	}
	return tea.Batch(cmd, a.sendCmd(utterance))
}

// sendCmd runs one exchange off the update loop. Exchanges are never
// cancelled by later ones; each reply arrives as its own replyMsg.
func (a *App) sendCmd(utterance string) tea.Cmd {
	ctx, gw := a.ctx, a.opts.Gateway
	return func() tea.Msg {
		return replyMsg{Outcome: gw.Exchange(ctx, utterance)}
	}
}

// listen starts a voice capture unless one is running.
func (a *App) listen() tea.Cmd {
	next, ok := a.state.StartListening()
	if !ok {
		return nil
	}
	cmd := a.apply(next)

	ctx, in := a.ctx, a.opts.Voice
	capture := func() tea.Msg {
		text, err := in.Capture(ctx)
		return voiceResultMsg{Text: text, Err: err}
	}
	return tea.Batch(cmd, capture)
}

// apply installs next and arms the expiry of a newly shown notification.
func (a *App) apply(next advisor.State) tea.Cmd {
	prev := a.state
	a.state = next
	a.sync()

	var cmds []tea.Cmd
	if n := next.Notification; n != nil && (prev.Notification == nil || prev.Notification.ID != n.ID) {
		id := n.ID
		cmds = append(cmds, tea.Tick(a.opts.NotificationTTL, func(time.Time) tea.Msg {
			return expireMsg{ID: id}
		}))
	}
	if a.busy() && !a.spinning {
		a.spinning = true
		cmds = append(cmds, a.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (a *App) busy() bool {
	return a.state.Loading() || a.state.Listening
}

// sync pushes the advisor state into the components.
func (a *App) sync() {
	if a.input.Value() != a.state.Input {
		a.input.SetValue(a.state.Input)
	}
	a.input.SetEnabled(!a.state.Loading())

	if a.state.View == advisor.ViewLanding {
		a.input.SetPlaceholder(molecules.PlaceholderLanding)
		if !a.landing.InputFocused() {
			a.input.Blur()
		}
	} else {
		a.input.SetPlaceholder(molecules.PlaceholderChat)
	}

	frame := a.spinner.View()
	a.header.SetStatus(a.state.Listening, a.state.Pending, frame)
	a.chat.SetTranscript(a.state.Transcript.Messages())
	a.chat.SetTyping(a.state.Pending, frame)
	a.updateSizes()
}

func (a *App) updateSizes() {
	if a.width == 0 || a.height == 0 {
		return
	}

	headerHeight := 1
	toastHeight := lipgloss.Height(a.toastView())
	if a.state.Notification == nil {
		toastHeight = 0
	}
	inputHeight := lipgloss.Height(a.inputView())

	chatHeight := a.height - headerHeight - toastHeight - inputHeight
	if chatHeight < 3 {
		chatHeight = 3
	}

	a.header.SetWidth(a.width)
	a.chat.SetSize(a.width, chatHeight)
	a.input.SetWidth(a.inputBoxWidth() - 4)
	a.landing.SetSize(a.width, a.height-toastHeight)
}

// inputBoxWidth is the outer width of the input frame for the current view.
func (a *App) inputBoxWidth() int {
	width := max(a.width-2, 14)
	if a.state.View == advisor.ViewLanding {
		width = min(width, 72)
	}
	return width
}

// View renders the application.
func (a *App) View() string {
	if a.quitting {
		return quitStyle.Render("¡Hasta pronto!") + "\n"
	}

	var parts []string
	if toast := a.toastView(); toast != "" {
		parts = append(parts, lipgloss.PlaceHorizontal(a.width, lipgloss.Right, toast))
	}

	switch a.state.View {
	case advisor.ViewChat:
		parts = append([]string{a.header.View()}, parts...)
		parts = append(parts, a.chat.View(), a.inputView())
	default:
		parts = append(parts, a.landing.View(a.inputView(), a.state.Listening, a.spinner.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) toastView() string {
	return components.RenderToast(a.state.Notification, a.width)
}

func (a *App) inputView() string {
	box := inputBox
	if a.input.Focused() {
		box = inputBoxFocused
	}
	return box.Width(a.inputBoxWidth()).Render(a.input.View())
}
