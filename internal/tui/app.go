package tui

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Taishi66/podterm/internal/config"
	"github.com/Taishi66/podterm/internal/domain"
	"github.com/Taishi66/podterm/internal/health"
	"github.com/Taishi66/podterm/internal/podview"
	"github.com/Taishi66/podterm/internal/selection"
	"github.com/Taishi66/podterm/internal/session"
)

// ClientFactory creates a new KubeGateway (used for reconnection from error screen).
type ClientFactory func() (domain.KubeGateway, error)

// SessionStore records the log and shell sessions opened from the UI.
type SessionStore interface {
	session.Registry
	Add(id session.Identity)
	Remove(id session.Identity) bool
}

// podInvalidator is implemented by gateways that cache pod lists.
type podInvalidator interface {
	InvalidatePods()
}

const watchRetryDelay = 2 * time.Second

// --- Views ---

type View int

const (
	ViewProjects View = iota
	ViewPods
	ViewPod // containers of one pod
	ViewLogs
	ViewError // startup error screen
)

func (v View) String() string {
	switch v {
	case ViewProjects:
		return "PROJECTS"
	case ViewPods:
		return "PODS"
	case ViewPod:
		return "POD"
	case ViewLogs:
		return "LOGS"
	default:
		return ""
	}
}

// --- Messages ---

type namespacesLoadedMsg struct{ items []domain.NamespaceInfo }
type podsLoadedMsg struct{ items []domain.PodInfo }
type logsLoadedMsg struct{ content string }
type apiErrMsg struct{ err error }
type execDoneMsg struct {
	id  session.Identity
	err error
}
type watchEventMsg struct {
	gen   int
	event domain.WatchEvent
}
type watchStoppedMsg struct{ gen int }
type watchRetryMsg struct{ gen int }

// --- Model ---

type Model struct {
	client        domain.KubeGateway
	clientFactory ClientFactory
	sessions      SessionStore
	log           *slog.Logger

	// Views
	view     View
	prevView View

	// Data
	namespaces []domain.NamespaceInfo
	pods       []domain.PodInfo
	logState   logState
	detail     podDetailState

	// selected is the last log selection. Its container is shown as the
	// focused one when its pod is rendered.
	selected session.Identity

	// UI state
	cursor     int
	width      int
	height     int
	loading    bool
	toast      toast
	startupErr error // non-nil if launched with NewModelWithError

	// Filter
	filter    textinput.Model
	filtering bool

	// Connection state
	disconnected bool

	// Watch state. watchGen tags listeners so a stopped watch cannot
	// deliver into its successor.
	watchCancel context.CancelFunc
	watching    bool
	watchCh     <-chan domain.WatchEvent
	watchGen    int

	sortState SortState

	cfg *config.AppConfig
}

// NewModel builds the UI around client. sessions is shared for the life of
// the process; when nil, a capacity-bounded cache without expiry is used.
func NewModel(client domain.KubeGateway, factory ClientFactory, sessions SessionStore, cfg *config.AppConfig) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if sessions == nil {
		sessions = session.NewCache(cfg.Sessions.Capacity, 0, slog.Default())
	}

	fi := textinput.New()
	fi.Placeholder = "filtre..."
	fi.CharLimit = 64
	fi.Width = 30

	logger := slog.Default().With("component", "tui")

	return Model{
		client:        client,
		clientFactory: factory,
		sessions:      sessions,
		log:           logger,
		view:          ViewPods,
		filter:        fi,
		cfg:           cfg,
	}
}

func NewModelWithError(err error, factory ClientFactory, sessions SessionStore, cfg *config.AppConfig) Model {
	m := NewModel(nil, factory, sessions, cfg)
	m.view = ViewError
	m.startupErr = err
	return m
}

func (m Model) Init() tea.Cmd {
	if m.view == ViewError {
		return nil
	}
	return m.loadCurrentView()
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case namespacesLoadedMsg:
		m.namespaces = msg.items
		m.loading = false
		m.cursor = 0
		m.disconnected = false
		return m, nil

	case podsLoadedMsg:
		m.pods = msg.items
		m.loading = false
		m.disconnected = false
		if m.view == ViewPods {
			m.cursor = 0
		}
		if pod := m.detailPod(); pod != nil {
			m.detail.clamp(len(pod.Containers))
		}
		cmd := m.startWatch()
		return m, cmd

	case watchEventMsg:
		if msg.gen != m.watchGen {
			return m, nil
		}
		m.mergePodEvent(msg.event)
		if m.watchCh != nil {
			return m, listenWatch(m.watchCh, m.watchGen)
		}
		return m, nil

	case watchStoppedMsg:
		if msg.gen != m.watchGen {
			return m, nil
		}
		m.watching = false
		m.log.Debug("Pod watch stopped, retrying.", "delay", watchRetryDelay)
		gen := m.watchGen
		return m, tea.Tick(watchRetryDelay, func(time.Time) tea.Msg {
			return watchRetryMsg{gen: gen}
		})

	case watchRetryMsg:
		if msg.gen != m.watchGen || m.watching {
			return m, nil
		}
		cmd := m.startWatch()
		return m, cmd

	case logsLoadedMsg:
		m.logState.setContent(msg.content)
		m.loading = false
		return m, nil

	case execDoneMsg:
		if msg.err != nil {
			m.sessions.Remove(msg.id)
			m.log.Warn("Shell exited with error.", "session", msg.id.String(), "err", msg.err)
			m.toast = newToast(fmt.Sprintf("Exec: %v", msg.err), toastError)
		} else {
			m.toast = newToast("Shell terminé", toastSuccess)
		}
		m.invalidatePods()
		return m, tea.Batch(scheduleToastClear(), m.loadCurrentView())

	case apiErrMsg:
		return m.handleAPIError(msg.err)

	case toastExpiredMsg:
		m.toast = toast{}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Startup error screen: only q/r
	if m.view == ViewError {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.clientFactory == nil {
				return m, nil
			}
			newClient, err := m.clientFactory()
			if err != nil {
				m.startupErr = err
				return m, nil
			}
			m.client = newClient
			m.startupErr = nil
			m.view = ViewPods
			m.loading = true
			return m, m.loadCurrentView()
		}
		return m, nil
	}

	// Filter mode
	if m.filtering {
		return m.handleFilterInput(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		if m.view == ViewLogs || m.view == ViewPod {
			return m.back()
		}
		m.stopWatch()
		return m, tea.Quit

	case key.Matches(msg, keys.Escape):
		if m.view == ViewLogs || m.view == ViewPod {
			return m.back()
		}
		m.toast = toast{}
		return m, nil

	// Tab switching
	case key.Matches(msg, keys.Tab1):
		return m.switchView(ViewProjects)
	case key.Matches(msg, keys.Tab2):
		return m.switchView(ViewPods)
	case key.Matches(msg, keys.TabNext):
		if m.view == ViewProjects {
			return m.switchView(ViewPods)
		}
		return m.switchView(ViewProjects)

	// Filter
	case key.Matches(msg, keys.Filter):
		if m.view == ViewProjects || m.view == ViewPods {
			m.filtering = true
			m.filter.SetValue("")
			m.filter.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, keys.Refresh):
		return m.refresh()

	// Navigation
	case key.Matches(msg, keys.Down):
		m.move(1)
	case key.Matches(msg, keys.Up):
		m.move(-1)
	case key.Matches(msg, keys.PageDown):
		m.move(20)
	case key.Matches(msg, keys.PageUp):
		m.move(-20)
	case key.Matches(msg, keys.Top):
		switch m.view {
		case ViewLogs:
			m.logState.offset = 0
		case ViewPod:
			m.detail.cursor = 0
		default:
			m.cursor = 0
		}
	case key.Matches(msg, keys.Bottom):
		switch m.view {
		case ViewLogs:
			m.logState.jumpToBottom(m.contentHeight())
		case ViewPod:
			m.detail.moveDown(m.detailLen(), m.detailLen())
		default:
			m.cursor = max(m.listLen()-1, 0)
		}

	case key.Matches(msg, keys.Enter):
		return m.handleEnter()

	case key.Matches(msg, keys.Shell):
		return m.handleShell()

	case key.Matches(msg, keys.Previous):
		if m.view == ViewLogs {
			return m.togglePreviousLogs()
		}
	case key.Matches(msg, keys.Wrap):
		if m.view == ViewLogs {
			m.logState.wrap = !m.logState.wrap
			return m, nil
		}
	case key.Matches(msg, keys.Sort):
		if m.view == ViewPods {
			return m.cycleSort()
		}
	case key.Matches(msg, keys.Copy):
		if m.view == ViewPods {
			return m.copyPodName()
		}
	}

	return m, nil
}

// move shifts the cursor of the current view by delta rows.
func (m *Model) move(delta int) {
	switch m.view {
	case ViewLogs:
		if delta > 0 {
			m.logState.scrollDown(delta, m.contentHeight())
		} else {
			m.logState.scrollUp(-delta)
		}
	case ViewPod:
		if delta > 0 {
			m.detail.moveDown(delta, m.detailLen())
		} else {
			m.detail.moveUp(-delta)
		}
	default:
		maxIdx := max(m.listLen()-1, 0)
		m.cursor = min(max(m.cursor+delta, 0), maxIdx)
	}
}

// back leaves the logs or pod detail view, resuming the pod watch if it
// stopped meanwhile.
func (m Model) back() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewLogs:
		m.view = m.prevView
		m.logState = logState{wrap: m.logState.wrap}
	case ViewPod:
		m.view = ViewPods
		m.detail = podDetailState{}
	}
	if m.watching {
		return m, nil
	}
	cmd := m.startWatch()
	return m, cmd
}

// --- Key Handlers ---

func (m Model) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filtering = false
		m.filter.Blur()
		if msg.String() == "esc" {
			m.filter.SetValue("")
		}
		m.cursor = 0
		return m, nil
	default:
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.cursor = 0
		return m, cmd
	}
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	if m.client == nil {
		return m, nil
	}
	if m.disconnected {
		if err := m.client.Reconnect(); err != nil {
			m.log.Warn("Reconnect failed.", "err", err)
			m.toast = newToast(fmt.Sprintf("Reconnexion impossible: %v", err), toastError)
			return m, scheduleToastClear()
		}
		m.disconnected = false
	}
	switch m.view {
	case ViewLogs:
		m.loading = true
		return m, m.fetchLogs(m.logState.podName, m.logState.containerName, m.logState.tailLines, m.logState.previous)
	case ViewPods, ViewPod:
		m.invalidatePods()
	}
	m.loading = true
	return m, m.loadCurrentView()
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewProjects:
		items := m.filteredNamespaces()
		if m.cursor < len(items) {
			m.stopWatch()
			m.client.SetNamespace(items[m.cursor].Name)
			m.filter.SetValue("")
			m.view = ViewPods
			m.loading = true
			return m, m.loadCurrentView()
		}
	case ViewPods:
		items := m.filteredPods()
		if m.cursor >= len(items) {
			return m, nil
		}
		pod := items[m.cursor]
		switch selection.ModeOf(pod) {
		case selection.ModeMulti:
			return m.openPodDetail(pod), nil
		case selection.ModeEmpty:
			m.toast = newToast("Pod sans container", toastInfo)
			return m, scheduleToastClear()
		default:
			return m.dispatch(pod, selection.Command{Target: selection.TargetRow})
		}
	case ViewPod:
		pod := m.detailPod()
		if pod == nil || m.detail.cursor >= len(pod.Containers) {
			return m, nil
		}
		return m.dispatch(*pod, selection.Command{
			Target:    selection.TargetRow,
			Container: pod.Containers[m.detail.cursor].Name,
		})
	}
	return m, nil
}

func (m Model) handleShell() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewPods:
		items := m.filteredPods()
		if m.cursor >= len(items) {
			return m, nil
		}
		if !m.shellAllowed() {
			return m.shellBlocked()
		}
		pod := items[m.cursor]
		if selection.ModeOf(pod) == selection.ModeMulti {
			m = m.openPodDetail(pod)
			m.toast = newToast("Choisissez un container", toastInfo)
			return m, scheduleToastClear()
		}
		return m.dispatch(pod, selection.Command{Target: selection.TargetTerminal})
	case ViewPod:
		pod := m.detailPod()
		if pod == nil || m.detail.cursor >= len(pod.Containers) {
			return m, nil
		}
		return m.dispatch(*pod, selection.Command{
			Target:    selection.TargetTerminal,
			Container: pod.Containers[m.detail.cursor].Name,
		})
	}
	return m, nil
}

func (m Model) openPodDetail(pod domain.PodInfo) Model {
	m.view = ViewPod
	m.detail = podDetailState{podName: pod.Name}
	if m.selected.Pod == pod.Name {
		for i, c := range pod.Containers {
			if c.Name == m.selected.Container {
				m.detail.cursor = i
				break
			}
		}
	}
	return m
}

// dispatch resolves a command on pod and acts on the session it selects.
func (m Model) dispatch(pod domain.PodInfo, cmd selection.Command) (tea.Model, tea.Cmd) {
	var picked session.Identity
	d := selection.Dispatcher{OnSelect: func(id session.Identity) { picked = id }}
	if !d.Dispatch(pod, cmd) {
		return m, nil
	}
	if picked.Interactive {
		return m.startExec(picked)
	}
	return m.openLogs(picked)
}

func (m Model) openLogs(id session.Identity) (Model, tea.Cmd) {
	m.sessions.Add(id)
	m.selected = id
	m.prevView = m.view
	m.view = ViewLogs
	m.loading = true
	m.logState = logState{
		podName:       id.Pod,
		containerName: id.Container,
		tailLines:     m.cfg.Logs.TailLines,
		wrap:          m.logState.wrap,
	}
	m.log.Info("Opening logs.", "session", id.String())
	return m, m.fetchLogs(id.Pod, id.Container, m.cfg.Logs.TailLines, false)
}

func (m Model) fetchLogs(podName, containerName string, tail int64, previous bool) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		content, err := client.GetPodLogs(context.Background(), podName, containerName, tail, previous)
		if err != nil {
			return apiErrMsg{err}
		}
		return logsLoadedMsg{content}
	}
}

func (m Model) togglePreviousLogs() (tea.Model, tea.Cmd) {
	m.logState.previous = !m.logState.previous
	m.loading = true
	return m, m.fetchLogs(m.logState.podName, m.logState.containerName, m.logState.tailLines, m.logState.previous)
}

func (m Model) shellAllowed() bool {
	return !config.IsReadonlyNamespace(m.client.GetNamespace(), m.cfg.ReadonlyNamespaces)
}

func (m Model) shellBlocked() (tea.Model, tea.Cmd) {
	m.toast = newToast("Namespace en lecture seule, shell interdit", toastError)
	return m, scheduleToastClear()
}

func (m Model) startExec(id session.Identity) (tea.Model, tea.Cmd) {
	if !m.shellAllowed() {
		return m.shellBlocked()
	}
	ns := m.client.GetNamespace()
	cmd, err := m.client.BuildExecCmd(ns, id.Pod, id.Container, m.cfg.Exec.Shell)
	if err != nil {
		m.toast = newToast(fmt.Sprintf("Exec: %v", err), toastError)
		return m, scheduleToastClear()
	}
	m.sessions.Add(id)
	m.log.Info("Opening shell.", "session", id.String(), "namespace", ns)
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return execDoneMsg{id: id, err: err}
	})
}

func (m Model) cycleSort() (tea.Model, tea.Cmd) {
	m.sortState.Column = NextPodSort(m.sortState.Column)
	m.sortState.Ascending = true
	m.cursor = 0
	return m, nil
}

func (m Model) copyPodName() (tea.Model, tea.Cmd) {
	items := m.filteredPods()
	if m.cursor >= len(items) {
		return m, nil
	}
	// OSC52 clipboard sequence, supported by most modern terminals.
	podName := items[m.cursor].Name
	m.toast = newToast(fmt.Sprintf("Copié: %s", podName), toastSuccess)
	return m, tea.Batch(
		scheduleToastClear(),
		tea.Printf("\033]52;c;%s\a", encodeBase64(podName)),
	)
}

func (m Model) switchView(v View) (tea.Model, tea.Cmd) {
	if m.view == ViewLogs {
		m.logState = logState{wrap: m.logState.wrap}
	}
	m.stopWatch()
	m.view = v
	m.cursor = 0
	m.detail = podDetailState{}
	m.filter.SetValue("")
	m.loading = true
	return m, m.loadCurrentView()
}

func (m *Model) invalidatePods() {
	if inv, ok := m.client.(podInvalidator); ok {
		inv.InvalidatePods()
	}
}

// --- Error handling ---

func (m Model) handleAPIError(err error) (tea.Model, tea.Cmd) {
	m.loading = false

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		m.log.Warn("Request failed.", "err", err)
		m.toast = newToast(err.Error(), toastError)
		return m, scheduleToastClear()
	}
	m.log.Warn("API error.", "type", apiErr.Type.String(), "err", err)

	switch apiErr.Type {
	case domain.ErrTokenExpired:
		m.disconnected = true
		m.toast = newToast(apiErr.Message, toastError)
		return m, nil // no auto-clear, keep visible

	case domain.ErrUnreachable:
		m.disconnected = true
		m.toast = newToast("Connexion perdue - données en cache. 'r' pour reconnecter", toastError)
		return m, nil

	case domain.ErrForbidden:
		m.toast = newToast(fmt.Sprintf("Accès refusé au namespace '%s'", m.client.GetNamespace()), toastError)
		return m, scheduleToastClear()

	case domain.ErrNotFound:
		m.toast = newToast(apiErr.Message, toastError)
		return m, tea.Batch(scheduleToastClear(), m.loadCurrentView())

	case domain.ErrRateLimited:
		m.toast = newToast("Trop de requêtes. Réessayez dans quelques secondes", toastError)
		return m, scheduleToastClear()

	default:
		m.toast = newToast(apiErr.Message, toastError)
		return m, scheduleToastClear()
	}
}

// --- Data loading ---

func (m Model) loadCurrentView() tea.Cmd {
	client := m.client
	if client == nil {
		return nil
	}
	switch m.view {
	case ViewProjects:
		return func() tea.Msg {
			items, err := client.ListNamespaces(context.Background())
			if err != nil {
				return apiErrMsg{err}
			}
			return namespacesLoadedMsg{items}
		}
	case ViewPods, ViewPod:
		return func() tea.Msg {
			items, err := client.ListPods(context.Background())
			if err != nil {
				return apiErrMsg{err}
			}
			return podsLoadedMsg{items}
		}
	}
	return nil
}

// --- Watch lifecycle ---

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watching = false
	m.watchCh = nil
	m.watchGen++
}

func (m *Model) startWatch() tea.Cmd {
	m.stopWatch()

	if m.client == nil || (m.view != ViewPods && m.view != ViewPod) {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := m.client.WatchPods(ctx)
	if err != nil || ch == nil {
		cancel()
		if err != nil {
			m.log.Warn("Pod watch unavailable.", "err", err)
		}
		return nil
	}

	m.watchCancel = cancel
	m.watching = true
	m.watchCh = ch
	return listenWatch(ch, m.watchGen)
}

func listenWatch(ch <-chan domain.WatchEvent, gen int) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return watchStoppedMsg{gen: gen}
		}
		return watchEventMsg{gen: gen, event: evt}
	}
}

// --- Watch merge ---

func (m *Model) mergePodEvent(evt domain.WatchEvent) {
	if evt.Pod == nil {
		return
	}
	idx := -1
	for i, p := range m.pods {
		if p.Name == evt.Pod.Name {
			idx = i
			break
		}
	}
	switch evt.Type {
	case domain.EventAdded, domain.EventModified:
		if idx >= 0 {
			m.pods[idx] = *evt.Pod
		} else {
			m.pods = append(m.pods, *evt.Pod)
		}
	case domain.EventDeleted:
		if idx < 0 {
			return
		}
		m.forgetSessions(m.pods[idx])
		m.pods = append(m.pods[:idx], m.pods[idx+1:]...)
		if m.cursor > 0 && m.cursor >= len(m.pods) {
			m.cursor--
		}
	}
}

// forgetSessions drops the sessions of a deleted pod.
func (m *Model) forgetSessions(pod domain.PodInfo) {
	if m.selected.Pod == pod.Name {
		m.selected = session.Identity{}
	}
	if m.sessions == nil {
		return
	}
	for _, c := range pod.Containers {
		m.sessions.Remove(session.Logs(pod.Name, c.Name))
		m.sessions.Remove(session.Terminal(pod.Name, c.Name))
	}
}

// --- Filtering ---

func (m Model) filterText() string {
	return strings.ToLower(m.filter.Value())
}

func (m Model) filteredNamespaces() []domain.NamespaceInfo {
	f := m.filterText()
	if f == "" {
		return m.namespaces
	}
	var result []domain.NamespaceInfo
	for _, ns := range m.namespaces {
		if strings.Contains(strings.ToLower(ns.Name), f) {
			result = append(result, ns)
		}
	}
	return result
}

func (m Model) filteredPods() []domain.PodInfo {
	f := m.filterText()
	var result []domain.PodInfo
	if f == "" {
		result = m.pods
	} else {
		for _, p := range m.pods {
			if strings.Contains(strings.ToLower(p.Name), f) ||
				strings.Contains(strings.ToLower(health.StatusText(p)), f) {
				result = append(result, p)
			}
		}
	}
	return SortPods(result, m.sortState)
}

func (m Model) listLen() int {
	switch m.view {
	case ViewProjects:
		return len(m.filteredNamespaces())
	case ViewPods:
		return len(m.filteredPods())
	default:
		return 0
	}
}

// detailPod returns the pod shown in the detail view, or nil once it is gone.
func (m Model) detailPod() *domain.PodInfo {
	if m.detail.podName == "" {
		return nil
	}
	for i := range m.pods {
		if m.pods[i].Name == m.detail.podName {
			return &m.pods[i]
		}
	}
	return nil
}

func (m Model) detailLen() int {
	if pod := m.detailPod(); pod != nil {
		return len(pod.Containers)
	}
	return 0
}

func (m Model) selectedContainer(podName string) string {
	if m.selected.Pod != podName {
		return ""
	}
	return m.selected.Container
}

func (m Model) buildView(pod domain.PodInfo) podview.View {
	return podview.Build(pod, m.selectedContainer(pod.Name), m.sessions)
}

func (m Model) contentHeight() int {
	// header(1) + tabs(1) + blank(1) + col_header(1) + status_bar(1) = 5 lines overhead
	ch := m.height - 6
	if ch < 1 {
		return 1
	}
	return ch
}

// --- View ---

func (m Model) View() string {
	if m.width == 0 {
		return "Chargement..."
	}

	if m.view == ViewError {
		return m.renderErrorScreen()
	}

	var b strings.Builder

	b.WriteString(m.renderContextBar())
	b.WriteString("\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.client != nil && config.IsProdNamespace(m.client.GetNamespace(), m.cfg.ProdPatterns) {
		b.WriteString(bannerProdStyle.Width(m.width).Render(
			fmt.Sprintf("PRODUCTION : namespace %s", m.client.GetNamespace())))
		b.WriteString("\n")
	}

	if m.disconnected {
		banner := bannerWarnStyle.Width(m.width).Render("Connexion perdue - données en cache. Appuyez sur 'r' pour reconnecter")
		b.WriteString(banner)
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString("\n  Chargement...\n")
	} else {
		b.WriteString(m.renderContent())
	}

	if m.filtering {
		b.WriteString(fmt.Sprintf("  /%s", m.filter.View()))
		b.WriteString("\n")
	}

	// Fill remaining space
	lines := strings.Count(b.String(), "\n")
	for i := lines; i < m.height-2; i++ {
		b.WriteString("\n")
	}

	if m.toast.isActive() {
		b.WriteString(m.toast.render())
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m Model) renderContextBar() string {
	title := titleStyle.Render("PODTERM")
	if m.client == nil {
		return title
	}
	ctx := contextStyle.Render(m.client.GetContext())
	ns := namespaceStyle.Render(m.client.GetNamespace())
	bar := fmt.Sprintf(" %s  ctx:%s  ns:%s", title, ctx, ns)
	if !m.shellAllowed() {
		bar += mutedStyle.Render("  [lecture seule]")
	}
	return bar
}

func (m Model) renderTabs() string {
	tabs := []struct {
		view  View
		key   string
		label string
	}{
		{ViewProjects, "1", "Projects"},
		{ViewPods, "2", "Pods"},
	}

	active := m.view
	if active == ViewPod || active == ViewLogs {
		active = ViewPods
	}

	var parts []string
	for _, t := range tabs {
		label := fmt.Sprintf("[%s] %s", t.key, t.label)
		if active == t.view {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabInactiveStyle.Render(label))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderContent() string {
	ch := m.contentHeight()
	switch m.view {
	case ViewProjects:
		return renderProjectList(m.filteredNamespaces(), newNamespaceFlags(m.cfg), m.cursor, m.width, ch, m.client.GetNamespace())
	case ViewPods:
		return renderPodList(m.filteredPods(), m.buildView, m.cursor, m.width, ch, m.sortState)
	case ViewPod:
		pod := m.detailPod()
		var v podview.View
		if pod != nil {
			v = m.buildView(*pod)
		}
		return renderPodDetail(pod, v, m.detail.cursor, m.width, ch-1)
	case ViewLogs:
		return renderLogs(&m.logState, m.width, ch)
	default:
		return ""
	}
}

func (m Model) renderStatusBar() string {
	var helpText string
	switch m.view {
	case ViewProjects:
		helpText = projectHelpKeys()
	case ViewPods:
		helpText = podHelpKeys()
	case ViewPod:
		helpText = podDetailHelpKeys()
	case ViewLogs:
		helpText = logHelpKeys(m.logState.previous, m.logState.wrap)
	}

	nsInfo := ""
	if m.client != nil {
		nsInfo = m.client.GetNamespace()
	}

	liveIndicator := ""
	if m.watching {
		liveIndicator = liveStyle.Render(" ● LIVE")
	}
	var itemInfo string
	switch m.view {
	case ViewLogs:
		itemInfo = fmt.Sprintf("%d lignes", len(m.logState.lines))
	case ViewPod:
		itemInfo = fmt.Sprintf("%d containers", m.detailLen())
	default:
		itemInfo = fmt.Sprintf("%d items", m.listLen())
	}
	left := fmt.Sprintf(" %s | %s | %s%s", m.view.String(), nsInfo, itemInfo, liveIndicator)
	return statusBarStyle.Width(m.width).Render(left + "  " + helpText)
}

func (m Model) renderErrorScreen() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(errorScreenStyle.Render("podterm - Erreur de connexion"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s\n", m.startupErr.Error()))
	b.WriteString("\n")
	b.WriteString("  [r] Réessayer  [q] Quitter\n")

	lines := strings.Count(b.String(), "\n")
	for i := lines; i < m.height; i++ {
		b.WriteString("\n")
	}
	return b.String()
}

// --- Helpers ---

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return string(runes[:1])
	}
	return string(runes[:maxLen-1]) + "…"
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func formatAge(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		days := int(d.Hours() / 24)
		if days > 365 {
			return fmt.Sprintf("%dy%dd", days/365, days%365)
		}
		return fmt.Sprintf("%dd", days)
	}
}

func encodeBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}
