package deck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mwynn/careerdeck/internal/core/model"
	"github.com/mwynn/careerdeck/internal/core/monitoring"
	"github.com/mwynn/careerdeck/internal/data/loader"
	"github.com/mwynn/careerdeck/internal/data/timeline"
	"github.com/mwynn/careerdeck/internal/presentation/animate"
	"github.com/mwynn/careerdeck/internal/presentation/casestudy"
	"github.com/mwynn/careerdeck/internal/presentation/display"
	"github.com/mwynn/careerdeck/internal/presentation/interaction"
	"github.com/mwynn/careerdeck/internal/presentation/scroll"
	"github.com/mwynn/careerdeck/internal/presentation/section"
	"github.com/mwynn/careerdeck/internal/util"
)

// Orchestrator coordinates all components of the presentation loop
type Orchestrator struct {
	config *DeckConfig

	// Core components
	stateManager *StateManager
	coordinator  *scroll.Coordinator
	animator     *animate.Counter

	// UI components
	display  *display.TerminalDisplay
	keyboard *interaction.KeyboardReader
	sections []section.Section

	// Monitoring
	watcher *monitoring.FileWatcher
}

// NewOrchestrator creates a new Orchestrator instance
func NewOrchestrator(config *DeckConfig) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	stateManager := NewStateManager()

	// The coordinator is the only writer of ActiveSection
	coordinator := scroll.NewCoordinator(func(id model.SectionID) {
		stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			if s.ActiveSection != id {
				s.ActiveSection = id
				s.Cursor = 0
			}
		})
	})

	return &Orchestrator{
		config:       config,
		stateManager: stateManager,
		coordinator:  coordinator,
		display:      display.NewTerminalDisplay(),
	}, nil
}

// Run starts the orchestrator main loop
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting careerdeck...")

	defer o.Close()

	keyboard, err := interaction.NewKeyboardReader()
	if err != nil {
		return fmt.Errorf("failed to initialize keyboard: %w", err)
	}
	o.keyboard = keyboard
	defer o.keyboard.Close()

	o.display.EnterAlternateScreen()
	defer o.display.ExitAlternateScreen()

	o.stateManager.SetLoadingState(true, "Loading deck data...")
	o.updateDisplay()

	o.loadData()
	o.stateManager.SetLoadingState(false, "")

	if o.config.Watch {
		watcher, err := monitoring.NewFileWatcher([]string{o.config.DataDir})
		if err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
		o.watcher = watcher
	}

	uiTicker := time.NewTicker(time.Duration(1000/o.config.RefreshPerSecond) * time.Millisecond)
	defer uiTicker.Stop()

	o.updateDisplay()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down careerdeck...")
			return nil

		case <-uiTicker.C:
			state := o.stateManager.GetInteractionState()
			if !state.IsPaused {
				o.updateDisplay()
			}

		case <-o.animator.Tick():
			o.animator.Advance()
			o.stateManager.SetHeroValues(o.animator.Values())

		case event := <-o.watcherEvents():
			util.LogDebugf("File changed: %s (%s)", event.Path, event.Operation)
			o.loadData()
			o.updateDisplay()

		case keyEvent := <-o.keyboard.Events():
			if o.handleKeyboard(keyEvent) {
				return nil // Exit requested
			}
			o.updateDisplay()
		}
	}
}

// watcherEvents returns the watcher channel, or a nil channel when live
// reload is disabled so the select case never fires.
func (o *Orchestrator) watcherEvents() <-chan model.FileEvent {
	if o.watcher == nil {
		return nil
	}
	return o.watcher.Events()
}

// loadData reads the staged documents, rebuilds the sections, and restarts
// the hero counter animation from zero.
func (o *Orchestrator) loadData() {
	snap := DataSnapshot{}

	careerRaw, err := os.ReadFile(filepath.Join(o.config.DataDir, "career.json"))
	if err != nil {
		snap.ViewModelErr = err
	} else {
		snap.ViewModel, snap.ViewModelErr = loader.Load(careerRaw)
	}
	if snap.ViewModelErr != nil {
		util.LogErrorf("Failed to load career data: %v", snap.ViewModelErr)
	}

	timelineRaw, err := os.ReadFile(filepath.Join(o.config.DataDir, "timeline.json"))
	if err != nil {
		snap.EventsErr = err
	} else {
		snap.Events, snap.EventsErr = timeline.Transform(timelineRaw)
	}
	if snap.EventsErr != nil {
		util.LogErrorf("Failed to load timeline data: %v", snap.EventsErr)
	}

	snap.CaseStudy = casestudy.LoadFile(filepath.Join(o.config.DataDir, "casestudy.md"))

	o.stateManager.SetData(snap)
	o.sections = section.Build(snap.ViewModel, snap.ViewModelErr, snap.Events, snap.EventsErr, snap.CaseStudy)

	// Restart the hero counters for the fresh document
	if o.animator != nil {
		o.animator.Stop()
	}
	var targets []int
	if snap.ViewModel != nil {
		targets = snap.ViewModel.HeroTargets()
	}
	o.animator = animate.NewCounter(targets)
	o.stateManager.SetHeroValues(o.animator.Values())
	o.animator.Start()
}

// updateDisplay composes and draws one frame
func (o *Orchestrator) updateDisplay() {
	width, height := o.display.Size()
	viewport := height - 2
	if viewport < 1 {
		viewport = 1
	}
	o.coordinator.SetViewport(viewport)

	state := o.stateManager.GetInteractionState()
	isLoading, loadingMessage := o.stateManager.GetLoadingState()

	frame := display.Frame{Mode: display.ModeNormal}
	switch {
	case isLoading:
		frame.Mode = display.ModeLoading
		frame.Message = loadingMessage
	case state.ShowHelp:
		frame.Mode = display.ModeHelp
	default:
		ctx := section.Context{
			State:      state,
			HeroValues: o.stateManager.GetHeroValues(),
			Width:      width,
		}
		doc, bounds := display.Compose(o.sections, ctx)
		o.coordinator.SetDocument(bounds, len(doc))
		o.coordinator.Animate()

		// Re-read: SetDocument/Animate may have moved the active section
		state = o.stateManager.GetInteractionState()

		frame.NavBar = display.BuildNavBar(o.sections, state.ActiveSection, width, o.clock())
		frame.Document = doc
		frame.Offset = o.coordinator.Offset()
	}

	o.display.Render(frame)
}

// clock formats the wall clock for the navigation bar
func (o *Orchestrator) clock() string {
	if o.config.TimeFormat == "12h" {
		return time.Now().Format("3:04:05 PM")
	}
	return time.Now().Format("15:04:05")
}

// pageSize is the stride of space/PgDn/PgUp
func (o *Orchestrator) pageSize() int {
	_, height := o.display.Size()
	page := height - 3
	if page < 1 {
		page = 1
	}
	return page
}

// handleKeyboard handles keyboard events. Returns true when the user
// asked to quit.
func (o *Orchestrator) handleKeyboard(event interaction.KeyEvent) bool {
	state := o.stateManager.GetInteractionState()

	// Any key closes the help screen
	if state.ShowHelp {
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			s.ShowHelp = false
		})
		return event.Type == interaction.KeyChar && (event.Key == 'q' || event.Key == 'Q' || event.Key == 3)
	}

	switch event.Type {
	case interaction.KeyUp:
		o.coordinator.ScrollBy(-1)
	case interaction.KeyDown:
		o.coordinator.ScrollBy(1)
	case interaction.KeyPgUp:
		o.coordinator.ScrollBy(-o.pageSize())
	case interaction.KeyPgDn:
		o.coordinator.ScrollBy(o.pageSize())
	case interaction.KeyTab:
		o.cycleCursor()
	case interaction.KeyEnter:
		o.toggleCard()
	case interaction.KeyEscape:
		return true
	case interaction.KeyChar:
		switch event.Key {
		case 'q', 'Q', 3: // 'q', 'Q', or Ctrl+C
			return true
		case 'j':
			o.coordinator.ScrollBy(1)
		case 'k':
			o.coordinator.ScrollBy(-1)
		case ' ':
			o.coordinator.ScrollBy(o.pageSize())
		case 'g':
			o.coordinator.ScrollTo(0)
		case 'G':
			o.coordinator.ScrollTo(o.coordinator.MaxOffset())
		case '1', '2', '3', '4', '5':
			o.coordinator.ScrollToSection(model.SectionOrder[event.Key-'1'])
		case 'n':
			o.jumpRelative(1)
		case 'p':
			o.jumpRelative(-1)
		case 'e':
			o.toggleCard()
		case 'h', 'H':
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.ShowHelp = true
			})
		case 'P':
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.IsPaused = !s.IsPaused
			})
		}
	}

	return false
}

// jumpRelative smooth-scrolls to the section delta steps away in document
// order, clamped at the ends.
func (o *Orchestrator) jumpRelative(delta int) {
	active := o.stateManager.GetInteractionState().ActiveSection
	for i, id := range model.SectionOrder {
		if id == active {
			next := i + delta
			if next < 0 || next >= len(model.SectionOrder) {
				return
			}
			o.coordinator.ScrollToSection(model.SectionOrder[next])
			return
		}
	}
}

// activeInteractive returns the active section when it has expandable cards
func (o *Orchestrator) activeInteractive() (section.Interactive, bool) {
	active := o.stateManager.GetInteractionState().ActiveSection
	for _, sec := range o.sections {
		if sec.ID() == active {
			in, ok := sec.(section.Interactive)
			return in, ok && in.Items() > 0
		}
	}
	return nil, false
}

// cycleCursor advances the highlighted card within the active section
func (o *Orchestrator) cycleCursor() {
	in, ok := o.activeInteractive()
	if !ok {
		return
	}
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.Cursor = (s.Cursor + 1) % in.Items()
	})
}

// toggleCard expands or collapses the highlighted card of the active section
func (o *Orchestrator) toggleCard() {
	in, ok := o.activeInteractive()
	if !ok {
		return
	}
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		if s.Cursor >= in.Items() {
			s.Cursor = 0
		}
		in.Toggle(s, s.Cursor)
	})
}

// Close cleans up all resources
func (o *Orchestrator) Close() error {
	if o.animator != nil {
		o.animator.Stop()
	}

	if o.watcher != nil {
		if err := o.watcher.Close(); err != nil {
			return fmt.Errorf("failed to close file watcher: %w", err)
		}
	}

	return nil
}
