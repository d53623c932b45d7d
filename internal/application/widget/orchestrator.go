package widget

import (
	"context"
	"fmt"
	"time"

	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/penwyp/go-apod-widget/internal/core/monitoring"
	"github.com/penwyp/go-apod-widget/internal/data/intent"
	"github.com/penwyp/go-apod-widget/internal/presentation/display"
	"github.com/penwyp/go-apod-widget/internal/presentation/interaction"
	"github.com/penwyp/go-apod-widget/internal/presentation/layout"
	"github.com/penwyp/go-apod-widget/internal/util"
)

// Orchestrator coordinates all components of the live widget
type Orchestrator struct {
	config *WidgetConfig

	// Core components
	provider   TimelineSource
	store      IntentStore
	state      *StateManager
	refresh    *RefreshController
	sourceName string

	// UI components
	display  DisplayController
	keyboard *interaction.KeyboardReader
	termSize func() (int, int)

	// Monitoring
	watcher *monitoring.FileWatcher

	// Delivered timelines
	results chan model.Timeline
	now     func() time.Time
}

// NewOrchestrator wires the widget from its configuration
func NewOrchestrator(config *WidgetConfig) (*Orchestrator, error) {
	provider, sourceName, err := NewTimelineProvider(config)
	if err != nil {
		return nil, err
	}

	store, err := intent.NewStore(config.IntentFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration: %w", err)
	}

	termDisplay := display.NewTerminalDisplay(&display.DisplayConfig{
		Timezone:   config.Timezone,
		TimeFormat: config.TimeFormat,
	})

	o := newOrchestrator(config, provider, store, termDisplay)
	o.sourceName = sourceName
	return o, nil
}

func newOrchestrator(config *WidgetConfig, provider TimelineSource, store IntentStore, d DisplayController) *Orchestrator {
	o := &Orchestrator{
		config:   config,
		provider: provider,
		store:    store,
		state:    NewStateManager(),
		refresh:  NewRefreshController(),
		display:  d,
		termSize: layout.GetSizer().TerminalSize,
		results:  make(chan model.Timeline, 1),
		now:      time.Now,
	}
	if forced := config.ForcedSize(); forced != nil {
		o.state.UpdateInteractionState(func(s *model.InteractionState) {
			s.ForcedSize = forced
		})
	}
	return o
}

// Run starts the orchestrator main loop
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting APOD widget...")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer o.Close()

	if err := util.InitializeTimeProvider(o.config.Timezone); err != nil {
		return fmt.Errorf("failed to initialize timezone: %w", err)
	}

	keyboard, err := interaction.NewKeyboardReader()
	if err != nil {
		return fmt.Errorf("failed to initialize keyboard: %w", err)
	}
	o.keyboard = keyboard
	defer o.keyboard.Close()

	o.display.EnterAlternateScreen()
	defer o.display.ExitAlternateScreen()

	o.start(ctx)

	var fileEvents <-chan model.FileEvent
	if watcher, err := monitoring.NewFileWatcher([]string{o.store.Path()}); err != nil {
		util.LogWarnf("Configuration changes will not be picked up: %v", err)
	} else {
		o.watcher = watcher
		fileEvents = watcher.Events()
	}

	uiTicker := time.NewTicker(o.config.UITickInterval())
	defer uiTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down APOD widget...")
			return nil

		case <-uiTicker.C:
			o.tick(ctx)

		case tl := <-o.results:
			o.handleTimeline(tl)
			o.updateDisplay()

		case event, ok := <-fileEvents:
			if !ok {
				fileEvents = nil
				continue
			}
			o.handleIntentFileChange(event)
			o.tick(ctx)

		case keyEvent := <-o.keyboard.Events():
			if o.handleAction(interaction.ActionFor(keyEvent)) {
				return nil // Exit requested
			}
			o.tick(ctx)
		}
	}
}

// start shows the placeholder and issues the first timeline request
func (o *Orchestrator) start(ctx context.Context) {
	o.state.SetIntent(o.store.Load())
	o.state.SetFallback(o.provider.Placeholder())
	o.refresh.RequestNow()
	o.updateDisplay()
	o.tick(ctx)
}

// tick starts a reload when one is due and redraws
func (o *Orchestrator) tick(ctx context.Context) {
	now := o.now()
	paused := o.state.GetInteractionState(now).IsPaused
	if o.refresh.Due(now, paused) {
		o.startFetch(ctx)
	}
	o.updateDisplay()
}

// startFetch issues one asynchronous timeline request
func (o *Orchestrator) startFetch(ctx context.Context) {
	if !o.refresh.Begin() {
		return
	}
	o.state.SetLoading(true)

	intent := o.state.Intent()
	util.LogDebugf("Requesting timeline (shouldShowText=%t)", intent.ShouldShowText())
	ch := o.provider.TimelineAsync(ctx, intent)

	go func() {
		tl, ok := <-ch
		if !ok {
			return
		}
		select {
		case o.results <- tl:
		case <-ctx.Done():
		}
	}()
}

// handleTimeline stores a delivered timeline and schedules the next reload
func (o *Orchestrator) handleTimeline(tl model.Timeline) {
	now := o.now()
	o.state.SetTimeline(tl, now)
	o.state.SetLoading(false)
	o.refresh.Complete(tl.Policy, now)

	if entry, ok := tl.EntryAt(now); ok {
		util.LogInfof("Timeline delivered: %q (caption=%t, policy=%s)", entry.Title, entry.ShowCaption, tl.Policy)
	}
}

// handleAction applies a keyboard action; it returns true when the widget should exit
func (o *Orchestrator) handleAction(action interaction.Action) bool {
	now := o.now()

	switch action {
	case interaction.ActionQuit:
		// Esc closes the help screen before quitting
		if o.state.GetInteractionState(now).ShowHelp {
			o.state.UpdateInteractionState(func(s *model.InteractionState) {
				s.ShowHelp = false
			})
			return false
		}
		return true

	case interaction.ActionRefresh:
		o.refresh.RequestNow()
		o.state.SetStatus("Refreshing...", now)

	case interaction.ActionToggleCaption:
		show := !o.state.Intent().ShouldShowText()
		updated, err := o.store.SetShowText(show)
		if err != nil {
			util.LogErrorf("Failed to save caption setting: %v", err)
			o.state.SetStatus("Could not save caption setting", now)
			return false
		}
		o.applyIntent(updated)
		o.state.SetStatus(fmt.Sprintf("Caption %s", onOff(show)), now)

	case interaction.ActionCycleSize:
		var label string
		o.state.UpdateInteractionState(func(s *model.InteractionState) {
			s.ForcedSize = nextForcedSize(s.ForcedSize)
			label = "auto"
			if s.ForcedSize != nil {
				label = s.ForcedSize.String()
			}
		})
		o.state.SetStatus("Size: "+label, now)

	case interaction.ActionTogglePause:
		var paused bool
		o.state.UpdateInteractionState(func(s *model.InteractionState) {
			s.IsPaused = !s.IsPaused
			paused = s.IsPaused
		})
		if paused {
			o.state.SetStatus("Automatic refresh paused", now)
		} else {
			o.state.SetStatus("Automatic refresh resumed", now)
		}

	case interaction.ActionToggleHelp:
		o.state.UpdateInteractionState(func(s *model.InteractionState) {
			s.ShowHelp = !s.ShowHelp
		})
	}

	return false
}

// handleIntentFileChange reloads the configuration after the file changed on disk
func (o *Orchestrator) handleIntentFileChange(event model.FileEvent) {
	util.LogDebugf("Configuration file event: %s %s", event.Operation, event.Path)
	o.applyIntent(o.store.Load())
}

// applyIntent stores a new intent and reloads the timeline if the caption
// setting changed
func (o *Orchestrator) applyIntent(next model.Intent) {
	previous := o.state.Intent()
	o.state.SetIntent(next)
	if previous.ShouldShowText() != next.ShouldShowText() {
		util.LogInfof("shouldShowText changed to %t, reloading timeline", next.ShouldShowText())
		o.refresh.RequestNow()
	}
}

// updateDisplay draws the current entry
func (o *Orchestrator) updateDisplay() {
	now := o.now()
	state := o.state.GetInteractionState(now)
	width, height := o.termSize()

	size := layout.Classify(width, height)
	if state.ForcedSize != nil {
		size = *state.ForcedSize
	}

	frame := display.Frame{
		Entry:      o.state.CurrentEntry(now),
		Size:       size,
		Width:      width,
		Height:     height,
		Loading:    o.state.IsLoading(),
		SourceName: o.sourceName,
		State:      state,
	}
	if next, ok := o.refresh.NextReload(); ok {
		frame.NextReload = next
	}
	o.display.Render(frame)
}

// Close releases the watcher
func (o *Orchestrator) Close() error {
	if o.watcher != nil {
		return o.watcher.Close()
	}
	return nil
}

// nextForcedSize cycles auto -> small -> medium -> large -> unknown -> auto
func nextForcedSize(current *model.SizeClass) *model.SizeClass {
	var next model.SizeClass
	switch {
	case current == nil:
		next = model.SizeSmall
	case *current == model.SizeSmall:
		next = model.SizeMedium
	case *current == model.SizeMedium:
		next = model.SizeLarge
	case *current == model.SizeLarge:
		next = model.SizeUnknown
	default:
		return nil
	}
	return &next
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
