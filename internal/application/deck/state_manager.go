package deck

import (
	"sync"
	"time"

	"github.com/mwynn/careerdeck/internal/core/model"
)

// StateManager manages presentation state in a thread-safe manner
type StateManager struct {
	mu sync.RWMutex

	// Loaded documents
	viewModel    *model.CareerViewModel
	viewModelErr error
	events       []model.TimelineEvent
	eventsErr    error
	caseStudy    []string

	// Loading state
	isLoading      bool
	loadingMessage string

	// Interaction state
	interactionState model.InteractionState

	// Animated counter values for the hero stats
	heroValues []int

	// Timestamp of last successful data update
	lastDataUpdate int64
}

// NewStateManager creates a new StateManager instance
func NewStateManager() *StateManager {
	return &StateManager{
		interactionState: model.InteractionState{ActiveSection: model.SectionHero},
	}
}

// DataSnapshot bundles the loaded documents with their load errors
type DataSnapshot struct {
	ViewModel    *model.CareerViewModel
	ViewModelErr error
	Events       []model.TimelineEvent
	EventsErr    error
	CaseStudy    []string
}

// SetData stores the loaded documents and their load errors
func (sm *StateManager) SetData(snap DataSnapshot) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.viewModel = snap.ViewModel
	sm.viewModelErr = snap.ViewModelErr
	sm.events = snap.Events
	sm.eventsErr = snap.EventsErr
	sm.caseStudy = snap.CaseStudy
	sm.lastDataUpdate = time.Now().Unix()
}

// GetData returns the loaded documents and their load errors
func (sm *StateManager) GetData() DataSnapshot {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return DataSnapshot{
		ViewModel:    sm.viewModel,
		ViewModelErr: sm.viewModelErr,
		Events:       sm.events,
		EventsErr:    sm.eventsErr,
		CaseStudy:    sm.caseStudy,
	}
}

// GetLoadingState returns current loading state and message
func (sm *StateManager) GetLoadingState() (bool, string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.isLoading, sm.loadingMessage
}

// SetLoadingState updates loading state and message
func (sm *StateManager) SetLoadingState(isLoading bool, message string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.isLoading = isLoading
	sm.loadingMessage = message
}

// GetInteractionState returns a copy of the current interaction state
func (sm *StateManager) GetInteractionState() model.InteractionState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.interactionState
}

// SetInteractionState replaces the interaction state
func (sm *StateManager) SetInteractionState(state model.InteractionState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.interactionState = state
}

// UpdateInteractionState updates specific fields of interaction state
func (sm *StateManager) UpdateInteractionState(updateFunc func(*model.InteractionState)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	updateFunc(&sm.interactionState)
}

// GetHeroValues returns the current animated hero counter values
func (sm *StateManager) GetHeroValues() []int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	values := make([]int, len(sm.heroValues))
	copy(values, sm.heroValues)
	return values
}

// SetHeroValues stores the animated hero counter values
func (sm *StateManager) SetHeroValues(values []int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.heroValues = make([]int, len(values))
	copy(sm.heroValues, values)
}

// GetLastDataUpdate returns timestamp of last successful data update
func (sm *StateManager) GetLastDataUpdate() int64 {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.lastDataUpdate
}
