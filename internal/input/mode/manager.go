package mode

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Hook is called when a mode becomes current or stops being current.
type Hook func()

// Manager owns the current mode and runs transition hooks.
// It is not safe for concurrent use; the host loop is the only caller.
type Manager struct {
	current   Mode
	enter     map[Mode][]Hook
	exit      map[Mode][]Hook
	callbacks []ChangeCallback
}

// NewManager creates a manager starting in Edit mode.
func NewManager() *Manager {
	return &Manager{
		current: Edit,
		enter:   make(map[Mode][]Hook),
		exit:    make(map[Mode][]Hook),
	}
}

// Current returns the current mode.
func (m *Manager) Current() Mode {
	return m.current
}

// Is returns true if the current mode is mode.
func (m *Manager) Is(mode Mode) bool {
	return m.current == mode
}

// Toggle switches to the other mode and returns it.
func (m *Manager) Toggle() Mode {
	m.Switch(m.current.Other())
	return m.current
}

// Switch changes to mode. Switching to the current mode does nothing.
func (m *Manager) Switch(mode Mode) {
	if mode == m.current {
		return
	}

	from := m.current
	m.current = mode

	for _, hook := range m.exit[from] {
		hook()
	}
	for _, hook := range m.enter[mode] {
		hook()
	}
	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, mode)
		}
	}
}

// OnEnter registers a hook run every time mode becomes current.
func (m *Manager) OnEnter(mode Mode, hook Hook) {
	if hook == nil {
		return
	}
	m.enter[mode] = append(m.enter[mode], hook)
}

// OnExit registers a hook run every time mode stops being current.
// Exit hooks run before the enter hooks of the next mode.
func (m *Manager) OnExit(mode Mode, hook Hook) {
	if hook == nil {
		return
	}
	m.exit[mode] = append(m.exit[mode], hook)
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}
