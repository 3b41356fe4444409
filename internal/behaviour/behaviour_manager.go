package behaviour

import "time"

// Behaviour is advanced once per frame until it reports that it is finished.
type Behaviour interface {
	Start(now time.Time)
	// Update returns true once the behaviour has finished. Finished
	// behaviours are dropped by the manager.
	Update(now time.Time) bool
}

type BehaviourWrapper struct {
	Behaviour Behaviour
	started   bool
}

// BehaviourManager runs behaviours on the render thread. It is not safe for
// concurrent use.
type BehaviourManager struct {
	behaviours []BehaviourWrapper
	updating   bool
	removed    []Behaviour
}

func NewBehaviourManager() *BehaviourManager {
	return &BehaviourManager{}
}

func (m *BehaviourManager) Add(behaviour Behaviour) {
	if behaviour == nil {
		return
	}
	m.behaviours = append(m.behaviours, BehaviourWrapper{Behaviour: behaviour, started: false})
}

func (m *BehaviourManager) Remove(behaviour Behaviour) {
	if m.updating {
		m.removed = append(m.removed, behaviour)
	}
	for i := range m.behaviours {
		if m.behaviours[i].Behaviour == behaviour {
			m.behaviours = append(m.behaviours[:i], m.behaviours[i+1:]...)
			return
		}
	}
}

// Clear removes all behaviours from the manager
func (m *BehaviourManager) Clear() {
	if m.updating {
		for _, w := range m.behaviours {
			m.removed = append(m.removed, w.Behaviour)
		}
	}
	m.behaviours = m.behaviours[:0]
}

// Len is the number of behaviours still running.
func (m *BehaviourManager) Len() int {
	return len(m.behaviours)
}

// UpdateAll starts new behaviours, advances every behaviour and drops the
// finished ones. Behaviours added from inside an update first run next frame.
func (m *BehaviourManager) UpdateAll(now time.Time) {
	current := m.behaviours
	m.behaviours = nil
	m.updating = true

	kept := make([]BehaviourWrapper, 0, len(current))
	for i := range current {
		if m.isRemoved(current[i].Behaviour) {
			continue
		}
		if !current[i].started {
			current[i].Behaviour.Start(now)
			current[i].started = true
		}
		if !current[i].Behaviour.Update(now) {
			kept = append(kept, current[i])
		}
	}

	m.updating = false
	live := kept[:0]
	for _, w := range kept {
		if !m.isRemoved(w.Behaviour) {
			live = append(live, w)
		}
	}
	m.behaviours = append(live, m.behaviours...)
	m.removed = m.removed[:0]
}

func (m *BehaviourManager) isRemoved(behaviour Behaviour) bool {
	for _, r := range m.removed {
		if r == behaviour {
			return true
		}
	}
	return false
}
