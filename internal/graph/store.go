package graph

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Listener receives a copy of the state after every change.
type Listener func(State)

// Store is a thread-safe, in-memory holder of the canvas state.
type Store struct {
	// writeMu serializes updates and their notifications so listeners see
	// changes in the order they were applied.
	writeMu sync.Mutex

	mu        sync.RWMutex
	state     State
	listeners map[uint64]Listener
	order     []uint64
	nextID    uint64
}

// NewStore creates a store holding initial. An invalid initial state is a
// programmer error.
func NewStore(initial State) *Store {
	if err := initial.Validate(); err != nil {
		panic(fmt.Sprintf("invalid initial graph state: %v", err))
	}
	return &Store{
		state:     initial.Clone(),
		listeners: make(map[uint64]Listener),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe registers fn and calls it once with the current state. The
// returned function removes the subscription. Listeners must not call
// Update synchronously.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	snap := s.state.Clone()
	s.mu.Unlock()

	fn(snap)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Update applies fn to a copy of the state. If fn fails or leaves the state
// invalid, the stored state is unchanged and nobody is notified. fn runs
// without holding the state lock, so it may call Snapshot.
func (s *Store) Update(fn func(*State) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// writeMu keeps the state stable between this copy and the swap below.
	draft := s.Snapshot()
	if err := fn(&draft); err != nil {
		return err
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = draft.Clone()
	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(draft.Clone())
	}
	return nil
}

// AddNode appends n, generating an id when n has none.
func (s *Store) AddNode(n Node) (Node, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	err := s.Update(func(st *State) error {
		st.Nodes = append(st.Nodes, n)
		return nil
	})
	if err != nil {
		return Node{}, err
	}
	return n, nil
}

// RemoveNode deletes the node and every edge attached to it.
func (s *Store) RemoveNode(id string) error {
	return s.Update(func(st *State) error {
		idx := -1
		for i, n := range st.Nodes {
			if n.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: '%s'", ErrNodeNotFound, id)
		}
		st.Nodes = append(st.Nodes[:idx], st.Nodes[idx+1:]...)

		kept := st.Edges[:0]
		for _, e := range st.Edges {
			if e.Source != id && e.Target != id {
				kept = append(kept, e)
			}
		}
		st.Edges = kept
		return nil
	})
}

// MoveNode sets the position of a node.
func (s *Store) MoveNode(id string, pos Position) error {
	return s.Update(func(st *State) error {
		n, ok := st.Node(id)
		if !ok {
			return fmt.Errorf("%w: '%s'", ErrNodeNotFound, id)
		}
		n.Position = pos
		return nil
	})
}

// SetNodeData replaces the payload of a node.
func (s *Store) SetNodeData(id string, data NodeData) error {
	return s.Update(func(st *State) error {
		n, ok := st.Node(id)
		if !ok {
			return fmt.Errorf("%w: '%s'", ErrNodeNotFound, id)
		}
		n.Data = data
		return nil
	})
}

// Connect adds an edge from source to target with the id "source-target".
func (s *Store) Connect(source, target string) (Edge, error) {
	e := Edge{
		ID:     source + "-" + target,
		Kind:   DefaultEdgeKind,
		Source: source,
		Target: target,
	}
	err := s.Update(func(st *State) error {
		st.Edges = append(st.Edges, e)
		return nil
	})
	if err != nil {
		return Edge{}, err
	}
	return e, nil
}

// Disconnect removes the edge with the given id.
func (s *Store) Disconnect(edgeID string) error {
	return s.Update(func(st *State) error {
		for i, e := range st.Edges {
			if e.ID == edgeID {
				st.Edges = append(st.Edges[:i], st.Edges[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: '%s'", ErrEdgeNotFound, edgeID)
	})
}
