package reel

// --- Handler registry ---

type frameHandler struct {
	id uint32
	fn FrameFunc
}

// handlerList holds one event type's listeners plus mutations staged while a
// dispatch of that event type is in flight. Staged mutations are applied when
// the dispatch finishes, so the subscription order visible at dispatch start
// is never invalidated mid-iteration.
type handlerList struct {
	handlers      []frameHandler
	pendingAdd    []frameHandler
	pendingRemove []uint32
	dispatching   bool
}

// registry is the per-clip listener store, one handler list per event type.
type registry struct {
	lists  [numEventTypes]handlerList
	nextID uint32
}

// add appends a listener for event, staging it if a dispatch of that event
// type is in progress. Staged listeners do not fire until the next dispatch.
func (r *registry) add(event EventType, fn FrameFunc) uint32 {
	r.nextID++
	h := frameHandler{id: r.nextID, fn: fn}
	l := &r.lists[event]
	if l.dispatching {
		l.pendingAdd = append(l.pendingAdd, h)
	} else {
		l.handlers = append(l.handlers, h)
	}
	return h.id
}

// remove unregisters the listener with the given id. Mid-dispatch the removal
// is staged so the listener still receives the in-flight dispatch; removing a
// listener that was itself staged for addition just cancels the addition.
// Unknown ids are a no-op.
func (r *registry) remove(event EventType, id uint32) {
	l := &r.lists[event]
	if l.dispatching {
		for i := range l.pendingAdd {
			if l.pendingAdd[i].id == id {
				copy(l.pendingAdd[i:], l.pendingAdd[i+1:])
				l.pendingAdd[len(l.pendingAdd)-1] = frameHandler{}
				l.pendingAdd = l.pendingAdd[:len(l.pendingAdd)-1]
				return
			}
		}
		for _, staged := range l.pendingRemove {
			if staged == id {
				return
			}
		}
		for i := range l.handlers {
			if l.handlers[i].id == id {
				l.pendingRemove = append(l.pendingRemove, id)
				return
			}
		}
		return
	}
	l.handlers = removeFrameHandler(l.handlers, id)
}

// dispatch invokes event's listeners on c in subscription order, then applies
// staged adds and removes. Returns the first listener error; staged mutations
// are applied even when a listener aborts the dispatch.
func (r *registry) dispatch(event EventType, c *Clip) error {
	l := &r.lists[event]
	if len(l.handlers) == 0 {
		return nil
	}
	ev := FrameEvent{Clip: c, Type: event, Frame: c.frame}
	l.dispatching = true
	var err error
	// Mutations are staged while dispatching, so the slice itself is the snapshot.
	for i := 0; i < len(l.handlers); i++ {
		if e := l.handlers[i].fn(ev); e != nil {
			err = e
			break
		}
	}
	l.dispatching = false
	for _, id := range l.pendingRemove {
		l.handlers = removeFrameHandler(l.handlers, id)
	}
	l.pendingRemove = l.pendingRemove[:0]
	l.handlers = append(l.handlers, l.pendingAdd...)
	l.pendingAdd = l.pendingAdd[:0]
	return err
}

// clear drops every listener and all staged mutations. Called at clip teardown.
func (r *registry) clear() {
	for i := range r.lists {
		r.lists[i] = handlerList{}
	}
}

// count returns the number of effective listeners for event: registered plus
// staged additions, minus staged removals.
func (r *registry) count(event EventType) int {
	l := &r.lists[event]
	return len(l.handlers) + len(l.pendingAdd) - len(l.pendingRemove)
}

func removeFrameHandler(s []frameHandler, id uint32) []frameHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = frameHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Handle ---

// Handle allows removing a registered frame listener.
type Handle struct {
	id    uint32
	reg   *registry
	event EventType
}

// Remove unregisters this listener so it no longer fires. Removing during a
// dispatch of the same event type is deferred until that dispatch finishes;
// the listener still receives the in-flight dispatch. Removing an unknown or
// already-removed handle is a no-op.
func (h Handle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.event, h.id)
}
