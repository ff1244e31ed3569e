package observer

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/pyramid-scene/celestial"
	"github.com/lixenwraith/pyramid-scene/parameter"
	"github.com/lixenwraith/pyramid-scene/world"
)

// Hub fans frame messages out to subscribed connections
// Publish never blocks: a full subscriber queue drops the message for that subscriber
type Hub struct {
	mu      sync.RWMutex
	subs    map[uint64]chan []byte
	nextID  uint64
	worldID string

	limiter *rate.Limiter
	sink    func(FrameMsg) // optional tap, e.g. a recorder

	published atomic.Uint64
	throttled atomic.Uint64
	dropped   atomic.Uint64
}

// NewHub caps routine broadcasts at fps frames per second
func NewHub(fps float64, burst int) *Hub {
	return &Hub{
		subs:    make(map[uint64]chan []byte),
		limiter: rate.NewLimiter(rate.Limit(fps), burst),
	}
}

// SetWorld tags subsequent frames with the world id and announces the change
func (h *Hub) SetWorld(worldID string) {
	h.mu.Lock()
	changed := h.worldID != "" && h.worldID != worldID
	h.worldID = worldID
	h.mu.Unlock()

	if changed {
		b, err := json.Marshal(ResetMsg{Type: TypeReset, ProtocolVersion: Version, WorldID: worldID})
		if err == nil {
			h.broadcast(b)
		}
	}
}

// SetSink installs a callback receiving every published frame, including throttled ones
func (h *Hub) SetSink(fn func(FrameMsg)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sink = fn
}

// Subscribe registers a new outbound queue
func (h *Hub) Subscribe() (uint64, <-chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	ch := make(chan []byte, parameter.ObserverQueueSize)
	h.subs[h.nextID] = ch
	return h.nextID, ch
}

// Unsubscribe closes and removes a queue
func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

// Subscribers is the number of live queues
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Publish forwards a frame; turning point frames are never rate limited
func (h *Hub) Publish(f world.Frame) {
	h.mu.RLock()
	msg := NewFrameMsg(h.worldID, f)
	sink := h.sink
	h.mu.RUnlock()

	if sink != nil {
		sink(msg)
	}

	if f.Event == celestial.EventNone && !h.limiter.Allow() {
		h.throttled.Add(1)
		return
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return
	}
	h.published.Add(1)
	h.broadcast(b)
}

func (h *Hub) broadcast(b []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- b:
		default:
			h.dropped.Add(1)
		}
	}
}

// Stats returns broadcast, rate-limited and per-subscriber dropped counts
func (h *Hub) Stats() (published, throttled, dropped uint64) {
	return h.published.Load(), h.throttled.Load(), h.dropped.Load()
}
