package pixel

import (
	"fmt"
	"sync"

	"github.com/codeninja55/go-dcmx/dicom/uid"
)

// Priority orders codec registrations for the same transfer syntax. The two
// sentinel tiers let pure-Go and native (cgo or SIMD accelerated)
// implementations coexist: the native tier always wins. Ties resolve to the
// most recent registration.
type Priority int

const (
	// PriorityPure is the tier for portable pure-Go implementations.
	PriorityPure Priority = 100
	// PriorityNative is the tier for accelerated native implementations.
	PriorityNative Priority = 200
)

type registration struct {
	codec    Codec
	priority Priority
	// seq breaks priority ties toward the most recent registration.
	seq uint64
}

// Registry is a thread-safe map from transfer syntax to the highest-priority
// registered codec.
//
// The first Get snapshots the registrations into a frozen read-optimized map;
// subsequent Register calls invalidate the snapshot, which is rebuilt on the
// next Get. Registration after first use is expected to be rare.
type Registry struct {
	mu      sync.RWMutex
	entries map[string][]registration
	seq     uint64

	// frozen is the read-optimized snapshot; nil when stale.
	frozen map[string]Codec
}

// NewRegistry creates an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string][]registration)}
}

// Register adds a codec at the given priority. Registering invalidates any
// frozen snapshot.
func (r *Registry) Register(codec Codec, priority Priority) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	key := codec.TransferSyntax().UID
	r.entries[key] = append(r.entries[key], registration{codec: codec, priority: priority, seq: r.seq})
	r.frozen = nil
}

// Get returns the highest-priority codec for the transfer syntax.
// Returns ErrCodecNotFound when none is registered.
func (r *Registry) Get(ts uid.TransferSyntax) (Codec, error) {
	r.mu.RLock()
	frozen := r.frozen
	r.mu.RUnlock()

	if frozen == nil {
		frozen = r.freeze()
	}

	codec, ok := frozen[ts.UID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCodecNotFound, ts.UID)
	}
	return codec, nil
}

// freeze rebuilds the read-optimized snapshot.
func (r *Registry) freeze() map[string]Codec {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen != nil {
		return r.frozen
	}

	frozen := make(map[string]Codec, len(r.entries))
	for key, regs := range r.entries {
		best := regs[0]
		for _, reg := range regs[1:] {
			if reg.priority > best.priority || (reg.priority == best.priority && reg.seq > best.seq) {
				best = reg
			}
		}
		frozen[key] = best.codec
	}
	r.frozen = frozen
	return frozen
}

// Supported returns the transfer syntax UIDs with a registered codec.
func (r *Registry) Supported() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	uids := make([]string, 0, len(r.entries))
	for key := range r.entries {
		uids = append(uids, key)
	}
	return uids
}

// defaultRegistry is the process-wide registry populated by package init.
var defaultRegistry = NewRegistry()

// Register adds a codec to the process-wide registry.
func Register(codec Codec, priority Priority) {
	defaultRegistry.Register(codec, priority)
}

// Get returns the highest-priority codec for the transfer syntax from the
// process-wide registry.
func Get(ts uid.TransferSyntax) (Codec, error) {
	return defaultRegistry.Get(ts)
}

// Supported returns the transfer syntax UIDs supported by the process-wide
// registry.
func Supported() []string {
	return defaultRegistry.Supported()
}
