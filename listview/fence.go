package listview

import "sync"

// Fence orders overlapping list fetches. Every fetch takes a token from
// Issue; when its response arrives, Admit reports whether the response is
// still the freshest and may be rendered. A response for a superseded token
// is discarded even if it arrives last.
type Fence struct {
	mu       sync.Mutex
	issued   uint64
	admitted uint64
}

// Issue returns the token for a new outbound request. Tokens are strictly
// increasing, so the newest request always holds the highest token.
func (f *Fence) Issue() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued++
	return f.issued
}

// Admit reports whether the response carrying token may update the view:
// only the latest issued token is admitted, once.
func (f *Fence) Admit(token uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if token != f.issued || token <= f.admitted {
		return false
	}
	f.admitted = token
	return true
}
