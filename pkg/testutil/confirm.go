package testutil

import (
	"sync"

	"github.com/arthur-debert/terraformer/pkg/types"
)

// AlwaysYes approves every prompt
var AlwaysYes = types.ConfirmFunc(func(string) (bool, error) { return true, nil })

// AlwaysNo declines every prompt
var AlwaysNo = types.ConfirmFunc(func(string) (bool, error) { return false, nil })

// RecordingConfirmer answers with a fixed response and remembers what it
// was asked. If Err is set it is returned instead of an answer.
type RecordingConfirmer struct {
	Answer bool
	Err    error

	mu    sync.Mutex
	asked []string
}

// Confirm implements types.Confirmer
func (r *RecordingConfirmer) Confirm(path string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.asked = append(r.asked, path)
	if r.Err != nil {
		return false, r.Err
	}
	return r.Answer, nil
}

// Asked returns the prompted paths in order
func (r *RecordingConfirmer) Asked() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.asked...)
}
