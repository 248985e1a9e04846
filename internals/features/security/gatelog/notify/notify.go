// Package notify carries user-facing toasts out of the gate-log services
// without tying them to a UI runtime.
package notify

import (
	"log"
	"sync"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
)

type Notifier interface {
	Notify(kind Kind, message string)
}

// Func adapts a plain function.
type Func func(kind Kind, message string)

func (f Func) Notify(kind Kind, message string) { f(kind, message) }

// LogNotifier writes notices to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(kind Kind, message string) {
	switch kind {
	case Success:
		log.Printf("[SUCCESS] %s", message)
	case Warning:
		log.Printf("[WARNING] %s", message)
	default:
		log.Printf("[ERROR] %s", message)
	}
}

type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Recorder keeps every notice; handlers return them in the response body.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Notify(kind Kind, message string) {
	r.mu.Lock()
	r.notices = append(r.notices, Notice{Kind: kind, Message: message})
	r.mu.Unlock()
}

func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Count returns how many notices of kind were recorded.
func (r *Recorder) Count(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, v := range r.notices {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent notice, if any.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

// Tee fans a notice out to several notifiers.
func Tee(ns ...Notifier) Notifier {
	return Func(func(kind Kind, message string) {
		for _, n := range ns {
			if n != nil {
				n.Notify(kind, message)
			}
		}
	})
}
