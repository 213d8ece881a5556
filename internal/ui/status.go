package ui

import "time"

const statusDwell = 5 * time.Second

// Status is a transient message shown in the status bar.
type Status struct {
	Text  string
	Error bool
	At    time.Time
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = &Status{Text: text, Error: isErr, At: m.now()}
}

// expireStatus drops the status once it has been shown for statusDwell. It
// runs on every key and tick; there is no timer of its own.
func (m *Model) expireStatus() {
	if m.status == nil {
		return
	}
	if m.now().Sub(m.status.At) >= statusDwell {
		m.status = nil
	}
}

// Status returns the current status message, if any.
func (m *Model) Status() (Status, bool) {
	if m.status == nil {
		return Status{}, false
	}
	return *m.status, true
}
