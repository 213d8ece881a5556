package events

import "github.com/atomicstack/tmux-dashboard/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Create(name string) {
	logging.Trace("session.create", map[string]interface{}{"name": name})
}

func (SessionTracer) Rename(target, name string) {
	logging.Trace("session.rename", map[string]interface{}{"target": target, "name": name})
}

func (SessionTracer) Kill(target string) {
	logging.Trace("session.kill", map[string]interface{}{"target": target})
}

func (SessionTracer) Switch(target string) {
	logging.Trace("session.switch", map[string]interface{}{"target": target})
}
