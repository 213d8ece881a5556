package events

import "github.com/atomicstack/tmux-dashboard/internal/logging"

type WindowTracer struct{}

var Window = WindowTracer{}

func (WindowTracer) Create(session, name string) {
	logging.Trace("window.create", map[string]interface{}{"session": session, "name": name})
}

func (WindowTracer) Rename(target, name string) {
	logging.Trace("window.rename", map[string]interface{}{"target": target, "name": name})
}

func (WindowTracer) Kill(target string) {
	logging.Trace("window.kill", map[string]interface{}{"target": target})
}

func (WindowTracer) Switch(target string) {
	logging.Trace("window.switch", map[string]interface{}{"target": target})
}
