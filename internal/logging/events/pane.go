package events

import "github.com/atomicstack/tmux-dashboard/internal/logging"

type PaneTracer struct{}

var Pane = PaneTracer{}

func (PaneTracer) Split(target, orientation string) {
	logging.Trace("pane.split", map[string]interface{}{"target": target, "orientation": orientation})
}

func (PaneTracer) Kill(target string) {
	logging.Trace("pane.kill", map[string]interface{}{"target": target})
}

func (PaneTracer) Zoom(target string) {
	logging.Trace("pane.zoom", map[string]interface{}{"target": target})
}

func (PaneTracer) Break(target string) {
	logging.Trace("pane.break", map[string]interface{}{"target": target})
}

func (PaneTracer) Switch(target string) {
	logging.Trace("pane.switch", map[string]interface{}{"target": target})
}
