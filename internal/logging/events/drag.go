package events

import "github.com/atelier-tools/component-palette/internal/logging"

type DragTracer struct{}

var Drag = DragTracer{}

func (DragTracer) Press(category, name string) {
	logging.Trace("drag.press", map[string]interface{}{
		"category": category,
		"name":     name,
	})
}

func (DragTracer) Start(category, name, icon string) {
	logging.Trace("drag.start", map[string]interface{}{
		"category": category,
		"name":     name,
		"icon":     icon,
	})
}

func (DragTracer) Export(category, name string, payloadLen int) {
	logging.Trace("drag.export", map[string]interface{}{
		"category": category,
		"name":     name,
		"payload":  payloadLen,
	})
}

// Click marks a gesture that ended below the drag threshold. Clicks carry
// no action; the trace exists so the distinction stays observable.
func (DragTracer) Click(category, name string) {
	logging.Trace("drag.click", map[string]interface{}{
		"category": category,
		"name":     name,
	})
}

func (DragTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("drag.error", map[string]interface{}{"error": err.Error()})
}
