package widget

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the widget websocket endpoint on the given router.
func RegisterRoutes(r chi.Router, wd *Widget) {
	r.Get("/ws", wd.HandleWebSocket)
}
