package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "cardplanet/internal/infrastructure/websocket"
	"cardplanet/pkg/errors"
)

type EventHandler struct {
	hub *ws.Hub
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the storefront runs on a different origin
	},
}

func NewEventHandler(hub *ws.Hub) *EventHandler {
	return &EventHandler{
		hub: hub,
	}
}

// HandleEvents upgrades the connection and streams storefront events
// until the client disconnects.
func (h *EventHandler) HandleEvents(c echo.Context) error {
	session := sessionID(c)

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		SessionID: session,
		Conn:      conn,
		Send:      make(chan []byte, 256),
	}

	h.hub.Register <- client

	go client.ReadPump(h.hub)
	go client.WritePump()

	return nil
}
