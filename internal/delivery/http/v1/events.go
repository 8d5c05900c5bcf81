package v1

import (
	"time"

	"github.com/gin-gonic/gin"
)

const eventWriteTimeout = 10 * time.Second

// HandleReminderEvents upgrades the connection to a WebSocket and
// streams the caller's reminder change events until either side goes
// away. Clients that miss events just re-fetch the list.
func (h *handlerImpl) HandleReminderEvents(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to upgrade to websocket")
		return
	}
	defer func() { _ = conn.Close() }()

	events, cancel := h.feed.Subscribe(userID)
	defer cancel()

	h.logger.Debug().
		Str("user_id", userID).
		Msg("subscribed to reminder events")

	// Reads are discarded; the socket is push-only. The read loop
	// exists to notice the client hanging up.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(eventWriteTimeout))
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Debug().
					Err(err).
					Str("user_id", userID).
					Msg("failed to write reminder event")
				return
			}
		}
	}
}
