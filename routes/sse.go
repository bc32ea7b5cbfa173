package routes

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arsh077/Khurak-new-application/jobs"
	"github.com/arsh077/Khurak-new-application/middleware"
)

// MacroStream pushes background macro-estimation results to the client
// over server-sent events. Only the authenticated user's updates are
// forwarded.
func MacroStream(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	worker := jobs.GetWorker()
	updates := worker.Subscribe()
	defer worker.Unsubscribe(updates)

	fmt.Fprintf(c.Writer, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case update, open := <-updates:
			if !open {
				return
			}
			if update.UserID != userID {
				continue
			}
			payload, err := json.Marshal(update)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "event: macros\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
