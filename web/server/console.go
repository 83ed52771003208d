package server

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var renderCounter atomic.Uint64

// nextRenderID returns a process-unique identifier for a render request
func nextRenderID() string {
	return fmt.Sprintf("render-%d", renderCounter.Add(1))
}

// WebLogger implements core.Logger by tagging each message with its render
// and forwarding it to the server log
type WebLogger struct {
	renderID string
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string) core.Logger {
	return &WebLogger{renderID: renderID}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	log.Printf("[%s] %s", wl.renderID, message)
}
