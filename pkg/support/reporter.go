// ABOUTME: WebSocket endpoint for browser capability reports
// ABOUTME: Feeds a Snapshot oracle from {"type":"capabilities"} messages
package support

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Sendspin/sketchsound/pkg/audio"
	"github.com/gorilla/websocket"
)

// Message types exchanged with reporting clients
const (
	TypeCapabilities    = "capabilities"
	TypeCapabilitiesAck = "capabilities/ack"
	TypeError           = "error"
)

// Message is the envelope for every reporter message
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Capabilities is the payload of a capabilities message
type Capabilities struct {
	// Formats maps an extension to whether the client can play it
	Formats map[string]bool `json:"formats"`
}

// CapabilitiesAck is sent back after a report was applied
type CapabilitiesAck struct {
	Accepted []audio.Extension `json:"accepted"`
}

// ErrorPayload describes why a message was rejected
type ErrorPayload struct {
	Reason string `json:"reason"`
}

// Report is published on Updates after each applied capability message
type Report struct {
	RemoteAddr string
	Supported  map[audio.Extension]bool
}

// Reporter is an http.Handler accepting capability reports over websocket
type Reporter struct {
	snapshot *Snapshot
	upgrader websocket.Upgrader
	updates  chan Report
}

// NewReporter creates a reporter that writes into snap
func NewReporter(snap *Snapshot) *Reporter {
	return &Reporter{
		snapshot: snap,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		updates: make(chan Report, 10),
	}
}

// Snapshot returns the oracle this reporter updates
func (r *Reporter) Snapshot() *Snapshot {
	return r.snapshot
}

// Updates returns the channel of applied reports.
// Reports are dropped when nobody drains the channel.
func (r *Reporter) Updates() <-chan Report {
	return r.updates
}

// ServeHTTP upgrades the connection and processes reports until the client leaves
func (r *Reporter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("Capability reporter connected: %s", req.RemoteAddr)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Capability reporter read error: %v", err)
			}
			return
		}

		reply := r.handleMessage(req.RemoteAddr, data)
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("Capability reporter write error: %v", err)
			return
		}
	}
}

// handleMessage applies one raw message and builds the reply
func (r *Reporter) handleMessage(remote string, data []byte) Message {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Printf("Error unmarshaling message from %s: %v", remote, err)
		return errorMessage("malformed message")
	}

	if msg.Type != TypeCapabilities {
		log.Printf("Unexpected message type from %s: %s", remote, msg.Type)
		return errorMessage("unexpected message type: " + msg.Type)
	}

	var caps Capabilities
	if err := json.Unmarshal(msg.Payload, &caps); err != nil {
		log.Printf("Error unmarshaling capabilities from %s: %v", remote, err)
		return errorMessage("malformed capabilities payload")
	}

	accepted := r.snapshot.Update(caps.Formats)
	log.Printf("Capabilities from %s: %v", remote, caps.Formats)

	select {
	case r.updates <- Report{RemoteAddr: remote, Supported: Probe(r.snapshot)}:
	default:
	}

	return newMessage(TypeCapabilitiesAck, CapabilitiesAck{Accepted: accepted})
}

func newMessage(msgType string, payload interface{}) Message {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{Type: msgType}
	}
	return Message{Type: msgType, Payload: data}
}

func errorMessage(reason string) Message {
	return newMessage(TypeError, ErrorPayload{Reason: reason})
}
