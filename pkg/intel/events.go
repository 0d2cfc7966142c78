package intel

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Time allowed between messages before the stream is considered stalled.
const eventReadWait = 90 * time.Second

// ProgressEvent is one generation progress update pushed by the service.
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Percent int    `json:"percent"`
}

// EventStream is a live subscription to generation progress events.
type EventStream struct {
	conn *websocket.Conn
}

// Events opens the progress event socket. The stream is best-effort: card
// generation succeeds or fails over HTTP regardless of whether the socket
// could be opened, so callers treat an error here as a degraded UI, not a
// failed generation.
func (c *Client) Events(ctx context.Context) (*EventStream, error) {
	url := strings.Replace(c.baseURL, "http", "ws", 1) + "/v1/events"

	header := make(map[string][]string)
	if c.apiKey != "" {
		header["Authorization"] = []string{"Bearer " + c.apiKey}
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if resp != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	conn.SetReadDeadline(time.Now().Add(eventReadWait))
	conn.SetPingHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(eventReadWait))
		return conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(5*time.Second))
	})

	return &EventStream{conn: conn}, nil
}

// Next blocks until the next progress event arrives. Returns an error when
// the stream closes or stalls.
func (s *EventStream) Next() (*ProgressEvent, error) {
	_, data, err := s.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	s.conn.SetReadDeadline(time.Now().Add(eventReadWait))

	var ev ProgressEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// Close tears down the subscription.
func (s *EventStream) Close() error {
	s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return s.conn.Close()
}
