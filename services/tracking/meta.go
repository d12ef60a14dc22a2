package tracking

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	graphAPIBase = "https://graph.facebook.com/v19.0"

	// EventLead is the standard Meta event name for a captured lead.
	EventLead = "Lead"
)

// MetaClient reports server-side events to the Meta Conversion API.
// All calls are best-effort: callers fire them in a detached goroutine and
// a failure never affects the request that triggered it.
type MetaClient struct {
	pixelID       string
	accessToken   string
	testEventCode string
	httpClient    *http.Client
}

// MetaConfig holds configuration for the conversion API client
type MetaConfig struct {
	PixelID       string
	AccessToken   string
	TestEventCode string
}

// NewMetaClient creates a new conversion API client. Returns nil when the
// pixel ID or access token is not configured, which disables tracking.
func NewMetaClient(config MetaConfig) *MetaClient {
	if config.PixelID == "" || config.AccessToken == "" {
		return nil
	}
	return &MetaClient{
		pixelID:       config.PixelID,
		accessToken:   config.AccessToken,
		testEventCode: config.TestEventCode,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

// UserData identifies the person behind an event. PII fields are hashed
// before leaving the process, as the conversion API requires.
type UserData struct {
	Email     string
	Phone     string
	ClientIP  string
	UserAgent string
}

// Event is a single conversion event
type Event struct {
	Name      string
	EventID   string // dedup key shared with the browser pixel
	SourceURL string
	User      UserData
}

type metaUserData struct {
	Email           []string `json:"em,omitempty"`
	Phone           []string `json:"ph,omitempty"`
	ClientIPAddress string   `json:"client_ip_address,omitempty"`
	ClientUserAgent string   `json:"client_user_agent,omitempty"`
}

type metaEvent struct {
	EventName      string       `json:"event_name"`
	EventTime      int64        `json:"event_time"`
	EventID        string       `json:"event_id,omitempty"`
	ActionSource   string       `json:"action_source"`
	EventSourceURL string       `json:"event_source_url,omitempty"`
	UserData       metaUserData `json:"user_data"`
}

type metaPayload struct {
	Data          []metaEvent `json:"data"`
	TestEventCode string      `json:"test_event_code,omitempty"`
}

// HashIdentifier normalizes and SHA-256 hashes a PII value the way the
// conversion API expects it (lowercased, trimmed, hex-encoded digest).
func HashIdentifier(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(v))
	return hex.EncodeToString(sum[:])
}

// NormalizePhone strips everything except digits and a leading plus before
// hashing, so "+1 (555) 010-0000" and "15550100000" dedupe together.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewEventID returns a fresh dedup key for an event.
func NewEventID() string {
	return uuid.New().String()
}

// SendEvent reports a single event. Errors are returned for logging only;
// callers must not surface them to end users.
func (m *MetaClient) SendEvent(ctx context.Context, ev Event) error {
	user := metaUserData{
		ClientIPAddress: ev.User.ClientIP,
		ClientUserAgent: ev.User.UserAgent,
	}
	if h := HashIdentifier(ev.User.Email); h != "" {
		user.Email = []string{h}
	}
	if h := HashIdentifier(NormalizePhone(ev.User.Phone)); h != "" {
		user.Phone = []string{h}
	}

	payload := metaPayload{
		Data: []metaEvent{{
			EventName:      ev.Name,
			EventTime:      time.Now().Unix(),
			EventID:        ev.EventID,
			ActionSource:   "website",
			EventSourceURL: ev.SourceURL,
			UserData:       user,
		}},
		TestEventCode: m.testEventCode,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/events?access_token=%s", graphAPIBase, m.pixelID, m.accessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("conversion API returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// TrackLead fires a Lead event in the background. Safe on a nil client.
func (m *MetaClient) TrackLead(user UserData, sourceURL string) {
	if m == nil {
		return
	}

	ev := Event{
		Name:      EventLead,
		EventID:   NewEventID(),
		SourceURL: sourceURL,
		User:      user,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := m.SendEvent(ctx, ev); err != nil {
			log.Printf("conversion tracking failed (ignored): %v", err)
		}
	}()
}
