package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/gommon/log"
)

const splunkTimeout = 5 * time.Second

// SplunkService forwards structured events to a Splunk HTTP Event
// Collector endpoint. An empty URL disables forwarding entirely.
type SplunkService struct {
	url    string
	token  string
	client *http.Client
}

func NewSplunkService(url, token string) *SplunkService {
	return &SplunkService{
		url:   url,
		token: token,
		client: &http.Client{
			Timeout: splunkTimeout,
		},
	}
}

func (s *SplunkService) Enabled() bool {
	return s.url != ""
}

// Send posts the event wrapped in the HEC envelope. Splunk expects the
// data inside an "event" key.
func (s *SplunkService) Send(ctx context.Context, event interface{}) error {
	if !s.Enabled() {
		return nil
	}

	body, err := json.Marshal(map[string]interface{}{"event": event})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Splunk "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("splunk responded with status %d", resp.StatusCode)
	}
	return nil
}

// SendAsync forwards the event on its own goroutine. Failures are
// logged and swallowed; they never reach the request path.
func (s *SplunkService) SendAsync(event interface{}) {
	if !s.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), splunkTimeout)
		defer cancel()
		if err := s.Send(ctx, event); err != nil {
			log.Errorf("Splunk Error: %v", err)
		}
	}()
}
