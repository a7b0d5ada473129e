package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// FollowupSchedulerClient calls the scheduler service that plans the
// follow-up sequence for a freshly sent draft.
type FollowupSchedulerClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewFollowupSchedulerClient(baseURL string) *FollowupSchedulerClient {
	return &FollowupSchedulerClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *FollowupSchedulerClient) ScheduleInitialFollowups(ctx context.Context, draftID string) error {
	payload, err := json.Marshal(map[string]string{"draft_id": draftID})
	if err != nil {
		return fmt.Errorf("failed to marshal scheduling request: %w", err)
	}

	url := c.baseURL + "/schedule-followups"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build scheduling request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("scheduler unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("scheduler returned %d: %s", resp.StatusCode, body)
	}

	log.WithField("draft_id", draftID).Info("Follow-up scheduling requested")
	return nil
}
