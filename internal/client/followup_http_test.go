package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleInitialFollowups(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/schedule-followups", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewFollowupSchedulerClient(srv.URL)
	err := c.ScheduleInitialFollowups(context.Background(), "d-1")

	require.NoError(t, err)
	assert.Equal(t, "d-1", got["draft_id"])
}

func TestScheduleInitialFollowups_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "scheduler down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewFollowupSchedulerClient(srv.URL)
	err := c.ScheduleInitialFollowups(context.Background(), "d-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
