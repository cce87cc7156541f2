package meetings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

const (
	zoomAuthURL = "https://zoom.us/oauth/token"
	zoomAPIURL  = "https://api.zoom.us/v2"
)

// ZoomClient creates meetings through Zoom's server-to-server OAuth app.
type ZoomClient struct {
	accountID    string
	clientID     string
	clientSecret string

	authURL string
	apiURL  string
	http    *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewZoomClient returns nil when credentials are not configured; callers
// treat a nil client as "no video provider".
func NewZoomClient(accountID, clientID, clientSecret string) *ZoomClient {
	if accountID == "" || clientID == "" || clientSecret == "" {
		return nil
	}

	return &ZoomClient{
		accountID:    accountID,
		clientID:     clientID,
		clientSecret: clientSecret,
		authURL:      zoomAuthURL,
		apiURL:       zoomAPIURL,
		http:         &http.Client{Timeout: 15 * time.Second},
	}
}

func (z *ZoomClient) token(ctx context.Context) (string, error) {
	z.mu.Lock()
	defer z.mu.Unlock()

	if z.accessToken != "" && time.Now().Before(z.tokenExpiry) {
		return z.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "account_credentials")
	form.Set("account_id", z.accountID)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		z.authURL+"?"+form.Encode(),
		nil,
	)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(z.clientID, z.clientSecret)

	resp, err := z.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("zoom token request failed: %s", resp.Status)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}

	z.accessToken = body.AccessToken
	// renew a minute early
	z.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn-60) * time.Second)

	return z.accessToken, nil
}

func (z *ZoomClient) CreateMeeting(
	ctx context.Context,
	topic string,
	start time.Time,
	durationMinutes int,
) (*Meeting, error) {

	token, err := z.token(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"topic":      topic,
		"type":       2, // scheduled meeting
		"start_time": start.UTC().Format("2006-01-02T15:04:05Z"),
		"duration":   durationMinutes,
		"timezone":   "UTC",
		"settings": map[string]any{
			"join_before_host": false,
			"waiting_room":     true,
		},
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		z.apiURL+"/users/me/meetings",
		bytes.NewReader(buf),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := z.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("zoom meeting creation failed: %s", resp.Status)
	}

	var body struct {
		ID       int64  `json:"id"`
		JoinURL  string `json:"join_url"`
		StartURL string `json:"start_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return &Meeting{
		ID:      strconv.FormatInt(body.ID, 10),
		JoinURL: body.JoinURL,
		HostURL: body.StartURL,
	}, nil
}

var _ Provider = (*ZoomClient)(nil)
