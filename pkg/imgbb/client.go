package imgbb

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

const uploadEndpoint = "https://api.imgbb.com/1/upload"

var ErrNotConfigured = errors.New("imgbb: no API key configured")

// Client uploads images to the ImgBB hosting API.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Upload sends image bytes to ImgBB and returns the hosted URL.
// The API expects the payload base64-encoded in a multipart form field.
func (c *Client) Upload(image []byte) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	field, err := form.CreateFormField("image")
	if err != nil {
		return "", err
	}
	if _, err := field.Write([]byte(base64.StdEncoding.EncodeToString(image))); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	endpoint := uploadEndpoint + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequest(http.MethodPost, endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("imgbb: upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("imgbb: upload failed with status %d", resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("imgbb: decode response: %w", err)
	}
	if !parsed.Success || parsed.Data.URL == "" {
		return "", errors.New("imgbb: upload rejected")
	}

	return parsed.Data.URL, nil
}
