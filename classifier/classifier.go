package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Result is the normalized output of the facial-emotion service. Every
// probability is a plain float64 regardless of how the service encoded it.
type Result struct {
	DominantEmotion string             `json:"dominant_emotion"`
	Emotions        map[string]float64 `json:"emotion_probabilities"`
}

// Client talks to the external facial-emotion classifier over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Analyze uploads the image at imagePath and returns the emotion breakdown.
// The service is asked not to fail when no face is detected; it degrades to a
// best-effort result instead. The classifier's error body is passed through
// untouched so the caller can surface it.
func (c *Client) Analyze(ctx context.Context, imagePath string) (*Result, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("could not open image: %v", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filepath.Base(imagePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.WriteField("allow_no_face", "true"); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("classifier error: %s", strings.TrimSpace(string(msg)))
	}

	var payload struct {
		DominantEmotion string                 `json:"dominant_emotion"`
		Emotion         map[string]json.Number `json:"emotion"`
	}
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("could not decode classifier response: %v", err)
	}

	emotions := make(map[string]float64, len(payload.Emotion))
	for name, value := range payload.Emotion {
		f, err := value.Float64()
		if err != nil {
			return nil, fmt.Errorf("non-numeric probability for %s: %v", name, err)
		}
		emotions[name] = f
	}

	return &Result{
		DominantEmotion: payload.DominantEmotion,
		Emotions:        emotions,
	}, nil
}
