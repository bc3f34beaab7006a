package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// UploadClient posts images to the backend, which stores them and returns a
// public URL.
type UploadClient struct {
	c *Client
}

func NewUploadClient(c *Client) *UploadClient {
	return &UploadClient{c: c}
}

// Upload sends the file as multipart form data under the "image" field and
// returns the stored object's URL.
func (u *UploadClient) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("failed to buffer upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.c.baseURL+"/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out struct {
		URL string `json:"url"`
	}
	if err := u.c.send(req, &out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", fmt.Errorf("upload response carried no url")
	}
	return out.URL, nil
}
