package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/pageza/fridgechef/internal/types"
)

// UploadFridgeImage sends a fridge photo as the multipart field "image" and
// returns the stored image and the ingredients the backend recognized
func (c *Client) UploadFridgeImage(ctx context.Context, cred types.Credential, filename string, image io.Reader) (*types.FridgeScan, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/upload", nil), &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var scan types.FridgeScan
	if err := c.send(req, cred, &scan); err != nil {
		return nil, err
	}
	return &scan, nil
}
