package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/parentsfood/shopkit/internal/domain"
)

// uploadResponse is the backend's envelope for image uploads.
type uploadResponse struct {
	FilePath string `json:"filePath"`
	Message  string `json:"message,omitempty"`
}

// UploadImage sends one image as multipart form data and returns the path
// the backend stored it under (e.g. "/uploads/img.jpg").
func (c *Client) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	const op = "upload.image"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", domain.Internal(err, op, "failed to build upload form")
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", domain.Internal(err, op, "failed to read image")
	}
	if err := writer.Close(); err != nil {
		return "", domain.Internal(err, op, "failed to finish upload form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return "", domain.Internal(err, op, "failed to build request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.RecordAPIRequest(http.MethodPost, op, "error", elapsed)
		return "", domain.Unavailable(err, op, "Server connection failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	c.metrics.RecordAPIRequest(http.MethodPost, op, strconv.Itoa(resp.StatusCode), elapsed)
	if err != nil {
		return "", domain.Unavailable(err, op, "Server connection failed")
	}

	var ur uploadResponse
	if resp.StatusCode >= 400 {
		message := fmt.Sprintf("Upload failed with status %d", resp.StatusCode)
		if json.Unmarshal(data, &ur) == nil && ur.Message != "" {
			message = ur.Message
		}
		return "", &domain.Error{Code: codeForStatus(resp.StatusCode), Op: op, Message: message}
	}

	if err := json.Unmarshal(data, &ur); err != nil {
		return "", domain.Internal(err, op, "failed to decode response")
	}
	return ur.FilePath, nil
}
