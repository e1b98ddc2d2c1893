package cloudflare

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Client wraps the Cloudflare Images v1 API: upload a file, get back a
// public delivery URL; delete by image id.
type Client struct {
	accountID string
	apiToken  string
	http      *http.Client
}

func New(accountID, apiToken string) *Client {
	return &Client{
		accountID: accountID,
		apiToken:  apiToken,
		http:      &http.Client{},
	}
}

func (c *Client) Configured() bool {
	return c.accountID != "" && c.apiToken != ""
}

type UploadResult struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type imagesResponse struct {
	Success bool `json:"success"`
	Errors  []struct {
		Message string `json:"message"`
	} `json:"errors"`
	Result struct {
		ID       string   `json:"id"`
		Variants []string `json:"variants"`
	} `json:"result"`
}

// UploadImage pushes the file to Cloudflare Images under a URL-safe id
// and returns the public delivery URL.
func (c *Client) UploadImage(filename string, data io.Reader) (UploadResult, error) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	imageID := fmt.Sprintf("%s-%s", slug.Make(base), uuid.New().String())

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return UploadResult{}, err
	}
	if _, err := io.Copy(part, data); err != nil {
		return UploadResult{}, fmt.Errorf("could not buffer upload: %v", err)
	}
	if err := writer.WriteField("id", imageID); err != nil {
		return UploadResult{}, err
	}
	if err := writer.Close(); err != nil {
		return UploadResult{}, err
	}

	url := fmt.Sprintf("https://api.cloudflare.com/client/v4/accounts/%s/images/v1", c.accountID)
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return UploadResult{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return UploadResult{}, fmt.Errorf("could not reach Cloudflare Images: %v", err)
	}
	defer resp.Body.Close()

	var parsed imagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return UploadResult{}, fmt.Errorf("could not decode Cloudflare response: %v", err)
	}
	if !parsed.Success || len(parsed.Result.Variants) == 0 {
		return UploadResult{}, fmt.Errorf("cloudflare upload failed: %s", apiErrors(parsed))
	}

	return UploadResult{
		ID:  parsed.Result.ID,
		URL: parsed.Result.Variants[0],
	}, nil
}

func (c *Client) DeleteImage(imageID string) error {
	url := fmt.Sprintf("https://api.cloudflare.com/client/v4/accounts/%s/images/v1/%s", c.accountID, imageID)
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach Cloudflare Images: %v", err)
	}
	defer resp.Body.Close()

	var parsed imagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("could not decode Cloudflare response: %v", err)
	}
	if !parsed.Success {
		return fmt.Errorf("cloudflare delete failed: %s", apiErrors(parsed))
	}
	return nil
}

func apiErrors(resp imagesResponse) string {
	if len(resp.Errors) == 0 {
		return "unknown error"
	}
	messages := make([]string, 0, len(resp.Errors))
	for _, apiError := range resp.Errors {
		messages = append(messages, apiError.Message)
	}
	return strings.Join(messages, "; ")
}
