package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/nmatveev/dockeep/internal/client/models"
	"github.com/nmatveev/dockeep/internal/common"
)

// maxResponseBody caps how much of a response we are willing to read.
const maxResponseBody = 10 << 20

// HTTPClient talks to the document-management backend and the external
// mLean service over plain HTTP. Every request carries the Token auth
// header once a token is set, and is bounded by the configured timeout so
// a hung request can never leave an upload in flight forever.
type HTTPClient struct {
	baseURL  string
	mleanURL string
	http     *http.Client

	token string

	// onUnauthorized fires once per 401 response, whatever endpoint
	// produced it. The auth service uses it to force a local logout.
	onUnauthorized func()
}

func NewHTTPClient(baseURL, mleanURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:  baseURL,
		mleanURL: mleanURL,
		http:     &http.Client{Timeout: timeout},
	}
}

// SetToken sets the access token attached to subsequent requests.
// An empty string detaches authentication.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// OnUnauthorized registers the hook fired on any 401 response.
func (c *HTTPClient) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// do performs one HTTP request and returns the response body and status.
// Transport-level failures map to ErrUnavailable; a 401 fires the
// onUnauthorized hook and maps to common.ErrorUnauthorized.
func (c *HTTPClient) do(ctx context.Context, method, rawURL string, body io.Reader, contentType string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, 0, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return data, resp.StatusCode, common.ErrorUnauthorized
	}

	return data, resp.StatusCode, nil
}

// doJSON marshals payload (when non-nil) and performs the request,
// enforcing a 2xx status.
func (c *HTTPClient) doJSON(ctx context.Context, method, rawURL string, payload any) ([]byte, error) {
	var body io.Reader
	contentType := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	data, status, err := c.do(ctx, method, rawURL, body, contentType)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, apiError(status, data)
	}
	return data, nil
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (*models.Session, error) {
	payload := map[string]string{"username": username, "password": string(password)}
	data, err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/api/auth/login/", payload)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}

	c.token = resp.Token
	return &models.Session{Token: resp.Token, User: resp.User, SavedAt: time.Now()}, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/api/auth/logout/", nil)
	return err
}

// Validate probes the backend to check whether the current token is still
// accepted. A stale token surfaces as common.ErrorUnauthorized.
func (c *HTTPClient) Validate(ctx context.Context) error {
	_, status, err := c.do(ctx, http.MethodHead, c.baseURL+"/api/auth/validate/", nil, "")
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return apiError(status, nil)
	}
	return nil
}

func (c *HTTPClient) ListDocuments(ctx context.Context, folderID *string) ([]models.Document, error) {
	u := c.baseURL + "/api/documents/"
	if folderID != nil {
		q := url.Values{"folder": {*folderID}}
		u += "?" + q.Encode()
	}

	data, err := c.doJSON(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return decodeDocumentList(data)
}

func (c *HTTPClient) CreateDocument(ctx context.Context, req CreateDocumentRequest) (*models.Document, error) {
	body, contentType, err := multipartBody(req.FileName, req.Content, req.Fields)
	if err != nil {
		return nil, err
	}

	data, status, err := c.do(ctx, http.MethodPost, c.baseURL+"/api/documents/", body, contentType)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, apiError(status, data)
	}
	return decodeDocument(data)
}

func (c *HTTPClient) PatchDocument(ctx context.Context, id string, fields map[string]any, silent bool) error {
	payload := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	if silent {
		payload["update_type"] = common.SilentUpdateType
	}

	_, err := c.doJSON(ctx, http.MethodPatch, c.baseURL+"/api/documents/"+id+"/", payload)
	return err
}

func (c *HTTPClient) FetchArchive(ctx context.Context, folderID *string) (*models.ArchiveListing, error) {
	u := c.baseURL + "/api/archive/"
	if folderID != nil {
		q := url.Values{"folder": {*folderID}}
		u += "?" + q.Encode()
	}

	data, err := c.doJSON(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return decodeArchiveListing(data)
}

func (c *HTTPClient) ArchiveDocument(ctx context.Context, req models.ArchiveRequest) error {
	u := c.baseURL + "/api/documents/" + req.ID + "/archive/"
	_, err := c.doJSON(ctx, http.MethodPost, u, archivePayload(req))
	return err
}

func (c *HTTPClient) ArchiveFolder(ctx context.Context, req models.ArchiveRequest) error {
	u := c.baseURL + "/api/folders/" + req.ID + "/archive/"
	_, err := c.doJSON(ctx, http.MethodPost, u, archivePayload(req))
	return err
}

func (c *HTTPClient) RestoreDocument(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/api/documents/"+id+"/restore/", nil)
	return err
}

func (c *HTTPClient) RestoreFolder(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/api/folders/"+id+"/restore/", nil)
	return err
}

func (c *HTTPClient) SyncPerimeter(ctx context.Context, req PerimeterSyncRequest) (*PerimeterSyncResult, error) {
	if c.mleanURL == "" {
		return nil, fmt.Errorf("%w: mlean endpoint not configured", ErrUnavailable)
	}

	fields := map[string]string{
		"title":       req.Title,
		"perimeter":   req.Perimeter,
		"description": req.Description,
	}
	body, contentType, err := multipartBody(req.FileName, req.Content, fields)
	if err != nil {
		return nil, err
	}

	data, status, err := c.do(ctx, http.MethodPost, c.mleanURL+"/api/sync/", body, contentType)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, apiError(status, data)
	}

	var result PerimeterSyncResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode sync response: %w", err)
	}
	return &result, nil
}

func archivePayload(req models.ArchiveRequest) map[string]any {
	var until any
	if req.Until != nil {
		until = req.Until.UTC().Format(time.RFC3339)
	}
	return map[string]any{
		"id":    req.ID,
		"mode":  string(req.Mode),
		"until": until,
		"note":  req.Note,
	}
}

// multipartBody builds a multipart/form-data body carrying the file plus
// the non-empty metadata fields. Empty fields are omitted entirely.
func multipartBody(fileName string, content io.Reader, fields map[string]string) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	fw, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(fw, content); err != nil {
		return nil, "", fmt.Errorf("copy file content: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// apiError extracts a human-readable detail from an error response body.
// A 404 maps to common.ErrorNotFound so callers can match it with errors.Is.
func apiError(status int, body []byte) error {
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	detail := ""
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil {
			if payload.Detail != "" {
				detail = payload.Detail
			} else {
				detail = payload.Error
			}
		}
	}
	if status == http.StatusNotFound {
		if detail == "" {
			return common.ErrorNotFound
		}
		return fmt.Errorf("%w: %s", common.ErrorNotFound, detail)
	}
	return &APIError{Status: status, Detail: detail}
}
