// Package client is the data layer the site's views consume: typed request
// functions over the HTTP API plus a per-entity-type cache. The first call
// for an entity type fetches and stores; later calls return the cached copy
// until Refresh is called. Cached copies are never written back — every
// write goes through the API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/dto"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/models"
)

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	cache map[string]interface{}
	token string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		cache:   make(map[string]interface{}),
	}
}

// Refresh drops the cached copy for one entity type ("players", "news", …)
// so the next read refetches. Content changes rarely, so staleness between
// refreshes is acceptable for this domain.
func (c *Client) Refresh(entity string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, entity)
}

func (c *Client) fromCache(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.cache[key]
	return v, ok
}

func (c *Client) store(key string, v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = v
}

// apiError is the {message, error} failure envelope.
type apiError struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.mu.Lock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.Unlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s", apiErr.Message)
		}
		// Default string when the error body carries no message.
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(raw), "application/json", out)
}

func (c *Client) ListPlayers(ctx context.Context) ([]models.Player, error) {
	if v, ok := c.fromCache("players"); ok {
		return v.([]models.Player), nil
	}
	var players []models.Player
	if err := c.getJSON(ctx, "/api/v1/players", &players); err != nil {
		return nil, err
	}
	c.store("players", players)
	return players, nil
}

func (c *Client) LatestInfo(ctx context.Context) (*models.ClubInfo, error) {
	if v, ok := c.fromCache("info"); ok {
		return v.(*models.ClubInfo), nil
	}
	var info models.ClubInfo
	if err := c.getJSON(ctx, "/api/v1/info/latest", &info); err != nil {
		return nil, err
	}
	c.store("info", &info)
	return &info, nil
}

func (c *Client) ListFixtures(ctx context.Context) ([]models.Fixture, error) {
	if v, ok := c.fromCache("fixtures"); ok {
		return v.([]models.Fixture), nil
	}
	var fixtures []models.Fixture
	if err := c.getJSON(ctx, "/api/v1/fixtures", &fixtures); err != nil {
		return nil, err
	}
	c.store("fixtures", fixtures)
	return fixtures, nil
}

func (c *Client) ListNews(ctx context.Context) ([]models.NewsItem, error) {
	if v, ok := c.fromCache("news"); ok {
		return v.([]models.NewsItem), nil
	}
	var items []models.NewsItem
	if err := c.getJSON(ctx, "/api/v1/news", &items); err != nil {
		return nil, err
	}
	c.store("news", items)
	return items, nil
}

func (c *Client) ListGallery(ctx context.Context) ([]models.GalleryItem, error) {
	if v, ok := c.fromCache("gallery"); ok {
		return v.([]models.GalleryItem), nil
	}
	var items []models.GalleryItem
	if err := c.getJSON(ctx, "/api/v1/gallery", &items); err != nil {
		return nil, err
	}
	c.store("gallery", items)
	return items, nil
}

func (c *Client) ListCarousel(ctx context.Context) ([]models.CarouselItem, error) {
	if v, ok := c.fromCache("carousel"); ok {
		return v.([]models.CarouselItem), nil
	}
	var items []models.CarouselItem
	if err := c.getJSON(ctx, "/api/v1/carousel", &items); err != nil {
		return nil, err
	}
	c.store("carousel", items)
	return items, nil
}

// SubmitContact posts a contact form. Submissions are never cached.
func (c *Client) SubmitContact(ctx context.Context, req dto.ContactReq) error {
	return c.postJSON(ctx, "/api/v1/contact", req, nil)
}

// Login authenticates and keeps the session token for later admin calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.postJSON(ctx, "/api/v1/auth/login", dto.LoginReq{Email: email, Password: password}, &resp)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.token = resp.Token
	c.mu.Unlock()
	return nil
}

// ListContactMessages reads the admin inbox; requires a prior Login.
func (c *Client) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var items []models.ContactMessage
	if err := c.getJSON(ctx, "/api/v1/contact", &items); err != nil {
		return nil, err
	}
	return items, nil
}
