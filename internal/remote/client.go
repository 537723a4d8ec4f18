package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mesh-intelligence/larder/pkg/types"
)

const defaultUserAgent = "larder/0.1"

// Client talks to the remote row-store over HTTP.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// Compile-time interface check.
var _ Gateway = (*Client)(nil)

// NewClient builds a Client for the given base URL. A bare host:port is
// accepted and normalized to http.
func NewClient(rawURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(rawURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = types.DefaultHTTPTimeout * time.Second
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// GroceryItems lists the grocery items stored for one week.
func (c *Client) GroceryItems(ctx context.Context, week string) ([]types.GroceryItem, bool) {
	values := url.Values{}
	values.Set("week", week)
	var payload []types.GroceryItem
	if err := c.doURL(ctx, http.MethodGet, &url.URL{Path: "/grocery-items", RawQuery: values.Encode()}, nil, &payload); err != nil {
		return nil, false
	}
	return payload, true
}

// CreateGroceryItem inserts an item. The server merges create-time
// same-key duplicates for the week by summing quantities, so the
// returned row may differ from the submitted one.
func (c *Client) CreateGroceryItem(ctx context.Context, item types.GroceryItem) (types.GroceryItem, bool) {
	var payload types.GroceryItem
	if err := c.do(ctx, http.MethodPost, "/grocery-items", item, &payload); err != nil {
		return types.GroceryItem{}, false
	}
	return payload, true
}

// UpdateGroceryItem applies a partial update to one row by ID.
func (c *Client) UpdateGroceryItem(ctx context.Context, id string, patch GroceryPatch) (types.GroceryItem, bool) {
	var payload types.GroceryItem
	if err := c.do(ctx, http.MethodPatch, "/grocery-items/"+id, patch, &payload); err != nil {
		return types.GroceryItem{}, false
	}
	return payload, true
}

// DeleteGroceryItem removes one row by ID.
func (c *Client) DeleteGroceryItem(ctx context.Context, id string) bool {
	return c.do(ctx, http.MethodDelete, "/grocery-items/"+id, nil, nil) == nil
}

// Meals lists all meals, headers and ingredient rows joined server-side.
func (c *Client) Meals(ctx context.Context) ([]types.Meal, bool) {
	var payload []types.Meal
	if err := c.do(ctx, http.MethodGet, "/meals", nil, &payload); err != nil {
		return nil, false
	}
	return payload, true
}

// CreateMeal inserts a meal header and its ingredient rows.
func (c *Client) CreateMeal(ctx context.Context, meal types.Meal) (types.Meal, bool) {
	var payload types.Meal
	if err := c.do(ctx, http.MethodPost, "/meals", meal, &payload); err != nil {
		return types.Meal{}, false
	}
	return payload, true
}

// ReplaceMeal updates the header and reinserts the full ingredient list.
func (c *Client) ReplaceMeal(ctx context.Context, meal types.Meal) (types.Meal, bool) {
	var payload types.Meal
	if err := c.do(ctx, http.MethodPut, "/meals/"+meal.ID, meal, &payload); err != nil {
		return types.Meal{}, false
	}
	return payload, true
}

// DeleteMeal removes a meal; the server cascades its ingredient rows.
func (c *Client) DeleteMeal(ctx context.Context, id string) bool {
	return c.do(ctx, http.MethodDelete, "/meals/"+id, nil, nil) == nil
}

// WeeklyPlan fetches the seven day rows for one week.
func (c *Client) WeeklyPlan(ctx context.Context, week string) (types.WeeklyPlan, bool) {
	values := url.Values{}
	values.Set("week", week)
	var payload types.WeeklyPlan
	if err := c.doURL(ctx, http.MethodGet, &url.URL{Path: "/weekly-plan", RawQuery: values.Encode()}, nil, &payload); err != nil {
		return nil, false
	}
	return payload, true
}

// ReplaceWeeklyPlan replaces all of a week's day rows with the given plan.
func (c *Client) ReplaceWeeklyPlan(ctx context.Context, week string, plan types.WeeklyPlan) (types.WeeklyPlan, bool) {
	values := url.Values{}
	values.Set("week", week)
	var payload types.WeeklyPlan
	if err := c.doURL(ctx, http.MethodPut, &url.URL{Path: "/weekly-plan", RawQuery: values.Encode()}, plan, &payload); err != nil {
		return nil, false
	}
	return payload, true
}

// WeeklyPlans lists every stored week's plan, grouped by week.
func (c *Client) WeeklyPlans(ctx context.Context) ([]types.WeeklyPlanByWeek, bool) {
	var payload []types.WeeklyPlanByWeek
	if err := c.do(ctx, http.MethodGet, "/weekly-plans", nil, &payload); err != nil {
		return nil, false
	}
	return payload, true
}

// generateRequest is the wire shape of the generate call.
type generateRequest struct {
	WeekStart   string             `json:"weekStart"`
	Ingredients []types.Ingredient `json:"ingredients"`
}

// GenerateGroceryList asks the server to replace the week's generated
// rows with fresh rows built from the summed ingredients. Rows with
// source "manual" are untouched. Idempotent.
func (c *Client) GenerateGroceryList(ctx context.Context, week string, ingredients []types.Ingredient) (GenerateResult, bool) {
	req := generateRequest{WeekStart: week, Ingredients: ingredients}
	var payload GenerateResult
	if err := c.do(ctx, http.MethodPost, "/generate-grocery-list", req, &payload); err != nil {
		return GenerateResult{}, false
	}
	return payload, true
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	return c.doURL(ctx, method, &url.URL{Path: path}, body, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	// Join rather than resolve so a base URL with a path prefix keeps it.
	reqURL := *c.baseURL
	reqURL.Path = c.baseURL.Path + rel.Path
	reqURL.RawQuery = rel.RawQuery

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("remote %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, fmt.Errorf("remote URL is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse remote URL %q: %w", rawURL, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
