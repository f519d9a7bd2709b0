package vendorapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/grubline/vendordash/internal/domain/model"
)

const defaultTimeout = 10 * time.Second

// APIError carries a failed vendor API response. Message holds the backend
// error text when the envelope provided one, so views can surface it
// verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("vendor api request failed with status %d", e.StatusCode)
}

// envelope mirrors the JSON wrapper used by every vendor API response.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Credentials is the payload returned by a successful login. UserData is
// kept raw; the session layer stores it as received.
type Credentials struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	UserData     json.RawMessage `json:"UserData"`
}

// Registration is the sign-up payload for a new vendor.
type Registration struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewItem describes a catalog item to create. The image is streamed into
// the multipart request under the itemImg field.
type NewItem struct {
	Name       string
	Price      string
	VendorID   string
	CategoryID string
	ImageName  string
	Image      io.Reader
}

// Client exposes the vendor API operations the dashboard consumes.
type Client interface {
	Login(ctx context.Context, phone, password string) (*Credentials, error)
	Register(ctx context.Context, reg Registration) error
	CategoriesByVendor(ctx context.Context, vendorID string) ([]model.Category, error)
	AddCategory(ctx context.Context, name, vendorID string) error
	DeleteCategory(ctx context.Context, categoryID string) error
	ItemsByVendor(ctx context.Context, vendorID string) ([]model.Item, error)
	AddItem(ctx context.Context, item NewItem) error
	DeleteItem(ctx context.Context, itemID string) error
	OrdersByVendor(ctx context.Context, vendorID string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	CompleteOrder(ctx context.Context, orderID string) error
}

// HTTPClient implements Client over the vendor API's REST surface.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates an HTTP vendor API client with a default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse vendor api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("vendor api url must be absolute")
	}
	return &HTTPClient{
		baseURL:    parsed,
		logger:     logger,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Login exchanges vendor credentials for access tokens and the vendor record.
func (c *HTTPClient) Login(ctx context.Context, phone, password string) (*Credentials, error) {
	payload := map[string]string{"phone": phone, "password": password}
	data, err := c.postJSON(ctx, "/vendor/loginVendor", payload)
	if err != nil {
		return nil, err
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return &creds, nil
}

// Register creates a new vendor account.
func (c *HTTPClient) Register(ctx context.Context, reg Registration) error {
	_, err := c.postJSON(ctx, "/vendor/registerVendor", reg)
	return err
}

// CategoriesByVendor lists the vendor's product categories.
func (c *HTTPClient) CategoriesByVendor(ctx context.Context, vendorID string) ([]model.Category, error) {
	query := url.Values{"vendorId": {vendorID}}
	data, err := c.do(ctx, http.MethodGet, "/category/getCategoryByVendorId", query, "", nil)
	if err != nil {
		return nil, err
	}
	var categories []model.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

// AddCategory creates a category for the vendor.
func (c *HTTPClient) AddCategory(ctx context.Context, name, vendorID string) error {
	payload := map[string]string{"categoryName": name, "vendorId": vendorID}
	_, err := c.postJSON(ctx, "/category/addCategory", payload)
	return err
}

// DeleteCategory removes a category by identifier. The endpoint spelling
// matches the upstream API.
func (c *HTTPClient) DeleteCategory(ctx context.Context, categoryID string) error {
	payload := map[string]string{"categoryid": categoryID}
	_, err := c.postJSON(ctx, "/category/deletCategory", payload)
	return err
}

// ItemsByVendor lists the vendor's catalog items.
func (c *HTTPClient) ItemsByVendor(ctx context.Context, vendorID string) ([]model.Item, error) {
	query := url.Values{"vendorId": {vendorID}}
	data, err := c.do(ctx, http.MethodGet, "/item/allItembyVendorId", query, "", nil)
	if err != nil {
		return nil, err
	}
	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

// AddItem uploads a new catalog item as multipart form data.
func (c *HTTPClient) AddItem(ctx context.Context, item NewItem) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"itemName":   item.Name,
		"itemPrice":  item.Price,
		"vendorId":   item.VendorID,
		"categoryId": item.CategoryID,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if item.Image != nil {
		part, err := writer.CreateFormFile("itemImg", item.ImageName)
		if err != nil {
			return fmt.Errorf("create image part: %w", err)
		}
		if _, err := io.Copy(part, item.Image); err != nil {
			return fmt.Errorf("copy image: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	_, err := c.do(ctx, http.MethodPost, "/item/addItem", nil, writer.FormDataContentType(), &buf)
	return err
}

// DeleteItem removes a catalog item by identifier.
func (c *HTTPClient) DeleteItem(ctx context.Context, itemID string) error {
	query := url.Values{"itemId": {itemID}}
	_, err := c.do(ctx, http.MethodDelete, "/item/deletItem", query, "", nil)
	return err
}

// OrdersByVendor lists every order addressed to the vendor.
func (c *HTTPClient) OrdersByVendor(ctx context.Context, vendorID string) ([]model.Order, error) {
	query := url.Values{"vendorId": {vendorID}}
	data, err := c.do(ctx, http.MethodGet, "/order/getOrdersByVendor", query, "", nil)
	if err != nil {
		return nil, err
	}
	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus asks the backend to move an order to the given status.
func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	payload := map[string]string{"status": string(status), "orderId": orderID}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPut, "/order/updateOrderStatus", nil, "application/json", bytes.NewReader(body))
	return err
}

// CompleteOrder marks an order as completed and removed from the vendor's
// active list.
func (c *HTTPClient) CompleteOrder(ctx context.Context, orderID string) error {
	payload := map[string]string{"orderId": orderID}
	_, err := c.postJSON(ctx, "/order/completeOrder", payload)
	return err
}

func (c *HTTPClient) postJSON(ctx context.Context, endpoint string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, endpoint, nil, "application/json", bytes.NewReader(body))
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, query url.Values, contentType string, body io.Reader) (json.RawMessage, error) {
	target := *c.baseURL
	target.Path = path.Join(target.Path, endpoint)
	if query != nil {
		target.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if decodeErr := json.Unmarshal(raw, &env); decodeErr != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			c.logger.Error("vendor api request failed",
				slog.String("endpoint", endpoint),
				slog.Int("status", resp.StatusCode),
			)
			return nil, &APIError{StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("decode vendor api response: %w", decodeErr)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		c.logger.Error("vendor api request rejected",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("message", env.Message),
		)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	return env.Data, nil
}
