package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-redstore/models"
)

// Client queries a remote catalog service over HTTP. Every request carries
// the caller's context, so a fetch abandoned by its consumer is cancelled
// instead of delivering a stale response later.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the catalog at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Products(ctx context.Context, limit int) ([]models.Product, error) {
	url := c.baseURL + "/api/products"
	if limit > 0 {
		url += "?limit=" + strconv.Itoa(limit)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: unexpected status %d", resp.StatusCode)
	}
	var body struct {
		Products []models.Product `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Products, nil
}

func (c *Client) Product(ctx context.Context, id int) (models.ProductDetail, error) {
	url := c.baseURL + "/api/products/" + strconv.Itoa(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.ProductDetail{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return models.ProductDetail{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return models.ProductDetail{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return models.ProductDetail{}, fmt.Errorf("catalog: unexpected status %d", resp.StatusCode)
	}
	var detail models.ProductDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return models.ProductDetail{}, err
	}
	return detail, nil
}
