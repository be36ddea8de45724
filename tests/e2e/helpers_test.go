package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

// NewTestClient はBASE_URLのサーバーに繋がらなければテストをskipする。
func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	c := &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	resp, err := c.HTTP.Get(c.BaseURL + "/api/products")
	if err != nil {
		t.Skipf("server not reachable at %s: %v", c.BaseURL, err)
	}
	resp.Body.Close()

	return c
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	TrxID   string `json:"trx_id"`
}

type ProductDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Stock    int64  `json:"stock"`
}

type DashboardDTO struct {
	TotalProducts int64 `json:"total_products"`
	TodaySales    int64 `json:"today_sales"`
	TodayRevenue  int64 `json:"today_revenue"`
}

func (c *TestClient) do(t *testing.T, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("unmarshal %q: %v", string(raw), err)
		}
	}
	return resp.StatusCode
}

func (c *TestClient) GetJSON(t *testing.T, path string, out any) int {
	return c.do(t, http.MethodGet, path, nil, out)
}

func (c *TestClient) PostJSON(t *testing.T, path string, body any, out any) int {
	return c.do(t, http.MethodPost, path, body, out)
}

func (c *TestClient) Delete(t *testing.T, path string, out any) int {
	return c.do(t, http.MethodDelete, path, nil, out)
}

func (c *TestClient) ListProducts(t *testing.T) []ProductDTO {
	t.Helper()

	var products []ProductDTO
	status := c.GetJSON(t, "/api/products", &products)
	if status != http.StatusOK {
		t.Fatalf("list products: status %d", status)
	}
	return products
}

func findProduct(products []ProductDTO, id int64) (ProductDTO, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return ProductDTO{}, false
}

func findProductByName(products []ProductDTO, name string) (ProductDTO, bool) {
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}
	return ProductDTO{}, false
}
