package rajaongkir

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestSearchDestinationSuccess(t *testing.T) {
	t.Parallel()

	var gotPath, gotKeyword, gotAPIKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKeyword = r.URL.Query().Get("keyword")
		gotAPIKey = r.Header.Get("x-api-key")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"meta": {"message": "OK", "code": 200, "status": "success"},
			"data": [
				{"id": 421, "label": "Gambir, Jakarta Pusat", "subdistrict_name": "Gambir",
				 "district_name": "Gambir", "city_name": "Jakarta Pusat",
				 "province_name": "DKI Jakarta", "zip_code": "10110"},
				{"id": 508, "label": "Kebayoran Baru, Jakarta Selatan", "subdistrict_name": "Kebayoran Baru",
				 "district_name": "Kebayoran Baru", "city_name": "Jakarta Selatan",
				 "province_name": "DKI Jakarta", "zip_code": "12110"}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	resp := client.SearchDestination(context.Background(), "Jakarta")

	if gotPath != "/tariff/api/v1/destination/search" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotKeyword != "Jakarta" {
		t.Fatalf("unexpected keyword param: %s", gotKeyword)
	}
	if gotAPIKey != "test-key" {
		t.Fatalf("api key header not sent, got %q", gotAPIKey)
	}
	if !resp.Meta.OK() {
		t.Fatalf("expected success meta, got %+v", resp.Meta)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Data))
	}
	if resp.Data[0].ID != 421 || resp.Data[1].ID != 508 {
		t.Fatalf("entries out of order: %+v", resp.Data)
	}
}

func TestSearchDestinationConnectionError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := newTestClient(t, server.URL)
	resp := client.SearchDestination(context.Background(), "Jakarta")

	if resp.Meta.Status != "error" {
		t.Fatalf("expected error status, got %q", resp.Meta.Status)
	}
	if resp.Meta.Code != 500 {
		t.Fatalf("expected code 500, got %d", resp.Meta.Code)
	}
	if resp.Meta.Message == "" {
		t.Fatal("expected non-empty error message")
	}
	if len(resp.Data) != 0 {
		t.Fatalf("expected empty data, got %d entries", len(resp.Data))
	}
}

func TestCalculateShippingCostParams(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"meta": {"message": "OK", "code": 200, "status": "success"},
			"data": {
				"calculate_reguler": [
					{"shipping_name": "JNE", "service_name": "CTC", "shipping_cost": 150000,
					 "shipping_cost_net": 145000, "grandtotal": 150000, "is_cod": true, "etd": "2-3 days"}
				],
				"calculate_cargo": [],
				"calculate_instant": []
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	resp := client.CalculateShippingCost(context.Background(), CalculateRequest{
		ShipperDestinationID:  421,
		ReceiverDestinationID: 508,
		WeightGrams:           1000,
		ItemValue:             250000,
		COD:                   true,
		OriginPinPoint:        "-6.2,106.8",
	})

	if !resp.Meta.OK() {
		t.Fatalf("expected success meta, got %+v", resp.Meta)
	}
	if len(resp.Data.Reguler) != 1 {
		t.Fatalf("expected 1 regular rate, got %d", len(resp.Data.Reguler))
	}
	if resp.Data.Reguler[0].ShippingCost != 150000 {
		t.Fatalf("unexpected shipping cost: %d", resp.Data.Reguler[0].ShippingCost)
	}

	want := map[string]string{
		"shipper_destination_id":  "421",
		"receiver_destination_id": "508",
		"weight":                  "1000",
		"item_value":              "250000",
		"cod":                     "true",
		"origin_pin_point":        "-6.2,106.8",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Fatalf("query param %s = %q, want %q", k, gotQuery[k], v)
		}
	}
	if _, ok := gotQuery["destination_pin_point"]; ok {
		t.Fatal("empty destination_pin_point must be omitted")
	}
}

func TestCalculateShippingCostHTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	resp := client.CalculateShippingCost(context.Background(), CalculateRequest{
		ShipperDestinationID:  1,
		ReceiverDestinationID: 2,
		WeightGrams:           500,
		ItemValue:             10000,
	})

	if resp.Meta.Status != "error" || resp.Meta.Code != 500 {
		t.Fatalf("expected normalized error meta, got %+v", resp.Meta)
	}
	if resp.Meta.Message == "" {
		t.Fatal("expected non-empty error message")
	}
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Config{APIKey: "k"}); err == nil {
		t.Fatal("expected error for missing base url")
	}
	if _, err := NewClient(Config{BaseURL: "https://api.example.com"}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}
