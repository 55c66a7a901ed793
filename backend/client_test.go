package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-client/models"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name: "404 is ErrNotFound", status: 404, body: `{"detail":"Not found."}`,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("got %v", err)
				}
			},
		},
		{
			name: "401 is ErrUnauthorized", status: 401, body: `{}`,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrUnauthorized) {
					t.Errorf("got %v", err)
				}
			},
		},
		{
			name: "table conflict as string", status: 400, body: `{"table":"Table is already reserved"}`,
			check: func(t *testing.T, err error) {
				var conflict *TableConflictError
				if !errors.As(err, &conflict) || conflict.Message != "Table is already reserved" {
					t.Errorf("got %v", err)
				}
			},
		},
		{
			name: "table conflict as list", status: 400, body: `{"table":["Table is busy at that time","second"]}`,
			check: func(t *testing.T, err error) {
				var conflict *TableConflictError
				if !errors.As(err, &conflict) || conflict.Message != "Table is busy at that time" {
					t.Errorf("got %v", err)
				}
			},
		},
		{
			name: "4xx detail is a RequestError", status: 400, body: `{"detail":"Order is already completed"}`,
			check: func(t *testing.T, err error) {
				var rejected *RequestError
				if !errors.As(err, &rejected) || rejected.Message != "Order is already completed" {
					t.Errorf("got %v", err)
				}
			},
		},
		{
			name: "5xx detail stays diagnostic", status: 500, body: `{"detail":"database exploded"}`,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				if !errors.As(err, &apiErr) || apiErr.StatusCode != 500 {
					t.Errorf("got %v", err)
				}
			},
		},
		{
			name: "non-JSON body", status: 502, body: `<html>bad gateway</html>`,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				if !errors.As(err, &apiErr) || apiErr.StatusCode != 502 {
					t.Errorf("got %v", err)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, mapError(tc.status, []byte(tc.body)))
		})
	}
}

func TestDecodeList(t *testing.T) {
	bare := []byte(`[{"id":1,"name":"Window"},{"id":2,"name":"Patio","is_busy":true}]`)
	wrapped := []byte(`{"count":2,"results":[{"id":1,"name":"Window"},{"id":2,"name":"Patio","is_busy":true}]}`)

	for _, data := range [][]byte{bare, wrapped} {
		tables, err := decodeList[models.Table](data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(tables) != 2 || tables[1].Name != "Patio" || !tables[1].IsBusy {
			t.Errorf("got %+v", tables)
		}
	}

	if _, err := decodeList[models.Table]([]byte(`"nope"`)); err == nil {
		t.Error("expected error for a non-list payload")
	}
}

func TestCreateOrder_RequestShape(t *testing.T) {
	var got struct {
		Items []OrderItemInput `json:"items"`
		Table uint             `json:"table"`
		Num   int              `json:"num_guests"`
		Check string           `json:"checkin_time"`
	}
	var gotAuth, gotCT string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":42,"status":"PENDING","table":5,"total_amount":0}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", "")
	order, err := c.CreateOrder(context.Background(), "access-token", CreateOrderRequest{
		Items:       []OrderItemInput{{Dish: 1, Quantity: 2}, {Dish: 2, Quantity: 1}},
		Table:       5,
		NumGuests:   1,
		CheckinTime: time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if order.ID != 42 || order.Status != models.StatusPending {
		t.Errorf("response not decoded: %+v", order)
	}
	if gotAuth != "Bearer access-token" {
		t.Errorf("authorization header = %q", gotAuth)
	}
	if gotCT != "application/json" {
		t.Errorf("content type = %q", gotCT)
	}
	if got.Table != 5 || got.Num != 1 {
		t.Errorf("request body = %+v", got)
	}
	if len(got.Items) != 2 || got.Items[0] != (OrderItemInput{Dish: 1, Quantity: 2}) {
		t.Errorf("items = %+v", got.Items)
	}
	if got.Check == "" {
		t.Error("checkin_time missing from request")
	}
}

func TestUpdateOrder_OmitsAbsentFields(t *testing.T) {
	var raw map[string]json.RawMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/orders/10/update-order/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"id":10,"status":"PENDING"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", "")
	_, err := c.UpdateOrder(context.Background(), "tok", 10, UpdateOrderRequest{
		Items: []OrderItemInput{{Dish: 3, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if _, ok := raw["items"]; !ok {
		t.Error("items field missing")
	}
	if _, ok := raw["table"]; ok {
		t.Error("table field must be omitted when no change was requested")
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not found."}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", "")
	_, err := c.GetOrder(context.Background(), "tok", 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestLogin_SendsPasswordGrant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/o/token/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("grant_type") != "password" ||
			r.PostForm.Get("username") != "khoa" ||
			r.PostForm.Get("client_id") != "cid" {
			t.Errorf("unexpected form: %v", r.PostForm)
		}
		w.Write([]byte(`{"access_token":"abc","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "cid", "secret")
	tok, err := c.Login(context.Background(), "khoa", "pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok.AccessToken != "abc" {
		t.Errorf("got token %+v", tok)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "cid", "secret")
	_, err := c.Login(context.Background(), "khoa", "wrong")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}
