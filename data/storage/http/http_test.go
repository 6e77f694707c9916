package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xhd2015/walletui/data/storage"
	"github.com/xhd2015/walletui/models"
)

func newTestServer(t *testing.T, handler func(path string, body map[string]any) ServerResponse) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("expected bearer token, got %q", got)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		resp := handler(r.URL.Path, body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestListAccounts(t *testing.T) {
	srv := newTestServer(t, func(path string, body map[string]any) ServerResponse {
		if path != "/accounts/list" {
			t.Errorf("unexpected path %s", path)
		}
		data, _ := json.Marshal(map[string]any{
			"accounts": []models.Account{{UUID: "1", Label: "Main"}},
		})
		return ServerResponse{Data: data}
	})

	services := NewClient(srv.URL, "secret").Services()
	accounts, err := services.Accounts.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(accounts) != 1 || accounts[0].Label != "Main" {
		t.Fatalf("unexpected accounts: %+v", accounts)
	}
}

func TestNotFoundCode(t *testing.T) {
	srv := newTestServer(t, func(path string, body map[string]any) ServerResponse {
		if body["name"] != "gone" {
			t.Errorf("expected node name in body, got %v", body)
		}
		return ServerResponse{Code: CodeNotFound, Msg: "node not found"}
	})

	services := NewClient(srv.URL, "secret").Services()
	err := services.Nodes.Delete(context.Background(), "Ethereum", "gone")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServerError(t *testing.T) {
	srv := newTestServer(t, func(path string, body map[string]any) ServerResponse {
		return ServerResponse{Code: 500, Msg: "boom"}
	})

	services := NewClient(srv.URL, "secret").Services()
	err := services.Reset.Reset(context.Background())
	if err == nil || errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected generic server error, got %v", err)
	}
}
