package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FelipeK57/comandapro-api/internal/middleware"
	"github.com/FelipeK57/comandapro-api/internal/model"
	"github.com/FelipeK57/comandapro-api/internal/service"
	"github.com/FelipeK57/comandapro-api/pkg/config"
	"github.com/FelipeK57/comandapro-api/pkg/jwtutil"
	"github.com/labstack/echo/v4"
)

// newTestServer wires the auth and table endpoints against in-memory stores,
// mirroring the production route layout.
func newTestServer(t *testing.T) (*httptest.Server, *memTableStore) {
	t.Helper()

	jwtCfg := &config.JWTConfig{
		SigningKey:    "handler-test-key",
		SessionTTL:    24 * time.Hour,
		RememberMeTTL: 30 * 24 * time.Hour,
	}
	jwtutil.Initialize(jwtCfg)

	users := &memUserStore{}
	restaurants := &memRestaurantStore{}
	tables := &memTableStore{}
	tx := &memTransactor{users: users, restaurants: restaurants}

	authService := service.NewAuthService(users, restaurants, plainHasher{}, tx, jwtCfg)
	tableService := service.NewTableService(tables, restaurants)

	authHandler := NewAuthHandler(authService)
	tableHandler := NewTableHandler(tableService)

	e := echo.New()
	auth := e.Group("/api/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	api := e.Group("/api/v1")
	api.Use(middleware.AuthMiddleware)
	api.POST("/tables", tableHandler.CreateTable)
	api.GET("/tables/:id", tableHandler.GetTable)

	ts := httptest.NewServer(e)
	t.Cleanup(ts.Close)
	return ts, tables
}

func TestRegisterAndLoginFlow(t *testing.T) {
	ts, _ := newTestServer(t)

	status, body := postJSON(t, ts.URL+"/api/v1/auth/register", map[string]interface{}{
		"full_name":       "Ana García",
		"restaurant_name": "La Terraza",
		"email":           "ana@terraza.co",
		"password":        "secret123",
	})
	if status != http.StatusOK {
		t.Fatalf("register status = %d, body %v", status, body)
	}
	if body["message"] != "Registro completado exitosamente" {
		t.Errorf("message = %v", body["message"])
	}

	// Registering the same restaurant again conflicts
	status, body = postJSON(t, ts.URL+"/api/v1/auth/register", map[string]interface{}{
		"full_name":       "Beto",
		"restaurant_name": "La Terraza",
		"email":           "beto@otra.co",
		"password":        "pw",
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate register status = %d", status)
	}
	if body["error"] != "El nombre del restaurante ya está en uso" {
		t.Errorf("error = %v", body["error"])
	}

	status, body = postJSON(t, ts.URL+"/api/v1/auth/login", map[string]interface{}{
		"email":    "ana@terraza.co",
		"password": "secret123",
	})
	if status != http.StatusOK {
		t.Fatalf("login status = %d, body %v", status, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login response missing token")
	}

	claims, err := jwtutil.ParseToken(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Subject != "1" {
		t.Errorf("subject = %q, want the user ID", claims.Subject)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts, _ := newTestServer(t)

	postJSON(t, ts.URL+"/api/v1/auth/register", map[string]interface{}{
		"full_name":       "Ana",
		"restaurant_name": "La Terraza",
		"email":           "ana@terraza.co",
		"password":        "secret123",
	})

	status, body := postJSON(t, ts.URL+"/api/v1/auth/login", map[string]interface{}{
		"email":    "ana@terraza.co",
		"password": "wrong",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
	if body["error"] != "Credenciales inválidas" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/tables/1")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 without token", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/tables/1", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 with garbage token", resp2.StatusCode)
	}
}

func TestTableScopedToCallerRestaurant(t *testing.T) {
	ts, tables := newTestServer(t)

	postJSON(t, ts.URL+"/api/v1/auth/register", map[string]interface{}{
		"full_name":       "Ana",
		"restaurant_name": "La Terraza",
		"email":           "ana@terraza.co",
		"password":        "pw",
	})
	_, loginBody := postJSON(t, ts.URL+"/api/v1/auth/login", map[string]interface{}{
		"email":    "ana@terraza.co",
		"password": "pw",
	})
	token := loginBody["token"].(string)

	status, created := postAuthedJSON(t, ts.URL+"/api/v1/tables", token, map[string]interface{}{
		"number": "M1",
	})
	if status != http.StatusCreated {
		t.Fatalf("create table status = %d, body %v", status, created)
	}

	// A table of another restaurant reads as not found
	foreign := &model.Table{RestaurantID: 99, Number: "X1", Status: model.TableDisponible}
	if err := tables.Save(foreign); err != nil {
		t.Fatalf("seed foreign table: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/api/v1/tables/%d", ts.URL, foreign.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("cross-restaurant read status = %d, want 404", resp.StatusCode)
	}
}

func postJSON(t *testing.T, url string, payload map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()
	return postAuthedJSON(t, url, "", payload)
}

func postAuthedJSON(t *testing.T, url, token string, payload map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response from %s: %v", url, err)
	}
	return resp.StatusCode, body
}
