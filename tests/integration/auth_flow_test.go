package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAuthFlow_RegisterLoginProfile(t *testing.T) {
	app := setupApp(t)

	token, _, userID := app.registerUser(t, "admin@test.com", "password123")
	if userID == 0 {
		t.Fatal("expected a user ID from registration")
	}

	// Access token works against a protected route
	rec := app.request("GET", "/api/v1/profile", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	profile := parseJSON(t, rec)
	if profile["email"] != "admin@test.com" {
		t.Errorf("expected email admin@test.com, got %v", profile["email"])
	}

	// Login produces a fresh token pair
	loginToken, _ := app.loginUser(t, "admin@test.com", "password123")
	rec = app.request("GET", "/api/v1/profile", "", loginToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with login token, got %d", rec.Code)
	}
}

func TestAuthFlow_RefreshRotatesTokens(t *testing.T) {
	app := setupApp(t)
	_, refreshToken, _ := app.registerUser(t, "refresh@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/refresh",
		fmt.Sprintf(`{"refresh_token":%q}`, refreshToken), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	newRefresh := result["refresh_token"].(string)

	// The old refresh token is no longer accepted
	rec = app.request("POST", "/api/v1/auth/refresh",
		fmt.Sprintf(`{"refresh_token":%q}`, refreshToken), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for rotated-out token, got %d", rec.Code)
	}

	// The new one is
	rec = app.request("POST", "/api/v1/auth/refresh",
		fmt.Sprintf(`{"refresh_token":%q}`, newRefresh), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for new refresh token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthFlow_LockoutAfterRepeatedFailures(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "locked@test.com", "password123")

	for i := 0; i < 5; i++ {
		rec := app.request("POST", "/api/v1/auth/login",
			`{"email":"locked@test.com","password":"wrong-password"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, rec.Code)
		}
	}

	// Account is now locked even with the right password
	rec := app.request("POST", "/api/v1/auth/login",
		`{"email":"locked@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusLocked {
		t.Fatalf("expected 423, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthFlow_ProtectedRoutesRequireToken(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/condominiums", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/condominiums", "", "not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", rec.Code)
	}
}
