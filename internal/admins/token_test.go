package admins

import (
	"testing"
	"time"
)

func TestMintAndVerifyToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := &Admin{ID: "adm-1", Email: "ops@sportlebanon.com", Role: RoleSuperAdmin}

	signed, expiresAt, err := MintToken("test-secret", a, time.Hour, now)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if !expiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("expected expiry %v, got %v", now.Add(time.Hour), expiresAt)
	}

	claims, err := VerifyToken("test-secret", signed, now.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "adm-1" {
		t.Fatalf("expected subject adm-1, got %q", claims.Subject)
	}
	if claims.Role != string(RoleSuperAdmin) {
		t.Fatalf("expected role super_admin, got %q", claims.Role)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := &Admin{ID: "adm-1", Email: "ops@sportlebanon.com", Role: RoleAdmin}

	signed, _, err := MintToken("test-secret", a, time.Hour, now)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := VerifyToken("test-secret", signed, now.Add(2*time.Hour)); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := &Admin{ID: "adm-1", Email: "ops@sportlebanon.com", Role: RoleAdmin}

	signed, _, err := MintToken("test-secret", a, time.Hour, now)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := VerifyToken("other-secret", signed, now); err == nil {
		t.Fatalf("expected signature mismatch to fail")
	}
}
