package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	adminModel "hostel_admin_backend/internals/features/staff/admins/model"
	"hostel_admin_backend/internals/features/staff/shared"
)

func testAdmin() adminModel.AdminModel {
	return adminModel.AdminModel{
		AdminID:     uuid.MustParse("6f1c1c7e-1f6a-4f3b-9a53-0e0f3f7b2a11"),
		StaffFields: shared.StaffFields{EmpID: "ADM001", Name: "Meera"},
	}
}

func TestIssueAccessTokenRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	tok, exp, err := IssueAccessToken(testAdmin(), "s3cret", now, 2*time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if !exp.Equal(now.Add(2 * time.Hour)) {
		t.Fatalf("expires at %v", exp)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) {
		return []byte("s3cret"), nil
	}); err != nil {
		t.Fatal(err)
	}
	if claims["sub"] != "6f1c1c7e-1f6a-4f3b-9a53-0e0f3f7b2a11" || claims["emp_id"] != "ADM001" || claims["role"] != "admin" {
		t.Fatalf("claims = %v", claims)
	}
}

func TestIssueAccessTokenNeedsSecret(t *testing.T) {
	if _, _, err := IssueAccessToken(testAdmin(), "", time.Now(), time.Hour); err == nil {
		t.Fatal("expected error without secret")
	}
}

func TestResolveBlacklistTTL(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	tok, _, err := IssueAccessToken(testAdmin(), "s3cret", now, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if got := ResolveBlacklistTTL(tok, "s3cret", now); got != time.Hour+time.Minute {
		t.Errorf("ttl = %v", got)
	}
	if got := ResolveBlacklistTTL(tok, "wrong", now); got != minBlacklistTTL {
		t.Errorf("bad signature ttl = %v", got)
	}
	if got := ResolveBlacklistTTL(tok, "s3cret", now.Add(2*time.Hour)); got != minBlacklistTTL {
		t.Errorf("expired ttl = %v", got)
	}
	if got := ResolveBlacklistTTL("", "s3cret", now); got != minBlacklistTTL {
		t.Errorf("empty ttl = %v", got)
	}
}
