package app

import (
	"errors"
	"testing"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

func TestReceiptRoundTrip(t *testing.T) {
	svc := NewReceiptService("test-secret", "nzsc")
	r, err := svc.Issue("match-1", 42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if r.Token == "" || len(r.Salt) != 32 {
		t.Fatalf("receipt = %+v", r)
	}
	if err := svc.Verify(r.Token, "match-1", 42, r.Salt); err != nil {
		t.Fatalf("verify: %v", err)
	}

	parsed, _, err := new(jwt.Parser).ParseUnverified(r.Token, jwt.MapClaims{})
	if err != nil {
		t.Fatalf("parse unverified: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != "match-1" || claims["iss"] != "nzsc" {
		t.Fatalf("claims = %v", claims)
	}
	if _, ok := claims["seed"]; ok {
		t.Fatal("receipt must not carry the seed in clear")
	}
}

func TestReceiptRejects(t *testing.T) {
	svc := NewReceiptService("test-secret", "nzsc")
	r, err := svc.Issue("match-1", 42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name    string
		svc     *ReceiptService
		matchID string
		seed    uint32
		salt    string
		want    error
	}{
		{name: "WrongSeed", svc: svc, matchID: "match-1", seed: 43, salt: r.Salt, want: ErrReceiptMismatch},
		{name: "WrongSalt", svc: svc, matchID: "match-1", seed: 42, salt: "00", want: ErrReceiptMismatch},
		{name: "WrongMatch", svc: svc, matchID: "match-2", seed: 42, salt: r.Salt, want: ErrReceiptMismatch},
		{name: "WrongSecret", svc: NewReceiptService("other", "nzsc"), matchID: "match-1", seed: 42, salt: r.Salt, want: ErrReceiptInvalid},
		{name: "WrongIssuer", svc: NewReceiptService("test-secret", "other"), matchID: "match-1", seed: 42, salt: r.Salt, want: ErrReceiptInvalid},
		{name: "Unconfigured", svc: NewReceiptService("", ""), matchID: "match-1", seed: 42, salt: r.Salt, want: ErrReceiptConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.svc.Verify(r.Token, tt.matchID, tt.seed, tt.salt); !errors.Is(err, tt.want) {
				t.Fatalf("verify err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReceiptExpires(t *testing.T) {
	svc := NewReceiptService("test-secret", "nzsc")
	svc.now = func() time.Time { return time.Now().Add(-2 * ReceiptTTL) }
	r, err := svc.Issue("match-1", 7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := svc.Verify(r.Token, "match-1", 7, r.Salt); !errors.Is(err, ErrReceiptInvalid) {
		t.Fatalf("verify err = %v, want ErrReceiptInvalid", err)
	}
}

func TestReceiptIssueRequiresConfig(t *testing.T) {
	if _, err := NewReceiptService("", "nzsc").Issue("m", 1); !errors.Is(err, ErrReceiptConfig) {
		t.Fatalf("err = %v, want ErrReceiptConfig", err)
	}
	var nilSvc *ReceiptService
	if _, err := nilSvc.Issue("m", 1); err == nil {
		t.Fatal("expected error from nil service")
	}
}
