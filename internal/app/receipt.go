package app

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

var (
	ErrReceiptConfig   = errors.New("receipt config is incomplete")
	ErrReceiptInvalid  = errors.New("receipt is invalid")
	ErrReceiptMismatch = errors.New("receipt does not commit to this seed")
)

// ReceiptTTL bounds how long a seed receipt stays verifiable.
const ReceiptTTL = 24 * time.Hour

// SeedReceipt commits to a match seed without revealing it. The salt stays
// server side until the match is over.
type SeedReceipt struct {
	Token string `json:"receipt"`
	Salt  string `json:"salt"`
}

type ReceiptService struct {
	secret string
	issuer string
	now    func() time.Time
}

func NewReceiptService(secret, issuer string) *ReceiptService {
	return &ReceiptService{secret: secret, issuer: issuer, now: time.Now}
}

// Issue signs a commitment to seed for the given match.
func (s *ReceiptService) Issue(matchID string, seed uint32) (SeedReceipt, error) {
	if s == nil {
		return SeedReceipt{}, fmt.Errorf("receipt service is nil")
	}
	if matchID == "" {
		return SeedReceipt{}, fmt.Errorf("match id is required")
	}
	if s.secret == "" || s.issuer == "" {
		return SeedReceipt{}, ErrReceiptConfig
	}

	salt, err := newSalt()
	if err != nil {
		return SeedReceipt{}, err
	}

	now := s.now()
	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": matchID,
		"iat": now.Unix(),
		"exp": now.Add(ReceiptTTL).Unix(),
		"cmt": commitment(matchID, seed, salt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return SeedReceipt{}, fmt.Errorf("sign receipt: %w", err)
	}
	return SeedReceipt{Token: signed, Salt: salt}, nil
}

// Verify checks that token was issued by this service for matchID and that
// it commits to seed under salt.
func (s *ReceiptService) Verify(token, matchID string, seed uint32, salt string) error {
	if s == nil || s.secret == "" || s.issuer == "" {
		return ErrReceiptConfig
	}
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !parsed.Valid {
		return fmt.Errorf("%w: %v", ErrReceiptInvalid, err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ErrReceiptInvalid
	}
	if iss, _ := claims["iss"].(string); iss != s.issuer {
		return fmt.Errorf("%w: issuer %q", ErrReceiptInvalid, iss)
	}
	if sub, _ := claims["sub"].(string); sub != matchID {
		return fmt.Errorf("%w: match %q", ErrReceiptMismatch, sub)
	}
	if cmt, _ := claims["cmt"].(string); cmt != commitment(matchID, seed, salt) {
		return ErrReceiptMismatch
	}
	return nil
}

func commitment(matchID string, seed uint32, salt string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%d:%s", matchID, seed, salt)))
	return hex.EncodeToString(sum[:])
}

func newSalt() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate receipt salt: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}
