package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/finsight/server/internal/repo"
)

const (
	otpExpiry = 5 * time.Minute
	// expiryLayout is the textual timestamp format stored in otps.expires_at.
	expiryLayout = "2006-01-02 15:04:05"
)

// Reason classifies the outcome of an OTP verification attempt.
type Reason string

const (
	ReasonVerified      Reason = "verified"
	ReasonNoOtp         Reason = "no_otp"
	ReasonExpired       Reason = "expired"
	ReasonWrong         Reason = "wrong"
	ReasonInvalidExpiry Reason = "invalid_expiry"
)

// Ledger issues and verifies one-time passwords backed by an append-only
// otps table. All time comparisons use UTC on both sides.
type Ledger struct {
	otpRepo repo.OtpRepo
}

// NewLedger creates a new OTP ledger
func NewLedger(otpRepo repo.OtpRepo) *Ledger {
	return &Ledger{otpRepo: otpRepo}
}

// Issue generates a 6-digit code for the email, stores it with a 5-minute
// expiry, and returns the plaintext code for delivery. Outstanding codes for
// the same email are not invalidated; only the newest is ever verifiable.
func (l *Ledger) Issue(ctx context.Context, email string) (string, error) {
	code := generateOTPCode()
	expiresAt := time.Now().UTC().Add(otpExpiry).Format(expiryLayout)
	if _, err := l.otpRepo.Insert(ctx, email, code, expiresAt); err != nil {
		return "", fmt.Errorf("store otp: %w", err)
	}
	return code, nil
}

// Verify checks the candidate against the most recently issued unused record
// for the email and reports the outcome. Only a correct, in-window candidate
// marks the record used; expired and wrong attempts leave it untouched, so a
// wrong attempt may be retried but an expired record stays dead.
func (l *Ledger) Verify(ctx context.Context, email, candidate string) (bool, Reason, error) {
	rec, err := l.otpRepo.LatestUnused(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, ReasonNoOtp, nil
		}
		return false, ReasonNoOtp, fmt.Errorf("load otp: %w", err)
	}

	exp, err := time.ParseInLocation(expiryLayout, rec.ExpiresAt, time.UTC)
	if err != nil {
		// Should not happen for rows written by Issue; treated as unverifiable.
		return false, ReasonInvalidExpiry, nil
	}

	if time.Now().UTC().After(exp) {
		return false, ReasonExpired, nil
	}

	if strings.TrimSpace(candidate) != rec.Code {
		return false, ReasonWrong, nil
	}

	if err := l.otpRepo.MarkUsed(ctx, rec.ID); err != nil {
		return false, ReasonNoOtp, fmt.Errorf("consume otp: %w", err)
	}
	return true, ReasonVerified, nil
}

// generateOTPCode returns a uniform random 6-digit code (100000-999999).
func generateOTPCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := rng.Intn(900000) + 100000
	return fmt.Sprintf("%06d", code)
}
