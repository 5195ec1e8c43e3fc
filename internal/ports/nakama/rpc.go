package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"nzsc/internal/app"
	"nzsc/internal/random"

	"github.com/heroiclabs/nakama-common/runtime"
)

// receiptService signs seed receipts. Nil when no credentials are configured.
var receiptService *app.ReceiptService

// CreateMatchRequest is the optional payload of RpcCreateMatch.
type CreateMatchRequest struct {
	Seed *uint32 `json:"seed"`
}

// CreateMatchResponse is returned to clients after a match is created.
type CreateMatchResponse struct {
	MatchID string `json:"match_id"`
	Receipt string `json:"receipt"`
}

// VerifyReceiptRequest carries a seed revealed at game over.
type VerifyReceiptRequest struct {
	MatchID string `json:"match_id"`
	Seed    uint32 `json:"seed"`
	Salt    string `json:"salt"`
	Receipt string `json:"receipt"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcCreateMatch, RpcCreateMatchFn); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcVerifyReceipt, RpcVerifyReceiptFn)
}

// RpcCreateMatchFn creates an authoritative match for the calling user.
//
// Payload: (Optional) {"seed": <uint32>} to replay a known match.
// Returns: {"match_id": "...", "receipt": "..."}.
func RpcCreateMatchFn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req CreateMatchRequest
	if strings.TrimSpace(payload) != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
		}
	}

	var seed uint32
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		var err error
		if seed, err = random.NewSeed(); err != nil {
			logger.Error("RpcCreateMatch [User:%s]: Failed to generate seed: %v", userID, err)
			return "", runtime.NewError("Internal error", 13) // INTERNAL
		}
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameNZSC, map[string]interface{}{"seed": seed})
	if err != nil {
		logger.Error("RpcCreateMatch [User:%s]: Failed to create match: %v", userID, err)
		return "", err
	}

	receipt, err := nk.MatchSignal(ctx, matchID, SignalReceipt)
	if err != nil {
		logger.Warn("RpcCreateMatch [User:%s]: Could not fetch receipt for %s: %v", userID, matchID, err)
	}

	logger.Info("RpcCreateMatch [User:%s]: Created match %s", userID, matchID)
	b, _ := json.Marshal(CreateMatchResponse{MatchID: matchID, Receipt: receipt})
	return string(b), nil
}

// RpcVerifyReceiptFn checks that a revealed seed matches the receipt issued
// when the match was created.
func RpcVerifyReceiptFn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req VerifyReceiptRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3)
	}
	if req.MatchID == "" || req.Receipt == "" {
		return "", runtime.NewError("match_id and receipt required", 3)
	}
	if receiptService == nil {
		return "", runtime.NewError("Receipts not configured", 12) // UNIMPLEMENTED
	}

	valid := true
	reason := ""
	if err := receiptService.Verify(req.Receipt, req.MatchID, req.Seed, req.Salt); err != nil {
		if !errors.Is(err, app.ErrReceiptInvalid) && !errors.Is(err, app.ErrReceiptMismatch) {
			logger.Error("RpcVerifyReceipt: %v", err)
			return "", runtime.NewError("Internal error", 13)
		}
		valid, reason = false, err.Error()
	}

	b, _ := json.Marshal(map[string]interface{}{"valid": valid, "reason": reason})
	return string(b), nil
}
