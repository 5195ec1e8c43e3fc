package nakama

const (
	// RpcCreateMatch is the Nakama RPC id clients call to start a match against the computer.
	RpcCreateMatch = "nzsc_create_match"
	// RpcVerifyReceipt checks a revealed seed against the receipt issued at creation.
	RpcVerifyReceipt = "nzsc_verify_receipt"

	// MatchNameNZSC is the authoritative match handler name registered with Nakama.
	MatchNameNZSC = "nzsc_match"

	// SignalReceipt asks a running match for its seed receipt.
	SignalReceipt = "receipt"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpAnswer int64 = 1

	// Server -> Client events
	OpOutput     int64 = 101
	OpMatchError int64 = 102
	OpSeedReveal int64 = 103
)

// Error codes carried by OpMatchError.
const (
	ErrCodeBadRequest    = 400
	ErrCodePhaseMismatch = 409
)

// Environment keys read from the Nakama runtime config.
const (
	EnvReceiptSecret = "nzsc_receipt_secret"
	EnvReceiptIssuer = "nzsc_receipt_issuer"
)

const (
	gameConfigPath      = "data/game_config.json"
	defaultPersonasPath = "data/personas.json"
)
