package integration

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

const (
	ServerKey = "defaultkey"
	Host      = "127.0.0.1"
	Port      = 7350
)

const (
	OpAnswer     = 1
	OpOutput     = 101
	OpMatchError = 102
	OpSeedReveal = 103
)

type TestClient struct {
	HTTP   *http.Client
	Token  string
	Socket *websocket.Conn
	cid    int
}

func baseURL() string {
	return fmt.Sprintf("http://%s:%d", Host, Port)
}

// NewTestClient authenticates a fresh device and opens a realtime socket.
// The test is skipped when no server is listening.
func NewTestClient(t *testing.T) *TestClient {
	t.Helper()
	tc := &TestClient{HTTP: &http.Client{Timeout: 5 * time.Second}}

	deviceID := fmt.Sprintf("test_device_%d", time.Now().UnixNano())
	body, _ := json.Marshal(map[string]string{"id": deviceID})
	req, err := http.NewRequest(http.MethodPost, baseURL()+"/v2/account/authenticate/device?create=true", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to build auth request: %v", err)
	}
	req.SetBasicAuth(ServerKey, "")
	req.Header.Set("Content-Type", "application/json")
	resp, err := tc.HTTP.Do(req)
	if err != nil {
		t.Skipf("Nakama not reachable: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Failed to authenticate: status %d", resp.StatusCode)
	}
	var session struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		t.Fatalf("Failed to decode session: %v", err)
	}
	tc.Token = session.Token

	wsURL := fmt.Sprintf("ws://%s:%d/ws?lang=en&status=true&token=%s", Host, Port, url.QueryEscape(tc.Token))
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect socket: %v", err)
	}
	tc.Socket = conn
	return tc
}

func (tc *TestClient) Close() {
	if tc.Socket != nil {
		tc.Socket.Close()
	}
}

// Rpc calls a server RPC with a JSON payload and returns the response payload.
func (tc *TestClient) Rpc(t *testing.T, id string, payload any) string {
	t.Helper()
	inner, _ := json.Marshal(payload)
	// The HTTP gateway expects the payload as a JSON string.
	body, _ := json.Marshal(string(inner))
	req, err := http.NewRequest(http.MethodPost, baseURL()+"/v2/rpc/"+id, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to build rpc request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+tc.Token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := tc.HTTP.Do(req)
	if err != nil {
		t.Fatalf("RPC %s failed: %v", id, err)
	}
	defer resp.Body.Close()
	var out struct {
		Payload string `json:"payload"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("RPC %s returned undecodable body: %v", id, err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("RPC %s failed with status %d", id, resp.StatusCode)
	}
	return out.Payload
}

func (tc *TestClient) send(t *testing.T, envelope map[string]any) {
	t.Helper()
	tc.cid++
	envelope["cid"] = strconv.Itoa(tc.cid)
	if err := tc.Socket.WriteJSON(envelope); err != nil {
		t.Fatalf("Failed to write envelope: %v", err)
	}
}

func (tc *TestClient) JoinMatch(t *testing.T, matchID string) {
	t.Helper()
	tc.send(t, map[string]any{"match_join": map[string]any{"match_id": matchID}})
}

// SendAnswer sends an answer message on the answer op code.
func (tc *TestClient) SendAnswer(t *testing.T, matchID, kind, name string) {
	t.Helper()
	data, _ := json.Marshal(map[string]string{"kind": kind, "name": name})
	tc.send(t, map[string]any{"match_data_send": map[string]any{
		"match_id": matchID,
		"op_code":  strconv.Itoa(OpAnswer),
		"data":     base64.StdEncoding.EncodeToString(data),
	}})
}

// WaitForMatchState reads envelopes until match data with opCode arrives and
// returns its decoded payload.
func (tc *TestClient) WaitForMatchState(t *testing.T, opCode int, timeout time.Duration) []byte {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		_ = tc.Socket.SetReadDeadline(deadline)
		var env struct {
			MatchData *struct {
				OpCode string `json:"op_code"`
				Data   string `json:"data"`
			} `json:"match_data"`
		}
		if err := tc.Socket.ReadJSON(&env); err != nil {
			t.Fatalf("Timeout waiting for OpCode %d: %v", opCode, err)
		}
		if env.MatchData == nil || env.MatchData.OpCode != strconv.Itoa(opCode) {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(env.MatchData.Data)
		if err != nil {
			t.Fatalf("Failed to decode match data: %v", err)
		}
		return data
	}
}
