package nakama

import (
	"context"
	"encoding/json"
	"testing"

	"nzsc/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

type sentMessage struct {
	opCode     int64
	data       []byte
	recipients []runtime.Presence
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	runtime.MatchDispatcher
	messages []sentMessage
	labels   []string
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.messages = append(md.messages, sentMessage{opCode: opCode, data: append([]byte(nil), data...), recipients: presences})
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labels = append(md.labels, label)
	return nil
}

func (md *mockDispatcher) last(t *testing.T) sentMessage {
	t.Helper()
	if len(md.messages) == 0 {
		t.Fatal("no messages dispatched")
	}
	return md.messages[len(md.messages)-1]
}

// decode unmarshals a dispatched payload into a generic JSON object.
func (m sentMessage) decode(t *testing.T) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(m.data, &out); err != nil {
		t.Fatalf("payload for op %d is not json: %v", m.opCode, err)
	}
	return out
}

type testPresence struct {
	runtime.Presence
	userID   string
	username string
}

func (p testPresence) GetUserId() string   { return p.userID }
func (p testPresence) GetUsername() string { return p.username }

type testMatchData struct {
	runtime.MatchData
	userID string
	opCode int64
	data   []byte
}

func (d testMatchData) GetUserId() string { return d.userID }
func (d testMatchData) GetOpCode() int64  { return d.opCode }
func (d testMatchData) GetData() []byte   { return d.data }

type fakeResults struct {
	recorded []ports.MatchResult
	err      error
}

func (f *fakeResults) RecordResult(ctx context.Context, result ports.MatchResult) error {
	f.recorded = append(f.recorded, result)
	return f.err
}

type leaderboardWrite struct {
	id, ownerID, username string
	score, subscore       int64
	metadata              map[string]interface{}
}

// fakeNakama implements the parts of runtime.NakamaModule the adapters use.
type fakeNakama struct {
	runtime.NakamaModule
	created      []map[string]interface{}
	signals      []string
	receipt      string
	writes       []leaderboardWrite
	leaderboards []string
}

func (f *fakeNakama) MatchCreate(ctx context.Context, module string, params map[string]interface{}) (string, error) {
	f.created = append(f.created, params)
	return "match-" + module, nil
}

func (f *fakeNakama) MatchSignal(ctx context.Context, id string, data string) (string, error) {
	f.signals = append(f.signals, data)
	return f.receipt, nil
}

func (f *fakeNakama) LeaderboardRecordWrite(ctx context.Context, id, ownerID, username string, score, subscore int64, metadata map[string]interface{}, overrideOperator *int) (*api.LeaderboardRecord, error) {
	f.writes = append(f.writes, leaderboardWrite{id: id, ownerID: ownerID, username: username, score: score, subscore: subscore, metadata: metadata})
	return &api.LeaderboardRecord{LeaderboardId: id, OwnerId: ownerID, Score: score}, nil
}

func (f *fakeNakama) LeaderboardCreate(ctx context.Context, id string, authoritative bool, sortOrder, operator, resetSchedule string, metadata map[string]interface{}, enableRanks bool) error {
	f.leaderboards = append(f.leaderboards, id)
	return nil
}
