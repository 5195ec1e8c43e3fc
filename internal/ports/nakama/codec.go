package nakama

import (
	"encoding/json"
	"errors"
	"fmt"

	"nzsc/internal/app"
	"nzsc/internal/domain"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var ErrMalformedAnswer = errors.New("malformed answer")

// answerMessage is the client's answer payload: {"kind": "...", "name": "..."}.
type answerMessage struct {
	Kind app.AnswerKind
	Name string
}

// decodeAnswer reads an answer sent as a JSON object.
func decodeAnswer(data []byte) (answerMessage, error) {
	msg := &structpb.Struct{}
	if err := protojson.Unmarshal(data, msg); err != nil {
		return answerMessage{}, fmt.Errorf("%w: %v", ErrMalformedAnswer, err)
	}
	fields := msg.GetFields()
	kind := fields["kind"].GetStringValue()
	if kind == "" {
		return answerMessage{}, fmt.Errorf("%w: missing kind", ErrMalformedAnswer)
	}
	return answerMessage{Kind: app.AnswerKind(kind), Name: fields["name"].GetStringValue()}, nil
}

// encodeJSON renders any JSON-serializable value as a google.protobuf.Struct
// in canonical protojson form.
func encodeJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	return (&protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(s)
}

func encodeOutput(out app.Output) ([]byte, error) {
	return encodeJSON(out)
}

type matchErrorMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type seedRevealMessage struct {
	Seed    uint32 `json:"seed"`
	Salt    string `json:"salt"`
	Receipt string `json:"receipt"`
}

// matchLabel is what matchmaking queries filter on.
type matchLabel struct {
	Game     string       `json:"game"`
	Phase    domain.Phase `json:"phase"`
	Open     int          `json:"open"`
	Opponent string       `json:"opponent"`
}

func encodeLabel(label matchLabel) (string, error) {
	b, err := encodeJSON(label)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
