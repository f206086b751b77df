//go:build js && wasm

package main

import (
	"encoding/json"
	"errors"
	"syscall/js"

	"headsup-holdem/replay"
)

type generateRequest struct {
	Spec replay.HandSpec `json:"spec"`
}

type generateResponse struct {
	OK    bool                   `json:"ok"`
	Tape  *replay.WireReplayTape `json:"tape,omitempty"`
	Error *replay.ReplayError    `json:"error,omitempty"`
}

type decodeResponse struct {
	OK      bool            `json:"ok"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Exposes __replayGenerate(specJSON) and __replayDecode(envelopeB64) to JS.
func main() {
	js.Global().Set("__replayGenerate", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return toJSON(generateResponse{Error: requestErr("invalid_request", "missing request payload")})
		}
		return toJSON(generate(args[0].String()))
	}))
	js.Global().Set("__replayDecode", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return toJSON(decodeResponse{Error: "missing envelope"})
		}
		return toJSON(decode(args[0].String()))
	}))

	select {}
}

func generate(raw string) generateResponse {
	var req generateRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return generateResponse{Error: requestErr("invalid_json", err.Error())}
	}
	tape, err := replay.GenerateReplayTape(req.Spec)
	if err != nil {
		var re *replay.ReplayError
		if errors.As(err, &re) {
			return generateResponse{Error: re}
		}
		return generateResponse{Error: requestErr("replay_generation_failed", err.Error())}
	}
	return generateResponse{OK: true, Tape: replay.ToWireReplayTape(tape)}
}

func decode(b64 string) decodeResponse {
	payload, err := replay.DecodeEnvelope(b64)
	if err != nil {
		return decodeResponse{Error: err.Error()}
	}
	out, err := payload.MarshalJSON()
	if err != nil {
		return decodeResponse{Error: err.Error()}
	}
	return decodeResponse{OK: true, Payload: out}
}

func requestErr(reason, msg string) *replay.ReplayError {
	return &replay.ReplayError{StepIndex: -1, Reason: reason, Message: msg}
}

func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		b, _ = json.Marshal(generateResponse{Error: requestErr("marshal_failed", err.Error())})
	}
	return string(b)
}
