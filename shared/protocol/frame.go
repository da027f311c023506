package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/skirmishdev/skirmish/shared/messages"
)

// Message kinds on the wire.
const (
	KindMove  = "move"
	KindShoot = "shoot"
	KindHit   = "hit"
)

// Frames are flat JSON objects: the payload fields sit beside the
// discriminating "kind" key, e.g.
//
//	{"kind":"move","position":{"x":1,"y":1.7,"z":0},"yaw":0.5,"health":80}
//
// Every frame is validated here, at one choke point, before anything
// downstream touches its fields.
type moveFrame struct {
	Kind string `json:"kind"`
	messages.Move
}

type shootFrame struct {
	Kind string `json:"kind"`
	messages.Shoot
}

type hitFrame struct {
	Kind string `json:"kind"`
	messages.Hit
}

// Encode builds the flat wire frame for a payload of the given kind.
// The payload's type must match the kind.
func Encode(kind string, payload any) ([]byte, error) {
	switch kind {
	case KindMove:
		m, ok := payload.(messages.Move)
		if !ok {
			return nil, fmt.Errorf("encode %s: payload is %T", kind, payload)
		}
		return json.Marshal(moveFrame{Kind: kind, Move: m})
	case KindShoot:
		s, ok := payload.(messages.Shoot)
		if !ok {
			return nil, fmt.Errorf("encode %s: payload is %T", kind, payload)
		}
		return json.Marshal(shootFrame{Kind: kind, Shoot: s})
	case KindHit:
		h, ok := payload.(messages.Hit)
		if !ok {
			return nil, fmt.Errorf("encode %s: payload is %T", kind, payload)
		}
		return json.Marshal(hitFrame{Kind: kind, Hit: h})
	default:
		return nil, fmt.Errorf("encode: unknown message kind %q", kind)
	}
}

// Decode parses a wire frame and returns the typed payload. Unknown
// kinds and malformed payloads come back as errors for the caller to
// drop.
func Decode(data []byte) (string, any, error) {
	if len(data) == 0 {
		return "", nil, fmt.Errorf("decode: empty frame")
	}
	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return "", nil, fmt.Errorf("decode frame: %w", err)
	}

	switch head.Kind {
	case KindMove:
		var f moveFrame
		if err := json.Unmarshal(data, &f); err != nil {
			return head.Kind, nil, fmt.Errorf("decode move: %w", err)
		}
		return head.Kind, f.Move, nil
	case KindShoot:
		var f shootFrame
		if err := json.Unmarshal(data, &f); err != nil {
			return head.Kind, nil, fmt.Errorf("decode shoot: %w", err)
		}
		return head.Kind, f.Shoot, nil
	case KindHit:
		var f hitFrame
		if err := json.Unmarshal(data, &f); err != nil {
			return head.Kind, nil, fmt.Errorf("decode hit: %w", err)
		}
		return head.Kind, f.Hit, nil
	default:
		return head.Kind, nil, fmt.Errorf("decode: unknown message kind %q", head.Kind)
	}
}
