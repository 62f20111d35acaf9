package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/alexanderramin/ozpath/internal/kv"
)

// DecodeObserver is told when a stored value cannot be decoded. The value is
// then treated as absent.
type DecodeObserver interface {
	OnDecodeError(key string, err error)
}

type NoopDecodeObserver struct{}

func (NoopDecodeObserver) OnDecodeError(string, error) {}

// DecodeObserverFunc adapts a function to DecodeObserver.
type DecodeObserverFunc func(key string, err error)

func (f DecodeObserverFunc) OnDecodeError(key string, err error) { f(key, err) }

func orNoop(obs DecodeObserver) DecodeObserver {
	if obs == nil {
		return NoopDecodeObserver{}
	}
	return obs
}

var errTrailingData = errors.New("trailing data after JSON value")

// readJSON loads key into v. It returns false when the key is missing or
// holds malformed JSON, including a valid value followed by anything but
// whitespace. v is left untouched in that case.
func readJSON(ctx context.Context, s kv.Store, obs DecodeObserver, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := decodeStrict(raw, v); err != nil {
		obs.OnDecodeError(key, err)
		return false, nil
	}
	return true, nil
}

// decodeStrict decodes exactly one JSON value from raw into v.
func decodeStrict(raw string, v any) error {
	dec := json.NewDecoder(strings.NewReader(raw))
	var value json.RawMessage
	if err := dec.Decode(&value); err != nil {
		return err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return json.Unmarshal(value, v)
}

func writeJSON(ctx context.Context, s kv.Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.Set(ctx, key, string(b))
}
