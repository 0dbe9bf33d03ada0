package port

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	// CodecJSON frames messages as newline-delimited JSON.
	CodecJSON = "json"
	// CodecMsgpack frames messages as consecutive msgpack values.
	CodecMsgpack = "msgpack"
)

type (
	// Encoder writes one frame per call.
	Encoder interface {
		Encode(v any) error
	}

	// Decoder reads one frame per call and returns io.EOF once the input is exhausted.
	Decoder interface {
		Decode(v any) error
	}

	// Codec creates the encoders and decoders used by a Stream.
	Codec interface {
		Name() string
		NewEncoder(w io.Writer) Encoder
		NewDecoder(r io.Reader) Decoder
	}

	jsonCodec    struct{}
	msgpackCodec struct{}
)

// NewCodec returns the codec with the given name. An empty name selects JSON.
func NewCodec(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "", CodecJSON:
		return jsonCodec{}, nil
	case CodecMsgpack:
		return msgpackCodec{}, nil
	default:
		return nil, errors.Errorf("unknown codec %q (expected %s or %s)", name, CodecJSON, CodecMsgpack)
	}
}

func (jsonCodec) Name() string                   { return CodecJSON }
func (jsonCodec) NewEncoder(w io.Writer) Encoder { return json.NewEncoder(w) }
func (jsonCodec) NewDecoder(r io.Reader) Decoder { return json.NewDecoder(r) }

func (msgpackCodec) Name() string                   { return CodecMsgpack }
func (msgpackCodec) NewEncoder(w io.Writer) Encoder { return msgpack.NewEncoder(w) }
func (msgpackCodec) NewDecoder(r io.Reader) Decoder { return msgpack.NewDecoder(r) }
