package messages

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

func SerializeRequest(r *Request) ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}
	return b, nil
}

func DeserializeRequest(b []byte) (*Request, error) {
	r := &Request{}
	if err := json.Unmarshal(b, r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal request: %v", err)
	}
	if r.Command == "" {
		return nil, fmt.Errorf("request has no command")
	}
	return r, nil
}

func SerializeReply(r *Reply) ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reply: %v", err)
	}
	return b, nil
}

func DeserializeReply(b []byte) (*Reply, error) {
	r := &Reply{}
	if err := json.Unmarshal(b, r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reply: %v", err)
	}
	return r, nil
}

// Compress wraps b in a zstd frame. Binary websocket frames carry
// compressed JSON, text frames carry it plain.
func Compress(b []byte) ([]byte, error) {
	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress message: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

func Decompress(data []byte) ([]byte, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()

	b, err := io.ReadAll(io.LimitReader(compReader, MaxMessageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed message: %v", err)
	}
	if len(b) > MaxMessageSize {
		return nil, fmt.Errorf("decompressed message exceeds %d bytes", MaxMessageSize)
	}

	return b, nil
}
