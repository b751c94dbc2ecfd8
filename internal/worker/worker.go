// Package worker implements a line-delimited JSON-RPC loop for driving
// captures from a parent process. Each request line produces exactly one
// response line on stdout; log output goes elsewhere.
package worker

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	jsoniter "github.com/json-iterator/go"

	"github.com/uiasnap/uiasnap/internal/input"
	"github.com/uiasnap/uiasnap/internal/platform"
	"github.com/uiasnap/uiasnap/internal/sysinfo"
	"github.com/uiasnap/uiasnap/internal/uia"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request is one incoming line. Params stays raw until the method is known.
type Request struct {
	ID     uint64              `json:"id"`
	Method string              `json:"method"`
	Params jsoniter.RawMessage `json:"params"`
}

// Response is one outgoing line. Exactly one of Result and Error is set.
type Response struct {
	ID     uint64      `json:"id"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type captureParams struct {
	Handles  []int64 `json:"handles"`
	MaxDepth *int    `json:"max_depth"`
}

type listParams struct {
	App string `json:"app"`
	PID int    `json:"pid"`
}

type sendInputParams struct {
	Events []input.Event `json:"events"`
}

type sendTextParams struct {
	Text string `json:"text"`
}

type sendHotkeyParams struct {
	Keys []string `json:"keys"`
}

// Run reads requests from r until EOF, writing one response per line to w.
// Request lines may be arbitrarily long. A line that fails to parse yields an
// error response with id 0; the loop never exits on a bad request.
func Run(r io.Reader, w io.Writer) error {
	provider := platform.NewProvider()
	reader := bufio.NewReader(r)
	enc := json.NewEncoder(w)

	for {
		line, readErr := reader.ReadBytes('\n')
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			var req Request
			if err := json.Unmarshal(line, &req); err != nil {
				slog.Warn("malformed request line", "error", err)
				if err := enc.Encode(Response{ID: 0, Error: fmt.Sprintf("malformed request: %v", err)}); err != nil {
					return err
				}
			} else if err := enc.Encode(dispatch(provider, req)); err != nil {
				return err
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}
	}
}

func dispatch(provider *platform.Provider, req Request) Response {
	result, err := handle(provider, req.Method, req.Params)
	if err != nil {
		return Response{ID: req.ID, Error: err.Error()}
	}
	return Response{ID: req.ID, Result: result}
}

func handle(provider *platform.Provider, method string, params jsoniter.RawMessage) (interface{}, error) {
	switch method {
	case "ping":
		return "pong", nil

	case "capture_tree":
		var p captureParams
		if err := unmarshalParams(params, &p); err != nil {
			return nil, err
		}
		maxDepth := uia.DefaultMaxDepth
		if p.MaxDepth != nil {
			maxDepth = *p.MaxDepth
		}
		return uia.CaptureTree(p.Handles, maxDepth), nil

	case "list_windows":
		var p listParams
		if err := unmarshalParams(params, &p); err != nil {
			return nil, err
		}
		if provider.Lister == nil {
			return nil, platform.ErrUnsupported
		}
		return provider.Lister.ListWindows(platform.ListOptions{App: p.App, PID: p.PID})

	case "system_info":
		return sysinfo.Collect()

	case "send_input":
		var p sendInputParams
		if err := unmarshalParams(params, &p); err != nil {
			return nil, err
		}
		applied, err := input.Send(p.Events)
		if err != nil {
			return nil, err
		}
		return map[string]int{"applied": applied}, nil

	case "send_text":
		var p sendTextParams
		if err := unmarshalParams(params, &p); err != nil {
			return nil, err
		}
		applied, err := input.Send([]input.Event{{Kind: input.KindText, Text: p.Text}})
		if err != nil {
			return nil, err
		}
		return map[string]int{"applied": applied}, nil

	case "send_hotkey":
		var p sendHotkeyParams
		if err := unmarshalParams(params, &p); err != nil {
			return nil, err
		}
		applied, err := input.Send([]input.Event{{Kind: input.KindHotkey, Keys: p.Keys}})
		if err != nil {
			return nil, err
		}
		return map[string]int{"applied": applied}, nil

	default:
		return nil, fmt.Errorf("unknown method %q", method)
	}
}

func unmarshalParams(raw jsoniter.RawMessage, dst interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	return nil
}
