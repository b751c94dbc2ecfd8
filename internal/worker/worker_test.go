package worker

import (
	"bytes"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

func runLines(t *testing.T, lines ...string) []Response {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	if err := Run(in, &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	var responses []Response
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var resp Response
		if err := jsoniter.Unmarshal([]byte(line), &resp); err != nil {
			t.Fatalf("response line %q is not valid JSON: %v", line, err)
		}
		responses = append(responses, resp)
	}
	return responses
}

func TestRun_Ping(t *testing.T) {
	responses := runLines(t, `{"id":1,"method":"ping"}`)
	if len(responses) != 1 {
		t.Fatalf("got %d responses, want 1", len(responses))
	}
	if responses[0].ID != 1 {
		t.Errorf("id = %d, want 1", responses[0].ID)
	}
	if responses[0].Result != "pong" {
		t.Errorf("result = %v, want pong", responses[0].Result)
	}
	if responses[0].Error != "" {
		t.Errorf("unexpected error: %s", responses[0].Error)
	}
}

func TestRun_MalformedLineYieldsIDZero(t *testing.T) {
	responses := runLines(t,
		`this is not json`,
		`{"id":7,"method":"ping"}`,
	)
	if len(responses) != 2 {
		t.Fatalf("got %d responses, want 2", len(responses))
	}
	if responses[0].ID != 0 {
		t.Errorf("malformed line response id = %d, want 0", responses[0].ID)
	}
	if responses[0].Error == "" {
		t.Error("malformed line should produce an error response")
	}
	// The loop keeps going after a bad line.
	if responses[1].ID != 7 || responses[1].Result != "pong" {
		t.Errorf("second response = %+v, want id 7 pong", responses[1])
	}
}

func TestRun_UnknownMethod(t *testing.T) {
	responses := runLines(t, `{"id":3,"method":"frobnicate"}`)
	if len(responses) != 1 {
		t.Fatalf("got %d responses, want 1", len(responses))
	}
	if responses[0].ID != 3 {
		t.Errorf("id = %d, want 3", responses[0].ID)
	}
	if !strings.Contains(responses[0].Error, "frobnicate") {
		t.Errorf("error %q should name the unknown method", responses[0].Error)
	}
}

func TestRun_CaptureTreeEmptyHandles(t *testing.T) {
	responses := runLines(t, `{"id":5,"method":"capture_tree","params":{"handles":[]}}`)
	if len(responses) != 1 {
		t.Fatalf("got %d responses, want 1", len(responses))
	}
	if responses[0].Error != "" {
		t.Fatalf("unexpected error: %s", responses[0].Error)
	}
	trees, ok := responses[0].Result.([]interface{})
	if !ok {
		t.Fatalf("result = %T, want JSON array", responses[0].Result)
	}
	if len(trees) != 0 {
		t.Errorf("got %d trees for empty handles, want 0", len(trees))
	}
}

func TestRun_SendInputInvalidEvent(t *testing.T) {
	responses := runLines(t, `{"id":9,"method":"send_input","params":{"events":[{"kind":"warp"}]}}`)
	if len(responses) != 1 {
		t.Fatalf("got %d responses, want 1", len(responses))
	}
	if responses[0].Error == "" {
		t.Error("invalid event kind should produce an error response")
	}
}

func TestRun_OversizedRequestLine(t *testing.T) {
	// Padding well past any fixed line-buffer size; the loop must answer the
	// oversized request and keep serving instead of bailing out.
	pad := strings.Repeat("x", 20*1024*1024)
	responses := runLines(t,
		`{"id":11,"method":"ping","params":{"pad":"`+pad+`"}}`,
		`{"id":12,"method":"ping"}`,
	)
	if len(responses) != 2 {
		t.Fatalf("got %d responses, want 2", len(responses))
	}
	if responses[0].ID != 11 || responses[0].Result != "pong" {
		t.Errorf("oversized request response = %+v, want id 11 pong", responses[0])
	}
	if responses[1].ID != 12 || responses[1].Result != "pong" {
		t.Errorf("follow-up response = %+v, want id 12 pong", responses[1])
	}
}

func TestRun_FinalLineWithoutNewline(t *testing.T) {
	in := strings.NewReader(`{"id":4,"method":"ping"}`)
	var out bytes.Buffer
	if err := Run(in, &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	var resp Response
	if err := jsoniter.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.ID != 4 || resp.Result != "pong" {
		t.Errorf("response = %+v, want id 4 pong", resp)
	}
}

func TestRun_BlankLinesSkipped(t *testing.T) {
	in := strings.NewReader("\n\n" + `{"id":2,"method":"ping"}` + "\n\n")
	var out bytes.Buffer
	if err := Run(in, &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("got %d response lines, want 1", len(lines))
	}
}
