package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/uiasnap/uiasnap/internal/input"
	"github.com/uiasnap/uiasnap/internal/platform"
	"github.com/uiasnap/uiasnap/internal/sysinfo"
	"github.com/uiasnap/uiasnap/internal/uia"
	"github.com/uiasnap/uiasnap/internal/version"
)

// mcpServer wraps the MCP server with the platform provider.
type mcpServer struct {
	provider *platform.Provider
	// inputMu serializes synthetic input so concurrent tool calls cannot
	// interleave keystrokes.
	inputMu sync.Mutex
	mcp     *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all uiasnap tools.
func newMCPServer() *mcpServer {
	s := &mcpServer{
		provider: platform.NewProvider(),
	}

	s.mcp = mcpserver.NewMCPServer(
		"uiasnap",
		version.Version,
	)

	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// list
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List visible top-level windows with their handles"),
			mcp.WithString("app", mcp.Description("Filter by application name")),
			mcp.WithNumber("pid", mcp.Description("Filter by process ID")),
		),
		s.handleList,
	)

	// capture_tree
	s.mcp.AddTool(
		mcp.NewTool("capture_tree",
			mcp.WithDescription("Capture a point-in-time accessibility tree snapshot for one or more window handles. Returns nested nodes with name, control type, bounds, and state flags."),
			mcp.WithArray("handles", mcp.Description("Window handles (HWND values) to capture")),
			mcp.WithString("app", mcp.Description("Capture all windows of this application instead of explicit handles")),
			mcp.WithNumber("pid", mcp.Description("Capture all windows of this process instead of explicit handles")),
			mcp.WithNumber("max_depth", mcp.Description("Max tree depth to capture (default: 50)")),
		),
		s.handleCaptureTree,
	)

	// system_info
	s.mcp.AddTool(
		mcp.NewTool("system_info",
			mcp.WithDescription("Get host, CPU, memory, and disk information"),
		),
		s.handleSystemInfo,
	)

	// type
	s.mcp.AddTool(
		mcp.NewTool("type",
			mcp.WithDescription("Type literal text into the focused element"),
			mcp.WithString("text", mcp.Description("Text to type"), mcp.Required()),
		),
		s.handleType,
	)

	// key
	s.mcp.AddTool(
		mcp.NewTool("key",
			mcp.WithDescription("Press a key or '+'-joined combination, e.g. 'enter' or 'ctrl+shift+s'"),
			mcp.WithString("combo", mcp.Description("Key combo, modifiers first"), mcp.Required()),
		),
		s.handleKey,
	)

	// click
	s.mcp.AddTool(
		mcp.NewTool("click",
			mcp.WithDescription("Move the mouse to screen coordinates and click"),
			mcp.WithNumber("x", mcp.Description("X coordinate")),
			mcp.WithNumber("y", mcp.Description("Y coordinate")),
			mcp.WithString("button", mcp.Description("Mouse button: left, right, center")),
			mcp.WithBoolean("double", mcp.Description("Double-click")),
		),
		s.handleClick,
	)
}

// resultToText serializes v to YAML for an MCP text response.
func resultToText(v interface{}) (*mcp.CallToolResult, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	appName := stringParam(params, "app", "")
	pid := intParam(params, "pid", 0)

	if s.provider.Lister == nil {
		return mcp.NewToolResultError(platform.ErrUnsupported.Error()), nil
	}

	windows, err := s.provider.Lister.ListWindows(platform.ListOptions{App: appName, PID: pid})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultToText(windows)
}

func (s *mcpServer) handleCaptureTree(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	handles := int64SliceParam(params, "handles")
	appName := stringParam(params, "app", "")
	pid := intParam(params, "pid", 0)
	maxDepth := intParam(params, "max_depth", uia.DefaultMaxDepth)

	if len(handles) == 0 && (appName != "" || pid != 0) {
		if s.provider.Lister == nil {
			return mcp.NewToolResultError(platform.ErrUnsupported.Error()), nil
		}
		windows, err := s.provider.Lister.ListWindows(platform.ListOptions{App: appName, PID: pid})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		for _, w := range windows {
			handles = append(handles, w.Handle)
		}
	}

	trees := uia.CaptureTree(handles, maxDepth)
	return resultToText(trees)
}

func (s *mcpServer) handleSystemInfo(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := sysinfo.Collect()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultToText(snap)
}

func (s *mcpServer) handleType(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := stringParam(params, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}
	return s.sendEvents([]input.Event{{Kind: input.KindText, Text: text}})
}

func (s *mcpServer) handleKey(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	combo := stringParam(params, "combo", "")
	if combo == "" {
		return mcp.NewToolResultError("combo is required"), nil
	}
	event, err := keyEvent(combo)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.sendEvents([]input.Event{event})
}

func (s *mcpServer) handleClick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	x := intParam(params, "x", 0)
	y := intParam(params, "y", 0)
	button := stringParam(params, "button", "left")
	double := boolParam(params, "double", false)

	events := []input.Event{
		{Kind: input.KindMove, X: x, Y: y},
		{Kind: input.KindClick, Button: button, Double: double},
	}
	return s.sendEvents(events)
}

func (s *mcpServer) sendEvents(events []input.Event) (*mcp.CallToolResult, error) {
	s.inputMu.Lock()
	defer s.inputMu.Unlock()

	applied, err := input.Send(events)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultToText(map[string]int{"applied": applied})
}
