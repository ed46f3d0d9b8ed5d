package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/audiohw/audiotree/internal/hal"
	"github.com/audiohw/audiotree/internal/walker"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// mcpServer wraps the MCP server with the audio service and report cache.
type mcpServer struct {
	svc   hal.Service
	cache *mcpReportCache
	svcMu sync.Mutex
	mcp   *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all audiotree tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	svc, err := hal.NewService()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{
		svc:   svc,
		cache: newMCPReportCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer(
		"audiotree",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
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
	// traverse
	s.mcp.AddTool(
		mcp.NewTool("traverse",
			mcp.WithDescription("Walk the audio object graph from the system object and return it as an indented text tree. Each object shows its class and readable properties."),
			mcp.WithBoolean("boxes", mcp.Description("Include boxes")),
			mcp.WithBoolean("clocks", mcp.Description("Include clock devices")),
			mcp.WithBoolean("streams", mcp.Description("Include streams")),
			mcp.WithBoolean("formats", mcp.Description("Include available stream formats (verbose)")),
			mcp.WithBoolean("channels", mcp.Description("Include preferred channel layouts (verbose)")),
			mcp.WithBoolean("controls", mcp.Description("Include controls (verbose)")),
			mcp.WithBoolean("plugins", mcp.Description("Include plugins")),
			mcp.WithBoolean("processes", mcp.Description("Include processes")),
			mcp.WithBoolean("all", mcp.Description("Include everything (overrides the other include flags)")),
			mcp.WithBoolean("debug", mcp.Description("Show an error line for every property read that failed")),
		),
		s.handleTraverse,
	)

	// devices
	s.mcp.AddTool(
		mcp.NewTool("devices",
			mcp.WithDescription("List audio devices with name, UID, transport type, stream counts per direction and default markers."),
			mcp.WithBoolean("inputs", mcp.Description("Only list devices with input streams")),
			mcp.WithBoolean("outputs", mcp.Description("Only list devices with output streams")),
		),
		s.handleDevices,
	)
}

func (s *mcpServer) handleTraverse(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	var opts walker.Options
	toggles := []struct {
		name string
		flag walker.Options
	}{
		{"boxes", walker.IncludeBoxes},
		{"clocks", walker.IncludeClocks},
		{"streams", walker.IncludeStreams},
		{"formats", walker.IncludeFormats},
		{"channels", walker.IncludeChannels},
		{"controls", walker.IncludeControls},
		{"plugins", walker.IncludePlugins},
		{"processes", walker.IncludeProcesses},
	}
	for _, t := range toggles {
		if boolParam(params, t.name, false) {
			opts = opts.With(t.flag)
		}
	}
	if boolParam(params, "all", false) {
		opts = opts.With(walker.All()).Without(walker.Debug)
	}
	if boolParam(params, "debug", false) {
		opts = opts.With(walker.Debug)
	}

	text, err := s.cache.report(opts, func() (string, error) {
		s.svcMu.Lock()
		defer s.svcMu.Unlock()
		return traverseReport(s.svc, opts)
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *mcpServer) handleDevices(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	inputsOnly := boolParam(params, "inputs", false)
	outputsOnly := boolParam(params, "outputs", false)

	s.svcMu.Lock()
	defer s.svcMu.Unlock()

	devs, st := hal.GetListProperty[hal.ObjectID](s.svc, hal.SystemObject, hal.SelHWDevices)
	if !st.OK() {
		return mcp.NewToolResultError(fmt.Sprintf("enumerate devices: status %s", st)), nil
	}
	defaultIn, _ := hal.GetProperty[hal.ObjectID](s.svc, hal.SystemObject, hal.SelHWDefaultInputDevice)
	defaultOut, _ := hal.GetProperty[hal.ObjectID](s.svc, hal.SystemObject, hal.SelHWDefaultOutputDevice)

	var b strings.Builder
	fmt.Fprintf(&b, "Enumerated %d devices:\n", len(devs))
	for _, dev := range devs {
		row := describeDevice(s.svc, dev, defaultIn, defaultOut)
		if inputsOnly && row.inStreams == 0 {
			continue
		}
		if outputsOnly && row.outStreams == 0 {
			continue
		}
		fmt.Fprintln(&b, row.String())
	}
	return mcp.NewToolResultText(b.String()), nil
}
