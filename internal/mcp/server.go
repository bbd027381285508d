package mcp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Invictus", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Invictus gym server. Browse training programs, print program sheets and read strength progress. All data is scoped to the authenticated gym user."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListPrograms, Handler: h.listPrograms},
		server.ServerTool{Tool: toolGetProgram, Handler: h.getProgram},
		server.ServerTool{Tool: toolGetProgramSheet, Handler: h.getProgramSheet},
		server.ServerTool{Tool: toolGetProgress, Handler: h.getProgress},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resPrograms, Handler: h.programsResource},
		server.ServerResource{Resource: resProgressExercises, Handler: h.progressExercisesResource},
	)

	return s
}

// HTTPHandler serves s over streamable HTTP. The actor that the HTTP
// middleware resolved is carried into every tool call.
func HTTPHandler(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s,
		server.WithStateLess(true),
		server.WithHTTPContextFunc(func(ctx context.Context, r *http.Request) context.Context {
			if a, ok := models.ActorFromContext(r.Context()); ok {
				return models.WithActor(ctx, a)
			}
			return ctx
		}),
	)
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resPrograms = mcp.NewResource(
	"invictus://programs",
	"Programs",
	mcp.WithResourceDescription("Training programs visible to the user, with author and member names"),
	mcp.WithMIMEType("application/json"),
)

var resProgressExercises = mcp.NewResource(
	"invictus://progress/exercises",
	"Tracked Exercises",
	mcp.WithResourceDescription("Exercises the user has logged at least one set for"),
	mcp.WithMIMEType("application/json"),
)
