// Package server wires the pipeline components and creates the MCP
// server instance.
//
// This is the composition root (DIP): it resolves the run store and
// injects it into the tools that depend on the abstraction. No
// business logic lives here, only wiring.
package server

import (
	"fmt"
	"log"

	"github.com/archforge/archforge/internal/config"
	"github.com/archforge/archforge/internal/runstore"
	"github.com/archforge/archforge/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools
// registered. This is the single place where dependencies are
// resolved.
//
// The returned cleanup function closes the run store and must be
// called on shutdown (typically via defer). It is always non-nil and
// safe to call even when store init fell back to memory.
func New() (*server.MCPServer, func(), error) {
	cfg, err := config.Resolve()
	if err != nil {
		return nil, noop, fmt.Errorf("resolving configuration: %w", err)
	}

	store, cleanup := openStore(cfg)

	s := server.NewMCPServer(
		"archforge",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	generateTool := tools.NewGenerateTool(store)
	s.AddTool(generateTool.Definition(), generateTool.Handle)

	resumeTool := tools.NewResumeTool(store)
	s.AddTool(resumeTool.Definition(), resumeTool.Handle)

	statusTool := tools.NewStatusTool(store)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	templateTool := tools.NewTemplateTool()
	s.AddTool(templateTool.Definition(), templateTool.Handle)

	return s, cleanup, nil
}

// openStore resolves run persistence. A broken data directory
// degrades to the in-memory store with a warning instead of refusing
// to start: the pipeline itself is stateless, only halt/resume across
// restarts is lost.
func openStore(cfg config.Config) (runstore.Store, func()) {
	if cfg.Ephemeral {
		return runstore.NewMemoryStore(), noop
	}

	store, err := runstore.Open(cfg.DataDir)
	if err != nil {
		log.Printf("WARNING: run persistence disabled: %v", err)
		return runstore.NewMemoryStore(), noop
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Printf("WARNING: run store close: %v", err)
		}
	}
	return store, cleanup
}

// noop is the default cleanup when no database is open.
func noop() {}

func serverInstructions() string {
	return `You have access to ArchForge, an architecture decision MCP server.

## WHEN TO USE ArchForge

Suggest ArchForge when the user:
- Is starting a new system and asking what architecture to pick
- Debates monolith vs. microservices, datastore choices, or API style
- Has a requirements document and wants a deterministic, auditable recommendation

## WORKFLOW

1. Call intake_template to get a complete example intake document.
2. Fill in the intake from the user's answers. Every enum value in the
   template is a valid choice; do not invent values.
3. Call blueprint_generate with the intake JSON.
4. If the run returns state COMPLETE, present the blueprint: archetype,
   pattern, recommended stack, conflicts, and quality gate result.
5. If state is HALTED_CLARIFICATION, relay the questions to the user,
   collect answers, and call blueprint_resume with the run_id and an
   answers object. The resumed run always completes.
6. If state is HALTED_READINESS, the intake has hard gaps: fix the
   listed fields and resume with a corrected intake.

## IMPORTANT

- The pipeline is deterministic: the same intake always yields the same
  blueprint. Do not re-run hoping for a different answer.
- Do not answer clarification questions yourself; they exist because
  the intake was ambiguous and only the user can resolve them.
- Use blueprint_status to list past runs or re-fetch a blueprint.`
}
