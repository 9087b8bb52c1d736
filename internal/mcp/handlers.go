package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/apmshow/apm-chatbot/internal/engine"
)

// handleChat runs a message through the response policy, applying the same
// human-operator override as the HTTP boundary.
func (s *Server) handleChat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}

	reply := s.engine.Respond(message, s.store.Snapshot())
	if s.engine.CheckHumanRequest(message) {
		reply.Reply = s.engine.Handoff()
		reply.Confidence = 1.0
		reply.Source = engine.SourceInstagram
	}

	return mcp.NewToolResultText(formatReply(reply)), nil
}

// handleSearchFAQ runs the similarity matcher without the rest of the
// response policy.
func (s *Server) handleSearchFAQ(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	answer, score := s.engine.FindBestAnswer(query, s.store.Snapshot())
	if answer == "" {
		return mcp.NewToolResultText("No FAQ entry matched the query."), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("score: %.2f\nanswer: %s", score, answer)), nil
}

// handleListFAQ dumps the current FAQ collection.
func (s *Server) handleListFAQ(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := s.store.Snapshot()
	if len(entries) == 0 {
		return mcp.NewToolResultText("The FAQ collection is empty."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d FAQ entries:\n", len(entries))
	for i, entry := range entries {
		fmt.Fprintf(&b, "%d. Q: %s\n   A: %s\n", i+1, entry.Question, entry.Answer)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func formatReply(reply engine.Reply) string {
	return fmt.Sprintf("reply: %s\nconfidence: %.2f\nsource: %s", reply.Reply, reply.Confidence, reply.Source)
}
