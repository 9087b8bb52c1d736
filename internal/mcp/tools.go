package mcp

import "github.com/mark3labs/mcp-go/mcp"

// chatTool defines the chat MCP tool.
var chatTool = mcp.NewTool("chat",
	mcp.WithDescription("Send a message to the support chatbot and get its reply with confidence and source."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("User message, typically Persian"),
	),
)

// searchFAQTool defines the search_faq MCP tool.
var searchFAQTool = mcp.NewTool("search_faq",
	mcp.WithDescription("Find the FAQ answer most similar to a question. Returns the answer and its similarity score, or reports no match."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Question to match against stored FAQ entries"),
	),
)

// listFAQTool defines the list_faq MCP tool.
var listFAQTool = mcp.NewTool("list_faq",
	mcp.WithDescription("List all stored FAQ question/answer pairs."),
)
