package constant

import "time"

const (
	ChatMessageTypeUser   = "user"
	ChatMessageTypeBot    = "bot"
	ChatMessageTypeSystem = "system"

	// Titles assigned when a session is created without a first message.
	NewSessionTitle      = "New Chat"
	DocumentSessionTitle = "Document Chat"

	// A session title is derived from the first 80 characters of the first
	// message; longer messages are cut at 77 and marked with an ellipsis.
	SessionTitleMaxLen = 80
	SessionTitleCutLen = 77

	// Extracted document text is capped before entering the context cache.
	MaxDocumentContextChars = 10000
	TruncationMarker        = "...[truncated]"

	// Upload responses carry a bounded preview of the extracted text.
	DocumentPreviewMaxLen = 200

	SessionTokenTTL = 30 * 24 * time.Hour

	// Fallback bot replies. The conversation is persisted either way, so a
	// model outage degrades UX without corrupting the message log.
	DegradedResponse     = "Sorry, I couldn't generate a response. Please try again later."
	EmptyCompletionReply = "Sorry, I couldn't generate a response."
	DocumentPromptPrefix = "Use the following document content to answer.\n\nDocument:\n"
	DocumentPromptInfix  = "\n\nUser question:\n"
)
