package mcp

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ServerInstructions contains the MCP server instructions for clients.
const ServerInstructions = `Interview Engine - Mock Interview Planning Server

This server plans resume-driven interview question sequences and drives
interview sessions through personal, resume-derived, and role-technical
phases.

## Transport

Streamable HTTP transport only. Connect via:
- POST /mcp

## Tools

### start_interview
Plan questions from resume facts and start a session.
Parameters:
- resume: Parsed resume object {name, hobbies, projects, experience, skills}
- role: Optional role id (see list_roles) for a technical question phase

Returns a session id and the first question.

### current_question
Return the question the session is waiting on.
Parameters:
- session_id: Session id from start_interview

### submit_answer
Record the candidate's answer and advance to the next question. Answers
consisting of a skip phrase ("skip", "next question", ...) are recorded
as skips. The response includes follow-up advice when the answer leaves
expected points uncovered.
Parameters:
- session_id: Session id
- answer: The candidate's answer text (empty answers are accepted)

### skip_question
Record the current question as skipped and advance.
Parameters:
- session_id: Session id

### interview_stats
Return interview statistics derived from the conversation history:
total/asked/answered/skipped, per-category breakdown, response and skip
rates. Valid at any point, including mid-interview.
Parameters:
- session_id: Session id

### preview_plan
Plan the full question list for a resume without creating a session.
Parameters:
- resume: Parsed resume object
- role: Optional role id

### list_roles
List the roles with predefined technical question pools.

### export_transcript
Export a session's stats and conversation history as a markdown
transcript. Works mid-interview for abandoned sessions too.
Parameters:
- session_id: Session id

Returns a transcript://[session-id] URI.

### cleanup_transcripts
Remove exported transcripts older than the TTL.
Parameters:
- ttl: Optional duration (e.g., "24h"); server default when omitted

## Resources

- transcript://[session-id]: Read an exported interview transcript

## Environment Variables

- INTERVIEW_PORT: HTTP server port (default: 8080)
- INTERVIEW_TRANSCRIPT_PATH: Transcript directory (default: ./transcripts)
- INTERVIEW_TRANSCRIPT_TTL: Default cleanup TTL (default: 24h)
- INTERVIEW_ROLE_QUESTIONS: Role-technical questions per interview (default: 4)
- INTERVIEW_BANK_PATH: Optional JSON file overriding role question pools
`

// ToolDefinitions contains the MCP tool definitions.
var ToolDefinitions = map[string]*mcp.Tool{
	"start_interview": {
		Name:        "start_interview",
		Description: "Plan interview questions from parsed resume facts and start a session. Returns the session id and the first question.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"resume": map[string]interface{}{
					"type":        "object",
					"description": "Parsed resume facts: {name, hobbies, projects, experience, skills}",
				},
				"role": map[string]interface{}{
					"type":        "string",
					"description": "Optional role id for the technical phase (see list_roles)",
				},
			},
			"required": []string{"resume"},
		},
	},
	"current_question": {
		Name:        "current_question",
		Description: "Return the question the session is currently waiting on.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session id returned by start_interview",
				},
			},
			"required": []string{"session_id"},
		},
	},
	"submit_answer": {
		Name:        "submit_answer",
		Description: "Record the candidate's answer for the current question and advance. Skip phrases are recorded as skips. Returns follow-up advice and the next question or the completion message.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session id returned by start_interview",
				},
				"answer": map[string]interface{}{
					"type":        "string",
					"description": "The candidate's answer text; empty answers are accepted",
				},
			},
			"required": []string{"session_id"},
		},
	},
	"skip_question": {
		Name:        "skip_question",
		Description: "Record the current question as skipped and advance to the next one.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session id returned by start_interview",
				},
			},
			"required": []string{"session_id"},
		},
	},
	"interview_stats": {
		Name:        "interview_stats",
		Description: "Return interview statistics derived from the conversation history. Consistent at any point, including mid-interview.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session id returned by start_interview",
				},
			},
			"required": []string{"session_id"},
		},
	},
	"preview_plan": {
		Name:        "preview_plan",
		Description: "Plan the full ordered question list for a resume without creating a session. Read-only inspection view.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"resume": map[string]interface{}{
					"type":        "object",
					"description": "Parsed resume facts: {name, hobbies, projects, experience, skills}",
				},
				"role": map[string]interface{}{
					"type":        "string",
					"description": "Optional role id for the technical phase",
				},
			},
			"required": []string{"resume"},
		},
	},
	"list_roles": {
		Name:        "list_roles",
		Description: "List the roles with predefined technical question pools, with display names and pool sizes.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
			"required":   []string{},
		},
	},
	"export_transcript": {
		Name:        "export_transcript",
		Description: "Export a session's statistics and conversation history as a markdown transcript. Returns a transcript:// URI.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session id returned by start_interview",
				},
			},
			"required": []string{"session_id"},
		},
	},
	"cleanup_transcripts": {
		Name:        "cleanup_transcripts",
		Description: "Remove exported transcripts older than the specified TTL.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"ttl": map[string]interface{}{
					"type":        "string",
					"description": "Time to live (e.g., '24h'). Uses the server default when omitted.",
				},
			},
			"required": []string{},
		},
	},
}

// ResourceTemplateDefinitions contains the MCP resource template definitions.
var ResourceTemplateDefinitions = []mcp.ResourceTemplate{
	{
		URITemplate: "transcript://{id}",
		Name:        "Interview Transcript",
		Description: "Read an exported interview transcript by session id",
		MIMEType:    "text/markdown",
	},
}
