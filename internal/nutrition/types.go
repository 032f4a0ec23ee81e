package nutrition

import (
	"strconv"

	"nutrition-agent/internal/model"
)

// Params is the loosely-typed parameter bag an operation is dispatched
// with. Values come from JSON bodies or the intent classifier, so numbers
// may arrive as float64 and arrays as []any; the getters normalize.
type Params map[string]any

// String returns the string value for key, or def when absent or not a string.
func (p Params) String(key, def string) string {
	if v, ok := p[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return def
}

// Int returns the integer value for key, tolerating JSON float64 and
// numeric strings, or def when absent or unparseable.
func (p Params) Int(key string, def int) int {
	v, ok := p[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed
		}
	}
	return def
}

// Strings returns the string-slice value for key, tolerating []any.
func (p Params) Strings(key string) []string {
	v, ok := p[key]
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// OperationResult is an operation's outcome: either a success payload with
// operation-specific keys, or the error variant carrying only "error".
// A failure at any step discards partial work; no result is ever partially
// successful.
type OperationResult map[string]any

// IsError reports whether the result is the error variant.
func (r OperationResult) IsError() bool {
	_, ok := r["error"]
	return ok
}

// ErrorMessage returns the error variant's message, or "".
func (r OperationResult) ErrorMessage() string {
	if msg, ok := r["error"].(string); ok {
		return msg
	}
	return ""
}

// AgentInput is one message to the agent endpoint.
type AgentInput struct {
	Message     string
	Images      []string
	SessionID   string // minted when empty
	UserID      string // optional, enables profile backfill
	AutoExecute bool
}

// AgentOutput is the agent endpoint's composed result.
type AgentOutput struct {
	SessionID   string
	Intent      model.IntentAnalysis
	Result      OperationResult // nil when AutoExecute is off
	Suggestions []string
	Executed    bool
}

// SuggestInput asks for intent analysis without execution.
type SuggestInput struct {
	Message   string
	Images    []string
	SessionID string
}

// SuggestOutput carries the analysis plus a human-readable checklist.
type SuggestOutput struct {
	Intent     model.IntentAnalysis
	Message    string
	CanExecute bool
}

// WorkflowInput names one of the fixed multi-step workflows.
type WorkflowInput struct {
	Workflow    string
	Images      []string
	Preferences Params
}

// WorkflowStep is one executed step of a workflow, in order.
type WorkflowStep struct {
	Step   int             `json:"step"`
	Action string          `json:"action"`
	Result OperationResult `json:"result"`
}

// WorkflowOutput is the ordered step results of one workflow run.
type WorkflowOutput struct {
	Workflow string
	Steps    []WorkflowStep
	Summary  string
}

// ChatInput is one plain-chat message.
type ChatInput struct {
	Message   string
	SessionID string // minted when empty
}

// ChatOutput is the chat reply.
type ChatOutput struct {
	Reply     string
	SessionID string
}

// SaveProfileInput stores a profile wholesale. UserID is minted when empty.
type SaveProfileInput struct {
	UserID  string
	Profile model.UserProfile
}
