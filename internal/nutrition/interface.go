package nutrition

import (
	"context"

	"nutrition-agent/internal/model"
)

// UseCase is the nutrition domain's public surface: intent-routed agent
// processing, the 8-operation dispatcher, fixed multi-step workflows, plain
// chat, and profile storage.
type UseCase interface {
	// ProcessMessage classifies the message, resolves parameters against
	// the stored profile, optionally dispatches, and logs both turns.
	ProcessMessage(ctx context.Context, input AgentInput) (AgentOutput, error)

	// SuggestOnly runs intent analysis and builds the parameter checklist
	// without dispatching.
	SuggestOnly(ctx context.Context, input SuggestInput) (SuggestOutput, error)

	// RunWorkflow executes one of the fixed multi-step workflows.
	RunWorkflow(ctx context.Context, input WorkflowInput) (WorkflowOutput, error)

	// Chat is the free-form conversation path.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// Dispatch runs one named operation. It never returns a Go error:
	// every failure becomes the error-variant OperationResult.
	Dispatch(ctx context.Context, operation string, params Params) OperationResult

	// Classify maps a message plus optional images onto the operation
	// catalog. Fails open to the chat intent, never errors.
	Classify(ctx context.Context, message string, images []string, history []model.ConversationTurn) model.IntentAnalysis

	// SaveProfile stores a profile wholesale and returns the user id.
	SaveProfile(ctx context.Context, input SaveProfileInput) (string, error)

	// GetProfile returns the stored profile or ErrProfileNotFound.
	GetProfile(ctx context.Context, userID string) (model.UserProfile, error)
}
