package usecase

import (
	"nutrition-agent/internal/session"
	"nutrition-agent/pkg/clarifai"
	pkgLog "nutrition-agent/pkg/log"
	"nutrition-agent/pkg/openaichat"
)

type implUseCase struct {
	l          pkgLog.Logger
	llm        openaichat.IOpenAIChat
	recognizer clarifai.IClarifai
	store      *session.Store

	intentModel string
}

// New creates a new nutrition UseCase instance.
func New(
	l pkgLog.Logger,
	llm openaichat.IOpenAIChat,
	recognizer clarifai.IClarifai,
	store *session.Store,
	intentModel string,
) *implUseCase {
	if intentModel == "" {
		intentModel = openaichat.DefaultIntentModel
	}
	return &implUseCase{
		l:           l,
		llm:         llm,
		recognizer:  recognizer,
		store:       store,
		intentModel: intentModel,
	}
}
