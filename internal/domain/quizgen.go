package domain

import "context"

// QuizGenerator produces the raw model output for a quiz request.
type QuizGenerator interface {
	// GenerateQuizContent sends text to the model provider using apiKey and
	// returns the textual content of the first completion choice.
	GenerateQuizContent(ctx context.Context, apiKey string, text string) (string, error)
}

// CredentialSource resolves the provider credential at request time.
type CredentialSource interface {
	Resolve() (string, bool)
}
