package gateway

import (
	"context"

	"github.com/rs/zerolog"

	"quotewiz/internal/llm"
	"quotewiz/internal/quote"
)

// Assistant produces per-step advisory hints. It fails open: every
// error path, including a drained session budget, yields an empty
// response rather than an error.
type Assistant struct {
	client   llm.Client
	throttle *llm.Throttle
	session  *llm.Session
	profile  llm.Profile
	logger   zerolog.Logger
}

// NewAssistant wires an advisory gateway sharing the generator's
// throttle.
func NewAssistant(client llm.Client, throttle *llm.Throttle, session *llm.Session, profile llm.Profile, logger zerolog.Logger) *Assistant {
	return &Assistant{client: client, throttle: throttle, session: session, profile: profile, logger: logger}
}

// Suggest asks the provider for hints on one wizard step.
func (a *Assistant) Suggest(ctx context.Context, req quote.AssistRequest) quote.AssistResponse {
	if !a.session.TryAcquire() {
		a.logger.Debug().Str("step", req.Step).Msg("advisory budget drained, skipping")
		return quote.AssistResponse{}
	}

	if err := a.throttle.Wait(ctx); err != nil {
		return quote.AssistResponse{}
	}

	callCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	output, err := a.client.Complete(callCtx, quote.AssistSystemPrompt, quote.BuildAssistPrompt(req), a.profile)
	if err != nil {
		a.logger.Debug().Err(err).Str("step", req.Step).Msg("advisory call failed, returning empty")
		return quote.AssistResponse{}
	}

	return quote.ParseAssist(output)
}

// AssistantPool serves advisory requests for many concurrent clients,
// scoping the call budget per client key while sharing one throttle.
// The HTTP server uses this; the wizard holds a single Assistant.
type AssistantPool struct {
	client   llm.Client
	throttle *llm.Throttle
	sessions *llm.SessionPool
	profile  llm.Profile
	logger   zerolog.Logger
}

// NewAssistantPool wires a per-client advisory gateway.
func NewAssistantPool(client llm.Client, throttle *llm.Throttle, sessions *llm.SessionPool, profile llm.Profile, logger zerolog.Logger) *AssistantPool {
	return &AssistantPool{client: client, throttle: throttle, sessions: sessions, profile: profile, logger: logger}
}

// Suggest asks for hints on behalf of the client identified by
// sessionKey. Each key draws down its own budget.
func (p *AssistantPool) Suggest(ctx context.Context, sessionKey string, req quote.AssistRequest) quote.AssistResponse {
	a := Assistant{
		client:   p.client,
		throttle: p.throttle,
		session:  p.sessions.Get(sessionKey),
		profile:  p.profile,
		logger:   p.logger,
	}
	return a.Suggest(ctx, req)
}
