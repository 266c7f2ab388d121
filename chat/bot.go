package chat

import "context"

// DefaultReply is what the built-in responder answers to every message.
const DefaultReply = "N/D"

// Responder produces the reply to a submitted message.
type Responder interface {
	Respond(ctx context.Context, text string) (string, error)
}

// Static always answers with Reply (DefaultReply when empty).
type Static struct {
	Reply string
}

func (s Static) Respond(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.Reply == "" {
		return DefaultReply, nil
	}
	return s.Reply, nil
}

// ResponderFunc adapts a function to Responder.
type ResponderFunc func(ctx context.Context, text string) (string, error)

func (f ResponderFunc) Respond(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}
