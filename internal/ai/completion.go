package ai

import "context"

// TextCompleter sends a system instruction and a user prompt to a
// generative-language model.
type TextCompleter interface {
	Complete(ctx context.Context, prompt, systemInstruction string) Completion
}

// CompletionStatus tags the outcome of a text completion.
type CompletionStatus int

const (
	StatusOK CompletionStatus = iota
	StatusNotConfigured
	StatusRateLimited
	StatusUnavailable
	StatusEmpty
)

func (s CompletionStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotConfigured:
		return "not_configured"
	case StatusRateLimited:
		return "rate_limited"
	case StatusUnavailable:
		return "unavailable"
	case StatusEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Fixed messages shown to learners when a completion fails.
const (
	MsgNotConfigured = "回饋失敗：AI 服務未配置 (API Key 缺失)。"
	MsgEmpty         = "回饋失敗：內容生成空值。"
	MsgUnavailable   = "回饋失敗：AI 老師連線異常，請稍後再試。"
)

// Completion is the result of TextCompleter.Complete. Text is set only
// when Status is StatusOK; Err carries the last upstream error, if any.
type Completion struct {
	Status   CompletionStatus
	Text     string
	Attempts int
	Err      error
}

func (c Completion) OK() bool {
	return c.Status == StatusOK
}

// Message returns the generated text, or the fixed failure message for
// the outcome. Rate limiting and transport failures share the
// connectivity message.
func (c Completion) Message() string {
	switch c.Status {
	case StatusOK:
		return c.Text
	case StatusNotConfigured:
		return MsgNotConfigured
	case StatusEmpty:
		return MsgEmpty
	default:
		return MsgUnavailable
	}
}
