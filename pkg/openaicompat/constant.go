package openaicompat

import "time"

// Provider presets.
const (
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
	ProviderOpenAI   = "openai"
)

const (
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	DeepSeekModel   = "deepseek-chat"

	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	QwenModel   = "qwen-plus"

	OpenAIBaseURL = "https://api.openai.com/v1"
	OpenAIModel   = "gpt-4o-mini"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	chatCompletionsPath = "/chat/completions"
	responseFormatJSON  = "json_object"
)

type preset struct {
	baseURL string
	model   string
}

var presets = map[string]preset{
	ProviderDeepSeek: {baseURL: DeepSeekBaseURL, model: DeepSeekModel},
	ProviderQwen:     {baseURL: QwenBaseURL, model: QwenModel},
	"alibaba":        {baseURL: QwenBaseURL, model: QwenModel},
	ProviderOpenAI:   {baseURL: OpenAIBaseURL, model: OpenAIModel},
}
