package qwen

const (
	// DefaultBaseURL is the default Qwen OpenAI-compatible endpoint
	DefaultBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// DefaultModel is the default Qwen model
	DefaultModel = "qwen-plus"
)
