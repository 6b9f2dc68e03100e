package deepseek

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default DeepSeek model
	DefaultModel = "deepseek-chat"
)
