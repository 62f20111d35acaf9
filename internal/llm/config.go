package llm

// TaskType labels a call in observer events.
type TaskType string

const (
	TaskChat           TaskType = "chat"
	TaskConnectionTest TaskType = "connection_test"
)

const (
	DefaultEndpoint    = "https://api.openai.com/v1"
	DefaultModel       = "gpt-3.5-turbo"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1500
	DefaultTimeoutMs   = 30000
)

// Config holds everything the chat client needs. It is built once at
// startup and passed by value.
type Config struct {
	APIKey      string
	Endpoint    string
	Model       string
	Temperature float64
	MaxTokens   int
	TimeoutMs   int
	LogCalls    bool
}

// DefaultConfig returns a Config with no API key. Calls fail with
// ErrMissingAPIKey until one is set.
func DefaultConfig() Config {
	return Config{
		Endpoint:    DefaultEndpoint,
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		TimeoutMs:   DefaultTimeoutMs,
	}
}

// Settings are the user-adjustable knobs. Zero fields are ignored by Apply;
// Temperature is a pointer because 0 is a meaningful value.
type Settings struct {
	APIKey      string
	Temperature *float64
	MaxTokens   int
}

// Apply returns a copy of c with every non-zero field of s applied.
func (c Config) Apply(s Settings) Config {
	if s.APIKey != "" {
		c.APIKey = s.APIKey
	}
	if s.Temperature != nil {
		c.Temperature = *s.Temperature
	}
	if s.MaxTokens != 0 {
		c.MaxTokens = s.MaxTokens
	}
	return c
}

// HasAPIKey reports whether remote calls can be attempted.
func (c Config) HasAPIKey() bool {
	return c.APIKey != ""
}
