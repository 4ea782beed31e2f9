package huggingface

import "time"

const (
	// DefaultAPIURL is the default Hugging Face Inference API endpoint
	DefaultAPIURL = "https://api-inference.huggingface.co"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
