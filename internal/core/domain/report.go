package domain

// CountOptions controls a single counting run.
type CountOptions struct {
	// Store configures the frequency store for the run.
	Store StoreOptions

	// TopK is the maximum number of ranked entries. Defaults to DefaultTopK.
	TopK int
}

// Report is the outcome of a counting run.
type Report struct {
	// Mode is the store variant that produced the counts.
	Mode StoreMode `json:"mode"`

	// Entries holds at most TopK words in ranking order.
	Entries []WordCount `json:"entries"`

	// TotalTokens is the number of tokens read from the input.
	TotalTokens uint64 `json:"total_tokens"`

	// UniqueWords is the number of distinct words in the store.
	UniqueWords int `json:"unique_words"`
}
