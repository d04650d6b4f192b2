package model

// ImportResult is the outcome of one bulk JSON import. Errors hold one
// human-readable message per failed item, in input order, each
// referencing the item's 1-based position.
type ImportResult struct {
	SuccessfulImports int      `json:"successful_imports"`
	FailedImports     int      `json:"failed_imports"`
	Errors            []string `json:"errors,omitempty"`
}
