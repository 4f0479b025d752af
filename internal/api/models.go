package api

// TitleExpansionResponse is the success body of the title-expansion route.
// Result holds the model's JSON output re-serialized as a string.
type TitleExpansionResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result"`
}

// FailureResponse is the body returned when generation fails.
type FailureResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Message  string `json:"message"`
	TaskType string `json:"taskType"`
}
