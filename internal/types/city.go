package types

// City matches one entry of the backend's /cities payload.
type City struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	ImagePath   string `json:"image_path,omitempty"`
}

// HealthStatus matches the /health payload. LLM and Maps report whether the
// backend has those integrations configured.
type HealthStatus struct {
	OK   bool `json:"ok"`
	LLM  bool `json:"llm"`
	Maps bool `json:"maps"`
}
