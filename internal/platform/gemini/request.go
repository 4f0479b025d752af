package gemini

import (
	"github.com/phrazzld/seogen-api/internal/task"
	"google.golang.org/genai"
)

// generateConfig converts a task configuration into Gemini request settings.
// Safety thresholds keep the order of cfg.Safety.
func generateConfig(cfg task.Config) *genai.GenerateContentConfig {
	safety := make([]*genai.SafetySetting, 0, len(cfg.Safety))
	for _, s := range cfg.Safety {
		safety = append(safety, &genai.SafetySetting{
			Category:  genai.HarmCategory(s.Category),
			Threshold: genai.HarmBlockThreshold(s.Threshold),
		})
	}

	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(cfg.Sampling.Temperature),
		TopK:            genai.Ptr(cfg.Sampling.TopK),
		TopP:            genai.Ptr(cfg.Sampling.TopP),
		MaxOutputTokens: cfg.Sampling.MaxOutputTokens,
		SafetySettings:  safety,
	}
}
