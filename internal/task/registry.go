package task

import (
	"fmt"
	"sort"
)

// Registry maps workflow IDs to their generation configuration.
// It is built once at startup and is safe for concurrent reads.
type Registry struct {
	configs map[ID]Config
}

// NewRegistry builds the registry for all supported workflows using the given
// model name. An empty model falls back to DefaultModel.
func NewRegistry(model string) *Registry {
	if model == "" {
		model = DefaultModel
	}

	return &Registry{
		configs: map[ID]Config{
			TitleExpansion: {
				ID:    TitleExpansion,
				Model: model,
				// Low temperature and narrow sampling keep the JSON output deterministic.
				Sampling: Sampling{
					Temperature:     0.25,
					TopK:            15,
					TopP:            0.7,
					MaxOutputTokens: 1024,
				},
				Safety: []SafetyThreshold{
					{Category: HarmCategoryHarassment, Threshold: BlockMediumAndAbove},
					{Category: HarmCategoryHateSpeech, Threshold: BlockMediumAndAbove},
				},
			},
			ArticleGeneration: {
				ID:    ArticleGeneration,
				Model: model,
				// 4096 output tokens fits a ~1200 word article.
				Sampling: Sampling{
					Temperature:     0.7,
					TopK:            40,
					TopP:            0.95,
					MaxOutputTokens: 4096,
				},
				Safety: []SafetyThreshold{
					{Category: HarmCategoryHarassment, Threshold: BlockMediumAndAbove},
					{Category: HarmCategoryHateSpeech, Threshold: BlockMediumAndAbove},
					{Category: HarmCategorySexuallyExplicit, Threshold: BlockMediumAndAbove},
					{Category: HarmCategoryDangerousContent, Threshold: BlockMediumAndAbove},
				},
			},
		},
	}
}

// ConfigFor returns the configuration for id, or ErrUnknownTask.
// The returned Config shares no mutable state with the registry.
func (r *Registry) ConfigFor(id ID) (Config, error) {
	cfg, ok := r.configs[id]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownTask, id)
	}

	cfg.Safety = append([]SafetyThreshold(nil), cfg.Safety...)
	return cfg, nil
}

// IDs returns the registered workflow IDs in lexical order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.configs))
	for id := range r.configs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
