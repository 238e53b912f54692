package client

import (
	"context"

	"github.com/trendlens/runway-color/pkg/types"
)

// VisionClient is implemented by vision-model backends that can label
// garment images.
type VisionClient interface {
	SimpleQuery(ctx context.Context, model, prompt, imgB64 string) (string, error)
	LabelImage(ctx context.Context, model, prompt, imgB64 string) (*types.LabelResult, error)
}
