package service

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pageza/fridgechef/internal/logging"
	"github.com/pageza/fridgechef/internal/types"
)

// FridgeResult is a scanned photo with the recipes it suggests
type FridgeResult struct {
	Scan        types.FridgeScan
	Suggestions []types.Recipe
}

// FridgeService turns a fridge photo into recipe suggestions
type FridgeService struct {
	api    FridgeAPI
	logger *zap.Logger
}

func NewFridgeService(api FridgeAPI, logger *zap.Logger) *FridgeService {
	return &FridgeService{api: api, logger: logging.OrNop(logger)}
}

// Scan uploads the photo and searches by the detected ingredients
func (s *FridgeService) Scan(ctx context.Context, cred types.Credential, filename string, image io.Reader) (*FridgeResult, error) {
	scan, err := s.api.UploadFridgeImage(ctx, cred, filename, image)
	if err != nil {
		return nil, fmt.Errorf("failed to upload fridge image: %w", err)
	}

	result := &FridgeResult{Scan: *scan}
	if len(scan.Ingredients) == 0 {
		return result, nil
	}

	result.Suggestions, err = s.api.SearchByIngredients(ctx, cred, scan.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("failed to search detected ingredients: %w", err)
	}
	s.logger.Info("fridge scanned",
		zap.Strings("ingredients", scan.Ingredients),
		zap.Int("suggestions", len(result.Suggestions)))
	return result, nil
}
