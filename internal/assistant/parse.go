package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FoodEstimate is one estimated food item returned by the model.
type FoodEstimate struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	ProteinG int    `json:"protein"`
	CarbsG   int    `json:"carbs"`
	FatG     int    `json:"fat"`
}

// stripJSONFence removes a surrounding ```json ... ``` block; models add
// one even when asked for raw JSON.
func stripJSONFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func decodeEstimate(raw string) (FoodEstimate, error) {
	var est FoodEstimate
	if err := json.Unmarshal([]byte(stripJSONFence(raw)), &est); err != nil {
		return FoodEstimate{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if err := validateEstimate(est); err != nil {
		return FoodEstimate{}, err
	}
	return est, nil
}

func decodeEstimates(raw string) ([]FoodEstimate, error) {
	var estimates []FoodEstimate
	if err := json.Unmarshal([]byte(stripJSONFence(raw)), &estimates); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	for _, est := range estimates {
		if err := validateEstimate(est); err != nil {
			return nil, err
		}
	}
	if estimates == nil {
		estimates = []FoodEstimate{}
	}
	return estimates, nil
}

func validateEstimate(est FoodEstimate) error {
	if strings.TrimSpace(est.Name) == "" {
		return fmt.Errorf("%w: estimate has no name", ErrBadResponse)
	}
	if est.Calories < 0 || est.ProteinG < 0 || est.CarbsG < 0 || est.FatG < 0 {
		return fmt.Errorf("%w: negative nutrition value for %q", ErrBadResponse, est.Name)
	}
	return nil
}
