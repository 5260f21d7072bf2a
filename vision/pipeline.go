package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// WeightCalibration corrects the model's systematic underestimation of
// portion weights. Applied exactly once, and never to label-sourced items.
const WeightCalibration = 1.1

const visionSystemPrompt = `You are a nutrition assistant that identifies food in photos.
Respond with ONLY a JSON array, no prose and no code fences. Each element is an object:
  {"name": string, "weight_g": number, "nutrition": {"calories": number, "protein": number, "carbs": number, "fat": number}}
Include "nutrition" ONLY when the image shows a printed nutrition label you can read verbatim; omit it for ordinary food photos.
Estimate weight_g in grams for each distinct food. Return [] if no food is visible.`

const textSystemPrompt = `You are a nutrition assistant that identifies food in meal descriptions.
Respond with ONLY a JSON array, no prose and no code fences. Each element is an object:
  {"name": string, "weight_g": number}
Estimate weight_g in grams for each distinct food mentioned. Return [] if no food is described.`

const enrichmentSystemPrompt = `You are a nutrition database. For each food portion listed, return its nutrition.
Respond with ONLY a JSON object of the form:
  {"foods": [{"name": string, "weight_g": number, "nutrition": {"calories": number, "protein": number, "carbs": number, "fat": number}}]}
Use the exact food names you were given. Values are for the stated portion, not per 100g.`

// Nutrition is the macro snapshot for one food item.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// FoodItem is a validated, calibrated, possibly enriched item ready for the
// diary. Nutrition stays nil when the enrichment lookup found no match; such
// items are incomplete, not failed.
type FoodItem struct {
	Name      string     `json:"name"`
	WeightG   float64    `json:"weight_g"`
	Nutrition *Nutrition `json:"nutrition,omitempty"`
	FromLabel bool       `json:"from_label,omitempty"`
}

// Incomplete reports whether the item still lacks nutrition data.
func (f FoodItem) Incomplete() bool { return f.Nutrition == nil }

// rawItem is the unvalidated shape the model produces. WeightG is a pointer
// so a missing field can be told apart from zero.
type rawItem struct {
	Name      string     `json:"name"`
	WeightG   *float64   `json:"weight_g"`
	Nutrition *Nutrition `json:"nutrition"`
}

type enrichmentResponse struct {
	Foods []struct {
		Name      string     `json:"name"`
		WeightG   float64    `json:"weight_g"`
		Nutrition *Nutrition `json:"nutrition"`
	} `json:"foods"`
}

// Pipeline turns a meal photo or description into a normalized food-item
// list: vision call, JSON extraction, validation, weight calibration, one
// batched nutrition-enrichment call, merge. Stateless; a failed run has no
// side effects.
type Pipeline struct {
	llm Completer
}

func NewPipeline(llm Completer) *Pipeline {
	return &Pipeline{llm: llm}
}

// AnalyzeImage accepts a base64 data URI ("data:image/jpeg;base64,...").
func (p *Pipeline) AnalyzeImage(ctx context.Context, dataURI string) ([]FoodItem, error) {
	if !strings.HasPrefix(dataURI, "data:image") {
		return nil, fmt.Errorf("invalid image data URI")
	}
	return p.analyze(ctx, visionSystemPrompt, []ContentPart{
		TextPart("What food is in this image?"),
		ImagePart(dataURI),
	})
}

// AnalyzeImageBytes wraps raw image bytes into a data URI.
func (p *Pipeline) AnalyzeImageBytes(ctx context.Context, data []byte, contentType string) ([]FoodItem, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	uri := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	return p.AnalyzeImage(ctx, uri)
}

// AnalyzeText runs the same pipeline from a typed or transcribed meal
// description instead of a photo.
func (p *Pipeline) AnalyzeText(ctx context.Context, description string) ([]FoodItem, error) {
	return p.analyze(ctx, textSystemPrompt, []ContentPart{TextPart(description)})
}

func (p *Pipeline) analyze(ctx context.Context, system string, parts []ContentPart) ([]FoodItem, error) {
	reply, err := p.llm.Complete(ctx, system, parts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVisionCallFailed, err)
	}

	raw, err := parseVisionReply(reply)
	if err != nil {
		return nil, err
	}

	items, err := validateAndCalibrate(raw)
	if err != nil {
		return nil, err
	}

	if err := p.enrich(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// parseVisionReply extracts and decodes the JSON array from the model's
// reply. "No food detected" is a valid empty array; a reply with no array at
// all is malformed, never silently empty.
func parseVisionReply(reply string) ([]rawItem, error) {
	arr, ok := extractJSONArray(reply)
	if !ok {
		return nil, &MalformedResponseError{Raw: reply}
	}
	var raw []rawItem
	if err := json.Unmarshal([]byte(arr), &raw); err != nil {
		return nil, &MalformedResponseError{Raw: reply}
	}
	return raw, nil
}

// validateAndCalibrate promotes raw items to FoodItems. Validation is
// all-or-nothing: the first bad item rejects the batch with its index.
// Weights of estimate-only items are scaled by WeightCalibration and rounded
// to the nearest gram; label-sourced values pass through untouched.
func validateAndCalibrate(raw []rawItem) ([]FoodItem, error) {
	items := make([]FoodItem, 0, len(raw))
	for i, r := range raw {
		if strings.TrimSpace(r.Name) == "" {
			return nil, &ItemValidationError{Index: i, Reason: "missing name"}
		}
		if r.WeightG == nil {
			return nil, &ItemValidationError{Index: i, Reason: "missing weight_g"}
		}
		if *r.WeightG <= 0 {
			return nil, &ItemValidationError{Index: i, Reason: "weight_g must be positive"}
		}

		item := FoodItem{Name: r.Name, WeightG: *r.WeightG}
		if r.Nutrition != nil {
			// ground truth from a nutrition label: no calibration
			item.Nutrition = r.Nutrition
			item.FromLabel = true
		} else {
			item.WeightG = math.Round(*r.WeightG * WeightCalibration)
		}
		items = append(items, item)
	}
	return items, nil
}

// enrich issues at most one batched nutrition lookup for the items still
// missing nutrition and matches results back by case-insensitive exact name.
// Unmatched items keep Nutrition nil; only the call itself failing aborts.
func (p *Pipeline) enrich(ctx context.Context, items []FoodItem) error {
	var pending []*FoodItem
	for i := range items {
		if items[i].Nutrition == nil {
			pending = append(pending, &items[i])
		}
	}
	if len(pending) == 0 {
		return nil
	}

	descriptors := make([]string, 0, len(pending))
	for _, it := range pending {
		descriptors = append(descriptors, fmt.Sprintf("%.0fg of %s", it.WeightG, it.Name))
	}

	reply, err := p.llm.Complete(ctx, enrichmentSystemPrompt, []ContentPart{
		TextPart(strings.Join(descriptors, "\n")),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEnrichmentCallFailed, err)
	}

	obj, ok := extractJSONObject(reply)
	if !ok {
		return &MalformedResponseError{Raw: reply}
	}
	var out enrichmentResponse
	if err := json.Unmarshal([]byte(obj), &out); err != nil {
		return &MalformedResponseError{Raw: reply}
	}

	byName := make(map[string]*Nutrition, len(out.Foods))
	for _, f := range out.Foods {
		if f.Nutrition != nil {
			byName[strings.ToLower(strings.TrimSpace(f.Name))] = f.Nutrition
		}
	}
	for _, it := range pending {
		if n, ok := byName[strings.ToLower(strings.TrimSpace(it.Name))]; ok {
			it.Nutrition = n
		}
	}
	return nil
}
