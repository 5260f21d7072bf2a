package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jamiepatterson123/leenaai-sub001/vision"
)

// CoachService summarizes today's intake versus targets and asks the chat
// model for practical adjustments.
type CoachService struct {
	llm vision.Completer
}

func NewCoachService(llm vision.Completer) *CoachService {
	return &CoachService{llm: llm}
}

const coachSystemPrompt = "You are a pragmatic nutrition coach. " +
	"Given a user's daily targets and what they ate today, suggest 3-5 short, practical adjustments. " +
	"Return plain bullet points, one per line, no preamble."

func (s *CoachService) GetSuggestions(ctx context.Context, userID uint) ([]string, error) {
	start := dayStartLocal(time.Now())
	entries, err := ListFoodEntries(userID, start, start.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("db error fetching diary: %w", err)
	}
	target, err := GetTargets(userID)
	if err != nil {
		return nil, err
	}

	var sb bytes.Buffer
	sb.WriteString(fmt.Sprintf("Daily targets: %d kcal, %dg protein, %dg carbs, %dg fat\n\n",
		target.Calories, target.Protein, target.Carbs, target.Fat))
	sb.WriteString("Today's meals:\n")
	if len(entries) == 0 {
		sb.WriteString("- (nothing logged yet)\n")
	}
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("- %s: %.0fg, %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat\n",
			e.FoodName, e.WeightG, e.Calories, e.Protein, e.Carbs, e.Fat))
	}

	reply, err := s.llm.Complete(ctx, coachSystemPrompt, []vision.ContentPart{
		vision.TextPart(sb.String()),
	})
	if err != nil {
		return nil, err
	}

	var recs []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-•* \t")
		if line != "" {
			recs = append(recs, line)
		}
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("empty suggestions from model")
	}
	return recs, nil
}
