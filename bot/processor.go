package main

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Processor turns the latest user utterance into routing fields on the
// conversation state. It appends no messages itself.
type Processor struct {
	llm *LLMService
}

func NewProcessor(llm *LLMService) *Processor {
	return &Processor{llm: llm}
}

// Process runs intent classification and entity extraction concurrently,
// joins on both, and merges the results into the state. Each branch writes
// to its own result slot and degrades to a safe default on its own; a
// failure in one branch never aborts the other. Any recorded failure is
// converted into a general_inquiry state rather than ending the turn.
func (p *Processor) Process(ctx context.Context, state *ConversationState) {
	input, ok := state.LastUserMessage()
	if !ok {
		state.MessageType = TypeGeneralInquiry
		state.Content = &MessageContent{Entities: map[string]Item{}}
		state.Err = errors.New("no user message in conversation")
		return
	}

	var (
		intent    IntentResult
		entities  EntityResult
		intentErr error
		entityErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		intent, intentErr = p.llm.ClassifyIntent(gctx, input)
		return nil
	})
	g.Go(func() error {
		entities, entityErr = p.llm.ExtractEntities(gctx, input)
		return nil
	})

	if err := g.Wait(); err != nil {
		// Both branches swallow their own failures, so this only fires on
		// context cancellation between the calls.
		slog.Error("message processing failed", "err", err)
		state.MessageType = TypeGeneralInquiry
		state.Content = &MessageContent{
			Input:          input,
			CorrectedInput: input,
			Entities:       map[string]Item{},
		}
		state.Err = err
		return
	}

	content := &MessageContent{
		Input:              input,
		CorrectedInput:     intent.CorrectedInput,
		Entities:           map[string]Item{},
		MatchedDishes:      entities.Dishes,
		MatchedRestaurants: entities.Restaurants,
	}

	// Only the first extracted restaurant and dish are retained; empty
	// extraction results mean "none mentioned", not an error.
	if len(entities.Restaurants) > 0 {
		content.RestaurantName = entities.Restaurants[0]
	}
	if len(entities.Dishes) > 0 {
		qty := 1
		if entities.Qty != nil && *entities.Qty >= 1 {
			qty = *entities.Qty
		}
		content.Entities["item1"] = Item{
			Dish:    entities.Dishes[0],
			Variant: entities.Variant,
			Size:    entities.Size,
			Qty:     qty,
		}
	}

	state.Content = content
	state.MessageType = routingCategory(intent.Category)
	state.Fallback = intent.Fallback
	state.AwaitingSelection = false
	state.Err = errors.Join(intentErr, entityErr)
}

// routingCategory collapses transient or missing classifier output onto
// the closed routing set.
func routingCategory(category MessageType) MessageType {
	if category == "" {
		return TypeGeneralInquiry
	}

	return category
}
