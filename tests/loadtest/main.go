package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"mwa/internal/analysis"
	"mwa/internal/models"
	"mwa/internal/providers"
	"mwa/internal/structures"
)

// Synthetic corpus benchmark: generates a plausible multi-year two-party
// message log, writes it to disk as engine input, then runs the full
// analysis and reports per-table sizes and wall time.

const (
	numContacts = 120
	numYears    = 6
	seed        = 1337
)

var sentences = []string{
	"hey are you around later",
	"that was such a good movie we should go again",
	"running a bit late sorry traffic is awful",
	"did you see the game last night unbelievable ending",
	"lunch tomorrow at the usual place",
	"happy birthday hope you have a great day",
	"can you send me that recipe you mentioned",
	"the meeting got moved to thursday afternoon",
	"just landed will call you when i get home",
	"thanks so much for helping with the move",
	"this weather is ridiculous again",
	"let me know when you are free this weekend",
	"i found that book you were looking for",
	"the kids loved the park we should all go",
	"sounds good see you then",
	"no worries it happens",
	"omg you will not believe what happened at work today",
	"congrats on the new job so happy for you",
}

func generate(rng *rand.Rand) []models.Message {
	var messages []models.Message
	id := int64(1)
	base := time.Date(time.Now().Year()-numYears, time.January, 1, 8, 0, 0, 0, time.UTC)

	for c := 0; c < numContacts; c++ {
		key := fmt.Sprintf("+1555%07d", c)
		name := fmt.Sprintf("Contact %d", c)
		// Uneven volume so rankings and streaks have structure.
		perYear := 20 + rng.Intn(2000)/(c+1)
		ts := base.Add(time.Duration(rng.Intn(72)) * time.Hour)

		for y := 0; y < numYears; y++ {
			if rng.Float64() < 0.15 {
				continue // contact inactive this year
			}
			for i := 0; i < perYear; i++ {
				dir := models.DirectionSent
				if rng.Float64() < 0.45+0.1*rng.Float64() {
					dir = models.DirectionReceived
				}
				messages = append(messages, models.Message{
					ID:          id,
					Text:        sentences[rng.Intn(len(sentences))],
					Direction:   dir,
					Timestamp:   ts,
					ContactKey:  key,
					DisplayName: name,
				})
				id++
				// Mix short reply gaps with conversation-breaking silences.
				if rng.Float64() < 0.8 {
					ts = ts.Add(time.Duration(1+rng.Intn(40)) * time.Minute)
				} else {
					ts = ts.Add(time.Duration(5+rng.Intn(48)) * time.Hour)
				}
			}
			ts = time.Date(base.Year()+y+1, time.January, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(c) * time.Hour)
		}
	}
	return messages
}

func main() {
	out := flag.String("out", "", "also write the generated corpus to this JSON file")
	flag.Parse()

	fmt.Println("=== MWA Corpus Benchmark ===")
	rng := rand.New(rand.NewSource(seed))

	genStart := time.Now()
	messages := generate(rng)
	fmt.Printf("Generated %d messages for %d contacts in %s\n", len(messages), numContacts, time.Since(genStart).Round(time.Millisecond))

	if *out != "" {
		data, err := json.Marshal(messages)
		if err != nil {
			fmt.Println("marshal:", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			fmt.Println("write:", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote corpus to %s (%d bytes)\n", *out, len(data))
	}

	col, err := models.NewCollection(messages)
	if err != nil {
		fmt.Println("collection:", err)
		os.Exit(1)
	}

	conf := &structures.Config{}
	conf.Analysis = structures.AnalysisConfig{
		GapHours:                      4,
		Epsilon:                       0.1,
		MinMessagesForBalance:         50,
		MinConversationsForInitiation: 10,
		ReplyCutoff:                   24 * time.Hour,
		RisingFloor:                   20,
		RisingTier:                    10,
		FadedTier:                     10,
		FadedFloor:                    20,
		TopPhrases:                    20,
		PhraseMinMessages:             3,
		PhraseMaxShare:                0.5,
		TopTerms:                      15,
		MaxTopics:                     8,
		TopicMinMessages:              100,
		TopicTopTerms:                 10,
		MinMessagesForSentiment:       50,
		QuestionMinMessages:           50,
		BoilerplatePhrases:            structures.DefaultBoilerplatePhrases,
		BoilerplateWords:              structures.DefaultBoilerplateWords,
	}

	engine := analysis.NewEngine(conf, providers.NewNopLogger(), providers.NewNopMetrics(), providers.NewNopCache())

	runStart := time.Now()
	results, err := engine.Run(context.Background(), col)
	if err != nil {
		fmt.Println("run:", err)
		os.Exit(1)
	}
	elapsed := time.Since(runStart)

	fmt.Printf("\nFull analysis: %s (%.0f msg/s)\n\n", elapsed.Round(time.Millisecond), float64(col.Len())/elapsed.Seconds())
	fmt.Printf("  relationships: %d\n", len(results.Relationships))
	fmt.Printf("  rankings:      %d\n", len(results.Rankings))
	fmt.Printf("  rank shifts:   %d\n", len(results.RankShifts))
	fmt.Printf("  trajectories:  %d\n", len(results.Trajectories))
	fmt.Printf("  streaks:       %d\n", len(results.Streaks))
	fmt.Printf("  volume:        %d\n", len(results.Volume))
	fmt.Printf("  peak hours:    %d\n", len(results.PeakHours))
	fmt.Printf("  questions:     %d\n", len(results.QuestionsByContact))
	fmt.Printf("  phrases:       %d\n", len(results.Phrases))
	fmt.Printf("  terms:         %d\n", len(results.Terms))
	fmt.Printf("  topics:        %d\n", len(results.Topics))
	fmt.Printf("  sentiment:     %d\n", len(results.Sentiment))
	fmt.Printf("  failures:      %d\n", len(results.Failures))
}
