package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	assistantx "github.com/farhanfadillahr/shipping-price-checker/agent/assistant"
	knowledgex "github.com/farhanfadillahr/shipping-price-checker/agent/knowledge"
	"github.com/farhanfadillahr/shipping-price-checker/agent/knowledge/pgstore"
	toolx "github.com/farhanfadillahr/shipping-price-checker/agent/tool"
	configx "github.com/farhanfadillahr/shipping-price-checker/pkg/config"
	_ "github.com/farhanfadillahr/shipping-price-checker/pkg/logger/autoload"
	openrouterx "github.com/farhanfadillahr/shipping-price-checker/pkg/openrouter"
	rajaongkirx "github.com/farhanfadillahr/shipping-price-checker/pkg/rajaongkir"
)

type AppConfig struct {
	MaxIterations int `envconfig:"MAX_ITERATIONS" split_words:"true" default:"5"`
	MaxExchanges  int `envconfig:"MAX_EXCHANGES" split_words:"true" default:"20"`
}

var exitWords = map[string]bool{
	"quit": true,
	"exit": true,
	"bye":  true,
	"q":    true,
}

func main() {
	appCfg := configx.MustNew[AppConfig]("ASSISTANT")
	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")
	rajaOngkirCfg := configx.MustNew[rajaongkirx.Config]("RAJAONGKIR")
	knowledgeCfg := configx.MustNew[knowledgex.Config]("KNOWLEDGE")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	assistant, err := buildAssistant(ctx, appCfg, openRouterCfg, rajaOngkirCfg, knowledgeCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize assistant")
	}

	fmt.Println("Indonesian Shipping Price Checker")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Welcome! I can help you check shipping costs across Indonesia.")
	fmt.Println("Type 'quit', 'exit', or 'bye' to end the conversation.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if exitWords[strings.ToLower(input)] {
			fmt.Println("\nThank you for using the shipping price checker!")
			return
		}

		response := assistant.Chat(ctx, input)
		fmt.Printf("\nAssistant: %s\n\n", response)
		fmt.Println(strings.Repeat("-", 60))
	}

	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("reading input failed")
	}
	fmt.Println("\nGoodbye!")
}

func buildAssistant(
	ctx context.Context,
	appCfg *AppConfig,
	openRouterCfg *openrouterx.Config,
	rajaOngkirCfg *rajaongkirx.Config,
	knowledgeCfg *knowledgex.Config,
) (*assistantx.Assistant, error) {
	chatModel, err := openRouterCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}

	sdkClient := openrouterx.NewClient(*openRouterCfg)
	if sdkClient == nil {
		return nil, fmt.Errorf("create embeddings client: api key missing")
	}
	embedder, err := knowledgex.NewOpenAIEmbedder(sdkClient, knowledgeCfg.EmbedModel)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}

	var store knowledgex.Store
	if knowledgeCfg.PostgresDSN != "" {
		store, err = pgstore.New(ctx, knowledgeCfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("create postgres knowledge store: %w", err)
		}
	} else {
		store, err = knowledgex.NewMemoryStore(knowledgex.WithSnapshotPath(knowledgeCfg.IndexPath))
		if err != nil {
			return nil, fmt.Errorf("create knowledge store: %w", err)
		}
	}

	chunker := knowledgex.NewChunker(knowledgeCfg.ChunkSize, knowledgeCfg.ChunkOverlap)
	kb, err := knowledgex.NewBase(ctx, embedder, store, chunker)
	if err != nil {
		return nil, fmt.Errorf("create knowledge base: %w", err)
	}

	pricing, err := rajaongkirx.NewClient(*rajaOngkirCfg)
	if err != nil {
		return nil, fmt.Errorf("create pricing client: %w", err)
	}

	return assistantx.New(chatModel, kb, toolx.NewExecutor(pricing), toolx.Infos(), assistantx.Config{
		MaxIterations: appCfg.MaxIterations,
		MaxExchanges:  appCfg.MaxExchanges,
	})
}
