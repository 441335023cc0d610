// Package main runs the ContratAI terminal assistant: a conversational
// agent that searches open public procurement notices on the PNCP.
package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/contratai/contratai/internal/catalog"
	"github.com/contratai/contratai/internal/config"
	"github.com/contratai/contratai/internal/orchestrator"
	orchadapter "github.com/contratai/contratai/internal/orchestrator/adapter"
	"github.com/contratai/contratai/internal/pncp"
	"github.com/contratai/contratai/internal/prompt"
	"github.com/contratai/contratai/internal/provider/gemini"
	provider "github.com/contratai/contratai/internal/provider/models"
	"github.com/contratai/contratai/internal/ui"
	uiservices "github.com/contratai/contratai/internal/ui/services"
	"github.com/charmbracelet/bubbles/spinner"
	"google.golang.org/genai"
)

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config          *config.Config
	Prompts         *prompt.Repository
	UI              ui.UserInterface
	ProviderFactory func(context.Context) (provider.Provider, error)
}

func createRealUI(cfg *config.Config) ui.UserInterface {
	channels := ui.NewUIChannels()
	renderer := uiservices.NewGlamourRenderer()
	spinnerFactory := func() spinner.Model {
		return spinner.New(spinner.WithSpinner(spinner.Dot))
	}
	return ui.NewUI(channels, renderer, spinnerFactory, cfg.Agent.Model)
}

func createRealProviderFactory(cfg *config.Config) func(context.Context) (provider.Provider, error) {
	return func(ctx context.Context) (provider.Provider, error) {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}

		genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}

		geminiClient := gemini.NewRealGeminiClient(genaiClient)
		return gemini.New(geminiClient, cfg.Agent.Model), nil
	}
}

func createTools(cfg *config.Config, prompts *prompt.Repository) ([]orchadapter.Tool, error) {
	cat, err := catalog.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load reference catalog: %w", err)
	}

	client := pncp.NewClient(
		cfg.PNCP.BaseURL,
		time.Duration(cfg.PNCP.TimeoutSeconds)*time.Second,
		cfg.PNCP.MaxPages,
	)

	return []orchadapter.Tool{
		orchadapter.NewNoticesAdapter(client, prompts.ToolDescription("pncp_description")),
		orchadapter.NewUFAdapter(cat, prompts.ToolDescription("uf_description")),
		orchadapter.NewMunicipioAdapter(cat, prompts.ToolDescription("municipio_description")),
		orchadapter.NewModalidadeAdapter(cat, prompts.ToolDescription("modalidade_description")),
	}, nil
}

func main() {
	// Load configuration (from defaults + ~/.config/contratai/config.json)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	prompts, err := prompt.NewRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load prompts: %v\n", err)
		os.Exit(1)
	}

	deps := Dependencies{
		Config:          cfg,
		Prompts:         prompts,
		UI:              createRealUI(cfg),
		ProviderFactory: createRealProviderFactory(cfg),
	}

	// The UI manages its own lifecycle via Ctrl+C, so background context
	// is enough here.
	runInteractive(context.Background(), deps)
}

func runInteractive(ctx context.Context, deps Dependencies) {
	userInterface := deps.UI

	orchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	var orch *orchestrator.Orchestrator
	orchReady := make(chan struct{})

	// Goroutine #1: Initialize & REPL
	wg.Add(1)
	go func() {
		defer wg.Done()

		<-userInterface.Ready() // Wait for UI to be ready

		userInterface.WriteStatus("thinking", "Inicializando...")

		toolList, err := createTools(deps.Config, deps.Prompts)
		if err != nil {
			userInterface.WriteStatus("error", "Falha na inicialização")
			userInterface.WriteMessage(fmt.Sprintf("Erro ao inicializar ferramentas: %v", err))
			userInterface.WriteMessage("O aplicativo não pode iniciar. Pressione Ctrl+C para sair.")
			return
		}

		p, err := deps.ProviderFactory(orchCtx)
		if err != nil {
			userInterface.WriteStatus("error", "Falha na inicialização")
			userInterface.WriteMessage(fmt.Sprintf("Erro ao inicializar o provedor: %v", err))
			userInterface.WriteMessage("O aplicativo não pode iniciar. Pressione Ctrl+C para sair.")
			return
		}

		registry := orchadapter.NewRegistry(toolList...)
		orch = orchestrator.New(p, registry, userInterface, orchestrator.Options{
			SystemPrompt:      deps.Prompts.SystemPromptWithDate(time.Now()),
			ExhaustionMessage: deps.Prompts.ExhaustionMessage(),
			MaxIterations:     deps.Config.Agent.MaxIterations,
			HistoryLimit:      deps.Config.Agent.HistoryLimit,
			Temperature:       deps.Config.Agent.Temperature,
			MaxTokens:         deps.Config.Agent.MaxTokens,
		})
		close(orchReady)

		userInterface.WriteMessage(deps.Prompts.WelcomeMessage())
		userInterface.WriteStatus("ready", "Pronto")

		// REPL loop
		for {
			select {
			case <-orchCtx.Done():
				return
			default:
				question, err := userInterface.ReadInput(orchCtx, "Digite uma pergunta...")
				if err != nil {
					return // UI closed or context cancelled
				}

				answer, err := orch.Ask(orchCtx, question)
				if err != nil {
					userInterface.WriteMessage(deps.Prompts.ErrorMessage())
				} else {
					userInterface.WriteMessage(answer)
				}

				userInterface.WriteStatus("ready", "Pronto")
			}
		}
	}()

	// Goroutine #2: Command handler
	wg.Add(1)
	go func() {
		defer wg.Done()

		for {
			select {
			case <-orchCtx.Done():
				return
			case cmd := <-userInterface.Commands():
				switch cmd.Type {
				case "clear_history":
					select {
					case <-orchReady:
						orch.ClearHistory()
					case <-orchCtx.Done():
						return
					}
				}
			}
		}
	}()

	// Run UI in main thread (blocks until exit)
	if err := userInterface.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}

	// UI exited, trigger shutdown
	cancel()
	wg.Wait()
}
