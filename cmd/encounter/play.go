package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/riftline/encounter-engine/internal/clients/llm"
	"github.com/riftline/encounter-engine/internal/clients/transcript"
	"github.com/riftline/encounter-engine/internal/config"
	"github.com/riftline/encounter-engine/internal/errors"
	"github.com/riftline/encounter-engine/internal/orchestrators/encounter"
	"github.com/riftline/encounter-engine/internal/pkg/idgen"
	"github.com/riftline/encounter-engine/internal/profile"
	"github.com/riftline/encounter-engine/internal/redis"
	encounterrepo "github.com/riftline/encounter-engine/internal/repositories/encounter"
)

var (
	sessionKey string
	styleNotes string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run an interactive encounter session",
	Long:  `Play opens an encounter for a session key and drives it from stdin: plain lines are player actions, /commands steer the lifecycle.`,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&sessionKey, "session", "local", "session key the encounter is stored under")
	playCmd.Flags().StringVar(&styleNotes, "style", "", "narrative style notes passed to the model")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	redisClient, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}()

	repo, err := encounterrepo.NewRedis(&encounterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}

	generator, err := llm.NewGemini(ctx, &llm.GeminiConfig{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	})
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer generator.Close()

	profiles, err := loadProfiles(cfg)
	if err != nil {
		return err
	}

	orch, err := encounter.New(&encounter.Config{
		Repo:       repo,
		Generator:  generator,
		Transcript: transcript.NewWriter(os.Stdout),
		Profiles:   profiles,
		IDGen:      idgen.NewUUID("enc"),
		Narrator:   cfg.NarratorName,
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	opened, err := orch.Open(ctx, &encounter.OpenInput{SessionKey: sessionKey})
	if err != nil {
		return err
	}

	if opened.HasSnapshot {
		fmt.Println("A saved encounter exists. /continue resumes it, /begin <context> starts over.")
	} else {
		fmt.Println("No saved encounter. /begin <context> starts one.")
	}

	if styleNotes != "" {
		if _, err := orch.Configure(ctx, &encounter.ConfigureInput{StyleNotes: styleNotes}); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		done, err := dispatch(ctx, orch, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			if errors.IsRetryable(err) {
				fmt.Println("/retry replays the failed request.")
			}
			continue
		}
		if done {
			break
		}
	}

	_, err = orch.Close(ctx, &encounter.CloseInput{})
	return err
}

func dispatch(ctx context.Context, orch *encounter.Orchestrator, line string) (bool, error) {
	command, rest, _ := strings.Cut(line, " ")
	if !strings.HasPrefix(command, "/") {
		out, err := orch.SubmitAction(ctx, &encounter.SubmitActionInput{Action: line})
		if err != nil {
			return false, err
		}
		fmt.Println(out.Narrative)
		if out.Ended {
			fmt.Printf("The encounter is over: %s. /end writes the summary.\n", out.Result)
		}
		return false, nil
	}

	switch command {
	case "/begin":
		if _, err := orch.NewEncounter(ctx, &encounter.NewEncounterInput{}); err != nil {
			return false, err
		}
		out, err := orch.Initialize(ctx, &encounter.InitializeInput{Context: rest})
		if err != nil {
			return false, err
		}
		fmt.Printf("Encounter ready: %d party, %d enemies.\n", len(out.Stats.Party), len(out.Stats.Enemies))
		if out.Stats.Environment != "" {
			fmt.Println(out.Stats.Environment)
		}
		return false, nil
	case "/continue":
		out, err := orch.Continue(ctx, &encounter.ContinueInput{})
		if err != nil {
			return false, err
		}
		fmt.Printf("Resumed after %d rounds.\n", len(out.Encounter.EncounterLog))
		return false, nil
	case "/retry":
		out, err := orch.Retry(ctx, &encounter.RetryInput{})
		if err != nil {
			return false, err
		}
		if out.Action != nil {
			fmt.Println(out.Action.Narrative)
		} else {
			fmt.Println("Encounter ready.")
		}
		return false, nil
	case "/end":
		// The summary itself arrives through the transcript writer.
		if _, err := orch.Conclude(ctx, &encounter.ConcludeInput{}); err != nil {
			return false, err
		}
		return true, nil
	case "/stats":
		printStats(ctx, orch)
		return false, nil
	case "/quit":
		return true, nil
	default:
		fmt.Println("Commands: /begin <context>, /continue, /retry, /end, /stats, /quit. Anything else is an action.")
		return false, nil
	}
}

func printStats(ctx context.Context, orch *encounter.Orchestrator) {
	snap, err := orch.Snapshot(ctx, &encounter.SnapshotInput{})
	if err != nil || snap.Encounter == nil {
		fmt.Println("No encounter in progress.")
		return
	}

	stats := snap.Encounter.CombatStats
	fmt.Printf("[%s]\n", snap.State)
	for _, e := range stats.Party {
		marker := " "
		if e.IsPlayer {
			marker = "*"
		}
		fmt.Printf("%s %s %d/%d\n", marker, e.Name, e.HP, e.MaxHP)
	}
	for _, e := range stats.Enemies {
		fmt.Printf("  %s %d/%d (enemy)\n", e.Name, e.HP, e.MaxHP)
	}
	for _, e := range snap.Encounter.PendingEnemies {
		fmt.Printf("  %s (pending enemy)\n", e.Name)
	}
	for _, e := range snap.Encounter.PendingParty {
		fmt.Printf("  %s (pending ally)\n", e.Name)
	}
}

func loadProfiles(cfg *config.Config) (profile.Provider, error) {
	if cfg.ProfilePath == "" {
		return profile.NewStatic(profile.Combat), nil
	}
	return profile.LoadFile(cfg.ProfilePath)
}
