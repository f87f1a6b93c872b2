package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vertex-lab/follows-webhook/pkg/models"
	"github.com/vertex-lab/follows-webhook/pkg/solver"
	"github.com/vertex-lab/follows-webhook/pkg/store/redistore"
	"github.com/vertex-lab/follows-webhook/pkg/utils/logger"
	"github.com/vertex-lab/follows-webhook/pkg/utils/redisutils"
	"github.com/vertex-lab/follows-webhook/pkg/webhook"
)

func main() {
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load the config: %v\n", err)
		os.Exit(1)
	}

	if err := config.Validate(); err != nil {
		config.CloseLogs()
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	PrintTitle(config.Log)
	if config.Debug {
		config.Print()
	}

	ctx, cancel := context.WithCancel(context.Background())
	go handleSignals(cancel, config.Log)

	store := SetupStore(ctx, config)
	_, err = run(ctx, config, store)
	cancel()
	config.CloseLogs()

	if err != nil {
		fmt.Fprintf(os.Stderr, "workflow failed: %v\n", err)
		os.Exit(1)
	}
}

/*
run() executes the workflow once:
- registers to the generate-webhook endpoint
- computes the outcome on the returned dataset, with the mode chosen by the registration number
- archives the run in the store, if not nil. Archiving failures are only logged
- submits the outcome to the webhook returned by the registration

It returns the archived run, whose outcome is the one submitted.
*/
func run(ctx context.Context, config *Config, store models.RunStore) (*models.Run, error) {
	log := config.Log
	regNo := config.Registration.RegNo

	odd, err := solver.IsOddRegistration(regNo)
	if err != nil {
		return nil, err
	}

	client, err := webhook.NewClient(config.Client)
	if err != nil {
		return nil, err
	}

	log.Info("registering %s to %s", regNo, config.Client.GenerateURL)
	response, err := client.Register(ctx, config.Registration.Registration())
	if err != nil {
		return nil, err
	}

	log.Info("received %d users, mode %s", len(response.Data.Users), solver.ModeName(odd))
	result, err := solver.Solve(response.Data, odd)
	if err != nil {
		return nil, err
	}
	log.Info("computed outcome: %v", result)

	run := solver.NewRun(regNo, odd, response.Data, result)
	if store != nil {
		if err := store.SaveRun(ctx, run); err != nil {
			log.Warn("failed to archive the run of %s: %v", regNo, err)
		}
	}

	outcome := models.NewOutcome(regNo, result)
	if err := client.Submit(ctx, response.Webhook, response.AccessToken, outcome); err != nil {
		log.Error("failed to submit the outcome after %d HTTP attempts: %v", client.Attempts(), err)
		return run, err
	}

	log.Info("outcome submitted; %d HTTP attempts in total", client.Attempts())
	return run, nil
}

// SetupStore() returns the store runs are archived in, or nil if archiving is disabled or Redis is unreachable.
func SetupStore(ctx context.Context, config *Config) models.RunStore {
	if config.RedisAddress == "" {
		return nil
	}

	cl := redisutils.SetupClient(config.RedisAddress)
	RS, err := redistore.NewRunStore(ctx, cl)
	if err != nil {
		config.Log.Warn("archiving disabled: %v", err)
		return nil
	}
	return RS
}

// handleSignals listens for OS signals and triggers context cancellation.
func handleSignals(cancel context.CancelFunc, log *logger.Aggregate) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	<-signalChan
	log.Warn("signal received. Shutting down...")
	cancel()
}

// PrintTitle() prints a title.
func PrintTitle(l *logger.Aggregate) {
	fmt.Println("---------------------------")
	fmt.Println("Follows webhook is running")
	fmt.Println("---------------------------")

	l.Info("------------------------------------------------------")
	l.Info("Follows webhook is starting up")
}
