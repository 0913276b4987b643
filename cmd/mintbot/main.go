package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"pdao/config"
	"pdao/inscription/client"
	"pdao/internal/messaging/producer"
	"pdao/processing"
	"pdao/storage/store"
)

const defaultProposalPath = "proposals/mint_001.json"

func main() {
	logger := log.New(os.Stdout, "[MINTBOT] ", log.LstdFlags|log.Lshortfile)
	logger.Println("Starting PennyDAO Mint Bot...")

	godotenv.Load()

	live := flag.Bool("live", false, "submit real inscriptions (default is dry-run)")
	batch := flag.Bool("batch", false, "process every proposal in the proposals directory")
	configPath := flag.String("config", "./config/bot.defaults.yml", "path to the bot YAML config")
	flag.Parse()

	cfg := loadConfig(*configPath, logger)

	mode := client.ModeDryRun
	if *live {
		mode = client.ModeLive
	}
	logger.Printf("Mode: %s", mode)

	mintStore := store.NewFileStore(cfg.LogFile, logger)

	var notifier producer.Producer
	if len(cfg.Notifier.Brokers) > 0 {
		kafkaProducer, err := producer.NewKafkaProducer(cfg.Notifier, logger)
		if err != nil {
			logger.Fatalf("FATAL: Failed to initialize mint event producer: %v", err)
		}
		notifier = kafkaProducer
	} else {
		notifier = producer.NewMockProducer(logger)
	}
	defer notifier.Close()

	inscriber, err := client.NewClient(mode, cfg, logger)
	if err != nil {
		logger.Fatalf("FATAL: %v", err)
	}
	defer inscriber.Close()

	proc := processing.New(cfg, logger, mintStore, inscriber, notifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *batch {
		result, err := proc.ProcessAll(ctx)
		if err != nil {
			logger.Fatalf("FATAL: Batch processing failed: %v", err)
		}
		logger.Printf("Batch processing completed: successful=%d, failed=%d", result.Successful, result.Failed)
		printTreasury(logger, mintStore)
		return
	}

	proposalPath := flag.Arg(0)
	if proposalPath == "" {
		proposalPath = defaultProposalPath
	}

	printTreasury(logger, mintStore)

	entry, err := proc.ProcessProposal(ctx, proposalPath)
	if err != nil {
		logger.Fatalf("FATAL: Mint failed: %v", err)
	}

	logger.Printf("Mint completed: %s %s tokens, txid: %s", entry.Amount, entry.Token, entry.Txid)
	if entry.InscriptionID != "" {
		logger.Printf("Inscription: %s", entry.InscriptionID)
	}
	printTreasury(logger, mintStore)
}

// loadConfig reads the YAML config; a missing file falls back to defaults
// so the bot keeps working out of the box.
func loadConfig(path string, logger *log.Logger) *config.BotConfig {
	if _, err := os.Stat(path); err != nil {
		logger.Printf("Config file '%s' not found, using defaults", path)
		return config.DefaultBotConfig()
	}

	cfg, err := config.LoadBotConfig(path)
	if err != nil {
		logger.Fatalf("FATAL: Failed to load bot configuration: %v", err)
	}
	return cfg
}

func printTreasury(logger *log.Logger, s store.Store) {
	stats := s.Stats()
	logger.Printf("Treasury: pennies=%v, copper=%vg (%v oz), mints=%d (successful=%d)",
		stats.TotalPenniesInTreasury, stats.TotalCopperWeight, stats.TotalCopperOunces,
		stats.TotalMints, stats.SuccessfulMints)
	if stats.LastMint != nil {
		logger.Printf("Last mint: %s", stats.LastMint.Format("2006-01-02 15:04:05"))
	}
}
