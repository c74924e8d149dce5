package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/valyala/fasthttp"

	"cyberscore-engine/internal/common"
	"cyberscore-engine/internal/config"
	"cyberscore-engine/internal/engine"
	"cyberscore-engine/internal/handler"
	"cyberscore-engine/internal/report"
)

var (
	configPath  = flag.String("config", "", "Configuration file path (TOML)")
	serverPort  = flag.Int("port", 0, "Server port (overrides config)")
	showVersion = flag.Bool("version", false, "Print version information")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("cyberscore-engine version %s\n", common.GetVersion())
		os.Exit(0)
	}

	path := *configPath
	if path == "" {
		if _, err := os.Stat("cyberscore.toml"); err == nil {
			path = "cyberscore.toml"
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if *serverPort != 0 {
		cfg.Server.Port = *serverPort
	}

	log := common.InitLogger(cfg.Logging.Level, cfg.Logging.Output)

	weights, err := cfg.Weights()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid section weight table")
	}

	eng := engine.New(weights, log)
	reports := report.NewGenerator(cfg.Report.BrandLeft, cfg.Report.BrandRight, cfg.Report.Confidentiality, log)
	srv := handler.New(eng, reports, cfg.Auth.AccessKey, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	gate := "disabled"
	if cfg.Auth.AccessKey != "" {
		gate = "enabled"
	}
	log.Info().
		Str("address", addr).
		Str("version", common.GetVersion()).
		Str("access_gate", gate).
		Msg("Cyber score engine starting")

	if err := fasthttp.ListenAndServe(addr, srv.Handle); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
