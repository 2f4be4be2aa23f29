package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/audioforge/studio-bridge/engine"
	"github.com/audioforge/studio-bridge/fmod"
)

func main() {
	var (
		banks       = flag.String("banks", "", "Comma-separated bank files, .strings bank first")
		liveUpdate  = flag.Bool("live", false, "Open the Studio live update connection")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose middleware logging")
	)
	flag.Parse()

	if *banks == "" {
		fmt.Fprintln(os.Stderr, "Usage: demo -banks <Master.strings.bank,Master.bank,...> [-live]")
		fmt.Fprintln(os.Stderr, "       demo -banks <...> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		engine.SetLogger(logger)
		fmod.SetLogger(logger)
	}

	if err := run(strings.Split(*banks, ","), *liveUpdate, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(bankFiles []string, liveUpdate, interactive bool) error {
	buffers := make([][]byte, 0, len(bankFiles))
	for _, file := range bankFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read bank: %w", err)
		}
		buffers = append(buffers, data)
	}

	fmt.Println("- engine.New()")
	eng, err := engine.New(liveUpdate)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	fmt.Println("- engine.LoadBanksFromMemory()")
	if err := eng.LoadBanksFromMemory(uuid.New(), buffers); err != nil {
		return fmt.Errorf("load banks: %w", err)
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(eng)
	}
	return runScript(eng)
}
