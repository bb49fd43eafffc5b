package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"memo/internal/app"
	"memo/internal/cli"
	"memo/internal/config"
	"memo/internal/httpserver"
	"memo/internal/logs"
	"memo/internal/memos/data"
	"memo/internal/memos/service"
	"memo/internal/status"
	"memo/internal/tui"
)

func main() {
	// Parse CLI flags
	dirFlag := flag.String("dir", "", "Memo directory")
	flag.StringVar(dirFlag, "d", "", "Memo directory (shorthand)")
	portFlag := flag.Int("port", 0, "HTTP port for the root page")
	flag.IntVar(portFlag, "p", 0, "HTTP port (shorthand)")
	headless := flag.Bool("headless", false, "Serve HTTP only, without the interactive menu")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(config.CLIFlags{Dir: *dirFlag, Port: *portFlag})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	// Ensure memo and log directories exist
	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("Failed to create directories: %v", err)
	}

	if err := logs.Initialize(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	store := data.NewStore(cfg.MemoDir)
	if err := store.EnsureDir(); err != nil {
		log.Fatalf("Failed to create memo directory: %v", err)
	}
	memoSvc := service.NewMemoService(store)

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		exitCode := cli.Run(args, memoSvc)
		logs.Close()
		os.Exit(exitCode)
	}

	server, err := httpserver.New(httpserver.Config{
		Host:    cfg.Host,
		Port:    cfg.Port,
		Mode:    cfg.GinMode,
		Memos:   memoSvc,
		Fetcher: status.NewClient(cfg.StatusURL, cfg.FetchTimeout),
	})
	if err != nil {
		log.Fatalf("Failed to initialize HTTP server: %v", err)
	}

	var program *tea.Program
	if !*headless {
		program = tea.NewProgram(tui.NewModel(memoSvc))
	}
	application := app.New(server, program)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Start(); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
	fmt.Printf("Server running at http://localhost:%d\n", server.Port())
	fmt.Printf("Memos are stored in %s\n", store.Dir())

	logs.Logger.Infow("starting", "memo_dir", cfg.MemoDir, "addr", server.Addr(), "headless", *headless)
	if err := application.Run(ctx); err != nil {
		fmt.Println("Error running program:", err)
		logs.Close()
		os.Exit(1)
	}
	fmt.Println("Goodbye.")
}
