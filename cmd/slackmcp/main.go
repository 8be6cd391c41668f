// Command slackmcp starts an MCP server that exposes Slack workspace
// operations (channel listing, posting, threading, reactions, history,
// user lookup) as tools for AI agents.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rusq/osenv/v2"

	"github.com/rusq/slackmcp/internal/mcp"
	"github.com/rusq/slackmcp/internal/slackapi"
)

const (
	envBotToken   = "SLACK_BOT_TOKEN"
	envTeamID     = "SLACK_TEAM_ID"
	envChannelIDs = "SLACK_CHANNEL_IDS"
)

var build = "dev"

// secrets defines the names of the supported secret files that we load our
// secrets from.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

// params is the command line parameters.
type params struct {
	creds slackapi.Credentials

	transport    string
	listenAddr   string
	printVersion bool
	verbose      bool
}

func main() {
	loadSecrets(secrets)

	p, err := parseCmdLine(os.Args[1:])
	if err != nil {
		slog.Error("invalid parameters", "error", err)
		os.Exit(1)
	}
	if p.printVersion {
		fmt.Println(build)
		return
	}
	initLog(p.verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, p); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, p params) error {
	client, err := slackapi.New(p.creds)
	if err != nil {
		return err
	}

	srv := mcp.New(client, mcp.WithLogger(slog.Default()))

	switch mcp.Transport(strings.ToLower(p.transport)) {
	case mcp.TransportStdio, "":
		return srv.ServeStdio(ctx)
	case mcp.TransportHTTP:
		return srv.ServeHTTP(ctx, p.listenAddr)
	default:
		return fmt.Errorf("unknown transport %q (use \"stdio\" or \"http\")", p.transport)
	}
}

// initLog configures the default logger.  MCP stdio transport owns stdout,
// so log output goes to stderr.
func initLog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		godotenv.Load(f)
	}
}

// parseCmdLine parses the command line arguments.
func parseCmdLine(args []string) (params, error) {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			flag.CommandLine.Output(),
			"Slackmcp %s\n"+
				"MCP server for a Slack workspace: exposes channel, message and user\n"+
				"operations as tools callable by an AI agent.\n\n"+
				"Usage:  %s [flags]\n\n",
			build, filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	var p params
	fs.StringVar(&p.creds.Token, "token", osenv.Secret(envBotToken, ""), "Slack bot `token` (xoxb-...), (environment: "+envBotToken+")")
	fs.StringVar(&p.creds.TeamID, "team", osenv.Value(envTeamID, ""), "Slack workspace (team) `ID`, (environment: "+envTeamID+")")
	var channelIDs string
	fs.StringVar(&channelIDs, "channels", osenv.Value(envChannelIDs, ""), "optional comma-separated `list` of pinned channel IDs; replaces dynamic\nchannel discovery in list_channels (environment: "+envChannelIDs+")")

	fs.StringVar(&p.transport, "transport", "stdio", "MCP transport: \"stdio\" or \"http\"")
	fs.StringVar(&p.listenAddr, "listen", "127.0.0.1:8483", "address to listen on when -transport=http")

	fs.BoolVar(&p.printVersion, "V", false, "print version and exit")
	fs.BoolVar(&p.verbose, "v", osenv.Value("DEBUG", false), "verbose messages")

	os.Unsetenv(envBotToken)

	if err := fs.Parse(args); err != nil {
		return p, err
	}

	p.creds.ChannelIDs = slackapi.ParseChannelIDs(channelIDs)

	return p, nil
}
