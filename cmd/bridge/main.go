// Command bridge runs the volunteer workspace: it starts a session against
// the memory backend, streams caller replies, and renders the live transcript
// and context in the terminal. With -replay it plays back a stored session
// instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	bridge "github.com/Gentle-mann/crisis-memory-bridge/core"
	"github.com/Gentle-mann/crisis-memory-bridge/core/api"
	"github.com/Gentle-mann/crisis-memory-bridge/core/events"
	"github.com/Gentle-mann/crisis-memory-bridge/core/replay"
	"github.com/Gentle-mann/crisis-memory-bridge/core/stream"
	"github.com/Gentle-mann/crisis-memory-bridge/internal/config"
	"github.com/Gentle-mann/crisis-memory-bridge/internal/tui"
)

func main() {
	configPath := flag.String("config", "bridge.toml", "path to the TOML config file")
	callerID := flag.String("caller", "", "caller id (overrides config)")
	volunteerName := flag.String("volunteer", "", "volunteer name (overrides config)")
	replayTarget := flag.String("replay", "", "replay a stored session as caller-id:session-number")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *callerID != "" {
		cfg.Session.CallerID = *callerID
	}
	if *volunteerName != "" {
		cfg.Session.VolunteerName = *volunteerName
	}

	if *replayTarget != "" {
		if err := runReplay(cfg, *replayTarget); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := runSession(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSession(cfg config.Config) error {
	if cfg.Session.CallerID == "" || cfg.Session.VolunteerName == "" {
		return fmt.Errorf("caller id and volunteer name are required; set them in config or with -caller/-volunteer")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var opener stream.Opener
	switch cfg.Server.Transport {
	case config.TransportWebSocket:
		opener = stream.NewWebSocketTransport(cfg.Server.BaseURL)
	default:
		opener = stream.NewHTTPTransport(cfg.Server.BaseURL)
	}

	b, err := bridge.New(
		bridge.WithBackend(api.NewClient(cfg.Server.BaseURL)),
		bridge.WithStreamOpener(opener),
	)
	if err != nil {
		return err
	}
	defer b.Close()

	var program atomic.Pointer[tea.Program]
	err = b.Run(ctx, bridge.OnEvent(func(event events.Event) {
		if p := program.Load(); p != nil {
			p.Send(tui.EventMsg{Event: event})
		}
	}))
	if err != nil {
		return err
	}

	result, err := b.StartSession(api.StartSessionRequest{
		CallerID:      cfg.Session.CallerID,
		VolunteerName: cfg.Session.VolunteerName,
		Language:      cfg.Session.Language,
	})
	if err != nil {
		return err
	}
	if result.IsReturning {
		b.AddNotice(fmt.Sprintf("Returning caller: session %d with this caller.", len(sessionsOf(result))+1))
	} else {
		b.AddNotice("First contact with this caller.")
	}

	exporter := func(transcript string) (string, error) {
		path := filepath.Join(cfg.Export.Dir,
			bridge.ExportFilename(cfg.Session.CallerID, time.Now()))
		if err := os.WriteFile(path, []byte(transcript), 0o644); err != nil {
			return "", err
		}
		return path, nil
	}

	p := tea.NewProgram(tui.NewModel(b, exporter), tea.WithAltScreen())
	program.Store(p)
	_, err = p.Run()
	return err
}

func sessionsOf(result *api.StartSessionResult) []api.SessionRecord {
	if result.CallerMemory == nil {
		return nil
	}
	return result.CallerMemory.Sessions
}

func runReplay(cfg config.Config, target string) error {
	caller, number, err := parseReplayTarget(target)
	if err != nil {
		return err
	}

	client := api.NewClient(cfg.Server.BaseURL)
	record, err := client.SessionDetail(context.Background(), caller, number)
	if err != nil {
		return err
	}
	if len(record.Conversation) == 0 {
		return fmt.Errorf("session %d of caller %s has no stored conversation", number, caller)
	}

	var program atomic.Pointer[tea.Program]
	scheduler := replay.NewScheduler(
		func(message replay.Message) {
			if p := program.Load(); p != nil {
				p.Send(tui.ReplayMsg{Message: message})
			}
		},
		replay.WithPlayingStateCallback(func(playing bool) {
			if p := program.Load(); p != nil {
				p.Send(tui.ReplayStateMsg{Playing: playing})
			}
		}),
		replay.WithCompletionCallback(func() {
			if p := program.Load(); p != nil {
				p.Send(tui.ReplayStateMsg{Complete: true})
			}
		}),
	)
	defer scheduler.Close()
	scheduler.Load(record.Conversation)

	title := fmt.Sprintf("%s session %d (%s)", caller, number, record.Volunteer)
	p := tea.NewProgram(tui.NewReplayModel(scheduler, title), tea.WithAltScreen())
	program.Store(p)
	scheduler.Play()
	_, err = p.Run()
	return err
}

func parseReplayTarget(target string) (caller string, number int, err error) {
	caller, numberText, ok := strings.Cut(target, ":")
	if !ok || caller == "" {
		return "", 0, fmt.Errorf("invalid -replay value %q, want caller-id:session-number", target)
	}
	number, err = strconv.Atoi(numberText)
	if err != nil || number < 1 {
		return "", 0, fmt.Errorf("invalid session number in -replay value %q", target)
	}
	return caller, number, nil
}
