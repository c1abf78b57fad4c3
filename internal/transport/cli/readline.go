package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/nathadriele/creditlens/internal/auth"
	"github.com/nathadriele/creditlens/internal/config"
	"github.com/nathadriele/creditlens/internal/core"
	"github.com/nathadriele/creditlens/internal/service/explorer"
	"github.com/nathadriele/creditlens/internal/service/ui"
	"github.com/nathadriele/creditlens/pkg/log"
)

type ReadLine struct {
	cfg      *config.AppConfig
	explorer *explorer.Explorer
	session  *auth.Session
	rl       *readline.Instance
	out      io.Writer

	conversationID string
	collection     string
	useContext     bool
}

func NewReadLine(exp *explorer.Explorer, session *auth.Session, cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     cfg.GetInputHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    newCompleter(),
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:        cfg,
		explorer:   exp,
		session:    session,
		rl:         rl,
		out:        rl.Stdout(),
		collection: cfg.DefaultCollection,
		useContext: true,
	}, nil
}

func newCompleter() *readline.PrefixCompleter {
	collections := make([]readline.PrefixCompleterInterface, 0, len(core.KnownCollections))
	for _, name := range core.KnownCollections {
		collections = append(collections, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("/help"),
		readline.PcItem("/new"),
		readline.PcItem("/clear"),
		readline.PcItem("/history"),
		readline.PcItem("/health"),
		readline.PcItem("/collection", collections...),
		readline.PcItem("/context", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("exit"),
	)
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	if authz := auth.Guard(r.session, auth.PermissionExplorer); !authz.Allowed {
		return fmt.Errorf("access denied: %s", authz.Reason)
	}

	conversationID, err := r.explorer.StartConversation(ctx)
	if err != nil {
		return fmt.Errorf("failed to start conversation: %w", err)
	}
	r.conversationID = conversationID

	logger.Info().Str("conversation", r.conversationID).Msg("chat started")
	fmt.Fprintf(r.out, "Conversation %s. Type '/help' for commands, 'exit' to quit.\n", r.conversationID)

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if err := r.command(ctx, line); err != nil {
				fmt.Fprintf(r.out, "Error: %v\n", err)
			}
			continue
		}

		if err := r.ask(ctx, line); err != nil {
			logger.Error().Err(err).Msg("query failed")
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
	}
}

func (r *ReadLine) ask(ctx context.Context, line string) error {
	resp, err := r.explorer.Answer(ctx, explorer.Request{
		Query:           line,
		Collection:      r.collection,
		UseConversation: r.useContext,
		TopK:            r.cfg.TopK,
		EnableCaching:   r.cfg.CacheEnabled,
		ConversationID:  r.conversationID,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(r.out, ui.RenderResponse(resp))
	return nil
}

func (r *ReadLine) command(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	switch name {
	case "/help":
		fmt.Fprint(r.out, helpText())
	case "/new":
		id, err := r.explorer.StartConversation(ctx)
		if err != nil {
			return err
		}
		r.conversationID = id
		fmt.Fprintf(r.out, "Started conversation %s\n", id)
	case "/clear":
		if err := r.explorer.ClearConversation(ctx, r.conversationID); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Cleared conversation %s\n", r.conversationID)
	case "/history":
		turns, err := r.explorer.History(ctx, r.conversationID)
		if err != nil {
			return err
		}
		fmt.Fprint(r.out, ui.RenderHistory(turns))
	case "/health":
		health, err := r.explorer.Health(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Backend: %s\n", health.Status)
		for svc, status := range health.Services {
			fmt.Fprintf(r.out, "  %s: %s\n", svc, status)
		}
	case "/collection":
		return r.setCollection(args)
	case "/context":
		return r.setContext(args)
	default:
		return fmt.Errorf("unknown command %q, try /help", name)
	}
	return nil
}

// setCollection switches the search target. Any name is accepted since
// collections are operator-defined; unknown ones just get a note.
func (r *ReadLine) setCollection(args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "Collection: %s\nKnown: %s\n", r.collection, strings.Join(core.KnownCollections, ", "))
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("usage: /collection <name>")
	}

	r.collection = args[0]
	if !isKnownCollection(r.collection) {
		fmt.Fprintf(r.out, "Note: %q is not a known collection\n", r.collection)
	}
	fmt.Fprintf(r.out, "Searching %s\n", r.collection)
	return nil
}

func (r *ReadLine) setContext(args []string) error {
	if len(args) == 0 {
		state := "off"
		if r.useContext {
			state = "on"
		}
		fmt.Fprintf(r.out, "Conversation context: %s\n", state)
		return nil
	}

	switch args[0] {
	case "on":
		r.useContext = true
		fmt.Fprintln(r.out, "Follow-up questions will carry conversation context")
	case "off":
		r.useContext = false
		fmt.Fprintln(r.out, "Questions will be answered independently")
	default:
		return fmt.Errorf("usage: /context on|off")
	}
	return nil
}

func isKnownCollection(name string) bool {
	for _, known := range core.KnownCollections {
		if known == name {
			return true
		}
	}
	return false
}

func helpText() string {
	return ui.FlagStyle.Render("/help") + "               show this help\n" +
		ui.FlagStyle.Render("/new") + "                start a fresh conversation\n" +
		ui.FlagStyle.Render("/clear") + "              clear the current conversation\n" +
		ui.FlagStyle.Render("/history") + "            show recent turns\n" +
		ui.FlagStyle.Render("/health") + "             check backend health\n" +
		ui.FlagStyle.Render("/collection <name>") + "  switch document collection\n" +
		ui.FlagStyle.Render("/context on|off") + "     toggle conversation context\n" +
		"exit                quit\n"
}

func (r *ReadLine) Shutdown(context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
