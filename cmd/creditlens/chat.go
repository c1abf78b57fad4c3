package main

import (
	"os"
	"os/signal"

	"github.com/nathadriele/creditlens/internal/transport/cli"
	"github.com/nathadriele/creditlens/pkg/log"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive policy exploration session",
	Long:  `Opens a REPL that keeps a conversation with the retrieval backend. Follow-up questions carry the conversation context.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		a := newApp(ctx)

		rl, err := cli.NewReadLine(a.explorer, a.session, a.cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := rl.Shutdown(ctx); err != nil {
				logger.Warn().Err(err).Msg("readline shutdown failed")
			}
		}()

		return rl.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
