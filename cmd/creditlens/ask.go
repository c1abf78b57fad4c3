package main

import (
	"fmt"
	"strings"

	"github.com/nathadriele/creditlens/internal/auth"
	"github.com/nathadriele/creditlens/internal/core"
	"github.com/nathadriele/creditlens/internal/service/explorer"
	"github.com/nathadriele/creditlens/internal/service/ui"
	"github.com/spf13/cobra"
)

var (
	askCollection string
	askTopK       int
	askNoCache    bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single policy question",
	Long:  `Sends one question to the retrieval backend and prints the answer with its sources. No conversation is kept.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a := newApp(ctx)

		if authz := auth.Guard(a.session, auth.PermissionExplorer); !authz.Allowed {
			return fmt.Errorf("access denied: %s", authz.Reason)
		}

		topK := askTopK
		if topK == 0 {
			topK = a.cfg.TopK
		}

		resp, err := a.explorer.Answer(ctx, explorer.Request{
			Query:         strings.Join(args, " "),
			Collection:    askCollection,
			TopK:          topK,
			EnableCaching: a.cfg.CacheEnabled && !askNoCache,
		})
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), ui.RenderResponse(resp))
		return nil
	},
}

func init() {
	askCmd.Flags().StringVarP(&askCollection, "collection", "c", "",
		"document collection to search (known: "+strings.Join(core.KnownCollections, ", ")+")")
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of passages to retrieve (default from config)")
	askCmd.Flags().BoolVar(&askNoCache, "no-cache", false, "bypass the query result cache")
	rootCmd.AddCommand(askCmd)
}
