package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"

	"abcparse/ccg"
	"abcparse/dictionary"
	"abcparse/ingest"
	"abcparse/lexicon"
	"abcparse/logger"
	"abcparse/render"
	"abcparse/tokenize"
)

// config carries the environment-backed defaults; flags override.
type config struct {
	SysDic string `env:"ABCPARSE_SYSDIC" env-default:""`
	System string `env:"ABCPARSE_SYSTEM_DICT" env-default:"ipa"`
	LogDir string `env:"ABCPARSE_LOG_DIR" env-default:"logs"`
	NoLogs bool   `env:"ABCPARSE_NO_LOGS" env-default:"false"`
}

func main() {
	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "abcparse",
		Short:         "supplementary-dictionary synthesis and ABC notation tools for Japanese CCG parsing",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&cfg.SysDic, "sysdic", cfg.SysDic, "path to a base lexicon CSV (IPADIC-style)")
	root.PersistentFlags().StringVar(&cfg.System, "system", cfg.System, "kagome system dictionary: ipa or uni")
	root.PersistentFlags().StringVar(&cfg.LogDir, "logdir", cfg.LogDir, "directory for diagnostic dumps")
	root.PersistentFlags().BoolVar(&cfg.NoLogs, "no-logs", cfg.NoLogs, "disable diagnostic dumps")

	root.AddCommand(dicCmd(&cfg), tokenizeCmd(&cfg), renderCmd(&cfg))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDictionary loads the base lexicon and synthesizes the supplementary
// entries from it.
func loadDictionary(cfg *config) (*dictionary.Dictionary, error) {
	if cfg.SysDic == "" {
		return nil, fmt.Errorf("a base lexicon is required: pass --sysdic or set ABCPARSE_SYSDIC")
	}
	lex, err := lexicon.LoadFile(cfg.SysDic)
	if err != nil {
		return nil, err
	}
	return dictionary.New(lex), nil
}

func dicCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "dic",
		Short: "list the synthesized lexical entries as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDictionary(cfg)
			if err != nil {
				return err
			}
			return d.DumpCSV(cmd.OutOrStdout())
		},
	}
}

func tokenizeCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize",
		Short: "tokenize STDIN sentences with the augmented tokenizer, JSON out",
		RunE: func(cmd *cobra.Command, args []string) error {
			tcfg := tokenize.Config{System: cfg.System}
			if cfg.SysDic != "" {
				d, err := loadDictionary(cfg)
				if err != nil {
					return err
				}
				tcfg.Entries = d.Entries().Sorted()
			}
			tk, err := tokenize.New(tcfg)
			if err != nil {
				return err
			}

			sentences, err := ingest.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			for _, s := range sentences {
				toks, err := tk.Tokenize(cmd.Context(), s.Text)
				if err != nil {
					return err
				}
				out := map[string]any{
					"sentence_id": s.ID,
					"text":        s.Text,
					"tokens":      toks,
				}
				if err := enc.Encode(out); err != nil {
					return err
				}
				if !cfg.NoLogs {
					if err := logger.LogJSON(cfg.LogDir, s.ID+"_tokens", out); err != nil {
						fmt.Fprintln(cmd.ErrOrStderr(), "failed to write token log:", err)
					}
				}
			}
			return nil
		},
	}
}

func renderCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "render derivation trees (JSON, one per line) in the ABC Treebank format",
		RunE: func(cmd *cobra.Command, args []string) error {
			sentences, err := ingest.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			for i, s := range sentences {
				var scored ccg.Scored
				if err := json.Unmarshal([]byte(s.Text), &scored); err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}
				if scored.Tree == nil {
					// bare tree without the scored wrapper
					var t ccg.Tree
					if err := json.Unmarshal([]byte(s.Text), &t); err != nil {
						return fmt.Errorf("line %d: %w", i+1, err)
					}
					scored.Tree = &t
				}
				id := fmt.Sprintf("%d", i+1)
				if err := render.Parses(cmd.OutOrStdout(), []ccg.Scored{scored}, id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
