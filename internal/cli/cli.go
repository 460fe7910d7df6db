// Package cli implements the inicfg command line tool.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inicfg/go-inicfg"
	"github.com/inicfg/go-inicfg/document"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	rootCmd := &cobra.Command{
		Use:           "inicfg",
		Short:         "Parse, format and convert INI-like configuration files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("comment-chars", envString("INICFG_COMMENT_CHARS", "#;'"), "set of comment delimiter characters")
	rootCmd.PersistentFlags().Bool("case-insensitive", envBool("INICFG_CASE_INSENSITIVE"), "fold case in name lookups")
	rootCmd.PersistentFlags().Bool("implicit-section", envBool("INICFG_IMPLICIT_SECTION"), "allow settings before the first section header")

	rootCmd.AddCommand(fmtCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(encodeCmd())
	rootCmd.AddCommand(decodeCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}

// commonOpts assembles the inicfg options shared by every subcommand from
// the persistent flags.
func commonOpts(cmd *cobra.Command) ([]inicfg.Option, error) {
	chars, _ := cmd.Flags().GetString("comment-chars")
	insensitive, _ := cmd.Flags().GetBool("case-insensitive")
	implicit, _ := cmd.Flags().GetBool("implicit-section")

	if chars == "" {
		return nil, fmt.Errorf("comment delimiter set cannot be empty")
	}
	opts := []inicfg.Option{inicfg.CommentDelimiters([]rune(chars)...)}
	if insensitive {
		opts = append(opts, inicfg.CaseInsensitive())
	}
	if implicit {
		opts = append(opts, inicfg.ImplicitSection())
	}
	return opts, nil
}

func fmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reprint a configuration file in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := commonOpts(cmd)
			if err != nil {
				return err
			}
			cfg, err := inicfg.LoadFile(args[0], opts...)
			if err != nil {
				return err
			}
			write, _ := cmd.Flags().GetBool("write")
			if write {
				log.Info().Str("file", args[0]).Msg("rewriting in place")
				return inicfg.SaveFile(args[0], cfg, opts...)
			}
			return inicfg.Save(os.Stdout, cfg, opts...)
		},
	}
	cmd.Flags().BoolP("write", "w", false, "rewrite the file in place instead of printing")
	return cmd
}

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a configuration file to YAML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := commonOpts(cmd)
			if err != nil {
				return err
			}
			cfg, err := inicfg.LoadFile(args[0], opts...)
			if err != nil {
				return err
			}
			to, _ := cmd.Flags().GetString("to")
			switch to {
			case "yaml":
				return writeYAML(os.Stdout, cfg)
			case "json":
				return writeJSON(os.Stdout, cfg)
			default:
				return fmt.Errorf("unsupported output format %q", to)
			}
		},
	}
	cmd.Flags().String("to", "yaml", "output format: yaml or json")
	return cmd
}

func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <file>",
		Short: "Encode a configuration file to the binary layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := commonOpts(cmd)
			if err != nil {
				return err
			}
			cfg, err := inicfg.LoadFile(args[0], opts...)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("output")
			data, err := inicfg.EncodeBinary(cfg)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			log.Info().Str("file", out).Int("bytes", len(data)).Msg("binary written")
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringP("output", "o", "", "write the binary to this file instead of stdout")
	return cmd
}

func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a binary configuration back to text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := commonOpts(cmd)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			cfg, err := inicfg.DecodeBinary(data, opts...)
			if err != nil {
				return err
			}
			return inicfg.Save(os.Stdout, cfg, opts...)
		},
	}
	return cmd
}

// writeYAML emits sections as a yaml.Node tree so declaration order
// survives; plain map marshaling would sort or scramble it.
func writeYAML(w io.Writer, cfg *document.Configuration) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, sec := range cfg.Sections() {
		settings := &yaml.Node{Kind: yaml.MappingNode}
		for _, st := range sec.Settings() {
			settings.Content = append(settings.Content,
				scalar(st.Name()), scalar(st.Value()))
		}
		if sec.Implicit() {
			root.Content = append(root.Content, settings.Content...)
			continue
		}
		root.Content = append(root.Content, scalar(sec.Name()), settings)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}

type jsonSetting struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type jsonSection struct {
	Name     string        `json:"name"`
	Settings []jsonSetting `json:"settings"`
}

// writeJSON emits an array of sections; arrays keep declaration order where
// a JSON object would not.
func writeJSON(w io.Writer, cfg *document.Configuration) error {
	out := make([]jsonSection, 0, cfg.Len())
	for _, sec := range cfg.Sections() {
		js := jsonSection{Name: sec.Name(), Settings: []jsonSetting{}}
		for _, st := range sec.Settings() {
			js.Settings = append(js.Settings, jsonSetting{Name: st.Name(), Value: st.Value()})
		}
		out = append(out, js)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
