package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"llmtools/internal/configedit"
	"llmtools/internal/hub"
	"llmtools/internal/yamllint"
	"llmtools/pkg/types"
)

func newTable(w io.Writer, cols ...interface{}) table.Table {
	return table.New(cols...).WithWriter(w)
}

func serveCmd(e *env) *cobra.Command {
	var addr, modelsDir string
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the web dashboard",
		Example: "  llmtools serve --addr :8501\n  MODELS_PATH=/srv/models llmtools serve",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				e.cfg.Server.Addr = addr
			}
			if modelsDir != "" {
				e.cfg.SetModelsDir(modelsDir)
			}
			a, err := e.app()
			if err != nil {
				return err
			}
			defer a.Close()
			return serve(cmd.Context(), a, e.cfg.Server.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (defaults LLMTOOLS_ADDR or :8501)")
	cmd.Flags().StringVar(&modelsDir, "models-dir", "", "Directory of model config files (defaults MODELS_PATH or ./models)")
	return cmd
}

func psCmd(e *env) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "ps",
		Short: "List containers with their state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.app()
			if err != nil {
				return err
			}
			defer a.Close()
			recs, err := a.engine.ListContainers(cmd.Context(), all)
			if err != nil {
				return err
			}
			tbl := newTable(cmd.OutOrStdout(), "ID", "Name", "Image", "State", "Status", "Ports")
			for _, c := range recs {
				tbl.AddRow(c.ID, c.Name, c.Image, c.State, c.Status, c.Ports)
			}
			tbl.Print()
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include stopped containers")
	return cmd
}

func runCmd(e *env) *cobra.Command {
	var preset string
	cmd := &cobra.Command{
		Use:   "run [--preset name] -- <engine args>",
		Short: "Forward a command to the container engine",
		Example: "  llmtools run -- ps -a\n" +
			"  llmtools run --preset gpu",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.app()
			if err != nil {
				return err
			}
			defer a.Close()
			var resp types.RunResponse
			switch {
			case preset != "":
				resp, err = a.runner.RunPreset(cmd.Context(), preset)
			case len(args) == 0:
				tbl := newTable(cmd.OutOrStdout(), "Preset", "Label", "Command")
				for _, p := range a.runner.Presets() {
					tbl.AddRow(p.Name, p.Label, p.Command)
				}
				tbl.Print()
				return nil
			default:
				resp, err = a.runner.Run(cmd.Context(), strings.Join(args, " "))
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), resp.Stdout)
			fmt.Fprint(cmd.ErrOrStderr(), resp.Stderr)
			return nil
		},
	}
	cmd.Flags().StringVar(&preset, "preset", "", "Run a quick action: restart|logs|gpu")
	return cmd
}

func lintCmd(e *env) *cobra.Command {
	var rulesPath string
	cmd := &cobra.Command{
		Use:     "lint <file>...",
		Short:   "Lint YAML files with the default rule set",
		Example: "  llmtools lint models/*.yaml\n  llmtools lint --rules .yamllint mistral.yaml",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *yamllint.Config
			if rulesPath != "" {
				src, err := os.ReadFile(rulesPath)
				if err != nil {
					return err
				}
				if cfg, err = yamllint.ParseConfig(string(src)); err != nil {
					return fmt.Errorf("%s: %w", rulesPath, err)
				}
			}
			out := cmd.OutOrStdout()
			failed := false
			for _, p := range args {
				b, err := os.ReadFile(p)
				if err != nil {
					return err
				}
				res := configedit.LintWith(string(b), cfg)
				for _, f := range res.Findings {
					fmt.Fprintf(out, "%s:%d:%d: [%s] %s (%s)\n", p, f.Line, f.Column, f.Level, f.Message, f.Rule)
					if f.Level == yamllint.LevelError {
						failed = true
					}
				}
			}
			if failed {
				return errSilent
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rulesPath, "rules", "", "Lint rule configuration (extends: default)")
	return cmd
}

func tokensCmd(e *env) *cobra.Command {
	var model, file string
	cmd := &cobra.Command{
		Use:     "tokens --model <id> [text...]",
		Short:   "Estimate the token count of a prompt",
		Example: "  llmtools tokens --model gpt2 'hello world'\n  llmtools tokens --model ./phi.gguf --file prompt.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if file != "" {
				b, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				text = string(b)
			}
			a, err := e.app()
			if err != nil {
				return err
			}
			defer a.Close()
			resp, err := a.tokens.Estimate(cmd.Context(), model, text)
			if err != nil {
				return err
			}
			tbl := newTable(cmd.OutOrStdout(), "Model", "Tokens", "Original length", "Cleaned length")
			tbl.AddRow(resp.Model, resp.TokenCount, resp.OriginalLength, resp.CleanedLength)
			tbl.Print()
			return nil
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "", "Hub model id or path to a .gguf file")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the prompt from a file")
	return cmd
}

func hubCmd(e *env) *cobra.Command {
	var kind string
	cmd := &cobra.Command{Use: "hub", Short: "Search and download from the model hub", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("hub requires a subcommand: search|files|download")
	}}
	cmd.PersistentFlags().StringVarP(&kind, "kind", "k", string(hub.KindModel), "Repository kind: model|dataset|space")

	var req types.HubSearchRequest
	search := &cobra.Command{
		Use:     "search [query]",
		Short:   "Search repositories",
		Example: "  llmtools hub search mistral --author TheBloke --library gguf",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Kind = kind
			if len(args) == 1 {
				req.Query = args[0]
			}
			a, err := e.app()
			if err != nil {
				return err
			}
			defer a.Close()
			k, err := hub.ParseKind(kind)
			if err != nil {
				return err
			}
			all, err := a.hub.SearchAll(cmd.Context(), req)
			if err != nil {
				return err
			}
			pg := a.hub.Page(k, all, req.Page)
			out := cmd.OutOrStdout()
			tbl := newTable(out, "ID", "Author", "Downloads", "Likes")
			for _, r := range pg.Results {
				tbl.AddRow(r.ID, r.Author, r.Downloads, r.Likes)
			}
			tbl.Print()
			fmt.Fprintf(out, "%d results, page %d of %d\n", pg.Total, pg.Page, pg.TotalPages)
			return nil
		},
	}
	sf := search.Flags()
	sf.StringVar(&req.Author, "author", "", "Filter by author")
	sf.StringVar(&req.Task, "task", "", "Filter by pipeline task")
	sf.StringVar(&req.Library, "library", "", "Filter by library")
	sf.StringVar(&req.TrainedDataset, "trained-dataset", "", "Filter by training dataset")
	sf.IntVarP(&req.Page, "page", "p", 1, "Result page")

	files := &cobra.Command{
		Use:   "files <repo-id>",
		Short: "List files in a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.app()
			if err != nil {
				return err
			}
			defer a.Close()
			resp, err := a.hub.ListFiles(cmd.Context(), kind, args[0])
			if err != nil {
				return err
			}
			for _, f := range resp.Files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}

	var outDir string
	download := &cobra.Command{
		Use:     "download <repo-id> [file]",
		Short:   "Download one file, or the whole repository",
		Example: "  llmtools hub download TheBloke/Mistral-7B-Instruct-v0.2-GGUF mistral-7b-instruct-v0.2.Q4_K_M.gguf",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.app()
			if err != nil {
				return err
			}
			defer a.Close()
			dr := types.HubDownloadRequest{Kind: kind, RepoID: args[0], OutputDir: outDir}
			if len(args) == 2 {
				dr.Filename = args[1]
			}
			resp, err := a.hub.Download(cmd.Context(), dr)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if resp.CreatedDir {
				fmt.Fprintln(out, "created output directory")
			}
			for _, f := range resp.Files {
				fmt.Fprintln(out, f)
			}
			return nil
		},
	}
	download.Flags().StringVarP(&outDir, "output-dir", "o", "", "Target directory (defaults hub.download_dir)")

	cmd.AddCommand(search, files, download)
	return cmd
}

func configsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{Use: "configs", Short: "Manage model config files", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("configs requires a subcommand: list|create")
	}}
	list := &cobra.Command{Use: "list", Short: "List config files", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		a, err := e.app()
		if err != nil {
			return err
		}
		defer a.Close()
		names, err := a.configs.List()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	}}
	create := &cobra.Command{Use: "create <name>", Short: "Create a config from the template", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		a, err := e.app()
		if err != nil {
			return err
		}
		defer a.Close()
		name, err := a.configs.Create(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	}}
	cmd.AddCommand(list, create)
	return cmd
}
