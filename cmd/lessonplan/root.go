package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/ukaji3/lessonplan-go/internal/config"
	"github.com/ukaji3/lessonplan-go/internal/form"
	"github.com/ukaji3/lessonplan-go/internal/ui"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/mapper"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/models"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/output"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/resource"
)

type app struct {
	stdin         io.Reader
	stdout        io.Writer
	stderr        io.Writer
	isInteractive func() bool
	now           func() time.Time
}

func (a *app) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now()
}

func newRootCmd(a *app) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "lessonplan",
		Short: "Generate lesson-plan spreadsheets",
		Long: `lessonplan fills a lesson-plan workbook from course facts: academy,
class month, subjects, up to 4 objectives and up to 5 dated lessons.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a lesson plan workbook",
		Long: `Write a lesson plan workbook from a YAML form (--input) or, in a
terminal, from an interactive form.

Modes:
  template  fill the fixed cells of the template workbook (default)
  blank     write a new sheet with a header row and one row per lesson`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, cfgFile)
		},
	}
	flags := generateCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default: ./lessonplan.yaml or ~/.config/lessonplan/lessonplan.yaml)")
	flags.StringP(config.KeyInput, "i", "", "YAML form file (default: interactive form)")
	flags.String(config.KeyMode, string(lessonplan.ModeTemplate), "Generation mode: template, blank")
	flags.String(config.KeyTemplate, "", "Template workbook (default: built-in layout)")
	flags.StringP(config.KeyOutputDir, "o", "", "Output directory (default: platform documents folder)")
	flags.Bool(config.KeyVerbose, false, "Enable debug logging")

	var pretty bool
	inspectCmd := &cobra.Command{
		Use:   "inspect [file.xlsx]",
		Short: "Print the filled cells of a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(args[0], pretty)
		},
	}
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	templateCmd := &cobra.Command{
		Use:   "template [file.xlsx]",
		Short: "Write the built-in template for customization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTemplate(args[0])
		},
	}

	rootCmd.AddCommand(generateCmd, inspectCmd, templateCmd)
	return rootCmd
}

func (a *app) runGenerate(cmd *cobra.Command, cfgFile string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	sessionID := uuid.NewString()
	logger := config.NewLogger(a.stderr, cfg.Verbose).With("session", sessionID)
	if cfg.ConfigFile != "" {
		logger.Debug("using configuration file", "path", cfg.ConfigFile)
	}

	now := a.clock()
	notify := func(err error) {
		ui.NoticeFor(err).Print(a.stderr)
	}

	var state *models.FormState
	switch {
	case cfg.InputPath != "":
		logger.Debug("reading form file", "path", cfg.InputPath)
		state, err = form.LoadFile(cfg.InputPath, now, notify)
	case a.isInteractive != nil && a.isInteractive():
		state = models.NewFormState(now)
		w := &form.Wizard{
			Prompter: form.HuhPrompter{Now: now},
			Limiter:  lessonplan.DefaultLimiter,
			Notify:   notify,
		}
		err = w.Run(state)
	default:
		return errors.New("no form input: pass --input or run in a terminal")
	}
	if err != nil {
		return err
	}

	loader, templateID := resource.ForPath(cfg.TemplatePath)
	g := &lessonplan.Generator{
		Loader:   loader,
		Resolver: output.DirResolver{Dir: cfg.OutputDir},
		Now:      a.now,
		Logger:   logger,
	}
	res, err := g.Generate(state, lessonplan.Options{Mode: cfg.Mode, TemplateID: templateID})
	if err != nil {
		ui.Failure(err).Print(a.stderr)
		return reportedError{err}
	}

	ui.Success(res.Path).Print(a.stdout)
	return nil
}

func (a *app) runInspect(path string, pretty bool) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	wb, err := lessonplan.Inspect(path)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(wb, "", "  ")
	} else {
		data, err = json.Marshal(wb)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	fmt.Fprintln(a.stdout, string(data))
	return nil
}

func (a *app) runTemplate(path string) error {
	data, err := mapper.DefaultTemplate()
	if err != nil {
		return fmt.Errorf("rendering template: %w", err)
	}
	if err := output.WriteFile(path, data); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	fmt.Fprintln(a.stdout, path)
	return nil
}
