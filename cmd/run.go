package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"cpusched/config"
	"cpusched/internal/core"
	"cpusched/internal/parser"
	"cpusched/internal/recording"
	"cpusched/internal/report"
	"cpusched/internal/schedulers"
)

func runFile(cmd *cobra.Command, opts *options, inputPath string) error {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	input, err := parser.ParseFile(inputPath)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	simConfig := input.Config
	simConfig.FillHorizon = opts.fillHorizon || cfg.FillHorizon

	simulator, err := schedulers.NewSimulator(simConfig)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	if opts.verbose {
		simulator.AcceptHook(core.NewEventLogger(
			log.New(cmd.ErrOrStderr(), "", 0)))
	}

	runRecorder, closeRecorder, err := openRecorder(cmd, opts, cfg)
	if err != nil {
		return err
	}
	defer closeRecorder()

	if runRecorder != nil {
		simulator.AcceptHook(runRecorder)
	}

	result, err := simulator.Run(input.Processes)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	if runRecorder != nil {
		if err := runRecorder.RecordResult(result); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
	}

	outputPath := report.OutputPath(inputPath, cfg.OutputExtension)
	if err := writeReport(outputPath, result); err != nil {
		return err
	}
	log.Printf("report written to %s", outputPath)

	if opts.stdout {
		if err := report.Write(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	}

	if opts.summary {
		report.WriteSummary(cmd.OutOrStdout(), schedulers.GenerateResponse(result))
	}

	return nil
}

func writeReport(path string, result *schedulers.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	if err := report.Write(f, result); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}

	return f.Close()
}

// openRecorder opens the SQLite export when --record is given or recording
// is enabled in the configuration.
func openRecorder(
	cmd *cobra.Command,
	opts *options,
	cfg *config.SchedulerConfig,
) (*recording.RunRecorder, func(), error) {
	if !cmd.Flags().Changed("record") && !cfg.RecordingEnabled {
		return nil, func() {}, nil
	}

	path := opts.recordPath
	if path == "" {
		path = cfg.RecordingPath
	}

	recorder, err := recording.New(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open recorder: %w", err)
	}

	closeFn := func() {
		if err := recorder.Close(); err != nil {
			log.Printf("closing recorder: %v", err)
		}
	}

	runRecorder, err := recording.NewRunRecorder(recorder)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("open recorder: %w", err)
	}

	return runRecorder, closeFn, nil
}
