package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kindgen/internal/trace"
)

var tracer trace.Tracer = trace.Nop

// setupTracing reads the trace flags and attaches a tracer to the command
// context.
func setupTracing(cmd *cobra.Command) error {
	root := cmd.Root()

	output, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := root.PersistentFlags().GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	// --trace alone implies phase level.
	if level == trace.LevelOff && output != "" && !root.PersistentFlags().Changed("trace-level") {
		level = trace.LevelPhase
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	t, err := trace.New(trace.Config{Level: level, Format: format, OutputPath: output})
	if err != nil {
		return err
	}
	tracer = t
	cmd.SetContext(trace.WithTracer(cmd.Context(), t))
	return nil
}

func closeTracing() {
	if err := tracer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: close error: %v\n", err)
	}
	tracer = trace.Nop
}
