package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wisdomatom/gqlbuilder-gen/generator"
)

const usage = "usage : gqlbuilder-gen {schemaPath} {distPath}"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		generator.Log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags generator.Config
	cmd := &cobra.Command{
		Use:           "gqlbuilder-gen {schemaPath} {distPath}",
		Short:         "Generate a fluent GraphQL query builder from a schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return nil
			}
			conf, err := generator.LoadConfig()
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("pkg") {
				conf.PkgName = flags.PkgName
			}
			if fs.Changed("scalars") {
				conf.ScalarsPath = flags.ScalarsPath
			}
			if fs.Changed("runtime") {
				conf.RuntimePkg = flags.RuntimePkg
			}
			if fs.Changed("log-level") {
				conf.LogLevel = flags.LogLevel
			}
			if fs.Changed("log-file") {
				conf.LogFile = flags.LogFile
			}
			if err := generator.SetupLog(generator.LogConfig{Level: conf.LogLevel, File: conf.LogFile}); err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), conf, args[0], args[1])
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&flags.PkgName, "pkg", "client", "generated Go package name")
	fs.StringVar(&flags.ScalarsPath, "scalars", "", "optional scalars.json mapping")
	fs.StringVar(&flags.RuntimePkg, "runtime", generator.DefaultRuntimePkg, "import path of the builder runtime")
	fs.StringVar(&flags.LogLevel, "log-level", "info", "log level")
	fs.StringVar(&flags.LogFile, "log-file", "", "also write logs to this file, rotated")
	return cmd
}

func run(out io.Writer, conf *generator.Config, schemaPath, distPath string) error {
	bts, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	gc := &generator.GenerateConfig{
		Schema:     string(bts),
		SchemaName: schemaPath,
		OutPath:    distPath,
		GoPkgName:  conf.PkgName,
		ScalarMap:  map[string]generator.GoType{},
		RuntimePkg: conf.RuntimePkg,
	}
	if conf.ScalarsPath != "" {
		gc.ScalarMap, err = generator.LoadScalarFile(conf.ScalarsPath)
		if err != nil {
			return err
		}
	}
	if err := generator.Generate(gc); err != nil {
		return err
	}
	fmt.Fprintln(out, "✅ generated:", distPath)
	return nil
}
