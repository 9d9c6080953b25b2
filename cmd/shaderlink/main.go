// Package main is the entry point for the shaderlink tool.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/shaderlink/internal/alert"
	"github.com/Faultbox/shaderlink/internal/config"
	"github.com/Faultbox/shaderlink/internal/glctx"
	"github.com/Faultbox/shaderlink/internal/logger"
	"github.com/Faultbox/shaderlink/internal/report"
	"github.com/Faultbox/shaderlink/internal/shader"
	"github.com/Faultbox/shaderlink/internal/shaders"
	"github.com/Faultbox/shaderlink/internal/source"
	"github.com/Faultbox/shaderlink/internal/window"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if path := config.InitPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Writing config: %v\n", err)
			return 1
		}
		return 0
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	lookup, err := newSources(cfg.Sources)
	if err != nil {
		logger.Error("failed to set up shader sources", zap.Error(err))
		return 1
	}

	if config.PrintOnly() {
		return printSources(lookup, cfg.Program, config.ForceES())
	}
	if config.ForceES() {
		logger.Warn("-es only applies with -print; classification comes from the live context")
	}

	win, err := window.New(window.Config{
		Title:   "shaderlink",
		Width:   cfg.Context.Width,
		Height:  cfg.Context.Height,
		Hidden:  cfg.Context.Hidden,
		Profile: cfg.Context.Profile,
		Major:   cfg.Context.Major,
		Minor:   cfg.Context.Minor,
	})
	if err != nil {
		logger.Error("failed to create window", zap.Error(err))
		return 1
	}
	defer win.Close()

	ctx, err := glctx.New(cfg.Context.Profile)
	if err != nil {
		logger.Error("failed to create GL context", zap.Error(err))
		return 1
	}

	info := ctx.Info()
	logger.Info("OpenGL initialized",
		zap.String("version", info.Version),
		zap.String("renderer", info.Renderer),
		zap.String("glsl", info.GLSL),
	)

	builder := shader.New(ctx, lookup,
		shader.WithReporter(newReporter(cfg.Report)),
		shader.WithLogger(logger.Log),
	)

	program := builder.Program(cfg.Program.Vertex, cfg.Program.Fragment)
	if program == shader.Invalid {
		return 1
	}

	logger.Info("program linked",
		zap.String("vertex", cfg.Program.Vertex),
		zap.String("fragment", cfg.Program.Fragment),
		zap.Int64("program", program),
	)
	fmt.Println(program)
	return 0
}

// newSources builds the lookup chain: builtin < dirs < document.
func newSources(cfg config.SourcesConfig) (*source.Chain, error) {
	chain := source.NewChain()

	if cfg.Builtin {
		chain.Add(source.NewFS(shaders.FS))
	}
	for _, dir := range cfg.Dirs {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("shader directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("shader directory %s is not a directory", dir)
		}
		chain.Add(source.Dir(dir))
	}
	if cfg.Document != "" {
		doc, err := source.LoadDocument(cfg.Document)
		if err != nil {
			return nil, err
		}
		logger.Debug("document loaded", zap.String("path", cfg.Document), zap.Int("ids", doc.Len()))
		chain.Add(doc)
	}

	if chain.Len() == 0 {
		return nil, fmt.Errorf("no shader sources configured")
	}
	return chain, nil
}

func newReporter(cfg config.ReportConfig) shader.Reporter {
	reporters := report.Multi{report.Log{L: logger.Log}}
	if cfg.Dialog {
		reporters = append(reporters, alert.Reporter{Title: "shaderlink"})
	}
	return reporters
}

// printSources writes both stages as the builder would hand them to the compiler.
func printSources(lookup shader.SourceLookup, prog config.ProgramConfig, es300 bool) int {
	stages := []struct {
		stage shader.Stage
		id    string
	}{
		{shader.Vertex, prog.Vertex},
		{shader.Fragment, prog.Fragment},
	}

	for _, s := range stages {
		src, err := lookup.Lookup(s.id)
		if err != nil {
			logger.Error("lookup failed", zap.Stringer("stage", s.stage), zap.String("id", s.id), zap.Error(err))
			return 1
		}
		src, err = shader.Preprocess(s.stage, src, es300)
		if err != nil {
			logger.Error("preprocess failed", zap.Error(err))
			return 1
		}
		fmt.Printf("// %s shader '%s'\n%s\n", s.stage, s.id, src)
	}
	return 0
}
