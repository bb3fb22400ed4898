package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultCoverageFile      = "logs/coverage.out"
	defaultCoverageThreshold = 80.0
)

type CheckCoverageCommand struct{}

func (c *CheckCoverageCommand) Name() string {
	return "check-coverage"
}

func (c *CheckCoverageCommand) Description() string {
	return "Run tests with coverage and check against threshold"
}

// coverageConfig is the parsed command line of check-coverage
type coverageConfig struct {
	file      string
	threshold float64
	runTests  bool
	packages  []string
}

func (c *CheckCoverageCommand) Run(args []string) error {
	cfg, err := parseCoverageArgs(args)
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Checking coverage threshold (%.1f%%)...", cfg.threshold))

	if err := ensureCoverage(cfg); err != nil {
		return err
	}

	out, err := getCommandOutput("go", "tool", "cover", "-func="+cfg.file)
	if err != nil {
		return fmt.Errorf("error running go tool cover: %w", err)
	}
	coverage, err := totalCoverage(out)
	if err != nil {
		return err
	}

	PrintInfo("Total Coverage: %.1f%%", coverage)
	if coverage < cfg.threshold {
		return fmt.Errorf("coverage %.1f%% is below threshold %.1f%%", coverage, cfg.threshold)
	}

	PrintSuccess("Coverage meets threshold.")
	return nil
}

// parseCoverageArgs accepts: [-run] [file [threshold [packages...]]]
func parseCoverageArgs(args []string) (coverageConfig, error) {
	cfg := coverageConfig{file: defaultCoverageFile, threshold: defaultCoverageThreshold}

	fs := flag.NewFlagSet("check-coverage", flag.ContinueOnError)
	fs.BoolVar(&cfg.runTests, "run", false, "Run tests before checking coverage")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	positional := fs.Args()
	if len(positional) > 0 {
		cfg.file = filepath.Clean(positional[0])
	}
	if len(positional) > 1 {
		t, err := strconv.ParseFloat(positional[1], 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid threshold '%s'", positional[1])
		}
		cfg.threshold = t
		cfg.packages = positional[2:]
	}

	// Keep the profile inside the project
	if strings.Contains(cfg.file, "..") || strings.HasPrefix(cfg.file, "/") {
		return cfg, fmt.Errorf("invalid path '%s': must be relative and within project", cfg.file)
	}
	return cfg, nil
}

func ensureCoverage(cfg coverageConfig) error {
	shouldRun := cfg.runTests || len(cfg.packages) > 0
	if _, err := os.Stat(cfg.file); os.IsNotExist(err) {
		PrintInfo("Coverage file '%s' not found. Running tests...", cfg.file)
		shouldRun = true
	}
	if !shouldRun {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.file), 0o755); err != nil {
		return fmt.Errorf("failed to create coverage directory: %w", err)
	}

	testArgs := []string{"test"}
	if len(cfg.packages) > 0 {
		testArgs = append(testArgs, cfg.packages...)
	} else {
		testArgs = append(testArgs, "./...")
	}
	testArgs = append(testArgs, "-coverprofile="+cfg.file, "-covermode=atomic", "-race")

	PrintInfo("Running tests with coverage...")
	if err := runCommandVerbose("go", testArgs...); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	return nil
}

// totalCoverage extracts the percentage from the "total:" line of
// `go tool cover -func` output
func totalCoverage(out string) (float64, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "total:") {
			continue
		}
		fields := strings.Fields(line)
		pct := strings.TrimSuffix(fields[len(fields)-1], "%")
		coverage, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse coverage percentage '%s'", pct)
		}
		return coverage, nil
	}
	return 0, fmt.Errorf("could not determine coverage from output")
}
