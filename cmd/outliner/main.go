package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/layout"
)

// Job is one document for a worker to process
type Job struct {
	Path string
}

// Result holds the outcome of one processed document
type Result struct {
	Path     string
	OutPath  string
	Title    string
	Headings int
	Warnings []outliner.Warning
	Err      error
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	app := &cli.App{
		Name:  "outliner",
		Usage: "extract document titles and heading outlines from PDF files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Value:   "input",
				Usage:   "directory containing PDF files",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "output",
				Usage:   "directory to write one JSON file per document into",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "optional YAML file tuning the heading heuristics",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Value:   runtime.NumCPU(),
				Usage:   "number of documents processed in parallel",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("outliner failed")
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}

	inputDir := c.String("input")
	outputDir := c.String("output")

	docs, err := findPDFs(inputDir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		log.Warn().Str("dir", inputDir).Msg("no PDF files found")
		return nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", outputDir, err)
	}

	workers := c.Int("workers")
	if workers < 1 {
		workers = 1
	}
	log.Info().Int("documents", len(docs)).Int("workers", workers).Msg("starting extraction")

	// Each document gets its own extractor and style profile, so documents
	// are processed in parallel with no shared state.
	jobs := make(chan Job, len(docs))
	results := make(chan Result, len(docs))

	var wg sync.WaitGroup
	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go worker(w, cfg, outputDir, &wg, jobs, results)
	}

	for _, path := range docs {
		jobs <- Job{Path: path}
	}
	close(jobs)
	wg.Wait()
	close(results)

	failed := 0
	for res := range results {
		if res.Err != nil {
			// One bad document never aborts the batch.
			failed++
			log.Error().Err(res.Err).Str("file", res.Path).Msg("extraction failed")
			continue
		}
		for _, w := range res.Warnings {
			log.Debug().Str("file", res.Path).Msg(w.String())
		}
		log.Info().
			Str("file", res.Path).
			Str("title", res.Title).
			Int("headings", res.Headings).
			Str("output", res.OutPath).
			Msg("processed")
	}

	log.Info().Int("processed", len(docs)-failed).Int("failed", failed).Msg("done")
	return nil
}

// worker processes jobs until the jobs channel closes
func worker(id int, cfg layout.Config, outputDir string, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		log.Debug().Int("worker", id).Str("file", job.Path).Msg("processing")
		results <- process(job.Path, outputDir, cfg)
	}
}

// process extracts one document and writes its JSON result
func process(path, outputDir string, cfg layout.Config) Result {
	res := Result{Path: path}

	extraction, warnings, err := outliner.Open(path).WithConfig(cfg).Outline()
	res.Warnings = warnings
	if err != nil {
		res.Err = fmt.Errorf("extract %s: %w", path, err)
		return res
	}

	data, err := json.MarshalIndent(extraction, "", "  ")
	if err != nil {
		res.Err = fmt.Errorf("marshal %s: %w", path, err)
		return res
	}

	res.OutPath = filepath.Join(outputDir, outputName(path))
	if err := os.WriteFile(res.OutPath, data, 0o644); err != nil {
		res.Err = fmt.Errorf("write %s: %w", res.OutPath, err)
		return res
	}

	res.Title = extraction.Title
	res.Headings = len(extraction.Outline)
	return res
}

// outputName maps an input file name to its JSON output name
func outputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}

// findPDFs lists the PDF files directly inside dir, sorted by name
func findPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir %s: %w", dir, err)
	}

	var docs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			docs = append(docs, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(docs)
	return docs, nil
}
