// Package cli is the shared front-end behind every cmd/* binary. Each
// binary's main.go is a ~20-line shim that names its engine and calls
// Run; Run owns argument parsing, graph loading/generation, timing,
// validation, and both the styled and JSON report formats — one copy
// of the plumbing instead of six.
//
// Grounded on lanl-find-frustration/main.go's flag/notify/checkError
// shape (flag.NewFlagSet, a dedicated stderr logger, explicit exit
// codes) and on terminal-velocity's cmd/accounts/main.go for the
// "subcommand binary delegates to a shared package" layering. The
// styled report borrows TitleStyle/SuccessStyle/ErrorStyle/MutedStyle
// from terminal-velocity's internal/tui/ui_components.go, adapted from
// a game HUD to a one-shot CLI summary.
package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/term"

	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/graphgen"
	"github.com/katalvlaran/maxmatch/greedy"
	"github.com/katalvlaran/maxmatch/internal/applog"
	"github.com/katalvlaran/maxmatch/mate"
	"github.com/katalvlaran/maxmatch/matching"
	"github.com/katalvlaran/maxmatch/matchio"
	"github.com/katalvlaran/maxmatch/validate"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonReport is the --json output shape.
type jsonReport struct {
	RunID           string `json:"run_id"`
	Engine          string `json:"engine"`
	Vertices        int    `json:"vertices"`
	Edges           int    `json:"edges"`
	GreedyBaseline  int    `json:"greedy_baseline,omitempty"`
	MatchingSize    int    `json:"matching_size"`
	MatchedVertices int    `json:"matched_vertices"`
	ElapsedMS       int64  `json:"elapsed_ms"`
	Valid           bool   `json:"valid"`
	BadEdges        int    `json:"bad_edges,omitempty"`
	OverMatched     int    `json:"over_matched,omitempty"`
}

// Run parses args for the named engine ("hopcroftkarp", "blossomsimple",
// "gabowsimple", "gabowscaling", "blossomfull", "micalivazirani"), loads
// or generates a graph, runs the engine, validates the result, and
// prints a report. Returns the process exit code: 0 once a matching has
// been computed and reported (a failed validation is shown in the report
// and does not change the exit code), 1 on any usage, I/O, or engine error.
func Run(engineName string, args []string) int {
	logger := applog.New(applog.Config{Level: "info", Writer: os.Stderr}).WithComponent(engineName)

	fs := flag.NewFlagSet(engineName, flag.ContinueOnError)
	useFirstFit := fs.Bool("greedy", false, "report a FirstFit greedy baseline before running the engine")
	useMinDegree := fs.Bool("greedy-md", false, "report a MinDegree greedy baseline before running the engine")
	genSpec := fs.String("gen", "", "generate a graph instead of reading a file: petersen, cycle:N, complete:N, bipartite:M,N, sparse:N,P[,seed], regular:N,D[,seed]")
	wantJSON := fs.Bool("json", false, "emit a JSON report instead of the styled one")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [--greedy|--greedy-md] [--gen spec] [--json] [filename]\n", engineName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	var g *graph.Graph
	var err error
	switch {
	case *genSpec != "":
		g, err = generateGraph(*genSpec)
	case fs.NArg() == 1:
		g, err = loadGraph(fs.Arg(0))
	default:
		fs.Usage()
		return 1
	}
	if err != nil {
		logger.Error("loading graph: %v", err)
		return 1
	}

	engine, err := matching.Lookup(engineName)
	if err != nil {
		logger.Error("%v", err)
		return 1
	}

	greedyBaseline := -1
	if *useFirstFit || *useMinDegree {
		scratch := mate.NewStore(g.N())
		if *useMinDegree {
			greedy.MinDegree(g, scratch)
		} else {
			greedy.FirstFit(g, scratch)
		}
		greedyBaseline = scratch.Size()
		logger.Debug("greedy baseline: %d pairs", greedyBaseline)
	}

	start := time.Now()
	result, err := engine.MaximumMatching(g)
	elapsed := time.Since(start)
	if err != nil {
		logger.Error("matching: %v", err)
		return 1
	}

	report := validate.Check(g, result.Pairs)
	runID := uuid.New().String()

	if *wantJSON {
		writeJSONReport(os.Stdout, jsonReport{
			RunID:           runID,
			Engine:          engineName,
			Vertices:        g.N(),
			Edges:           g.EdgeCount(),
			GreedyBaseline:  greedyBaseline,
			MatchingSize:    report.MatchingSize,
			MatchedVertices: report.MatchedVertices,
			ElapsedMS:       elapsed.Milliseconds(),
			Valid:           report.Passed(),
			BadEdges:        len(report.BadEdges),
			OverMatched:     len(report.OverMatched),
		})
	} else {
		writeStyledReport(os.Stdout, engineName, runID, g, result, greedyBaseline, elapsed, report)
	}

	return 0
}

func writeJSONReport(w io.Writer, rep jsonReport) {
	enc := jsonAPI.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(rep)
}

func writeStyledReport(w io.Writer, engineName, runID string, g *graph.Graph, result matching.Result, greedyBaseline int, elapsed time.Duration, report validate.Report) {
	title, ok, bad, muted := titleStyle, okStyle, errorStyle, mutedStyle
	if f, isFile := w.(*os.File); !isFile || !term.IsTerminal(int(f.Fd())) {
		title, ok, bad, muted = lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()
	}

	fmt.Fprintln(w, title.Render(fmt.Sprintf("=== %s ===", engineName)))
	fmt.Fprintf(w, "run:       %s\n", muted.Render(runID))
	fmt.Fprintf(w, "vertices:  %d\n", g.N())
	fmt.Fprintf(w, "edges:     %d\n", g.EdgeCount())
	if greedyBaseline >= 0 {
		fmt.Fprintf(w, "greedy:    %d pairs\n", greedyBaseline)
	}
	fmt.Fprintf(w, "matching:  %d pairs\n", len(result.Pairs))
	fmt.Fprintf(w, "elapsed:   %s\n", elapsed)
	if report.Passed() {
		fmt.Fprintln(w, ok.Render("validation: PASSED"))
	} else {
		fmt.Fprintln(w, bad.Render("validation: FAILED"))
		fmt.Fprint(w, report.String())
	}
}

// loadGraph opens filename and reads it as a Matrix Market file (by
// ".mtx"/".mm" extension, or by sniffing a leading "%%MatrixMarket"
// banner) or an edge-list file otherwise.
func loadGraph(filename string) (*graph.Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if strings.HasSuffix(filename, ".mtx") || strings.HasSuffix(filename, ".mm") || sniffMatrixMarket(br) {
		return matchio.ReadMatrixMarket(br)
	}

	return matchio.ReadEdgeList(br)
}

func sniffMatrixMarket(br *bufio.Reader) bool {
	peek, _ := br.Peek(15)

	return strings.HasPrefix(string(peek), "%%MatrixMarket")
}

// generateGraph builds a graph from a "kind[:params]" spec string
// instead of reading a file.
func generateGraph(spec string) (*graph.Graph, error) {
	kind, params, _ := strings.Cut(spec, ":")
	fields := strings.Split(params, ",")

	switch kind {
	case "petersen":
		return graphgen.Petersen()
	case "cycle":
		n, err := strconv.Atoi(params)
		if err != nil {
			return nil, fmt.Errorf("cli: cycle:N needs an integer N: %w", err)
		}

		return graphgen.Cycle(n)
	case "complete":
		n, err := strconv.Atoi(params)
		if err != nil {
			return nil, fmt.Errorf("cli: complete:N needs an integer N: %w", err)
		}

		return graphgen.Complete(n)
	case "bipartite":
		if len(fields) != 2 {
			return nil, fmt.Errorf("cli: bipartite:M,N needs two integers, got %q", params)
		}
		m, err1 := strconv.Atoi(fields[0])
		n, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("cli: bipartite:M,N needs two integers, got %q", params)
		}

		return graphgen.CompleteBipartite(m, n)
	case "sparse":
		if len(fields) < 2 {
			return nil, fmt.Errorf("cli: sparse:N,P[,seed] needs at least N and P, got %q", params)
		}
		n, err1 := strconv.Atoi(fields[0])
		p, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("cli: sparse:N,P[,seed] malformed: %q", params)
		}
		opts, err := seedOption(fields, 2)
		if err != nil {
			return nil, err
		}

		return graphgen.RandomSparse(n, p, opts...)
	case "regular":
		if len(fields) < 2 {
			return nil, fmt.Errorf("cli: regular:N,D[,seed] needs at least N and D, got %q", params)
		}
		n, err1 := strconv.Atoi(fields[0])
		d, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("cli: regular:N,D[,seed] malformed: %q", params)
		}
		opts, err := seedOption(fields, 2)
		if err != nil {
			return nil, err
		}

		return graphgen.RandomRegular(n, d, opts...)
	default:
		return nil, fmt.Errorf("cli: unknown --gen kind %q", kind)
	}
}

func seedOption(fields []string, idx int) ([]graphgen.Option, error) {
	if len(fields) <= idx {
		return nil, nil
	}
	seed, err := strconv.ParseInt(fields[idx], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cli: malformed seed %q: %w", fields[idx], err)
	}

	return []graphgen.Option{graphgen.WithSeed(seed)}, nil
}
