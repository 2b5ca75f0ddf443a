package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/maxmatch/internal/cli"
)

func TestRunOnEdgeListFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.edges")
	if err := os.WriteFile(path, []byte("4 3\n0 1\n1 2\n2 3\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if code := cli.Run("hopcroftkarp", []string{path}); code != 0 {
		t.Errorf("Run() = %d; want 0", code)
	}
}

func TestRunWithGeneratedPetersen(t *testing.T) {
	if code := cli.Run("blossomfull", []string{"--gen", "petersen"}); code != 0 {
		t.Errorf("Run() = %d; want 0", code)
	}
}

func TestRunWithGreedyFlag(t *testing.T) {
	if code := cli.Run("gabowsimple", []string{"--greedy-md", "--gen", "cycle:8"}); code != 0 {
		t.Errorf("Run() = %d; want 0", code)
	}
}

func TestRunWithJSONFlag(t *testing.T) {
	if code := cli.Run("micalivazirani", []string{"--json", "--gen", "complete:5"}); code != 0 {
		t.Errorf("Run() = %d; want 0", code)
	}
}

func TestRunMissingFileArgument(t *testing.T) {
	if code := cli.Run("gabowscaling", nil); code != 1 {
		t.Errorf("Run() = %d; want 1 (usage error)", code)
	}
}

func TestRunUnknownGenKind(t *testing.T) {
	if code := cli.Run("blossomsimple", []string{"--gen", "nonsense"}); code != 1 {
		t.Errorf("Run() = %d; want 1", code)
	}
}
