package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"quotedesk/internal/adapter/persistence/repository"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/infrastructure/lock"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func seedStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.json")
	repo := repository.NewQuoteFileRepository(path, lock.NewLocalLocker())
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, q := range []entities.Quote{
		{ID: "QUOTE_1", ServiceType: entities.ServiceTypeDirect, CleaningType: "입주청소",
			Contact: entities.QuoteContact{Name: "김철수", Phone: "010-1111-2222"}, Status: entities.QuoteStatusCompleted},
		{ID: "QUOTE_2", ServiceType: entities.ServiceTypePartner, CleaningType: "사무실청소",
			Contact: entities.QuoteContact{Name: "이영희", Phone: "010-3333-4444"},
			Location: entities.QuoteLocation{Address: "서울 마포구"}, Status: entities.QuoteStatusNew},
	} {
		q.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		q.SubmittedAt = q.CreatedAt
		if _, err := repo.Append(context.Background(), q); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return path
}

func TestRootHelp(t *testing.T) {
	if _, err := executeCommand("--help"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	formatFlag := root.PersistentFlags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("expected --format flag to exist")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("expected --format default 'text', got %q", formatFlag.DefValue)
	}
	if root.PersistentFlags().Lookup("file") == nil {
		t.Fatal("expected --file flag to exist")
	}
}

func TestListCmd(t *testing.T) {
	path := seedStore(t)

	out, err := executeCommand("list", "--file", path)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[1], "QUOTE_2") {
		t.Fatalf("expected open quote first:\n%s", out)
	}

	out, err = executeCommand("list", "--file", path, "--format", "json", "--search", "김철")
	if err != nil {
		t.Fatalf("list json: %v", err)
	}
	var quotes []entities.Quote
	if err := json.Unmarshal([]byte(out), &quotes); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(quotes) != 1 || quotes[0].ID != "QUOTE_1" {
		t.Fatalf("unexpected filter result %+v", quotes)
	}
}

func TestShowAndStatusCmd(t *testing.T) {
	path := seedStore(t)

	if _, err := executeCommand("show", "QUOTE_404", "--file", path); err == nil {
		t.Fatalf("expected not found error")
	}

	out, err := executeCommand("status", "QUOTE_2", "contacted", "--file", path)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "QUOTE_2 -> contacted") {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := executeCommand("status", "QUOTE_2", "archived", "--file", path); err == nil {
		t.Fatalf("expected invalid status error")
	}

	out, err = executeCommand("show", "QUOTE_2", "--file", path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "연락완료") || !strings.Contains(out, "Updated:") {
		t.Fatalf("unexpected detail:\n%s", out)
	}
}

func TestStatsCmd(t *testing.T) {
	path := seedStore(t)

	out, err := executeCommand("stats", "--file", path, "--format", "json")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	var stats struct {
		Total int `json:"total"`
		New   int `json:"new"`
	}
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.Total != 2 || stats.New != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestExportCmd(t *testing.T) {
	path := seedStore(t)

	out, err := executeCommand("export", "--file", path, "-o", "-")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(out, "접수시간,") || strings.Count(out, "\n") != 2 {
		t.Fatalf("unexpected csv:\n%s", out)
	}

	dest := filepath.Join(t.TempDir(), "quotes.xlsx")
	if _, err := executeCommand("export", "--file", path, "--type", "xlsx", "-o", dest); err != nil {
		t.Fatalf("export xlsx: %v", err)
	}
	if info, err := os.Stat(dest); err != nil || info.Size() == 0 {
		t.Fatalf("expected xlsx file, got %v", err)
	}

	if _, err := executeCommand("export", "--file", path, "--type", "pdf"); err == nil {
		t.Fatalf("expected unsupported type error")
	}
}
