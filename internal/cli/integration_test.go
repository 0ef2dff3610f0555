//go:build integration

package cli_test

import (
	"testing"

	"github.com/aidanlsb/when/internal/testutil"
)

// TestIntegration_ResolvePhrases runs the binary against a pinned Wednesday.
func TestIntegration_ResolvePhrases(t *testing.T) {
	w := testutil.NewWorkspace(t).WithToday("2025-06-11").Build()

	w.AssertResolves("today", "June 11, 2025")
	w.AssertResolves("Yesterday", "June 10, 2025")
	w.AssertResolves("last friday", "June 6, 2025")
	w.AssertResolves("last wednesday", "June 4, 2025")
	w.AssertResolves("this wednesday", "June 11, 2025")
	w.AssertResolves("wednesday", "June 18, 2025")
	w.AssertResolves("some random text", "some random text")
}

func TestIntegration_BatchWarnsOnPassthrough(t *testing.T) {
	w := testutil.NewWorkspace(t).WithToday("2025-06-11").Build()

	result := w.RunCLIWithStdin("today\nsoon\n", "resolve")
	result.MustSucceed(t)
	result.AssertHasWarning(t, "UNRECOGNIZED_PHRASE")
	if result.Meta == nil || result.Meta.Count != 2 || result.Meta.Today != "2025-06-11" {
		t.Fatalf("unexpected meta: %+v", result.Meta)
	}
}

func TestIntegration_StrictFails(t *testing.T) {
	w := testutil.NewWorkspace(t).Build()

	w.RunCLI("resolve", "someday", "--strict").MustFail(t, "UNRECOGNIZED_PHRASE")
}

func TestIntegration_ConfigSetChangesMatching(t *testing.T) {
	w := testutil.NewWorkspace(t).WithToday("2025-06-11").Build()

	w.AssertResolves("wednesdays", "June 18, 2025")

	w.RunCLI("config", "set", "resolve.match", "word").MustSucceed(t)
	w.AssertFileExists("config.toml")
	w.AssertFileContains("config.toml", `match = "word"`)

	w.AssertResolves("wednesdays", "wednesdays")
}

func TestIntegration_CalendarGroupsRelativeDates(t *testing.T) {
	w := testutil.NewWorkspace(t).
		WithToday("2025-06-11").
		WithFile("records.yaml", testutil.SampleRecords()).
		Build()

	result := w.RunCLI("calendar", w.File("records.yaml"))
	result.MustSucceed(t)
	result.AssertNoWarnings(t)

	var days []struct {
		Date string `json:"date"`
		Done int    `json:"done"`
	}
	result.DecodeData(t, &days)
	if len(days) != 2 || days[0].Date != "2025-06-06" || days[0].Done != 1 || days[1].Date != "2025-06-10" {
		t.Fatalf("unexpected days: %+v", days)
	}
}

func TestIntegration_InvalidConfigFails(t *testing.T) {
	w := testutil.NewWorkspace(t).WithConfig("[resolve]\nmatch = \"regex\"\n").Build()

	w.RunCLI("resolve", "today").MustFail(t, "CONFIG_INVALID")
}
