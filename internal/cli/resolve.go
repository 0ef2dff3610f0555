package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aidanlsb/when/internal/dates"
	"github.com/aidanlsb/when/internal/ui"
)

var resolveStrict bool

// resolveResult is the JSON shape of one resolved phrase.
type resolveResult struct {
	Phrase     string `json:"phrase"`
	Result     string `json:"result"`
	Recognized bool   `json:"recognized"`
	Kind       string `json:"kind"`
	Modifier   string `json:"modifier,omitempty"`
	Weekday    string `json:"weekday,omitempty"`
	Offset     int    `json:"offset"`
	Date       string `json:"date,omitempty"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [phrase...]",
	Short: "Resolve a relative date phrase to a calendar date",
	Long: `Resolves a phrase such as "last friday" to a date like "June 6, 2025".

Arguments are joined with spaces into one phrase. With no arguments and piped
input, each non-empty line of stdin is resolved separately.

Recognized phrases contain "today", "yesterday", or a weekday name optionally
qualified by "this" or "last". A bare weekday means its next occurrence, a full
week ahead when it names today. Anything else is printed back unchanged unless
--strict is set.

Examples:
  when resolve last friday
  when resolve "this saturday" --today 2025-12-30
  printf 'today\nlast monday\n' | when resolve --json`,
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	phrases, err := collectPhrases(cmd.InOrStdin(), args)
	if err != nil {
		return handleError(ErrFileReadError, err, "")
	}
	if len(phrases) == 0 {
		return handleErrorMsg(ErrMissingArgument, "no phrase given", "Pass a phrase as arguments or pipe one phrase per line")
	}

	resolver := newResolver()
	results := make([]resolveResult, 0, len(phrases))
	var unrecognized []string
	for _, phrase := range phrases {
		res, ok := resolver.ResolvePhrase(phrase)
		result := toResolveResult(phrase, res, ok)
		results = append(results, result)
		if !ok {
			unrecognized = append(unrecognized, phrase)
		}
		logger.Debug("resolved phrase",
			zap.String("phrase", phrase),
			zap.Bool("recognized", ok),
			zap.String("kind", result.Kind),
			zap.Int("offset", result.Offset),
		)
	}

	if resolveStrict && len(unrecognized) > 0 {
		return handleErrorWithDetails(
			ErrUnrecognizedPhrase,
			fmt.Sprintf("unrecognized phrase: %q", unrecognized[0]),
			"Use today, yesterday, or a weekday optionally preceded by this or last",
			map[string]interface{}{"phrases": unrecognized},
		)
	}

	if isJSONOutput() {
		meta := &Meta{Count: len(results), Today: referenceDate.Format(dates.DateLayout)}
		if len(unrecognized) > 0 {
			warnings := make([]Warning, 0, len(unrecognized))
			for _, p := range unrecognized {
				warnings = append(warnings, Warning{Code: WarnUnrecognized, Message: fmt.Sprintf("%q was returned unchanged", p)})
			}
			outputSuccessWithWarnings(results, warnings, meta)
			return nil
		}
		outputSuccess(results, meta)
		return nil
	}

	out := cmd.OutOrStdout()
	if len(results) == 1 {
		fmt.Fprintln(out, results[0].Result)
		return nil
	}
	styled := isTerminal(out)
	for _, r := range results {
		if styled {
			fmt.Fprintln(out, ui.Resolved(r.Phrase, r.Result, r.Recognized))
		} else {
			fmt.Fprintf(out, "%s\t%s\n", sanitizeField(r.Phrase), r.Result)
		}
	}
	return nil
}

func toResolveResult(phrase string, res dates.Resolution, ok bool) resolveResult {
	if !ok {
		return resolveResult{Phrase: phrase, Result: phrase, Kind: res.Kind.String()}
	}
	out := resolveResult{
		Phrase:     phrase,
		Result:     res.Formatted(),
		Recognized: true,
		Kind:       res.Kind.String(),
		Offset:     res.Offset,
		Date:       res.Date.Format(dates.DateLayout),
	}
	if res.Kind == dates.PhraseWeekday {
		out.Modifier = res.Modifier.String()
		out.Weekday = strings.ToLower(res.Weekday.String())
	}
	return out
}

// collectPhrases joins args into one phrase, or reads one phrase per line
// from in when there are no args and in is not a terminal.
func collectPhrases(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	if in == nil || isTerminal(in) {
		return nil, nil
	}

	var phrases []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		phrases = append(phrases, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return phrases, nil
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func sanitizeField(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveStrict, "strict", false, "Fail on phrases that are not recognized instead of echoing them")
	rootCmd.AddCommand(resolveCmd)
}
