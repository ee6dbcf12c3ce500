// Command artifactprobe runs the artifact pipeline on saved replies and shows
// whether each one would be detached into a document.
//
// Usage:
//
//	artifactprobe --prompt "Write an article about focus" reply.md other.md
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"agent-chat-be/pkg/artifact"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type probeOptions struct {
	prompt    string
	agentID   string
	agentName string
	category  string
	stream    bool
	asJSON    bool
	chunk     int
}

type probeReport struct {
	File           string                   `json:"file"`
	IntentDetected bool                     `json:"intent_detected"`
	Path           artifact.SplitPath       `json:"path"`
	Structure      artifact.StructureReport `json:"structure"`
	Outcome        artifact.Outcome         `json:"outcome"`
	Stream         []artifact.StreamEvent   `json:"stream,omitempty"`
}

func (o probeOptions) agent() *artifact.AgentProfile {
	return &artifact.AgentProfile{ID: o.agentID, Name: o.agentName, Category: o.category}
}

func probe(file, content string, opts probeOptions) probeReport {
	decision := artifact.NewOrchestrator(nil).FromText(content, opts.prompt, opts.agent())

	report := probeReport{
		File:           file,
		IntentDetected: decision.IntentDetected,
		Path:           decision.Path,
		Structure:      artifact.AnalyzeStructure(content),
		Outcome:        decision.Outcome,
	}
	if opts.stream && decision.Outcome.Artifact != nil {
		report.Stream = artifact.StreamEvents(*decision.Outcome.Artifact, opts.chunk)
	}
	return report
}

func printReport(w io.Writer, r probeReport) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)

	bold.Fprintf(w, "== %s\n", r.File)
	if r.Outcome.Artifact != nil {
		green.Fprintf(w, "DOCUMENT  %q (%s)\n", r.Outcome.Artifact.Title, r.Path)
	} else {
		yellow.Fprintf(w, "INLINE    (%s)\n", r.Path)
	}

	signals := make([]string, 0, len(r.Structure.Signals))
	for _, s := range r.Structure.Signals {
		signals = append(signals, string(s))
	}
	fmt.Fprintf(w, "intent=%t length=%d words=%d signals=[%s] qualified=%t\n",
		r.IntentDetected, r.Structure.Length, r.Structure.Words, strings.Join(signals, ","), r.Structure.Qualified)
	fmt.Fprintf(w, "message: %s\n", preview(r.Outcome.Content, 120))
	if r.Outcome.Artifact != nil {
		fmt.Fprintf(w, "document: %d runes\n", len([]rune(r.Outcome.Artifact.Content)))
	}
	for _, evt := range r.Stream {
		fmt.Fprintf(w, "  %-24s %s\n", evt.Type, preview(evt.Title+evt.Content, 60))
	}
	fmt.Fprintln(w)
}

func preview(s string, max int) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

func newRootCmd() *cobra.Command {
	var opts probeOptions

	cmd := &cobra.Command{
		Use:   "artifactprobe [file...]",
		Short: "Show how the artifact pipeline splits saved replies",
		Long: `Reads assistant replies from files (or stdin with "-") and prints whether
each reply stays inline or is detached into a document, with the structural
signals behind the decision.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var reports []probeReport

			for _, file := range args {
				var data []byte
				var err error
				if file == "-" {
					data, err = io.ReadAll(cmd.InOrStdin())
				} else {
					data, err = os.ReadFile(file)
				}
				if err != nil {
					return fmt.Errorf("read %s: %w", file, err)
				}

				r := probe(file, string(data), opts)
				if opts.asJSON {
					reports = append(reports, r)
					continue
				}
				printReport(out, r)
			}

			if opts.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(reports)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.prompt, "prompt", "p", "", "user message that produced the reply")
	cmd.Flags().StringVar(&opts.agentID, "agent-id", "content", "agent id")
	cmd.Flags().StringVar(&opts.agentName, "agent-name", "Content Creator", "agent name")
	cmd.Flags().StringVar(&opts.category, "category", "content", "agent category")
	cmd.Flags().BoolVar(&opts.stream, "stream", false, "print the simulated document stream")
	cmd.Flags().IntVar(&opts.chunk, "chunk", artifact.DefaultChunkRunes, "runes per streamed content delta")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
