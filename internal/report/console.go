package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hamed0406/agentprobe/internal/domain"
)

var labels = map[string]string{
	domain.CheckConnectivity:      "🔗 Connectivity Test",
	domain.CheckAgentsList:        "📋 Agents List Test",
	domain.CheckGenerationNoKey:   "🎵 Music Gen (No Key)",
	domain.CheckGenerationWithKey: "🔑 Music Gen (With Key)",
}

var troubleshootingTips = []string{
	"Check if the edge function is deployed",
	"Verify the base URL is correct",
	"Check the console logs in Supabase for more details",
}

// Console renders the run to a writer, one section per check plus the summary.
type Console struct {
	Out io.Writer
}

func NewConsole(out io.Writer) *Console { return &Console{Out: out} }

func (c *Console) Report(ctx context.Context, results []domain.CheckResult) error {
	for _, r := range results {
		c.separator(label(r.Name))
		if r.StatusCode != 0 {
			fmt.Fprintf(c.Out, "📊 Status: %d\n", r.StatusCode)
		}
		if r.Detail != "" {
			fmt.Fprintf(c.Out, "📄 %s\n", r.Detail)
		}
	}

	c.separator("Test Results Summary")
	for _, r := range results {
		fmt.Fprintf(c.Out, "%s: %s\n", label(r.Name), verdict(r.Outcome))
	}

	if domain.NeedsTroubleshooting(results) {
		fmt.Fprintln(c.Out, "\n💡 Troubleshooting Tips:")
		for _, tip := range troubleshootingTips {
			fmt.Fprintf(c.Out, "  • %s\n", tip)
		}
	}

	fmt.Fprintln(c.Out, "\n🏁 Test completed!")
	return nil
}

func (c *Console) separator(title string) {
	fmt.Fprintln(c.Out, "\n"+strings.Repeat("=", 60))
	if title != "" {
		fmt.Fprintf(c.Out, "🎼 %s\n", title)
		fmt.Fprintln(c.Out, strings.Repeat("=", 60))
	}
}

func label(name string) string {
	if l, ok := labels[name]; ok {
		return l
	}
	return name
}

func verdict(o domain.Outcome) string {
	switch o {
	case domain.OutcomePass:
		return "✅ PASS"
	case domain.OutcomeTimeout:
		return "⏰ TIMEOUT"
	case domain.OutcomeSkipped:
		return "⏭️ SKIPPED"
	default:
		return "❌ FAIL"
	}
}
