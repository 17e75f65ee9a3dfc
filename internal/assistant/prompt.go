package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"finmind/internal/core"
)

const baseInstruction = `You are FinMind, a strict financial assistant.
Your goal is to manage and remind the user about EMIs, bills, subscriptions, loans, and financial deadlines.

Current Date: %s

Rules:
1. Always check the provided JSON financial database before answering.
2. Give exact dates and amounts.
3. Speak in short, clear sentences.
4. If user asks "today reminders", list only items where due_date equals %s.
5. If no dues are found for a query, clearly say "No payments due." or specific to the query.
6. Prioritize high priority items in your response.
7. Never guess. Only respond using stored data.
8. Provide summary if asked monthly or yearly.
9. Always format currency clearly, defaulting to the currency implied by the data.`

const bulletStyleInstruction = `10. Use bullet points and concise formatting.`

const voiceStyleInstruction = `10. Convert the response to a natural speech style: conversational, no robotic lists, suitable for reading aloud.`

// BuildSystemInstruction assembles the fixed preamble, the current date,
// the style rules for the requested mode and the full snapshot. The
// voice flag is communicated only here; the same text model serves both
// modes.
func BuildSystemInstruction(snapshot []core.FinancialItem, today time.Time, voiceMode bool) (string, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize snapshot: %w", err)
	}

	date := today.UTC().Format(core.DateLayout)

	var b strings.Builder
	fmt.Fprintf(&b, baseInstruction, date, date)
	b.WriteString("\n")
	if voiceMode {
		b.WriteString(voiceStyleInstruction)
	} else {
		b.WriteString(bulletStyleInstruction)
	}
	b.WriteString("\n\nFinancial Database:\n")
	b.Write(data)

	return b.String(), nil
}
