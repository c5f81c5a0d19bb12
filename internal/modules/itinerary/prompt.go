package itinerary

import (
	"fmt"

	"tripsmith/internal/ai"
)

// SystemPrompt accompanies every itinerary user prompt.
const SystemPrompt = "You are a travel planner.\n" +
	"Return ONLY the itinerary in Markdown.\n" +
	"Follow the provided template headings exactly.\n" +
	"Do not include analysis, meta commentary, or tool/action text.\n"

const hardRequirements = "Hard requirements:\n" +
	"- Follow the template headings exactly.\n" +
	"- Provide realistic place suggestions, transit notes and approximate cost ranges.\n" +
	"- Include 2 optional swaps per day.\n" +
	"- If flight context is provided, align Day 1 with the arrival window and the last day with the departure window.\n" +
	"- Never invent exact flight prices or guaranteed schedules; refer to the provided links instead.\n" +
	"- Output only Markdown.\n" +
	"- Do not mention that you are using a template.\n"

// BuildUserPrompt wraps the filled template with the generation directive,
// the hard requirements and the caller's constraints. Empty constraints are
// still written out.
func BuildUserPrompt(filled, constraints, special string) string {
	return "Generate a complete itinerary using the template below.\n\n" +
		hardRequirements + "\n" +
		fmt.Sprintf("Extra constraints (if any): %s\n", constraints) +
		fmt.Sprintf("Special requests (if any): %s\n\n", special) +
		"TEMPLATE (filled inputs):\n" +
		"-------------------------\n" +
		filled + "\n"
}

// BuildPrompt renders tmpl for req and pairs the result with SystemPrompt.
func BuildPrompt(tmpl string, req ItineraryRequest) ai.Prompt {
	filled := Render(tmpl, TemplateKeys, TemplateValues(req).Lookup)
	return ai.Prompt{
		System: SystemPrompt,
		User:   BuildUserPrompt(filled, req.Constraints, req.SpecialRequests),
	}
}
