package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

// EnumerateInput is the input schema for the enumerate_reactions tool.
type EnumerateInput struct {
	Spec          string   `json:"spec" jsonschema:"the reactant specification, e.g. p+7Li or H+Li"`
	LowerBoundKev *float64 `json:"lower_bound_kev,omitempty" jsonschema:"keep reactions whose Q value is strictly above this many keV"`
	Limit         int      `json:"limit,omitempty" jsonschema:"maximum number of reactions to return (default 50)"`
}

// EnumerateOutput is the output schema for the enumerate_reactions tool.
type EnumerateOutput struct {
	Reactions []ReactionOutput `json:"reactions"`
	Count     int              `json:"count"`
}

// ReactionOutput represents a single enumerated reaction.
type ReactionOutput struct {
	Reaction string   `json:"reaction"`
	QKev     float64  `json:"q_kev"`
	Notes    []string `json:"notes,omitempty"`
}

// DecayInput is the input schema for the decay_scenario tool.
type DecayInput struct {
	Spec             string   `json:"spec" jsonschema:"the parent nuclide specification, e.g. 8Be or 212Po"`
	Moles            float64  `json:"moles,omitempty" jsonschema:"moles of starting material (default 1)"`
	Seconds          float64  `json:"seconds,omitempty" jsonschema:"elapsed time in seconds"`
	Screening        float64  `json:"screening,omitempty" jsonschema:"electron screening applied to every channel"`
	IsotopicFraction *float64 `json:"isotopic_fraction,omitempty" jsonschema:"override the natural abundance fraction, 0 to 1"`
	ActiveFraction   *float64 `json:"active_fraction,omitempty" jsonschema:"fraction of the inventory that participates, 0 to 1"`
}

// DecayOutput is the output schema for the decay_scenario tool.
type DecayOutput struct {
	Channels             []ChannelOutput `json:"channels"`
	Count                int             `json:"count"`
	RemainingActiveAtoms float64         `json:"remaining_active_atoms"`
	ActivityBq           float64         `json:"activity_bq"`
	PowerW               float64         `json:"power_w"`
}

// ChannelOutput represents a single decay channel.
type ChannelOutput struct {
	Channel              string  `json:"channel"`
	QMev                 float64 `json:"q_mev"`
	TunnelingProbability float64 `json:"tunneling_probability"`
	PartialHalfLifeS     float64 `json:"partial_half_life_s"`
	ActivityBq           float64 `json:"activity_bq"`
	Watts                float64 `json:"watts"`
}

// LookupInput is the input schema for the lookup_nuclide tool.
type LookupInput struct {
	Label string `json:"label" jsonschema:"the nuclide label, e.g. 7Li"`
	Level string `json:"level,omitempty" jsonschema:"excitation level, 0 or empty for the ground state"`
}

// LookupOutput is the output schema for the lookup_nuclide tool.
type LookupOutput struct {
	Label            string  `json:"label"`
	Level            string  `json:"level"`
	MassNumber       int     `json:"mass_number"`
	AtomicNumber     int     `json:"atomic_number"`
	MassExcessKev    float64 `json:"mass_excess_kev"`
	AbundancePercent float64 `json:"abundance_percent"`
	Stable           bool    `json:"stable"`
	HalfLife         string  `json:"half_life,omitempty"`
	SpinParity       string  `json:"spin_parity,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "enumerate_reactions",
		Description: "Enumerate the candidate nuclear reactions of a reactant specification",
	}, s.handleEnumerate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "decay_scenario",
		Description: "Model the two-body decay kinetics of a parent nuclide over time",
	}, s.handleDecay)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup_nuclide",
		Description: "Look up a nuclide in the indexed table by label",
	}, s.handleLookup)
}

// handleEnumerate handles the enumerate_reactions tool invocation.
func (s *Server) handleEnumerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EnumerateInput,
) (*mcp.CallToolResult, EnumerateOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 50
	}

	opts := domain.EnumerationOptions{LowerBoundKev: input.LowerBoundKev}
	enumeration, err := s.ports.Enumeration.Enumerate(ctx, input.Spec, opts)
	if err != nil {
		return nil, EnumerateOutput{}, err
	}

	reactions := domain.SortReactionsForDisplay(enumeration.Reactions())
	if len(reactions) > limit {
		reactions = reactions[:limit]
	}

	output := EnumerateOutput{
		Reactions: make([]ReactionOutput, len(reactions)),
		Count:     len(reactions),
	}

	for i, r := range reactions {
		output.Reactions[i] = ReactionOutput{
			Reaction: r.String(),
			QKev:     r.QValueKev(),
			Notes:    r.Notes(),
		}
	}

	return nil, output, nil
}

// handleDecay handles the decay_scenario tool invocation.
func (s *Server) handleDecay(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DecayInput,
) (*mcp.CallToolResult, DecayOutput, error) {
	if s.ports.Decay == nil {
		return nil, DecayOutput{}, ErrMissingDecayService
	}

	moles := input.Moles
	if moles <= 0 {
		moles = 1
	}

	opts := domain.ScenarioOptions{
		MolarQuantity:    moles,
		ElapsedSeconds:   input.Seconds,
		Screening:        input.Screening,
		IsotopicFraction: input.IsotopicFraction,
		ActiveFraction:   input.ActiveFraction,
	}

	scenario, err := s.ports.Decay.Scenario(ctx, input.Spec, opts, domain.EnumerationOptions{DaughterCount: 2})
	if err != nil {
		return nil, DecayOutput{}, err
	}

	output := DecayOutput{
		Channels:             make([]ChannelOutput, len(scenario.Rows)),
		Count:                len(scenario.Rows),
		RemainingActiveAtoms: scenario.RemainingActiveAtoms(),
		ActivityBq:           scenario.Activity(),
		PowerW:               scenario.Power().Watts,
	}

	for i, row := range scenario.Rows {
		output.Channels[i] = ChannelOutput{
			Channel:              row.Channel(),
			QMev:                 row.QValueMev,
			TunnelingProbability: row.TunnelingProbability,
			PartialHalfLifeS:     row.PartialHalfLifeS,
			ActivityBq:           row.PartialActivity,
			Watts:                row.Watts,
		}
	}

	return nil, output, nil
}

// handleLookup handles the lookup_nuclide tool invocation.
func (s *Server) handleLookup(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	if s.ports.Nuclides == nil {
		return nil, LookupOutput{}, ErrMissingNuclideCatalog
	}

	nuclide, ok := s.ports.Nuclides.Lookup(input.Label, input.Level)
	if !ok {
		return nil, LookupOutput{}, fmt.Errorf("nuclide %q: %w", input.Label, domain.ErrNotFound)
	}

	output := LookupOutput{
		Label:            nuclide.Label,
		Level:            nuclide.ExcitationLevel,
		MassNumber:       nuclide.MassNumber,
		AtomicNumber:     nuclide.AtomicNumber,
		MassExcessKev:    nuclide.MassExcessKev,
		AbundancePercent: nuclide.IsotopicAbundance,
		Stable:           nuclide.Stable,
		HalfLife:         strings.TrimSpace(nuclide.HalfLife.String()),
		SpinParity:       nuclide.SpinParity,
	}

	return nil, output, nil
}
