package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// URIScheme is the custom URI scheme for lenrmc resources.
	uriScheme = "lenrmc://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the experimental record.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "studies",
		Name:        "studies",
		Description: "Recorded experimental observations of isotopic change",
		MIMEType:    "application/json",
	}, s.handleStudiesResource)

	// Template for the isotopes of an element.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "elements/{element}/isotopes",
		Name:        "element-isotopes",
		Description: "Known isotopes of an element given by symbol or atomic number",
		MIMEType:    "application/json",
	}, s.handleIsotopesResource)
}

// handleStudiesResource returns the recorded experimental observations.
func (s *Server) handleStudiesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Studies == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	studies, err := s.ports.Studies.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing studies: %w", err)
	}

	// Build simplified study list.
	type studyInfo struct {
		Label       string `json:"label"`
		Change      string `json:"change"`
		Reference   string `json:"reference"`
		Description string `json:"description"`
	}

	infos := make([]studyInfo, len(studies))
	for i, study := range studies {
		infos[i] = studyInfo{
			Label:       study.Label,
			Change:      string(study.Change),
			Reference:   study.Reference,
			Description: study.Description,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling studies: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleIsotopesResource returns the isotopes of a specific element.
func (s *Server) handleIsotopesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Nuclides == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract element from URI: lenrmc://elements/{element}/isotopes
	element := extractElement(req.Params.URI)
	if element == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	isotopes, err := s.ports.Nuclides.Isotopes(element, false)
	if err != nil {
		return nil, fmt.Errorf("listing isotopes: %w", err)
	}

	// Build simplified isotope list.
	type isotopeInfo struct {
		Label         string  `json:"label"`
		MassNumber    int     `json:"mass_number"`
		AtomicNumber  int     `json:"atomic_number"`
		MassExcessKev float64 `json:"mass_excess_kev"`
		Stable        bool    `json:"stable"`
	}

	infos := make([]isotopeInfo, len(isotopes))
	for i, n := range isotopes {
		infos[i] = isotopeInfo{
			Label:         n.FullLabel(),
			MassNumber:    n.MassNumber,
			AtomicNumber:  n.AtomicNumber,
			MassExcessKev: n.MassExcessKev,
			Stable:        n.Stable,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling isotopes: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractElement extracts the element from a URI like lenrmc://elements/{element}/isotopes.
func extractElement(uri string) string {
	const prefix = uriScheme + "elements/"
	const suffix = "/isotopes"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
