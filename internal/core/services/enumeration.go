package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/emwalker/lenrmc/internal/core/domain"
	"github.com/emwalker/lenrmc/internal/core/ports/driven"
	"github.com/emwalker/lenrmc/internal/core/ports/driving"
	"github.com/emwalker/lenrmc/internal/logger"
)

// Ensure EnumerationService implements the interface.
var _ driving.EnumerationService = (*EnumerationService)(nil)

// cachePayloadVersion guards the cache envelope shape. Bump it when the
// envelope changes and old entries silently recompute.
const cachePayloadVersion = 1

// EnumerationService resolves reactant specifications and enumerates every
// mass- and charge-conserving breakup of each resolved system.
type EnumerationService struct {
	source driven.NuclideSource
	cache  driven.ReactionCache
}

// NewEnumerationService creates a new enumeration service.
// The cache parameter is optional (can be nil).
func NewEnumerationService(source driven.NuclideSource, cache driven.ReactionCache) *EnumerationService {
	return &EnumerationService{
		source: source,
		cache:  cache,
	}
}

// Resolve parses a specification into one reactant multiset per system.
// Systems are comma-separated; species within a system are joined by "+".
// A token names either a nuclide, optionally with an excitation level as
// in "7Li/i", or an element whose naturally occurring isotopes are
// expanded by cartesian product.
func (s *EnumerationService) Resolve(spec string) ([][]domain.Reactant, error) {
	reg, _, err := s.source.Registry()
	if err != nil {
		return nil, err
	}

	var combos [][]domain.Reactant
	seen := false
	for _, system := range strings.Split(spec, ",") {
		system = strings.TrimSpace(system)
		if system == "" {
			continue
		}
		seen = true
		expanded, err := s.resolveSystem(reg, system)
		if err != nil {
			return nil, err
		}
		combos = append(combos, expanded...)
	}
	if !seen {
		return nil, fmt.Errorf("empty reactant specification: %w", domain.ErrInvalidInput)
	}
	return combos, nil
}

// resolveSystem expands one system specification into concrete reactant
// multisets, one per choice of isotopes for its element shorthands.
func (s *EnumerationService) resolveSystem(reg *domain.Registry, system string) ([][]domain.Reactant, error) {
	var choices [][]*domain.Nuclide
	for _, token := range strings.Split(system, "+") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, fmt.Errorf("system %q has an empty species: %w", system, domain.ErrInvalidInput)
		}

		candidates, err := s.resolveToken(reg, token)
		if err != nil {
			return nil, err
		}
		choices = append(choices, candidates)
	}

	var combos [][]domain.Reactant
	for _, picks := range cartesian(choices) {
		combos = append(combos, collapseReactants(picks))
	}
	return combos, nil
}

// resolveToken maps one species token to its candidate nuclides: a single
// row for a nuclide label, or the stable isotopes of an element symbol.
func (s *EnumerationService) resolveToken(reg *domain.Registry, token string) ([]*domain.Nuclide, error) {
	label, level := token, domain.GroundState
	if i := strings.IndexByte(token, '/'); i >= 0 {
		label, level = token[:i], token[i+1:]
	}
	if n, ok := reg.Get(domain.Signature{Label: label, Level: level}); ok {
		return []*domain.Nuclide{n}, nil
	}

	if z, ok := domain.AtomicNumberOf(token); ok {
		return reg.StableByAtomicNumber(z), nil
	}

	return nil, fmt.Errorf("species %q: %w", token, domain.ErrUnresolvedSpecies)
}

// Enumerate resolves a specification and enumerates the reactions of every
// system, consulting the reaction cache when available.
func (s *EnumerationService) Enumerate(ctx context.Context, spec string, opts domain.EnumerationOptions) (*domain.Enumeration, error) {
	logger.Section("Reaction Enumeration")
	logger.Debug("Spec: %q", spec)

	combos, err := s.Resolve(spec)
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolved %d systems", len(combos))

	reg, _, err := s.source.Registry()
	if err != nil {
		return nil, err
	}

	enum := &domain.Enumeration{Spec: spec}
	for _, parents := range combos {
		reactions, err := s.systemReactions(ctx, reg, parents, opts)
		if err != nil {
			return nil, err
		}
		enum.Systems = append(enum.Systems, domain.System{
			Reactants: parents,
			Reactions: reactions,
		})
	}
	logger.Info("Enumerated %d reactions across %d systems", len(enum.Reactions()), len(enum.Systems))
	return enum, nil
}

// systemReactions returns the reactions of one system, from the cache when
// possible. A cache backend failure degrades to uncached computation.
func (s *EnumerationService) systemReactions(ctx context.Context, reg *domain.Registry, parents []domain.Reactant, opts domain.EnumerationOptions) ([]*domain.Reaction, error) {
	useCache := s.cache != nil && !opts.SkipCache

	var key string
	if useCache {
		key = cacheKey(parents, opts)
		cached, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			if reactions, ok := decodePayload(reg, parents, cached); ok {
				logger.Debug("Cache hit %s", key)
				return reactions, nil
			}
			logger.Warn("Recomputing undecodable cache entry %s", key)
		case errors.Is(err, domain.ErrNotFound):
			logger.Debug("Cache miss %s", key)
		default:
			logger.Warn("Reaction cache unavailable, computing uncached: %v", err)
			useCache = false
		}
	}

	reactions := computeReactions(reg, parents, opts)

	if useCache {
		payload, err := encodePayload(reactions)
		if err != nil {
			return nil, fmt.Errorf("encoding reaction cache entry: %w", err)
		}
		if err := s.cache.Put(ctx, key, payload); err != nil {
			logger.Warn("Storing reaction cache entry: %v", err)
		}
	}
	return reactions, nil
}

// computeReactions enumerates every breakup of the parents' combined mass
// and charge, expanding each fragment to all of its excitation levels.
func computeReactions(reg *domain.Registry, parents []domain.Reactant, opts domain.EnumerationOptions) []*domain.Reaction {
	total := domain.SideTotal(parents)

	var reactions []*domain.Reaction
	for _, partition := range domain.Partitions(total) {
		groups := make([][]*domain.Nuclide, 0, len(partition))
		viable := true
		for _, pair := range partition {
			group := reg.IsomerGroup(pair)
			if len(group) == 0 {
				viable = false
				break
			}
			groups = append(groups, group)
		}
		if !viable {
			continue
		}

		for _, picks := range cartesian(groups) {
			r := domain.NewReaction(parents, collapseReactants(picks))
			if !keepReaction(r, opts) {
				continue
			}
			reactions = append(reactions, r)
		}
	}
	return reactions
}

// keepReaction applies the enumeration filters.
func keepReaction(r *domain.Reaction, opts domain.EnumerationOptions) bool {
	if opts.LowerBoundKev != nil && r.QValueKev() <= *opts.LowerBoundKev {
		return false
	}
	if opts.DaughterCount > 0 && r.DaughterCount() != opts.DaughterCount {
		return false
	}
	return true
}

// cartesian returns every way of picking one element from each group, the
// last group varying fastest.
func cartesian(groups [][]*domain.Nuclide) [][]*domain.Nuclide {
	if len(groups) == 0 {
		return nil
	}
	for _, g := range groups {
		if len(g) == 0 {
			return nil
		}
	}

	indices := make([]int, len(groups))
	var out [][]*domain.Nuclide
	for {
		pick := make([]*domain.Nuclide, len(groups))
		for i, j := range indices {
			pick[i] = groups[i][j]
		}
		out = append(out, pick)

		i := len(indices) - 1
		for ; i >= 0; i-- {
			indices[i]++
			if indices[i] < len(groups[i]) {
				break
			}
			indices[i] = 0
		}
		if i < 0 {
			return out
		}
	}
}

// collapseReactants folds repeated species into counted reactants,
// keeping first-occurrence order.
func collapseReactants(picks []*domain.Nuclide) []domain.Reactant {
	var side []domain.Reactant
	position := make(map[domain.Signature]int, len(picks))
	for _, n := range picks {
		sig := n.Signature()
		if i, ok := position[sig]; ok {
			side[i].Count++
			continue
		}
		position[sig] = len(side)
		side = append(side, domain.Reactant{Count: 1, Nuclide: n})
	}
	return side
}

// ==================== Cache codec ====================

// cacheReactant is the serialized form of one counted species.
type cacheReactant struct {
	Count int    `json:"count"`
	Label string `json:"label"`
	Level string `json:"level"`
}

// cacheReaction stores a reaction's daughters by signature. The Q value is
// informational; reactions are rebuilt against the current table.
type cacheReaction struct {
	QKev  float64         `json:"q_kev"`
	Right []cacheReactant `json:"right"`
}

// cacheEnvelope is the versioned cache payload.
type cacheEnvelope struct {
	Version   int             `json:"version"`
	Reactions []cacheReaction `json:"reactions"`
}

// cacheRequest is the canonical form of an enumeration request hashed
// into the cache key.
type cacheRequest struct {
	LowerBoundKev *float64        `json:"lower_bound_kev"`
	DaughterCount int             `json:"daughter_count"`
	Parents       []cacheReactant `json:"parents"`
}

// cacheKey digests the parents and result-affecting options.
func cacheKey(parents []domain.Reactant, opts domain.EnumerationOptions) string {
	req := cacheRequest{
		LowerBoundKev: opts.LowerBoundKev,
		DaughterCount: opts.DaughterCount,
		Parents:       toCacheReactants(parents),
	}
	sort.Slice(req.Parents, func(i, j int) bool {
		a, b := req.Parents[i], req.Parents[j]
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.Level < b.Level
	})

	payload, err := json.Marshal(req)
	if err != nil {
		// A struct of numbers and strings cannot fail to marshal.
		panic(err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func toCacheReactants(side []domain.Reactant) []cacheReactant {
	out := make([]cacheReactant, 0, len(side))
	for _, r := range side {
		out = append(out, cacheReactant{
			Count: r.Count,
			Label: r.Nuclide.Label,
			Level: r.Nuclide.ExcitationLevel,
		})
	}
	return out
}

// encodePayload serializes a reaction list for the cache.
func encodePayload(reactions []*domain.Reaction) ([]byte, error) {
	env := cacheEnvelope{
		Version:   cachePayloadVersion,
		Reactions: make([]cacheReaction, 0, len(reactions)),
	}
	for _, r := range reactions {
		env.Reactions = append(env.Reactions, cacheReaction{
			QKev:  r.QValueKev(),
			Right: toCacheReactants(r.RightSide),
		})
	}
	return json.Marshal(env)
}

// decodePayload rebuilds reactions from a cache payload against the
// current registry. Any unknown signature or version invalidates the
// whole payload.
func decodePayload(reg *domain.Registry, parents []domain.Reactant, payload []byte) ([]*domain.Reaction, bool) {
	var env cacheEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, false
	}
	if env.Version != cachePayloadVersion {
		return nil, false
	}

	reactions := make([]*domain.Reaction, 0, len(env.Reactions))
	for _, cr := range env.Reactions {
		right := make([]domain.Reactant, 0, len(cr.Right))
		for _, d := range cr.Right {
			n, ok := reg.Get(domain.Signature{Label: d.Label, Level: d.Level})
			if !ok {
				return nil, false
			}
			right = append(right, domain.Reactant{Count: d.Count, Nuclide: n})
		}
		reactions = append(reactions, domain.NewReaction(parents, right))
	}
	return reactions, true
}
