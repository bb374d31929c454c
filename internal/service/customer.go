package service

import (
	"context"
	"sort"
	"strings"

	"github.com/syemed/intake/internal/cache"
	"github.com/syemed/intake/internal/model"
	"github.com/syemed/intake/internal/repository"
)

const (
	// queries shorter than this never reach the repository
	minQueryLength = 2

	defaultSearchLimit = 15
)

// relevance blocks are additive, a candidate may collect several
const (
	scoreAssignedAgent = 1000
	scoreVisibleToAll  = 500
	scoreTaxIDExact    = 300
	scoreTaxIDContains = 200
	scoreNamePrefix    = 250
	scoreTextPrefix    = 150
	scoreTextContains  = 100
)

type CustomerService interface {
	Search(ctx context.Context, query string, customerType string, agent string, limit int) ([]model.CustomerMatch, error)
	Exists(ctx context.Context, taxID string) (bool, error)
	Create(ctx context.Context, input model.NewCustomerInput, agent string) (model.Customer, error)
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
}

type customerService struct {
	customerRepo  repository.CustomerRepository
	customerCache cache.CustomerCacheRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, customerCache cache.CustomerCacheRepository) CustomerService {
	return &customerService{customerRepo: customerRepo, customerCache: customerCache}
}

// Search ranks active customers against the typed query. The repository only
// narrows candidates, scoring and ordering happen here so an agent always
// sees their own customers first.
func (s *customerService) Search(ctx context.Context, query string, customerType string, agent string, limit int) ([]model.CustomerMatch, error) {
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < minQueryLength {
		return []model.CustomerMatch{}, nil
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}

	candidates, err := s.customerRepo.FindCandidates(ctx, trimmed, customerType)
	if err != nil {
		return nil, err
	}

	matches := rankCustomers(candidates, trimmed, agent)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (s *customerService) Exists(ctx context.Context, taxID string) (bool, error) {
	normalized := model.NormalizeTaxID(taxID)
	if normalized == "" {
		return false, nil
	}
	return s.customerRepo.ExistsByTaxID(ctx, normalized)
}

func (s *customerService) Create(ctx context.Context, input model.NewCustomerInput, agent string) (model.Customer, error) {
	assigned := make([]string, 0, 1)
	if agent != "" {
		assigned = append(assigned, agent)
	}

	c := model.Customer{
		Type:           input.Type,
		TradeName:      trimPtr(input.TradeName),
		LegalName:      trimPtr(input.LegalName),
		FullName:       trimPtr(input.FullName),
		TaxID:          model.NormalizeTaxID(input.TaxID),
		Phone:          strings.TrimSpace(input.Phone),
		Address:        strings.TrimSpace(input.Address),
		Email:          strings.TrimSpace(input.Email),
		ContactName:    strings.TrimSpace(input.ContactName),
		AssignedAgents: assigned,
		VisibleToAll:   true,
		Active:         true,
	}

	// the unique index is the real duplicate barrier, the repository maps
	// its violation to ErrDuplicateTaxID
	created, err := s.customerRepo.Create(ctx, c)
	if err != nil {
		return model.Customer{}, err
	}
	return created, nil
}

func (s *customerService) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	cached, err := s.customerCache.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cached != nil {
		return cached, nil
	}

	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, nil
	}

	if err := s.customerCache.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func rankCustomers(candidates []model.Customer, query string, agent string) []model.CustomerMatch {
	matches := make([]model.CustomerMatch, 0, len(candidates))
	for i := range candidates {
		score := scoreCustomer(&candidates[i], query, agent)
		if score <= 0 {
			continue
		}

		matches = append(matches, model.CustomerMatch{
			Customer:    candidates[i],
			DisplayName: candidates[i].DisplayName(),
			Score:       score,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].DisplayName < matches[j].DisplayName
	})
	return matches
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	if trimmed := strings.TrimSpace(*p); trimmed != "" {
		return &trimmed
	}
	return nil
}

func scoreCustomer(c *model.Customer, query string, agent string) int {
	lowered := model.LowerTrim(query)
	normalized := model.NormalizeTaxID(query)

	var score int
	if c.AssignedTo(agent) {
		score += scoreAssignedAgent
	}

	if c.VisibleToAll {
		score += scoreVisibleToAll
	}

	if normalized != "" {
		candidateID := model.NormalizeTaxID(c.TaxID)
		switch {
		case candidateID != "" && candidateID == normalized:
			score += scoreTaxIDExact
		case candidateID != "" && strings.Contains(candidateID, normalized):
			score += scoreTaxIDContains
		}
	}

	display := model.LowerTrim(c.DisplayName())
	searchable := c.SearchText()
	switch {
	case display != "" && strings.HasPrefix(display, lowered):
		score += scoreNamePrefix
	case strings.HasPrefix(searchable, lowered):
		score += scoreTextPrefix
	case strings.Contains(searchable, lowered):
		score += scoreTextContains
	}

	return score
}
