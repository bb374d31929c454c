package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	cacheMocks "github.com/syemed/intake/internal/cache/mocks"
	"github.com/syemed/intake/internal/model"
	rpsMocks "github.com/syemed/intake/internal/repository/mocks"
)

func ptr(s string) *string {
	return &s
}

type customerTestData struct {
	ctx         context.Context
	distributor *model.Customer
}

type customerServiceTestSuite struct {
	suite.Suite
	customerSvc       CustomerService
	customerRpsMock   *rpsMocks.CustomerRepository
	customerCacheMock *cacheMocks.CustomerCacheRepository
	testData          *customerTestData
}

func (s *customerServiceTestSuite) SetupSuite() {
	s.testData = &customerTestData{
		ctx: context.Background(),
		distributor: &model.Customer{
			ID:             42,
			Type:           model.CustomerTypeDistributor,
			TradeName:      ptr("Electromedicina Norte"),
			LegalName:      ptr("Electromedicina Norte S.A."),
			TaxID:          "30-71234567-8",
			Phone:          "+54 11 4321-5678",
			Email:          "ventas@electronorte.com",
			AssignedAgents: []string{"Lucas"},
			VisibleToAll:   false,
			Active:         true,
		},
	}
}

func (s *customerServiceTestSuite) SetupTest() {
	t := s.T()
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.customerCacheMock = cacheMocks.NewCustomerCacheRepository(t)
	s.customerSvc = NewCustomerService(s.customerRpsMock, s.customerCacheMock)
}

func (s *customerServiceTestSuite) TestFindByIDFromCache() {
	ctx := s.testData.ctx
	customer := s.testData.distributor

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()

	s.T().Log("customer must be found in cache")
	{
		_, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.customerRpsMock.AssertNotCalled(s.T(), "FindByID", ctx, customer.ID)
	}
}

func (s *customerServiceTestSuite) TestFindByIDNotFound() {
	ctx := s.testData.ctx
	customer := s.testData.distributor

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()

	s.T().Log("customer is missing in cache and in primary datasource")
	{
		c, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Nil(c, "no customer must be present but it was found")
		s.customerCacheMock.AssertNotCalled(s.T(), "Create", mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestFindByIDCached() {
	ctx := s.testData.ctx
	customer := s.testData.distributor

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.customerCacheMock.On("Create", ctx, customer).Return(nil).Once()

	s.T().Log("customer is not in cache, found in primary datasource and cached")
	{
		c, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotNil(c, "customer must be found")
		s.customerCacheMock.AssertCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestSearchShortQuerySkipsStorage() {
	ctx := s.testData.ctx

	s.T().Log("queries shorter than two characters must not touch storage")
	{
		for _, query := range []string{"", "a", "  4  "} {
			matches, err := s.customerSvc.Search(ctx, query, "", "Lucas", 0)
			s.Assert().NoError(err, "no error must be raised")
			s.Assert().Empty(matches, "no matches must be returned for query %q", query)
		}
		s.customerRpsMock.AssertNotCalled(s.T(), "FindCandidates", mock.Anything, mock.Anything, mock.Anything)
	}
}

func (s *customerServiceTestSuite) TestSearchRanksAssignedCustomersFirst() {
	ctx := s.testData.ctx

	candidates := []model.Customer{
		{
			ID:           7,
			Type:         model.CustomerTypeDistributor,
			TradeName:    ptr("Electro Sur"),
			VisibleToAll: true,
			Active:       true,
		},
		*s.testData.distributor,
	}

	s.customerRpsMock.On("FindCandidates", ctx, "electro", "").Return(candidates, nil).Once()

	s.T().Log("customer assigned to the searching agent must outrank a merely visible one")
	{
		matches, err := s.customerSvc.Search(ctx, "electro", "", "Lucas", 0)
		s.Assert().NoError(err, "no error must be raised")
		s.Require().Len(matches, 2, "both candidates match the query")
		s.Assert().Equal(s.testData.distributor.ID, matches[0].Customer.ID, "assigned customer must be first")
		s.Assert().GreaterOrEqual(matches[0].Score, scoreAssignedAgent, "assigned customer carries the agent block")
		s.Assert().Greater(matches[0].Score, matches[1].Score, "assigned customer must score higher")
	}
}

func (s *customerServiceTestSuite) TestSearchTaxIDExactBeatsContains() {
	ctx := s.testData.ctx
	query := "30-71234567-8"

	exact := *s.testData.distributor
	exact.VisibleToAll = true
	exact.AssignedAgents = nil

	containing := model.Customer{
		ID:           11,
		Type:         model.CustomerTypeDistributor,
		TradeName:    ptr("Insumos Andinos"),
		TaxID:        "3-30712345678-9",
		VisibleToAll: true,
		Active:       true,
	}

	s.customerRpsMock.On("FindCandidates", ctx, query, "").Return([]model.Customer{containing, exact}, nil).Once()

	s.T().Log("exact normalized CUIT match must outrank a contains match, never both")
	{
		matches, err := s.customerSvc.Search(ctx, query, "", "", 0)
		s.Assert().NoError(err, "no error must be raised")
		s.Require().Len(matches, 2, "both candidates match the query")
		s.Assert().Equal(exact.ID, matches[0].Customer.ID, "exact CUIT match must be first")
		s.Assert().Equal(scoreVisibleToAll+scoreTaxIDExact+scoreTextContains, matches[0].Score, "exact match gets the exact block only")
		s.Assert().Equal(scoreVisibleToAll+scoreTaxIDContains, matches[1].Score, "contains match gets the contains block only")
	}
}

func (s *customerServiceTestSuite) TestSearchAlphabeticalTieBreak() {
	ctx := s.testData.ctx

	candidates := []model.Customer{
		{ID: 2, Type: model.CustomerTypeInstitution, TradeName: ptr("Clinica del Valle"), VisibleToAll: true, Active: true},
		{ID: 1, Type: model.CustomerTypeInstitution, TradeName: ptr("Clinica Andina"), VisibleToAll: true, Active: true},
	}

	s.customerRpsMock.On("FindCandidates", ctx, "clinica", "").Return(candidates, nil).Once()

	s.T().Log("equal scores must be ordered alphabetically by display name")
	{
		matches, err := s.customerSvc.Search(ctx, "clinica", "", "", 0)
		s.Assert().NoError(err, "no error must be raised")
		s.Require().Len(matches, 2, "both candidates match the query")
		s.Assert().Equal(matches[0].Score, matches[1].Score, "both candidates score the same")
		s.Assert().Equal("Clinica Andina", matches[0].DisplayName, "alphabetical order must break the tie")
	}
}

func (s *customerServiceTestSuite) TestSearchObeysDefaultLimit() {
	ctx := s.testData.ctx

	candidates := make([]model.Customer, 0, 20)
	for i := 0; i < 20; i++ {
		candidates = append(candidates, model.Customer{
			ID:           int64(i + 1),
			Type:         model.CustomerTypeInstitution,
			TradeName:    ptr(fmt.Sprintf("Sanatorio %02d", i+1)),
			VisibleToAll: true,
			Active:       true,
		})
	}

	s.customerRpsMock.On("FindCandidates", ctx, "sanatorio", "").Return(candidates, nil).Once()

	s.T().Log("search must cap results at the default limit")
	{
		matches, err := s.customerSvc.Search(ctx, "sanatorio", "", "", 0)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Len(matches, defaultSearchLimit, "default limit must cap the result")
	}
}

func (s *customerServiceTestSuite) TestExistsEmptyTaxIDSkipsStorage() {
	ctx := s.testData.ctx

	s.T().Log("tax id without digits must not touch storage")
	{
		exists, err := s.customerSvc.Exists(ctx, "--..--")
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().False(exists, "no digits means no customer")
		s.customerRpsMock.AssertNotCalled(s.T(), "ExistsByTaxID", mock.Anything, mock.Anything)
	}
}

func (s *customerServiceTestSuite) TestExistsNormalizesTaxID() {
	ctx := s.testData.ctx

	s.customerRpsMock.On("ExistsByTaxID", ctx, "30712345678").Return(true, nil).Once()

	s.T().Log("tax id must be normalized before the lookup")
	{
		exists, err := s.customerSvc.Exists(ctx, "30-71234567-8")
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().True(exists, "customer must be reported as existing")
	}
}

func (s *customerServiceTestSuite) TestCreateAppliesDefaults() {
	ctx := s.testData.ctx

	input := model.NewCustomerInput{
		Type:      model.CustomerTypeDistributor,
		TradeName: ptr("  Electro Sur  "),
		LegalName: ptr("Electro Sur S.R.L."),
		TaxID:     "30-99887766-5",
		Phone:     "+54 11 5555-1234",
		Email:     "ventas@electrosur.com",
	}

	var got model.Customer
	s.customerRpsMock.On("Create", ctx, mock.AnythingOfType("model.Customer")).
		Run(func(args mock.Arguments) { got = args.Get(1).(model.Customer) }).
		Return(model.Customer{ID: 77}, nil).
		Once()

	s.T().Log("created customer must be visible, active and assigned to the creating agent")
	{
		created, err := s.customerSvc.Create(ctx, input, "Lucas")
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(int64(77), created.ID, "generated id must be returned")
		s.Assert().Equal("30998877665", got.TaxID, "tax id must be stored normalized")
		s.Assert().Equal("Electro Sur", *got.TradeName, "trade name must be trimmed")
		s.Assert().Equal([]string{"Lucas"}, got.AssignedAgents, "creating agent must be assigned")
		s.Assert().True(got.VisibleToAll, "new customers are visible to everyone")
		s.Assert().True(got.Active, "new customers are active")
	}
}

// start customer service test suite
func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(customerServiceTestSuite))
}
