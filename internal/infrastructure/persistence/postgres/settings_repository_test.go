package postgres_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-checkout/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/ficmart-checkout/internal/testhelpers"
	"github.com/stretchr/testify/suite"
)

type SettingsRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDatabase
	repo   *postgres.SettingsRepository
	keys   []string
}

func TestSettingsRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(SettingsRepositoryTestSuite))
}

func (s *SettingsRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDatabase(s.T())
	s.repo = postgres.NewSettingsRepository(s.testDB.DB, "settings")
	s.keys = []string{"razorpay_key_id", "razorpay_key_secret"}
}

func (s *SettingsRepositoryTestSuite) TearDownSuite() {
	s.testDB.Cleanup(s.T())
}

func (s *SettingsRepositoryTestSuite) SetupTest() {
	s.testDB.CleanTables(s.T())
}

func (s *SettingsRepositoryTestSuite) TestFetchCredentials_BothKeysPresent() {
	s.testDB.SeedSettings(s.T(), map[string]string{
		"razorpay_key_id":     "rzp_test_public",
		"razorpay_key_secret": "rzp_secret",
		"store_name":          "FicMart",
	})

	values, err := s.repo.FetchCredentials(context.Background(), s.keys)

	s.Require().NoError(err)
	s.Equal(map[string]string{
		"razorpay_key_id":     "rzp_test_public",
		"razorpay_key_secret": "rzp_secret",
	}, values)
}

func (s *SettingsRepositoryTestSuite) TestFetchCredentials_OnlyOneKeyPresent() {
	s.testDB.SeedSettings(s.T(), map[string]string{"razorpay_key_id": "rzp_test_public"})

	values, err := s.repo.FetchCredentials(context.Background(), s.keys)

	s.Require().NoError(err)
	s.Equal(map[string]string{"razorpay_key_id": "rzp_test_public"}, values)
}

func (s *SettingsRepositoryTestSuite) TestFetchCredentials_NoRows() {
	values, err := s.repo.FetchCredentials(context.Background(), s.keys)

	s.Require().ErrorIs(err, domain.ErrSettingsNotFound)
	s.Nil(values)
}

func (s *SettingsRepositoryTestSuite) TestFetchCredentials_SeesUpdatedValues() {
	s.testDB.SeedSettings(s.T(), map[string]string{
		"razorpay_key_id":     "rzp_old",
		"razorpay_key_secret": "old_secret",
	})
	_, err := s.repo.FetchCredentials(context.Background(), s.keys)
	s.Require().NoError(err)

	s.testDB.SeedSettings(s.T(), map[string]string{"razorpay_key_id": "rzp_new"})

	values, err := s.repo.FetchCredentials(context.Background(), s.keys)
	s.Require().NoError(err)
	s.Equal("rzp_new", values["razorpay_key_id"])
}

func (s *SettingsRepositoryTestSuite) TestFetchCredentials_UnknownTableFails() {
	repo := postgres.NewSettingsRepository(s.testDB.DB, "missing_table")

	_, err := repo.FetchCredentials(context.Background(), s.keys)

	s.Require().Error(err)
	s.NotErrorIs(err, domain.ErrSettingsNotFound)
}

func (s *SettingsRepositoryTestSuite) TestPing() {
	s.NoError(s.testDB.DB.Ping(context.Background()))
}
