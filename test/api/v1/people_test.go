// Package api_test contains the integration tests for the people API,
// exercising the real server through the real client.
package api_test

import (
	"testing"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/roster-im/roster/internal/db/models"
	"github.com/roster-im/roster/pkg/api/v1/handlers"
	"github.com/roster-im/roster/test"
)

func TestHealthCheck(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	healthCheck, err := suite.APIClient.HealthCheck(suite.Context())
	require.NoError(t, err)
	require.Equal(t, "healthy", healthCheck["status"])
}

func TestCreatePerson(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	person, err := suite.People.GetOrCreate(suite.Context(), "not_a_member")
	require.NoError(t, err)
	require.True(t, test.IsValidPerson(person))
	require.Len(t, person.Emails, 1)
}

func TestUpdatePerson(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	person, err := suite.People.GetOrCreate(suite.Context(), "not_a_member")
	require.NoError(t, err)

	updated, err := suite.APIClient.UpdatePerson(suite.Context(), person.ID, handlers.UpdatePersonParams{
		DisplayName: person.DisplayName + " Updated",
		FirstName:   person.FirstName + " Updated",
		LastName:    person.LastName + " Updated",
	})
	require.NoError(t, err)
	require.True(t, test.IsValidPerson(updated))
	require.Equal(t, person.DisplayName+" Updated", updated.DisplayName)
	require.Equal(t, person.FirstName+" Updated", updated.FirstName)
	require.Equal(t, person.LastName+" Updated", updated.LastName)
	// Emails survive an update untouched
	require.Equal(t, person.Emails, updated.Emails)
}

func TestGetMyDetails(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	me, err := suite.APIClient.GetMe(suite.Context())
	require.NoError(t, err)
	require.True(t, test.IsValidPerson(me))
	require.Equal(t, suite.Me.ID, me.ID)
}

func TestGetPersonDetails(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	created, err := suite.People.GetOrCreate(suite.Context(), "not_a_member")
	require.NoError(t, err)

	person, err := suite.APIClient.GetPerson(suite.Context(), created.ID)
	require.NoError(t, err)
	require.True(t, test.IsValidPerson(person))
	require.Equal(t, created.ID, person.ID)
}

func TestListPeopleByEmail(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	person, err := suite.People.GetOrCreate(suite.Context(), "not_a_member")
	require.NoError(t, err)

	people, err := suite.APIClient.ListPeople(suite.Context(), &models.ListOptions{
		Email: person.Emails[0],
	})
	require.NoError(t, err)
	require.Len(t, people, 1)
	require.True(t, test.AreValidPeople(people))
	require.Equal(t, person.ID, people[0].ID)
}

func TestListPeopleByDisplayName(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	person, err := suite.People.GetOrCreate(suite.Context(), "not_a_member")
	require.NoError(t, err)

	people, err := suite.APIClient.ListPeople(suite.Context(), &models.ListOptions{
		DisplayName: person.DisplayName,
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(people), 1)
	require.True(t, test.AreValidPeople(people))
}

func TestListPeopleWithPaging(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	const (
		pageSize = 1
		pages    = 3
	)

	// The registry accounts all share one display name, so they form the
	// result set to page over
	for _, key := range []string{"page_one", "page_two", "page_three"} {
		_, err := suite.People.GetOrCreate(suite.Context(), key)
		require.NoError(t, err)
	}
	require.GreaterOrEqual(t, suite.People.Len(), pages*pageSize)

	seen := make(map[uint]bool)
	for page := 0; page < pages; page++ {
		people, err := suite.APIClient.ListPeople(suite.Context(), &models.ListOptions{
			DisplayName: test.TestPersonDisplayName,
			Limit:       pageSize,
			Offset:      page * pageSize,
		})
		require.NoError(t, err)
		require.Len(t, people, pageSize)
		require.True(t, test.AreValidPeople(people))

		for _, person := range people {
			require.False(t, seen[person.ID], "person %d appeared on two pages", person.ID)
			seen[person.ID] = true
		}
	}
	require.Len(t, seen, pages*pageSize)
}

func TestTempPersonIsDeletedAfterTheTest(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	var tempID uint
	t.Run("uses temp person", func(t *testing.T) {
		person := test.TempPerson(t, suite)
		require.True(t, test.IsValidPerson(person))
		tempID = person.ID

		// Still present while the test body runs
		_, err := suite.APIClient.GetPerson(suite.Context(), person.ID)
		require.NoError(t, err)
	})

	// The subtest's cleanup has run, the account is gone
	_, err := suite.APIClient.GetPerson(suite.Context(), tempID)
	require.Error(t, err)
	requireStatus(t, err, fiber.StatusNotFound)
}

func TestRegistryCloseRemovesAccountsRemotely(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	// A dedicated registry so Close can be observed mid-test
	registry := test.NewPersonRegistry(suite.APIClient, suite.Emails, suite.Licenses)

	a, err := registry.GetOrCreate(suite.Context(), "a")
	require.NoError(t, err)
	b, err := registry.GetOrCreate(suite.Context(), "b")
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)

	require.NoError(t, registry.Close(suite.Context()))

	for _, id := range []uint{a.ID, b.ID} {
		_, err := suite.APIClient.GetPerson(suite.Context(), id)
		require.Error(t, err)
		requireStatus(t, err, fiber.StatusNotFound)
	}
}

func TestCreatePersonRejectsTakenEmail(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	person, err := suite.People.GetOrCreate(suite.Context(), "original")
	require.NoError(t, err)

	_, err = suite.APIClient.CreatePerson(suite.Context(), handlers.CreatePersonParams{
		Emails:      []string{person.Emails[0]},
		DisplayName: "impostor",
	})
	require.Error(t, err)
	requireStatus(t, err, fiber.StatusConflict)
}

func TestListLicenses(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()

	licenses, err := suite.APIClient.ListLicenses(suite.Context(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, licenses)

	names := make(map[string]bool)
	for _, license := range licenses {
		names[license.Name] = true
	}
	require.True(t, names[models.LicenseMessaging])
}

// requireStatus asserts that an error is a fiber error with the given status code
func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	require.Equal(t, status, fiberErr.Code)
}
