package test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roster-im/roster/internal/db/models"
	"github.com/roster-im/roster/test/mocks"
)

func newMockRegistry(t *testing.T) (*PersonRegistry, *mocks.MockAPIClient) {
	t.Helper()

	apiClient := mocks.NewMockAPIClient()

	emails, err := NewEmailProvider(DefaultEmailDomain)
	require.NoError(t, err)

	licenses, err := LoadLicensePool(context.Background(), apiClient)
	require.NoError(t, err)

	return NewPersonRegistry(apiClient, emails, licenses), apiClient
}

func TestRegistryGetOrCreate(t *testing.T) {
	ctx := context.Background()
	registry, apiClient := newMockRegistry(t)

	person, err := registry.GetOrCreate(ctx, "not_a_member")
	require.NoError(t, err)
	require.True(t, IsValidPerson(person))
	require.Len(t, person.Emails, 1)
	require.True(t, strings.HasSuffix(person.Emails[0], "@"+DefaultEmailDomain))
	require.Equal(t, TestPersonDisplayName, person.DisplayName)
	require.Equal(t, 1, apiClient.CreateCalls)
	require.Equal(t, 1, registry.Len())
}

func TestRegistrySameKeyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	registry, apiClient := newMockRegistry(t)

	first, err := registry.GetOrCreate(ctx, "x")
	require.NoError(t, err)

	second, err := registry.GetOrCreate(ctx, "x")
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 1, apiClient.CreateCalls, "second access must not create again")
	require.Equal(t, 1, registry.Len())
}

func TestRegistryDistinctKeysDistinctPeople(t *testing.T) {
	ctx := context.Background()
	registry, _ := newMockRegistry(t)

	a, err := registry.GetOrCreate(ctx, "alice")
	require.NoError(t, err)
	b, err := registry.GetOrCreate(ctx, "bob")
	require.NoError(t, err)

	require.NotEqual(t, a.ID, b.ID)
	require.NotEqual(t, a.Emails[0], b.Emails[0])
	require.Equal(t, 2, registry.Len())
	require.Len(t, registry.All(), 2)
}

func TestRegistryDuplicateEmailFailsFast(t *testing.T) {
	ctx := context.Background()
	registry, apiClient := newMockRegistry(t)

	// Seed an account and make the remote side report it twice
	person, err := registry.GetOrCreate(ctx, "seed")
	require.NoError(t, err)
	apiClient.DuplicateEmails[person.Emails[0]] = true

	_, err = FindPersonByEmail(ctx, apiClient, person.Emails[0])
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDuplicateEmail))
}

func TestRegistryCloseDeletesEveryPerson(t *testing.T) {
	ctx := context.Background()
	registry, apiClient := newMockRegistry(t)

	var ids []uint
	for _, key := range []string{"a", "b", "c"} {
		person, err := registry.GetOrCreate(ctx, key)
		require.NoError(t, err)
		ids = append(ids, person.ID)
	}

	require.NoError(t, registry.Close(ctx))
	require.Equal(t, 0, registry.Len())
	require.Equal(t, 0, apiClient.PersonCount())

	// The accounts are gone remotely
	for _, id := range ids {
		_, err := apiClient.GetPerson(ctx, id)
		require.Error(t, err)
	}
}

func TestRegistryCloseIsBestEffort(t *testing.T) {
	ctx := context.Background()
	registry, apiClient := newMockRegistry(t)

	broken, err := registry.GetOrCreate(ctx, "broken")
	require.NoError(t, err)
	_, err = registry.GetOrCreate(ctx, "healthy-1")
	require.NoError(t, err)
	_, err = registry.GetOrCreate(ctx, "healthy-2")
	require.NoError(t, err)

	apiClient.FailDeleteIDs[broken.ID] = true

	err = registry.Close(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken")

	// The failing account did not stop the other deletions
	require.Equal(t, 3, apiClient.DeleteCalls)
	require.Equal(t, 1, apiClient.PersonCount())
	require.Equal(t, 0, registry.Len())
}

func TestFindPersonByEmailNoMatch(t *testing.T) {
	ctx := context.Background()
	_, apiClient := newMockRegistry(t)

	person, err := FindPersonByEmail(ctx, apiClient, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, person)
}

func TestNewTestPersonAssignsMessagingLicense(t *testing.T) {
	ctx := context.Background()
	registry, apiClient := newMockRegistry(t)

	person, err := registry.GetOrCreate(ctx, "licensed")
	require.NoError(t, err)
	require.Len(t, person.Licenses, 1)

	license, err := apiClient.GetLicense(ctx, person.Licenses[0])
	require.NoError(t, err)
	require.Equal(t, models.LicenseMessaging, license.Name)
}
