package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetProfileTruncatesLongDescriptions(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env.auth, "writer")

	longDescription := strings.Repeat("a", 250)
	_, err := env.projects.Create(CreateProjectInput{
		OwnerID:     owner.ID,
		Title:       "Long Story",
		Description: longDescription,
	})
	require.NoError(t, err)
	_, err = env.projects.Create(CreateProjectInput{
		OwnerID:     owner.ID,
		Title:       "Short Story",
		Description: "brief",
	})
	require.NoError(t, err)

	view, err := env.profiles.GetProfile(owner.ID)
	require.NoError(t, err)
	require.Equal(t, 2, view.ProjectsCount)
	require.Len(t, view.Projects, 2)

	byTitle := make(map[string]string, len(view.Projects))
	for _, project := range view.Projects {
		byTitle[project.Title] = project.Description
	}
	require.Equal(t, strings.Repeat("a", 200)+"...", byTitle["Long Story"])
	require.Equal(t, "brief", byTitle["Short Story"])
}

func TestGetProfileBoundaryLength(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env.auth, "boundary")

	exact := strings.Repeat("b", 200)
	_, err := env.projects.Create(CreateProjectInput{
		OwnerID:     owner.ID,
		Title:       "Exactly Two Hundred",
		Description: exact,
	})
	require.NoError(t, err)

	view, err := env.profiles.GetProfile(owner.ID)
	require.NoError(t, err)
	require.Equal(t, exact, view.Projects[0].Description, "a description at the limit is kept verbatim")
}

func TestGetProfileMissingUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.profiles.GetProfile("no-such-user")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfileOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env.auth, "profileowner")
	intruder := registerTestUser(t, env.auth, "profileintruder")

	name := "New Name"
	_, err := env.profiles.UpdateProfile(UpdateProfileInput{
		UserID:   owner.ID,
		CallerID: intruder.ID,
		FullName: &name,
	})
	require.ErrorIs(t, err, ErrForbidden)

	stored, err := env.auth.GetUserByID(owner.ID)
	require.NoError(t, err)
	require.Equal(t, "Test profileowner", stored.FullName)
}

func TestUpdateProfilePartial(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env.auth, "partial")

	bio := "Now with a bio."
	updated, err := env.profiles.UpdateProfile(UpdateProfileInput{
		UserID:   owner.ID,
		CallerID: owner.ID,
		Bio:      &bio,
	})
	require.NoError(t, err)
	require.Equal(t, "Now with a bio.", updated.Bio)
	// Omitted full name is unchanged.
	require.Equal(t, "Test partial", updated.FullName)

	name := "Renamed Person"
	updated, err = env.profiles.UpdateProfile(UpdateProfileInput{
		UserID:   owner.ID,
		CallerID: owner.ID,
		FullName: &name,
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed Person", updated.FullName)
	require.Equal(t, "Now with a bio.", updated.Bio)

	empty := "  "
	_, err = env.profiles.UpdateProfile(UpdateProfileInput{
		UserID:   owner.ID,
		CallerID: owner.ID,
		FullName: &empty,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	// Bio may be cleared, unlike full name.
	blank := ""
	updated, err = env.profiles.UpdateProfile(UpdateProfileInput{
		UserID:   owner.ID,
		CallerID: owner.ID,
		Bio:      &blank,
	})
	require.NoError(t, err)
	require.Empty(t, updated.Bio)
}

func TestDeleteAccountOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env.auth, "selfdelete")
	intruder := registerTestUser(t, env.auth, "otherdelete")

	require.ErrorIs(t, env.profiles.DeleteAccount(owner.ID, intruder.ID), ErrForbidden)

	require.NoError(t, env.profiles.DeleteAccount(owner.ID, owner.ID))
	_, err := env.profiles.GetProfile(owner.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}
