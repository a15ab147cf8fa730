package app

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateProjectValidation(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env.auth, "maker")

	cases := []CreateProjectInput{
		{OwnerID: "", Title: "Title", Description: "Desc"},
		{OwnerID: owner.ID, Title: "", Description: "Desc"},
		{OwnerID: owner.ID, Title: "   ", Description: "Desc"},
		{OwnerID: owner.ID, Title: "Title", Description: ""},
		{OwnerID: owner.ID, Title: "Title", Description: "  \t "},
	}
	for _, input := range cases {
		_, err := env.projects.Create(input)
		require.ErrorIs(t, err, ErrInvalidInput)
	}

	project, err := env.projects.Create(CreateProjectInput{
		OwnerID:     owner.ID,
		Title:       "  Trimmed Title  ",
		Description: " Trimmed description ",
		Category:    " Web ",
	})
	require.NoError(t, err)
	require.Equal(t, "Trimmed Title", project.Title)
	require.Equal(t, "Trimmed description", project.Description)
	require.Equal(t, "Web", project.Category)
	require.Equal(t, owner.ID, project.UserID)
	require.NotEmpty(t, project.ID)
}

func TestGetCountsEveryView(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env.auth, "viewer")

	created, err := env.projects.Create(CreateProjectInput{
		OwnerID:     owner.ID,
		Title:       "Counter",
		Description: "Counts views",
	})
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		project, err := env.projects.Get(created.ID)
		require.NoError(t, err)
		require.Equal(t, i, project.Views, "fetch %d", i)
	}
}

func TestGetMissingProject(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.projects.Get("no-such-id")
	require.ErrorIs(t, err, ErrProjectNotFound)

	_, err = env.projects.Get("")
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestListPaginationClamps(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env.auth, "paginator")

	for i := 0; i < 15; i++ {
		_, err := env.projects.Create(CreateProjectInput{
			OwnerID:     owner.ID,
			Title:       fmt.Sprintf("Project %02d", i),
			Description: fmt.Sprintf("Description %02d", i),
		})
		require.NoError(t, err)
	}

	// Out-of-range page and per_page fall back to sane values.
	page, err := env.projects.List(ListProjectsInput{Page: 0, PerPage: -3})
	require.NoError(t, err)
	require.Equal(t, 1, page.CurrentPage)
	require.Len(t, page.Items, defaultPerPage)
	require.Equal(t, int64(15), page.Total)
	require.Equal(t, 2, page.TotalPages)

	page, err = env.projects.List(ListProjectsInput{Page: 2, PerPage: 12})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	// Beyond the last page: empty items, metadata intact.
	page, err = env.projects.List(ListProjectsInput{Page: 99, PerPage: 12})
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Equal(t, int64(15), page.Total)
	require.Equal(t, 99, page.CurrentPage)

	// per_page is capped.
	page, err = env.projects.List(ListProjectsInput{Page: 1, PerPage: 500})
	require.NoError(t, err)
	require.Len(t, page.Items, 15)
}

func TestListSearchAndCategory(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env.auth, "searcher")

	seed := []CreateProjectInput{
		{OwnerID: owner.ID, Title: "Weather Station", Description: "Arduino sensors", Category: "IoT"},
		{OwnerID: owner.ID, Title: "Portfolio Site", Description: "Personal weather page", Category: "Web"},
		{OwnerID: owner.ID, Title: "Chess Engine", Description: "Minimax with pruning", Category: "Games"},
	}
	for _, input := range seed {
		_, err := env.projects.Create(input)
		require.NoError(t, err)
	}

	// Search matches title or description.
	page, err := env.projects.List(ListProjectsInput{Search: "weather"})
	require.NoError(t, err)
	require.Equal(t, int64(2), page.Total)

	page, err = env.projects.List(ListProjectsInput{Search: "pruning"})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	require.Equal(t, "Chess Engine", page.Items[0].Title)

	// Category is an exact filter.
	page, err = env.projects.List(ListProjectsInput{Category: "Web"})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	require.Equal(t, "Portfolio Site", page.Items[0].Title)

	page, err = env.projects.List(ListProjectsInput{Category: "We"})
	require.NoError(t, err)
	require.Zero(t, page.Total)
}

func TestListSortOrders(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env.auth, "sorter")

	viewCounts := []int{2, 7, 0, 4}
	for i, views := range viewCounts {
		project, err := env.projects.Create(CreateProjectInput{
			OwnerID:     owner.ID,
			Title:       fmt.Sprintf("Sorted %d", i),
			Description: "sortable",
		})
		require.NoError(t, err)
		for v := 0; v < views; v++ {
			_, err := env.projects.Get(project.ID)
			require.NoError(t, err)
		}
	}

	page, err := env.projects.List(ListProjectsInput{SortBy: "views"})
	require.NoError(t, err)
	require.Len(t, page.Items, 4)
	for i := 1; i < len(page.Items); i++ {
		require.GreaterOrEqual(t, page.Items[i-1].Views, page.Items[i].Views)
	}
	require.Equal(t, 7, page.Items[0].Views)

	// Unknown sort keys fall back to newest-first.
	fallback, err := env.projects.List(ListProjectsInput{SortBy: "bogus"})
	require.NoError(t, err)
	newest, err := env.projects.List(ListProjectsInput{SortBy: "created_at"})
	require.NoError(t, err)
	require.Len(t, fallback.Items, 4)
	for i := range newest.Items {
		require.Equal(t, newest.Items[i].ID, fallback.Items[i].ID)
	}
	for i := 1; i < len(newest.Items); i++ {
		require.False(t, newest.Items[i-1].CreatedAt.Before(newest.Items[i].CreatedAt))
	}
}

func TestUpdateProjectOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env.auth, "owner")
	intruder := registerTestUser(t, env.auth, "intruder")

	project, err := env.projects.Create(CreateProjectInput{
		OwnerID:     owner.ID,
		Title:       "Original",
		Description: "Original description",
		Category:    "Web",
	})
	require.NoError(t, err)

	newTitle := "Hacked"
	_, err = env.projects.Update(UpdateProjectInput{
		ProjectID: project.ID,
		CallerID:  intruder.ID,
		Title:     &newTitle,
	})
	require.ErrorIs(t, err, ErrForbidden)

	// Omitted fields keep their value; provided ones change.
	updatedTitle := "Renamed"
	updated, err := env.projects.Update(UpdateProjectInput{
		ProjectID: project.ID,
		CallerID:  owner.ID,
		Title:     &updatedTitle,
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)
	require.Equal(t, "Original description", updated.Description)
	require.Equal(t, "Web", updated.Category)

	empty := "   "
	_, err = env.projects.Update(UpdateProjectInput{
		ProjectID:   project.ID,
		CallerID:    owner.ID,
		Description: &empty,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.projects.Update(UpdateProjectInput{
		ProjectID: "no-such-id",
		CallerID:  owner.ID,
	})
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestDeleteProjectOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env.auth, "deleter")
	intruder := registerTestUser(t, env.auth, "stranger")

	project, err := env.projects.Create(CreateProjectInput{
		OwnerID:     owner.ID,
		Title:       "Doomed",
		Description: "Will be removed",
	})
	require.NoError(t, err)

	require.ErrorIs(t, env.projects.Delete(project.ID, intruder.ID), ErrForbidden)
	require.ErrorIs(t, env.projects.Delete("no-such-id", owner.ID), ErrProjectNotFound)

	require.NoError(t, env.projects.Delete(project.ID, owner.ID))
	_, err = env.projects.Get(project.ID)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestLikeIncrements(t *testing.T) {
	env := newTestEnv(t)
	owner := registerTestUser(t, env.auth, "liker")

	project, err := env.projects.Create(CreateProjectInput{
		OwnerID:     owner.ID,
		Title:       "Likeable",
		Description: "Collects likes",
	})
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		likes, err := env.projects.Like(project.ID)
		require.NoError(t, err)
		require.Equal(t, i, likes)
	}

	_, err = env.projects.Like("no-such-id")
	require.ErrorIs(t, err, ErrProjectNotFound)
}
