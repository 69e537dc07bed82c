package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/internal/apperrors"
	"skillswap/internal/models"
	"skillswap/internal/repositories"
	"skillswap/internal/services"
)

func seedDirectory(t *testing.T) (*services.UserService, map[string]*models.User) {
	t.Helper()

	repo := repositories.NewMemoryUserRepository()
	users := map[string]*models.User{
		"ann": {
			Name: "Ann", Email: "ann@x.com", Location: "New York, NY", IsPublic: true,
			SkillsOffered: []string{"Graphic Design", "Photoshop"},
			SkillsWanted:  []string{"Cooking"},
		},
		"ben": {
			Name: "Ben", Email: "ben@x.com", Location: "Boston, MA", IsPublic: true,
			SkillsOffered: []string{"Cooking"},
			SkillsWanted:  []string{"Web Design"},
		},
		"carol": {
			Name: "Carol", Email: "carol@x.com", Location: "new york", IsPublic: true,
			SkillsOffered: []string{"Spanish"},
			SkillsWanted:  []string{"Photography"},
		},
		"hidden": {
			Name: "Hidden", Email: "hidden@x.com", Location: "New York, NY", IsPublic: false,
			SkillsOffered: []string{"Design"},
		},
		"banned": {
			Name: "Banned", Email: "banned@x.com", Location: "New York, NY", IsPublic: true,
			IsBanned:      true,
			SkillsOffered: []string{"Design"},
		},
	}
	for _, u := range users {
		require.NoError(t, repo.Create(u))
	}
	return services.NewUserService(repo), users
}

func TestUserService_Search_BySkill(t *testing.T) {
	svc, users := seedDirectory(t)

	// "design" matches offered and wanted skills case-insensitively, but never
	// private or banned profiles.
	results, err := svc.Search(users["carol"].ID, "design", "")
	require.NoError(t, err)
	names := []string{}
	for _, u := range results {
		names = append(names, u.Name)
	}
	assert.ElementsMatch(t, []string{"Ann", "Ben"}, names)
}

func TestUserService_Search_ExcludesSelf(t *testing.T) {
	svc, users := seedDirectory(t)

	results, err := svc.Search(users["ann"].ID, "design", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Ben", results[0].Name)
}

func TestUserService_Search_ByLocation(t *testing.T) {
	svc, users := seedDirectory(t)

	results, err := svc.Search(users["ben"].ID, "", "new york")
	require.NoError(t, err)
	names := []string{}
	for _, u := range results {
		names = append(names, u.Name)
	}
	assert.ElementsMatch(t, []string{"Ann", "Carol"}, names)
}

func TestUserService_Search_AndComposed(t *testing.T) {
	svc, users := seedDirectory(t)

	results, err := svc.Search(users["ben"].ID, "design", "new york")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Ann", results[0].Name)
}

func TestUserService_Search_NoMatchIsEmptyNotError(t *testing.T) {
	svc, users := seedDirectory(t)

	results, err := svc.Search(users["ann"].ID, "quantum basket weaving", "")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestUserService_ListPublic(t *testing.T) {
	svc, users := seedDirectory(t)

	results, err := svc.ListPublic(users["ann"].ID)
	require.NoError(t, err)
	names := []string{}
	for _, u := range results {
		names = append(names, u.Name)
	}
	assert.ElementsMatch(t, []string{"Ben", "Carol"}, names)
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc, users := seedDirectory(t)

	newLocation := "Chicago, IL"
	newSkills := []string{"Figma"}
	updated, err := svc.UpdateProfile(users["ann"].ID, models.ProfileUpdate{
		Location:      &newLocation,
		SkillsOffered: &newSkills,
	})
	require.NoError(t, err)

	// Provided slices replace the stored sequence whole; untouched fields keep
	// their values.
	assert.Equal(t, []string{"Figma"}, updated.SkillsOffered)
	assert.Equal(t, "Chicago, IL", updated.Location)
	assert.Equal(t, "Ann", updated.Name)
	assert.Equal(t, []string{"Cooking"}, updated.SkillsWanted)

	fetched, err := svc.GetProfile(users["ann"].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Figma"}, fetched.SkillsOffered)

	_, err = svc.UpdateProfile("no-such-user", models.ProfileUpdate{Location: &newLocation})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, _ := seedDirectory(t)

	_, err := svc.GetProfile("no-such-user")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
