package database_test

import (
	"math"
	"testing"

	"campusconnect/backend/internal/database"
	"campusconnect/backend/internal/models"
	"campusconnect/backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	db := testutil.NewDB(t)
	for _, name := range []string{"Ann", "Ben", "Cid"} {
		require.NoError(t, db.Create(&models.Profile{UserID: uuid.NewString(), FirstName: name}).Error)
	}
	ordered := db.Order("first_name ASC")

	all, total, err := database.Paginate[models.Profile](ordered, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	page, total, err := database.Paginate[models.Profile](ordered, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, "Cid", page[0].FirstName)

	page, total, err = database.Paginate[models.Profile](ordered, math.MaxInt, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, page)
}
