package report

import (
	"context"
	"testing"
	"time"

	"campusconnect/backend/internal/testutil"
	"campusconnect/backend/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndList(t *testing.T) {
	svc := NewService(testutil.NewDB(t))
	ctx := context.Background()
	reporter, reported := uuid.NewString(), uuid.NewString()

	first, err := svc.Create(ctx, reporter, reported, "spam")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	time.Sleep(2 * time.Millisecond)
	_, err = svc.Create(ctx, reporter, reported, "insults")
	require.NoError(t, err)

	reports, total, err := svc.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, reports, 2)
	assert.Equal(t, "insults", reports[0].Reason, "newest first")

	page, _, err := svc.List(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestCreateRequiresAllFields(t *testing.T) {
	svc := NewService(testutil.NewDB(t))
	id := uuid.NewString()

	for name, args := range map[string][3]string{
		"missing reporter": {"", id, "spam"},
		"missing reported": {id, "", "spam"},
		"blank reason":     {id, id, "  "},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), args[0], args[1], args[2])
			assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
		})
	}
}
